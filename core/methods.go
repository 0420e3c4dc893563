// Package core: mutation operations on the Graph container.
//
// Every mutating method validates its identifiers up front and leaves the
// container untouched on failure. Adjacency sets stay duplicate-free and
// insertion-ordered; removal strips incoming references so no dangling
// identifier survives.
package core

// AddNode appends a new node holding data with an empty adjacency set and
// returns its freshly allocated identifier. Always succeeds.
// Complexity: O(1) amortized.
func (g *Graph[T]) AddNode(data T) NodeID {
	// Allocate: hand out nextID, then advance the counter.
	id := g.nextID
	g.nextID++

	g.nodes = append(g.nodes, &node[T]{id: id, data: data})
	g.index[id] = len(g.nodes) - 1

	return id
}

// AddNodeWithID appends a new node under an explicit identifier. This is the
// load path used by the text codec: identifiers come from the document, and
// the allocator is raised past each one so that later AddNode calls stay
// unique. After inserting ids {0..k} in any order, nextID is k+1.
//
// Returns ErrInvalidID for negative ids, ErrDuplicateID if id is taken.
// Complexity: O(1) amortized.
func (g *Graph[T]) AddNodeWithID(id NodeID, data T) error {
	// 1) Validate the identifier itself.
	if id < 0 {
		return ErrInvalidID
	}
	// 2) Reject duplicates: identifiers are unique per container.
	if _, exists := g.index[id]; exists {
		return ErrDuplicateID
	}

	// 3) Insert in storage order.
	g.nodes = append(g.nodes, &node[T]{id: id, data: data})
	g.index[id] = len(g.nodes) - 1

	// 4) Keep the allocator strictly above every assigned identifier.
	if id >= g.nextID {
		g.nextID = id + 1
	}

	return nil
}

// RemoveNode deletes the node named by id and strips id from every remaining
// node's adjacency set, so no incoming reference survives. The freed
// identifier is never reused. Returns ErrIDNotFound if id is absent.
// Complexity: O(V + E).
func (g *Graph[T]) RemoveNode(id NodeID) error {
	slot, exists := g.index[id]
	if !exists {
		return ErrIDNotFound
	}

	// Strip incoming references from every other node.
	for _, n := range g.nodes {
		if n.id != id {
			n.removeAdjacent(id)
		}
	}

	// Splice the node out of storage and repair the index for the
	// records that shifted down one slot.
	g.nodes = append(g.nodes[:slot], g.nodes[slot+1:]...)
	delete(g.index, id)
	for i := slot; i < len(g.nodes); i++ {
		g.index[g.nodes[i].id] = i
	}

	return nil
}

// AddEdge inserts a directed edge from→to. The insert is idempotent: an
// already-present edge is silently kept, not duplicated. Self-loops are
// permitted. Returns ErrIDNotFound if either endpoint is absent, leaving the
// container unmodified.
// Complexity: O(deg(from)).
func (g *Graph[T]) AddEdge(from, to NodeID) error {
	// Validate both endpoints before touching anything.
	slot, ok := g.index[from]
	if !ok {
		return ErrIDNotFound
	}
	if _, ok = g.index[to]; !ok {
		return ErrIDNotFound
	}

	g.nodes[slot].addAdjacent(to)

	return nil
}

// RemoveEdge deletes the directed edge from→to if it exists. Removing an
// edge that was never added is a silent no-op, provided both endpoints are
// valid nodes; an absent endpoint is ErrIDNotFound.
// Complexity: O(deg(from)).
func (g *Graph[T]) RemoveEdge(from, to NodeID) error {
	slot, ok := g.index[from]
	if !ok {
		return ErrIDNotFound
	}
	if _, ok = g.index[to]; !ok {
		return ErrIDNotFound
	}

	g.nodes[slot].removeAdjacent(to)

	return nil
}
