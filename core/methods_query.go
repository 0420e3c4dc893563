// Package core: read-only query operations on the Graph container.
//
// All lookups are validated against the id index; none of them can panic on
// an unknown identifier. Slice results are copies, so callers cannot alias
// internal state.
package core

// HasNode reports whether a node with the given identifier exists.
// Complexity: O(1).
func (g *Graph[T]) HasNode(id NodeID) bool {
	_, exists := g.index[id]

	return exists
}

// Data returns the payload stored at id. The payload is returned by value;
// reference types inside T still share their backing storage with the
// container. Returns the zero value of T and ErrIDNotFound if id is absent.
// Complexity: O(1).
func (g *Graph[T]) Data(id NodeID) (T, error) {
	slot, exists := g.index[id]
	if !exists {
		var zero T
		return zero, ErrIDNotFound
	}

	return g.nodes[slot].data, nil
}

// AdjacentIDs returns a copy of id's adjacency set in insertion order.
// Returns ErrIDNotFound if id is absent.
// Complexity: O(deg).
func (g *Graph[T]) AdjacentIDs(id NodeID) ([]NodeID, error) {
	slot, exists := g.index[id]
	if !exists {
		return nil, ErrIDNotFound
	}

	out := make([]NodeID, len(g.nodes[slot].adj))
	copy(out, g.nodes[slot].adj)

	return out, nil
}

// IDs returns every node identifier in storage order. Unlike NodeIDs this is
// a full enumeration, independent of reachability.
// Complexity: O(V).
func (g *Graph[T]) IDs() []NodeID {
	out := make([]NodeID, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.id
	}

	return out
}

// NodeCount returns the total number of nodes. O(1).
func (g *Graph[T]) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the total number of directed edges. O(V).
func (g *Graph[T]) EdgeCount() int {
	total := 0
	for _, n := range g.nodes {
		total += len(n.adj)
	}

	return total
}
