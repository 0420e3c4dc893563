// Package core: depth-first reachability enumeration.
//
// The walk is iterative - an explicit stack instead of call recursion - so
// arbitrarily deep graphs cannot exhaust the goroutine stack. Marking nodes
// visited at pop time, and pushing each adjacency set in reverse, reproduces
// exactly the discovery order of the classic recursive pre-order walk:
// a node is recorded before its descendants, and its first adjacency target
// is explored fully before the second.
package core

// NodeIDs performs a depth-first reachability walk rooted at identifier 0
// and returns the visited identifiers in discovery order. Nodes unreachable
// from 0 are omitted; cycles terminate via the visited set. Returns
// ErrIDNotFound when no node with identifier 0 exists.
// Complexity: O(V + E).
func (g *Graph[T]) NodeIDs() ([]NodeID, error) {
	return g.ReachableFrom(0)
}

// ReachableFrom is NodeIDs with a caller-chosen root.
// Complexity: O(V + E).
func (g *Graph[T]) ReachableFrom(root NodeID) ([]NodeID, error) {
	if _, exists := g.index[root]; !exists {
		return nil, ErrIDNotFound
	}

	visited := make(map[NodeID]bool, len(g.nodes))
	order := make([]NodeID, 0, len(g.nodes))
	stack := []NodeID{root}

	for len(stack) > 0 {
		// Pop the most recently pushed identifier.
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// A node may sit on the stack more than once; only the first
		// pop counts, which also breaks cycles.
		if visited[id] {
			continue
		}
		visited[id] = true
		order = append(order, id)

		// Push adjacency in reverse so the first target is popped,
		// and therefore explored, first.
		adj := g.nodes[g.index[id]].adj
		for i := len(adj) - 1; i >= 0; i-- {
			if !visited[adj[i]] {
				stack = append(stack, adj[i])
			}
		}
	}

	return order, nil
}
