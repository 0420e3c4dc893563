// Package core: container duplication.
package core

// Clone returns an independent copy of the Graph: storage order, identifier
// index, allocator state, and adjacency sets are all duplicated. Payloads
// are copied by assignment, so reference types inside T remain shared
// between the two containers.
// Complexity: O(V + E).
func (g *Graph[T]) Clone() *Graph[T] {
	clone := &Graph[T]{
		nextID: g.nextID,
		nodes:  make([]*node[T], len(g.nodes)),
		index:  make(map[NodeID]int, len(g.index)),
	}

	for i, n := range g.nodes {
		adj := make([]NodeID, len(n.adj))
		copy(adj, n.adj)
		clone.nodes[i] = &node[T]{id: n.id, data: n.data, adj: adj}
		clone.index[n.id] = i
	}

	return clone
}
