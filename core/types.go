// Package core: central type declarations and sentinel errors.
//
// This file declares NodeID, the unexported node record, and the Graph
// container itself. Method implementations live in methods*.go.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrIDNotFound indicates an operation referenced a node identifier
	// that is not present in the container.
	ErrIDNotFound = errors.New("core: node id not found")

	// ErrDuplicateID indicates AddNodeWithID was given an identifier
	// already assigned to another node.
	ErrDuplicateID = errors.New("core: duplicate node id")

	// ErrInvalidID indicates a negative identifier was supplied where a
	// non-negative one is required.
	ErrInvalidID = errors.New("core: node id must be non-negative")
)

// NodeID uniquely identifies a node within one Graph instance.
// Identifiers are non-negative and never reused after removal.
type NodeID int

// node is a single graph record: identifier, payload, and the
// insertion-ordered, duplicate-free set of outgoing adjacency targets.
type node[T any] struct {
	id   NodeID
	data T
	adj  []NodeID
}

// addAdjacent inserts 'to' into the adjacency set, preserving insertion
// order. Inserting an already-present target is a no-op.
// Complexity: O(deg).
func (n *node[T]) addAdjacent(to NodeID) {
	for _, a := range n.adj {
		if a == to {
			return // already present, silently ignored
		}
	}
	n.adj = append(n.adj, to)
}

// removeAdjacent deletes 'to' from the adjacency set if present,
// preserving the relative order of the remaining targets.
// Complexity: O(deg).
func (n *node[T]) removeAdjacent(to NodeID) {
	for i, a := range n.adj {
		if a == to {
			n.adj = append(n.adj[:i], n.adj[i+1:]...)
			return
		}
	}
}

// Graph is the core in-memory directed graph container.
//
// nodes preserves storage order (creation order, or file order after a
// decode); index maps each identifier to its current slot in nodes, so
// lookups are validated O(1) map hits rather than positional indexing.
// nextID is the embedded allocator: strictly greater than every identifier
// ever assigned, monotonic, no free-list.
type Graph[T any] struct {
	nextID NodeID
	nodes  []*node[T]
	index  map[NodeID]int
}

// NewGraph creates an empty Graph for payload type T.
// Complexity: O(1).
func NewGraph[T any]() *Graph[T] {
	return &Graph[T]{
		nodes: make([]*node[T], 0),
		index: make(map[NodeID]int),
	}
}
