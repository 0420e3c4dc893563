// Package tinygraph is a small in-memory directed-graph model meant for
// embedding inside other programs: not a service, not a framework.
//
// What it gives you:
//
//   - Core container: integer-identified nodes carrying an arbitrary payload
//     type, insertion-ordered duplicate-free adjacency, monotonic id allocation
//   - Mutation: add/remove nodes and edges with validated, value-returned errors
//   - Traversal: iterative depth-first reachability enumeration from node 0
//   - Text codec: round-trip to a Trivial-Graph-Format-like line encoding
//     with JSON payloads
//
// Everything is organized under two library packages and one demo binary:
//
//	core/         — Graph[T], allocator, mutation, queries, reachability walk
//	tgf/          — encoder/decoder for the plain-text interchange format
//	cmd/tgfwalk/  — loads a file and prints every reachable node
//
// Quick example, the canonical three-node document:
//
//	0 "cat"
//	1 "car"
//	2 "cow"
//	#
//	0 1 2
//	2 0
//
// The container is a plain value with no internal locking; callers needing
// shared access wrap it behind their own mutual exclusion.
//
//	go get github.com/graphmint/tinygraph
package tinygraph
