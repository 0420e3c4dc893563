// Package core implements a small in-memory directed graph container with
// an opaque, caller-chosen payload type per node.
//
// What:
//
//   - Graph[T]: dense node storage with integer identifiers, insertion-ordered
//     duplicate-free adjacency sets, and a monotonic identifier allocator.
//   - Mutation: AddNode, AddNodeWithID, RemoveNode, AddEdge, RemoveEdge.
//   - Queries: HasNode, Data, AdjacentIDs, IDs, NodeCount, EdgeCount, Clone.
//   - Traversal: NodeIDs / ReachableFrom - iterative depth-first reachability
//     enumeration in discovery order.
//
// Identifiers are logical names, not storage positions: every lookup goes
// through an id index, so removing a node never invalidates the addressing of
// the nodes created after it. Freed identifiers are never reused.
//
// The container is a plain value with no internal locking. It is not safe for
// concurrent use; callers that share a Graph across goroutines must serialize
// every operation behind their own mutual exclusion.
//
// Errors:
//
//	ErrIDNotFound   - an operation referenced an identifier absent from the container.
//	ErrDuplicateID  - AddNodeWithID was given an identifier already in use.
//	ErrInvalidID    - AddNodeWithID was given a negative identifier.
//
// Serialization to and from the plain-text interchange format lives in the
// sibling tgf package; core itself places no encoding constraint on T.
package core
