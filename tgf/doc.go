// Package tgf encodes and decodes core.Graph containers to a line-oriented,
// Trivial-Graph-Format-like plain-text interchange encoding.
//
// Wire format (UTF-8):
//
//	<id> <json-payload>     one line per node, storage order
//	#
//	<src> <dst> <dst> ...   one line per node with ≥1 outgoing edge, storage order
//
// Example, three string payloads with edges 0→1, 0→2, 2→0:
//
//	0 "cat"
//	1 "car"
//	2 "cow"
//	#
//	0 1 2
//	2 0
//
// Payloads are encoded with encoding/json, one value per line; any T that
// round-trips through encoding/json round-trips through this package. The
// encode/decode capability constraint on T binds here only - core.Graph
// itself carries no such requirement.
//
// Decoding is strict about structure: node lines must be digits, one
// whitespace, then a payload; node ids must be distinct; every id named on
// an edge line - source and targets alike - must have been declared before
// the separator. All such failures wrap ErrFormat with the line number, so
// errors.Is(err, tgf.ErrFormat) distinguishes a malformed document from an
// I/O failure. Node ids do not need to be contiguous or ordered.
//
// Encoding then decoding reproduces an equal container; decoding then
// encoding reproduces the document byte for byte.
package tgf
