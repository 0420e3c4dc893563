// Package tgf: sentinel errors.
package tgf

import "errors"

// ErrFormat indicates a malformed document: an unparseable node or edge
// line, a duplicate node id, or an edge line naming an undeclared node.
// Concrete failures wrap this sentinel together with the line number, so
// callers match with errors.Is(err, ErrFormat).
var ErrFormat = errors.New("tgf: malformed document")
