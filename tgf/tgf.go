// Package tgf: encoder and decoder for the plain-text interchange format.
//
// Both directions are stateless functions over a core.Graph. The decoder is
// a single bufio.Scanner pass; the node-line pattern mirrors the format
// definition directly: digits, one whitespace, rest-of-line payload.
package tgf

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/graphmint/tinygraph/core"
)

// separator is the single line dividing node declarations from edge lines.
const separator = "#"

// nodeLine matches one node declaration: identifier, one whitespace
// character, then the JSON payload as the remainder of the line.
var nodeLine = regexp.MustCompile(`^(\d+)\s(.+)$`)

// Encode writes g to w in the interchange format: every node line in
// storage order, the separator, then an edge line for every node with a
// non-empty adjacency set, targets in insertion order.
// Complexity: O(V + E) plus payload encoding.
func Encode[T any](w io.Writer, g *core.Graph[T]) error {
	bw := bufio.NewWriter(w)

	// 1) Node section, storage order.
	for _, id := range g.IDs() {
		data, err := g.Data(id)
		if err != nil {
			return fmt.Errorf("tgf: node %d: %w", id, err)
		}
		payload, err := marshalPayload(data)
		if err != nil {
			return fmt.Errorf("tgf: encode payload of node %d: %w", id, err)
		}
		fmt.Fprintf(bw, "%d %s\n", id, payload)
	}

	// 2) Separator.
	fmt.Fprintf(bw, "%s\n", separator)

	// 3) Edge section: one line per node with outgoing edges.
	for _, id := range g.IDs() {
		adj, err := g.AdjacentIDs(id)
		if err != nil {
			return fmt.Errorf("tgf: node %d: %w", id, err)
		}
		if len(adj) == 0 {
			continue // nodes without edges emit no line
		}
		fmt.Fprintf(bw, "%d", id)
		for _, to := range adj {
			fmt.Fprintf(bw, " %d", to)
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// Marshal renders g as an interchange-format string.
func Marshal[T any](g *core.Graph[T]) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// Decode reads one interchange-format document from r and reconstructs the
// container. Node ids need not be contiguous or ordered; storage order is
// document order, so re-encoding reproduces the input byte for byte. The
// allocator resumes at max id + 1 (0 for a document with no nodes).
//
// Malformed lines, duplicate node ids, and edge lines naming undeclared
// nodes wrap ErrFormat; reader failures are returned as-is.
// Complexity: O(V + E) plus payload decoding.
func Decode[T any](r io.Reader) (*core.Graph[T], error) {
	g := core.NewGraph[T]()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	inEdges := false
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()

		if line == separator {
			inEdges = true
			continue
		}

		if !inEdges {
			if err := decodeNodeLine(g, line, lineNo); err != nil {
				return nil, err
			}
			continue
		}
		if err := decodeEdgeLine(g, line, lineNo); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tgf: read: %w", err)
	}

	return g, nil
}

// DecodeFile opens path and decodes its contents. An unreadable file yields
// the wrapped I/O error; a readable but malformed file wraps ErrFormat.
func DecodeFile[T any](path string) (*core.Graph[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tgf: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode[T](f)
}

// decodeNodeLine parses one pre-separator line: "<id> <json-payload>".
func decodeNodeLine[T any](g *core.Graph[T], line string, lineNo int) error {
	m := nodeLine.FindStringSubmatch(line)
	if m == nil {
		return fmt.Errorf("tgf: line %d: malformed node line %q: %w", lineNo, line, ErrFormat)
	}

	id, err := strconv.Atoi(m[1])
	if err != nil {
		return fmt.Errorf("tgf: line %d: node id %q: %w", lineNo, m[1], ErrFormat)
	}

	var data T
	if err = json.Unmarshal([]byte(m[2]), &data); err != nil {
		return fmt.Errorf("tgf: line %d: payload of node %d: %v: %w", lineNo, id, err, ErrFormat)
	}

	if err = g.AddNodeWithID(core.NodeID(id), data); err != nil {
		// Only ErrDuplicateID is reachable: the pattern forbids negatives.
		return fmt.Errorf("tgf: line %d: duplicate node id %d: %w", lineNo, id, ErrFormat)
	}

	return nil
}

// decodeEdgeLine parses one post-separator line: "<src> <dst> <dst> ...".
// Every token must name a node declared before the separator.
func decodeEdgeLine[T any](g *core.Graph[T], line string, lineNo int) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil // blank line carries no edges
	}

	src, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("tgf: line %d: edge source %q: %w", lineNo, fields[0], ErrFormat)
	}
	if !g.HasNode(core.NodeID(src)) {
		return fmt.Errorf("tgf: line %d: edge source %d is not a declared node: %w", lineNo, src, ErrFormat)
	}

	for _, tok := range fields[1:] {
		dst, err := strconv.Atoi(tok)
		if err != nil {
			return fmt.Errorf("tgf: line %d: edge target %q: %w", lineNo, tok, ErrFormat)
		}
		if err = g.AddEdge(core.NodeID(src), core.NodeID(dst)); err != nil {
			return fmt.Errorf("tgf: line %d: edge target %d is not a declared node: %w", lineNo, dst, ErrFormat)
		}
	}

	return nil
}

// marshalPayload JSON-encodes v on a single line. A plain json.Encoder is
// used with HTML escaping off: the format is plain text, and escaping would
// break byte-identical round-trips of payloads containing &, <, or >.
func marshalPayload(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	// Encoder terminates the value with a newline; the node line owns it.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
