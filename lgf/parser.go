// File: parser.go
// Role: LGF parser (spec §4.G) — line classifier maintaining current_node
// and current_edge/edge_indent state while walking the text line by line.
package lgf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nodeweave/nodeweave/graph"
	"github.com/nodeweave/nodeweave/nwerrors"
	"github.com/nodeweave/nodeweave/value"
)

// Parse reads and parses the LGF file at path, resolving any import()
// statements relative to the importing file's directory, and returns the
// resulting graph.
func Parse(path string) (*graph.Graph, error) {
	g := graph.NewGraph()
	if err := parseFile(g, path, make(map[string]bool)); err != nil {
		return nil, err
	}
	return g, nil
}

// ParseReader parses LGF text from r into a fresh graph. basePath anchors
// any import() statements the text contains (empty means the current
// working directory).
func ParseReader(r io.Reader, basePath string) (*graph.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("lgf.ParseReader: %w", nwerrors.ErrIO)
	}
	g := graph.NewGraph()
	if err := parseText(g, string(data), basePath, make(map[string]bool)); err != nil {
		return nil, err
	}
	return g, nil
}

func parseFile(g *graph.Graph, path string, visited map[string]bool) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("lgf: %s: %w", path, nwerrors.ErrIO)
	}
	if visited[abs] {
		return newParseError(0, path, "import cycle")
	}
	visited[abs] = true
	defer delete(visited, abs) // visited holds the current import chain only

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("lgf: %s: %w", path, nwerrors.ErrIO)
	}
	return parseText(g, string(data), filepath.Dir(path), visited)
}

func parseText(g *graph.Graph, text, basePath string, visited map[string]bool) error {
	normalized := strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")
	lines := strings.Split(normalized, "\n")

	var currentNode *graph.Node
	var currentEdge *graph.Edge
	edgeIndent := 0

	for idx := 0; idx < len(lines); idx++ {
		raw := lines[idx]
		stripped := strings.TrimSpace(raw)
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}
		indent := leadingIndent(raw)

		if indent == 0 && strings.HasPrefix(stripped, "import(") && strings.HasSuffix(stripped, ")") {
			importPath := strings.TrimSpace(stripped[len("import(") : len(stripped)-1])
			if unquoted, ok := stripQuotes(importPath); ok {
				importPath = unquoted
			}
			fullPath := filepath.Join(basePath, importPath)
			if err := parseFile(g, fullPath, visited); err != nil {
				return err
			}
			currentNode, currentEdge, edgeIndent = nil, nil, 0
			continue
		}

		if indent == 0 {
			n, err := nodeHeader(g, stripped)
			if err != nil {
				return err
			}
			currentNode = n
			currentEdge = nil
			continue
		}

		if currentNode == nil {
			return newParseError(idx+1, stripped, "indented line before any node header")
		}

		if rel, target, ok := parseForwardArrow(stripped); ok {
			e, err := addEdgeNode(g, currentNode.ID(), target, rel)
			if err != nil {
				return err
			}
			currentEdge = e
			edgeIndent = indent
			continue
		}
		if rel, target, ok := parseInverseArrow(stripped); ok {
			e, err := addEdgeNode(g, target, currentNode.ID(), rel)
			if err != nil {
				return err
			}
			currentEdge = e
			edgeIndent = indent
			continue
		}

		eq := strings.Index(stripped, "=")
		if eq < 0 {
			return newParseError(idx+1, stripped, "expected key = value")
		}
		key := strings.TrimSpace(stripped[:eq])
		v, err := parseValue(stripped[eq+1:], lines, &idx)
		if err != nil {
			return err
		}

		if currentEdge != nil && indent > edgeIndent {
			if err := currentEdge.Attr().Set(key, v); err != nil {
				return err
			}
		} else {
			if err := currentNode.AttrSet(key, v); err != nil {
				return err
			}
			currentEdge = nil
		}
	}
	return nil
}

// nodeHeader handles a column-0 line: the first whitespace-separated token
// is the node id, the rest become its labels list. An existing node's
// labels are overwritten; a new node is created with {labels: [...]}.
func nodeHeader(g *graph.Graph, stripped string) (*graph.Node, error) {
	parts := strings.Fields(stripped)
	nodeID := parts[0]
	labels := parts[1:]
	labelVals := make([]value.Value, len(labels))
	for i, l := range labels {
		labelVals[i] = value.String(l)
	}

	if n, err := g.GetNode(nodeID); err == nil {
		if err := n.AttrSet("labels", value.List(labelVals)); err != nil {
			return nil, err
		}
		return n, nil
	}

	attrs := value.NewAttributeMap(nil)
	if err := attrs.Set("labels", value.List(labelVals)); err != nil {
		return nil, err
	}
	return g.AddNode(nodeID, attrs)
}

// addEdgeNode creates an edge fromID -> toID with {type: rel}, creating
// toID with empty attrs first if it does not yet exist (spec §4.G rules
// 4-5).
func addEdgeNode(g *graph.Graph, fromID, toID, rel string) (*graph.Edge, error) {
	if !g.HasNode(toID) {
		if _, err := g.AddNode(toID, nil); err != nil {
			return nil, err
		}
	}
	attrs := value.NewAttributeMap(nil)
	if err := attrs.Set("type", value.String(rel)); err != nil {
		return nil, err
	}
	return g.AddEdge(fromID, toID, attrs)
}

// parseForwardArrow recognizes "-RELATION-> TARGET" or "-RELATION->TARGET".
func parseForwardArrow(stripped string) (rel, target string, ok bool) {
	if !strings.HasPrefix(stripped, "-") {
		return "", "", false
	}
	i := strings.Index(stripped, "->")
	if i < 1 {
		return "", "", false
	}
	rel = strings.TrimSpace(stripped[1:i])
	target = strings.TrimSpace(stripped[i+2:])
	if rel == "" || target == "" {
		return "", "", false
	}
	return rel, target, true
}

// parseInverseArrow recognizes "<-RELATION- TARGET".
func parseInverseArrow(stripped string) (rel, target string, ok bool) {
	if !strings.HasPrefix(stripped, "<-") {
		return "", "", false
	}
	rest := stripped[2:]
	i := strings.Index(rest, "-")
	if i < 0 {
		return "", "", false
	}
	rel = strings.TrimSpace(rest[:i])
	target = strings.TrimSpace(rest[i+1:])
	if rel == "" || target == "" {
		return "", "", false
	}
	return rel, target, true
}

// leadingIndent returns the number of leading whitespace runes in raw.
func leadingIndent(raw string) int {
	return len(raw) - len(strings.TrimLeft(raw, " \t"))
}
