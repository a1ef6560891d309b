// File: randomwalk.go
// Role: Graph.random_walks (spec §4.F).
package randomwalk

import (
	"fmt"
	"math/rand"

	"github.com/nodeweave/nodeweave/graph"
	"github.com/nodeweave/nodeweave/nwerrors"
)

const defaultEdgeTypeField = "type"

// Walks generates up to opt.Count walks rooted at start, each with at most
// opt.Length nodes. Walks shorter than opt.MinLength nodes are discarded
// (not returned, not replaced). Duplicate walks are retained and walks are
// returned in generation order. Fails with ErrUnknownNode if start is
// absent from g.
func Walks(g *graph.Graph, start string, opt Options) ([][]string, error) {
	root, err := g.GetNode(start)
	if err != nil {
		return nil, fmt.Errorf("randomwalk.Walks: %w", nwerrors.ErrUnknownNode)
	}
	if opt.Length < 1 {
		opt.Length = 1
	}
	field := opt.EdgeTypeField
	if field == "" {
		field = defaultEdgeTypeField
	}

	base := rngFromSeed(opt.Seed)
	out := make([][]string, 0, opt.Count)
	for i := 0; i < opt.Count; i++ {
		rng := deriveRNG(base, uint64(i))
		nodeSeq, edgeSeq := walkOnce(root, opt.Length, opt.AllowRevisit, rng)
		if len(nodeSeq) < opt.MinLength {
			continue
		}
		if opt.IncludeEdgeTypes {
			out = append(out, interleave(nodeSeq, edgeSeq, field))
		} else {
			out = append(out, nodeSeq)
		}
	}
	return out, nil
}

// walkOnce runs a single walk from root, returning the visited node ids and
// the edge taken between each consecutive pair (len(edges) == len(nodes)-1).
func walkOnce(root *graph.Node, length int, allowRevisit bool, rng *rand.Rand) ([]string, []*graph.Edge) {
	nodes := []string{root.ID()}
	var edges []*graph.Edge
	visited := map[string]bool{root.ID(): true}
	cur := root

	for len(nodes) < length {
		candidates := cur.Edges()
		if !allowRevisit {
			filtered := candidates[:0:0]
			for _, e := range candidates {
				if !visited[e.ToNode().ID()] {
					filtered = append(filtered, e)
				}
			}
			candidates = filtered
		}
		if len(candidates) == 0 {
			break // dead end (or, with revisit disallowed, no unvisited neighbor)
		}
		choice := candidates[rng.Intn(len(candidates))]
		cur = choice.ToNode()
		edges = append(edges, choice)
		nodes = append(nodes, cur.ID())
		visited[cur.ID()] = true
	}
	return nodes, edges
}

// interleave produces [node, edge_type, node, edge_type, ..., node] per
// spec §4.F's include_edge_types form.
func interleave(nodes []string, edges []*graph.Edge, field string) []string {
	out := make([]string, 0, len(nodes)+len(edges))
	out = append(out, nodes[0])
	for i, e := range edges {
		v, _ := e.Attr().Get(field)
		out = append(out, v.ToDisplayString())
		out = append(out, nodes[i+1])
	}
	return out
}
