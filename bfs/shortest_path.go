// File: shortest_path.go
// Role: Graph.shortest_path_bfs (spec §4.D): returns the subgraph formed by
// the single shortest path between src and dst, tie-broken by first
// discovery order in the underlying BFS (deterministic given insertion
// order).
package bfs

import (
	"fmt"

	"github.com/nodeweave/nodeweave/graph"
	"github.com/nodeweave/nodeweave/nwerrors"
)

// ShortestPath runs BFS from srcID looking for dstID and returns a subgraph
// containing only the nodes and edges on the (first-discovered) shortest
// path between them. Fails with ErrUnknownNode if either id is missing from
// g, and ErrNotFound if dst is unreachable from src (within MaxDepth, if
// given).
func ShortestPath(g *graph.Graph, srcID, dstID string, opts ...Option) (*graph.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	src, err := g.GetNode(srcID)
	if err != nil {
		return nil, fmt.Errorf("bfs.ShortestPath: src: %w", nwerrors.ErrUnknownNode)
	}
	if _, err := g.GetNode(dstID); err != nil {
		return nil, fmt.Errorf("bfs.ShortestPath: dst: %w", nwerrors.ErrUnknownNode)
	}

	o := resolveOptions(opts)
	res := walk(src, o.MaxDepth, dstID)
	if !res.found {
		return nil, fmt.Errorf("bfs.ShortestPath: %q -> %q: %w", srcID, dstID, ErrNotFound)
	}

	if srcID == dstID {
		return buildSubgraph([]string{srcID}, res.nodes, nil)
	}

	var pathEdges []*graph.Edge
	ids := map[string]bool{dstID: true}
	cur := dstID
	for cur != srcID {
		e, ok := res.discoveredBy[cur]
		if !ok {
			return nil, fmt.Errorf("bfs.ShortestPath: %q -> %q: %w", srcID, dstID, ErrNotFound)
		}
		pathEdges = append(pathEdges, e)
		cur = e.FromNode().ID()
		ids[cur] = true
	}

	// ids was built back-to-front; order it src -> dst for subgraph node order.
	ordered := make([]string, 0, len(ids))
	cur = srcID
	ordered = append(ordered, cur)
	for i := len(pathEdges) - 1; i >= 0; i-- {
		cur = pathEdges[i].ToNode().ID()
		ordered = append(ordered, cur)
	}

	return buildSubgraph(ordered, res.nodes, pathEdges)
}
