// File: graph_bfs.go
// Role: Graph.bfs (spec §4.D): returns a subgraph of exactly the visited
// nodes and exactly the edges traversed during BFS that connect two
// visited nodes.
package bfs

import (
	"fmt"

	"github.com/nodeweave/nodeweave/graph"
	"github.com/nodeweave/nodeweave/nwerrors"
)

// GraphBFS runs BFS from rootID within g and returns a fresh subgraph
// containing the visited nodes (cloned attributes) and the edges examined
// during the walk whose endpoints are both visited. Fails with
// ErrUnknownNode if rootID is missing, ErrNotFound if WithTarget is given
// and not reached.
func GraphBFS(g *graph.Graph, rootID string, opts ...Option) (*graph.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	root, err := g.GetNode(rootID)
	if err != nil {
		return nil, fmt.Errorf("bfs.GraphBFS: %w", nwerrors.ErrUnknownNode)
	}
	o := resolveOptions(opts)
	res := walk(root, o.MaxDepth, o.Target)
	if o.Target != "" && !res.found {
		return nil, fmt.Errorf("bfs.GraphBFS: target %q: %w", o.Target, ErrNotFound)
	}
	return buildSubgraph(orderedIDs(res.order), res.nodes, res.traversed)
}
