// File: subgraph_build.go
// Role: Shared helper turning a walkResult into a fresh subgraph Graph
// (spec §4.D "Graph.bfs", "Graph.shortest_path_bfs", "Graph.parallel_bfs"
// all return a subgraph of visited nodes + qualifying edges).
package bfs

import "github.com/nodeweave/nodeweave/graph"

// buildSubgraph constructs a new Graph containing a clone of every node in
// nodeIDs (in the given order) and every edge in edges whose both endpoints
// are in that set. AddNode/AddEdge already clone attributes, satisfying
// spec's "cloned attributes throughout" requirement for subgraph operators.
func buildSubgraph(nodeIDs []string, nodesByID map[string]*graph.Node, edges []*graph.Edge) (*graph.Graph, error) {
	out := graph.NewGraph()
	included := make(map[string]bool, len(nodeIDs))
	for _, id := range nodeIDs {
		n := nodesByID[id]
		if _, err := out.AddNode(id, n.Attr()); err != nil {
			return nil, err
		}
		included[id] = true
	}
	for _, e := range edges {
		from, to := e.FromNode().ID(), e.ToNode().ID()
		if !included[from] || !included[to] {
			continue
		}
		if _, err := out.AddEdge(from, to, e.Attr()); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// orderedIDs returns the ids in order, deduplicated, keeping each id's
// first position (order is the discovery sequence produced by walk or
// ParallelBFS).
func orderedIDs(order []string) []string {
	seen := make(map[string]bool, len(order))
	out := make([]string, 0, len(order))
	for _, id := range order {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
