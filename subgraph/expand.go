// File: expand.go
// Role: Graph.expand (spec §4.E): treating self as a subset of source,
// returns a subgraph adding every node reachable within depth hops in
// source from any node already in self.
package subgraph

import (
	"fmt"

	"github.com/nodeweave/nodeweave/graph"
	"github.com/nodeweave/nodeweave/nwerrors"
)

// Expand grows self within source by depth hops. The result holds every
// source edge between included nodes, with attributes copied from source.
// depth == 0 therefore returns self's nodes plus all source edges among
// them; this equals a structural clone of self only when self already
// holds every such edge.
// Fails with ErrUnknownNode if any id in self is missing from source.
func Expand(self, source *graph.Graph, depth int) (*graph.Graph, error) {
	included := make(map[string]int, self.NodeCount()) // id -> hop distance from self
	var frontier []*graph.Node
	for _, id := range self.Keys() {
		n, err := source.GetNode(id)
		if err != nil {
			return nil, fmt.Errorf("subgraph.Expand: %q: %w", id, nwerrors.ErrUnknownNode)
		}
		included[id] = 0
		frontier = append(frontier, n)
	}

	for hop := 0; hop < depth; hop++ {
		var next []*graph.Node
		for _, n := range frontier {
			for _, e := range n.Edges() {
				tgt := e.ToNode()
				if _, seen := included[tgt.ID()]; seen {
					continue
				}
				included[tgt.ID()] = hop + 1
				next = append(next, tgt)
			}
		}
		frontier = next
		if len(frontier) == 0 {
			break
		}
	}

	out := graph.NewGraph()
	for _, id := range orderedBySourceKeys(source, included) {
		n, err := source.GetNode(id)
		if err != nil {
			return nil, err
		}
		if _, err := out.AddNode(id, n.Attr()); err != nil {
			return nil, err
		}
	}
	for id := range included {
		n, err := source.GetNode(id)
		if err != nil {
			return nil, err
		}
		for _, e := range n.Edges() {
			to := e.ToNode().ID()
			if _, ok := included[to]; !ok {
				continue
			}
			if _, err := out.AddEdge(id, to, e.Attr()); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// orderedBySourceKeys returns the included ids in source's own insertion
// order, so Expand's output keys are deterministic regardless of map
// iteration order.
func orderedBySourceKeys(source *graph.Graph, included map[string]int) []string {
	out := make([]string, 0, len(included))
	for _, id := range source.Keys() {
		if _, ok := included[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
