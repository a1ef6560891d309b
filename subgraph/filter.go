// File: filter.go
// Role: Graph.filter (spec §4.E), split into two named operations per the
// §9 "polymorphic filter return" resolution instead of one dual-shape call.
package subgraph

import (
	"fmt"

	"github.com/nodeweave/nodeweave/graph"
	"github.com/nodeweave/nodeweave/nwerrors"
	"github.com/nodeweave/nodeweave/value"
)

// Selector names the keyword-selector forms spec.md recognizes for
// Subgraph: IDs (or a single ID), or a Key/Value attribute match. At most
// one form should be populated; IDs takes precedence if both are set.
type Selector struct {
	IDs   []string
	Key   string
	Value value.Value
}

// FilterNodes returns every node in g for which pred reports true, in g's
// insertion order. This is the "callable-predicate, iteration form" surface
// from spec §4.E/§9.
func FilterNodes(g *graph.Graph, pred func(*graph.Node) bool) []*graph.Node {
	var out []*graph.Node
	for _, id := range g.Keys() {
		n, err := g.GetNode(id)
		if err != nil {
			continue // concurrently removed; graph has no delete today, defensive only
		}
		if pred(n) {
			out = append(out, n)
		}
	}
	return out
}

// Subgraph returns a new Graph containing the nodes matching sel, with
// edges restricted to those whose both endpoints are in the selection.
// Attributes are cloned throughout (inherited from graph.AddNode/AddEdge).
func Subgraph(g *graph.Graph, sel Selector) (*graph.Graph, error) {
	var matchIDs []string
	switch {
	case len(sel.IDs) > 0:
		matchIDs = sel.IDs
	case sel.Key != "":
		for _, id := range g.Keys() {
			n, err := g.GetNode(id)
			if err != nil {
				continue
			}
			v, ok := n.Attr().Get(sel.Key)
			if ok && value.Equal(v, sel.Value) {
				matchIDs = append(matchIDs, id)
			}
		}
	}

	out := graph.NewGraph()
	included := make(map[string]*graph.Node, len(matchIDs))
	for _, id := range matchIDs {
		n, err := g.GetNode(id)
		if err != nil {
			return nil, fmt.Errorf("subgraph.Subgraph: %q: %w", id, nwerrors.ErrUnknownNode)
		}
		if _, err := out.AddNode(id, n.Attr()); err != nil {
			return nil, err
		}
		included[id] = n
	}
	for id, n := range included {
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
