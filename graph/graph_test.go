package graph_test

import (
	"errors"
	"testing"

	"github.com/nodeweave/nodeweave/graph"
	"github.com/nodeweave/nodeweave/nwerrors"
	"github.com/nodeweave/nodeweave/value"
)

func TestAddNode_DuplicateID(t *testing.T) {
	g := graph.NewGraph()
	if _, err := g.AddNode("a", nil); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	_, err := g.AddNode("a", nil)
	if !errors.Is(err, nwerrors.ErrDuplicateID) {
		t.Errorf("err = %v, want ErrDuplicateID", err)
	}
}

func TestAddNode_ClonesAttrs(t *testing.T) {
	g := graph.NewGraph()
	attrs := value.NewAttributeMap(nil)
	_ = attrs.Set("name", value.String("Alice"))

	n, err := g.AddNode("n1", attrs)
	if err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	_ = attrs.Set("name", value.String("Mutated"))

	got, _ := n.AttrGet("name")
	if s, _ := got.AsString(); s != "Alice" {
		t.Errorf("node attr mutated via caller's map alias: got %q", s)
	}
}

func TestAddEdge_UnknownNode(t *testing.T) {
	g := graph.NewGraph()
	_, _ = g.AddNode("a", nil)
	if _, err := g.AddEdge("a", "missing", nil); !errors.Is(err, nwerrors.ErrUnknownNode) {
		t.Errorf("err = %v, want ErrUnknownNode", err)
	}
	if _, err := g.AddEdge("missing", "a", nil); !errors.Is(err, nwerrors.ErrUnknownNode) {
		t.Errorf("err = %v, want ErrUnknownNode", err)
	}
}

// TestAdjacencyConsistency is property 1 of spec §8: every edge appears in
// exactly one From.Edges() and one To.InverseEdges().
func TestAdjacencyConsistency(t *testing.T) {
	g := graph.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		if _, err := g.AddNode(id, nil); err != nil {
			t.Fatalf("AddNode(%q): %v", id, err)
		}
	}
	if _, err := g.AddEdge("a", "b", nil); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, err := g.AddEdge("a", "b", nil); err != nil { // parallel edge
		t.Fatalf("AddEdge (parallel): %v", err)
	}
	if _, err := g.AddEdge("a", "a", nil); err != nil { // self-loop
		t.Fatalf("AddEdge (self-loop): %v", err)
	}

	a, _ := g.GetNode("a")
	b, _ := g.GetNode("b")

	if len(a.Edges()) != 3 {
		t.Fatalf("a.Edges() = %d, want 3", len(a.Edges()))
	}
	if len(b.InverseEdges()) != 2 {
		t.Fatalf("b.InverseEdges() = %d, want 2", len(b.InverseEdges()))
	}
	if len(a.InverseEdges()) != 1 { // the self-loop's inverse side
		t.Fatalf("a.InverseEdges() = %d, want 1", len(a.InverseEdges()))
	}
	if g.EdgeCount() != 3 {
		t.Fatalf("EdgeCount() = %d, want 3", g.EdgeCount())
	}
}

// TestDeterministicInsertionOrder is property 2 of spec §8.
func TestDeterministicInsertionOrder(t *testing.T) {
	g := graph.NewGraph()
	ids := []string{"z", "a", "m", "b"}
	for _, id := range ids {
		if _, err := g.AddNode(id, nil); err != nil {
			t.Fatalf("AddNode(%q): %v", id, err)
		}
	}
	got := g.Keys()
	for i, id := range ids {
		if got[i] != id {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], id)
		}
	}

	n, _ := g.AddNode("hub", nil)
	_ = n
	hub, _ := g.GetNode("hub")
	var order []string
	for _, target := range []string{"z", "a", "m", "b"} {
		if _, err := g.AddEdge("hub", target, nil); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
		order = append(order, target)
	}
	for i, e := range hub.Edges() {
		if e.ToNode().ID() != order[i] {
			t.Errorf("Edges()[%d].ToNode() = %q, want %q", i, e.ToNode().ID(), order[i])
		}
	}
}

func TestOnNodeAdd_Callback(t *testing.T) {
	g := graph.NewGraph()
	var seen []string
	g.OnNodeAdd(func(gg *graph.Graph, n *graph.Node) bool {
		if gg != g {
			t.Error("callback graph mismatch")
		}
		seen = append(seen, n.ID())
		return true
	})
	if _, err := g.AddNode("x", nil); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if len(seen) != 1 || seen[0] != "x" {
		t.Errorf("seen = %v, want [x]", seen)
	}
}

func TestOnNodeAdd_FalsySuppressesRemaining(t *testing.T) {
	g := graph.NewGraph()
	var calls int
	g.OnNodeAdd(func(*graph.Graph, *graph.Node) bool {
		calls++
		return false
	})
	g.OnNodeAdd(func(*graph.Graph, *graph.Node) bool {
		calls++
		return true
	})
	n, err := g.AddNode("x", nil)
	if err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if n == nil || n.ID() != "x" {
		t.Fatal("node must still be added even when a callback suppresses the rest")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (second callback should be suppressed)", calls)
	}
}

func TestGetMetadata_Counts(t *testing.T) {
	g := graph.NewGraph()
	_, _ = g.AddNode("a", nil)
	_, _ = g.AddNode("b", nil)
	_, _ = g.AddEdge("a", "b", nil)

	meta := g.GetMetadata()
	nc, _ := mustGet(t, meta, "node_count").AsInt()
	ec, _ := mustGet(t, meta, "edge_count").AsInt()
	if nc != 2 {
		t.Errorf("node_count = %d, want 2", nc)
	}
	if ec != 1 {
		t.Errorf("edge_count = %d, want 1", ec)
	}
}

func mustGet(t *testing.T, m *value.AttributeMap, key string) value.Value {
	t.Helper()
	v, ok := m.Get(key)
	if !ok {
		t.Fatalf("missing key %q", key)
	}
	return v
}

func TestAttrListAppend_TypeMismatch(t *testing.T) {
	g := graph.NewGraph()
	n, _ := g.AddNode("a", nil)
	if err := n.AttrSet("scalar", value.Int(1)); err != nil {
		t.Fatalf("AttrSet: %v", err)
	}
	if err := n.AttrListAppend("scalar", value.Int(2)); !errors.Is(err, nwerrors.ErrTypeMismatch) {
		t.Errorf("err = %v, want ErrTypeMismatch", err)
	}
	if err := n.AttrListAppend("tags", value.String("x")); err != nil {
		t.Fatalf("AttrListAppend (create): %v", err)
	}
	got, _ := n.AttrGet("tags")
	items, _ := got.AsList()
	if len(items) != 1 {
		t.Errorf("tags = %v, want 1-element list", got)
	}
}
