package dfs_test

import (
	"reflect"
	"testing"

	"github.com/nodeweave/nodeweave/dfs"
	"github.com/nodeweave/nodeweave/graph"
)

func buildLinear(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	ids := []string{"n1", "n2", "n3", "n4", "n5"}
	for _, id := range ids {
		if _, err := g.AddNode(id, nil); err != nil {
			t.Fatalf("AddNode(%q): %v", id, err)
		}
	}
	for i := 0; i < len(ids)-1; i++ {
		if _, err := g.AddEdge(ids[i], ids[i+1], nil); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	return g
}

func TestTraverse_Unbounded(t *testing.T) {
	g := buildLinear(t)
	n1, _ := g.GetNode("n1")
	got := dfs.Traverse(n1, nil)
	want := []string{"n1", "n2", "n3", "n4", "n5"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Traverse = %v, want %v", got, want)
	}
}

func TestTraverse_DepthBound(t *testing.T) {
	g := buildLinear(t)
	n1, _ := g.GetNode("n1")
	d := 2
	got := dfs.Traverse(n1, &d)
	want := []string{"n1", "n2", "n3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Traverse(depth=2) = %v, want %v", got, want)
	}

	zero := 0
	got0 := dfs.Traverse(n1, &zero)
	if !reflect.DeepEqual(got0, []string{"n1"}) {
		t.Errorf("Traverse(depth=0) = %v, want [n1]", got0)
	}
}

func TestTraverse_TieBreakIsEdgeOrder(t *testing.T) {
	g := graph.NewGraph()
	for _, id := range []string{"root", "b", "a", "c"} {
		if _, err := g.AddNode(id, nil); err != nil {
			t.Fatalf("AddNode(%q): %v", id, err)
		}
	}
	for _, to := range []string{"b", "a", "c"} {
		if _, err := g.AddEdge("root", to, nil); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	root, _ := g.GetNode("root")
	got := dfs.Traverse(root, nil)
	want := []string{"root", "b", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Traverse = %v, want %v", got, want)
	}
}

func TestTraverse_CycleSafe(t *testing.T) {
	g := graph.NewGraph()
	_, _ = g.AddNode("a", nil)
	_, _ = g.AddNode("b", nil)
	_, _ = g.AddEdge("a", "b", nil)
	_, _ = g.AddEdge("b", "a", nil)
	a, _ := g.GetNode("a")
	got := dfs.Traverse(a, nil)
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Traverse (cycle) = %v, want %v", got, want)
	}
}
