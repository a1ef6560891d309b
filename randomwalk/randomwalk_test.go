package randomwalk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeweave/nodeweave/graph"
	"github.com/nodeweave/nodeweave/randomwalk"
	"github.com/nodeweave/nodeweave/value"
)

func buildTriangle(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	for _, id := range []string{"n1", "n2", "n3"} {
		_, err := g.AddNode(id, nil)
		require.NoError(t, err)
	}
	for _, e := range [][2]string{{"n1", "n2"}, {"n2", "n1"}, {"n2", "n3"}} {
		_, err := g.AddEdge(e[0], e[1], nil)
		require.NoError(t, err)
	}
	return g
}

// TestWalks_NoRevisit reproduces scenario S4's first half: with
// allow_revisit=false, the only admissible walk of length 3 is n1->n2->n3,
// since n1->n2->n1 revisits n1.
func TestWalks_NoRevisit(t *testing.T) {
	g := buildTriangle(t)
	walks, err := randomwalk.Walks(g, "n1", randomwalk.Options{
		Length:       3,
		Count:        5,
		MinLength:    3,
		AllowRevisit: false,
		Seed:         42,
	})
	require.NoError(t, err)
	require.Len(t, walks, 1)
	assert.Equal(t, []string{"n1", "n2", "n3"}, walks[0])
}

// TestWalks_AllowRevisit reproduces scenario S4's second half: every walk
// produced must be one of the two admissible 3-node sequences.
func TestWalks_AllowRevisit(t *testing.T) {
	g := buildTriangle(t)
	walks, err := randomwalk.Walks(g, "n1", randomwalk.Options{
		Length:       3,
		Count:        10,
		MinLength:    3,
		AllowRevisit: true,
		Seed:         7,
	})
	require.NoError(t, err)
	for _, w := range walks {
		assert.Contains(t, [][]string{
			{"n1", "n2", "n1"},
			{"n1", "n2", "n3"},
		}, w)
	}
}

func TestWalks_MinLengthDiscardsShortWalks(t *testing.T) {
	g := graph.NewGraph()
	_, err := g.AddNode("a", nil)
	require.NoError(t, err)
	walks, err := randomwalk.Walks(g, "a", randomwalk.Options{
		Length:    5,
		Count:     3,
		MinLength: 2,
	})
	require.NoError(t, err)
	assert.Empty(t, walks, "lone node with no outgoing edges never reaches min_length=2")
}

func TestWalks_IncludeEdgeTypes(t *testing.T) {
	g := graph.NewGraph()
	for _, id := range []string{"a", "b"} {
		_, err := g.AddNode(id, nil)
		require.NoError(t, err)
	}
	attrs := value.NewAttributeMap(nil)
	require.NoError(t, attrs.Set("type", value.String("KNOWS")))
	_, err := g.AddEdge("a", "b", attrs)
	require.NoError(t, err)

	walks, err := randomwalk.Walks(g, "a", randomwalk.Options{
		Length:           2,
		Count:            1,
		MinLength:        1,
		IncludeEdgeTypes: true,
	})
	require.NoError(t, err)
	require.Len(t, walks, 1)
	assert.Equal(t, []string{"a", "KNOWS", "b"}, walks[0])
}

func TestWalks_UnknownStart(t *testing.T) {
	g := graph.NewGraph()
	_, err := randomwalk.Walks(g, "missing", randomwalk.Options{Length: 1, Count: 1})
	assert.Error(t, err)
}

func TestWalks_Deterministic(t *testing.T) {
	g := buildTriangle(t)
	opt := randomwalk.Options{Length: 3, Count: 10, MinLength: 1, AllowRevisit: true, Seed: 99}
	a, err := randomwalk.Walks(g, "n1", opt)
	require.NoError(t, err)
	b, err := randomwalk.Walks(g, "n1", opt)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must reproduce the same walk sequence")
}
