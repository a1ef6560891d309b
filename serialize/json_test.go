package serialize_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeweave/nodeweave/graph"
	"github.com/nodeweave/nodeweave/serialize"
	"github.com/nodeweave/nodeweave/value"
)

func buildRichGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	require.NoError(t, g.Meta().Set("created_by", value.String("test")))

	aAttrs := value.NewAttributeMap(nil)
	require.NoError(t, aAttrs.Set("name", value.String("Alice")))
	require.NoError(t, aAttrs.Set("age", value.Int(30)))
	require.NoError(t, aAttrs.Set("scores", value.List([]value.Value{value.Int(1), value.Float(2.5)})))
	_, err := g.AddNode("a", aAttrs)
	require.NoError(t, err)

	_, err = g.AddNode("b", nil)
	require.NoError(t, err)

	eAttrs := value.NewAttributeMap(nil)
	require.NoError(t, eAttrs.Set("type", value.String("KNOWS")))
	_, err = g.AddEdge("a", "b", eAttrs)
	require.NoError(t, err)

	return g
}

func TestJSON_RoundTrip(t *testing.T) {
	g := buildRichGraph(t)

	var buf bytes.Buffer
	require.NoError(t, serialize.SaveJSON(g, &buf))

	loaded, err := serialize.LoadJSON(&buf)
	require.NoError(t, err)

	assert.Equal(t, g.Keys(), loaded.Keys())
	assert.Equal(t, g.EdgeCount(), loaded.EdgeCount())

	a, err := loaded.GetNode("a")
	require.NoError(t, err)
	name, _ := a.Attr().Get("name")
	s, _ := name.AsString()
	assert.Equal(t, "Alice", s)
	age, _ := a.Attr().Get("age")
	i, _ := age.AsInt()
	assert.EqualValues(t, 30, i)

	createdBy, _ := loaded.Meta().Get("created_by")
	cb, _ := createdBy.AsString()
	assert.Equal(t, "test", cb)

	edges := a.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, "b", edges[0].ToNode().ID())
}

func TestJSON_WireFormatIsLiteralSchema(t *testing.T) {
	g := graph.NewGraph()
	attrs := value.NewAttributeMap(nil)
	require.NoError(t, attrs.Set("age", value.Int(30)))
	require.NoError(t, attrs.Set("height", value.Float(1.5)))
	_, err := g.AddNode("a", attrs)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, serialize.SaveJSON(g, &buf))
	out := buf.String()

	// attr/meta are real JSON objects, not tagged {"key":..,"value":..} arrays,
	// and Int/Float are bare numbers distinguished by fractional-part presence.
	assert.Contains(t, out, `"attr":{"age":30,"height":1.5}`)
	assert.Contains(t, out, `"meta":{}`)
}

func TestBinary_RoundTrip(t *testing.T) {
	g := buildRichGraph(t)

	var buf bytes.Buffer
	require.NoError(t, serialize.SaveBinary(g, &buf))

	loaded, err := serialize.LoadBinary(&buf)
	require.NoError(t, err)

	assert.Equal(t, g.Keys(), loaded.Keys())
	assert.Equal(t, g.EdgeCount(), loaded.EdgeCount())

	a, err := loaded.GetNode("a")
	require.NoError(t, err)
	scores, _ := a.Attr().Get("scores")
	items, _ := scores.AsList()
	require.Len(t, items, 2)
	i0, _ := items[0].AsInt()
	f1, _ := items[1].AsFloat()
	assert.EqualValues(t, 1, i0)
	assert.Equal(t, 2.5, f1)
}

func TestAttachEmbeddingsFromMeta(t *testing.T) {
	g := graph.NewGraph()
	_, err := g.AddNode("a", nil)
	require.NoError(t, err)
	_, err = g.AddNode("b", nil)
	require.NoError(t, err)

	require.NoError(t, g.Meta().Set("embedding", value.List([]value.Value{
		value.List([]value.Value{value.Float(0.1), value.Float(0.2)}),
		value.List([]value.Value{value.Float(0.3), value.Float(0.4)}),
	})))
	require.NoError(t, g.Meta().Set("embedding_ids", value.List([]value.Value{
		value.String("a"), value.String("b"),
	})))

	require.NoError(t, serialize.AttachEmbeddingsFromMeta(g))

	a, err := g.GetNode("a")
	require.NoError(t, err)
	emb, ok := a.Attr().Get("embeddings")
	require.True(t, ok)
	items, _ := emb.AsList()
	require.Len(t, items, 1)
}

func TestAttachEmbeddingsFromMeta_MismatchedLengths(t *testing.T) {
	g := graph.NewGraph()
	_, err := g.AddNode("a", nil)
	require.NoError(t, err)
	require.NoError(t, g.Meta().Set("embedding", value.List([]value.Value{
		value.List([]value.Value{value.Float(0.1)}),
	})))
	require.NoError(t, g.Meta().Set("embedding_ids", value.List(nil)))

	err = serialize.AttachEmbeddingsFromMeta(g)
	assert.Error(t, err)
}
