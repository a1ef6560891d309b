// File: json.go
// Role: JSON serialization (spec §4.H): a lossless round-trip of the
// Graph's nodes, edges, both attribute maps, and meta, matching the
// documented wire schema:
//
//	{"meta": {...}, "nodes": [{"id":..., "attr": {...}, "edges": [{"to":..., "attr": {...}}, ...]}, ...]}
//
// meta/attr are real JSON objects, not tagged arrays. encoding/json does
// not preserve Go map key order on encode, so attribute maps are written
// and read by hand (writeAttrMap / decodeAttrMap) rather than through
// json.Marshal/Unmarshal on a map[string]any, to keep the insertion-order
// invariant (spec §3) intact through a save/load cycle. Int values are
// emitted as bare JSON integers and Float values always with a fractional
// part, via Value.ToDisplayString (value/format.go's formatInt/formatFloat),
// so the kind of a number is recoverable on load by the presence of "." or
// an exponent in its literal text.
package serialize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/nodeweave/nodeweave/graph"
	"github.com/nodeweave/nodeweave/nwerrors"
	"github.com/nodeweave/nodeweave/value"
)

// wireGraph/wireNode/wireEdge describe the outer JSON shape. Their field
// order doesn't matter to encoding/json (struct decode matches by key, not
// position), so only the attribute maps nested inside need hand-rolled,
// order-preserving handling.
type wireGraph struct {
	Meta  json.RawMessage `json:"meta"`
	Nodes []wireNode      `json:"nodes"`
}

type wireNode struct {
	ID    string          `json:"id"`
	Attr  json.RawMessage `json:"attr"`
	Edges []wireEdge      `json:"edges"`
}

type wireEdge struct {
	To   string          `json:"to"`
	Attr json.RawMessage `json:"attr"`
}

// SaveJSON writes g to w as JSON: {meta, nodes: [{id, attr, edges: [{to, attr}, ...]}, ...]}.
func SaveJSON(g *graph.Graph, w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteString(`{"meta":`)
	if err := writeAttrMap(&buf, g.Meta()); err != nil {
		return err
	}
	buf.WriteString(`,"nodes":[`)
	for i, id := range g.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		n, err := g.GetNode(id)
		if err != nil {
			return err
		}
		buf.WriteString(`{"id":`)
		writeJSONString(&buf, id)
		buf.WriteString(`,"attr":`)
		if err := writeAttrMap(&buf, n.Attr()); err != nil {
			return err
		}
		buf.WriteString(`,"edges":[`)
		for j, e := range n.Edges() {
			if j > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(`{"to":`)
			writeJSONString(&buf, e.ToNode().ID())
			buf.WriteString(`,"attr":`)
			if err := writeAttrMap(&buf, e.Attr()); err != nil {
				return err
			}
			buf.WriteByte('}')
		}
		buf.WriteString(`]}`)
	}
	buf.WriteString(`]}`)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("serialize.SaveJSON: %w", nwerrors.ErrIO)
	}
	return nil
}

// LoadJSON reads a Graph previously written by SaveJSON, reconstructing
// nodes in array order and then each node's edges in their listed order
// (inverse edges are rebuilt automatically by AddEdge).
func LoadJSON(r io.Reader) (*graph.Graph, error) {
	var wg wireGraph
	dec := json.NewDecoder(r)
	if err := dec.Decode(&wg); err != nil {
		return nil, fmt.Errorf("serialize.LoadJSON: %w", nwerrors.ErrIO)
	}

	g := graph.NewGraph()
	meta, err := decodeAttrMap(wg.Meta)
	if err != nil {
		return nil, err
	}
	for _, k := range meta.Keys() {
		v, _ := meta.Get(k)
		if err := g.Meta().Set(k, v); err != nil {
			return nil, err
		}
	}

	for _, wn := range wg.Nodes {
		attrs, err := decodeAttrMap(wn.Attr)
		if err != nil {
			return nil, err
		}
		if _, err := g.AddNode(wn.ID, attrs); err != nil {
			return nil, err
		}
	}
	for _, wn := range wg.Nodes {
		for _, we := range wn.Edges {
			attrs, err := decodeAttrMap(we.Attr)
			if err != nil {
				return nil, err
			}
			if _, err := g.AddEdge(wn.ID, we.To, attrs); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// writeAttrMap writes m as a JSON object with keys in insertion order.
func writeAttrMap(buf *bytes.Buffer, m *value.AttributeMap) error {
	buf.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONString(buf, k)
		buf.WriteByte(':')
		v, _ := m.Get(k)
		if err := writeValue(buf, v); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// writeValue writes v as a bare JSON literal: Int without a fractional
// part, Float always with one (or an exponent), per spec.
func writeValue(buf *bytes.Buffer, v value.Value) error {
	switch v.Kind() {
	case value.KindNull:
		buf.WriteString("null")
	case value.KindBool:
		b, _ := v.AsBool()
		if b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case value.KindInt:
		buf.WriteString(v.ToDisplayString())
	case value.KindFloat:
		f, _ := v.AsFloat()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("serialize.SaveJSON: float %v has no JSON representation: %w", f, nwerrors.ErrTypeMismatch)
		}
		buf.WriteString(v.ToDisplayString())
	case value.KindString:
		s, _ := v.AsString()
		writeJSONString(buf, s)
	case value.KindList:
		items, _ := v.AsList()
		buf.WriteByte('[')
		for i, it := range items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, it); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case value.KindMap:
		m, _ := v.AsMap()
		if m == nil {
			buf.WriteString("{}")
			return nil
		}
		return writeAttrMap(buf, m)
	}
	return nil
}

// writeJSONString writes s as a quoted, escaped JSON string literal.
func writeJSONString(buf *bytes.Buffer, s string) {
	b, _ := json.Marshal(s) // string marshal never fails
	buf.Write(b)
}

// decodeAttrMap parses a JSON object from data into an AttributeMap,
// preserving the object's key order (the whole reason this isn't just
// json.Unmarshal into a map[string]any).
func decodeAttrMap(data []byte) (*value.AttributeMap, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("serialize.LoadJSON: %w", nwerrors.ErrIO)
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return nil, fmt.Errorf("serialize.LoadJSON: expected object: %w", nwerrors.ErrTypeMismatch)
	}
	m := value.NewAttributeMap(nil)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("serialize.LoadJSON: %w", nwerrors.ErrIO)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("serialize.LoadJSON: expected string key: %w", nwerrors.ErrTypeMismatch)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		if err := m.Set(key, v); err != nil {
			return nil, err
		}
	}
	if _, err := dec.Token(); err != nil { // consume closing '}'
		return nil, fmt.Errorf("serialize.LoadJSON: %w", nwerrors.ErrIO)
	}
	return m, nil
}

// decodeValue reads one JSON value from dec (which must have UseNumber
// set), distinguishing Int from Float by the presence of "." or an
// exponent marker in the number's literal text.
func decodeValue(dec *json.Decoder) (value.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return value.Value{}, fmt.Errorf("serialize.LoadJSON: %w", nwerrors.ErrIO)
	}
	switch t := tok.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.Bool(t), nil
	case string:
		return value.String(t), nil
	case json.Number:
		s := t.String()
		if strings.ContainsAny(s, ".eE") {
			f, err := t.Float64()
			if err != nil {
				return value.Value{}, fmt.Errorf("serialize.LoadJSON: %w", nwerrors.ErrTypeMismatch)
			}
			return value.Float(f), nil
		}
		i, err := t.Int64()
		if err != nil {
			return value.Value{}, fmt.Errorf("serialize.LoadJSON: %w", nwerrors.ErrTypeMismatch)
		}
		return value.Int(i), nil
	case json.Delim:
		switch t {
		case '[':
			var items []value.Value
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return value.Value{}, err
				}
				items = append(items, v)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return value.Value{}, fmt.Errorf("serialize.LoadJSON: %w", nwerrors.ErrIO)
			}
			return value.List(items), nil
		case '{':
			m := value.NewAttributeMap(nil)
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return value.Value{}, fmt.Errorf("serialize.LoadJSON: %w", nwerrors.ErrIO)
				}
				key, ok := keyTok.(string)
				if !ok {
					return value.Value{}, fmt.Errorf("serialize.LoadJSON: expected string key: %w", nwerrors.ErrTypeMismatch)
				}
				v, err := decodeValue(dec)
				if err != nil {
					return value.Value{}, err
				}
				if err := m.Set(key, v); err != nil {
					return value.Value{}, err
				}
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return value.Value{}, fmt.Errorf("serialize.LoadJSON: %w", nwerrors.ErrIO)
			}
			return value.Map(m), nil
		}
	}
	return value.Value{}, fmt.Errorf("serialize.LoadJSON: unexpected token %v: %w", tok, nwerrors.ErrTypeMismatch)
}
