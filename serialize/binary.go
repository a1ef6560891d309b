// File: binary.go
// Role: Binary serialization (spec §4.H): an implementation-defined,
// length-prefixed tagged encoding over encoding/binary + bytes.Buffer, with
// the same logical schema as the JSON form. Value tags mirror value.Kind's
// enumeration 1:1.
package serialize

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/nodeweave/nodeweave/graph"
	"github.com/nodeweave/nodeweave/nwerrors"
	"github.com/nodeweave/nodeweave/value"
)

const binaryMagic uint32 = 0x4e574746 // "NWGF"

// SaveBinary writes g to w in nodeweave's compact binary format.
func SaveBinary(g *graph.Graph, w io.Writer) error {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.BigEndian, binaryMagic); err != nil {
		return fmt.Errorf("serialize.SaveBinary: %w", nwerrors.ErrIO)
	}
	if err := writeBinaryAttrMap(&buf, g.Meta()); err != nil {
		return err
	}

	keys := g.Keys()
	if err := writeUint32(&buf, uint32(len(keys))); err != nil {
		return err
	}
	for _, id := range keys {
		n, err := g.GetNode(id)
		if err != nil {
			return err
		}
		if err := writeString(&buf, id); err != nil {
			return err
		}
		if err := writeBinaryAttrMap(&buf, n.Attr()); err != nil {
			return err
		}
		edges := n.Edges()
		if err := writeUint32(&buf, uint32(len(edges))); err != nil {
			return err
		}
		for _, e := range edges {
			if err := writeString(&buf, e.ToNode().ID()); err != nil {
				return err
			}
			if err := writeBinaryAttrMap(&buf, e.Attr()); err != nil {
				return err
			}
		}
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("serialize.SaveBinary: %w", nwerrors.ErrIO)
	}
	return nil
}

// LoadBinary reads a Graph previously written by SaveBinary.
func LoadBinary(r io.Reader) (*graph.Graph, error) {
	var magic uint32
	if err := binary.Read(r, binary.BigEndian, &magic); err != nil {
		return nil, fmt.Errorf("serialize.LoadBinary: %w", nwerrors.ErrIO)
	}
	if magic != binaryMagic {
		return nil, fmt.Errorf("serialize.LoadBinary: bad magic: %w", nwerrors.ErrIO)
	}

	meta, err := readAttrMap(r)
	if err != nil {
		return nil, err
	}
	g := graph.NewGraph()
	for _, k := range meta.Keys() {
		v, _ := meta.Get(k)
		if err := g.Meta().Set(k, v); err != nil {
			return nil, err
		}
	}

	nodeCount, err := readUint32(r)
	if err != nil {
		return nil, err
	}

	type pendingEdge struct {
		from, to string
		attr     *value.AttributeMap
	}
	var pending []pendingEdge

	for i := uint32(0); i < nodeCount; i++ {
		id, err := readString(r)
		if err != nil {
			return nil, err
		}
		attrs, err := readAttrMap(r)
		if err != nil {
			return nil, err
		}
		if _, err := g.AddNode(id, attrs); err != nil {
			return nil, err
		}
		edgeCount, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		for j := uint32(0); j < edgeCount; j++ {
			to, err := readString(r)
			if err != nil {
				return nil, err
			}
			eattrs, err := readAttrMap(r)
			if err != nil {
				return nil, err
			}
			pending = append(pending, pendingEdge{from: id, to: to, attr: eattrs})
		}
	}
	for _, pe := range pending {
		if _, err := g.AddEdge(pe.from, pe.to, pe.attr); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Value tags mirror value.Kind's iota order 1:1.
const (
	tagNull byte = iota
	tagBool
	tagInt
	tagFloat
	tagString
	tagList
	tagMap
)

func writeUint32(buf *bytes.Buffer, n uint32) error {
	return binary.Write(buf, binary.BigEndian, n)
}

func readUint32(r io.Reader) (uint32, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return 0, fmt.Errorf("serialize: %w", nwerrors.ErrIO)
	}
	return n, nil
}

func writeString(buf *bytes.Buffer, s string) error {
	if err := writeUint32(buf, uint32(len(s))); err != nil {
		return err
	}
	_, err := buf.WriteString(s)
	if err != nil {
		return fmt.Errorf("serialize: %w", nwerrors.ErrIO)
	}
	return nil
}

func readString(r io.Reader) (string, error) {
	n, err := readUint32(r)
	if err != nil {
		return "", err
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", fmt.Errorf("serialize: %w", nwerrors.ErrIO)
	}
	return string(b), nil
}

func writeBinaryAttrMap(buf *bytes.Buffer, m *value.AttributeMap) error {
	keys := m.Keys()
	if err := writeUint32(buf, uint32(len(keys))); err != nil {
		return err
	}
	for _, k := range keys {
		v, _ := m.Get(k)
		if err := writeString(buf, k); err != nil {
			return err
		}
		if err := writeBinaryValue(buf, v); err != nil {
			return err
		}
	}
	return nil
}

func readAttrMap(r io.Reader) (*value.AttributeMap, error) {
	n, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	m := value.NewAttributeMap(nil)
	for i := uint32(0); i < n; i++ {
		k, err := readString(r)
		if err != nil {
			return nil, err
		}
		v, err := readValue(r)
		if err != nil {
			return nil, err
		}
		if err := m.Set(k, v); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func writeBinaryValue(buf *bytes.Buffer, v value.Value) error {
	switch v.Kind() {
	case value.KindNull:
		buf.WriteByte(tagNull)
	case value.KindBool:
		buf.WriteByte(tagBool)
		b, _ := v.AsBool()
		var bb byte
		if b {
			bb = 1
		}
		buf.WriteByte(bb)
	case value.KindInt:
		buf.WriteByte(tagInt)
		i, _ := v.AsInt()
		if err := binary.Write(buf, binary.BigEndian, i); err != nil {
			return fmt.Errorf("serialize: %w", nwerrors.ErrIO)
		}
	case value.KindFloat:
		buf.WriteByte(tagFloat)
		f, _ := v.AsFloat()
		if err := binary.Write(buf, binary.BigEndian, f); err != nil {
			return fmt.Errorf("serialize: %w", nwerrors.ErrIO)
		}
	case value.KindString:
		buf.WriteByte(tagString)
		s, _ := v.AsString()
		return writeString(buf, s)
	case value.KindList:
		buf.WriteByte(tagList)
		items, _ := v.AsList()
		if err := writeUint32(buf, uint32(len(items))); err != nil {
			return err
		}
		for _, it := range items {
			if err := writeBinaryValue(buf, it); err != nil {
				return err
			}
		}
	case value.KindMap:
		buf.WriteByte(tagMap)
		m, _ := v.AsMap()
		if m == nil {
			return writeUint32(buf, 0)
		}
		return writeBinaryAttrMap(buf, m)
	}
	return nil
}

func readValue(r io.Reader) (value.Value, error) {
	tagBuf := make([]byte, 1)
	if _, err := io.ReadFull(r, tagBuf); err != nil {
		return value.Value{}, fmt.Errorf("serialize: %w", nwerrors.ErrIO)
	}
	switch tagBuf[0] {
	case tagNull:
		return value.Null(), nil
	case tagBool:
		b := make([]byte, 1)
		if _, err := io.ReadFull(r, b); err != nil {
			return value.Value{}, fmt.Errorf("serialize: %w", nwerrors.ErrIO)
		}
		return value.Bool(b[0] == 1), nil
	case tagInt:
		var i int64
		if err := binary.Read(r, binary.BigEndian, &i); err != nil {
			return value.Value{}, fmt.Errorf("serialize: %w", nwerrors.ErrIO)
		}
		return value.Int(i), nil
	case tagFloat:
		var f float64
		if err := binary.Read(r, binary.BigEndian, &f); err != nil {
			return value.Value{}, fmt.Errorf("serialize: %w", nwerrors.ErrIO)
		}
		return value.Float(f), nil
	case tagString:
		s, err := readString(r)
		if err != nil {
			return value.Value{}, err
		}
		return value.String(s), nil
	case tagList:
		n, err := readUint32(r)
		if err != nil {
			return value.Value{}, err
		}
		items := make([]value.Value, n)
		for i := uint32(0); i < n; i++ {
			v, err := readValue(r)
			if err != nil {
				return value.Value{}, err
			}
			items[i] = v
		}
		return value.List(items), nil
	case tagMap:
		m, err := readAttrMap(r)
		if err != nil {
			return value.Value{}, err
		}
		return value.Map(m), nil
	default:
		return value.Value{}, fmt.Errorf("serialize: unknown value tag %d: %w", tagBuf[0], nwerrors.ErrTypeMismatch)
	}
}
