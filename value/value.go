// Package value implements the dynamic attribute domain shared by node
// attributes, edge attributes, graph metadata, and list/map elements: a
// tagged union (Null, Bool, Int, Float, String, List, Map) plus an
// insertion-ordered, change-observable attribute map.
//
// The type is deliberately a concrete struct rather than a parametrized
// generic, following the teacher's preference for plain, concrete data
// shapes (core.Vertex, core.Edge) over generic containers: attribute values
// are heterogeneous and only known at parse/runtime, so there is no type
// parameter to bind.
package value

import "math"

// Kind tags the dynamic type carried by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
)

// String renders k for diagnostics and error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the attribute domain. The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	list []Value
	m    *AttributeMap
}

// Null returns the Null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps b as a Bool value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps i as an Int value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float wraps f as a Float value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String wraps s as a String value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// List wraps items as a List value. items is copied defensively.
func List(items []Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindList, list: cp}
}

// Map wraps m as a Map value. m is not copied; pass a clone if the caller
// must retain exclusive ownership of the original.
func Map(m *AttributeMap) Value { return Value{kind: KindMap, m: m} }

// Kind reports the dynamic type of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the Null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the wrapped bool and whether v is a Bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the wrapped int64 and whether v is an Int.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns the wrapped float64 and whether v is a Float.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsString returns the wrapped string and whether v is a String.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsList returns the wrapped slice and whether v is a List. The returned
// slice aliases v's internal storage and must not be mutated by the caller.
func (v Value) AsList() ([]Value, bool) { return v.list, v.kind == KindList }

// AsMap returns the wrapped *AttributeMap and whether v is a Map.
func (v Value) AsMap() (*AttributeMap, bool) { return v.m, v.kind == KindMap }

// ToDisplayString coerces v to a string, used by the random-walk engine's
// include_edge_types interleaving (spec §4.F) where an edge's typed
// attribute value must be emitted as plain text regardless of its kind.
func (v Value) ToDisplayString() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindInt:
		return formatInt(v.i)
	case KindFloat:
		return formatFloat(v.f)
	case KindString:
		return v.s
	default:
		// Lists/maps have no canonical scalar rendering; callers that hit
		// this case on an edge_type_field attribute have a malformed graph.
		return ""
	}
}

// Equal reports deep-structural equality per spec §4.A:
//   - Null == Null
//   - Bool == Bool (same bool)
//   - Int/Float compared by numeric value (NaN never equal)
//   - String byte-exact
//   - List element-wise, same length
//   - Map same key set and per-key value equality (order-independent)
func Equal(a, b Value) bool {
	// Int/Float compare across kinds by numeric value, per spec "numeric-by-value".
	an, aIsNum := numericOf(a)
	bn, bIsNum := numericOf(b)
	if aIsNum && bIsNum {
		if math.IsNaN(an) || math.IsNaN(bn) {
			return false
		}
		return an == bn
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindString:
		return a.s == b.s
	case KindList:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if a.m == nil || b.m == nil {
			return a.m == b.m
		}
		if a.m.Len() != b.m.Len() {
			return false
		}
		for _, k := range a.m.Keys() {
			av, _ := a.m.Get(k)
			bv, ok := b.m.Get(k)
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// numericOf reports the float64 value of a Value if it is Int or Float.
func numericOf(v Value) (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// Clone returns a deep copy of v; List and Map values are recursively
// cloned so callers cannot alias internal storage (spec §3 invariant 5 /
// the AddNode contract that attrs are cloned on insertion).
func (v Value) Clone() Value {
	switch v.kind {
	case KindList:
		out := make([]Value, len(v.list))
		for i, e := range v.list {
			out[i] = e.Clone()
		}
		return Value{kind: KindList, list: out}
	case KindMap:
		if v.m == nil {
			return Value{kind: KindMap}
		}
		return Value{kind: KindMap, m: v.m.Clone()}
	default:
		return v
	}
}
