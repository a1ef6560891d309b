// File: attributemap.go
// Role: Insertion-ordered String -> Value mapping with per-key change
// callbacks (the "observed map" of spec §4.A).
//
// AI-HINT (file):
//   - Set() is a no-op (no callback, no mutation) when the new value is
//     Equal to the previous one.
//   - Callback order is call-site registration order, per key.
//   - A callback error propagates AFTER the store has already been updated:
//     callers must not assume the write rolled back (spec §4.A "Failure").
package value

import "fmt"

// ChangeFunc is invoked after a successful (non-no-op) write to key on the
// AttributeMap owned by owner. newValue/oldValue are the written and
// previous values; oldValue is the Null Value if key was previously absent.
type ChangeFunc func(owner interface{}, key string, newValue, oldValue Value) error

// AttributeMap is an ordered String -> Value mapping that preserves
// insertion order (for stable serialization, spec §3) and supports
// per-key change-callback registration (spec §4.A).
type AttributeMap struct {
	owner     interface{}
	keys      []string
	values    map[string]Value
	callbacks map[string][]ChangeFunc
}

// NewAttributeMap returns an empty AttributeMap. owner identifies the
// logical container (e.g. the Node holding this map) passed to callbacks;
// it may be nil.
func NewAttributeMap(owner interface{}) *AttributeMap {
	return &AttributeMap{
		owner:  owner,
		values: make(map[string]Value),
	}
}

// SetOwner rebinds the owner reference passed to future callbacks. Used by
// Node/Edge/Graph construction where the owner is only known after the
// AttributeMap itself has been built.
func (a *AttributeMap) SetOwner(owner interface{}) { a.owner = owner }

// Get returns the value stored at key and whether it is present.
func (a *AttributeMap) Get(key string) (Value, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Has reports whether key is present.
func (a *AttributeMap) Has(key string) bool {
	_, ok := a.values[key]
	return ok
}

// Keys returns the keys in insertion order. The returned slice must not be
// mutated by the caller.
func (a *AttributeMap) Keys() []string { return a.keys }

// Len returns the number of keys.
func (a *AttributeMap) Len() int { return len(a.keys) }

// Set writes value at key, following the observed-map semantics of spec
// §4.A:
//  1. Look up the previous value (Null if absent).
//  2. If key was present and value Equal(prev), no-op: no mutation, no
//     callback. A write to an absent key always stores, even a Null value.
//  3. Otherwise store the new value, then invoke every callback registered
//     for key in registration order. A callback's error is returned after
//     the store has already been updated.
func (a *AttributeMap) Set(key string, val Value) error {
	prev, existed := a.values[key]
	if !existed {
		prev = Null()
	}
	if existed && Equal(prev, val) {
		return nil // no-op write: no callback, no observable mutation.
	}
	if !existed {
		a.keys = append(a.keys, key)
	}
	a.values[key] = val

	for _, cb := range a.callbacks[key] {
		if err := cb(a.owner, key, val, prev); err != nil {
			// Side effect already applied; propagate per spec §7 policy.
			return fmt.Errorf("attribute %q callback: %w", key, err)
		}
	}
	return nil
}

// Delete removes key. Deletion has no callback semantics (spec §4.A).
func (a *AttributeMap) Delete(key string) {
	if _, ok := a.values[key]; !ok {
		return
	}
	delete(a.values, key)
	for i, k := range a.keys {
		if k == key {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}
}

// OnChange registers cb to be invoked whenever key's value changes via Set.
// Callbacks fire in registration order.
func (a *AttributeMap) OnChange(key string, cb ChangeFunc) {
	if a.callbacks == nil {
		a.callbacks = make(map[string][]ChangeFunc)
	}
	a.callbacks[key] = append(a.callbacks[key], cb)
}

// Clone returns a deep copy of a: a new map with the same owner, the same
// key order, deep-cloned values, but no registered callbacks (callbacks are
// bound to a specific live container, not to the data).
func (a *AttributeMap) Clone() *AttributeMap {
	out := NewAttributeMap(a.owner)
	out.keys = make([]string, len(a.keys))
	copy(out.keys, a.keys)
	for k, v := range a.values {
		out.values[k] = v.Clone()
	}
	return out
}

// ListAppend implements spec §4.B's attr_list_append: if key is absent it
// is initialized to an empty list before appending; if present and of List
// kind, elem is appended; otherwise ErrTypeMismatch-class behavior is
// signaled via the returned error (wrapped by callers with nwerrors.ErrTypeMismatch
// to avoid an import cycle between value and nwerrors; see graph.Node.AttrListAppend).
func (a *AttributeMap) ListAppend(key string, elem Value) (Value, error) {
	cur, ok := a.Get(key)
	if !ok {
		next := List([]Value{elem})
		return next, a.Set(key, next)
	}
	items, isList := cur.AsList()
	if !isList {
		return Value{}, fmt.Errorf("attribute %q is %s, not list", key, cur.Kind())
	}
	next := List(append(append([]Value{}, items...), elem))
	return next, a.Set(key, next)
}
