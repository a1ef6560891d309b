// File: node.go
// Role: Node accessors and attribute delegation (spec §4.B).
package graph

import (
	"fmt"

	"github.com/nodeweave/nodeweave/nwerrors"
	"github.com/nodeweave/nodeweave/value"
)

// ID returns n's stable, graph-unique identifier.
func (n *Node) ID() string { return n.id }

// Attr returns n's live attribute map. Mutating it through Set/Delete
// follows the observed-map semantics of spec §4.A.
func (n *Node) Attr() *value.AttributeMap { return n.attr }

// AttrGet returns the value stored at key and whether it is present,
// delegating to the observed attribute map (spec §4.B).
func (n *Node) AttrGet(key string) (value.Value, bool) {
	return n.attr.Get(key)
}

// AttrSet writes value at key via the observed attribute map.
func (n *Node) AttrSet(key string, val value.Value) error {
	return n.attr.Set(key, val)
}

// AttrListAppend implements spec §4.B: if attr[key] is absent, it is
// initialized to an empty list before appending; if present and of list
// kind, val is appended; otherwise ErrTypeMismatch.
func (n *Node) AttrListAppend(key string, val value.Value) error {
	if _, err := n.attr.ListAppend(key, val); err != nil {
		return fmt.Errorf("%w: node %q attr %q: %v", nwerrors.ErrTypeMismatch, n.id, key, err)
	}
	return nil
}

// Edges returns n's outgoing edges in add_edge insertion order. The
// returned slice is a copy; mutating it does not affect n.
func (n *Node) Edges() []*Edge {
	out := make([]*Edge, len(n.edges))
	copy(out, n.edges)
	return out
}

// InverseEdges returns edges whose To is n, in the order those edges were
// added (spec §3). The returned slice is a copy.
func (n *Node) InverseEdges() []*Edge {
	out := make([]*Edge, len(n.inverseEdges))
	copy(out, n.inverseEdges)
	return out
}
