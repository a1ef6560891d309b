// File: edge.go
// Role: Edge accessors (spec §4.B, "Edge exposes from_node, to_node, and a
// mutable attr map").
package graph

import "github.com/nodeweave/nodeweave/value"

// FromNode returns e's source Node.
func (e *Edge) FromNode() *Node { return e.from }

// ToNode returns e's target Node.
func (e *Edge) ToNode() *Node { return e.to }

// Attr returns e's live attribute map.
func (e *Edge) Attr() *value.AttributeMap { return e.attr }
