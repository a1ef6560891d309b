// File: graph.go
// Role: Graph aggregate mutation API and accessors (spec §4.C).
//
// Validation order for AddEdge mirrors the teacher's core/methods.go
// AddEdge: endpoint existence is checked before any mutation occurs, so a
// failed call never leaves a partially-constructed edge behind.
package graph

import (
	"fmt"

	"github.com/nodeweave/nodeweave/nwerrors"
	"github.com/nodeweave/nodeweave/value"
)

// AddNode creates a Node with the given id and a clone of attrs (so callers
// cannot alias the internal map), appends it to the node ordering, and
// invokes every registered OnNodeAdd callback with (g, node). Returns
// ErrDuplicateID if id already exists, ErrReentrantMutation if called from
// within a callback triggered by a mutation already in progress on g.
func (g *Graph) AddNode(id string, attrs *value.AttributeMap) (*Node, error) {
	g.mu.Lock()
	if g.mutating {
		g.mu.Unlock()
		return nil, fmt.Errorf("AddNode(%q): %w", id, nwerrors.ErrReentrantMutation)
	}
	if _, exists := g.nodes[id]; exists {
		g.mu.Unlock()
		return nil, fmt.Errorf("AddNode(%q): %w", id, nwerrors.ErrDuplicateID)
	}

	var cloned *value.AttributeMap
	if attrs != nil {
		cloned = attrs.Clone()
	} else {
		cloned = value.NewAttributeMap(nil)
	}
	n := &Node{id: id, attr: cloned}
	cloned.SetOwner(n)

	g.nodes[id] = n
	g.nodeOrder = append(g.nodeOrder, id)

	g.mutating = true
	callbacks := append([]NodeAddFunc(nil), g.onNodeAdd...)
	g.mu.Unlock()

	for _, cb := range callbacks {
		if !cb(g, n) {
			break
		}
	}

	g.mu.Lock()
	g.mutating = false
	g.mu.Unlock()

	return n, nil
}

// AddEdge creates an Edge from fromID to toID with a clone of attrs (nil is
// treated as an empty map), appends it to from's outgoing edges and to to's
// inverse edges. Returns ErrUnknownNode if either endpoint is missing.
func (g *Graph) AddEdge(fromID, toID string, attrs *value.AttributeMap) (*Edge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.mutating {
		return nil, fmt.Errorf("AddEdge(%q, %q): %w", fromID, toID, nwerrors.ErrReentrantMutation)
	}
	from, ok := g.nodes[fromID]
	if !ok {
		return nil, fmt.Errorf("AddEdge: from %q: %w", fromID, nwerrors.ErrUnknownNode)
	}
	to, ok := g.nodes[toID]
	if !ok {
		return nil, fmt.Errorf("AddEdge: to %q: %w", toID, nwerrors.ErrUnknownNode)
	}

	var cloned *value.AttributeMap
	if attrs != nil {
		cloned = attrs.Clone()
	} else {
		cloned = value.NewAttributeMap(nil)
	}
	e := &Edge{from: from, to: to, attr: cloned}
	cloned.SetOwner(e)

	from.edges = append(from.edges, e)
	to.inverseEdges = append(to.inverseEdges, e)
	g.edgeCount++

	return e, nil
}

// HasNode reports whether id names a node in g.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// GetNode returns the Node named id, or ErrUnknownNode if absent.
func (g *Graph) GetNode(id string) (*Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("GetNode(%q): %w", id, nwerrors.ErrUnknownNode)
	}
	return n, nil
}

// Keys returns node ids in add_node insertion order. The returned slice is
// a copy.
func (g *Graph) Keys() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.nodeOrder))
	copy(out, g.nodeOrder)
	return out
}

// NodeCount returns the number of nodes in g.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodeOrder)
}

// EdgeCount returns the number of edges added to g.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edgeCount
}

// Meta returns g's live graph-level attribute map (spec §3, "meta").
func (g *Graph) Meta() *value.AttributeMap { return g.meta }

// GetMetadata returns a snapshot AttributeMap containing at least
// node_count and edge_count (spec §4.C), refreshed on every call the way
// the teacher's Graph.Stats() recomputes its summary on every call.
func (g *Graph) GetMetadata() *value.AttributeMap {
	g.mu.RLock()
	nc, ec := len(g.nodeOrder), g.edgeCount
	g.mu.RUnlock()

	out := g.meta.Clone()
	_ = out.Set("node_count", value.Int(int64(nc)))
	_ = out.Set("edge_count", value.Int(int64(ec)))
	return out
}

// OnNodeAdd registers cb to run after every AddNode call, in registration
// order, until one returns false (spec §4.C).
func (g *Graph) OnNodeAdd(cb NodeAddFunc) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onNodeAdd = append(g.onNodeAdd, cb)
}
