// Package graph defines the central Graph, Node, and Edge types of
// nodeweave: the node/edge store with attribute dictionaries described by
// spec §3-§4.C.
//
// This file declares the concrete types, the sentinel ownership model (a
// Graph owns its Nodes; a Node owns its outgoing Edges; inverse-edge lists
// hold non-owning references to Edges owned by their source Node — see
// spec §9 "cyclic ownership of edges"), and the NewGraph constructor.
//
// Concurrency: mutation is single-threaded by contract (spec §5); the one
// exception is bfs.ParallelBFS, which performs concurrent *reads* of a
// Graph's node/edge structure while another goroutine could in principle
// still be iterating. A single sync.RWMutex (mu) guards the node
// catalog and insertion order so those reads are race-free even though
// concurrent mutation itself remains undefined behavior, following the
// teacher's dual-lock discipline (core/types.go) collapsed here to one
// lock since nodeweave has no separate adjacency structure to protect.
package graph

import (
	"sync"

	"github.com/nodeweave/nodeweave/value"
)

// Node is a uniquely-id'd entity with an attribute map and outgoing/inverse
// edge lists (spec §3).
type Node struct {
	id   string
	attr *value.AttributeMap

	// edges holds outgoing edges, owned by this Node, in add_edge order.
	edges []*Edge

	// inverseEdges holds back-references to edges whose To is this Node.
	// These Edge pointers are owned by their From node; this slice never
	// allocates new Edges.
	inverseEdges []*Edge
}

// Edge is a directed connection between two Nodes carrying its own
// attribute map (spec §3). The conventional key "type" names the relation.
type Edge struct {
	from *Node
	to   *Node
	attr *value.AttributeMap
}

// NodeAddFunc is invoked after a node is added to a Graph via AddNode. If it
// returns false, remaining callbacks registered for this AddNode call are
// skipped (the node itself has already been inserted; see spec §4.C and
// DESIGN.md's resolution of the "implementer's choice" note).
type NodeAddFunc func(g *Graph, n *Node) bool

// Graph is the aggregate root owning a set of Nodes, graph-level metadata,
// and add_node callbacks (spec §3, "also called Vertex").
type Graph struct {
	mu sync.RWMutex

	nodeOrder []string
	nodes     map[string]*Node
	edgeCount int

	meta      *value.AttributeMap
	onNodeAdd []NodeAddFunc

	// mutating is set while AddNode runs its OnNodeAdd callbacks; AddNode
	// and AddEdge called from such a callback return ErrReentrantMutation.
	// Attribute writes do not check it, and attribute-change callbacks do
	// not set it, so re-entry through attribute writes is not detected.
	mutating bool
}

// NewGraph returns an empty Graph: no nodes, empty metadata, no callbacks.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		meta:  value.NewAttributeMap(nil),
	}
}
