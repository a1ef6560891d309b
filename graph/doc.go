// Package graph is nodeweave's in-memory labeled property graph store.
//
// # Overview
//
//	A Graph owns a set of Nodes, keyed by string id and ordered by
//	insertion. Each Node owns its outgoing Edges and holds a non-owning
//	back-index of inverse Edges (edges whose target is this Node). Both
//	Nodes and Edges carry an observed attribute map (package value):
//	writes fire registered callbacks only when the value actually
//	changes (spec §4.A).
//
// # Invariants (spec §3)
//
//   - For every edge e with e.FromNode()==u and e.ToNode()==v, both u and
//     v are present in the owning Graph; e appears in u.Edges() and in
//     v.InverseEdges() exactly once each.
//   - Node ids are unique within a Graph.
//   - Self-loops and parallel edges are both allowed and preserved in
//     insertion order.
//   - A Node never appears live in two Graphs: subgraph operators
//     (package subgraph) and traversal subgraph results (package bfs)
//     always produce fresh nodes with cloned attributes via AddNode.
//
// # Lifecycle
//
//	Nodes are created by AddNode and destroyed only when their owning
//	Graph is destroyed; there is no RemoveNode in the core API. Edges are
//	created by AddEdge and die with either endpoint's Graph.
package graph
