// Package subgraph implements spec §4.E's subgraph-construction operators:
// predicate-based node filtering, keyword-selector subgraph extraction, and
// neighborhood expansion of an existing subgraph within its source graph.
//
// The §9 "polymorphic filter return" note (one call site historically
// returning either an iterable of nodes or a Graph) is resolved here as two
// named functions, FilterNodes and Subgraph, rather than one call site with
// two result shapes.
package subgraph
