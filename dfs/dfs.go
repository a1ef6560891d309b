// Package dfs implements Node.traverse from spec §4.D: an iterative,
// depth-first walk over a graph.Graph emitting visited node ids in
// visitation order.
//
// Grounded on the teacher's dfs/dfs.go (a small walker struct driving
// recursion/iteration, pre-order visit, neighbor-order tie-break), adapted
// from recursive-with-hooks to an explicit stack since nodeweave's DFS has
// no visit/exit hook surface (spec §4.D names no callbacks, unlike the
// teacher's OnVisit/OnExit).
package dfs

import "github.com/nodeweave/nodeweave/graph"

// Traverse performs an iterative depth-first walk starting at n, returning
// visited node ids in visitation order (n included). depth == nil means
// unbounded; depth == &k restricts the walk to nodes reachable via at most
// k edges from n. Ties among outgoing edges break in Node.Edges() order
// (add_edge insertion order).
func Traverse(n *graph.Node, depth *int) []string {
	if n == nil {
		return nil
	}
	maxDepth := -1
	if depth != nil {
		maxDepth = *depth
	}

	type frame struct {
		node *graph.Node
		d    int
	}
	visited := make(map[string]int) // id -> shallowest depth it was expanded at
	order := make([]string, 0)
	stack := []frame{{n, 0}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		d, seen := visited[top.node.ID()]
		if seen && (maxDepth < 0 || d <= top.d) {
			continue // a bounded walk re-expands a node reached again by a shorter path
		}
		if !seen {
			order = append(order, top.node.ID())
		}
		visited[top.node.ID()] = top.d

		if maxDepth >= 0 && top.d >= maxDepth {
			continue // depth bound reached: do not expand further from here
		}

		edges := top.node.Edges()
		// Push in reverse so the first edge in insertion order is popped
		// (and thus visited) first, matching spec's tie-break rule.
		for i := len(edges) - 1; i >= 0; i-- {
			tgt := edges[i].ToNode()
			if d, seen := visited[tgt.ID()]; !seen || (maxDepth >= 0 && d > top.d+1) {
				stack = append(stack, frame{tgt, top.d + 1})
			}
		}
	}
	return order
}
