// File: walker.go
// Role: Shared level-synchronous BFS walk used by BFS, BFSSearch, GraphBFS,
// and ShortestPath.
//
// Grounded on the teacher's bfs/bfs.go (walker struct, queueItem,
// enqueue/dequeue helpers, level-synchronous loop).
package bfs

import "github.com/nodeweave/nodeweave/graph"

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  *graph.Node
	depth int
}

// walkResult collects everything downstream callers need: visitation
// order, per-id depth, the edge that first discovered each non-root node
// (for shortest-path reconstruction), every edge examined from an expanded
// node whose target ended up in the visited set (for subgraph construction,
// spec §4.D "Graph.bfs"), and whether Target (if any) was found.
type walkResult struct {
	order        []string
	nodes        map[string]*graph.Node
	depth        map[string]int
	discoveredBy map[string]*graph.Edge // node id -> edge that first visited it
	traversed    []*graph.Edge
	found        bool
}

// walk runs a level-synchronous BFS from root. See walkResult for what is
// collected; target == "" disables early termination.
func walk(root *graph.Node, maxDepth *int, target string) *walkResult {
	res := &walkResult{
		nodes:        make(map[string]*graph.Node),
		depth:        make(map[string]int),
		discoveredBy: make(map[string]*graph.Edge),
	}

	res.nodes[root.ID()] = root
	res.depth[root.ID()] = 0
	res.order = append(res.order, root.ID())

	if target != "" && root.ID() == target {
		res.found = true
		return res
	}

	queue := []queueItem{{root, 0}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		for _, e := range item.node.Edges() {
			tgt := e.ToNode()
			if _, seen := res.nodes[tgt.ID()]; seen {
				res.traversed = append(res.traversed, e)
				continue
			}
			childDepth := item.depth + 1
			if maxDepth != nil && childDepth > *maxDepth {
				continue // excluded by depth bound: neither visited nor traversed
			}

			res.nodes[tgt.ID()] = tgt
			res.depth[tgt.ID()] = childDepth
			res.discoveredBy[tgt.ID()] = e
			res.order = append(res.order, tgt.ID())
			res.traversed = append(res.traversed, e)

			if target != "" && tgt.ID() == target {
				res.found = true
				return res
			}
			queue = append(queue, queueItem{tgt, childDepth})
		}
	}

	if target != "" {
		res.found = false
	} else {
		res.found = true // no target requested: nothing to "find"
	}
	return res
}
