// File: bfs.go
// Role: Node.bfs and Node.bfs_search (spec §4.D).
package bfs

import (
	"fmt"

	"github.com/nodeweave/nodeweave/graph"
)

// BFS performs a level-synchronous breadth-first walk from n, returning
// visited node ids in BFS order (n included). If WithTarget is supplied and
// the target is found, the returned list ends with the target id. If
// WithTarget is supplied but the target is unreachable (within MaxDepth, if
// set), BFS fails with ErrNotFound. WithMaxDepth(k) excludes nodes at BFS
// distance greater than k.
func BFS(n *graph.Node, opts ...Option) ([]string, error) {
	if n == nil {
		return nil, ErrRootNil
	}
	o := resolveOptions(opts)
	res := walk(n, o.MaxDepth, o.Target)
	if o.Target != "" && !res.found {
		return nil, fmt.Errorf("bfs: target %q: %w", o.Target, ErrNotFound)
	}
	return res.order, nil
}

// BFSSearch runs the same frontier expansion as BFS and returns the target
// Node, or ErrNotFound if the frontier empties (or MaxDepth is exhausted)
// before reaching it.
func BFSSearch(n *graph.Node, target string, opts ...Option) (*graph.Node, error) {
	if n == nil {
		return nil, ErrRootNil
	}
	o := resolveOptions(opts)
	o.Target = target
	res := walk(n, o.MaxDepth, target)
	if !res.found {
		return nil, fmt.Errorf("bfs: target %q: %w", target, ErrNotFound)
	}
	return res.nodes[target], nil
}
