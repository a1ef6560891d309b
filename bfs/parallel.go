// File: parallel.go
// Role: Graph.parallel_bfs (spec §5): level-synchronous BFS with the
// current frontier partitioned across goroutines. A shared, mutex-guarded
// visited set gives first-claim semantics: whichever goroutine wins the
// check-and-mark owns that node's discovery. A WaitGroup barrier separates
// levels so results stay level-synchronous despite concurrent claims.
//
// Grounded on the teacher's bfs package for the overall walk shape; the
// partition/barrier/shared-visited-map pattern is adapted from tsp's worker
// pool style (fixed worker count, per-chunk goroutines, WaitGroup drain).
package bfs

import (
	"fmt"
	"sync"

	"github.com/nodeweave/nodeweave/graph"
	"github.com/nodeweave/nodeweave/nwerrors"
)

const defaultParallelWorkers = 4

// chunkResult is what one goroutine reports back for its slice of the
// current frontier.
type chunkResult struct {
	discovered []queueItem      // newly claimed nodes, in chunk-local order
	parents    map[string]*graph.Edge
	traversed  []*graph.Edge
	foundID    string // non-empty if target was claimed in this chunk
}

// ParallelBFS mirrors GraphBFS's contract (same failure modes) but expands
// each level's frontier across WithWorkers(n) goroutines (default 4)
// instead of a single loop. Without a target, the resulting subgraph's node
// set is identical to GraphBFS's. With a target, the level in which it is
// found is expanded completely before stopping, so the result may also hold
// nodes of that level that GraphBFS, which stops at the target itself, does
// not. Node and edge insertion order within a level depends on scheduling.
func ParallelBFS(g *graph.Graph, rootID string, opts ...Option) (*graph.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	root, err := g.GetNode(rootID)
	if err != nil {
		return nil, fmt.Errorf("bfs.ParallelBFS: %w", nwerrors.ErrUnknownNode)
	}
	o := resolveOptions(opts)
	workers := o.Workers
	if workers <= 0 {
		workers = defaultParallelWorkers
	}

	res := &walkResult{
		nodes:        map[string]*graph.Node{root.ID(): root},
		depth:        map[string]int{root.ID(): 0},
		discoveredBy: make(map[string]*graph.Edge),
		order:        []string{root.ID()},
	}

	if o.Target != "" && root.ID() == o.Target {
		res.found = true
		return buildSubgraph(orderedIDs(res.order), res.nodes, res.traversed)
	}

	var mu sync.Mutex // guards res.nodes/res.depth/res.discoveredBy claims
	frontier := []queueItem{{root, 0}}

	for len(frontier) > 0 {
		chunks := partition(frontier, workers)
		results := make([]chunkResult, len(chunks))

		var wg sync.WaitGroup
		for i, chunk := range chunks {
			wg.Add(1)
			go func(i int, chunk []queueItem) {
				defer wg.Done()
				results[i] = expandChunk(chunk, o.MaxDepth, o.Target, &mu, res)
			}(i, chunk)
		}
		wg.Wait()

		var next []queueItem
		foundID := ""
		for _, cr := range results {
			for _, item := range cr.discovered {
				res.order = append(res.order, item.node.ID())
				next = append(next, item)
			}
			res.traversed = append(res.traversed, cr.traversed...)
			if cr.foundID != "" && foundID == "" {
				foundID = cr.foundID
			}
		}
		if foundID != "" {
			res.found = true
			break
		}
		frontier = next
	}

	if o.Target != "" && !res.found {
		return nil, fmt.Errorf("bfs.ParallelBFS: target %q: %w", o.Target, ErrNotFound)
	}
	return buildSubgraph(orderedIDs(res.order), res.nodes, res.traversed)
}

// expandChunk processes one goroutine's slice of the current frontier,
// claiming newly-discovered neighbors into the shared res under mu.
func expandChunk(chunk []queueItem, maxDepth *int, target string, mu *sync.Mutex, res *walkResult) chunkResult {
	var cr chunkResult
	for _, item := range chunk {
		for _, e := range item.node.Edges() {
			tgt := e.ToNode()
			childDepth := item.depth + 1

			mu.Lock()
			_, seen := res.nodes[tgt.ID()]
			if seen {
				mu.Unlock()
				cr.traversed = append(cr.traversed, e)
				continue
			}
			if maxDepth != nil && childDepth > *maxDepth {
				mu.Unlock()
				continue // excluded by depth bound: neither visited nor traversed
			}
			res.nodes[tgt.ID()] = tgt
			res.depth[tgt.ID()] = childDepth
			res.discoveredBy[tgt.ID()] = e
			mu.Unlock()

			cr.discovered = append(cr.discovered, queueItem{tgt, childDepth})
			cr.traversed = append(cr.traversed, e)
			if target != "" && tgt.ID() == target && cr.foundID == "" {
				cr.foundID = tgt.ID()
			}
		}
	}
	return cr
}

// partition splits items into at most n contiguous, roughly equal chunks,
// preserving order so chunk results are merged in frontier order. Which
// chunk claims a neighbor shared by several chunks still depends on
// goroutine scheduling.
func partition(items []queueItem, n int) [][]queueItem {
	if n <= 0 || n > len(items) {
		n = len(items)
	}
	if n == 0 {
		return nil
	}
	chunks := make([][]queueItem, 0, n)
	base := len(items) / n
	rem := len(items) % n
	start := 0
	for i := 0; i < n; i++ {
		size := base
		if i < rem {
			size++
		}
		if size == 0 {
			continue
		}
		chunks = append(chunks, items[start:start+size])
		start += size
	}
	return chunks
}
