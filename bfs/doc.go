// Package bfs provides breadth-first traversal over nodeweave graphs:
// single-node walks (BFS, BFSSearch), subgraph-producing walks (GraphBFS,
// ShortestPath), and a goroutine-partitioned variant (ParallelBFS) that,
// without a target, visits the same node set using a worker pool instead
// of one loop.
//
// What
//
//   - BFS/BFSSearch walk outward from a single *graph.Node.
//   - GraphBFS/ShortestPath/ParallelBFS additionally materialize the
//     visited region as a standalone *graph.Graph, with cloned attributes.
//   - WithMaxDepth bounds the walk by edge count; nodes beyond the bound
//     are excluded entirely, never discovered-then-dropped.
//   - WithTarget stops the walk as soon as the target is discovered;
//     ParallelBFS stops after finishing the level in which it is found.
//   - WithWorkers sizes ParallelBFS's per-level goroutine fan-out.
//
// Determinism
//
//	Edges are walked in each node's insertion order, so BFS/BFSSearch/
//	GraphBFS/ShortestPath are fully reproducible for a fixed graph.
//	ParallelBFS partitions the frontier into contiguous chunks and merges
//	chunk results in chunk order after a level barrier, so without a
//	target its node set matches the serial walk even though within-level
//	interleaving is driven by the scheduler.
//
// Errors
//
//   - ErrGraphNil / ErrRootNil if a required graph or node is nil.
//   - nwerrors.ErrUnknownNode if a named root/src/dst id is absent.
//   - ErrNotFound if WithTarget (or ShortestPath's dst) is unreachable
//     within any given MaxDepth.
package bfs
