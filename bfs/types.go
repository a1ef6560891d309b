package bfs

import (
	"errors"

	"github.com/nodeweave/nodeweave/nwerrors"
)

// ErrGraphNil is returned when a nil *graph.Graph is passed where one is
// required.
var ErrGraphNil = errors.New("bfs: graph is nil")

// ErrRootNil is returned when a nil *graph.Node is passed as a traversal
// root.
var ErrRootNil = errors.New("bfs: root node is nil")

// ErrNotFound re-exports nwerrors.ErrNotFound for convenient errors.Is use
// within this package's callers.
var ErrNotFound = nwerrors.ErrNotFound

// Options configures a BFS run.
type Options struct {
	// MaxDepth, if non-nil, excludes nodes at BFS distance greater than
	// *MaxDepth from the start. nil means unbounded.
	MaxDepth *int

	// Target, if non-empty, stops the search as soon as this node id is
	// discovered (enqueued); since BFS dequeues in discovery order, the
	// returned id list still ends with the target. If the frontier empties
	// first, the call fails with ErrNotFound.
	Target string

	// Workers bounds the goroutine fan-out used by ParallelBFS. Ignored by
	// the serial BFS/BFSSearch/GraphBFS/ShortestPath entry points.
	// <= 0 defaults to 4.
	Workers int
}

// Option mutates an Options value.
type Option func(*Options)

// WithMaxDepth bounds the search to nodes within d edges of the start.
func WithMaxDepth(d int) Option {
	return func(o *Options) { o.MaxDepth = &d }
}

// WithTarget stops the search as soon as id is discovered.
func WithTarget(id string) Option {
	return func(o *Options) { o.Target = id }
}

// WithWorkers sets the partition width for ParallelBFS.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

func resolveOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
