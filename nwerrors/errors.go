// Package nwerrors collects the sentinel errors shared across nodeweave's
// packages (graph, bfs, dfs, subgraph, randomwalk, lgf, serialize).
//
// Policy (mirrors the teacher's builder/errors.go convention):
//   - Only sentinel variables are exposed; never stringify parameters into
//     the sentinel definitions themselves.
//   - Call sites wrap with context via fmt.Errorf("%s: %w", ctx, ErrX).
//   - Callers branch with errors.Is, never string comparison.
package nwerrors

import "errors"

var (
	// ErrDuplicateID is returned by Graph.AddNode when id already exists.
	ErrDuplicateID = errors.New("nodeweave: duplicate node id")

	// ErrUnknownNode is returned when an operation references a node id
	// that does not exist in the graph.
	ErrUnknownNode = errors.New("nodeweave: unknown node")

	// ErrNotFound is returned when a BFS/search target is unreachable.
	ErrNotFound = errors.New("nodeweave: target not found")

	// ErrTypeMismatch is returned by attribute operations that require a
	// specific Value kind (e.g. attr_list_append on a non-list attribute).
	ErrTypeMismatch = errors.New("nodeweave: type mismatch")

	// ErrParse is returned for LGF syntax violations. Callers can recover a
	// *ParseError (in package lgf) via errors.As for line/fragment detail.
	ErrParse = errors.New("nodeweave: parse error")

	// ErrIO is returned for snapshot read/write failures.
	ErrIO = errors.New("nodeweave: io error")

	// ErrReentrantMutation is returned when a callback invoked synchronously
	// from a mutation attempts to mutate the same graph before the
	// triggering mutation has returned.
	ErrReentrantMutation = errors.New("nodeweave: reentrant mutation")
)
