// Package bfs: tunable options, sentinel errors and the Result type for
// breadth-first search over a csr.Graph.

package bfs

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/verigraph/verigraph/csr"
)

// Distance and predecessor sentinels shared by the reference engine and the
// comparison oracle. Unreachable matches the 32-bit "infinity" convention of
// the traversal service contract.
const (
	// Unreachable marks a vertex the source cannot reach.
	Unreachable = int32(math.MaxInt32)

	// NoPredecessor marks the source vertex and unreachable vertices.
	NoPredecessor = int32(-1)
)

// Sentinel errors for reference BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceOutOfRange is returned when the source vertex is not in [0, n).
	ErrSourceOutOfRange = errors.New("bfs: source vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied,
	// e.g. a mask whose length disagrees with the graph's edge count.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures reference BFS behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Distances is invoked.
type Option func(*Options)

// Options holds parameters customizing a reference BFS run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Mask disables individual edges by index; nil allows every edge.
	Mask csr.Mask

	// Undirected treats every edge as bidirectional. The engine
	// symmetrizes the graph (and mask) once before searching.
	Undirected bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// no mask, directed semantics.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMask disables edges whose mask entry is false. The mask length must
// equal the graph's edge count; a mismatch surfaces as ErrOptionViolation.
func WithMask(m csr.Mask) Option {
	return func(o *Options) { o.Mask = m }
}

// WithUndirected makes the search treat every edge as bidirectional.
func WithUndirected() Option {
	return func(o *Options) { o.Undirected = true }
}

// Result holds the outcome of a reference BFS:
//   - Dist: per-vertex shortest-path distance from the source, in edges;
//     Unreachable where no path exists.
//   - Pred: per-vertex predecessor in the BFS tree; NoPredecessor for the
//     source and for unreachable vertices.
type Result struct {
	Dist []int32
	Pred []int32
}

// PathTo reconstructs the source→dest path from the predecessor tree.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest int) ([]int32, error) {
	if dest < 0 || dest >= len(r.Dist) || r.Dist[dest] == Unreachable {
		return nil, fmt.Errorf("bfs: no path to vertex %d", dest)
	}
	path := []int32{}
	for cur := int32(dest); cur != NoPredecessor; cur = r.Pred[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
