package bfs

import (
	"fmt"

	"github.com/verigraph/verigraph/csr"
)

// walker encapsulates mutable BFS state for one run.
type walker struct {
	graph *csr.Graph
	mask  csr.Mask
	opts  Options
	queue []int32
	head  int
	res   *Result
}

// Distances runs reference BFS on g from source, applying any number of
// functional Options. Returns ErrGraphNil or ErrSourceOutOfRange for invalid
// input, ErrOptionViolation for bad options, or the context error on
// cancellation.
func Distances(g *csr.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := o.Mask.Validate(g); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, err)
	}
	if source < 0 || source >= g.VertexCount() {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, g.VertexCount())
	}

	// Undirected semantics: symmetrize once, then search the expansion.
	graph, mask := g, o.Mask
	if o.Undirected {
		graph, mask = csr.Symmetrize(g, o.Mask)
	}

	n := graph.VertexCount()
	w := &walker{
		graph: graph,
		mask:  mask,
		opts:  o,
		queue: make([]int32, 0, n),
		res:   &Result{Dist: make([]int32, n), Pred: make([]int32, n)},
	}
	for i := 0; i < n; i++ {
		w.res.Dist[i] = Unreachable
		w.res.Pred[i] = NoPredecessor
	}

	// Seed the frontier with the source at distance zero.
	w.res.Dist[source] = 0
	w.queue = append(w.queue, int32(source))

	return w.res, w.loop()
}

// loop processes the FIFO frontier until empty or cancelled. Every vertex is
// finalized the moment it is first discovered, which is the classic
// unweighted shortest-path guarantee.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		u := w.queue[w.head]
		w.head++
		w.expand(u)
	}
	return nil
}

// expand relaxes every unmasked out-edge of u, discovering neighbors in CSR
// storage order.
func (w *walker) expand(u int32) {
	indices := w.graph.ColIndices()
	start, end := w.graph.OutEdges(int(u))
	for e := start; e < end; e++ {
		if !w.mask.Allows(e) {
			continue
		}
		v := indices[e]
		if w.res.Dist[v] == Unreachable {
			w.res.Dist[v] = w.res.Dist[u] + 1
			w.res.Pred[v] = u
			w.queue = append(w.queue, v)
		}
	}
}
