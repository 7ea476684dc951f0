package csr

import "fmt"

// Graph is an immutable directed graph in compressed-sparse-row form.
//
// For every vertex u, the out-edges of u are the index range
// RowOffsets()[u] .. RowOffsets()[u+1]-1 into ColIndices(). Edge values are
// optional and never consulted by BFS; they survive serialization so that
// graph files carrying weights load without loss.
//
// A Graph is validated once at construction and never mutated afterwards.
type Graph struct {
	n          int
	nnz        int
	rowOffsets []int32
	colIndices []int32
	values     []float32
}

// New validates the CSR arrays and wraps them in a Graph.
// values may be nil; when non-nil its length must equal len(colIndices).
// The arrays are retained, not copied: callers hand over ownership.
// Returns ErrMalformedGraph (with context) on any invariant violation.
func New(rowOffsets, colIndices []int32, values []float32) (*Graph, error) {
	if len(rowOffsets) < 1 {
		return nil, fmt.Errorf("%w: row offsets empty", ErrMalformedGraph)
	}
	n := len(rowOffsets) - 1
	nnz := len(colIndices)

	if rowOffsets[0] != 0 {
		return nil, fmt.Errorf("%w: rowOffsets[0] = %d, want 0", ErrMalformedGraph, rowOffsets[0])
	}
	if int(rowOffsets[n]) != nnz {
		return nil, fmt.Errorf("%w: rowOffsets[%d] = %d, want nnz = %d", ErrMalformedGraph, n, rowOffsets[n], nnz)
	}
	for u := 0; u < n; u++ {
		if rowOffsets[u+1] < rowOffsets[u] {
			return nil, fmt.Errorf("%w: rowOffsets not monotone at vertex %d (%d > %d)",
				ErrMalformedGraph, u, rowOffsets[u], rowOffsets[u+1])
		}
	}
	for e, v := range colIndices {
		if v < 0 || int(v) >= n {
			return nil, fmt.Errorf("%w: column index %d at edge %d outside [0,%d)",
				ErrMalformedGraph, v, e, n)
		}
	}
	if values != nil && len(values) != nnz {
		return nil, fmt.Errorf("%w: %d edge values for %d edges", ErrMalformedGraph, len(values), nnz)
	}

	return &Graph{n: n, nnz: nnz, rowOffsets: rowOffsets, colIndices: colIndices, values: values}, nil
}

// VertexCount returns n.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns nnz.
func (g *Graph) EdgeCount() int { return g.nnz }

// RowOffsets returns the offset array (length n+1).
// The slice is a live view; callers must not modify it.
func (g *Graph) RowOffsets() []int32 { return g.rowOffsets }

// ColIndices returns the neighbor array (length nnz).
// The slice is a live view; callers must not modify it.
func (g *Graph) ColIndices() []int32 { return g.colIndices }

// Values returns the edge-value array, or nil when the graph carries none.
func (g *Graph) Values() []float32 { return g.values }

// OutEdges returns the half-open edge-index range [start, end) of vertex u.
// u must be in [0, n); OutEdges does not bounds-check.
func (g *Graph) OutEdges(u int) (start, end int32) {
	return g.rowOffsets[u], g.rowOffsets[u+1]
}
