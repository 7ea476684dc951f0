// Package csr provides the compressed-sparse-row graph model used by the
// verification suite: an immutable CSR structure with strict invariant
// validation, optional per-edge boolean masks, undirected (symmetric)
// expansion, and a binary on-disk format.
//
// What
//
//   - Graph: n vertices, nnz directed edges encoded as RowOffsets[n+1]
//     into ColIndices[nnz]; optional float32 edge values.
//   - Mask: per-edge traversability flags; a nil Mask allows every edge.
//     ParityMask reproduces the suite's deterministic test-data policy
//     of disabling every even-indexed edge.
//   - Symmetrize: one-shot undirected expansion of a Graph (and its Mask),
//     so directed algorithms can honor an undirected flag.
//   - ReadGraph / WriteGraph: little-endian binary serialization with the
//     same invariant checks applied on load.
//
// Invariants (enforced by New and ReadGraph)
//
//   - RowOffsets[0] == 0 and RowOffsets[n] == nnz.
//   - RowOffsets is monotonically non-decreasing.
//   - Every column index lies in [0, n).
//
// Any violation is reported as ErrMalformedGraph; a Graph that exists is a
// Graph whose invariants hold. Graphs are never mutated after construction.
//
// Complexity: validation and symmetrization are O(n + nnz); accessors are O(1).
package csr
