// Package bfs is the reference breadth-first-search engine of the
// verification suite: a single-threaded, queue-based BFS over a csr.Graph
// producing ground-truth shortest-path distances and a predecessor tree.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a
//     source vertex via a strict FIFO frontier.
//   - Returns a Result containing:
//   - Dist: per-vertex distance, Unreachable for vertices the source
//     cannot reach (Dist[source] == 0 always).
//   - Pred: per-vertex predecessor in the BFS tree, NoPredecessor for
//     the source and for unreachable vertices.
//   - Honors an optional edge Mask (WithMask): a disabled edge is skipped
//     exactly as if it were absent.
//   - Honors undirected semantics (WithUndirected): the graph is
//     symmetrized once before the search, so results match a true
//     undirected BFS.
//   - Supports cancellation via WithContext.
//
// Why
//
//	The suite compares a traversal service's output against this engine.
//	It is deliberately the textbook formulation (FIFO queue, each vertex
//	finalized exactly once) so its correctness is auditable by eye, and
//	deliberately a different formulation from the level-synchronous
//	frontier engine it verifies.
//
// Determinism
//
//	Neighbors are expanded in CSR storage order, so Dist, Pred, and the
//	visit order are fully reproducible for a given graph and mask.
//
// Complexity (n = |V|, nnz = |E|)
//
//   - Time:  O(n + nnz); with WithUndirected an additional O(n + nnz)
//     symmetrization pass.
//   - Space: O(n) working state beyond the Result.
package bfs
