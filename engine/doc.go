// Package engine is an in-memory implementation of the traversal service
// contract, suitable as the system under test for the verification suite
// and as a drop-in traversal backend where no native service is available.
//
// What
//
//   - New builds a traversal.Service whose descriptors hold uploaded CSR
//     (or CSC) structures and int32 vertex/edge data slots.
//   - BFS is computed level-synchronously: a current and a next frontier
//     array swapped per level, the formulation accelerated services use.
//     This is intentionally not the queue formulation of the reference
//     engine in package bfs, so the two sides agree by independent routes.
//   - Undirected traversal resolves reverse edges through an on-the-fly
//     reverse-adjacency index (two-direction lookup at expansion time),
//     again a different route than the reference's one-shot symmetrization.
//   - Memory is accounted against a configurable capacity: structure
//     uploads, slot allocations, and traversal working buffers debit a
//     free-byte counter; Destroy and traversal completion credit it back.
//     MemoryInfo exposes the counter, which is what the stability
//     harness's leak check samples.
//
// Contract conformance
//
//   - Nil descriptor or nil source pointer: StatusInvalidValue.
//   - Traversal before AllocateVertexData: StatusNotAllocated.
//   - Traversal over a CSC structure: StatusUnsupportedTopology
//     (the structure itself is accepted at upload time).
//   - Out-of-range slots or source: StatusInvalidValue.
//   - Exhausted capacity: StatusAllocFailed.
//
// The package is self-contained: it does not import the reference engine.
package engine
