// SPDX-License-Identifier: MIT
// Package gen provides deterministic CSR test-graph constructors for the
// verification suite's scenario catalog.
//
// Every constructor emits edges in a stable, documented order, so the exact
// byte content of the resulting arrays is reproducible across runs and
// platforms: a scenario built from a gen spec always exercises the same
// effective graph. Stochastic constructors (RandomSparse) require an
// explicit seed via WithSeed or WithRand and fail with ErrNeedRandSource
// otherwise; there is no hidden global randomness.
//
// Usage:
//
//	g, err := gen.Build(gen.Cycle(1024))
//	g, err := gen.Build(gen.RandomSparse(500, 0.01), gen.WithSeed(42))
//
// Constructors:
//
//   - Cycle(n):        ring i -> (i+1) mod n, one edge per vertex.
//   - Path(n):         chain i -> i+1.
//   - Star(n):         hub 0 -> each leaf 1..n-1.
//   - Grid(rows,cols): 4-neighborhood lattice, both directions emitted,
//     so the directed graph is already symmetric.
//   - RandomSparse(n,p): each ordered pair (u,v), u != v, independently
//     present with probability p.
//
// Error policy follows the module convention: only sentinel errors, matched
// with errors.Is, context attached via %w wrapping; no panics at runtime.
package gen
