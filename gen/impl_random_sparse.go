// SPDX-License-Identifier: MIT
// Package gen: RandomSparse(n, p) constructor.
//
// Contract:
//   - n >= minSparseVertices (else ErrTooFewVertices).
//   - p in [0,1] (else ErrInvalidProbability).
//   - Requires a random source (else ErrNeedRandSource).
//   - Each ordered pair (u,v), u != v, is present independently with
//     probability p; pairs are drawn in ascending (u,v) order, so a fixed
//     seed yields a fixed graph.
//
// Complexity: O(n^2) time, O(n + nnz) space.

package gen

import (
	"fmt"

	"github.com/verigraph/verigraph/csr"
)

const (
	methodRandomSparse = "RandomSparse"
	minSparseVertices  = 2
)

// RandomSparse returns a Constructor that builds a G(n,p) directed graph.
// Sparse instances routinely contain unreachable vertices, which is what
// exercises the sentinel paths of the oracle.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg genConfig) (*csr.Graph, error) {
		if n < minSparseVertices {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minSparseVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("%s: p=%v: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		offsets := make([]int32, n+1)
		indices := make([]int32, 0, int(float64(n*n)*p)+n)
		for u := 0; u < n; u++ {
			offsets[u] = int32(len(indices))
			for v := 0; v < n; v++ {
				if u == v {
					continue
				}
				if cfg.rng.Float64() < p {
					indices = append(indices, int32(v))
				}
			}
		}
		offsets[n] = int32(len(indices))
		return csr.New(offsets, indices, nil)
	}
}
