// SPDX-License-Identifier: MIT
// Package gen: Cycle(n) constructor.
//
// Contract:
//   - n >= minCycleVertices (else ErrTooFewVertices).
//   - Emits edge i -> (i+1) mod n at edge index i, for i = 0..n-1.
//   - Deterministic: the arrays are a pure function of n.
//
// Complexity: O(n) time and space.

package gen

import (
	"fmt"

	"github.com/verigraph/verigraph/csr"
)

const (
	methodCycle      = "Cycle"
	minCycleVertices = 3
)

// Cycle returns a Constructor that builds the directed ring C_n.
// The 1024-vertex instance is the suite's canonical sanity graph: from
// source 0 the expected distance vector is exactly [0, 1, ..., n-1].
func Cycle(n int) Constructor {
	return func(cfg genConfig) (*csr.Graph, error) {
		if n < minCycleVertices {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		offsets := make([]int32, n+1)
		indices := make([]int32, n)
		for i := 0; i < n; i++ {
			offsets[i] = int32(i)
			indices[i] = int32((i + 1) % n)
		}
		offsets[n] = int32(n)
		return csr.New(offsets, indices, nil)
	}
}
