// SPDX-License-Identifier: MIT
// Package gen: Star(n) constructor.
//
// Contract:
//   - n >= minStarVertices (else ErrTooFewVertices).
//   - Vertex 0 is the hub; emits edge 0 -> i at edge index i-1 for
//     i = 1..n-1. Leaves have no out-edges.
//
// Complexity: O(n) time and space.

package gen

import (
	"fmt"

	"github.com/verigraph/verigraph/csr"
)

const (
	methodStar      = "Star"
	minStarVertices = 2
)

// Star returns a Constructor that builds the directed out-star S_n: every
// leaf sits at distance 1 from the hub and the hub is unreachable from any
// leaf unless the request is undirected.
func Star(n int) Constructor {
	return func(cfg genConfig) (*csr.Graph, error) {
		if n < minStarVertices {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarVertices, ErrTooFewVertices)
		}
		offsets := make([]int32, n+1)
		indices := make([]int32, n-1)
		offsets[0] = 0
		for i := 1; i < n; i++ {
			indices[i-1] = int32(i)
			offsets[i] = int32(n - 1)
		}
		offsets[n] = int32(n - 1)
		return csr.New(offsets, indices, nil)
	}
}
