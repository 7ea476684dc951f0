// SPDX-License-Identifier: MIT
// Package gen: Path(n) constructor.
//
// Contract:
//   - n >= minPathVertices (else ErrTooFewVertices).
//   - Emits edge i -> i+1 at edge index i, for i = 0..n-2; the last vertex
//     has no out-edges.
//
// Complexity: O(n) time and space.

package gen

import (
	"fmt"

	"github.com/verigraph/verigraph/csr"
)

const (
	methodPath      = "Path"
	minPathVertices = 2
)

// Path returns a Constructor that builds the directed chain P_n. Useful for
// scenarios where reachability depends on the traversal direction: from the
// last vertex nothing is reachable unless the request is undirected.
func Path(n int) Constructor {
	return func(cfg genConfig) (*csr.Graph, error) {
		if n < minPathVertices {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		offsets := make([]int32, n+1)
		indices := make([]int32, n-1)
		for i := 0; i < n-1; i++ {
			offsets[i] = int32(i)
			indices[i] = int32(i + 1)
		}
		offsets[n-1] = int32(n - 1)
		offsets[n] = int32(n - 1)
		return csr.New(offsets, indices, nil)
	}
}
