// SPDX-License-Identifier: MIT
// Package gen: Grid(rows, cols) constructor.
//
// Contract:
//   - rows >= minGridSide and cols >= minGridSide (else ErrTooFewVertices).
//   - Vertex (r,c) has index r*cols + c.
//   - Emits the 4-neighborhood in fixed order per vertex: up, left, right,
//     down (ascending neighbor index), both directions present, so the
//     directed graph is already symmetric and undirected scenarios agree
//     with directed ones on it.
//
// Complexity: O(rows*cols) time and space.

package gen

import (
	"fmt"

	"github.com/verigraph/verigraph/csr"
)

const (
	methodGrid  = "Grid"
	minGridSide = 2
)

// Grid returns a Constructor that builds a rows x cols lattice with
// Manhattan-distance BFS layers from any corner.
func Grid(rows, cols int) Constructor {
	return func(cfg genConfig) (*csr.Graph, error) {
		if rows < minGridSide || cols < minGridSide {
			return nil, fmt.Errorf("%s: %dx%d below min side %d: %w", methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}
		n := rows * cols
		offsets := make([]int32, n+1)
		indices := make([]int32, 0, 4*n)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				offsets[r*cols+c] = int32(len(indices))
				if r > 0 {
					indices = append(indices, int32((r-1)*cols+c))
				}
				if c > 0 {
					indices = append(indices, int32(r*cols+c-1))
				}
				if c+1 < cols {
					indices = append(indices, int32(r*cols+c+1))
				}
				if r+1 < rows {
					indices = append(indices, int32((r+1)*cols+c))
				}
			}
		}
		offsets[n] = int32(len(indices))
		return csr.New(offsets, indices, nil)
	}
}
