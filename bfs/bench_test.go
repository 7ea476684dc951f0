package bfs_test

import (
	"testing"

	"github.com/verigraph/verigraph/bfs"
	"github.com/verigraph/verigraph/csr"
)

// BenchmarkDistances_Chain measures reference BFS on a linear chain.
func BenchmarkDistances_Chain(b *testing.B) {
	const n = 10001
	offsets := make([]int32, n+1)
	indices := make([]int32, n-1)
	for i := 0; i < n-1; i++ {
		offsets[i] = int32(i)
		indices[i] = int32(i + 1)
	}
	offsets[n-1] = int32(n - 1)
	offsets[n] = int32(n - 1)
	g, err := csr.New(offsets, indices, nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(n + n - 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Distances(g, 0)
	}
}

// BenchmarkDistances_BinaryTree runs reference BFS on a complete binary tree.
func BenchmarkDistances_BinaryTree(b *testing.B) {
	const depth = 14 // 2^14 - 1 vertices
	n := (1 << depth) - 1
	offsets := make([]int32, n+1)
	indices := make([]int32, 0, n-1)
	for i := 0; i < n; i++ {
		offsets[i] = int32(len(indices))
		if left := 2*i + 1; left < n {
			indices = append(indices, int32(left))
		}
		if right := 2*i + 2; right < n {
			indices = append(indices, int32(right))
		}
	}
	offsets[n] = int32(len(indices))
	g, err := csr.New(offsets, indices, nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(n + len(indices)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Distances(g, 0)
	}
}
