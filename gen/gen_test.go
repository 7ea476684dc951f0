package gen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verigraph/verigraph/gen"
)

func TestCycle(t *testing.T) {
	g, err := gen.Build(gen.Cycle(1024))
	require.NoError(t, err)
	require.Equal(t, 1024, g.VertexCount())
	require.Equal(t, 1024, g.EdgeCount())
	for i := 0; i < 1024; i++ {
		require.Equal(t, int32(i), g.RowOffsets()[i])
		require.Equal(t, int32((i+1)%1024), g.ColIndices()[i])
	}

	_, err = gen.Build(gen.Cycle(2))
	require.ErrorIs(t, err, gen.ErrTooFewVertices)
}

func TestPath(t *testing.T) {
	g, err := gen.Build(gen.Path(4))
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
	require.Equal(t, []int32{1, 2, 3}, g.ColIndices())
	start, end := g.OutEdges(3)
	require.Equal(t, start, end, "last vertex must have no out-edges")

	_, err = gen.Build(gen.Path(1))
	require.ErrorIs(t, err, gen.ErrTooFewVertices)
}

func TestStar(t *testing.T) {
	g, err := gen.Build(gen.Star(5))
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, 4, g.EdgeCount())
	start, end := g.OutEdges(0)
	require.Equal(t, []int32{1, 2, 3, 4}, g.ColIndices()[start:end])
	for leaf := 1; leaf < 5; leaf++ {
		s, e := g.OutEdges(leaf)
		require.Equal(t, s, e, "leaf %d must have no out-edges", leaf)
	}
}

func TestGrid(t *testing.T) {
	g, err := gen.Build(gen.Grid(2, 3))
	require.NoError(t, err)
	require.Equal(t, 6, g.VertexCount())
	// 2x3 lattice: 7 undirected adjacencies, both directions emitted.
	require.Equal(t, 14, g.EdgeCount())

	// Corner (0,0) has exactly right and down neighbors.
	start, end := g.OutEdges(0)
	require.Equal(t, []int32{1, 3}, g.ColIndices()[start:end])
	// Middle of top row (0,1): left, right, down, in ascending order.
	start, end = g.OutEdges(1)
	require.Equal(t, []int32{0, 2, 4}, g.ColIndices()[start:end])

	_, err = gen.Build(gen.Grid(1, 5))
	require.ErrorIs(t, err, gen.ErrTooFewVertices)
}

func TestRandomSparse(t *testing.T) {
	_, err := gen.Build(gen.RandomSparse(10, 0.5))
	require.ErrorIs(t, err, gen.ErrNeedRandSource)

	_, err = gen.Build(gen.RandomSparse(10, 1.5), gen.WithSeed(1))
	require.ErrorIs(t, err, gen.ErrInvalidProbability)

	_, err = gen.Build(gen.RandomSparse(1, 0.5), gen.WithSeed(1))
	require.ErrorIs(t, err, gen.ErrTooFewVertices)

	// Same seed, same graph.
	a, err := gen.Build(gen.RandomSparse(50, 0.1), gen.WithSeed(42))
	require.NoError(t, err)
	b, err := gen.Build(gen.RandomSparse(50, 0.1), gen.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, a.RowOffsets(), b.RowOffsets())
	require.Equal(t, a.ColIndices(), b.ColIndices())

	// Degenerate probabilities.
	empty, err := gen.Build(gen.RandomSparse(10, 0), gen.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, 0, empty.EdgeCount())
	full, err := gen.Build(gen.RandomSparse(10, 1), gen.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, 90, full.EdgeCount())
}
