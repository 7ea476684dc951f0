package csr

// Symmetrize returns the undirected expansion of g: for every directed edge
// u→v the result contains both u→v and v→u. No deduplication is attempted;
// an edge that already exists in both directions simply appears twice, which
// is harmless for traversal.
//
// When mask is non-nil it is mapped through: a disabled directed edge is
// disabled in both result directions, so masking commutes with the
// expansion. The returned mask is nil iff mask is nil.
//
// Edge values are not carried (BFS never consults them).
// Complexity: O(n + nnz) time and space.
func Symmetrize(g *Graph, mask Mask) (*Graph, Mask) {
	n := g.VertexCount()
	nnz := g.EdgeCount()
	offsets := g.RowOffsets()
	indices := g.ColIndices()

	// Degree count in both directions.
	deg := make([]int32, n)
	for u := 0; u < n; u++ {
		for e := offsets[u]; e < offsets[u+1]; e++ {
			deg[u]++
			deg[indices[e]]++
		}
	}

	// Prefix sums give the new offsets; cursor tracks fill position per row.
	symOffsets := make([]int32, n+1)
	for u := 0; u < n; u++ {
		symOffsets[u+1] = symOffsets[u] + deg[u]
	}
	symIndices := make([]int32, 2*nnz)
	var symMask Mask
	if mask != nil {
		symMask = make(Mask, 2*nnz)
	}
	cursor := make([]int32, n)
	copy(cursor, symOffsets[:n])

	place := func(row int32, col int32, allowed bool) {
		pos := cursor[row]
		symIndices[pos] = col
		if symMask != nil {
			symMask[pos] = allowed
		}
		cursor[row]++
	}
	for u := 0; u < n; u++ {
		for e := offsets[u]; e < offsets[u+1]; e++ {
			v := indices[e]
			allowed := mask.Allows(e)
			place(int32(u), v, allowed)
			place(v, int32(u), allowed)
		}
	}

	// Input invariants guarantee the output invariants; construct directly.
	return &Graph{n: n, nnz: 2 * nnz, rowOffsets: symOffsets, colIndices: symIndices}, symMask
}
