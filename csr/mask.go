package csr

// Mask marks, per edge index, whether that edge may be traversed.
// A nil Mask allows every edge, so callers can thread an optional mask
// through without branching.
type Mask []bool

// ParityMask returns a mask of length nnz that disables every even-indexed
// edge. This is the suite's deterministic test-data generation policy for
// masked scenarios, not a property of real graphs: applying the same policy
// to both the reference and the system under test guarantees both sides see
// the same effective graph.
func ParityMask(nnz int) Mask {
	m := make(Mask, nnz)
	for i := range m {
		m[i] = i%2 != 0
	}
	return m
}

// Allows reports whether edge e is traversable. Nil receiver allows all.
func (m Mask) Allows(e int32) bool {
	if m == nil {
		return true
	}
	return m[e]
}

// AsInt32 renders the mask as 0/1 words, the representation the traversal
// service contract expects in its edge-data slot. Nil receiver yields nil.
func (m Mask) AsInt32() []int32 {
	if m == nil {
		return nil
	}
	out := make([]int32, len(m))
	for i, ok := range m {
		if ok {
			out[i] = 1
		}
	}
	return out
}

// Validate checks the mask against g. A nil mask is always valid.
func (m Mask) Validate(g *Graph) error {
	if m == nil {
		return nil
	}
	if len(m) != g.EdgeCount() {
		return ErrMaskLength
	}
	return nil
}
