package engine

import (
	"math"

	"github.com/verigraph/verigraph/traversal"
)

// Sentinels written into the output slots; identical by contract to the
// reference engine's (32-bit "infinity" distance, -1 predecessor).
const (
	unreachable   = int32(math.MaxInt32)
	noPredecessor = int32(-1)
)

// RunBFS validates the request against the descriptor state and runs a
// level-synchronous BFS, writing results into the configured vertex slots.
func (s *service) RunBFS(g traversal.GraphDescr, source *int, p traversal.Params) traversal.Status {
	if g == nil || source == nil {
		return traversal.StatusInvalidValue
	}
	d, ok := g.(*graphDescr)
	if !ok || d.svc != s {
		return traversal.StatusInvalidValue
	}

	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return traversal.StatusInvalidValue
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed || !d.hasStructure {
		return traversal.StatusInvalidValue
	}
	if d.vertexData == nil {
		return traversal.StatusNotAllocated
	}
	if d.topo != traversal.TopologyCSR {
		return traversal.StatusUnsupportedTopology
	}
	if p.DistancesSlot < 0 || p.DistancesSlot >= len(d.vertexData) {
		return traversal.StatusInvalidValue
	}
	if p.PredecessorsSlot != traversal.SlotUnset &&
		(p.PredecessorsSlot < 0 || p.PredecessorsSlot >= len(d.vertexData)) {
		return traversal.StatusInvalidValue
	}
	var mask []int32
	if p.EdgeMaskSlot != traversal.SlotUnset {
		if p.EdgeMaskSlot < 0 || p.EdgeMaskSlot >= len(d.edgeData) {
			return traversal.StatusInvalidValue
		}
		if !d.edgeSet[p.EdgeMaskSlot] {
			return traversal.StatusNotAllocated
		}
		mask = d.edgeData[p.EdgeMaskSlot]
	}
	src := *source
	if src < 0 || src >= d.n {
		return traversal.StatusInvalidValue
	}

	// Working buffers: two frontiers, plus a reverse index when the
	// request is undirected. Debited up front, credited on return, so a
	// traversal is memory-neutral.
	working := 2 * uint64(d.n) * wordSize
	var rev *reverseIndex
	if p.Undirected {
		working += uint64(d.n+1+2*d.nnz) * wordSize
	}
	if !d.svc.alloc(working) {
		return traversal.StatusAllocFailed
	}
	defer d.svc.release(working)

	if p.Undirected {
		rev = buildReverseIndex(d.n, d.offsets, d.indices)
	}

	dist := d.vertexData[p.DistancesSlot]
	var pred []int32
	if p.PredecessorsSlot != traversal.SlotUnset {
		pred = d.vertexData[p.PredecessorsSlot]
	}
	frontierSearch(d.offsets, d.indices, rev, mask, src, dist, pred)
	return traversal.StatusSuccess
}

// reverseIndex resolves in-edges during undirected expansion: for vertex v,
// sources[offsets[v]:offsets[v+1]] are the origins of edges into v, and
// edges[...] their original edge indices for mask lookup.
type reverseIndex struct {
	offsets []int32
	sources []int32
	edges   []int32
}

func buildReverseIndex(n int, offsets, indices []int32) *reverseIndex {
	rev := &reverseIndex{
		offsets: make([]int32, n+1),
		sources: make([]int32, len(indices)),
		edges:   make([]int32, len(indices)),
	}
	for _, v := range indices {
		rev.offsets[v+1]++
	}
	for v := 0; v < n; v++ {
		rev.offsets[v+1] += rev.offsets[v]
	}
	cursor := make([]int32, n)
	copy(cursor, rev.offsets[:n])
	for u := 0; u < n; u++ {
		for e := offsets[u]; e < offsets[u+1]; e++ {
			v := indices[e]
			pos := cursor[v]
			rev.sources[pos] = int32(u)
			rev.edges[pos] = e
			cursor[v]++
		}
	}
	return rev
}

// frontierSearch is the level-synchronous core: expand the whole current
// frontier into the next one, one distance level per outer iteration.
func frontierSearch(offsets, indices []int32, rev *reverseIndex, mask []int32, src int, dist, pred []int32) {
	n := len(dist)
	for i := 0; i < n; i++ {
		dist[i] = unreachable
	}
	if pred != nil {
		for i := range pred {
			pred[i] = noPredecessor
		}
	}

	current := make([]int32, 0, n)
	next := make([]int32, 0, n)
	dist[src] = 0
	current = append(current, int32(src))

	discover := func(u, v, level int32) {
		if dist[v] != unreachable {
			return
		}
		dist[v] = level
		if pred != nil {
			pred[v] = u
		}
		next = append(next, v)
	}

	for level := int32(1); len(current) > 0; level++ {
		next = next[:0]
		for _, u := range current {
			for e := offsets[u]; e < offsets[u+1]; e++ {
				if mask != nil && mask[e] == 0 {
					continue
				}
				discover(u, indices[e], level)
			}
			if rev != nil {
				for i := rev.offsets[u]; i < rev.offsets[u+1]; i++ {
					if mask != nil && mask[rev.edges[i]] == 0 {
						continue
					}
					discover(u, rev.sources[i], level)
				}
			}
		}
		current, next = next, current
	}
}
