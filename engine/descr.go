package engine

import (
	"sync"

	"github.com/verigraph/verigraph/traversal"
)

// graphDescr is the engine's graph handle: uploaded structure plus
// allocated data slots, with held bytes tracked for Destroy.
type graphDescr struct {
	svc *service

	mu        sync.Mutex
	destroyed bool

	hasStructure bool
	topo         traversal.TopologyKind
	n, nnz       int
	offsets      []int32
	indices      []int32

	vertexData [][]int32
	edgeData   [][]int32
	edgeSet    []bool

	heldBytes uint64
}

// SetStructure uploads and retains a copy of the sparse structure.
// Both CSR and CSC encodings are accepted for storage; traversal support
// is decided at RunBFS time.
func (d *graphDescr) SetStructure(topo traversal.TopologyKind, n, nnz int, offsets, indices []int32) traversal.Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return traversal.StatusInvalidValue
	}
	if d.hasStructure {
		return traversal.StatusInvalidValue
	}
	if topo != traversal.TopologyCSR && topo != traversal.TopologyCSC {
		return traversal.StatusInvalidValue
	}
	if n < 0 || nnz < 0 || len(offsets) != n+1 || len(indices) != nnz {
		return traversal.StatusInvalidValue
	}

	bytes := uint64(len(offsets)+len(indices)) * wordSize
	if !d.svc.alloc(bytes) {
		return traversal.StatusAllocFailed
	}
	d.heldBytes += bytes
	d.topo = topo
	d.n, d.nnz = n, nnz
	d.offsets = append([]int32(nil), offsets...)
	d.indices = append([]int32(nil), indices...)
	d.hasStructure = true
	return traversal.StatusSuccess
}

// AllocateVertexData allocates count per-vertex int32 slots.
func (d *graphDescr) AllocateVertexData(count int) traversal.Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed || !d.hasStructure || count <= 0 {
		return traversal.StatusInvalidValue
	}
	if d.vertexData != nil {
		return traversal.StatusInvalidValue
	}
	bytes := uint64(count) * uint64(d.n) * wordSize
	if !d.svc.alloc(bytes) {
		return traversal.StatusAllocFailed
	}
	d.heldBytes += bytes
	d.vertexData = make([][]int32, count)
	for i := range d.vertexData {
		d.vertexData[i] = make([]int32, d.n)
	}
	return traversal.StatusSuccess
}

// AllocateEdgeData allocates count per-edge int32 slots.
func (d *graphDescr) AllocateEdgeData(count int) traversal.Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed || !d.hasStructure || count <= 0 {
		return traversal.StatusInvalidValue
	}
	if d.edgeData != nil {
		return traversal.StatusInvalidValue
	}
	bytes := uint64(count) * uint64(d.nnz) * wordSize
	if !d.svc.alloc(bytes) {
		return traversal.StatusAllocFailed
	}
	d.heldBytes += bytes
	d.edgeData = make([][]int32, count)
	for i := range d.edgeData {
		d.edgeData[i] = make([]int32, d.nnz)
	}
	d.edgeSet = make([]bool, count)
	return traversal.StatusSuccess
}

// SetEdgeData uploads edge-slot contents.
func (d *graphDescr) SetEdgeData(slot int, data []int32) traversal.Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return traversal.StatusInvalidValue
	}
	if slot < 0 || slot >= len(d.edgeData) {
		return traversal.StatusInvalidValue
	}
	if len(data) != d.nnz {
		return traversal.StatusInvalidValue
	}
	copy(d.edgeData[slot], data)
	d.edgeSet[slot] = true
	return traversal.StatusSuccess
}

// GetVertexData copies vertex-slot contents into out.
func (d *graphDescr) GetVertexData(slot int, out []int32) traversal.Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return traversal.StatusInvalidValue
	}
	if slot < 0 || slot >= len(d.vertexData) {
		return traversal.StatusInvalidValue
	}
	if len(out) != d.n {
		return traversal.StatusInvalidValue
	}
	copy(out, d.vertexData[slot])
	return traversal.StatusSuccess
}

// Destroy releases everything the descriptor holds. Safe to call exactly
// once; later calls are rejected.
func (d *graphDescr) Destroy() traversal.Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return traversal.StatusInvalidValue
	}
	d.svc.release(d.heldBytes)
	d.heldBytes = 0
	d.destroyed = true
	d.offsets, d.indices = nil, nil
	d.vertexData, d.edgeData, d.edgeSet = nil, nil, nil
	return traversal.StatusSuccess
}
