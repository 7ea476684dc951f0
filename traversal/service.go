package traversal

// TopologyKind selects the sparse encoding of a graph structure handed to
// SetStructure. Services may accept several encodings for storage while
// supporting only a subset for traversal.
type TopologyKind int

const (
	// TopologyCSR is row-oriented compressed sparse form: offsets index
	// rows, indices hold destination vertices. The only kind BFS supports.
	TopologyCSR TopologyKind = iota

	// TopologyCSC is column-oriented compressed sparse form.
	TopologyCSC
)

// String renders the kind for reports.
func (k TopologyKind) String() string {
	switch k {
	case TopologyCSR:
		return "CSR"
	case TopologyCSC:
		return "CSC"
	default:
		return "UNKNOWN"
	}
}

// SlotUnset marks an optional slot index as absent in Params.
const SlotUnset = -1

// Params configures one BFS invocation: which vertex-data slots receive
// distances and predecessors, which edge-data slot (if any) holds the
// traversal mask, and whether edges are treated bidirectionally.
type Params struct {
	DistancesSlot    int
	PredecessorsSlot int
	EdgeMaskSlot     int
	Undirected       bool
}

// NewParams returns Params with the contract defaults: distances in slot 0,
// predecessors and mask disabled.
func NewParams() Params {
	return Params{
		DistancesSlot:    0,
		PredecessorsSlot: SlotUnset,
		EdgeMaskSlot:     SlotUnset,
	}
}

// Service is a handle to a traversal service instance. The suite shares one
// Service across scenarios within a process and closes it only at
// process-level teardown.
type Service interface {
	// CreateGraph allocates a fresh graph descriptor owned by this service.
	CreateGraph() (GraphDescr, Status)

	// RunBFS executes breadth-first traversal of g from *source under p,
	// writing distances (and optionally predecessors) into the configured
	// vertex-data slots. Implementations must return StatusInvalidValue
	// for a nil descriptor or nil source. The call blocks until all slot
	// contents are visible to the caller.
	RunBFS(g GraphDescr, source *int, p Params) Status

	// MemoryInfo samples the service's free and total memory in bytes.
	MemoryInfo() (free, total uint64)

	// Close tears the service down. Descriptors created from a closed
	// service are invalid.
	Close() Status
}

// GraphDescr is a per-scenario graph handle. Each scenario owns its
// descriptor exclusively and must Destroy it before returning control,
// on success and failure paths alike.
type GraphDescr interface {
	// SetStructure uploads the sparse structure. n is the vertex count,
	// nnz the edge count; offsets has length n+1, indices length nnz.
	SetStructure(topo TopologyKind, n, nnz int, offsets, indices []int32) Status

	// AllocateVertexData allocates count per-vertex int32 output slots.
	AllocateVertexData(count int) Status

	// AllocateEdgeData allocates count per-edge int32 data slots.
	AllocateEdgeData(count int) Status

	// SetEdgeData uploads data into edge slot. len(data) must equal nnz.
	SetEdgeData(slot int, data []int32) Status

	// GetVertexData copies vertex slot contents into out.
	// len(out) must equal n.
	GetVertexData(slot int, out []int32) Status

	// Destroy releases everything the descriptor holds. Idempotent calls
	// after the first return StatusInvalidValue.
	Destroy() Status
}

// RunBFS is the contract-level entry point: it adds the nil-service check
// that no method set can express and delegates to the service. Matches the
// free-function shape of the native APIs this contract abstracts.
func RunBFS(svc Service, g GraphDescr, source *int, p Params) Status {
	if svc == nil {
		return StatusInvalidValue
	}
	return svc.RunBFS(g, source, p)
}
