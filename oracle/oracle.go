package oracle

import (
	"context"
	"fmt"
	"time"

	"github.com/verigraph/verigraph/bfs"
	"github.com/verigraph/verigraph/csr"
	"github.com/verigraph/verigraph/scenario"
	"github.com/verigraph/verigraph/traversal"
)

const (
	// Vertex-data slot assignment used for every scenario.
	distancesSlot    = 0
	predecessorsSlot = 1
	vertexSlotCount  = 2
	maskSlot         = 0

	// PerfRowsLimit is the minimum vertex count for timing runs.
	PerfRowsLimit = 10000

	// perfRepeats is the fixed invocation count timed per scenario.
	perfRepeats = 30

	// wordSize is the byte width of the int32 elements everything uses.
	wordSize = 4

	// workingWords is the per-vertex working multiplier of the memory
	// precheck: predecessors + distances + two working vectors.
	workingWords = 4
)

// RequiredBytes is the memory-precheck estimate for g: the structure upload
// plus four n-length working words.
func RequiredBytes(g *csr.Graph) uint64 {
	structure := uint64(len(g.RowOffsets())+len(g.ColIndices())) * wordSize
	return structure + workingWords*uint64(g.VertexCount())*wordSize
}

// Run verifies one scenario against svc using g as the already-resolved
// graph. The returned report is Waived, Passed, or Failed; the scenario's
// graph handle is always destroyed before Run returns.
func Run(ctx context.Context, svc traversal.Service, sc scenario.Scenario, g *csr.Graph, cfg scenario.Config) Report {
	report := Report{VertexCount: g.VertexCount(), EdgeCount: g.EdgeCount()}

	// Resource-aware degradation: waive, don't fail, when the service
	// cannot hold the graph plus working buffers.
	free, _ := svc.MemoryInfo()
	if required := RequiredBytes(g); free < required {
		report.Outcome = Waived
		report.Err = fmt.Errorf("%w: scenario %q needs %d bytes, %d free",
			ErrResourceInsufficient, sc.Name, required, free)
		return report
	}

	descr, st := svc.CreateGraph()
	if !st.OK() {
		return report.fail(callErr(sc, "CreateGraph", st))
	}
	// Release on every path; handle leakage across hundreds of scenarios
	// is exactly what the suite exists to catch in others.
	defer descr.Destroy()

	if err := upload(descr, sc, g); err != nil {
		return report.fail(err)
	}

	source := sc.Source
	params := requestParams(sc)
	if err := ctx.Err(); err != nil {
		return report.fail(err)
	}
	if st := traversal.RunBFS(svc, descr, &source, params); !st.OK() {
		return report.fail(callErr(sc, "RunBFS", st))
	}

	n := g.VertexCount()
	gotDist := make([]int32, n)
	gotPred := make([]int32, n)
	if st := descr.GetVertexData(distancesSlot, gotDist); !st.OK() {
		return report.fail(callErr(sc, "GetVertexData(distances)", st))
	}
	if st := descr.GetVertexData(predecessorsSlot, gotPred); !st.OK() {
		return report.fail(callErr(sc, "GetVertexData(predecessors)", st))
	}

	ref, err := reference(ctx, sc, g)
	if err != nil {
		return report.fail(err)
	}
	if err := CompareDistances(sc, gotDist, ref.Dist); err != nil {
		return report.fail(err)
	}
	if err := CheckPredecessors(sc, gotPred, ref.Dist); err != nil {
		return report.fail(err)
	}

	if cfg.PerformanceEnabled && n > PerfRowsLimit {
		mean, err := timeCalls(ctx, svc, descr, &source, params)
		if err != nil {
			return report.fail(err)
		}
		report.MeanCallTime = mean
	}

	report.Outcome = Passed
	return report
}

// upload pushes structure, vertex slots, and (optionally) the mask into the
// service-side descriptor.
func upload(descr traversal.GraphDescr, sc scenario.Scenario, g *csr.Graph) error {
	st := descr.SetStructure(traversal.TopologyCSR, g.VertexCount(), g.EdgeCount(), g.RowOffsets(), g.ColIndices())
	if !st.OK() {
		return callErr(sc, "SetStructure", st)
	}
	if st := descr.AllocateVertexData(vertexSlotCount); !st.OK() {
		return callErr(sc, "AllocateVertexData", st)
	}
	if sc.UseMask {
		if st := descr.AllocateEdgeData(1); !st.OK() {
			return callErr(sc, "AllocateEdgeData", st)
		}
		if st := descr.SetEdgeData(maskSlot, sc.Mask(g).AsInt32()); !st.OK() {
			return callErr(sc, "SetEdgeData", st)
		}
	}
	return nil
}

// requestParams maps a scenario onto the contract's request config.
func requestParams(sc scenario.Scenario) traversal.Params {
	p := traversal.NewParams()
	p.DistancesSlot = distancesSlot
	p.PredecessorsSlot = predecessorsSlot
	p.Undirected = sc.Undirected
	if sc.UseMask {
		p.EdgeMaskSlot = maskSlot
	}
	return p
}

// reference computes the ground truth with exactly the scenario's masking
// and direction semantics, so both sides see the same effective graph.
func reference(ctx context.Context, sc scenario.Scenario, g *csr.Graph) (*bfs.Result, error) {
	opts := []bfs.Option{bfs.WithContext(ctx)}
	if sc.UseMask {
		opts = append(opts, bfs.WithMask(sc.Mask(g)))
	}
	if sc.Undirected {
		opts = append(opts, bfs.WithUndirected())
	}
	return bfs.Distances(g, sc.Source, opts...)
}

// CompareDistances asserts exact per-vertex equality, sentinels included.
func CompareDistances(sc scenario.Scenario, got, want []int32) error {
	if len(got) != len(want) {
		return fmt.Errorf("%w: distance vector length %d, want %d (graph=%s source=%d)",
			ErrCorrectnessMismatch, len(got), len(want), sc.GraphID(), sc.Source)
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("%w: wrong distance at vertex %d: got %d, want %d (graph=%s source=%d)",
				ErrCorrectnessMismatch, i, got[i], want[i], sc.GraphID(), sc.Source)
		}
	}
	return nil
}

// CheckPredecessors asserts tree consistency against the reference
// distances: a set predecessor must sit exactly one level above its child;
// an unset one is legal only for the source and unreachable vertices.
func CheckPredecessors(sc scenario.Scenario, pred, refDist []int32) error {
	for i, p := range pred {
		if p == bfs.NoPredecessor {
			if refDist[i] != 0 && refDist[i] != bfs.Unreachable {
				return fmt.Errorf("%w: vertex %d has no predecessor but distance %d (graph=%s source=%d)",
					ErrCorrectnessMismatch, i, refDist[i], sc.GraphID(), sc.Source)
			}
			continue
		}
		if p < 0 || int(p) >= len(refDist) {
			return fmt.Errorf("%w: predecessor %d of vertex %d out of range (graph=%s source=%d)",
				ErrCorrectnessMismatch, p, i, sc.GraphID(), sc.Source)
		}
		if refDist[i] != refDist[p]+1 {
			return fmt.Errorf("%w: wrong predecessor of vertex %d: dist[%d]=%d, dist[%d]=%d (graph=%s source=%d)",
				ErrCorrectnessMismatch, i, i, refDist[i], p, refDist[p], sc.GraphID(), sc.Source)
		}
	}
	return nil
}

// timeCalls measures the mean duration of perfRepeats identical calls.
func timeCalls(ctx context.Context, svc traversal.Service, descr traversal.GraphDescr, source *int, p traversal.Params) (time.Duration, error) {
	start := time.Now()
	for i := 0; i < perfRepeats; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if st := traversal.RunBFS(svc, descr, source, p); !st.OK() {
			return 0, fmt.Errorf("%w: timed RunBFS repeat %d: %v", ErrServiceCall, i, st)
		}
	}
	return time.Since(start) / perfRepeats, nil
}

// callErr wraps a failed contract call with scenario context.
func callErr(sc scenario.Scenario, op string, st traversal.Status) error {
	return fmt.Errorf("%w: %s returned %v (graph=%s source=%d): %v",
		ErrServiceCall, op, st, sc.GraphID(), sc.Source, st.Err())
}

// fail stamps the report Failed with err attached.
func (r Report) fail(err error) Report {
	r.Outcome = Failed
	r.Err = err
	return r
}
