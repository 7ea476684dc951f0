package stability

import (
	"context"
	"errors"
	"fmt"

	"github.com/verigraph/verigraph/csr"
	"github.com/verigraph/verigraph/scenario"
	"github.com/verigraph/verigraph/traversal"
)

// ErrStabilityViolation indicates distances drifting across repeats or free
// memory regressing over the run.
var ErrStabilityViolation = errors.New("stability: violation")

const (
	distancesSlot    = 0
	predecessorsSlot = 1
	vertexSlotCount  = 2

	// baseRepeats is scaled by the configured stress multiplier.
	baseRepeats = 2

	// minRepeats guarantees at least one repeat-to-first comparison.
	minRepeats = 2

	// midSampleCap bounds how late the midpoint memory sample is taken.
	midSampleCap = 50
)

// Repeats resolves the loop length for cfg.
func Repeats(cfg scenario.Config) int {
	r := baseRepeats * cfg.StressMultiplier
	if r < minRepeats {
		r = minRepeats
	}
	return r
}

// Run stress-tests svc with the given graph and request. It returns nil
// when every repeat reproduced the first distance vector and memory did not
// regress, ErrStabilityViolation otherwise. The graph handle is destroyed
// on every exit path.
func Run(ctx context.Context, svc traversal.Service, g *csr.Graph, source int, undirected bool, cfg scenario.Config) error {
	descr, st := svc.CreateGraph()
	if !st.OK() {
		return fmt.Errorf("stability: CreateGraph returned %v: %w", st, st.Err())
	}
	defer descr.Destroy()

	n := g.VertexCount()
	if st := descr.SetStructure(traversal.TopologyCSR, n, g.EdgeCount(), g.RowOffsets(), g.ColIndices()); !st.OK() {
		return fmt.Errorf("stability: SetStructure returned %v: %w", st, st.Err())
	}
	if st := descr.AllocateVertexData(vertexSlotCount); !st.OK() {
		return fmt.Errorf("stability: AllocateVertexData returned %v: %w", st, st.Err())
	}

	params := traversal.NewParams()
	params.DistancesSlot = distancesSlot
	params.PredecessorsSlot = predecessorsSlot
	params.Undirected = undirected

	repeats := Repeats(cfg)
	midIdx := repeats / 2
	if midIdx > midSampleCap {
		midIdx = midSampleCap
	}

	first := make([]int32, n)
	dist := make([]int32, n)
	pred := make([]int32, n)
	var freeMid, freeLast uint64

	for i := 0; i < repeats; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if st := traversal.RunBFS(svc, descr, &source, params); !st.OK() {
			return fmt.Errorf("stability: RunBFS repeat %d returned %v: %w", i, st, st.Err())
		}
		if st := descr.GetVertexData(distancesSlot, dist); !st.OK() {
			return fmt.Errorf("stability: GetVertexData(distances) repeat %d returned %v: %w", i, st, st.Err())
		}
		// Predecessors are fetched to exercise the path, never compared:
		// multiple shortest paths make differing trees legitimate.
		if st := descr.GetVertexData(predecessorsSlot, pred); !st.OK() {
			return fmt.Errorf("stability: GetVertexData(predecessors) repeat %d returned %v: %w", i, st, st.Err())
		}

		if i == 0 {
			copy(first, dist)
		} else {
			for v := range dist {
				if dist[v] != first[v] {
					return fmt.Errorf("%w: distance of vertex %d differs between repeat 0 (%d) and repeat %d (%d)",
						ErrStabilityViolation, v, first[v], i, dist[v])
				}
			}
		}

		if i == midIdx {
			freeMid, _ = svc.MemoryInfo()
		}
		if i == repeats-1 {
			freeLast, _ = svc.MemoryInfo()
		}
	}

	if freeMid > freeLast {
		return fmt.Errorf("%w: free memory regressed by %d bytes between repeat %d and repeat %d",
			ErrStabilityViolation, freeMid-freeLast, midIdx, repeats-1)
	}
	return nil
}
