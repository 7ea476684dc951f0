package oracle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verigraph/verigraph/engine"
	"github.com/verigraph/verigraph/oracle"
	"github.com/verigraph/verigraph/scenario"
	"github.com/verigraph/verigraph/traversal"
)

const unreachable = int32(1<<31 - 1)

func TestRun_DefaultCatalogPasses(t *testing.T) {
	svc := engine.New()
	defer svc.Close()
	cfg := scenario.DefaultConfig()
	ctx := context.Background()

	for _, sc := range scenario.DefaultCatalog().Scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			g, err := scenario.Resolve(sc, cfg)
			require.NoError(t, err)
			report := oracle.Run(ctx, svc, sc, g, cfg)
			require.NoError(t, report.Err)
			require.Equal(t, oracle.Passed, report.Outcome)
			require.Equal(t, g.VertexCount(), report.VertexCount)
		})
	}
}

func TestRun_HandleHygieneAcrossManyScenarios(t *testing.T) {
	// Repeated runs must not consume service memory: every descriptor is
	// destroyed on the way out.
	svc := engine.New()
	defer svc.Close()
	cfg := scenario.DefaultConfig()
	sc := scenario.Scenario{Name: "ring", Gen: &scenario.GenSpec{Kind: "cycle", N: 256}, Source: 0}
	g, err := scenario.Resolve(sc, cfg)
	require.NoError(t, err)

	freeBefore, _ := svc.MemoryInfo()
	for i := 0; i < 200; i++ {
		report := oracle.Run(context.Background(), svc, sc, g, cfg)
		require.Equal(t, oracle.Passed, report.Outcome)
	}
	freeAfter, _ := svc.MemoryInfo()
	require.Equal(t, freeBefore, freeAfter)
}

func TestRun_WaivedOnInsufficientMemory(t *testing.T) {
	svc := engine.New(engine.WithCapacity(1024))
	defer svc.Close()
	cfg := scenario.DefaultConfig()
	sc := scenario.Scenario{Name: "big-ring", Gen: &scenario.GenSpec{Kind: "cycle", N: 4096}, Source: 0}
	g, err := scenario.Resolve(sc, cfg)
	require.NoError(t, err)

	report := oracle.Run(context.Background(), svc, sc, g, cfg)
	require.Equal(t, oracle.Waived, report.Outcome)
	require.ErrorIs(t, report.Err, oracle.ErrResourceInsufficient)
}

func TestRun_FailsOnCorruptedDistances(t *testing.T) {
	svc := corruptService{engine.New()}
	defer svc.Close()
	cfg := scenario.DefaultConfig()
	sc := scenario.Scenario{Name: "ring", Gen: &scenario.GenSpec{Kind: "cycle", N: 64}, Source: 0}
	g, err := scenario.Resolve(sc, cfg)
	require.NoError(t, err)

	report := oracle.Run(context.Background(), svc, sc, g, cfg)
	require.Equal(t, oracle.Failed, report.Outcome)
	require.ErrorIs(t, report.Err, oracle.ErrCorrectnessMismatch)
	require.ErrorContains(t, report.Err, "vertex 63")
}

func TestRun_CancelledContext(t *testing.T) {
	svc := engine.New()
	defer svc.Close()
	cfg := scenario.DefaultConfig()
	sc := scenario.Scenario{Name: "ring", Gen: &scenario.GenSpec{Kind: "cycle", N: 64}, Source: 0}
	g, err := scenario.Resolve(sc, cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report := oracle.Run(ctx, svc, sc, g, cfg)
	require.Equal(t, oracle.Failed, report.Outcome)
	require.ErrorIs(t, report.Err, context.Canceled)
}

func TestRun_PerfTiming(t *testing.T) {
	svc := engine.New()
	defer svc.Close()
	cfg := scenario.DefaultConfig()
	cfg.PerformanceEnabled = true

	// Below the row limit: no timing.
	small := scenario.Scenario{Name: "small", Gen: &scenario.GenSpec{Kind: "cycle", N: 256}, Source: 0}
	g, err := scenario.Resolve(small, cfg)
	require.NoError(t, err)
	report := oracle.Run(context.Background(), svc, small, g, cfg)
	require.Equal(t, oracle.Passed, report.Outcome)
	require.Zero(t, report.MeanCallTime)

	// Above the row limit: mean call time reported, outcome unaffected.
	big := scenario.Scenario{Name: "big", Gen: &scenario.GenSpec{Kind: "cycle", N: 12000}, Source: 0}
	g, err = scenario.Resolve(big, cfg)
	require.NoError(t, err)
	report = oracle.Run(context.Background(), svc, big, g, cfg)
	require.Equal(t, oracle.Passed, report.Outcome)
	require.Positive(t, report.MeanCallTime)
}

func TestCompareDistances(t *testing.T) {
	sc := scenario.Scenario{Name: "t", Gen: &scenario.GenSpec{Kind: "cycle", N: 4}}
	require.NoError(t, oracle.CompareDistances(sc, []int32{0, 1, unreachable}, []int32{0, 1, unreachable}))
	require.ErrorIs(t, oracle.CompareDistances(sc, []int32{0, 1, 2}, []int32{0, 1, unreachable}), oracle.ErrCorrectnessMismatch)
	require.ErrorIs(t, oracle.CompareDistances(sc, []int32{0}, []int32{0, 1}), oracle.ErrCorrectnessMismatch)
}

func TestCheckPredecessors(t *testing.T) {
	sc := scenario.Scenario{Name: "t", Gen: &scenario.GenSpec{Kind: "cycle", N: 4}}
	refDist := []int32{0, 1, 2, unreachable}

	require.NoError(t, oracle.CheckPredecessors(sc, []int32{-1, 0, 1, -1}, refDist))

	// Predecessor one level too high.
	require.ErrorIs(t, oracle.CheckPredecessors(sc, []int32{-1, 0, 0, -1}, refDist), oracle.ErrCorrectnessMismatch)
	// Missing predecessor on a reachable non-source vertex.
	require.ErrorIs(t, oracle.CheckPredecessors(sc, []int32{-1, -1, 1, -1}, refDist), oracle.ErrCorrectnessMismatch)
	// Out-of-range predecessor index.
	require.ErrorIs(t, oracle.CheckPredecessors(sc, []int32{-1, 9, 1, -1}, refDist), oracle.ErrCorrectnessMismatch)
}

// corruptService flips the last distance fetched, simulating a system under
// test with an off-by-one in its output path.
type corruptService struct {
	traversal.Service
}

func (c corruptService) CreateGraph() (traversal.GraphDescr, traversal.Status) {
	g, st := c.Service.CreateGraph()
	if !st.OK() {
		return g, st
	}
	return corruptDescr{g}, st
}

// RunBFS unwraps the descriptor so the inner engine recognizes its own.
func (c corruptService) RunBFS(g traversal.GraphDescr, source *int, p traversal.Params) traversal.Status {
	if cd, ok := g.(corruptDescr); ok {
		g = cd.GraphDescr
	}
	return c.Service.RunBFS(g, source, p)
}

type corruptDescr struct {
	traversal.GraphDescr
}

func (c corruptDescr) GetVertexData(slot int, out []int32) traversal.Status {
	st := c.GraphDescr.GetVertexData(slot, out)
	if st.OK() && slot == 0 && len(out) > 0 {
		out[len(out)-1]++
	}
	return st
}
