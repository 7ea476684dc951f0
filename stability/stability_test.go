package stability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verigraph/verigraph/engine"
	"github.com/verigraph/verigraph/gen"
	"github.com/verigraph/verigraph/scenario"
	"github.com/verigraph/verigraph/stability"
	"github.com/verigraph/verigraph/traversal"
)

func TestRepeats(t *testing.T) {
	cfg := scenario.DefaultConfig()
	require.Equal(t, 20, stability.Repeats(cfg))

	cfg.StressMultiplier = 1
	require.Equal(t, 2, stability.Repeats(cfg))

	cfg.StressMultiplier = 100
	require.Equal(t, 200, stability.Repeats(cfg))
}

func TestRun_StableService(t *testing.T) {
	svc := engine.New()
	defer svc.Close()
	g, err := gen.Build(gen.Cycle(512))
	require.NoError(t, err)

	cfg := scenario.DefaultConfig()
	require.NoError(t, stability.Run(context.Background(), svc, g, 0, false, cfg))

	// Undirected request on a sparse graph with unreachable vertices.
	sparse, err := gen.Build(gen.RandomSparse(200, 0.01), gen.WithSeed(7))
	require.NoError(t, err)
	require.NoError(t, stability.Run(context.Background(), svc, sparse, 0, true, cfg))
}

func TestRun_HandleHygiene(t *testing.T) {
	svc := engine.New()
	defer svc.Close()
	g, err := gen.Build(gen.Cycle(128))
	require.NoError(t, err)

	freeBefore, _ := svc.MemoryInfo()
	require.NoError(t, stability.Run(context.Background(), svc, g, 0, false, scenario.DefaultConfig()))
	freeAfter, _ := svc.MemoryInfo()
	require.Equal(t, freeBefore, freeAfter)
}

func TestRun_DetectsMemoryLeak(t *testing.T) {
	svc := &leakyService{Service: engine.New(), leakPerCall: 4096}
	defer svc.Close()
	g, err := gen.Build(gen.Cycle(128))
	require.NoError(t, err)

	err = stability.Run(context.Background(), svc, g, 0, false, scenario.DefaultConfig())
	require.ErrorIs(t, err, stability.ErrStabilityViolation)
	require.ErrorContains(t, err, "free memory regressed")
}

func TestRun_DetectsNonDeterminism(t *testing.T) {
	svc := newFlakyService(engine.New(), 3)
	defer svc.Close()
	g, err := gen.Build(gen.Cycle(128))
	require.NoError(t, err)

	err = stability.Run(context.Background(), svc, g, 0, false, scenario.DefaultConfig())
	require.ErrorIs(t, err, stability.ErrStabilityViolation)
	require.ErrorContains(t, err, "differs between repeat 0")
}

func TestRun_CancelledContext(t *testing.T) {
	svc := engine.New()
	defer svc.Close()
	g, err := gen.Build(gen.Cycle(64))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, stability.Run(ctx, svc, g, 0, false, scenario.DefaultConfig()), context.Canceled)
}

// leakyService simulates a system under test that loses a fixed amount of
// memory on every traversal call.
type leakyService struct {
	traversal.Service
	leakPerCall uint64
	leaked      uint64
}

func (l *leakyService) RunBFS(g traversal.GraphDescr, source *int, p traversal.Params) traversal.Status {
	st := l.Service.RunBFS(g, source, p)
	if st.OK() {
		l.leaked += l.leakPerCall
	}
	return st
}

func (l *leakyService) MemoryInfo() (free, total uint64) {
	free, total = l.Service.MemoryInfo()
	if l.leaked > free {
		return 0, total
	}
	return free - l.leaked, total
}

// flakyService returns correct results for the first few calls, then starts
// perturbing the fetched distance vector.
type flakyService struct {
	traversal.Service
	calls      int
	goodCalls  int
	perturbing bool
}

func newFlakyService(inner traversal.Service, goodCalls int) *flakyService {
	return &flakyService{Service: inner, goodCalls: goodCalls}
}

func (f *flakyService) CreateGraph() (traversal.GraphDescr, traversal.Status) {
	g, st := f.Service.CreateGraph()
	if !st.OK() {
		return g, st
	}
	return &flakyDescr{GraphDescr: g, svc: f}, st
}

func (f *flakyService) RunBFS(g traversal.GraphDescr, source *int, p traversal.Params) traversal.Status {
	if fd, ok := g.(*flakyDescr); ok {
		g = fd.GraphDescr
	}
	st := f.Service.RunBFS(g, source, p)
	if st.OK() {
		f.calls++
		f.perturbing = f.calls > f.goodCalls
	}
	return st
}

type flakyDescr struct {
	traversal.GraphDescr
	svc *flakyService
}

func (d *flakyDescr) GetVertexData(slot int, out []int32) traversal.Status {
	st := d.GraphDescr.GetVertexData(slot, out)
	if st.OK() && slot == 0 && d.svc.perturbing && len(out) > 0 {
		out[0]++
	}
	return st
}
