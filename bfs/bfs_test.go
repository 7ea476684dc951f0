package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/verigraph/verigraph/bfs"
	"github.com/verigraph/verigraph/csr"
)

// mustGraph builds a Graph or fails the test.
func mustGraph(t *testing.T, offsets, indices []int32) *csr.Graph {
	t.Helper()
	g, err := csr.New(offsets, indices, nil)
	if err != nil {
		t.Fatalf("building graph: %v", err)
	}
	return g
}

// cycle returns the directed ring i -> (i+1) mod n.
func cycle(t *testing.T, n int) *csr.Graph {
	t.Helper()
	offsets := make([]int32, n+1)
	indices := make([]int32, n)
	for i := 0; i < n; i++ {
		offsets[i] = int32(i)
		indices[i] = int32((i + 1) % n)
	}
	offsets[n] = int32(n)
	return mustGraph(t, offsets, indices)
}

// TestDistances_Errors verifies that invalid inputs and options are rejected.
func TestDistances_Errors(t *testing.T) {
	if _, err := bfs.Distances(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := cycle(t, 4)
	if _, err := bfs.Distances(g, -1); !errors.Is(err, bfs.ErrSourceOutOfRange) {
		t.Errorf("negative source: want ErrSourceOutOfRange, got %v", err)
	}
	if _, err := bfs.Distances(g, 4); !errors.Is(err, bfs.ErrSourceOutOfRange) {
		t.Errorf("source == n: want ErrSourceOutOfRange, got %v", err)
	}
	if _, err := bfs.Distances(g, 0, bfs.WithMask(csr.ParityMask(3))); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("short mask: want ErrOptionViolation, got %v", err)
	}
}

// TestDistances_SingleVertex covers the trivial one-vertex graph.
func TestDistances_SingleVertex(t *testing.T) {
	g := mustGraph(t, []int32{0, 0}, nil)
	res, err := bfs.Distances(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Dist[0] != 0 {
		t.Errorf("Dist[0] = %d; want 0", res.Dist[0])
	}
	if res.Pred[0] != bfs.NoPredecessor {
		t.Errorf("Pred[0] = %d; want NoPredecessor", res.Pred[0])
	}
}

// TestDistances_Cycle1024 pins the known answer for the 1024-vertex ring:
// distance equals vertex number, predecessor is the previous vertex.
func TestDistances_Cycle1024(t *testing.T) {
	const n = 1024
	res, err := bfs.Distances(cycle(t, n), 0)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < n; i++ {
		if res.Dist[i] != int32(i) {
			t.Fatalf("Dist[%d] = %d; want %d", i, res.Dist[i], i)
		}
	}
	if res.Pred[0] != bfs.NoPredecessor {
		t.Errorf("Pred[0] = %d; want NoPredecessor", res.Pred[0])
	}
	for i := 1; i < n; i++ {
		if res.Pred[i] != int32(i-1) {
			t.Fatalf("Pred[%d] = %d; want %d", i, res.Pred[i], i-1)
		}
	}
}

// TestDistances_UnreachableSentinels ensures vertices outside the source's
// component keep both sentinels.
func TestDistances_UnreachableSentinels(t *testing.T) {
	// 0→1, plus isolated vertices 2 and 3.
	g := mustGraph(t, []int32{0, 1, 1, 1, 1}, []int32{1})
	res, err := bfs.Distances(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []int{2, 3} {
		if res.Dist[v] != bfs.Unreachable {
			t.Errorf("Dist[%d] = %d; want Unreachable", v, res.Dist[v])
		}
		if res.Pred[v] != bfs.NoPredecessor {
			t.Errorf("Pred[%d] = %d; want NoPredecessor", v, res.Pred[v])
		}
	}
}

// TestDistances_Mask checks that a disabled edge behaves exactly as an
// absent edge.
func TestDistances_Mask(t *testing.T) {
	// 0→1 (edge 0), 0→2 (edge 1), 2→1 (edge 2).
	g := mustGraph(t, []int32{0, 2, 2, 3}, []int32{1, 2, 1})

	// Parity mask disables edges 0 and 2: vertex 1 becomes unreachable.
	res, err := bfs.Distances(g, 0, bfs.WithMask(csr.ParityMask(3)))
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist[1] != bfs.Unreachable {
		t.Errorf("Dist[1] = %d; want Unreachable", res.Dist[1])
	}
	if res.Dist[2] != 1 {
		t.Errorf("Dist[2] = %d; want 1", res.Dist[2])
	}

	// All edges enabled: vertex 1 is one hop away.
	res, err = bfs.Distances(g, 0, bfs.WithMask(csr.Mask{true, true, true}))
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist[1] != 1 {
		t.Errorf("Dist[1] = %d; want 1", res.Dist[1])
	}
}

// TestDistances_Undirected verifies that undirected mode matches a true
// undirected BFS even when all stored edges point away from the source.
func TestDistances_Undirected(t *testing.T) {
	// Directed path 0→1→2; from source 2 nothing is reachable directed,
	// everything is reachable undirected.
	g := mustGraph(t, []int32{0, 1, 2, 2}, []int32{1, 2})

	res, err := bfs.Distances(g, 2)
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist[0] != bfs.Unreachable || res.Dist[1] != bfs.Unreachable {
		t.Fatalf("directed run: Dist = %v; want sentinels for 0 and 1", res.Dist)
	}

	res, err = bfs.Distances(g, 2, bfs.WithUndirected())
	if err != nil {
		t.Fatal(err)
	}
	for v, want := range []int32{2, 1, 0} {
		if res.Dist[v] != want {
			t.Errorf("undirected Dist[%d] = %d; want %d", v, res.Dist[v], want)
		}
	}
}

// TestDistances_PredecessorProperty checks the BFS-tree invariant on a graph
// with multiple shortest paths: whatever predecessor was chosen, its
// distance is exactly one less.
func TestDistances_PredecessorProperty(t *testing.T) {
	// Diamond: 0→1, 0→2, 1→3, 2→3.
	g := mustGraph(t, []int32{0, 2, 3, 4, 4}, []int32{1, 2, 3, 3})
	res, err := bfs.Distances(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	for v := 0; v < g.VertexCount(); v++ {
		p := res.Pred[v]
		if p == bfs.NoPredecessor {
			if res.Dist[v] != 0 && res.Dist[v] != bfs.Unreachable {
				t.Errorf("Pred[%d] unset but Dist[%d] = %d", v, v, res.Dist[v])
			}
			continue
		}
		if res.Dist[v] != res.Dist[p]+1 {
			t.Errorf("Dist[%d] = %d; want Dist[%d]+1 = %d", v, res.Dist[v], p, res.Dist[p]+1)
		}
	}
}

// TestDistances_Cancellation verifies that a cancelled context halts BFS.
func TestDistances_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	_, err := bfs.Distances(cycle(t, 100), 0, bfs.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("cancellation: want context.Canceled, got %v", err)
	}
}

// TestResult_PathTo covers trivial, regular, and unreachable targets.
func TestResult_PathTo(t *testing.T) {
	g := mustGraph(t, []int32{0, 1, 2, 2, 2}, []int32{1, 2})
	res, err := bfs.Distances(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 3 || path[0] != 0 || path[1] != 1 || path[2] != 2 {
		t.Errorf("PathTo(2) = %v; want [0 1 2]", path)
	}
	if path, err = res.PathTo(0); err != nil || len(path) != 1 {
		t.Errorf("PathTo(start) = %v, %v; want [0], nil", path, err)
	}
	if _, err = res.PathTo(3); err == nil {
		t.Error("PathTo(unreachable): expected error, got nil")
	}
}
