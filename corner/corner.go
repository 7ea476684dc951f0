package corner

import (
	"context"
	"fmt"

	"github.com/verigraph/verigraph/csr"
	"github.com/verigraph/verigraph/gen"
	"github.com/verigraph/verigraph/oracle"
	"github.com/verigraph/verigraph/traversal"
)

// cornerVertices sizes the probe graph. Large enough that a service cutting
// corners on small inputs is still exercised, small enough to stay cheap.
const cornerVertices = 1024

// Run executes the misuse battery against svc. The first failing check
// aborts the run; its error names the check and the status observed.
func Run(ctx context.Context, svc traversal.Service) error {
	g, err := gen.Build(gen.Cycle(cornerVertices))
	if err != nil {
		return fmt.Errorf("%w: building probe graph: %v", oracle.ErrServiceCall, err)
	}

	checks := []struct {
		name string
		run  func(traversal.Service, *csr.Graph) error
	}{
		{"nil-service", checkNilService},
		{"nil-descriptor", checkNilDescr},
		{"nil-source", checkNilSource},
		{"before-vertex-allocation", checkBeforeAllocation},
		{"csc-traversal", checkCSCTraversal},
	}
	for _, c := range checks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.run(svc, g); err != nil {
			return fmt.Errorf("check %s: %w", c.name, err)
		}
	}
	return nil
}

// checkNilService probes the contract entry point with no service at all.
func checkNilService(_ traversal.Service, _ *csr.Graph) error {
	src := 0
	if st := traversal.RunBFS(nil, nil, &src, traversal.NewParams()); st != traversal.StatusInvalidValue {
		return rejectionError(st, traversal.StatusInvalidValue)
	}
	return nil
}

// checkNilDescr asks a live service to traverse a nil descriptor.
func checkNilDescr(svc traversal.Service, _ *csr.Graph) error {
	src := 0
	if st := traversal.RunBFS(svc, nil, &src, traversal.NewParams()); st != traversal.StatusInvalidValue {
		return rejectionError(st, traversal.StatusInvalidValue)
	}
	return nil
}

// checkNilSource uploads a valid graph and then omits the source vertex.
func checkNilSource(svc traversal.Service, g *csr.Graph) error {
	descr, err := prepared(svc, g, traversal.TopologyCSR, true)
	if err != nil {
		return err
	}
	defer descr.Destroy()

	if st := traversal.RunBFS(svc, descr, nil, traversal.NewParams()); st != traversal.StatusInvalidValue {
		return rejectionError(st, traversal.StatusInvalidValue)
	}
	return nil
}

// checkBeforeAllocation requests a traversal while no vertex slot exists to
// receive distances. Any non-success status satisfies the contract here.
func checkBeforeAllocation(svc traversal.Service, g *csr.Graph) error {
	descr, err := prepared(svc, g, traversal.TopologyCSR, false)
	if err != nil {
		return err
	}
	defer descr.Destroy()

	src := 0
	if st := traversal.RunBFS(svc, descr, &src, traversal.NewParams()); st.OK() {
		return fmt.Errorf("%w: traversal without vertex slots reported %v", oracle.ErrCorrectnessMismatch, st)
	}
	return nil
}

// checkCSCTraversal uploads a column-oriented structure, which the service
// must store, then requests BFS over it, which the service must refuse.
func checkCSCTraversal(svc traversal.Service, g *csr.Graph) error {
	descr, err := prepared(svc, g, traversal.TopologyCSC, true)
	if err != nil {
		return err
	}
	defer descr.Destroy()

	src := 0
	if st := traversal.RunBFS(svc, descr, &src, traversal.NewParams()); st.OK() {
		return fmt.Errorf("%w: traversal over %v structure reported %v", oracle.ErrCorrectnessMismatch, traversal.TopologyCSC, st)
	}
	return nil
}

// prepared creates a descriptor, uploads g under topo and optionally
// allocates the distance slot. Setup failures are service faults, not
// rejection failures.
func prepared(svc traversal.Service, g *csr.Graph, topo traversal.TopologyKind, allocVertex bool) (traversal.GraphDescr, error) {
	descr, st := svc.CreateGraph()
	if !st.OK() {
		return nil, fmt.Errorf("%w: CreateGraph: %w", oracle.ErrServiceCall, st.Err())
	}
	if st := descr.SetStructure(topo, g.VertexCount(), g.EdgeCount(), g.RowOffsets(), g.ColIndices()); !st.OK() {
		descr.Destroy()
		return nil, fmt.Errorf("%w: SetStructure(%v): %w", oracle.ErrServiceCall, topo, st.Err())
	}
	if allocVertex {
		if st := descr.AllocateVertexData(1); !st.OK() {
			descr.Destroy()
			return nil, fmt.Errorf("%w: AllocateVertexData: %w", oracle.ErrServiceCall, st.Err())
		}
	}
	return descr, nil
}

// rejectionError reports a check whose status disagreed with the contract.
func rejectionError(got, want traversal.Status) error {
	return fmt.Errorf("%w: got %v, want %v", oracle.ErrCorrectnessMismatch, got, want)
}
