package scenario

import (
	"errors"
	"fmt"
	"os"

	"github.com/verigraph/verigraph/csr"
	"github.com/verigraph/verigraph/gen"
)

// Sentinel errors for catalog handling.
var (
	// ErrScenarioInvalid indicates a scenario record that names neither or
	// both of a graph file and a gen spec, or fails field validation.
	ErrScenarioInvalid = errors.New("scenario: invalid scenario record")

	// ErrUnknownGenKind indicates a gen spec naming a constructor the
	// suite does not provide.
	ErrUnknownGenKind = errors.New("scenario: unknown generator kind")
)

// GenSpec selects a deterministic test-graph constructor from package gen.
type GenSpec struct {
	Kind string  `yaml:"kind" validate:"required,oneof=cycle path star grid random-sparse"`
	N    int     `yaml:"n,omitempty"`
	Rows int     `yaml:"rows,omitempty"`
	Cols int     `yaml:"cols,omitempty"`
	P    float64 `yaml:"p,omitempty"`
	Seed int64   `yaml:"seed,omitempty"`
}

// Scenario is one immutable test case: a graph, a source vertex, and the
// mask/undirected flags. Exactly one of File and Gen must be set.
type Scenario struct {
	Name       string   `yaml:"name" validate:"required"`
	File       string   `yaml:"file,omitempty"`
	Gen        *GenSpec `yaml:"gen,omitempty"`
	Source     int      `yaml:"source" validate:"min=0"`
	UseMask    bool     `yaml:"mask,omitempty"`
	Undirected bool     `yaml:"undirected,omitempty"`
}

// GraphID identifies the scenario's graph in failure reports.
func (s Scenario) GraphID() string {
	if s.File != "" {
		return s.File
	}
	if s.Gen != nil {
		return fmt.Sprintf("gen:%s", s.Gen.Kind)
	}
	return "unset"
}

// Mask materializes the scenario's edge mask for g: the deterministic
// parity policy when masking is requested, nil otherwise.
func (s Scenario) Mask(g *csr.Graph) csr.Mask {
	if !s.UseMask {
		return nil
	}
	return csr.ParityMask(g.EdgeCount())
}

// Resolve loads or generates the scenario's graph. File paths go through
// cfg.ResolvePath; a malformed file fails fast with csr.ErrMalformedGraph.
func Resolve(s Scenario, cfg Config) (*csr.Graph, error) {
	switch {
	case s.File != "" && s.Gen != nil, s.File == "" && s.Gen == nil:
		return nil, fmt.Errorf("%w: %q must set exactly one of file and gen", ErrScenarioInvalid, s.Name)
	case s.File != "":
		path := cfg.ResolvePath(s.File)
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: opening graph file: %w", s.Name, err)
		}
		defer f.Close()
		g, err := csr.ReadGraph(f)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %s: %w", s.Name, path, err)
		}
		return g, nil
	default:
		return resolveGen(s)
	}
}

func resolveGen(s Scenario) (*csr.Graph, error) {
	spec := s.Gen
	var c gen.Constructor
	switch spec.Kind {
	case "cycle":
		c = gen.Cycle(spec.N)
	case "path":
		c = gen.Path(spec.N)
	case "star":
		c = gen.Star(spec.N)
	case "grid":
		c = gen.Grid(spec.Rows, spec.Cols)
	case "random-sparse":
		c = gen.RandomSparse(spec.N, spec.P)
	default:
		return nil, fmt.Errorf("%w: %q in scenario %q", ErrUnknownGenKind, spec.Kind, s.Name)
	}
	g, err := gen.Build(c, gen.WithSeed(spec.Seed))
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return g, nil
}
