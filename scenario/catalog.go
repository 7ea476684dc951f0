package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog is the declarative list of scenarios for one suite run.
type Catalog struct {
	Scenarios []Scenario `yaml:"scenarios" validate:"required,min=1,dive"`
}

// LoadCatalog reads and validates a YAML catalog file.
func LoadCatalog(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("scenario: reading catalog: %w", err)
	}
	var cat Catalog
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		return Catalog{}, fmt.Errorf("scenario: parsing catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}

// Validate checks field constraints plus the one-graph-source rule that
// struct tags cannot express.
func (c Catalog) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrScenarioInvalid, err)
	}
	for _, s := range c.Scenarios {
		if (s.File == "") == (s.Gen == nil) {
			return fmt.Errorf("%w: %q must set exactly one of file and gen", ErrScenarioInvalid, s.Name)
		}
	}
	return nil
}

// DefaultCatalog is the hermetic built-in catalog: generated graphs only,
// covering plain, masked, and undirected scenarios plus instances with
// unreachable vertices. Its shape mirrors the correctness-check matrix the
// suite has always run.
func DefaultCatalog() Catalog {
	return Catalog{Scenarios: []Scenario{
		{Name: "cycle-1024", Gen: &GenSpec{Kind: "cycle", N: 1024}, Source: 0},
		{Name: "cycle-1024-src10", Gen: &GenSpec{Kind: "cycle", N: 1024}, Source: 10},
		{Name: "path-512-forward", Gen: &GenSpec{Kind: "path", N: 512}, Source: 0},
		{Name: "path-512-tail", Gen: &GenSpec{Kind: "path", N: 512}, Source: 511},
		{Name: "path-512-undirected", Gen: &GenSpec{Kind: "path", N: 512}, Source: 511, Undirected: true},
		{Name: "star-256", Gen: &GenSpec{Kind: "star", N: 256}, Source: 0},
		{Name: "star-256-leaf-undirected", Gen: &GenSpec{Kind: "star", N: 256}, Source: 17, Undirected: true},
		{Name: "grid-32x32", Gen: &GenSpec{Kind: "grid", Rows: 32, Cols: 32}, Source: 0},
		{Name: "grid-32x32-masked", Gen: &GenSpec{Kind: "grid", Rows: 32, Cols: 32}, Source: 0, UseMask: true},
		{Name: "sparse-500", Gen: &GenSpec{Kind: "random-sparse", N: 500, P: 0.01, Seed: 42}, Source: 0},
		{Name: "sparse-500-masked", Gen: &GenSpec{Kind: "random-sparse", N: 500, P: 0.01, Seed: 42}, Source: 0, UseMask: true},
		{Name: "sparse-500-undirected", Gen: &GenSpec{Kind: "random-sparse", N: 500, P: 0.01, Seed: 42}, Source: 3, Undirected: true},
		{Name: "cycle-1024-masked", Gen: &GenSpec{Kind: "cycle", N: 1024}, Source: 0, UseMask: true},
	}}
}
