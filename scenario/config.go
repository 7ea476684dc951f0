package scenario

import (
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// defaultStressMultiplier matches the suite's historical default.
const defaultStressMultiplier = 10

// Config is the flat process-level configuration record the core consumes.
// CLI glue owns where the values come from; the core treats them as data.
type Config struct {
	// PerformanceEnabled turns on wall-clock timing of repeated calls for
	// large graphs. Reporting only; never affects pass/fail.
	PerformanceEnabled bool `yaml:"performance"`

	// StressMultiplier scales the stability harness's repeat count.
	StressMultiplier int `yaml:"stress_multiplier" validate:"min=1"`

	// GraphDataPrefix is prepended to relative graph-file paths.
	GraphDataPrefix string `yaml:"graph_data_prefix"`
}

// DefaultConfig returns the defaults: timing off, multiplier 10, no prefix.
func DefaultConfig() Config {
	return Config{StressMultiplier: defaultStressMultiplier}
}

// validate is shared; validator.Validate is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the field constraints declared on Config.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("scenario: invalid config: %w", err)
	}
	return nil
}

// ResolvePath maps a scenario's graph-file reference to a local path by
// prefixing GraphDataPrefix. Absolute paths and an empty prefix pass
// through unchanged.
func (c Config) ResolvePath(file string) string {
	if c.GraphDataPrefix == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.GraphDataPrefix, file)
}
