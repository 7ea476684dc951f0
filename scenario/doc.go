// Package scenario defines the declarative test cases driving the
// verification suite, plus the flat process-level configuration record.
//
// A Scenario names a graph (either a binary graph file or a gen spec
// resolved through package gen), a source vertex, and the mask/undirected
// flags. Scenarios are immutable records defined before the run starts;
// the oracle, stability harness, and corner validator consume them through
// a single generic runner rather than any per-case code.
//
// Catalogs load from YAML and validate with go-playground/validator; the
// built-in DefaultCatalog is fully hermetic (gen specs only), so the suite
// runs without graph files present.
//
// Config carries the three process-level controls the core consumes as
// plain data: performance timing on/off, the stress-iteration multiplier,
// and the filesystem prefix for locating graph files.
package scenario
