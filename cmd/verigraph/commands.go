package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/verigraph/verigraph/corner"
	"github.com/verigraph/verigraph/engine"
	"github.com/verigraph/verigraph/oracle"
	"github.com/verigraph/verigraph/scenario"
	"github.com/verigraph/verigraph/stability"
)

var (
	perfEnabled  bool
	stressIters  int
	graphDataDir string
	catalogPath  string

	rootCmd = &cobra.Command{
		Use:   "verigraph",
		Short: "Verify BFS traversal services against a reference implementation",
		Long: `verigraph runs a catalog of graph scenarios against a traversal
service and checks distances, predecessors, call stability and
invalid-usage handling against an independent reference.`,
		SilenceUsage: true,
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the correctness scenarios from the catalog",
		RunE:  runCorrectness,
	}

	stressCmd = &cobra.Command{
		Use:   "stress",
		Short: "Repeat each scenario's traversal to detect drift and leaks",
		RunE:  runStress,
	}

	cornerCmd = &cobra.Command{
		Use:   "corner",
		Short: "Check that invalid usage is rejected",
		RunE:  runCorner,
	}

	allCmd = &cobra.Command{
		Use:   "all",
		Short: "Run correctness, stress and corner suites in sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runCorrectness(cmd, args); err != nil {
				return err
			}
			if err := runStress(cmd, args); err != nil {
				return err
			}
			return runCorner(cmd, args)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&perfEnabled, "perf", false, "time repeated traversal calls on large graphs")
	rootCmd.PersistentFlags().IntVar(&stressIters, "stress-iters", scenario.DefaultConfig().StressMultiplier, "stress repeat multiplier")
	rootCmd.PersistentFlags().StringVar(&graphDataDir, "graph-data-dir", "", "directory prefix for scenario graph files")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "scenario catalog YAML (built-in catalog when empty)")

	rootCmd.AddCommand(runCmd, stressCmd, cornerCmd, allCmd)
}

// buildConfig folds the CLI flags into the process configuration.
func buildConfig() (scenario.Config, error) {
	cfg := scenario.DefaultConfig()
	cfg.PerformanceEnabled = perfEnabled
	cfg.StressMultiplier = stressIters
	cfg.GraphDataPrefix = graphDataDir
	if err := cfg.Validate(); err != nil {
		return scenario.Config{}, err
	}
	return cfg, nil
}

// loadCatalog returns the scenario set: the YAML file named by --catalog,
// or the built-in hermetic catalog when the flag is unset.
func loadCatalog() (scenario.Catalog, error) {
	if catalogPath == "" {
		return scenario.DefaultCatalog(), nil
	}
	return scenario.LoadCatalog(catalogPath)
}

func runCorrectness(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	svc := engine.New()
	defer svc.Close()

	failed := 0
	for _, sc := range cat.Scenarios {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		g, err := scenario.Resolve(sc, cfg)
		if err != nil {
			slog.Error("scenario", "name", sc.Name, "outcome", oracle.Failed, "error", err)
			failed++
			continue
		}

		report := oracle.Run(cmd.Context(), svc, sc, g, cfg)
		attrs := []any{
			"name", sc.Name,
			"outcome", report.Outcome,
			"vertices", report.VertexCount,
			"edges", report.EdgeCount,
		}
		switch report.Outcome {
		case oracle.Failed:
			failed++
			slog.Error("scenario", append(attrs, "error", report.Err)...)
		case oracle.Waived:
			slog.Warn("scenario", append(attrs, "reason", report.Err)...)
		default:
			if report.MeanCallTime > 0 {
				attrs = append(attrs, "mean_call_time", report.MeanCallTime)
			}
			slog.Info("scenario", attrs...)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(cat.Scenarios))
	}
	slog.Info("correctness suite passed", "scenarios", len(cat.Scenarios))
	return nil
}

func runStress(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	svc := engine.New()
	defer svc.Close()

	repeats := stability.Repeats(cfg)
	failed := 0
	for _, sc := range cat.Scenarios {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		g, err := scenario.Resolve(sc, cfg)
		if err != nil {
			slog.Error("stress scenario", "name", sc.Name, "outcome", oracle.Failed, "error", err)
			failed++
			continue
		}

		if err := stability.Run(cmd.Context(), svc, g, sc.Source, sc.Undirected, cfg); err != nil {
			slog.Error("stress scenario", "name", sc.Name, "outcome", oracle.Failed, "repeats", repeats, "error", err)
			failed++
			continue
		}
		slog.Info("stress scenario", "name", sc.Name, "outcome", oracle.Passed, "repeats", repeats)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d stress scenarios failed", failed, len(cat.Scenarios))
	}
	slog.Info("stress suite passed", "scenarios", len(cat.Scenarios), "repeats", repeats)
	return nil
}

func runCorner(cmd *cobra.Command, _ []string) error {
	svc := engine.New()
	defer svc.Close()

	if err := corner.Run(cmd.Context(), svc); err != nil {
		return err
	}
	slog.Info("corner suite passed")
	return nil
}
