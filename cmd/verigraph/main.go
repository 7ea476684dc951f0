// Command verigraph verifies BFS traversal services against a reference
// implementation.
//
// It resolves a catalog of graph scenarios (generated or loaded from binary
// CSR files), runs each one against the in-process engine, and reports
// PASS, FAIL or WAIVED per scenario. Stress mode repeats traversals to
// detect nondeterminism and memory leaks; corner mode checks that invalid
// usage is rejected.
//
// # Usage
//
//	verigraph run [--catalog file.yaml] [--perf] [--graph-data-dir dir]
//	verigraph stress [--stress-iters n]
//	verigraph corner
//	verigraph all
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("suite failed", "error", err)
		os.Exit(1)
	}
}
