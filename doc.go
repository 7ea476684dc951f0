// Package verigraph verifies breadth-first traversal services against an
// independent reference implementation.
//
// What is verigraph?
//
// A verification suite for BFS over sparse graphs: it feeds a catalog of
// scenarios (generated topologies or binary CSR files) to a traversal
// service through a narrow handle-based contract, recomputes every result
// with a reference search built on a different formulation, and reports
// PASS, FAIL or WAIVED per scenario. Beyond plain correctness it checks
// call-to-call stability, memory hygiene and rejection of invalid usage.
//
// The module is organized into focused subpackages:
//
//	csr/       - compressed sparse row graphs, edge masks, binary codec
//	bfs/       - reference breadth-first search (queue formulation)
//	traversal/ - the service contract: Service, GraphDescr, Status
//	engine/    - in-memory conforming service (frontier formulation)
//	gen/       - deterministic graph generators for hermetic scenarios
//	scenario/  - scenario catalog, YAML loading, process configuration
//	oracle/    - correctness oracle: compare, waive, time
//	stability/ - repeated-call drift and memory-leak detection
//	corner/    - invalid-usage rejection battery
//	cmd/       - the verigraph command-line entry point
//
// Quick ASCII example of a masked scenario:
//
//	0 ─x─ 1 ─── 2 ─x─ 3
//
// with every even-indexed edge masked off, a search from vertex 1 reaches
// vertex 2 in one hop while 0 and 3 keep the sentinel distance, and the
// service and the reference must agree on all four values.
//
//	go get github.com/verigraph/verigraph
package verigraph
