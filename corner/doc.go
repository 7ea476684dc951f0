// Package corner validates that a traversal service rejects invalid usage.
//
// What: a fixed battery of misuse checks run against a live service: BFS
// requested before vertex slots exist, nil service, descriptor or source
// pointers, and traversal over a column-oriented structure that the service
// may store but must not traverse.
//
// Why: correctness oracles only prove the happy path. A service that returns
// garbage instead of an error on malformed input passes every conforming
// scenario yet corrupts real callers. The battery pins down the rejection
// contract with exact expected statuses where the contract names one.
//
// Every check builds its own descriptor and destroys it before the next
// check runs, so a failing check never poisons its successors.
package corner
