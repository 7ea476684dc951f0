// Package stability is the stress harness of the verification suite: it
// invokes the same traversal request repeatedly on one fixed graph and
// asserts that the system under test is deterministic and does not leak
// memory as calls accumulate.
//
// Checks
//
//   - Result stability: the distance vector of every repeat must be
//     bit-identical to the first repeat's. Predecessor vectors are fetched
//     but never compared, because graphs with multiple shortest paths
//     admit several valid trees.
//   - No monotonic memory regression: free memory sampled at roughly the
//     midpoint of the loop must not exceed free memory sampled at the
//     last repeat (freeMid <= freeLast). Only those two samples are
//     compared, deliberately: checking every repeat would make the
//     harness intolerant of transient allocator fragmentation.
//
// A violation is fatal to the scenario and never retried, and is reported
// as ErrStabilityViolation, distinct from the oracle's correctness error:
// it indicates non-determinism or leakage rather than a one-shot wrong
// answer.
package stability
