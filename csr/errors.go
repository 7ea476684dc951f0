// Package csr: sentinel error set.
//
// Error policy (matches the rest of the module):
//   - Only package-level sentinel variables are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context via fmt.Errorf("...: %w", ErrX).
//   - No panics on user-triggered conditions.

package csr

import "errors"

// ErrMalformedGraph indicates a structural invariant violation in CSR data:
// non-monotonic offsets, a column index out of range, or declared dimensions
// disagreeing with the data actually supplied or read.
// Fatal to the scenario that triggered it; never retried.
var ErrMalformedGraph = errors.New("csr: malformed graph")

// ErrMaskLength indicates a Mask whose length differs from the edge count
// of the Graph it is paired with.
var ErrMaskLength = errors.New("csr: mask length mismatch")
