// SPDX-License-Identifier: MIT
// Package gen: sentinel errors.

package gen

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// smaller than the minimum the requested constructor supports.
var ErrTooFewVertices = errors.New("gen: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed
// interval [0,1].
var ErrInvalidProbability = errors.New("gen: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor was built
// without a seeded random source (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("gen: rng is required")
