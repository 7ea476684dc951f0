// Package oracle: sentinel errors.

package oracle

import "errors"

// ErrCorrectnessMismatch indicates the service's distances or predecessor
// tree disagree with the reference, or that the service accepted a call it
// was required to reject. Deterministic, so never retried.
var ErrCorrectnessMismatch = errors.New("oracle: correctness mismatch")

// ErrResourceInsufficient indicates the service lacks the free memory a
// scenario needs. It travels inside a waived report, never a failed one.
var ErrResourceInsufficient = errors.New("oracle: insufficient free memory")

// ErrServiceCall indicates a contract call failed while setting up or
// running a scenario; the status sentinel is wrapped underneath.
var ErrServiceCall = errors.New("oracle: service call failed")
