package oracle

import "time"

// Outcome classifies a scenario run.
type Outcome int

const (
	// Passed: all assertions held.
	Passed Outcome = iota

	// Failed: a correctness assertion or service call failed.
	Failed

	// Waived: skipped for lack of free memory; not a failure.
	Waived
)

// String renders the outcome for summaries.
func (o Outcome) String() string {
	switch o {
	case Passed:
		return "PASS"
	case Failed:
		return "FAIL"
	case Waived:
		return "WAIVED"
	default:
		return "UNKNOWN"
	}
}

// Report is the oracle's verdict on one scenario, with enough context to
// reproduce: the scenario identity travels with the error text.
type Report struct {
	Outcome Outcome

	// Err explains a Failed outcome (correctness or service-call error)
	// or carries the ErrResourceInsufficient detail of a Waived one.
	// Nil for Passed.
	Err error

	// Graph dimensions, for summaries.
	VertexCount int
	EdgeCount   int

	// MeanCallTime is the mean wall-clock duration of one traversal call,
	// populated only when performance timing ran. Informational.
	MeanCallTime time.Duration
}
