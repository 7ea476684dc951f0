// Package traversal: status codes and their error mapping.
//
// Status is the wire-level result of every contract call. Err maps a Status
// onto package sentinel errors so Go callers can branch with errors.Is while
// the contract itself stays a plain code, the way the native services this
// suite targets report results.

package traversal

import "errors"

// Status is the result code of a traversal-service call.
type Status int

const (
	// StatusSuccess marks a completed call.
	StatusSuccess Status = iota

	// StatusInvalidValue marks a rejected call due to a null handle, null
	// source pointer, out-of-range slot or vertex, or malformed argument.
	// Distinct from every other failure code by contract.
	StatusInvalidValue

	// StatusNotAllocated marks a traversal requested before the required
	// vertex or edge data slots were allocated.
	StatusNotAllocated

	// StatusUnsupportedTopology marks a traversal over a topology encoding
	// the service cannot traverse (e.g. column-oriented sparse form).
	StatusUnsupportedTopology

	// StatusAllocFailed marks an allocation the service could not satisfy.
	StatusAllocFailed

	// StatusInternalError marks any other failure inside the service.
	StatusInternalError
)

// Sentinel errors corresponding to non-success status codes.
var (
	ErrInvalidValue        = errors.New("traversal: invalid value")
	ErrNotAllocated        = errors.New("traversal: required data not allocated")
	ErrUnsupportedTopology = errors.New("traversal: unsupported topology")
	ErrAllocFailed         = errors.New("traversal: allocation failed")
	ErrInternal            = errors.New("traversal: internal error")
	errUnknownStatus       = errors.New("traversal: unknown status")
)

// String renders the code for reports and logs.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusInvalidValue:
		return "INVALID_VALUE"
	case StatusNotAllocated:
		return "NOT_ALLOCATED"
	case StatusUnsupportedTopology:
		return "UNSUPPORTED_TOPOLOGY"
	case StatusAllocFailed:
		return "ALLOC_FAILED"
	case StatusInternalError:
		return "INTERNAL_ERROR"
	default:
		return "UNKNOWN"
	}
}

// OK reports whether the call succeeded.
func (s Status) OK() bool { return s == StatusSuccess }

// Err maps the status onto the package sentinels; nil for StatusSuccess.
func (s Status) Err() error {
	switch s {
	case StatusSuccess:
		return nil
	case StatusInvalidValue:
		return ErrInvalidValue
	case StatusNotAllocated:
		return ErrNotAllocated
	case StatusUnsupportedTopology:
		return ErrUnsupportedTopology
	case StatusAllocFailed:
		return ErrAllocFailed
	case StatusInternalError:
		return ErrInternal
	default:
		return errUnknownStatus
	}
}
