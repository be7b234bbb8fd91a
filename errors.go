package mckp

import (
	"errors"
	"fmt"
)

// Kind classifies an Error by its category.
type Kind int

const (
	// InvalidInput covers shape mismatches, NaN/Inf values, negative
	// costs, duplicate arm ids within a unit, and unknown arm ids.
	// Fatal to the call; no partial result.
	InvalidInput Kind = iota
	// BudgetBeyondPath is raised by Predict when the requested budget
	// exceeds the truncated path's final spend. Fatal; caller may
	// re-fit with a larger budget.
	BudgetBeyondPath
	// Cancelled means the caller's cancel token was observed set
	// during the run. Not a failure: the partial path is still valid
	// and is surfaced by the caller of Fit, not wrapped into this Kind's
	// error path — Fit itself treats cancellation as a successful,
	// incomplete result (see Fit's doc comment).
	Cancelled
	// InternalConsistency marks a recoverable filter post-condition
	// violation (e.g. a zero-delta-cost candidate reaching C4). The
	// offending candidate is skipped; this Kind is only ever seen via
	// the diagnostic sink, never returned as an error from Fit.
	InternalConsistency
	// ResourceExhaustion covers allocation failure while sizing the
	// flat CSR buffers. Fatal; the solver handle is left uninitialized.
	ResourceExhaustion
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case BudgetBeyondPath:
		return "BudgetBeyondPath"
	case Cancelled:
		return "Cancelled"
	case InternalConsistency:
		return "InternalConsistency"
	case ResourceExhaustion:
		return "ResourceExhaustion"
	default:
		return "Unknown"
	}
}

// Sentinel errors, one per Kind, so callers can use errors.Is(err,
// mckp.ErrInvalidInput) without unwrapping the structured Error first —
// the same pattern as dijkstra's package-level sentinels.
var (
	ErrInvalidInput        = errors.New("mckp: invalid input")
	ErrBudgetBeyondPath    = errors.New("mckp: budget exceeds truncated path")
	ErrCancelled           = errors.New("mckp: run cancelled")
	ErrInternalConsistency = errors.New("mckp: internal consistency violation")
	ErrResourceExhaustion  = errors.New("mckp: resource exhaustion")
	// ErrNotFit is returned by every mckp.Solver accessor called before
	// Solver.Fit has succeeded at least once — the Go-idiomatic getter
	// counterpart of the original Python Solver's "is fit" assertion.
	ErrNotFit = errors.New("mckp: solver has not been fit yet")
)

func sentinelFor(k Kind) error {
	switch k {
	case InvalidInput:
		return ErrInvalidInput
	case BudgetBeyondPath:
		return ErrBudgetBeyondPath
	case Cancelled:
		return ErrCancelled
	case InternalConsistency:
		return ErrInternalConsistency
	case ResourceExhaustion:
		return ErrResourceExhaustion
	default:
		return errors.New("mckp: unknown error kind")
	}
}

// Error is the structured error type returned by Fit and Predict. It
// carries a machine-readable Kind plus a human-readable message, and,
// where applicable, the offending Unit and/or Arm id as structured
// fields rather than text embedded only in Message.
type Error struct {
	Kind    Kind
	Message string
	Unit    string // opaque unit id, empty if not applicable
	Arm     string // opaque arm id, empty if not applicable
	Cause   error  // wrapped underlying error, may be nil
}

func (e *Error) Error() string {
	switch {
	case e.Unit != "" && e.Arm != "":
		return fmt.Sprintf("mckp: %s: %s (unit=%q arm=%q)", e.Kind, e.Message, e.Unit, e.Arm)
	case e.Unit != "":
		return fmt.Sprintf("mckp: %s: %s (unit=%q)", e.Kind, e.Message, e.Unit)
	default:
		return fmt.Sprintf("mckp: %s: %s", e.Kind, e.Message)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// Is makes errors.Is(err, mckp.ErrInvalidInput) (and the other Kind
// sentinels) work against a structured *Error without the caller first
// unwrapping Cause.
func (e *Error) Is(target error) bool {
	return target == sentinelFor(e.Kind)
}

func newError(k Kind, message string, cause error) *Error {
	return &Error{Kind: k, Message: message, Cause: cause}
}

func newUnitError(k Kind, message, unit string, cause error) *Error {
	return &Error{Kind: k, Message: message, Unit: unit, Cause: cause}
}
