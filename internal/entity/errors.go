package entity

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure leaving the tracker matches exactly one of them
// through errors.Is, except caller cancellation.
var (
	ErrInvalidReference    = errors.New("invalid tracking reference")
	ErrMalformedChallenge  = errors.New("malformed captcha challenge")
	ErrSolverExhausted     = errors.New("captcha search space exhausted")
	ErrChallengeRequired   = errors.New("captcha required but puzzle not provided")
	ErrRetryBudgetExceeded = errors.New("captcha retry budget exceeded")
	ErrUpstreamServer      = errors.New("upstream server error")
	ErrUpstreamProtocol    = errors.New("upstream protocol error")
)

var kinds = []struct {
	err  error
	code string
}{
	{ErrInvalidReference, "INVALID_REFERENCE"},
	{ErrMalformedChallenge, "MALFORMED_CHALLENGE"},
	{ErrSolverExhausted, "SOLVER_EXHAUSTED"},
	{ErrChallengeRequired, "CHALLENGE_REQUIRED"},
	{ErrRetryBudgetExceeded, "RETRY_BUDGET_EXCEEDED"},
	{ErrUpstreamServer, "UPSTREAM_SERVER_ERROR"},
	{ErrUpstreamProtocol, "UPSTREAM_PROTOCOL_ERROR"},
}

// CodeInternal is the code of errors outside the taxonomy.
const CodeInternal = "INTERNAL_ERROR"

// TrackingError carries the kind, the operation that failed and the
// underlying cause, if any.
type TrackingError struct {
	Op   string // Operation that failed
	Kind error  // One of the Err* kinds
	Err  error  // Original error, may be nil
	Info string // Additional context
}

func (e *TrackingError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Op, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Info != "" {
		msg += " (" + e.Info + ")"
	}
	return msg
}

func (e *TrackingError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func NewError(op string, kind, err error, info string) error {
	return &TrackingError{Op: op, Kind: kind, Err: err, Info: info}
}

// KindOf returns the error kind of err, or nil when err is not a tracking
// failure.
func KindOf(err error) error {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.err
		}
	}
	return nil
}

// CodeOf returns a stable machine-readable code for err's kind.
func CodeOf(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.code
		}
	}
	return CodeInternal
}
