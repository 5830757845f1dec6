package assertions

import "errors"

var (
	// ErrValidation is wrapped by every construction-time error.
	ErrValidation = errors.New("invalid assertion")

	// ErrNotImplemented marks a Run on an assertion that carries no
	// evaluator. It is a programming error and surfaces as a panic.
	ErrNotImplemented = errors.New("assertion kind has no evaluator")
)

// ValidationError reports the record field that made construction fail.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	msg := "invalid assertion: " + e.Field + ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrValidation, e.Err}
	}
	return []error{ErrValidation}
}
