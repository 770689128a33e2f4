package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidObservation matches any *InvalidObservation via errors.Is.
var ErrInvalidObservation = errors.New("invalid observation")

// InvalidObservation reports a value outside its declared domain. It is a
// caller-side defect: the request should be rejected, not retried.
type InvalidObservation struct {
	Field  string
	Reason string
}

func (e *InvalidObservation) Error() string {
	return fmt.Sprintf("invalid observation: %s: %s", e.Field, e.Reason)
}

func (e *InvalidObservation) Is(target error) bool {
	return target == ErrInvalidObservation
}

func invalid(field, format string, args ...any) *InvalidObservation {
	return &InvalidObservation{Field: field, Reason: fmt.Sprintf(format, args...)}
}
