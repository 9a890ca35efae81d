package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks an input outside its allowed domain.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDegenerateComputation marks a metric that is undefined for the
	// given input (zero denominator or non-finite value).
	ErrDegenerateComputation = errors.New("degenerate computation")
)

type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

type DegenerateError struct {
	Metric string
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("%s is not applicable for this input", e.Metric)
}

func (e *DegenerateError) Unwrap() error { return ErrDegenerateComputation }

func invalid(field, reason string) error {
	return &InputError{Field: field, Reason: reason}
}
