package core

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")
	ErrEmptyData  = errors.New("empty data")
	ErrNotFound   = errors.New("not found")
)

// ValidationError reports malformed or out-of-range input.
// errors.Is(err, ErrValidation) holds for every ValidationError.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NotFoundError reports a seller or product without any matching sale.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
