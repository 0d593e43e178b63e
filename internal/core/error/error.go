package errx

import (
	"errors"
	"fmt"
)

// Kinds of pipeline failure. Match them with errors.Is.
var (
	// ErrParse reports a price or rate that is not a valid decimal literal.
	ErrParse = errors.New("invalid decimal literal")
	// ErrMissingState reports a job or rate table absent at pipeline entry.
	ErrMissingState = errors.New("missing pipeline state")
	// ErrInvalidQuantity reports a negative headcount.
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// Error wraps an underlying cause with a failure kind and a safe message.
type Error struct {
	Kind    error
	Err     error
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether the target is the error's kind or matches the underlying error.
func (e *Error) Is(target error) bool {
	if e.Kind != nil && target == e.Kind {
		return true
	}
	return errors.Is(e.Err, target)
}

// As allows casting to Error or the wrapped error in a chain.
func (e *Error) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**Error); ok {
		*t = e
		return true
	}
	return false
}

// New creates a new Error with the provided information.
func New(kind, err error, message string) *Error {
	return &Error{
		Kind:    kind,
		Err:     err,
		Message: message,
	}
}

// Parse reports that input could not be read as a decimal literal.
func Parse(input string, err error) error {
	return New(ErrParse, err, fmt.Sprintf("cannot parse %q as a decimal", input))
}

// MissingState reports which piece of invocation state is absent.
func MissingState(what string) error {
	return New(ErrMissingState, nil, fmt.Sprintf("cannot find %s in invocation", what))
}

// InvalidQuantity reports a headcount below zero.
func InvalidQuantity(headcount int) error {
	return New(ErrInvalidQuantity, nil, fmt.Sprintf("number of people has to be non-negative, got %d", headcount))
}

// KindOf returns the failure kind carried by err, or nil when err is not an Error.
func KindOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return nil
}
