package variable

import (
	"errors"
	"fmt"
)

// Common variable errors
var (
	// ErrInvalidVariableName indicates an explicit variable name that is empty
	// or not an identifier
	ErrInvalidVariableName = errors.New("rxp: invalid variable name")

	// ErrUnterminatedGroup indicates a named group whose closing parenthesis
	// could not be found
	ErrUnterminatedGroup = errors.New("rxp: unterminated named group")
)

// NameError describes a rejected variable name.
type NameError struct {
	Name   string
	Reason string
}

// Error implements the error interface
func (e *NameError) Error() string {
	return fmt.Sprintf("rxp: invalid variable name %q: %s", e.Name, e.Reason)
}

// Unwrap returns ErrInvalidVariableName
func (e *NameError) Unwrap() error {
	return ErrInvalidVariableName
}

// GroupError reports a named group with no closing parenthesis.
type GroupError struct {
	Name   string
	Offset int // byte offset of the group's opening parenthesis
}

// Error implements the error interface
func (e *GroupError) Error() string {
	return fmt.Sprintf("rxp: unterminated named group %q at offset %d", e.Name, e.Offset)
}

// Unwrap returns ErrUnterminatedGroup
func (e *GroupError) Unwrap() error {
	return ErrUnterminatedGroup
}
