package rxp

import (
	"errors"
	"fmt"

	"github.com/coregx/rxp/flags"
	"github.com/coregx/rxp/variable"
)

// Common rxp errors
var (
	// ErrInvalidInput indicates a value of a type the normalizer does not accept
	ErrInvalidInput = errors.New("rxp: invalid input")

	// ErrInvalidVariableName indicates an empty or non-identifier variable name
	ErrInvalidVariableName = variable.ErrInvalidVariableName

	// ErrUnterminatedGroup indicates an imported named group without its
	// closing parenthesis
	ErrUnterminatedGroup = variable.ErrUnterminatedGroup

	// ErrInvalidOperationForStage indicates an operation the unit's stage
	// does not offer
	ErrInvalidOperationForStage = errors.New("rxp: operation not offered at this stage")

	// ErrInvalidFlag indicates an unknown flag token
	ErrInvalidFlag = flags.ErrInvalidFlag

	// ErrInvalidRepetition indicates a negative count or min > max
	ErrInvalidRepetition = errors.New("rxp: invalid repetition")

	// ErrUnsupportedByEngine indicates a pattern or flag the configured
	// engine cannot run
	ErrUnsupportedByEngine = errors.New("rxp: unsupported by engine")

	// ErrInvalidConfig indicates an invalid Config
	ErrInvalidConfig = errors.New("rxp: invalid config")
)

// InputError reports an argument the normalizer cannot turn into a fragment.
type InputError struct {
	Index int // argument position
	Type  string
}

// Error implements the error interface
func (e *InputError) Error() string {
	return fmt.Sprintf("rxp: invalid input at argument %d: unsupported type %s", e.Index, e.Type)
}

// Unwrap returns ErrInvalidInput
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// StageError reports an operation applied at a stage that does not offer it.
type StageError struct {
	Op    Op
	Stage Stage
}

// Error implements the error interface
func (e *StageError) Error() string {
	return fmt.Sprintf("rxp: %s is not offered at stage %s", e.Op, e.Stage)
}

// Unwrap returns ErrInvalidOperationForStage
func (e *StageError) Unwrap() error {
	return ErrInvalidOperationForStage
}

// RepetitionError reports invalid quantifier counts.
type RepetitionError struct {
	Op       Op
	Min, Max int
}

// Error implements the error interface
func (e *RepetitionError) Error() string {
	if e.Op == OpOccursBetween {
		return fmt.Sprintf("rxp: %s(%d, %d): counts must be non-negative with min <= max", e.Op, e.Min, e.Max)
	}
	return fmt.Sprintf("rxp: %s(%d): count must be non-negative", e.Op, e.Min)
}

// Unwrap returns ErrInvalidRepetition
func (e *RepetitionError) Unwrap() error {
	return ErrInvalidRepetition
}

// CompileError wraps an engine's rejection of a constructed pattern.
type CompileError struct {
	Source string
	Engine Engine
	Err    error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	return fmt.Sprintf("rxp: %s engine failed to compile %q: %v", e.Engine, e.Source, e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "rxp: invalid config: " + e.Field + ": " + e.Message
}

// Unwrap returns ErrInvalidConfig
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
