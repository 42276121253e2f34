package rxp

import "github.com/coregx/rxp/internal/stage"

// Op identifies a builder operation. It is used by Apply and reported in
// StageError.
type Op = stage.Op

// Builder operations.
const (
	OpOr               = stage.OpOr
	OpOccurs           = stage.OpOccurs
	OpOccursAtLeast    = stage.OpOccursAtLeast
	OpOccursBetween    = stage.OpOccursBetween
	OpOccursOnceOrMore = stage.OpOccursOnceOrMore
	OpOccursZeroOrMore = stage.OpOccursZeroOrMore
	OpDoesNotOccur     = stage.OpDoesNotOccur
	OpGreedy           = stage.OpGreedy
	OpFollowedBy       = stage.OpFollowedBy
	OpNotFollowedBy    = stage.OpNotFollowedBy
	OpPrecededBy       = stage.OpPrecededBy
	OpNotPrecededBy    = stage.OpNotPrecededBy
	OpAtStart          = stage.OpAtStart
	OpAtEnd            = stage.OpAtEnd
	OpIsOptional       = stage.OpIsOptional
	OpIsCaptured       = stage.OpIsCaptured
	OpIsVariable       = stage.OpIsVariable
)

// Stage is the position of a unit in the builder's state machine. Each
// stage has a matching interface in this package exposing exactly the
// operations the stage offers.
type Stage = stage.State

// Builder stages.
const (
	StageAlternation       = stage.Alternation
	StageContext           = stage.Context
	StageLazyContext       = stage.LazyContext
	StageContextNoEnd      = stage.ContextNoEnd
	StageContextNoStart    = stage.ContextNoStart
	StageContextNoAnchor   = stage.ContextNoAnchor
	StageAnchor            = stage.Anchor
	StageStartAnchor       = stage.StartAnchor
	StageEndAnchor         = stage.EndAnchor
	StageSettingsWithEnd   = stage.SettingsWithEnd
	StageSettingsWithStart = stage.SettingsWithStart
	StageSettings          = stage.Settings
	StageOptional          = stage.Optional
	StageCaptured          = stage.Captured
	StageVariable          = stage.Variable
	StageFinal             = stage.Final
)

// Unit is a built fragment together with its stage. Units are immutable;
// every operation returns a new unit. A unit that stops offering
// operations is still a complete pattern and can be constructed.
//
// Errors are sticky: once an operation fails, every unit derived from it
// carries the same error, and Construct returns it.
type Unit interface {
	// Text returns the fragment with variables still pending.
	Text() string

	// Err returns the first error recorded while building the unit.
	Err() error

	// Stage returns the unit's stage.
	Stage() Stage

	// Offered returns the operations the unit's stage offers, in Op order.
	Offered() []Op

	// Construct resolves variables and compiles the fragment with the
	// given flags using the configuration of the builder that created it.
	Construct(flags ...string) (*Regexp, error)

	// MustConstruct is like Construct but panics on error.
	MustConstruct(flags ...string) *Regexp

	// ConstructWithConfig is like Construct with an explicit configuration.
	ConstructWithConfig(config Config, flags ...string) (*Regexp, error)

	unwrap() *core
}

// Optional is a unit marked optional. It can still be captured.
type Optional interface {
	Unit
	IsCaptured() Unit
}

// Captured is a unit wrapped in a capturing group.
type Captured interface {
	Unit
	IsOptional() Unit
	IsVariable(name ...string) Variable
}

// Variable is a unit declared as a named variable.
type Variable interface {
	Unit
	IsOptional() Unit
}

// Settings offers the final settings: optional, captured, variable.
//
// IsVariable declares the unit as a variable. With no argument the name is
// drawn from the builder's Namer; more than one name is an error.
type Settings interface {
	Unit
	IsOptional() Optional
	IsCaptured() Captured
	IsVariable(name ...string) Variable
}

// SettingsWithEnd is reached by AtStart; the end anchor is still offered.
type SettingsWithEnd interface {
	Settings
	AtEnd() Settings
}

// SettingsWithStart is reached by AtEnd; the start anchor is still offered.
type SettingsWithStart interface {
	Settings
	AtStart() Settings
}

// ContextNoAnchor follows both a lookahead and a lookbehind. Neither anchor
// is offered.
type ContextNoAnchor interface {
	Settings
	FollowedBy(x any, extra ...any) ContextNoAnchor
	NotFollowedBy(x any, extra ...any) ContextNoAnchor
	PrecededBy(x any, extra ...any) ContextNoAnchor
	NotPrecededBy(x any, extra ...any) ContextNoAnchor
}

// ContextNoEnd follows a lookahead; AtEnd is no longer offered.
type ContextNoEnd interface {
	Settings
	FollowedBy(x any, extra ...any) ContextNoEnd
	NotFollowedBy(x any, extra ...any) ContextNoEnd
	PrecededBy(x any, extra ...any) ContextNoAnchor
	NotPrecededBy(x any, extra ...any) ContextNoAnchor
	AtStart() Settings
}

// ContextNoStart follows a lookbehind; AtStart is no longer offered.
type ContextNoStart interface {
	Settings
	FollowedBy(x any, extra ...any) ContextNoAnchor
	NotFollowedBy(x any, extra ...any) ContextNoAnchor
	PrecededBy(x any, extra ...any) ContextNoStart
	NotPrecededBy(x any, extra ...any) ContextNoStart
	AtEnd() Settings
}

// Context offers lookaround assertions, anchors and settings.
//
// Each lookaround takes one or more arguments, normalized like Init
// arguments; every argument becomes its own assertion.
type Context interface {
	Settings
	FollowedBy(x any, extra ...any) ContextNoEnd
	NotFollowedBy(x any, extra ...any) ContextNoEnd
	PrecededBy(x any, extra ...any) ContextNoStart
	NotPrecededBy(x any, extra ...any) ContextNoStart
	AtStart() SettingsWithEnd
	AtEnd() SettingsWithStart
}

// LazyContext follows a lazy quantifier, which Greedy turns greedy.
type LazyContext interface {
	Context
	Greedy() Context
}

// Anchor follows DoesNotOccur. Only anchors are offered.
type Anchor interface {
	Unit
	AtStart() EndAnchor
	AtEnd() StartAnchor
}

// StartAnchor is anchored at the end and still offers AtStart.
type StartAnchor interface {
	Unit
	AtStart() Unit
}

// EndAnchor is anchored at the start and still offers AtEnd.
type EndAnchor interface {
	Unit
	AtEnd() Unit
}

// Alternation is the initial stage. Or may be applied any number of times;
// every other operation leaves the stage.
type Alternation interface {
	Context
	Or(x any, extra ...any) Alternation
	Occurs(n int) Context
	OccursAtLeast(min int) Context
	OccursBetween(min, max int) Context
	OccursOnceOrMore() LazyContext
	OccursZeroOrMore() LazyContext
	DoesNotOccur() Anchor
}
