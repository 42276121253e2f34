package rxp

import (
	"time"

	"github.com/coregx/rxp/variable"
	"github.com/rs/zerolog"
)

// Engine selects the regex engine a constructed pattern runs on.
type Engine uint8

const (
	// EngineBacktrack compiles with regexp2, a backtracking engine that
	// supports lookaround, named groups and backreferences. It accepts every
	// pattern the builder can produce.
	EngineBacktrack Engine = iota

	// EngineLinear compiles with coregex, a linear-time RE2 engine. Patterns
	// with lookaround or backreferences, and flags other than "g", are
	// rejected with ErrUnsupportedByEngine.
	EngineLinear

	// EngineAuto tries EngineLinear and falls back to EngineBacktrack.
	EngineAuto
)

// String returns the engine name.
func (e Engine) String() string {
	switch e {
	case EngineBacktrack:
		return "backtrack"
	case EngineLinear:
		return "linear"
	case EngineAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config controls how a Builder names variables and how units are
// constructed into patterns.
//
// Example:
//
//	config := rxp.DefaultConfig()
//	config.Engine = rxp.EngineAuto
//	config.MatchTimeout = 100 * time.Millisecond
//	b, err := rxp.NewBuilder(config)
type Config struct {
	// Engine selects the engine used by Construct.
	// Default: EngineBacktrack
	Engine Engine

	// MatchTimeout bounds a single match on the backtracking engine.
	// A match that runs out of time is logged and reported as no match.
	// Zero means no limit.
	// Default: 0
	MatchTimeout time.Duration

	// Names produces names for variables declared without one.
	// Default: variable.Default
	Names variable.Namer

	// Logger receives construction and matching diagnostics.
	// Default: a disabled logger
	Logger *zerolog.Logger
}

var nopLogger = zerolog.Nop()

// DefaultConfig returns a configuration with default values.
func DefaultConfig() Config {
	return Config{
		Engine: EngineBacktrack,
		Names:  variable.Default,
		Logger: &nopLogger,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
func (c Config) Validate() error {
	if c.Engine > EngineAuto {
		return &ConfigError{
			Field:   "Engine",
			Message: "must be EngineBacktrack, EngineLinear or EngineAuto",
		}
	}
	if c.MatchTimeout < 0 {
		return &ConfigError{
			Field:   "MatchTimeout",
			Message: "must not be negative",
		}
	}
	return nil
}

func (c Config) logger() *zerolog.Logger {
	if c.Logger == nil {
		return &nopLogger
	}
	return c.Logger
}

func (c Config) namer() variable.Namer {
	if c.Names == nil {
		return variable.Default
	}
	return c.Names
}
