package rxp

import (
	"github.com/coregx/rxp/flags"
	"github.com/coregx/rxp/variable"
)

// Construct resolves the unit's variables and compiles it with the given
// flags. Flags are letters ("g", "i", "m", "s", "u", "y"), their long names
// ("global", "ignoreCase", "multiline", "dotAll", "unicode", "sticky"), or
// "" and "default", which add nothing. Repeated flags are allowed.
//
// The first error recorded while building the unit is returned unchanged.
// An unknown flag returns a *flags.Error wrapping ErrInvalidFlag, and an
// engine that rejects the pattern returns a *CompileError.
//
// Example:
//
//	v := rxp.Init("sample").IsVariable("v")
//	re, err := rxp.Init(v, " and ", v).Construct("i")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.String() // (?:(?<v>(?:sample))(?: and )(\k<v>))
func (c *core) Construct(tokens ...string) (*Regexp, error) {
	return c.construct(c.b.config, tokens)
}

// ConstructWithConfig is like Construct but compiles with config instead of
// the builder's configuration.
func (c *core) ConstructWithConfig(config Config, tokens ...string) (*Regexp, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return c.construct(config, tokens)
}

// MustConstruct is like Construct but panics if the unit carries an error or
// the pattern cannot be compiled.
func (c *core) MustConstruct(tokens ...string) *Regexp {
	re, err := c.Construct(tokens...)
	if err != nil {
		panic("rxp: Construct(`" + c.text + "`): " + err.Error())
	}
	return re
}

func (c *core) construct(config Config, tokens []string) (*Regexp, error) {
	if c.err != nil {
		return nil, c.err
	}

	set, err := flags.Parse(tokens...)
	if err != nil {
		return nil, err
	}

	source := variable.Resolve(c.text)
	re, err := compile(source, set, config)
	if err != nil {
		return nil, err
	}

	if e := config.logger().Debug(); e.Enabled() {
		e.Str("source", source).
			Stringer("flags", set).
			Stringer("engine", re.engine).
			Int("variables", len(variable.Find(c.text))).
			Msg("constructed pattern")
	}
	return re, nil
}
