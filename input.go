package rxp

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/coregx/coregex"
	"github.com/coregx/rxp/flags"
	"github.com/coregx/rxp/fragment"
	"github.com/coregx/rxp/internal/stage"
	"github.com/coregx/rxp/variable"
	"github.com/dlclark/regexp2"
)

// Native is a pattern written in regex syntax rather than literal text. It
// may be given bare ("\d+") or as a /pattern/flags literal, in which case the
// delimiters and trailing flag letters are dropped; flags are chosen at
// Construct time instead.
//
// Named groups and \k<name> backreferences in a Native pattern become
// variables, so they compose with the rest of the builder.
type Native string

// Pattern returns the pattern text without /.../flags delimiters.
func (n Native) Pattern() string {
	s := string(n)
	if len(s) < 2 || s[0] != '/' {
		return s
	}
	end := strings.LastIndexByte(s, '/')
	if end == 0 {
		return s
	}
	if _, err := flags.ParseLetters(s[end+1:]); err != nil {
		return s
	}
	return s[1:end]
}

// Builder creates units that share a configuration.
type Builder struct {
	config Config
}

var defaultBuilder = &Builder{config: DefaultConfig()}

// NewBuilder returns a Builder using config.
func NewBuilder(config Config) (*Builder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	config.Names = config.namer()
	config.Logger = config.logger()
	return &Builder{config: config}, nil
}

// Config returns the builder's configuration.
func (b *Builder) Config() Config {
	return b.config
}

// Init starts a unit from one or more inputs. Each input may be:
//
//   - a string, matched literally
//   - a Unit, used as built
//   - a Native pattern
//   - a compiled *regexp.Regexp, *regexp2.Regexp, *coregex.Regexp or *Regexp,
//     used through its source pattern like a Native
//
// Several inputs are concatenated and grouped so they act as one unit.
// An input of any other type records an *InputError on the unit.
func (b *Builder) Init(text any, extra ...any) Alternation {
	f, err := b.combine(text, extra)
	return alternationUnit{contextUnit{settingsUnit{&core{
		text:  f,
		err:   err,
		stage: stage.Alternation,
		b:     b,
	}}}}
}

// Init starts a unit using the default configuration.
// See Builder.Init for the accepted inputs.
func Init(text any, extra ...any) Alternation {
	return defaultBuilder.Init(text, extra...)
}

func (b *Builder) combine(first any, extra []any) (string, error) {
	f, err := b.normalize(0, first)
	if err != nil || len(extra) == 0 {
		return f, err
	}

	var sb strings.Builder
	sb.WriteString(f)
	for i, x := range extra {
		s, err := b.normalize(i+1, x)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return fragment.Group(sb.String()), nil
}

// normalizeEach normalizes each input into its own fragment.
func (b *Builder) normalizeEach(xs []any) ([]string, error) {
	out := make([]string, len(xs))
	for i, x := range xs {
		s, err := b.normalize(i, x)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func (b *Builder) normalize(i int, x any) (string, error) {
	switch v := x.(type) {
	case string:
		return fragment.Literal(v), nil
	case Unit:
		c := v.unwrap()
		if c == nil {
			return "", &InputError{Index: i, Type: fmt.Sprintf("%T", x)}
		}
		return c.text, c.err
	case Native:
		return importNative(v.Pattern())
	case *regexp.Regexp:
		if v != nil {
			return importNative(v.String())
		}
	case *regexp2.Regexp:
		if v != nil {
			return importNative(v.String())
		}
	case *coregex.Regexp:
		if v != nil {
			return importNative(v.String())
		}
	case *Regexp:
		if v != nil {
			return importNative(v.String())
		}
	}
	return "", &InputError{Index: i, Type: fmt.Sprintf("%T", x)}
}

func importNative(pattern string) (string, error) {
	imported, err := variable.Import(pattern)
	if err != nil {
		return "", err
	}
	return fragment.Group(imported), nil
}
