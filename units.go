package rxp

import (
	"strings"

	"github.com/coregx/rxp/fragment"
	"github.com/coregx/rxp/internal/stage"
	"github.com/coregx/rxp/variable"
)

// core is the state shared by every unit type.
type core struct {
	text  string
	err   error
	stage Stage
	b     *Builder
}

func (c *core) Text() string   { return c.text }
func (c *core) String() string { return c.text }
func (c *core) Err() error     { return c.err }
func (c *core) Stage() Stage   { return c.stage }
func (c *core) unwrap() *core  { return c }

// Offered returns the operations the unit's stage offers.
func (c *core) Offered() []Op {
	return stage.Ops(c.stage)
}

// apply runs op against the stage table and builds the next core. f receives
// the current fragment and returns the transformed one; it is not called
// once the chain carries an error.
func (c *core) apply(op Op, f func(text string) (string, error)) *core {
	next, ok := stage.Next(c.stage, op)
	switch {
	case c.err != nil:
		if !ok {
			next = stage.Final
		}
		return &core{text: c.text, err: c.err, stage: next, b: c.b}
	case !ok:
		return &core{text: c.text, err: &StageError{Op: op, Stage: c.stage}, stage: stage.Final, b: c.b}
	}

	text, err := f(c.text)
	if err != nil {
		return &core{text: c.text, err: err, stage: next, b: c.b}
	}
	return &core{text: text, stage: next, b: c.b}
}

func (c *core) unary(op Op, f func(string) string) *core {
	return c.apply(op, func(text string) (string, error) {
		return f(text), nil
	})
}

// withArgs normalizes x and extra as separate fragments and hands them to f.
func (c *core) withArgs(op Op, x any, extra []any, f func(base string, args ...string) string) *core {
	return c.apply(op, func(text string) (string, error) {
		args, err := c.b.normalizeEach(append([]any{x}, extra...))
		if err != nil {
			return "", err
		}
		return f(text, args...), nil
	})
}

func (c *core) repeat(op Op, min, max int) *core {
	return c.apply(op, func(text string) (string, error) {
		if min < 0 || (op == OpOccursBetween && (max < 0 || min > max)) {
			return "", &RepetitionError{Op: op, Min: min, Max: max}
		}
		switch op {
		case OpOccurs:
			return fragment.Occurs(text, min), nil
		case OpOccursAtLeast:
			return fragment.OccursAtLeast(text, min), nil
		default:
			return fragment.OccursBetween(text, min, max), nil
		}
	})
}

func (c *core) declare(names []string) *core {
	return c.apply(OpIsVariable, func(text string) (string, error) {
		switch len(names) {
		case 0:
			return variable.DeclareAuto(text, c.b.config.namer()), nil
		case 1:
			return variable.Declare(text, names[0])
		default:
			return "", &variable.NameError{
				Name:   strings.Join(names, ", "),
				Reason: "at most one name may be given",
			}
		}
	})
}

var (
	_ Alternation       = alternationUnit{}
	_ Context           = contextUnit{}
	_ LazyContext       = lazyContextUnit{}
	_ ContextNoEnd      = contextNoEndUnit{}
	_ ContextNoStart    = contextNoStartUnit{}
	_ ContextNoAnchor   = contextNoAnchorUnit{}
	_ Anchor            = anchorUnit{}
	_ StartAnchor       = startAnchorUnit{}
	_ EndAnchor         = endAnchorUnit{}
	_ SettingsWithEnd   = settingsWithEndUnit{}
	_ SettingsWithStart = settingsWithStartUnit{}
	_ Settings          = settingsUnit{}
	_ Optional          = optionalUnit{}
	_ Captured          = capturedUnit{}
	_ Variable          = variableUnit{}
	_ Unit              = finalUnit{}
)

// wrap returns the unit type matching c's stage.
func wrap(c *core) Unit {
	switch c.stage {
	case stage.Alternation:
		return alternationUnit{contextUnit{settingsUnit{c}}}
	case stage.Context:
		return contextUnit{settingsUnit{c}}
	case stage.LazyContext:
		return lazyContextUnit{contextUnit{settingsUnit{c}}}
	case stage.ContextNoEnd:
		return contextNoEndUnit{settingsUnit{c}}
	case stage.ContextNoStart:
		return contextNoStartUnit{settingsUnit{c}}
	case stage.ContextNoAnchor:
		return contextNoAnchorUnit{settingsUnit{c}}
	case stage.Anchor:
		return anchorUnit{c}
	case stage.StartAnchor:
		return startAnchorUnit{c}
	case stage.EndAnchor:
		return endAnchorUnit{c}
	case stage.SettingsWithEnd:
		return settingsWithEndUnit{settingsUnit{c}}
	case stage.SettingsWithStart:
		return settingsWithStartUnit{settingsUnit{c}}
	case stage.Settings:
		return settingsUnit{c}
	case stage.Optional:
		return optionalUnit{c}
	case stage.Captured:
		return capturedUnit{c}
	case stage.Variable:
		return variableUnit{c}
	default:
		return finalUnit{c}
	}
}

type finalUnit struct{ *core }

type optionalUnit struct{ *core }

func (u optionalUnit) IsCaptured() Unit {
	return finalUnit{u.unary(OpIsCaptured, fragment.IsCaptured)}
}

type capturedUnit struct{ *core }

func (u capturedUnit) IsOptional() Unit {
	return finalUnit{u.unary(OpIsOptional, fragment.IsOptional)}
}

func (u capturedUnit) IsVariable(name ...string) Variable {
	return variableUnit{u.declare(name)}
}

type variableUnit struct{ *core }

func (u variableUnit) IsOptional() Unit {
	return finalUnit{u.unary(OpIsOptional, fragment.IsOptional)}
}

type settingsUnit struct{ *core }

func (u settingsUnit) IsOptional() Optional {
	return optionalUnit{u.unary(OpIsOptional, fragment.IsOptional)}
}

func (u settingsUnit) IsCaptured() Captured {
	return capturedUnit{u.unary(OpIsCaptured, fragment.IsCaptured)}
}

func (u settingsUnit) IsVariable(name ...string) Variable {
	return variableUnit{u.declare(name)}
}

type settingsWithEndUnit struct{ settingsUnit }

func (u settingsWithEndUnit) AtEnd() Settings {
	return settingsUnit{u.unary(OpAtEnd, fragment.AtEnd)}
}

type settingsWithStartUnit struct{ settingsUnit }

func (u settingsWithStartUnit) AtStart() Settings {
	return settingsUnit{u.unary(OpAtStart, fragment.AtStart)}
}

type contextNoAnchorUnit struct{ settingsUnit }

func (u contextNoAnchorUnit) FollowedBy(x any, extra ...any) ContextNoAnchor {
	return contextNoAnchorUnit{settingsUnit{u.withArgs(OpFollowedBy, x, extra, fragment.FollowedBy)}}
}

func (u contextNoAnchorUnit) NotFollowedBy(x any, extra ...any) ContextNoAnchor {
	return contextNoAnchorUnit{settingsUnit{u.withArgs(OpNotFollowedBy, x, extra, fragment.NotFollowedBy)}}
}

func (u contextNoAnchorUnit) PrecededBy(x any, extra ...any) ContextNoAnchor {
	return contextNoAnchorUnit{settingsUnit{u.withArgs(OpPrecededBy, x, extra, fragment.PrecededBy)}}
}

func (u contextNoAnchorUnit) NotPrecededBy(x any, extra ...any) ContextNoAnchor {
	return contextNoAnchorUnit{settingsUnit{u.withArgs(OpNotPrecededBy, x, extra, fragment.NotPrecededBy)}}
}

type contextNoEndUnit struct{ settingsUnit }

func (u contextNoEndUnit) FollowedBy(x any, extra ...any) ContextNoEnd {
	return contextNoEndUnit{settingsUnit{u.withArgs(OpFollowedBy, x, extra, fragment.FollowedBy)}}
}

func (u contextNoEndUnit) NotFollowedBy(x any, extra ...any) ContextNoEnd {
	return contextNoEndUnit{settingsUnit{u.withArgs(OpNotFollowedBy, x, extra, fragment.NotFollowedBy)}}
}

func (u contextNoEndUnit) PrecededBy(x any, extra ...any) ContextNoAnchor {
	return contextNoAnchorUnit{settingsUnit{u.withArgs(OpPrecededBy, x, extra, fragment.PrecededBy)}}
}

func (u contextNoEndUnit) NotPrecededBy(x any, extra ...any) ContextNoAnchor {
	return contextNoAnchorUnit{settingsUnit{u.withArgs(OpNotPrecededBy, x, extra, fragment.NotPrecededBy)}}
}

func (u contextNoEndUnit) AtStart() Settings {
	return settingsUnit{u.unary(OpAtStart, fragment.AtStart)}
}

type contextNoStartUnit struct{ settingsUnit }

func (u contextNoStartUnit) FollowedBy(x any, extra ...any) ContextNoAnchor {
	return contextNoAnchorUnit{settingsUnit{u.withArgs(OpFollowedBy, x, extra, fragment.FollowedBy)}}
}

func (u contextNoStartUnit) NotFollowedBy(x any, extra ...any) ContextNoAnchor {
	return contextNoAnchorUnit{settingsUnit{u.withArgs(OpNotFollowedBy, x, extra, fragment.NotFollowedBy)}}
}

func (u contextNoStartUnit) PrecededBy(x any, extra ...any) ContextNoStart {
	return contextNoStartUnit{settingsUnit{u.withArgs(OpPrecededBy, x, extra, fragment.PrecededBy)}}
}

func (u contextNoStartUnit) NotPrecededBy(x any, extra ...any) ContextNoStart {
	return contextNoStartUnit{settingsUnit{u.withArgs(OpNotPrecededBy, x, extra, fragment.NotPrecededBy)}}
}

func (u contextNoStartUnit) AtEnd() Settings {
	return settingsUnit{u.unary(OpAtEnd, fragment.AtEnd)}
}

type contextUnit struct{ settingsUnit }

func (u contextUnit) FollowedBy(x any, extra ...any) ContextNoEnd {
	return contextNoEndUnit{settingsUnit{u.withArgs(OpFollowedBy, x, extra, fragment.FollowedBy)}}
}

func (u contextUnit) NotFollowedBy(x any, extra ...any) ContextNoEnd {
	return contextNoEndUnit{settingsUnit{u.withArgs(OpNotFollowedBy, x, extra, fragment.NotFollowedBy)}}
}

func (u contextUnit) PrecededBy(x any, extra ...any) ContextNoStart {
	return contextNoStartUnit{settingsUnit{u.withArgs(OpPrecededBy, x, extra, fragment.PrecededBy)}}
}

func (u contextUnit) NotPrecededBy(x any, extra ...any) ContextNoStart {
	return contextNoStartUnit{settingsUnit{u.withArgs(OpNotPrecededBy, x, extra, fragment.NotPrecededBy)}}
}

func (u contextUnit) AtStart() SettingsWithEnd {
	return settingsWithEndUnit{settingsUnit{u.unary(OpAtStart, fragment.AtStart)}}
}

func (u contextUnit) AtEnd() SettingsWithStart {
	return settingsWithStartUnit{settingsUnit{u.unary(OpAtEnd, fragment.AtEnd)}}
}

type lazyContextUnit struct{ contextUnit }

func (u lazyContextUnit) Greedy() Context {
	return contextUnit{settingsUnit{u.unary(OpGreedy, fragment.Greedy)}}
}

type anchorUnit struct{ *core }

func (u anchorUnit) AtStart() EndAnchor {
	return endAnchorUnit{u.unary(OpAtStart, fragment.AtStart)}
}

func (u anchorUnit) AtEnd() StartAnchor {
	return startAnchorUnit{u.unary(OpAtEnd, fragment.AtEnd)}
}

type startAnchorUnit struct{ *core }

func (u startAnchorUnit) AtStart() Unit {
	return finalUnit{u.unary(OpAtStart, fragment.AtStart)}
}

type endAnchorUnit struct{ *core }

func (u endAnchorUnit) AtEnd() Unit {
	return finalUnit{u.unary(OpAtEnd, fragment.AtEnd)}
}

type alternationUnit struct{ contextUnit }

func (u alternationUnit) Or(x any, extra ...any) Alternation {
	return alternationUnit{contextUnit{settingsUnit{u.withArgs(OpOr, x, extra, fragment.Or)}}}
}

func (u alternationUnit) Occurs(n int) Context {
	return contextUnit{settingsUnit{u.repeat(OpOccurs, n, n)}}
}

func (u alternationUnit) OccursAtLeast(min int) Context {
	return contextUnit{settingsUnit{u.repeat(OpOccursAtLeast, min, -1)}}
}

func (u alternationUnit) OccursBetween(min, max int) Context {
	return contextUnit{settingsUnit{u.repeat(OpOccursBetween, min, max)}}
}

func (u alternationUnit) OccursOnceOrMore() LazyContext {
	return lazyContextUnit{contextUnit{settingsUnit{u.unary(OpOccursOnceOrMore, fragment.OccursOnceOrMore)}}}
}

func (u alternationUnit) OccursZeroOrMore() LazyContext {
	return lazyContextUnit{contextUnit{settingsUnit{u.unary(OpOccursZeroOrMore, fragment.OccursZeroOrMore)}}}
}

func (u alternationUnit) DoesNotOccur() Anchor {
	return anchorUnit{u.unary(OpDoesNotOccur, fragment.DoesNotOccur)}
}
