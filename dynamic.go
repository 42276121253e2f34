package rxp

import (
	"fmt"

	"github.com/coregx/rxp/fragment"
)

// ArgumentError reports arguments to Apply that do not fit the operation.
type ArgumentError struct {
	Op      Op
	Message string
}

// Error implements the error interface
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("rxp: %s: %s", e.Op, e.Message)
}

// Unwrap returns ErrInvalidInput
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidInput
}

// Apply runs op on u, checking at run time that u's stage offers it. It is
// the untyped counterpart of the stage interfaces, for callers that pick
// operations from data.
//
// Arguments follow the typed methods: Or and the lookaround ops take one or
// more inputs, Occurs and OccursAtLeast one int, OccursBetween two ints,
// IsVariable an optional name string; the rest take none.
//
// An op the stage does not offer yields a unit in StageFinal carrying a
// *StageError. The returned error is the returned unit's Err.
//
// Example:
//
//	u, err := rxp.Apply(rxp.Init("a"), rxp.OpOccurs, 3)
//	// u.Text() == "(?:(?:a){3})", err == nil
//	_, err = rxp.Apply(u, rxp.OpGreedy)
//	// errors.Is(err, rxp.ErrInvalidOperationForStage)
func Apply(u Unit, op Op, args ...any) (Unit, error) {
	if u == nil || u.unwrap() == nil {
		return nil, &InputError{Index: 0, Type: "nil"}
	}
	next := u.unwrap().dispatch(op, args)
	return wrap(next), next.err
}

func (c *core) dispatch(op Op, args []any) *core {
	switch op {
	case OpOr:
		return c.dynamicArgs(op, args, fragment.Or)
	case OpFollowedBy:
		return c.dynamicArgs(op, args, fragment.FollowedBy)
	case OpNotFollowedBy:
		return c.dynamicArgs(op, args, fragment.NotFollowedBy)
	case OpPrecededBy:
		return c.dynamicArgs(op, args, fragment.PrecededBy)
	case OpNotPrecededBy:
		return c.dynamicArgs(op, args, fragment.NotPrecededBy)

	case OpOccurs, OpOccursAtLeast:
		n, ok := intArgs(args, 1)
		if !ok {
			return c.fail(op, "want one int argument")
		}
		max := n[0]
		if op == OpOccursAtLeast {
			max = -1
		}
		return c.repeat(op, n[0], max)
	case OpOccursBetween:
		n, ok := intArgs(args, 2)
		if !ok {
			return c.fail(op, "want two int arguments")
		}
		return c.repeat(op, n[0], n[1])

	case OpIsVariable:
		names := make([]string, 0, len(args))
		for _, a := range args {
			s, ok := a.(string)
			if !ok {
				return c.fail(op, fmt.Sprintf("variable name must be a string, got %T", a))
			}
			names = append(names, s)
		}
		return c.declare(names)
	}

	if len(args) != 0 {
		return c.fail(op, "takes no arguments")
	}
	switch op {
	case OpOccursOnceOrMore:
		return c.unary(op, fragment.OccursOnceOrMore)
	case OpOccursZeroOrMore:
		return c.unary(op, fragment.OccursZeroOrMore)
	case OpDoesNotOccur:
		return c.unary(op, fragment.DoesNotOccur)
	case OpGreedy:
		return c.unary(op, fragment.Greedy)
	case OpAtStart:
		return c.unary(op, fragment.AtStart)
	case OpAtEnd:
		return c.unary(op, fragment.AtEnd)
	case OpIsOptional:
		return c.unary(op, fragment.IsOptional)
	case OpIsCaptured:
		return c.unary(op, fragment.IsCaptured)
	}
	return c.fail(op, "unknown operation")
}

func (c *core) dynamicArgs(op Op, args []any, f func(string, ...string) string) *core {
	if len(args) == 0 {
		return c.fail(op, "want at least one argument")
	}
	return c.withArgs(op, args[0], args[1:], f)
}

// fail records an argument error, keeping the stage op would have reached.
func (c *core) fail(op Op, msg string) *core {
	return c.apply(op, func(string) (string, error) {
		return "", &ArgumentError{Op: op, Message: msg}
	})
}

func intArgs(args []any, n int) ([]int, bool) {
	if len(args) != n {
		return nil, false
	}
	out := make([]int, n)
	for i, a := range args {
		v, ok := a.(int)
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}
