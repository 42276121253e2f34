package rxp

import "strings"

// Either matches any of the given inputs.
func Either(first, second any, extra ...any) Alternation {
	return Init(first).Or(second, extra...)
}

// OneOrMore matches the inputs one or more times, lazily.
func OneOrMore(x any, extra ...any) LazyContext {
	return Init(x, extra...).OccursOnceOrMore()
}

// ZeroOrMore matches the inputs zero or more times, lazily.
func ZeroOrMore(x any, extra ...any) LazyContext {
	return Init(x, extra...).OccursZeroOrMore()
}

// Optionally makes the inputs optional.
func Optionally(x any, extra ...any) Optional {
	return Init(x, extra...).IsOptional()
}

// NoOccurrenceOf matches one character that is not one of the inputs.
func NoOccurrenceOf(x any, extra ...any) Anchor {
	return Init(x, extra...).DoesNotOccur()
}

// UpperOrLowerCase matches letter in upper or lower case, as an alternation.
func UpperOrLowerCase(letter string) Alternation {
	return Init(strings.ToUpper(letter)).Or(strings.ToLower(letter))
}

// WrapWith returns a function that surrounds its inputs with before and
// after.
//
// Example:
//
//	quoted := rxp.WrapWith(`"`, `"`)
//	quoted("hi").Text() // (?:(?:")(?:hi)(?:"))
func WrapWith(before, after any) func(x any, extra ...any) Alternation {
	return func(x any, extra ...any) Alternation {
		args := make([]any, 0, len(extra)+2)
		args = append(args, x)
		args = append(args, extra...)
		args = append(args, after)
		return Init(before, args...)
	}
}

// WithWordBoundaries surrounds its inputs with word boundaries.
func WithWordBoundaries(x any, extra ...any) Alternation {
	return WrapWith(WordBoundary, WordBoundary)(x, extra...)
}
