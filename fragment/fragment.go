// Package fragment implements the string transformations behind every
// builder operation.
//
// A fragment is a self-contained regular expression sub-pattern. All
// functions here are pure: they take fragments that are already normalized
// (escaped and grouped) and return a new fragment, wrapped in a non-capturing
// group so it composes with its neighbours without precedence surprises.
// Only IsCaptured uses a capturing group.
//
// Example:
//
//	base := fragment.Literal("Hi")              // (?:Hi)
//	fragment.Or(base, fragment.Literal("Bye"))  // (?:(?:Hi)|(?:Bye))
//	fragment.OccursOnceOrMore(base)             // (?:(?:Hi)+?)
package fragment

import (
	"strconv"
	"strings"
)

// Group wraps f in a non-capturing group.
func Group(f string) string {
	return "(?:" + f + ")"
}

// Literal escapes raw text and groups it.
func Literal(text string) string {
	return Group(Escape(text))
}

// Or matches base or any of alts.
func Or(base string, alts ...string) string {
	parts := make([]string, 0, len(alts)+1)
	parts = append(parts, base)
	parts = append(parts, alts...)
	return Group(strings.Join(parts, "|"))
}

// Occurs matches base exactly n times.
func Occurs(base string, n int) string {
	return Group(base + "{" + strconv.Itoa(n) + "}")
}

// OccursAtLeast matches base min or more times.
func OccursAtLeast(base string, min int) string {
	return Group(base + "{" + strconv.Itoa(min) + ",}")
}

// OccursBetween matches base between min and max times, inclusive.
func OccursBetween(base string, min, max int) string {
	return Group(base + "{" + strconv.Itoa(min) + "," + strconv.Itoa(max) + "}")
}

// OccursOnceOrMore matches base one or more times, lazily.
func OccursOnceOrMore(base string) string {
	return Group(base + "+?")
}

// OccursZeroOrMore matches base zero or more times, lazily.
func OccursZeroOrMore(base string) string {
	return Group(base + "*?")
}

// Greedy turns the trailing lazy quantifier of f into a greedy one.
// It only looks at the end of f: an f that does not end in "?)" is returned
// unchanged, and earlier '?' characters are never touched.
func Greedy(f string) string {
	if strings.HasSuffix(f, "?)") {
		return f[:len(f)-2] + ")"
	}
	return f
}

// DoesNotOccur matches one character not in base.
func DoesNotOccur(base string) string {
	return Group("[^" + base + "]")
}

// FollowedBy matches base when every one of following comes next.
func FollowedBy(base string, following ...string) string {
	return Group(base + lookaround("(?=", following))
}

// NotFollowedBy matches base when none of following comes next.
func NotFollowedBy(base string, following ...string) string {
	return Group(base + lookaround("(?!", following))
}

// PrecededBy matches base when every one of preceding comes right before it.
func PrecededBy(base string, preceding ...string) string {
	return Group(lookaround("(?<=", preceding) + base)
}

// NotPrecededBy matches base when none of preceding comes right before it.
func NotPrecededBy(base string, preceding ...string) string {
	return Group(lookaround("(?<!", preceding) + base)
}

// AtStart anchors base to the start of input (or line, with the m flag).
func AtStart(base string) string {
	return Group("^" + base)
}

// AtEnd anchors base to the end of input (or line, with the m flag).
func AtEnd(base string) string {
	return Group(base + "$")
}

// IsOptional makes base optional.
func IsOptional(base string) string {
	return Group(base + "?")
}

// IsCaptured wraps base in a capturing group.
func IsCaptured(base string) string {
	return "(" + base + ")"
}

func lookaround(open string, xs []string) string {
	var b strings.Builder
	for _, x := range xs {
		b.WriteString(open)
		b.WriteString(x)
		b.WriteByte(')')
	}
	return b.String()
}
