// Package flags parses regex flag vocabularies.
//
// Flags may be given as single letters ("g", "i", "m", "s", "u", "y") or as
// their long names ("global", "ignoreCase", "multiline", "dotAll", "unicode",
// "sticky"). "" and "default" contribute nothing.
package flags

import (
	"errors"
	"fmt"
	"strings"
)

// Set is a set of regex flags.
type Set uint8

// Flag values
const (
	Global Set = 1 << iota
	IgnoreCase
	Multiline
	DotAll
	Unicode
	Sticky

	None Set = 0
)

// ErrInvalidFlag indicates a flag token outside the vocabulary.
var ErrInvalidFlag = errors.New("rxp: invalid flag")

// Error describes a rejected flag token.
type Error struct {
	Flag  string
	Valid []string
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("rxp: invalid flag %q, valid flags are %s", e.Flag, strings.Join(e.Valid, ", "))
}

// Unwrap returns ErrInvalidFlag
func (e *Error) Unwrap() error {
	return ErrInvalidFlag
}

// canonical letter order
var order = [...]struct {
	flag   Set
	letter byte
	long   string
}{
	{Global, 'g', "global"},
	{IgnoreCase, 'i', "ignoreCase"},
	{Multiline, 'm', "multiline"},
	{DotAll, 's', "dotAll"},
	{Unicode, 'u', "unicode"},
	{Sticky, 'y', "sticky"},
}

var vocabulary = func() map[string]Set {
	m := map[string]Set{"": None, "default": None}
	for _, o := range order {
		m[string(o.letter)] = o.flag
		m[o.long] = o.flag
	}
	return m
}()

// Valid returns every accepted flag token.
func Valid() []string {
	out := []string{"", "default"}
	for _, o := range order {
		out = append(out, string(o.letter), o.long)
	}
	return out
}

// Parse combines flag tokens into a Set. Repeated flags are allowed.
func Parse(tokens ...string) (Set, error) {
	var s Set
	for _, tok := range tokens {
		f, ok := vocabulary[tok]
		if !ok {
			return None, &Error{Flag: tok, Valid: Valid()}
		}
		s |= f
	}
	return s, nil
}

// ParseLetters parses a compact flag string such as "gim", as found after
// the closing slash of a /source/flags literal.
func ParseLetters(letters string) (Set, error) {
	var s Set
	for i := 0; i < len(letters); i++ {
		f, err := Parse(letters[i : i+1])
		if err != nil {
			return None, err
		}
		s |= f
	}
	return s, nil
}

// Has reports whether every flag in f is set in s.
func (s Set) Has(f Set) bool {
	return s&f == f
}

// Without returns s with the flags in f cleared.
func (s Set) Without(f Set) Set {
	return s &^ f
}

// String returns the flag letters of s in the order "gimsuy".
func (s Set) String() string {
	var b strings.Builder
	for _, o := range order {
		if s&o.flag != 0 {
			b.WriteByte(o.letter)
		}
	}
	return b.String()
}
