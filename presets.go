package rxp

import (
	"strconv"
	"strings"

	"github.com/coregx/rxp/fragment"
	"github.com/coregx/rxp/internal/stage"
)

// Character presets. Each is an Alternation unit matching one character
// (or, for the boundaries, one position), ready to be quantified or passed
// as an input to Init and the lookaround operations.
var (
	AnyCharacter   = preset(".")
	AnyDigit       = preset("[" + digits + "]")
	AnyLowerCase   = preset("[" + lower + "]")
	AnyUpperCase   = preset("[" + upper + "]")
	AnyLetter      = preset("[" + lower + upper + "]")
	AnySpecChar    = preset(`[.*+\-?^${}()|[\]\\]`)
	AnyHexadecimal = preset("[" + hex + "]")

	WordBoundary    = preset(`\b`)
	NonWordBoundary = preset(`\B`)
)

// Non-printing characters.
var (
	Backspace      = preset(`[\b]`)
	FormFeed       = preset(`\f`)
	LineFeed       = preset(`\n`)
	CarriageReturn = preset(`\r`)
	Tab            = preset(`\t`)
	VerticalTab    = preset(`\v`)
)

const (
	digits = "0123456789"
	lower  = "abcdefghijklmnopqrstuvwxyz"
	upper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	hex    = "abcdefABCDEF0123456789"

	// nothing is a class no character belongs to
	nothing = `[^\s\S]`
)

func preset(text string) Alternation {
	return alternationUnit{contextUnit{settingsUnit{&core{
		text:  text,
		stage: stage.Alternation,
		b:     defaultBuilder,
	}}}}
}

// AnyCharacterExcept matches any single character not in chars.
//
// Example:
//
//	rxp.AnyCharacterExcept("a", "b").Text() // [^ab]
func AnyCharacterExcept(chars ...string) Alternation {
	set := strings.Join(chars, "")
	if set == "" {
		return AnyCharacter
	}
	return preset("[^" + fragment.EscapeClass(set) + "]")
}

// AnyDigitExcept matches any digit other than the given ones.
func AnyDigitExcept(ds ...int) Alternation {
	var b strings.Builder
	for _, d := range ds {
		b.WriteString(strconv.Itoa(d))
	}
	return classExcept(digits, b.String())
}

// AnyLowerCaseExcept matches any lower case letter not in chars.
func AnyLowerCaseExcept(chars ...string) Alternation {
	return classExcept(lower, strings.Join(chars, ""))
}

// AnyUpperCaseExcept matches any upper case letter not in chars.
func AnyUpperCaseExcept(chars ...string) Alternation {
	return classExcept(upper, strings.Join(chars, ""))
}

// AnyLetterExcept matches any letter not in chars. Removal is case
// sensitive.
func AnyLetterExcept(chars ...string) Alternation {
	return classExcept(lower+upper, strings.Join(chars, ""))
}

// AnyHexadecimalExcept matches any hexadecimal digit not in chars.
func AnyHexadecimalExcept(chars ...string) Alternation {
	return classExcept(hex, strings.Join(chars, ""))
}

// UpperOrLower matches letter in either case, as a character class.
func UpperOrLower(letter string) Alternation {
	set := strings.ToLower(letter) + strings.ToUpper(letter)
	return preset("[" + fragment.EscapeClass(set) + "]")
}

// classExcept returns the class of members with every rune of remove taken
// out. Removing everything yields a class that matches nothing.
func classExcept(members, remove string) Alternation {
	kept := strings.Map(func(r rune) rune {
		if strings.ContainsRune(remove, r) {
			return -1
		}
		return r
	}, members)
	if kept == "" {
		return preset(nothing)
	}
	return preset("[" + kept + "]")
}
