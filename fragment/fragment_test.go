package fragment

import (
	"regexp"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"hello", "hello"},
		{"hello ^|*", `hello \^\|\*`},
		{"a-b", `a\-b`},
		{`.*+-?^${}()|[]\`, `\.\*\+\-\?\^\$\{\}\(\)\|\[\]\\`},
		{"日本.語", `日本\.語`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Escape(tt.in); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestEscapeMatchesLiteral compiles escaped strings made only of
// metacharacters and checks they match themselves.
func TestEscapeMatchesLiteral(t *testing.T) {
	inputs := []string{
		Special,
		"$^",
		"((",
		"]]",
		`\\`,
		"{1,2}",
		"a|b",
		"[^x]",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			re, err := regexp.Compile("^" + Literal(in) + "$")
			if err != nil {
				t.Fatalf("compile escaped %q: %v", in, err)
			}
			if !re.MatchString(in) {
				t.Errorf("escaped %q does not match itself", in)
			}
		})
	}
}

func TestEscapeClass(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"abc", "abc"},
		{"a-z", `a\-z`},
		{"]^", `\]\^`},
		{`\`, `\\`},
	}
	for _, tt := range tests {
		if got := EscapeClass(tt.in); got != tt.want {
			t.Errorf("EscapeClass(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTransformations(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"or", Or("(?:Hi)", Literal("Bye")), "(?:(?:Hi)|(?:Bye))"},
		{"or many", Or("(?:a)", "(?:b)", "(?:c)"), "(?:(?:a)|(?:b)|(?:c))"},
		{"optional", IsOptional("(?:hello)"), "(?:(?:hello)?)"},
		{"captured", IsCaptured("(?:capture)"), "((?:capture))"},
		{"at start", AtStart("(?:hello)"), "(?:^(?:hello))"},
		{"at end", AtEnd("(?:goodbye)"), "(?:(?:goodbye)$)"},
		{"once or more", OccursOnceOrMore("(?:789)"), "(?:(?:789)+?)"},
		{"zero or more", OccursZeroOrMore("(?:345)"), "(?:(?:345)*?)"},
		{"exact", Occurs("(?:dogs)", 3), "(?:(?:dogs){3})"},
		{"at least", OccursAtLeast("(?:cats)", 5), "(?:(?:cats){5,})"},
		{"between", OccursBetween("(?:iguana)", 2, 5), "(?:(?:iguana){2,5})"},
		{"does not occur", DoesNotOccur("(?:nothing here)"), "(?:[^(?:nothing here)])"},
		{"followed by", FollowedBy("(?:hello)", "(?:goodbye)"), "(?:(?:hello)(?=(?:goodbye)))"},
		{"followed by many", FollowedBy("(?:a)", "(?:b)", "(?:c)"), "(?:(?:a)(?=(?:b))(?=(?:c)))"},
		{"not followed by", NotFollowedBy("(?:hello)", "(?:goodbye)"), "(?:(?:hello)(?!(?:goodbye)))"},
		{"preceded by", PrecededBy("(?:goodbye)", "(?:hello)"), "(?:(?<=(?:hello))(?:goodbye))"},
		{"not preceded by", NotPrecededBy("(?:goodbye)", "(?:hello)"), "(?:(?<!(?:hello))(?:goodbye))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestGreedy(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"(?:(?:sample)+?)", "(?:(?:sample)+)"},
		{"(?:(?:sample)*?)", "(?:(?:sample)*)"},
		// only the trailing quantifier changes
		{"(?)+?)", "(?)+)"},
		{"(?:(?:a)?(?:b)+?)", "(?:(?:a)?(?:b)+)"},
		// nothing to strip
		{"(?:(?:sample){3})", "(?:(?:sample){3})"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Greedy(tt.in); got != tt.want {
				t.Errorf("Greedy(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPure(t *testing.T) {
	base := Literal("x")
	a := OccursOnceOrMore(base)
	b := OccursOnceOrMore(base)
	if a != b {
		t.Errorf("same input produced %q and %q", a, b)
	}
	if base != "(?:x)" {
		t.Errorf("input fragment changed to %q", base)
	}
}
