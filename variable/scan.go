package variable

import (
	"strings"

	"github.com/coregx/coregex"
)

// opening matches the start of a named group; submatch 1 is the name.
// Both (?<name> and the Go/Python spelling (?P<name> are recognised.
var opening = coregex.MustCompile(`\(\?P?<([A-Za-z_][A-Za-z0-9_]*)>`)

// group is a named group located in a pattern. All offsets are byte
// offsets into the scanned string.
type group struct {
	name      string
	start     int // '(' of the opening
	bodyStart int // first byte after '>'
	end       int // matching ')'
}

func (g group) text(s string) string { return s[g.start : g.end+1] }
func (g group) body(s string) string { return s[g.bodyStart:g.end] }

// refStart returns the offset of a trailing \k<name> that closes the body,
// or -1 when the body does not end with a reference to the group's own name.
func (g group) refStart(s string) int {
	ref := backref(g.name)
	if !strings.HasSuffix(g.body(s), ref) {
		return -1
	}
	at := g.end - len(ref)
	if escaped(s, at) {
		return -1
	}
	return at
}

// scan returns every terminated named group of s in order of their opening
// parenthesis. The first unterminated group, if any, is reported as a
// *GroupError; scanning continues past it.
func scan(s string) ([]group, error) {
	var (
		groups []group
		first  error
	)
	classes := classSpans(s)
	for _, loc := range opening.FindAllStringSubmatchIndex(s, -1) {
		if escaped(s, loc[0]) || inSpan(classes, loc[0]) {
			continue
		}
		name := s[loc[2]:loc[3]]
		end, ok := closingParen(s, loc[1])
		if !ok {
			if first == nil {
				first = &GroupError{Name: name, Offset: loc[0]}
			}
			continue
		}
		groups = append(groups, group{name: name, start: loc[0], bodyStart: loc[1], end: end})
	}
	return groups, first
}

// closingParen returns the offset of the ')' that closes a group whose body
// starts at from. Escaped characters and bracket expressions are skipped.
func closingParen(s string, from int) (int, bool) {
	depth := 0
	for i := from; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '[':
			i = classEnd(s, i)
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return i, true
			}
			depth--
		}
	}
	return -1, false
}

// classEnd returns the offset of the ']' closing the bracket expression
// opened at i, or len(s) if there is none. A ']' right after "[" or "[^"
// is a literal.
func classEnd(s string, i int) int {
	j := i + 1
	if j < len(s) && s[j] == '^' {
		j++
	}
	if j < len(s) && s[j] == ']' {
		j++
	}
	for ; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case ']':
			return j
		}
	}
	return len(s)
}

// classSpans returns the [start, end] offsets of every bracket expression
// in s, in order. An unterminated class runs to len(s).
func classSpans(s string) [][2]int {
	var spans [][2]int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '[':
			end := classEnd(s, i)
			spans = append(spans, [2]int{i, end})
			i = end
		}
	}
	return spans
}

// inSpan reports whether offset i falls inside one of spans.
func inSpan(spans [][2]int, i int) bool {
	for _, sp := range spans {
		if sp[0] > i {
			return false
		}
		if i <= sp[1] {
			return true
		}
	}
	return false
}

// escaped reports whether s[i] is preceded by an odd run of backslashes.
func escaped(s string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}
