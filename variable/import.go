package variable

import (
	"fmt"
	"strings"

	"github.com/coregx/ahocorasick"
)

// Import rewrites the named groups and backreferences of a native pattern
// into pending tokens.
//
// Every named group becomes the token for its name. A \k<name> outside the
// group, optionally wrapped in its own parentheses, becomes a copy of the
// token built from the first group with that name, so the reference resolves
// back to a declaration or backreference depending on where the fragment
// ends up. References to names the pattern never declares, and references
// from inside a group to itself, are left as written.
//
// A pattern without named groups is returned unchanged.
func Import(pattern string) (string, error) {
	groups, err := scan(pattern)
	if err != nil {
		return "", err
	}
	if len(groups) == 0 {
		return pattern, nil
	}

	im := &importer{
		src:     pattern,
		hay:     []byte(pattern),
		groups:  groups,
		classes: classSpans(pattern),
		first:   make(map[string]group),
		tokens:  make(map[string]string),
		active:  make(map[string]bool),
	}

	builder := ahocorasick.NewBuilder()
	for _, g := range groups {
		if _, ok := im.first[g.name]; ok {
			continue
		}
		im.first[g.name] = g
		builder.AddPattern([]byte(backref(g.name)))
	}
	im.refs, err = builder.Build()
	if err != nil {
		return "", fmt.Errorf("rxp: import %q: %w", pattern, err)
	}

	return im.rewrite(0, len(pattern), ""), nil
}

type importer struct {
	src     string
	hay     []byte
	groups  []group
	classes [][2]int
	refs    *ahocorasick.Automaton

	first  map[string]group  // first group declared under each name
	tokens map[string]string // token built from first[name]
	active map[string]bool   // names whose token is being built
}

// rewrite returns src[lo:hi] with groups and references replaced. self is
// the name of the group whose body is being rewritten, if any.
func (im *importer) rewrite(lo, hi int, self string) string {
	var b strings.Builder
	cursor := lo
	for _, g := range im.groups {
		if g.start < cursor || g.start >= hi {
			continue
		}
		im.writeRefs(&b, cursor, g.start, self)
		tok := ""
		if im.first[g.name].start == g.start {
			tok = im.tokenFor(g.name)
		}
		if tok == "" {
			tok = im.build(g)
		}
		b.WriteString(tok)
		cursor = g.end + 1
	}
	im.writeRefs(&b, cursor, hi, self)
	return b.String()
}

// tokenFor returns the token for name, building it on first use. It returns
// "" while the token for name is still being built.
func (im *importer) tokenFor(name string) string {
	if tok, ok := im.tokens[name]; ok {
		return tok
	}
	if im.active[name] {
		return ""
	}
	im.active[name] = true
	tok := im.build(im.first[name])
	delete(im.active, name)
	im.tokens[name] = tok
	return tok
}

// build returns the token for g. A group that already is a token keeps its
// trailing reference instead of gaining a second one.
func (im *importer) build(g group) string {
	end := g.end
	if ref := g.refStart(im.src); ref >= 0 {
		end = ref
	}
	return token(g.name, im.rewrite(g.bodyStart, end, g.name))
}

// writeRefs copies src[lo:hi] to b, replacing backreferences with tokens.
func (im *importer) writeRefs(b *strings.Builder, lo, hi int, self string) {
	at := lo
	for at < hi {
		m := im.refs.Find(im.hay[:hi], at)
		if m == nil {
			break
		}
		start, end := m.Start, m.End
		name := im.src[start+len(`\k<`) : end-1]

		var tok string
		if name != self && !escaped(im.src, start) && !inSpan(im.classes, start) {
			tok = im.tokenFor(name)
		}
		if tok == "" {
			b.WriteString(im.src[at:end])
			at = end
			continue
		}

		if start > lo && end < hi && im.src[start-1] == '(' && im.src[end] == ')' && !escaped(im.src, start-1) {
			start--
			end++
		}
		b.WriteString(im.src[at:start])
		b.WriteString(tok)
		at = end
	}
	if at < hi {
		b.WriteString(im.src[at:hi])
	}
}
