package variable

import "strings"

// Replacement describes how one distinct pending token is resolved.
type Replacement struct {
	Original      string // token text as it appears in the fragment
	Name          string
	FirstUse      string // declaration emitted at the first occurrence
	SubsequentUse string // backreference emitted at later occurrences
}

// Find lists the distinct top-level pending tokens of f in order of first
// appearance. Tokens nested inside another token's body are resolved into
// its FirstUse and are not listed.
func Find(f string) []Replacement {
	toks := tokens(f)
	var (
		out  []Replacement
		seen = make(map[string]bool)
		end  = -1
	)
	for _, t := range toks {
		if t.start < end {
			continue
		}
		end = t.end
		orig := t.text(f)
		if seen[orig] {
			continue
		}
		seen[orig] = true
		out = append(out, Replacement{
			Original:      orig,
			Name:          t.name,
			FirstUse:      f[t.start:t.bodyStart] + Resolve(f[t.bodyStart:t.ref]) + ")",
			SubsequentUse: "(" + backref(t.name) + ")",
		})
	}
	return out
}

// Resolve rewrites every pending token in f. The first occurrence of each
// distinct token becomes its declaration and later occurrences become
// backreferences. Tokens nested in a declaration body are resolved in
// place, in reading order. Text outside tokens is left untouched.
func Resolve(f string) string {
	toks := tokens(f)
	if len(toks) == 0 {
		return f
	}
	r := &resolver{src: f, toks: toks, seen: make(map[string]bool)}
	return r.resolve(0, len(f))
}

type pending struct {
	group
	ref int // offset of the closing \k<name>
}

// tokens returns the pending tokens of f in order of their opening.
// Unterminated groups cannot be tokens and are ignored.
func tokens(f string) []pending {
	if !strings.Contains(f, `\k<`) {
		return nil
	}
	groups, _ := scan(f)
	var toks []pending
	for _, g := range groups {
		if ref := g.refStart(f); ref >= 0 {
			toks = append(toks, pending{group: g, ref: ref})
		}
	}
	return toks
}

type resolver struct {
	src  string
	toks []pending
	seen map[string]bool
}

func (r *resolver) resolve(lo, hi int) string {
	var b strings.Builder
	cursor := lo
	for _, t := range r.toks {
		if t.start < cursor || t.start >= hi {
			continue
		}
		b.WriteString(r.src[cursor:t.start])
		if orig := t.text(r.src); !r.seen[orig] {
			r.seen[orig] = true
			b.WriteString(r.src[t.start:t.bodyStart])
			b.WriteString(r.resolve(t.bodyStart, t.ref))
			b.WriteByte(')')
		} else {
			b.WriteString("(" + backref(t.name) + ")")
		}
		cursor = t.end + 1
	}
	b.WriteString(r.src[cursor:hi])
	return b.String()
}
