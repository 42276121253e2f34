package rxp

import (
	"strconv"
	"strings"

	"github.com/coregx/coregex"
	"github.com/coregx/rxp/flags"
	"github.com/dlclark/regexp2"
	"github.com/rs/zerolog"
)

// Regexp is a constructed pattern.
//
// Matching follows the flags given to Construct: without the g flag,
// FindAllString and ReplaceAllString stop after the first match, and with
// the y flag every match must start where the previous one ended (or at the
// start of the input).
//
// A Regexp is safe for concurrent use on the backtracking engine.
//
// Example:
//
//	re := rxp.Init("cat").Or("dog").MustConstruct("g")
//	re.FindAllString("cat, dog, bird", -1) // [cat dog]
type Regexp struct {
	source string
	flags  flags.Set
	engine Engine
	m      matcher
	log    *zerolog.Logger

	backtrack *regexp2.Regexp
	linear    *coregex.Regexp
}

// String returns the source pattern.
func (r *Regexp) String() string {
	return r.source
}

// Source returns the source pattern, with variables resolved.
func (r *Regexp) Source() string {
	return r.source
}

// Flags returns the flag letters in the order "gimsuy".
func (r *Regexp) Flags() string {
	return r.flags.String()
}

// Global reports whether the g flag is set.
func (r *Regexp) Global() bool {
	return r.flags.Has(flags.Global)
}

// Sticky reports whether the y flag is set.
func (r *Regexp) Sticky() bool {
	return r.flags.Has(flags.Sticky)
}

// Engine returns the engine the pattern was compiled with. It is never
// EngineAuto.
func (r *Regexp) Engine() Engine {
	return r.engine
}

// Backtracking returns the underlying regexp2 pattern, or nil when the
// pattern runs on the linear engine.
func (r *Regexp) Backtracking() *regexp2.Regexp {
	return r.backtrack
}

// Linear returns the underlying coregex pattern, or nil when the pattern
// runs on the backtracking engine.
func (r *Regexp) Linear() *coregex.Regexp {
	return r.linear
}

// MatchString reports whether s contains a match.
//
// Example:
//
//	re := rxp.Init("sample").MustConstruct()
//	re.MatchString("a sample text") // true
func (r *Regexp) MatchString(s string) bool {
	ok, err := r.m.match(s)
	if err != nil {
		r.matchFailed(err)
		return false
	}
	return ok
}

// FindString returns the text of the leftmost match in s, or "" if there is
// none.
func (r *Regexp) FindString(s string) string {
	loc := r.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	return s[loc[0]:loc[1]]
}

// FindStringIndex returns the byte offsets of the leftmost match in s, or
// nil if there is none.
func (r *Regexp) FindStringIndex(s string) []int {
	locs := r.find(s, 1)
	if len(locs) == 0 {
		return nil
	}
	return locs[0][:2]
}

// FindStringSubmatch returns the leftmost match and its submatches.
// Groups that did not participate are "".
func (r *Regexp) FindStringSubmatch(s string) []string {
	loc := r.FindStringSubmatchIndex(s)
	if loc == nil {
		return nil
	}
	out := make([]string, len(loc)/2)
	for i := range out {
		if loc[2*i] >= 0 {
			out[i] = s[loc[2*i]:loc[2*i+1]]
		}
	}
	return out
}

// FindStringSubmatchIndex returns byte offset pairs for the leftmost match
// and its submatches. Groups that did not participate are -1.
func (r *Regexp) FindStringSubmatchIndex(s string) []int {
	locs := r.find(s, 1)
	if len(locs) == 0 {
		return nil
	}
	return locs[0]
}

// FindAllString returns successive matches, at most n of them when n >= 0.
// Without the g flag at most one match is returned.
//
// Example:
//
//	re := rxp.Init(rxp.AnyDigit).MustConstruct("g")
//	re.FindAllString("a1b2c3", -1) // [1 2 3]
func (r *Regexp) FindAllString(s string, n int) []string {
	locs := r.FindAllStringIndex(s, n)
	if locs == nil {
		return nil
	}
	out := make([]string, len(locs))
	for i, loc := range locs {
		out[i] = s[loc[0]:loc[1]]
	}
	return out
}

// FindAllStringIndex is the index version of FindAllString.
func (r *Regexp) FindAllStringIndex(s string, n int) [][]int {
	locs := r.find(s, r.limit(n))
	if len(locs) == 0 {
		return nil
	}
	for i := range locs {
		locs[i] = locs[i][:2]
	}
	return locs
}

// SubexpNames returns the names of the capturing groups, with "" for the
// whole match and for unnamed groups. On the backtracking engine named groups
// are numbered after unnamed ones.
func (r *Regexp) SubexpNames() []string {
	return r.m.subexpNames()
}

// NumSubexp returns the number of capturing groups.
func (r *Regexp) NumSubexp() int {
	return len(r.m.subexpNames()) - 1
}

// SubexpIndex returns the index of the group with the given name, or -1.
func (r *Regexp) SubexpIndex(name string) int {
	if name == "" {
		return -1
	}
	for i, n := range r.m.subexpNames() {
		if n == name {
			return i
		}
	}
	return -1
}

// ReplaceAllString replaces matches of the pattern in src with repl. Inside
// repl, $1 or ${1} stands for a numbered group, ${name} for a named group,
// $0 for the whole match and $$ for a literal $.
// Without the g flag only the first match is replaced.
//
// Example:
//
//	re := rxp.Init(rxp.Native(`(?<word>\w+)@`)).MustConstruct("g")
//	re.ReplaceAllString("me@ you@", "<${word}>") // "<me> <you>"
func (r *Regexp) ReplaceAllString(src, repl string) string {
	locs := r.find(src, r.limit(-1))
	if len(locs) == 0 {
		return src
	}

	names := r.m.subexpNames()
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		b.WriteString(src[last:loc[0]])
		expand(&b, repl, src, loc, names)
		last = loc[1]
	}
	b.WriteString(src[last:])
	return b.String()
}

func (r *Regexp) limit(n int) int {
	if !r.Global() && n != 0 {
		return 1
	}
	return n
}

func (r *Regexp) find(s string, n int) [][]int {
	locs, err := r.m.find(s, n)
	if err != nil {
		r.matchFailed(err)
	}
	return locs
}

// matchFailed logs an engine failure during matching, typically a
// MatchTimeout.
func (r *Regexp) matchFailed(err error) {
	r.log.Warn().Err(err).Str("source", r.source).Msg("match aborted")
}

// expand appends template to b; during the append, it replaces $1, ${1},
// ${name} and $0 with the corresponding submatch, and $$ with $.
// References to missing groups expand to nothing.
func expand(b *strings.Builder, template, src string, match []int, names []string) {
	group := func(i int) {
		if i >= 0 && i < len(match)/2 && match[2*i] >= 0 {
			b.WriteString(src[match[2*i]:match[2*i+1]])
		}
	}

	for i := 0; i < len(template); {
		if template[i] != '$' || i+1 >= len(template) {
			b.WriteByte(template[i])
			i++
			continue
		}

		next := template[i+1]
		switch {
		case next == '$':
			b.WriteByte('$')
			i += 2

		case '0' <= next && next <= '9':
			j := i + 1
			for j < len(template) && '0' <= template[j] && template[j] <= '9' {
				j++
			}
			// a number that overflows int names no group
			if n, err := strconv.Atoi(template[i+1 : j]); err == nil {
				group(n)
			}
			i = j

		case next == '{':
			end := strings.IndexByte(template[i+2:], '}')
			if end < 0 {
				b.WriteByte('$')
				i++
				continue
			}
			ref := template[i+2 : i+2+end]
			if n, err := strconv.Atoi(ref); err == nil {
				group(n)
			} else {
				for k, name := range names {
					if name != "" && name == ref {
						group(k)
						break
					}
				}
			}
			i += end + 3

		default:
			// unknown $ escape, treat as literal
			b.WriteByte('$')
			i++
		}
	}
}
