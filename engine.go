package rxp

import (
	"fmt"
	"strconv"

	"github.com/coregx/coregex"
	"github.com/coregx/rxp/flags"
	"github.com/dlclark/regexp2"
)

// matcher is the engine-specific half of a Regexp. Offsets are byte offsets
// into the searched string; each match is a submatch index slice in the
// layout of regexp.FindStringSubmatchIndex.
type matcher interface {
	match(s string) (bool, error)
	find(s string, n int) ([][]int, error)
	subexpNames() []string
}

// linearFlags are the flags the linear engine can honour.
const linearFlags = flags.Global

// compile builds the matcher for source under config.
func compile(source string, set flags.Set, config Config) (*Regexp, error) {
	log := config.logger()
	re := &Regexp{source: source, flags: set, log: log}

	switch config.Engine {
	case EngineLinear:
		if set.Without(linearFlags) != flags.None {
			return nil, &CompileError{
				Source: source,
				Engine: EngineLinear,
				Err:    fmt.Errorf("%w: flags %q", ErrUnsupportedByEngine, set.Without(linearFlags)),
			}
		}
		if err := re.compileLinear(); err != nil {
			return nil, err
		}
		return re, nil

	case EngineAuto:
		if set.Without(linearFlags) == flags.None {
			err := re.compileLinear()
			if err == nil {
				return re, nil
			}
			log.Debug().Err(err).Str("source", source).Msg("linear engine rejected pattern, using backtracking")
		}
	}

	if err := re.compileBacktrack(config); err != nil {
		return nil, err
	}
	return re, nil
}

func (r *Regexp) compileLinear() error {
	cre, err := coregex.Compile(r.source)
	if err != nil {
		return &CompileError{Source: r.source, Engine: EngineLinear, Err: err}
	}
	r.engine = EngineLinear
	r.linear = cre
	r.m = linearMatcher{cre}
	return nil
}

func (r *Regexp) compileBacktrack(config Config) error {
	var opts regexp2.RegexOptions
	if r.flags.Has(flags.IgnoreCase) {
		opts |= regexp2.IgnoreCase
	}
	if r.flags.Has(flags.Multiline) {
		opts |= regexp2.Multiline
	}
	if r.flags.Has(flags.DotAll) {
		opts |= regexp2.Singleline
	}
	if r.flags.Has(flags.Unicode) {
		opts |= regexp2.Unicode
	}

	expr := r.source
	if r.flags.Has(flags.Sticky) {
		// \G pins each match to where the previous one ended
		expr = `\G(?:` + expr + `)`
	}

	bre, err := regexp2.Compile(expr, opts)
	if err != nil {
		return &CompileError{Source: r.source, Engine: EngineBacktrack, Err: err}
	}
	if config.MatchTimeout > 0 {
		bre.MatchTimeout = config.MatchTimeout
	}
	r.engine = EngineBacktrack
	r.backtrack = bre
	r.m = newBacktrackMatcher(bre)
	return nil
}

type linearMatcher struct {
	re *coregex.Regexp
}

func (l linearMatcher) match(s string) (bool, error) {
	return l.re.MatchString(s), nil
}

func (l linearMatcher) find(s string, n int) ([][]int, error) {
	if n == 1 {
		if loc := l.re.FindStringSubmatchIndex(s); loc != nil {
			return [][]int{loc}, nil
		}
		return nil, nil
	}
	return l.re.FindAllStringSubmatchIndex(s, n), nil
}

func (l linearMatcher) subexpNames() []string {
	return l.re.SubexpNames()
}

type backtrackMatcher struct {
	re    *regexp2.Regexp
	names []string
}

func newBacktrackMatcher(re *regexp2.Regexp) backtrackMatcher {
	// Unnamed groups are reported under their number.
	names := re.GetGroupNames()
	for i, name := range names {
		if _, err := strconv.Atoi(name); err == nil {
			names[i] = ""
		}
	}
	return backtrackMatcher{re: re, names: names}
}

func (b backtrackMatcher) match(s string) (bool, error) {
	return b.re.MatchString(s)
}

func (b backtrackMatcher) find(s string, n int) ([][]int, error) {
	if n == 0 {
		return nil, nil
	}

	m, err := b.re.FindStringMatch(s)
	if err != nil || m == nil {
		return nil, err
	}

	offsets := byteOffsets(s)
	var out [][]int
	for m != nil {
		groups := m.Groups()
		loc := make([]int, 2*len(groups))
		for i, g := range groups {
			if i > 0 && len(g.Captures) == 0 {
				loc[2*i], loc[2*i+1] = -1, -1
				continue
			}
			loc[2*i] = offsets[g.Index]
			loc[2*i+1] = offsets[g.Index+g.Length]
		}
		out = append(out, loc)
		if n > 0 && len(out) == n {
			break
		}
		if m, err = b.re.FindNextMatch(m); err != nil {
			return out, err
		}
	}
	return out, nil
}

func (b backtrackMatcher) subexpNames() []string {
	return b.names
}

// byteOffsets maps rune indices of s to byte offsets. The extra final entry
// is len(s).
func byteOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}
