package rxp

import (
	"errors"
	"regexp"
	"testing"

	"github.com/coregx/coregex"
	"github.com/coregx/rxp/flags"
	"github.com/coregx/rxp/fragment"
	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/require"
)

func TestOrComposesFragments(t *testing.T) {
	u := Init("Hi").Or("Bye")
	require.NoError(t, u.Err())
	require.Equal(t, "(?:(?:Hi)|(?:Bye))", u.Text())
	require.Equal(t, StageAlternation, u.Stage())

	re := u.MustConstruct()
	require.True(t, re.MatchString("Bye now"))
	require.False(t, re.MatchString("Hello"))
}

func TestGreedyConversion(t *testing.T) {
	lazy := Init("sample").OccursOnceOrMore()
	require.Equal(t, "(?:(?:sample)+?)", lazy.Text())
	require.Equal(t, "(?:(?:sample)+)", lazy.Greedy().Text())

	require.Equal(t, "sample", lazy.MustConstruct().FindString("samplesample"))
	require.Equal(t, "samplesample", lazy.Greedy().MustConstruct().FindString("samplesample"))
}

func TestVariableRepeatsSameText(t *testing.T) {
	v := Init("sample").IsVariable("v")
	require.NoError(t, v.Err())

	re, err := Init(v, " and ", v).Construct()
	require.NoError(t, err)
	require.Equal(t, `(?:(?<v>(?:sample))(?: and )(\k<v>))`, re.String())
	require.True(t, re.MatchString("sample and sample"))
	require.False(t, re.MatchString("sample and other"))
}

func TestVariableCapturesVaryingText(t *testing.T) {
	word := OneOrMore(AnyLetter).Greedy().IsVariable("word")
	re := Init(word, " ", word).MustConstruct()

	require.True(t, re.MatchString("hello hello"))
	require.False(t, re.MatchString("hello world"))
	// unnamed groups are numbered before named ones on the backtracking engine
	require.Equal(t, []string{"", "", "word"}, re.SubexpNames())
	require.Equal(t, []string{"bye bye", "bye", "bye"}, re.FindStringSubmatch("say bye bye"))
	require.Equal(t, 2, re.SubexpIndex("word"))
}

func TestAutoNamedVariable(t *testing.T) {
	d := OneOrMore(AnyDigit).Greedy().IsVariable()
	re := Init(d, "-", d).MustConstruct()

	require.True(t, re.MatchString("42-42"))
	require.False(t, re.MatchString("42-43"))
}

func TestNativeImport(t *testing.T) {
	u := Init(Native(`/(?<x>\d{3}) and \k<x>/`))
	require.NoError(t, u.Err())

	re := u.MustConstruct()
	require.Equal(t, `(?:(?<x>\d{3}) and (\k<x>))`, re.String())
	require.True(t, re.MatchString("123 and 123"))
	require.False(t, re.MatchString("123 and 456"))
}

func TestNativePattern(t *testing.T) {
	tests := []struct {
		in   Native
		want string
	}{
		{`\d+`, `\d+`},
		{`/\d+/`, `\d+`},
		{`/\d+/gi`, `\d+`},
		{`/a/b/y`, `a/b`},
		{`/a/bad`, `/a/bad`},
		{`/`, `/`},
		{`//`, ``},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			require.Equal(t, tt.want, tt.in.Pattern())
		})
	}
}

func TestCompiledInputs(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"stdlib", regexp.MustCompile(`(?P<n>\d)-\d`)},
		{"regexp2", regexp2.MustCompile(`(?<n>\d)-\d`, regexp2.None)},
		{"coregex", coregex.MustCompile(`(?P<n>\d)-\d`)},
		{"rxp", Init(Native(`(?<n>\d)-\d`)).MustConstruct()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := Init(tt.in).IsVariable("pair")
			require.NoError(t, u.Err())

			re := Init(u, ",", u).MustConstruct()
			require.True(t, re.MatchString("1-2,1-2"))
			require.False(t, re.MatchString("1-2,1-3"))
		})
	}
}

func TestMultipleInputsAreGrouped(t *testing.T) {
	require.Equal(t, "(?:a)", Init("a").Text())
	require.Equal(t, "(?:(?:a)(?:b))", Init("a", "b").Text())

	re := Init("ab", "c").OccursOnceOrMore().Greedy().MustConstruct()
	require.Equal(t, "abcabc", re.FindString("abcabcab"))
}

func TestEscapedInputMatchesItself(t *testing.T) {
	inputs := []string{fragment.Special, "$^", "((", `\\`, "{1,2}", "a|b", "[^x]", "(?<x>y\\k<x>)"}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			re := Init(in).AtStart().AtEnd().MustConstruct()
			require.True(t, re.MatchString(in))
		})
	}
}

func TestInvalidFlag(t *testing.T) {
	_, err := Init("a").Construct("whoops!")
	require.ErrorIs(t, err, ErrInvalidFlag)

	var flagErr *flags.Error
	require.ErrorAs(t, err, &flagErr)
	require.Equal(t, "whoops!", flagErr.Flag)
	require.Contains(t, flagErr.Valid, "ignoreCase")
}

func TestPrecededByDropsAtStart(t *testing.T) {
	u := Init("sample").PrecededBy("before")
	require.Equal(t, StageContextNoStart, u.Stage())
	require.NotContains(t, u.Offered(), OpAtStart)
	require.Contains(t, u.Offered(), OpAtEnd)

	_, ok := any(u).(interface{ AtStart() Settings })
	require.False(t, ok)

	next, err := Apply(u, OpAtStart)
	require.ErrorIs(t, err, ErrInvalidOperationForStage)
	require.Equal(t, StageFinal, next.Stage())
	require.Empty(t, next.Offered())

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	require.Equal(t, OpAtStart, stageErr.Op)
	require.Equal(t, StageContextNoStart, stageErr.Stage)
}

func TestLookarounds(t *testing.T) {
	tests := []struct {
		name    string
		u       Unit
		text    string
		match   []string
		noMatch []string
	}{
		{
			name:    "followed by",
			u:       Init("hello").FollowedBy("goodbye"),
			text:    "(?:(?:hello)(?=(?:goodbye)))",
			match:   []string{"hellogoodbye"},
			noMatch: []string{"hello there"},
		},
		{
			name:    "not followed by",
			u:       Init("hello").NotFollowedBy("goodbye"),
			text:    "(?:(?:hello)(?!(?:goodbye)))",
			match:   []string{"hello there"},
			noMatch: []string{"hellogoodbye"},
		},
		{
			name:    "preceded by",
			u:       Init("goodbye").PrecededBy("hello"),
			text:    "(?:(?<=(?:hello))(?:goodbye))",
			match:   []string{"hellogoodbye"},
			noMatch: []string{"goodbye"},
		},
		{
			name:    "not preceded by",
			u:       Init("goodbye").NotPrecededBy("hello"),
			text:    "(?:(?<!(?:hello))(?:goodbye))",
			match:   []string{"goodbye"},
			noMatch: []string{"hellogoodbye"},
		},
		{
			name:    "both sides",
			u:       Init("b").PrecededBy("a").FollowedBy("c"),
			text:    "(?:(?:(?<=(?:a))(?:b))(?=(?:c)))",
			match:   []string{"abc"},
			noMatch: []string{"abd", "xbc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.text, tt.u.Text())
			re := tt.u.MustConstruct()
			for _, s := range tt.match {
				require.True(t, re.MatchString(s), s)
			}
			for _, s := range tt.noMatch {
				require.False(t, re.MatchString(s), s)
			}
		})
	}
}

func TestBothAnchors(t *testing.T) {
	u := Init("abc").AtStart().AtEnd()
	require.Equal(t, StageSettings, u.Stage())
	require.Equal(t, "(?:(?:^(?:abc))$)", u.Text())

	re := u.MustConstruct()
	require.True(t, re.MatchString("abc"))
	require.False(t, re.MatchString("abcd"))
	require.False(t, re.MatchString("xabc"))
}

func TestDoesNotOccurOffersOnlyAnchors(t *testing.T) {
	u := Init("a").DoesNotOccur()
	require.Equal(t, []Op{OpAtStart, OpAtEnd}, u.Offered())

	final := u.AtStart().AtEnd()
	require.Equal(t, StageFinal, final.Stage())
	require.Empty(t, final.Offered())
	require.NoError(t, final.Err())
}

func TestSettings(t *testing.T) {
	base := Init("x")

	require.Equal(t, "((?:(?:x)?))", base.IsOptional().IsCaptured().Text())
	require.Equal(t, "(?:((?:x))?)", base.IsCaptured().IsOptional().Text())
	require.Equal(t, `(?:(?<n>((?:x))\k<n>)?)`, base.IsCaptured().IsVariable("n").IsOptional().Text())

	re := base.IsCaptured().MustConstruct()
	require.Equal(t, []string{"x", "x"}, re.FindStringSubmatch("ax"))
	require.Equal(t, 1, re.NumSubexp())
}

func TestStickyErrors(t *testing.T) {
	u := Init(42)
	require.ErrorIs(t, u.Err(), ErrInvalidInput)

	var inputErr *InputError
	require.ErrorAs(t, u.Err(), &inputErr)
	require.Equal(t, "int", inputErr.Type)

	chained := u.Or("b").Occurs(3).AtStart().IsCaptured()
	require.Same(t, u.Err(), chained.Err())
	require.Equal(t, StageCaptured, chained.Stage())

	_, err := chained.Construct()
	require.Same(t, u.Err(), err)

	// an errored unit used as input propagates its error
	require.ErrorIs(t, Init("ok", chained).Err(), ErrInvalidInput)
	require.Panics(t, func() { chained.MustConstruct() })
}

func TestInputErrorPosition(t *testing.T) {
	err := Init("a", "b", 3.5).Err()
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	require.Equal(t, 2, inputErr.Index)
	require.Equal(t, "float64", inputErr.Type)

	err = Init(nil).Err()
	require.ErrorAs(t, err, &inputErr)
	require.Equal(t, "<nil>", inputErr.Type)

	var nilRe *regexp.Regexp
	require.ErrorIs(t, Init(nilRe).Err(), ErrInvalidInput)
}

func TestInvalidRepetition(t *testing.T) {
	tests := []struct {
		name string
		u    Unit
	}{
		{"negative occurs", Init("a").Occurs(-1)},
		{"negative at least", Init("a").OccursAtLeast(-2)},
		{"min over max", Init("a").OccursBetween(3, 1)},
		{"negative max", Init("a").OccursBetween(0, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.u.Err(), ErrInvalidRepetition)
		})
	}

	require.NoError(t, Init("a").OccursBetween(2, 2).Err())
	require.NoError(t, Init("a").Occurs(0).Err())
}

func TestInvalidVariableName(t *testing.T) {
	require.ErrorIs(t, Init("a").IsVariable("").Err(), ErrInvalidVariableName)
	require.ErrorIs(t, Init("a").IsVariable("1x").Err(), ErrInvalidVariableName)
	require.ErrorIs(t, Init("a").IsVariable("a", "b").Err(), ErrInvalidVariableName)
}

func TestUnterminatedNativeGroup(t *testing.T) {
	err := Init(Native(`(?<a>x`)).Err()
	require.ErrorIs(t, err, ErrUnterminatedGroup)
}

func TestNativeClassIsNotAGroup(t *testing.T) {
	u := Init(Native(`[(?<a>]x`))
	require.NoError(t, u.Err())

	re := u.MustConstruct()
	require.True(t, re.MatchString("<x"))
	require.False(t, re.MatchString("bx"))
}

func TestCompileErrorFromEngine(t *testing.T) {
	_, err := Init(Native(`a{2,1}`)).Construct()
	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	require.Equal(t, EngineBacktrack, compileErr.Engine)
	require.Equal(t, `(?:a{2,1})`, compileErr.Source)
	require.False(t, errors.Is(err, ErrUnsupportedByEngine))
}

func TestUnitsAreImmutable(t *testing.T) {
	base := Init("a")
	_ = base.Or("b")
	_ = base.Occurs(2)
	_ = base.IsCaptured()
	require.Equal(t, "(?:a)", base.Text())
	require.Equal(t, StageAlternation, base.Stage())
}
