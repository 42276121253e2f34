// Package rxp builds regular expressions from composable, staged units.
//
// A pattern starts with Init, which accepts literal text, previously built
// units and native patterns. Every operation returns a new immutable unit
// whose Go type offers only the operations that still make sense, so
// compositions such as anchoring a lookbehind at the start of input, or
// quantifying twice, do not compile.
//
// Basic usage:
//
//	// (?:(?:(?:cat)|(?:dog))+)
//	pets := rxp.Init("cat").Or("dog").OccursOnceOrMore().Greedy()
//
//	re, err := pets.Construct("g")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.FindAllString("catdog and dog", -1) // [catdog dog]
//
// Stages:
//
//   - Alternation: Or, then any quantifier, context, anchor or setting
//   - Context (after a counted quantifier) and LazyContext (after
//     OccursOnceOrMore or OccursZeroOrMore, adding Greedy): lookarounds,
//     anchors, settings
//   - ContextNoEnd / ContextNoStart / ContextNoAnchor: after lookaheads or
//     lookbehinds the matching anchor is gone
//   - Anchor: after DoesNotOccur only anchors remain
//   - Settings: IsOptional, IsCaptured, IsVariable
//
// Variables:
//
// IsVariable names a unit so that every later use must match the same text.
// A variable may be embedded any number of times; at Construct the first
// occurrence becomes a named group and later ones become backreferences.
//
//	word := rxp.OneOrMore(rxp.AnyLetter).Greedy().IsVariable("word")
//	twice := rxp.Init(word, " ", word).MustConstruct()
//	twice.MatchString("hello hello") // true
//	twice.MatchString("hello world") // false
//
// Named groups in a Native pattern become variables too, so
// rxp.Native(`(?<x>\d{3}) and \k<x>`) composes like a built unit.
//
// Engines:
//
// Patterns are compiled with regexp2 by default, which supports the
// lookarounds and backreferences the builder produces. Config.Engine can
// select coregex, a linear-time engine, for patterns that need neither.
//
// Errors:
//
// Building never panics. The first failure is recorded on the unit, carried
// by every unit derived from it, and returned by Err and Construct.
package rxp
