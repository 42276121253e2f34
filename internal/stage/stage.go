// Package stage holds the transition table of the builder's staged state
// machine.
//
// Every builder unit sits in exactly one State. A State offers a fixed set of
// Ops, and applying an offered Op moves the unit to the State named by the
// table. The table is the single source of truth: the typed builder API in
// package rxp returns interfaces that mirror it, and the dynamic API consults
// it directly.
//
// Along any path an operation, once withdrawn, is never offered again. The
// offered set otherwise shrinks at every step, with one exception: the lazy
// quantifiers lead to LazyContext, which adds Greedy.
package stage

import (
	"fmt"

	"github.com/coregx/rxp/internal/sparse"
)

// Op identifies a builder operation.
type Op uint8

// Builder operations.
const (
	OpOr Op = iota
	OpOccurs
	OpOccursAtLeast
	OpOccursBetween
	OpOccursOnceOrMore
	OpOccursZeroOrMore
	OpDoesNotOccur
	OpGreedy
	OpFollowedBy
	OpNotFollowedBy
	OpPrecededBy
	OpNotPrecededBy
	OpAtStart
	OpAtEnd
	OpIsOptional
	OpIsCaptured
	OpIsVariable

	numOps
)

// NumOps is the number of distinct operations.
const NumOps = int(numOps)

var opNames = [...]string{
	OpOr:               "Or",
	OpOccurs:           "Occurs",
	OpOccursAtLeast:    "OccursAtLeast",
	OpOccursBetween:    "OccursBetween",
	OpOccursOnceOrMore: "OccursOnceOrMore",
	OpOccursZeroOrMore: "OccursZeroOrMore",
	OpDoesNotOccur:     "DoesNotOccur",
	OpGreedy:           "Greedy",
	OpFollowedBy:       "FollowedBy",
	OpNotFollowedBy:    "NotFollowedBy",
	OpPrecededBy:       "PrecededBy",
	OpNotPrecededBy:    "NotPrecededBy",
	OpAtStart:          "AtStart",
	OpAtEnd:            "AtEnd",
	OpIsOptional:       "IsOptional",
	OpIsCaptured:       "IsCaptured",
	OpIsVariable:       "IsVariable",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// State identifies a position in the state machine.
type State uint8

// States, roughly in the order a unit moves through them.
const (
	// Alternation is the initial state: Or may repeat, everything else is open.
	Alternation State = iota
	// Context follows a counted quantifier.
	Context
	// LazyContext follows a lazy quantifier and additionally offers Greedy.
	LazyContext
	// ContextNoEnd follows a lookahead; AtEnd is gone.
	ContextNoEnd
	// ContextNoStart follows a lookbehind; AtStart is gone.
	ContextNoStart
	// ContextNoAnchor follows both a lookahead and a lookbehind.
	ContextNoAnchor
	// Anchor follows DoesNotOccur; only anchors remain.
	Anchor
	// StartAnchor offers only AtStart.
	StartAnchor
	// EndAnchor offers only AtEnd.
	EndAnchor
	// SettingsWithEnd follows AtStart and still offers AtEnd.
	SettingsWithEnd
	// SettingsWithStart follows AtEnd and still offers AtStart.
	SettingsWithStart
	// Settings offers IsOptional, IsCaptured and IsVariable.
	Settings
	// Optional follows IsOptional.
	Optional
	// Captured follows IsCaptured.
	Captured
	// Variable follows IsVariable.
	Variable
	// Final offers nothing.
	Final

	numStates
)

// NumStates is the number of distinct states.
const NumStates = int(numStates)

var stateNames = [...]string{
	Alternation:       "Alternation",
	Context:           "Context",
	LazyContext:       "LazyContext",
	ContextNoEnd:      "ContextNoEnd",
	ContextNoStart:    "ContextNoStart",
	ContextNoAnchor:   "ContextNoAnchor",
	Anchor:            "Anchor",
	StartAnchor:       "StartAnchor",
	EndAnchor:         "EndAnchor",
	SettingsWithEnd:   "SettingsWithEnd",
	SettingsWithStart: "SettingsWithStart",
	Settings:          "Settings",
	Optional:          "Optional",
	Captured:          "Captured",
	Variable:          "Variable",
	Final:             "Final",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

type edges map[Op]State

// merge returns a new edge map holding the union of the arguments.
// Later maps win on conflicting keys.
func merge(maps ...edges) edges {
	out := edges{}
	for _, m := range maps {
		for op, next := range m {
			out[op] = next
		}
	}
	return out
}

var (
	settingsEdges = edges{
		OpIsOptional: Optional,
		OpIsCaptured: Captured,
		OpIsVariable: Variable,
	}

	contextEdges = merge(settingsEdges, edges{
		OpFollowedBy:    ContextNoEnd,
		OpNotFollowedBy: ContextNoEnd,
		OpPrecededBy:    ContextNoStart,
		OpNotPrecededBy: ContextNoStart,
		OpAtStart:       SettingsWithEnd,
		OpAtEnd:         SettingsWithStart,
	})

	table = [numStates]edges{
		Alternation: merge(contextEdges, edges{
			OpOr:               Alternation,
			OpOccurs:           Context,
			OpOccursAtLeast:    Context,
			OpOccursBetween:    Context,
			OpOccursOnceOrMore: LazyContext,
			OpOccursZeroOrMore: LazyContext,
			OpDoesNotOccur:     Anchor,
		}),
		Context:     contextEdges,
		LazyContext: merge(contextEdges, edges{OpGreedy: Context}),
		ContextNoEnd: merge(settingsEdges, edges{
			OpFollowedBy:    ContextNoEnd,
			OpNotFollowedBy: ContextNoEnd,
			OpPrecededBy:    ContextNoAnchor,
			OpNotPrecededBy: ContextNoAnchor,
			OpAtStart:       Settings,
		}),
		ContextNoStart: merge(settingsEdges, edges{
			OpFollowedBy:    ContextNoAnchor,
			OpNotFollowedBy: ContextNoAnchor,
			OpPrecededBy:    ContextNoStart,
			OpNotPrecededBy: ContextNoStart,
			OpAtEnd:         Settings,
		}),
		ContextNoAnchor: merge(settingsEdges, edges{
			OpFollowedBy:    ContextNoAnchor,
			OpNotFollowedBy: ContextNoAnchor,
			OpPrecededBy:    ContextNoAnchor,
			OpNotPrecededBy: ContextNoAnchor,
		}),
		Anchor:            {OpAtStart: EndAnchor, OpAtEnd: StartAnchor},
		StartAnchor:       {OpAtStart: Final},
		EndAnchor:         {OpAtEnd: Final},
		SettingsWithEnd:   merge(settingsEdges, edges{OpAtEnd: Settings}),
		SettingsWithStart: merge(settingsEdges, edges{OpAtStart: Settings}),
		Settings:          settingsEdges,
		Optional:          {OpIsCaptured: Final},
		Captured:          {OpIsOptional: Final, OpIsVariable: Variable},
		Variable:          {OpIsOptional: Final},
		Final:             {},
	}

	offered [numStates]*sparse.Set
)

func init() {
	for s := range table {
		set := sparse.NewSet(uint32(numOps))
		// insert in Op order so Offered is deterministic
		for op := Op(0); op < numOps; op++ {
			if _, ok := table[s][op]; ok {
				set.Insert(uint32(op))
			}
		}
		offered[s] = set
	}
}

// Next returns the state reached by applying op in s.
// ok is false when s does not offer op.
func Next(s State, op Op) (next State, ok bool) {
	if int(s) >= NumStates {
		return Final, false
	}
	next, ok = table[s][op]
	return next, ok
}

// Allows reports whether s offers op.
func Allows(s State, op Op) bool {
	_, ok := Next(s, op)
	return ok
}

// Offered returns the set of operations s offers.
// The returned set is shared and must not be modified.
func Offered(s State) *sparse.Set {
	if int(s) >= NumStates {
		return offered[Final]
	}
	return offered[s]
}

// Ops returns the operations s offers in Op order.
func Ops(s State) []Op {
	set := Offered(s)
	out := make([]Op, 0, set.Len())
	for _, v := range set.Values() {
		out = append(out, Op(v))
	}
	return out
}

// States returns every state in declaration order.
func States() []State {
	out := make([]State, NumStates)
	for i := range out {
		out[i] = State(i)
	}
	return out
}
