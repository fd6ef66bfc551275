// Package regexfa converts between regular expressions and finite automata:
// Thompson construction, subset construction, Myhill-Nerode minimization and
// state elimination.
package regexfa

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Transition is one (from, symbol, to) edge. From and To index the states of
// the owning automaton.
type Transition struct {
	From   int
	Symbol rune
	To     int
}

// NFA is a nondeterministic automaton over the states [0, NumStates).
// Transitions form a multigraph and may carry Epsilon. Start and Final keep
// the order in which they were assigned.
type NFA struct {
	NumStates   int
	Alphabet    Alphabet
	Transitions []Transition
	Start       []int
	Final       []int

	// Labels optionally names each state; Label falls back to Q<i>.
	Labels []Label
}

func NewNFA(alphabet Alphabet) *NFA {
	return &NFA{Alphabet: alphabet}
}

// CreateState adds a state and returns its number.
func (a *NFA) CreateState() int {
	s := a.NumStates
	a.NumStates++
	if a.Labels != nil {
		a.Labels = append(a.Labels, stateName(s))
	}
	return s
}

func (a *NFA) AddTransition(from int, symbol rune, to int) {
	a.Transitions = append(a.Transitions, Transition{From: from, Symbol: symbol, To: to})
}

// Label returns the serialized name of state i.
func (a *NFA) Label(i int) Label {
	if i < len(a.Labels) {
		return a.Labels[i]
	}
	return stateName(i)
}

func (a *NFA) IsFinal(state int) bool {
	return slices.Contains(a.Final, state)
}

func (a *NFA) finalBits() *bitset.BitSet {
	b := bitset.New(uint(a.NumStates))
	for _, s := range a.Final {
		b.Set(uint(s))
	}
	return b
}

// HasEpsilon reports whether any transition is an epsilon move.
func (a *NFA) HasEpsilon() bool {
	for _, t := range a.Transitions {
		if t.Symbol == Epsilon {
			return true
		}
	}
	return false
}

type moveKey struct {
	state  int
	symbol rune
}

// moves indexes the transition relation by (state, symbol).
func (a *NFA) moves() map[moveKey]*bitset.BitSet {
	m := make(map[moveKey]*bitset.BitSet)
	for _, t := range a.Transitions {
		k := moveKey{state: t.From, symbol: t.Symbol}
		dest, ok := m[k]
		if !ok {
			dest = bitset.New(uint(a.NumStates))
			m[k] = dest
		}
		dest.Set(uint(t.To))
	}
	return m
}

// shift renumbers every state by delta.
func (a *NFA) shift(delta int) {
	for i := range a.Transitions {
		a.Transitions[i].From += delta
		a.Transitions[i].To += delta
	}
	for i := range a.Start {
		a.Start[i] += delta
	}
	for i := range a.Final {
		a.Final[i] += delta
	}
}

// Validate checks that every referenced state exists and every symbol is
// in the alphabet or is Epsilon.
func (a *NFA) Validate() error {
	if a.NumStates < 0 {
		return schemaErrorf("states", "negative state count %d", a.NumStates)
	}
	if a.Labels != nil && len(a.Labels) != a.NumStates {
		return schemaErrorf("states", "%d labels for %d states", len(a.Labels), a.NumStates)
	}
	inRange := func(s int) bool { return s >= 0 && s < a.NumStates }
	for i, t := range a.Transitions {
		if !inRange(t.From) || !inRange(t.To) {
			return schemaErrorf("transition_matrix", "entry %d references unknown state", i)
		}
		if t.Symbol != Epsilon && !a.Alphabet.Contains(t.Symbol) {
			return schemaErrorf("transition_matrix", "entry %d uses symbol %q outside the alphabet", i, t.Symbol)
		}
	}
	for _, s := range a.Start {
		if !inRange(s) {
			return schemaErrorf("start_states", "unknown state %d", s)
		}
	}
	for _, s := range a.Final {
		if !inRange(s) {
			return schemaErrorf("final_states", "unknown state %d", s)
		}
	}
	return nil
}
