package regexfa

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// DFA is a deterministic automaton whose states are identified by Label.
// The transition map is partial: a missing (state, symbol) entry leads to an
// implicit dead state.
type DFA struct {
	States      []Label
	Alphabet    Alphabet
	Transitions []Transition
	Start       []int
	Final       []int

	index *HashMap[int]
	delta map[moveKey]int
}

func NewDFA(alphabet Alphabet) *DFA {
	return &DFA{
		Alphabet: alphabet,
		index:    NewHashMap[int](WithCapacity(16)),
		delta:    make(map[moveKey]int),
	}
}

// AddState appends a state named l. Names must be unique.
func (d *DFA) AddState(l Label) (int, error) {
	if _, ok := d.index.Get(l); ok {
		return -1, schemaErrorf("states", "duplicate state %s", l)
	}
	s := len(d.States)
	d.States = append(d.States, l)
	d.index.Set(l, s)
	return s, nil
}

// IndexOf returns the state named l.
func (d *DFA) IndexOf(l Label) (int, bool) {
	return d.index.Get(l)
}

// AddTransition records an edge. Step keeps the first destination seen for
// each (state, symbol); Validate rejects conflicting ones.
func (d *DFA) AddTransition(from int, symbol rune, to int) {
	d.Transitions = append(d.Transitions, Transition{From: from, Symbol: symbol, To: to})
	k := moveKey{state: from, symbol: symbol}
	if _, ok := d.delta[k]; !ok {
		d.delta[k] = to
	}
}

// Step returns the destination of state on symbol, or false for the
// implicit dead state.
func (d *DFA) Step(state int, symbol rune) (int, bool) {
	to, ok := d.delta[moveKey{state: state, symbol: symbol}]
	return to, ok
}

func (d *DFA) IsFinal(state int) bool {
	return slices.Contains(d.Final, state)
}

func (d *DFA) NumStates() int {
	return len(d.States)
}

func (d *DFA) finalBits() *bitset.BitSet {
	b := bitset.New(uint(len(d.States)))
	for _, s := range d.Final {
		b.Set(uint(s))
	}
	return b
}

// Validate checks state references and symbols, and that no (state, symbol)
// pair has two different destinations. Unlike an NFA, a DFA only moves on
// Epsilon when its alphabet lists it.
func (d *DFA) Validate() error {
	n := len(d.States)
	inRange := func(s int) bool { return s >= 0 && s < n }
	seen := make(map[moveKey]int, len(d.Transitions))
	for i, t := range d.Transitions {
		if !inRange(t.From) || !inRange(t.To) {
			return schemaErrorf("transition_matrix", "entry %d references unknown state", i)
		}
		if !d.Alphabet.Contains(t.Symbol) {
			return schemaErrorf("transition_matrix", "entry %d uses symbol %q outside the alphabet", i, t.Symbol)
		}
		k := moveKey{state: t.From, symbol: t.Symbol}
		if to, ok := seen[k]; ok && to != t.To {
			return schemaErrorf("transition_matrix", "state %s has two destinations on %q", d.States[t.From], t.Symbol)
		}
		seen[k] = t.To
	}
	for _, s := range d.Start {
		if !inRange(s) {
			return schemaErrorf("start_states", "unknown state %d", s)
		}
	}
	for _, s := range d.Final {
		if !inRange(s) {
			return schemaErrorf("final_states", "unknown state %d", s)
		}
	}
	return nil
}
