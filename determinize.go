package regexfa

import (
	"github.com/bits-and-blooms/bitset"
)

// Determinize converts a into a DFA by subset construction.
//
// By default every one of the 2^N subsets of the N NFA states becomes a DFA
// state, the empty subset included, and every (subset, symbol) transition is
// recorded even when it leads to the empty subset. Epsilon is treated as an
// ordinary symbol. State i of the result is the subset whose bit mask is i.
//
// WithEpsilonClosure and WithReachableOnly switch to the textbook behaviour.
// Worst case complexity: exponential in the number of NFA states.
func Determinize(a *NFA, opts ...Option) (*DFA, error) {
	o := newOptions(opts...)
	if err := a.Validate(); err != nil {
		return nil, err
	}

	alphabet := a.Alphabet
	if o.epsilonClosure {
		alphabet = alphabet.Without(Epsilon)
	} else if a.HasEpsilon() {
		alphabet = alphabet.With(Epsilon)
	}

	c := &subsetConstruction{
		nfa:      a,
		alphabet: alphabet,
		moves:    a.moves(),
		finals:   a.finalBits(),
		closure:  o.epsilonClosure,
	}

	mode := "powerset"
	var (
		d   *DFA
		err error
	)
	if o.reachableOnly {
		mode = "reachable"
		d, err = c.reachable()
	} else {
		if o.hardLimit > 0 && a.NumStates > o.hardLimit {
			return nil, &ScaleLimitError{States: a.NumStates, Limit: o.hardLimit}
		}
		if a.NumStates > maxPowersetStates {
			return nil, &ScaleLimitError{States: a.NumStates, Limit: maxPowersetStates}
		}
		if a.NumStates > o.softLimit {
			o.logger.Warn("powerset enumeration beyond practical size",
				"nfa_states", a.NumStates, "soft_limit", o.softLimit)
		}
		d, err = c.powerset()
	}
	if err != nil {
		return nil, err
	}

	o.logger.Debug("subset construction finished",
		"mode", mode,
		"epsilon_closure", o.epsilonClosure,
		"nfa_states", a.NumStates,
		"dfa_states", len(d.States),
		"transitions", len(d.Transitions))
	return d, nil
}

// State numbers of a full powerset are bit masks held in an int.
const maxPowersetStates = 62

type subsetConstruction struct {
	nfa      *NFA
	alphabet Alphabet
	moves    map[moveKey]*bitset.BitSet
	finals   *bitset.BitSet
	closure  bool
}

// close extends set in place with everything reachable through epsilon
// moves when closure is enabled.
func (c *subsetConstruction) close(set *bitset.BitSet) *bitset.BitSet {
	if !c.closure {
		return set
	}
	work := make([]uint, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		work = append(work, i)
	}
	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]
		next, ok := c.moves[moveKey{state: int(s), symbol: Epsilon}]
		if !ok {
			continue
		}
		for t, ok := next.NextSet(0); ok; t, ok = next.NextSet(t + 1) {
			if !set.Test(t) {
				set.Set(t)
				work = append(work, t)
			}
		}
	}
	return set
}

// step unions the moves of every member of set on symbol.
func (c *subsetConstruction) step(set *bitset.BitSet, symbol rune) *bitset.BitSet {
	dest := bitset.New(uint(c.nfa.NumStates))
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		if next, ok := c.moves[moveKey{state: int(s), symbol: symbol}]; ok {
			dest.InPlaceUnion(next)
		}
	}
	return c.close(dest)
}

func (c *subsetConstruction) startSet() *bitset.BitSet {
	start := bitset.New(uint(c.nfa.NumStates))
	for _, s := range c.nfa.Start {
		start.Set(uint(s))
	}
	return c.close(start)
}

func (c *subsetConstruction) label(set IntSet) Label {
	members := make([]Label, 0, set.Size())
	for _, s := range set.Values() {
		members = append(members, c.nfa.Label(s))
	}
	return Set(members...)
}

func mask(set *bitset.BitSet) int {
	m := 0
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		m |= 1 << s
	}
	return m
}

func (c *subsetConstruction) powerset() (*DFA, error) {
	n := c.nfa.NumStates
	total := 1 << n
	d := NewDFA(c.alphabet)

	subsets := make([]*bitset.BitSet, total)
	for idx := 0; idx < total; idx++ {
		set := bitset.New(uint(n))
		for pos := 0; pos < n; pos++ {
			if (idx>>pos)&1 == 1 {
				set.Set(uint(pos))
			}
		}
		subsets[idx] = set
		if _, err := d.AddState(c.label(IntSetFromBits(set))); err != nil {
			return nil, err
		}
	}

	d.Start = []int{mask(c.startSet())}

	for idx, set := range subsets {
		for _, symbol := range c.alphabet {
			d.AddTransition(idx, symbol, mask(c.step(set, symbol)))
		}
	}

	for idx, set := range subsets {
		if set.IntersectionCardinality(c.finals) > 0 {
			d.Final = append(d.Final, idx)
		}
	}
	return d, nil
}

// reachable discovers subsets breadth first from the start set. States are
// numbered in discovery order.
func (c *subsetConstruction) reachable() (*DFA, error) {
	d := NewDFA(c.alphabet)
	known := NewHashMap[int](WithCapacity(16))

	worklist := make([]IntSet, 0)
	add := func(set *bitset.BitSet) (int, error) {
		key := IntSetFromBits(set)
		if s, ok := known.Get(key); ok {
			return s, nil
		}
		s, err := d.AddState(c.label(key))
		if err != nil {
			return -1, err
		}
		known.Set(key, s)
		worklist = append(worklist, key)
		if set.IntersectionCardinality(c.finals) > 0 {
			d.Final = append(d.Final, s)
		}
		return s, nil
	}

	start, err := add(c.startSet())
	if err != nil {
		return nil, err
	}
	d.Start = []int{start}

	for len(worklist) > 0 {
		key := worklist[0]
		worklist = worklist[1:]
		from, _ := known.Get(key)
		set := key.Bits()
		for _, symbol := range c.alphabet {
			to, err := add(c.step(set, symbol))
			if err != nil {
				return nil, err
			}
			d.AddTransition(from, symbol, to)
		}
	}
	return d, nil
}
