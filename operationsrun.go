package regexfa

import (
	"github.com/bits-and-blooms/bitset"
)

// RunNFA reports whether a accepts s. Epsilon moves are followed without
// consuming input.
func RunNFA(a *NFA, s string) bool {
	moves := a.moves()
	closure := func(set *bitset.BitSet) {
		work := make([]uint, 0, set.Count())
		for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
			work = append(work, i)
		}
		for len(work) > 0 {
			state := work[len(work)-1]
			work = work[:len(work)-1]
			next, ok := moves[moveKey{state: int(state), symbol: Epsilon}]
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
	}

	current := bitset.New(uint(a.NumStates))
	for _, st := range a.Start {
		current.Set(uint(st))
	}
	closure(current)

	for _, c := range s {
		if c == Epsilon {
			return false
		}
		next := bitset.New(uint(a.NumStates))
		for st, ok := current.NextSet(0); ok; st, ok = current.NextSet(st + 1) {
			if dest, ok := moves[moveKey{state: int(st), symbol: c}]; ok {
				next.InPlaceUnion(dest)
			}
		}
		closure(next)
		if next.None() {
			return false
		}
		current = next
	}
	return current.IntersectionCardinality(a.finalBits()) > 0
}

// RunDFA reports whether d accepts s. When the alphabet holds Epsilon its
// transitions are taken as empty moves, so a DFA built without epsilon
// closure accepts the language of its NFA.
func RunDFA(d *DFA, s string) bool {
	closure := func(set *bitset.BitSet) {
		if !d.Alphabet.Contains(Epsilon) {
			return
		}
		work := make([]int, 0, set.Count())
		for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
			work = append(work, int(i))
		}
		for len(work) > 0 {
			state := work[len(work)-1]
			work = work[:len(work)-1]
			if to, ok := d.Step(state, Epsilon); ok && !set.Test(uint(to)) {
				set.Set(uint(to))
				work = append(work, to)
			}
		}
	}

	current := bitset.New(uint(len(d.States)))
	for _, st := range d.Start {
		current.Set(uint(st))
	}
	closure(current)

	for _, c := range s {
		if c == Epsilon {
			return false
		}
		next := bitset.New(uint(len(d.States)))
		for st, ok := current.NextSet(0); ok; st, ok = current.NextSet(st + 1) {
			if to, ok := d.Step(int(st), c); ok {
				next.Set(uint(to))
			}
		}
		closure(next)
		if next.None() {
			return false
		}
		current = next
	}
	return current.IntersectionCardinality(d.finalBits()) > 0
}

// Matches reports whether regex matches s in full.
func Matches(regex, s string) (bool, error) {
	a, err := ToNFA(regex)
	if err != nil {
		return false, err
	}
	return RunNFA(a, s), nil
}
