package regexfa

// Star applies Kleene closure in place. A single new state becomes both the
// only start and the only final state, with epsilon moves into every old
// start and out of every old final state.
func Star(a *NFA) *NFA {
	s := a.CreateState()
	for _, start := range a.Start {
		a.AddTransition(s, Epsilon, start)
	}
	for _, final := range a.Final {
		a.AddTransition(final, Epsilon, s)
	}
	a.Start = []int{s}
	a.Final = []int{s}
	return a
}

// Union combines a1 and a2 behind a new start state. The states of a2 are
// renumbered after those of a1; a2 is consumed.
func Union(a1, a2 *NFA) *NFA {
	a2.shift(a1.NumStates)

	result := NewNFA(a1.Alphabet)
	result.NumStates = a1.NumStates + a2.NumStates + 1
	s := result.NumStates - 1
	result.Start = []int{s}
	result.Final = append(append([]int{}, a1.Final...), a2.Final...)
	result.Transitions = make([]Transition, 0, len(a1.Transitions)+len(a2.Transitions)+len(a1.Start)+len(a2.Start))
	result.Transitions = append(result.Transitions, a1.Transitions...)
	result.Transitions = append(result.Transitions, a2.Transitions...)
	for _, start := range a1.Start {
		result.AddTransition(s, Epsilon, start)
	}
	for _, start := range a2.Start {
		result.AddTransition(s, Epsilon, start)
	}
	return result
}

// Concatenate links every final state of a1 to every start state of a2.
// The states of a2 are renumbered after those of a1; a2 is consumed.
func Concatenate(a1, a2 *NFA) *NFA {
	a2.shift(a1.NumStates)

	result := NewNFA(a1.Alphabet)
	result.NumStates = a1.NumStates + a2.NumStates
	result.Start = append([]int{}, a1.Start...)
	result.Final = append([]int{}, a2.Final...)
	result.Transitions = make([]Transition, 0, len(a1.Transitions)+len(a2.Transitions)+len(a1.Final)*len(a2.Start))
	result.Transitions = append(result.Transitions, a1.Transitions...)
	result.Transitions = append(result.Transitions, a2.Transitions...)
	for _, final := range a1.Final {
		for _, start := range a2.Start {
			result.AddTransition(final, Epsilon, start)
		}
	}
	return result
}
