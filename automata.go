package regexfa

// MakeSymbol returns the two-state automaton accepting exactly c.
func MakeSymbol(c rune, alphabet Alphabet) *NFA {
	a := NewNFA(alphabet)
	s0 := a.CreateState()
	s1 := a.CreateState()
	a.AddTransition(s0, c, s1)
	a.Start = []int{s0}
	a.Final = []int{s1}
	return a
}

// MakeEmptyLanguage returns a two-state automaton without edges; it accepts
// nothing.
func MakeEmptyLanguage(alphabet Alphabet) *NFA {
	a := NewNFA(alphabet)
	s0 := a.CreateState()
	s1 := a.CreateState()
	a.Start = []int{s0}
	a.Final = []int{s1}
	return a
}
