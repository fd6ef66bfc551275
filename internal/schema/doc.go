// Package schema maps automata and regexes to the documents exchanged by the
// command line tools, and reads and writes those documents as JSON or YAML.
package schema

import (
	"fmt"
	"unicode/utf8"

	"github.com/geange/regexfa"
)

// RegexDoc holds a regex source.
type RegexDoc struct {
	Regex *string `json:"regex" yaml:"regex"`
}

// AutomatonDoc describes an NFA or a DFA. Every field is required; a nil
// field was absent from the input.
type AutomatonDoc struct {
	States           *[]State      `json:"states" yaml:"states"`
	Letters          *[]string     `json:"letters" yaml:"letters"`
	TransitionMatrix *[]Transition `json:"transition_matrix" yaml:"transition_matrix"`
	StartStates      *[]State      `json:"start_states" yaml:"start_states"`
	FinalStates      *[]State      `json:"final_states" yaml:"final_states"`
}

func schemaErrorf(field, format string, args ...any) error {
	return &regexfa.SchemaError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

func NewRegexDoc(regex string) RegexDoc {
	return RegexDoc{Regex: &regex}
}

// RegexFromDoc returns the regex source of doc.
func RegexFromDoc(doc RegexDoc) (string, error) {
	if doc.Regex == nil {
		return "", schemaErrorf("regex", "missing field")
	}
	return *doc.Regex, nil
}

func (doc AutomatonDoc) checkRequired() error {
	switch {
	case doc.States == nil:
		return schemaErrorf("states", "missing field")
	case doc.Letters == nil:
		return schemaErrorf("letters", "missing field")
	case doc.TransitionMatrix == nil:
		return schemaErrorf("transition_matrix", "missing field")
	case doc.StartStates == nil:
		return schemaErrorf("start_states", "missing field")
	case doc.FinalStates == nil:
		return schemaErrorf("final_states", "missing field")
	}
	return nil
}

func symbolOf(field, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, schemaErrorf(field, "symbol %q must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == regexfa.EmptyLanguage {
		return 0, schemaErrorf(field, "symbol %q is reserved", s)
	}
	return r, nil
}

func (doc AutomatonDoc) alphabet() (regexfa.Alphabet, error) {
	alphabet := make(regexfa.Alphabet, 0, len(*doc.Letters))
	for _, l := range *doc.Letters {
		r, err := symbolOf("letters", l)
		if err != nil {
			return nil, err
		}
		if alphabet.Contains(r) {
			return nil, schemaErrorf("letters", "duplicate letter %q", l)
		}
		alphabet = append(alphabet, r)
	}
	return alphabet, nil
}

// resolver maps state names to indices.
type resolver struct {
	index *regexfa.HashMap[int]
}

func newResolver(states []State) (*resolver, error) {
	r := &resolver{index: regexfa.NewHashMap[int](regexfa.WithCapacity(len(states)))}
	for i, s := range states {
		if _, ok := r.index.Get(s.Label); ok {
			return nil, schemaErrorf("states", "duplicate state %s", s)
		}
		r.index.Set(s.Label, i)
	}
	return r, nil
}

func (r *resolver) lookup(field string, s State) (int, error) {
	i, ok := r.index.Get(s.Label)
	if !ok {
		return -1, schemaErrorf(field, "unknown state %s", s)
	}
	return i, nil
}

func (r *resolver) lookupAll(field string, states []State) ([]int, error) {
	out := make([]int, 0, len(states))
	for _, s := range states {
		i, err := r.lookup(field, s)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}

func (r *resolver) transitions(doc AutomatonDoc) ([]regexfa.Transition, error) {
	out := make([]regexfa.Transition, 0, len(*doc.TransitionMatrix))
	for _, t := range *doc.TransitionMatrix {
		from, err := r.lookup("transition_matrix", t.From)
		if err != nil {
			return nil, err
		}
		to, err := r.lookup("transition_matrix", t.To)
		if err != nil {
			return nil, err
		}
		symbol, err := symbolOf("transition_matrix", t.Symbol)
		if err != nil {
			return nil, err
		}
		out = append(out, regexfa.Transition{From: from, Symbol: symbol, To: to})
	}
	return out, nil
}

// NFAFromDoc builds and validates the NFA described by doc. State names are
// kept as the NFA labels.
func NFAFromDoc(doc AutomatonDoc) (*regexfa.NFA, error) {
	if err := doc.checkRequired(); err != nil {
		return nil, err
	}
	alphabet, err := doc.alphabet()
	if err != nil {
		return nil, err
	}
	r, err := newResolver(*doc.States)
	if err != nil {
		return nil, err
	}

	a := regexfa.NewNFA(alphabet)
	a.NumStates = len(*doc.States)
	a.Labels = make([]regexfa.Label, a.NumStates)
	for i, s := range *doc.States {
		a.Labels[i] = s.Label
	}
	if a.Transitions, err = r.transitions(doc); err != nil {
		return nil, err
	}
	if a.Start, err = r.lookupAll("start_states", *doc.StartStates); err != nil {
		return nil, err
	}
	if a.Final, err = r.lookupAll("final_states", *doc.FinalStates); err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// DFAFromDoc builds and validates the DFA described by doc.
func DFAFromDoc(doc AutomatonDoc) (*regexfa.DFA, error) {
	if err := doc.checkRequired(); err != nil {
		return nil, err
	}
	alphabet, err := doc.alphabet()
	if err != nil {
		return nil, err
	}
	r, err := newResolver(*doc.States)
	if err != nil {
		return nil, err
	}

	d := regexfa.NewDFA(alphabet)
	for _, s := range *doc.States {
		if _, err := d.AddState(s.Label); err != nil {
			return nil, err
		}
	}
	transitions, err := r.transitions(doc)
	if err != nil {
		return nil, err
	}
	for _, t := range transitions {
		d.AddTransition(t.From, t.Symbol, t.To)
	}
	if d.Start, err = r.lookupAll("start_states", *doc.StartStates); err != nil {
		return nil, err
	}
	if d.Final, err = r.lookupAll("final_states", *doc.FinalStates); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func NFAToDoc(a *regexfa.NFA) AutomatonDoc {
	states := make([]State, a.NumStates)
	for i := range states {
		states[i] = State{Label: a.Label(i)}
	}
	name := func(s int) State { return states[s] }
	return newAutomatonDoc(states, a.Alphabet, a.Transitions, a.Start, a.Final, name)
}

func DFAToDoc(d *regexfa.DFA) AutomatonDoc {
	states := make([]State, len(d.States))
	for i, l := range d.States {
		states[i] = State{Label: l}
	}
	name := func(s int) State { return states[s] }
	return newAutomatonDoc(states, d.Alphabet, d.Transitions, d.Start, d.Final, name)
}

func newAutomatonDoc(states []State, alphabet regexfa.Alphabet, transitions []regexfa.Transition, start, final []int, name func(int) State) AutomatonDoc {
	letters := make([]string, len(alphabet))
	for i, r := range alphabet {
		letters[i] = string(r)
	}
	matrix := make([]Transition, len(transitions))
	for i, t := range transitions {
		matrix[i] = Transition{From: name(t.From), Symbol: string(t.Symbol), To: name(t.To)}
	}
	startStates := make([]State, len(start))
	for i, s := range start {
		startStates[i] = name(s)
	}
	finalStates := make([]State, len(final))
	for i, s := range final {
		finalStates[i] = name(s)
	}
	return AutomatonDoc{
		States:           &states,
		Letters:          &letters,
		TransitionMatrix: &matrix,
		StartStates:      &startStates,
		FinalStates:      &finalStates,
	}
}
