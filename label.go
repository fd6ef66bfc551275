package regexfa

import (
	"strconv"
	"strings"
)

var _ Hashable = Label{}

// Label names a state at the serialization boundary. It is either an atom
// such as "Q3" or an ordered set of nested labels: subset construction names
// each DFA state by the NFA states it holds, minimization names each class by
// the DFA states it merged.
type Label struct {
	name    string
	members []Label
	isSet   bool
	key     string
}

func Atom(name string) Label {
	return Label{name: name, key: strconv.Quote(name)}
}

func Set(members ...Label) Label {
	keys := make([]string, len(members))
	for i, m := range members {
		keys[i] = m.Key()
	}
	return Label{
		members: append([]Label(nil), members...),
		isSet:   true,
		key:     "[" + strings.Join(keys, ",") + "]",
	}
}

// stateName is the atom given to NFA state i.
func stateName(i int) Label {
	return Atom("Q" + strconv.Itoa(i))
}

func (l Label) IsSet() bool {
	return l.isSet
}

// Name returns the atom text, or "" for a set.
func (l Label) Name() string {
	return l.name
}

// Members returns the members of a set label. The slice must not be modified.
func (l Label) Members() []Label {
	return l.members
}

// Key is a canonical encoding: equal labels have equal keys.
func (l Label) Key() string {
	return l.key
}

func (l Label) Hash() uint64 {
	return hashString(l.key)
}

func (l Label) Equals(other Hashable) bool {
	o, ok := other.(Label)
	return ok && l.key == o.key
}

func (l Label) String() string {
	if !l.isSet {
		return l.name
	}
	parts := make([]string, len(l.members))
	for i, m := range l.members {
		parts[i] = m.String()
	}
	return "{" + strings.Join(parts, ",") + "}"
}
