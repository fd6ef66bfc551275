package regexfa

import (
	"slices"
	"strings"
	"unicode"
)

const (
	// Epsilon labels an empty-string transition. In a regex it is an operand
	// matching the empty string.
	Epsilon = '$'

	// EmptyLanguage labels a GNFA edge that carries no string. It is never
	// the symbol of a real transition.
	EmptyLanguage = 'ϕ'

	opUnion  = '+'
	opConcat = '.'
	opStar   = '*'
	lparen   = '('
	rparen   = ')'
)

var emptyLanguage = string(EmptyLanguage)

// IsOperand reports whether r stands for itself in a regex: a letter, a
// digit, Epsilon or EmptyLanguage.
func IsOperand(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == Epsilon || r == EmptyLanguage
}

func isOperator(r rune) bool {
	switch r {
	case opUnion, opConcat, opStar, lparen, rparen:
		return true
	}
	return false
}

// Alphabet is an ordered list of input symbols without duplicates.
type Alphabet []rune

func (a Alphabet) Contains(r rune) bool {
	return slices.Contains(a, r)
}

// With returns the alphabet with r appended, or a itself when r is already present.
func (a Alphabet) With(r rune) Alphabet {
	if a.Contains(r) {
		return a
	}
	out := make(Alphabet, len(a), len(a)+1)
	copy(out, a)
	return append(out, r)
}

// Without returns a copy of the alphabet with r removed.
func (a Alphabet) Without(r rune) Alphabet {
	out := make(Alphabet, 0, len(a))
	for _, s := range a {
		if s != r {
			out = append(out, s)
		}
	}
	return out
}

func (a Alphabet) String() string {
	parts := make([]string, len(a))
	for i, r := range a {
		parts[i] = string(r)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
