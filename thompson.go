package regexfa

import "fmt"

// Build runs the Thompson stack machine over a postfix token stream.
// Operands become two-state fragments; * . + pop one or two fragments and
// push the combination. Exactly one automaton must remain.
//
// When the result has epsilon moves, Epsilon is added to its alphabet so
// that subset construction sees it as a symbol.
func Build(postfix []rune, alphabet Alphabet) (*NFA, error) {
	stack := make([]*NFA, 0)
	pop := func(i int, c rune) (*NFA, error) {
		if len(stack) == 0 {
			return nil, fmt.Errorf("%w: operator %q at %d is missing an operand", ErrStructural, c, i)
		}
		a := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return a, nil
	}

	for i, c := range postfix {
		switch {
		case c == EmptyLanguage:
			stack = append(stack, MakeEmptyLanguage(alphabet))
		case IsOperand(c):
			stack = append(stack, MakeSymbol(c, alphabet))
		case c == opStar:
			a, err := pop(i, c)
			if err != nil {
				return nil, err
			}
			stack = append(stack, Star(a))
		case c == opUnion, c == opConcat:
			a2, err := pop(i, c)
			if err != nil {
				return nil, err
			}
			a1, err := pop(i, c)
			if err != nil {
				return nil, err
			}
			if c == opUnion {
				stack = append(stack, Union(a1, a2))
			} else {
				stack = append(stack, Concatenate(a1, a2))
			}
		default:
			return nil, fmt.Errorf("%w: unexpected token %q at %d", ErrStructural, c, i)
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: %d automata left on the stack", ErrStructural, len(stack))
	}

	a := stack[0]
	if a.HasEpsilon() {
		a.Alphabet = a.Alphabet.With(Epsilon)
	}
	return a, nil
}

// ToNFA parses src and builds its Thompson automaton.
func ToNFA(src string) (*NFA, error) {
	postfix, alphabet, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return Build(postfix, alphabet)
}
