package regexfa

import (
	"errors"

	"golang.org/x/text/unicode/norm"
)

// Operator precedence; higher binds tighter. Anything else, including '(',
// has precedence 1.
var precedence = map[rune]int{
	opStar:   4,
	opConcat: 3,
	opUnion:  2,
}

func precedenceOf(r rune) int {
	if p, ok := precedence[r]; ok {
		return p
	}
	return 1
}

// Tokenize splits src into runes after NFC normalization. Only operands and
// the operators + . * ( ) are accepted.
func Tokenize(src string) ([]rune, error) {
	tokens := []rune(norm.NFC.String(src))
	for i, r := range tokens {
		if !IsOperand(r) && !isOperator(r) {
			return nil, &SyntaxError{Expr: string(tokens), Pos: i, Char: r, Msg: "unexpected character"}
		}
	}
	return tokens, nil
}

func canEnd(r rune) bool {
	return IsOperand(r) || r == rparen || r == opStar
}

func canStart(r rune) bool {
	return IsOperand(r) || r == lparen
}

// InsertConcatenation makes concatenation explicit: ab becomes a.b and
// (a+b)c becomes (a+b).c.
func InsertConcatenation(tokens []rune) []rune {
	out, _ := insertConcatenation(tokens)
	return out
}

// insertConcatenation also returns, for each output rune, its position in
// tokens. An inserted operator takes the position of the operand after it.
func insertConcatenation(tokens []rune) ([]rune, []int) {
	out := make([]rune, 0, 2*len(tokens))
	at := make([]int, 0, 2*len(tokens))
	for i, r := range tokens {
		out = append(out, r)
		at = append(at, i)
		if i+1 < len(tokens) && canEnd(r) && canStart(tokens[i+1]) {
			out = append(out, opConcat)
			at = append(at, i+1)
		}
	}
	return out, at
}

// ToPostfix converts an explicit-concatenation token stream to postfix with
// the shunting-yard algorithm. Operators of equal precedence associate left.
// Operators missing an operand, operands missing an operator, empty groups
// and unbalanced parentheses are reported as *SyntaxError.
func ToPostfix(tokens []rune) ([]rune, error) {
	postfix := make([]rune, 0, len(tokens))
	stack := make([]rune, 0)
	opened := make([]int, 0)
	syntaxError := func(pos int, msg string) error {
		return &SyntaxError{Expr: string(tokens), Pos: pos, Char: tokens[pos], Msg: msg}
	}

	// operand is true while the next token must start an operand.
	operand := true
	for i, c := range tokens {
		switch {
		case IsOperand(c):
			if !operand {
				return nil, syntaxError(i, "missing operator before")
			}
			postfix = append(postfix, c)
			operand = false
		case c == lparen:
			if !operand {
				return nil, syntaxError(i, "missing operator before")
			}
			stack = append(stack, c)
			opened = append(opened, i)
		case c == rparen:
			if len(opened) == 0 {
				return nil, syntaxError(i, "unmatched")
			}
			if operand {
				return nil, syntaxError(i, "missing operand before")
			}
			for {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top == lparen {
					opened = opened[:len(opened)-1]
					break
				}
				postfix = append(postfix, top)
			}
		default:
			if operand {
				return nil, syntaxError(i, "missing operand for")
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top == lparen || precedenceOf(top) < precedenceOf(c) {
					break
				}
				postfix = append(postfix, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, c)
			operand = c != opStar
		}
	}

	if len(opened) > 0 {
		return nil, syntaxError(opened[0], "unmatched")
	}
	if operand {
		if len(tokens) == 0 {
			return nil, &SyntaxError{Msg: "empty expression"}
		}
		return nil, syntaxError(len(tokens)-1, "missing operand after")
	}
	for len(stack) > 0 {
		postfix = append(postfix, stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}
	return postfix, nil
}

// Parse tokenizes src and returns its postfix form together with the
// alphabet of operands in first-occurrence order. EmptyLanguage is not part
// of any alphabet.
func Parse(src string) ([]rune, Alphabet, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, nil, err
	}

	var alphabet Alphabet
	for _, r := range tokens {
		if IsOperand(r) && r != EmptyLanguage {
			alphabet = alphabet.With(r)
		}
	}

	explicit, at := insertConcatenation(tokens)
	postfix, err := ToPostfix(explicit)
	if err != nil {
		var se *SyntaxError
		if errors.As(err, &se) && se.Pos < len(at) {
			se.Expr = string(tokens)
			se.Pos = at[se.Pos]
		}
		return nil, nil, err
	}
	return postfix, alphabet, nil
}
