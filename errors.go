package regexfa

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is returned for a malformed regex.
	ErrSyntax = errors.New("regex syntax error")
	// ErrStructural is returned when a postfix expression does not reduce to
	// exactly one automaton.
	ErrStructural = errors.New("malformed postfix expression")
	// ErrSchema is returned when automaton data is inconsistent.
	ErrSchema = errors.New("automaton schema error")
	// ErrScaleLimit is returned when a powerset would exceed the hard state limit.
	ErrScaleLimit = errors.New("state limit exceeded")
)

// SyntaxError locates a problem in the normalized regex Expr.
type SyntaxError struct {
	Expr string
	Pos  int
	Char rune
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Char == 0 {
		return fmt.Sprintf("%s: %s", ErrSyntax, e.Msg)
	}
	return fmt.Sprintf("%s: %s %q at position %d in %q", ErrSyntax, e.Msg, e.Char, e.Pos, e.Expr)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// SchemaError names the offending field of an automaton description.
type SchemaError struct {
	Field string
	Msg   string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrSchema, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", ErrSchema, e.Field, e.Msg)
}

func (e *SchemaError) Unwrap() error {
	return ErrSchema
}

func schemaErrorf(field, format string, args ...any) error {
	return &SchemaError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// ScaleLimitError reports an NFA too large for full powerset enumeration.
type ScaleLimitError struct {
	States int
	Limit  int
}

func (e *ScaleLimitError) Error() string {
	return fmt.Sprintf("%s: powerset of %d nfa states exceeds limit of %d", ErrScaleLimit, e.States, e.Limit)
}

func (e *ScaleLimitError) Unwrap() error {
	return ErrScaleLimit
}
