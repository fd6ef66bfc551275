package regexfa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertConcatenation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ab", "a.b"},
		{"a*b", "a*.b"},
		{"(a+b)c", "(a+b).c"},
		{"(a)(b)", "(a).(b)"},
		{"a$", "a.$"},
		{"a+b", "a+b"},
		{"a.b", "a.b"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, string(InsertConcatenation([]rune(tt.in))))
		})
	}
}

func TestToPostfix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a.b", "ab."},
		{"a+b", "ab+"},
		{"a.b.c", "ab.c."},
		{"a+b.c", "abc.+"},
		{"(a+b)*.a", "ab+*a."},
		{"a*.b", "a*b."},
		{"((a))", "a"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ToPostfix([]rune(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestParse(t *testing.T) {
	postfix, alphabet, err := Parse("(b+a)*a$")
	require.NoError(t, err)
	assert.Equal(t, "ba+*a.$.", string(postfix))
	assert.Equal(t, Alphabet{'b', 'a', '$'}, alphabet)

	t.Run("empty language is not a symbol", func(t *testing.T) {
		_, alphabet, err := Parse("ϕ")
		require.NoError(t, err)
		assert.Empty(t, alphabet)
	})
}

func TestToPostfixArity(t *testing.T) {
	tests := []struct {
		in  string
		pos int
	}{
		{"ab", 1},
		{"a(b)", 1},
		{"a.", 1},
		{".a", 0},
		{"(a)b", 3},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ToPostfix([]rune(tt.in))
			var se *SyntaxError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.pos, se.Pos)
		})
	}

	t.Run("empty expression", func(t *testing.T) {
		_, _, err := Parse("")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrSyntax))
		assert.Equal(t, "regex syntax error: empty expression", err.Error())
	})
}

func TestParseSyntaxError(t *testing.T) {
	tests := []struct {
		name string
		in   string
		pos  int
		char rune
	}{
		{"unmatched close", "a)", 1, ')'},
		{"unmatched close after group", "(a))", 3, ')'},
		{"unmatched open", "(a", 0, '('},
		{"unknown operator", "a-b", 1, '-'},
		{"whitespace", " a", 0, ' '},
		{"unmatched close after concatenation", "ab)", 2, ')'},
		{"trailing union", "a+", 1, '+'},
		{"leading union", "+a", 0, '+'},
		{"empty group", "()", 1, ')'},
		{"leading star", "*a", 0, '*'},
		{"union after open", "(+b)", 1, '+'},
		{"double concatenation", "a..b", 2, '.'},
		{"union before close", "(a+)", 3, ')'},
		{"star after union", "a+*", 2, '*'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSyntax))

			var se *SyntaxError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.pos, se.Pos)
			assert.Equal(t, tt.char, se.Char)
		})
	}
}
