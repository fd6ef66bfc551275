package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geange/regexfa"
	"github.com/geange/regexfa/internal/cli"
	"github.com/geange/regexfa/internal/config"
	"github.com/geange/regexfa/internal/schema"
)

func run(t *testing.T, name string, transform cli.Transform, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := cli.Main(name, args, &stdout, &stderr, transform)
	return code, stdout.String(), stderr.String()
}

func TestUsage(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	for _, args := range [][]string{nil, {"in.json"}, {"in.json", "out.json", "extra"}} {
		t.Run(fmt.Sprint(len(args)), func(t *testing.T) {
			code, stdout, _ := run(t, "regex2nfa", cli.RegexToNFA, args...)
			assert.Equal(t, cli.ExitUsage, code)
			assert.Equal(t, "incorrect input\nInput format: regex2nfa <input_file> <output_file>\n", stdout)
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPipeline(t *testing.T) {
	for _, f := range []string{"json", "yaml"} {
		t.Run(f, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)
			path := func(name string) string { return filepath.Join(dir, name+"."+f) }

			require.NoError(t, schema.WriteFile(path("regex"), schema.NewRegexDoc("(a+b)*a"), 4))

			steps := []struct {
				name      string
				transform cli.Transform
				in, out   string
			}{
				{"regex2nfa", cli.RegexToNFA, "regex", "nfa"},
				{"nfa2dfa", cli.NFAToDFA, "nfa", "dfa"},
				{"minimizedfa", cli.MinimizeDFA, "dfa", "min"},
				{"dfa2regex", cli.DFAToRegex, "min", "back"},
			}
			for _, s := range steps {
				code, _, stderr := run(t, s.name, s.transform, path(s.in), path(s.out))
				require.Equal(t, cli.ExitOK, code, stderr)
			}

			var nfaDoc schema.AutomatonDoc
			require.NoError(t, schema.ReadFile(path("nfa"), &nfaDoc))
			assert.Len(t, *nfaDoc.States, 8)

			var dfaDoc schema.AutomatonDoc
			require.NoError(t, schema.ReadFile(path("dfa"), &dfaDoc))
			assert.Len(t, *dfaDoc.States, 256)

			var doc schema.RegexDoc
			require.NoError(t, schema.ReadFile(path("back"), &doc))
			re, err := schema.RegexFromDoc(doc)
			require.NoError(t, err)

			for _, w := range []string{"a", "ba", "aba", "bba"} {
				ok, err := regexfa.Matches(re, w)
				require.NoError(t, err)
				assert.True(t, ok, w)
			}
			for _, w := range []string{"", "b", "ab"} {
				ok, err := regexfa.Matches(re, w)
				require.NoError(t, err)
				assert.False(t, ok, w)
			}
		})
	}
}

func TestEpsilonClosureFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("REGEXFA_EPSILON_CLOSURE", "true")

	in, out := filepath.Join(dir, "nfa.json"), filepath.Join(dir, "dfa.json")
	a, err := regexfa.ToNFA("a*")
	require.NoError(t, err)
	require.NoError(t, schema.WriteFile(in, schema.NFAToDoc(a), 4))

	code, _, stderr := run(t, "nfa2dfa", cli.NFAToDFA, in, out)
	require.Equal(t, cli.ExitOK, code, stderr)

	var doc schema.AutomatonDoc
	require.NoError(t, schema.ReadFile(out, &doc))
	assert.Equal(t, []string{"a"}, *doc.Letters)
}

func TestFailures(t *testing.T) {
	t.Run("syntax", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		in, out := filepath.Join(dir, "regex.json"), filepath.Join(dir, "nfa.json")
		require.NoError(t, os.WriteFile(in, []byte(`{"regex": "(a+b"}`), 0o644))

		code, _, stderr := run(t, "regex2nfa", cli.RegexToNFA, in, out)
		assert.Equal(t, cli.ExitError, code)
		assert.Contains(t, stderr, "class=syntax")
		assert.Contains(t, stderr, "cmd=regex2nfa")
		assert.Contains(t, stderr, "run_id=")
		assert.NoFileExists(t, out)
	})

	t.Run("scale", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		t.Setenv("REGEXFA_HARD_STATE_LIMIT", "3")
		in, out := filepath.Join(dir, "nfa.json"), filepath.Join(dir, "dfa.json")
		a, err := regexfa.ToNFA("ab")
		require.NoError(t, err)
		require.NoError(t, schema.WriteFile(in, schema.NFAToDoc(a), 4))

		code, _, stderr := run(t, "nfa2dfa", cli.NFAToDFA, in, out)
		assert.Equal(t, cli.ExitError, code)
		assert.Contains(t, stderr, "class=scale")
		assert.NoFileExists(t, out)
	})

	t.Run("schema", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		in, out := filepath.Join(dir, "dfa.json"), filepath.Join(dir, "min.json")
		require.NoError(t, os.WriteFile(in, []byte(`{"states": ["A"]}`), 0o644))

		code, _, stderr := run(t, "minimizedfa", cli.MinimizeDFA, in, out)
		assert.Equal(t, cli.ExitError, code)
		assert.Contains(t, stderr, "class=schema")
		assert.NoFileExists(t, out)
	})

	t.Run("io", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		code, _, stderr := run(t, "dfa2regex", cli.DFAToRegex, filepath.Join(dir, "absent.json"), filepath.Join(dir, "out.json"))
		assert.Equal(t, cli.ExitError, code)
		assert.Contains(t, stderr, "class=io")
	})

	t.Run("config", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		t.Setenv("REGEXFA_LOG_FORMAT", "xml")
		code, _, stderr := run(t, "dfa2regex", cli.DFAToRegex, "in.json", "out.json")
		assert.Equal(t, cli.ExitError, code)
		assert.Contains(t, stderr, "class=config")
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "none"},
		{&regexfa.SyntaxError{Msg: "unmatched"}, "syntax"},
		{fmt.Errorf("build: %w", regexfa.ErrStructural), "structural"},
		{&regexfa.SchemaError{Field: "states"}, "schema"},
		{&regexfa.ScaleLimitError{States: 30, Limit: 26}, "scale"},
		{errors.Join(config.ErrParsingConfig, errors.New("bad int")), "config"},
		{&os.PathError{Op: "open", Path: "x", Err: os.ErrNotExist}, "io"},
		{errors.New("other"), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.Classify(tt.err))
		})
	}
}
