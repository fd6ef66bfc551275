package cli

import (
	"log/slog"

	"github.com/geange/regexfa"
	"github.com/geange/regexfa/internal/config"
	"github.com/geange/regexfa/internal/schema"
)

// RegexToNFA reads a regex document and writes its Thompson NFA.
func RegexToNFA(input, output string, cfg config.Config, log *slog.Logger) error {
	var doc schema.RegexDoc
	if err := schema.ReadFile(input, &doc); err != nil {
		return err
	}
	src, err := schema.RegexFromDoc(doc)
	if err != nil {
		return err
	}
	a, err := regexfa.ToNFA(src)
	if err != nil {
		return err
	}
	log.Debug("nfa built", "states", a.NumStates, "transitions", len(a.Transitions), "letters", a.Alphabet.String())
	return schema.WriteFile(output, schema.NFAToDoc(a), cfg.Indent)
}

// NFAToDFA reads an NFA document and writes its subset construction.
func NFAToDFA(input, output string, cfg config.Config, log *slog.Logger) error {
	var doc schema.AutomatonDoc
	if err := schema.ReadFile(input, &doc); err != nil {
		return err
	}
	a, err := schema.NFAFromDoc(doc)
	if err != nil {
		return err
	}
	d, err := regexfa.Determinize(a, cfg.Options(log)...)
	if err != nil {
		return err
	}
	return schema.WriteFile(output, schema.DFAToDoc(d), cfg.Indent)
}

// MinimizeDFA reads a DFA document and writes its minimal DFA.
func MinimizeDFA(input, output string, cfg config.Config, log *slog.Logger) error {
	var doc schema.AutomatonDoc
	if err := schema.ReadFile(input, &doc); err != nil {
		return err
	}
	d, err := schema.DFAFromDoc(doc)
	if err != nil {
		return err
	}
	m, err := regexfa.Minimize(d, cfg.Options(log)...)
	if err != nil {
		return err
	}
	return schema.WriteFile(output, schema.DFAToDoc(m), cfg.Indent)
}

// DFAToRegex reads a DFA document and writes a regex for its language.
func DFAToRegex(input, output string, cfg config.Config, log *slog.Logger) error {
	var doc schema.AutomatonDoc
	if err := schema.ReadFile(input, &doc); err != nil {
		return err
	}
	d, err := schema.DFAFromDoc(doc)
	if err != nil {
		return err
	}
	re, err := regexfa.ToRegex(d, cfg.Options(log)...)
	if err != nil {
		return err
	}
	return schema.WriteFile(output, schema.NewRegexDoc(re), cfg.Indent)
}
