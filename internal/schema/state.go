package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/geange/regexfa"
)

// State is a state name on the wire: a scalar for an atom, a list for a set.
// Numbers and booleans read as atoms holding their literal text.
type State struct {
	regexfa.Label
}

func (s State) MarshalJSON() ([]byte, error) {
	if !s.IsSet() {
		return json.Marshal(s.Name())
	}
	return json.Marshal(members(s.Label))
}

func (s *State) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("empty state")
	}
	switch data[0] {
	case '"':
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		s.Label = regexfa.Atom(name)
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		labels := make([]regexfa.Label, len(raw))
		for i, r := range raw {
			var m State
			if err := m.UnmarshalJSON(r); err != nil {
				return err
			}
			labels[i] = m.Label
		}
		s.Label = regexfa.Set(labels...)
	case 'n':
		return errors.New("state must not be null")
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		s.Label = regexfa.Atom(string(data))
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("state must be a scalar or a list, got %s", data)
		}
		s.Label = regexfa.Atom(n.String())
	}
	return nil
}

func (s State) MarshalYAML() (any, error) {
	if !s.IsSet() {
		return s.Name(), nil
	}
	return members(s.Label), nil
}

func (s *State) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.AliasNode:
		return s.UnmarshalYAML(node.Alias)
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return fmt.Errorf("line %d: state must not be null", node.Line)
		}
		s.Label = regexfa.Atom(node.Value)
	case yaml.SequenceNode:
		labels := make([]regexfa.Label, len(node.Content))
		for i, c := range node.Content {
			var m State
			if err := m.UnmarshalYAML(c); err != nil {
				return err
			}
			labels[i] = m.Label
		}
		s.Label = regexfa.Set(labels...)
	default:
		return fmt.Errorf("line %d: state must be a scalar or a list", node.Line)
	}
	return nil
}

func members(l regexfa.Label) []State {
	out := make([]State, len(l.Members()))
	for i, m := range l.Members() {
		out[i] = State{Label: m}
	}
	return out
}

// Transition is a (from, symbol, to) triple, written as a three element list.
type Transition struct {
	From   State
	Symbol string
	To     State
}

func (t Transition) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{t.From, t.Symbol, t.To})
}

func (t *Transition) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("transition must be a list: %w", err)
	}
	if len(raw) != 3 {
		return fmt.Errorf("transition must have 3 elements, got %d", len(raw))
	}
	if err := t.From.UnmarshalJSON(raw[0]); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[1], &t.Symbol); err != nil {
		return fmt.Errorf("transition symbol must be a string: %s", raw[1])
	}
	return t.To.UnmarshalJSON(raw[2])
}

func (t Transition) MarshalYAML() (any, error) {
	n := &yaml.Node{}
	if err := n.Encode([]any{t.From, t.Symbol, t.To}); err != nil {
		return nil, err
	}
	n.Style = yaml.FlowStyle
	return n, nil
}

func (t *Transition) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		return t.UnmarshalYAML(node.Alias)
	}
	if node.Kind != yaml.SequenceNode || len(node.Content) != 3 {
		return fmt.Errorf("line %d: transition must be a list of 3 elements", node.Line)
	}
	if err := t.From.UnmarshalYAML(node.Content[0]); err != nil {
		return err
	}
	if node.Content[1].Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: transition symbol must be a scalar", node.Content[1].Line)
	}
	t.Symbol = node.Content[1].Value
	return t.To.UnmarshalYAML(node.Content[2])
}
