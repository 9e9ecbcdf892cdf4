/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: desc.go
Description: YAML description files for every model kind. This file holds the
on-disk shapes and the scalar codecs for symbols and alphabets; decode.go turns
files into validated models and encode.go writes models back out.
*/

package desc

import (
	"fmt"
	"strings"

	"github.com/kleascm/mentor/pkg/model"
	"gopkg.in/yaml.v3"
)

// header is decoded first to find an embedded kind and name
type header struct {
	Kind model.Kind `yaml:"kind,omitempty"`
	Name string     `yaml:"name,omitempty"`
}

type faFile struct {
	Kind        model.Kind     `yaml:"kind"`
	Name        string         `yaml:"name,omitempty"`
	Alphabet    alphabet       `yaml:"alphabet"`
	States      []string       `yaml:"states,omitempty"`
	Start       string         `yaml:"start"`
	Accepting   []string       `yaml:"accepting"`
	Transitions []faTransition `yaml:"transitions"`
}

type faTransition struct {
	From string  `yaml:"from"`
	On   *symbol `yaml:"on"`
	To   string  `yaml:"to"`
}

type pdaFile struct {
	Kind          model.Kind      `yaml:"kind"`
	Name          string          `yaml:"name,omitempty"`
	Alphabet      alphabet        `yaml:"alphabet"`
	StackAlphabet alphabet        `yaml:"stack_alphabet"`
	States        []string        `yaml:"states,omitempty"`
	Start         string          `yaml:"start"`
	AcceptBy      string          `yaml:"accept_by"`
	InitialStack  word            `yaml:"initial_stack"`
	Accepting     []string        `yaml:"accepting"`
	Transitions   []pdaTransition `yaml:"transitions"`
}

type pdaTransition struct {
	From  string  `yaml:"from"`
	Input *symbol `yaml:"input"`
	Pop   *symbol `yaml:"pop"`
	To    string  `yaml:"to"`
	Push  word    `yaml:"push"`
}

type reFile struct {
	Kind     model.Kind `yaml:"kind"`
	Name     string     `yaml:"name,omitempty"`
	Alphabet alphabet   `yaml:"alphabet,omitempty"`
	Regex    string     `yaml:"regex"`
}

type cfgFile struct {
	Kind         model.Kind `yaml:"kind"`
	Name         string     `yaml:"name,omitempty"`
	Start        string     `yaml:"start"`
	Nonterminals []string   `yaml:"nonterminals,omitempty"`
	Terminals    alphabet   `yaml:"terminals,omitempty"`
	Productions  []string   `yaml:"productions"`
}

type tmFile struct {
	Kind          model.Kind     `yaml:"kind"`
	Name          string         `yaml:"name,omitempty"`
	InputAlphabet alphabet       `yaml:"input_alphabet"`
	TapeAlphabet  alphabet       `yaml:"tape_alphabet"`
	Blank         symbol         `yaml:"blank"`
	States        []string       `yaml:"states,omitempty"`
	Start         string         `yaml:"start"`
	Accept        []string       `yaml:"accept"`
	Reject        []string       `yaml:"reject,omitempty"`
	Transitions   []tmTransition `yaml:"transitions"`
}

type tmTransition struct {
	From  string `yaml:"from"`
	Read  symbol `yaml:"read"`
	To    string `yaml:"to"`
	Write symbol `yaml:"write"`
	Move  string `yaml:"move"`
}

// symbol is one rune; "", "ε" and "eps" stand for epsilon
type symbol model.Symbol

func parseSymbol(s string) (model.Symbol, error) {
	switch s {
	case "", "ε", "eps", "epsilon":
		return model.Epsilon, nil
	}
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("%q is not a single symbol", s)
	}
	return r[0], nil
}

// orEpsilon reads an optional symbol; a missing one is epsilon
func orEpsilon(s *symbol) model.Symbol {
	if s == nil {
		return model.Epsilon
	}
	return model.Symbol(*s)
}

func symbolRef(s model.Symbol) *symbol {
	v := symbol(s)
	return &v
}

func (s symbol) MarshalYAML() (any, error) {
	return model.SymbolString(model.Symbol(s)), nil
}

func (s *symbol) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return fmt.Errorf("line %d: symbol: %w", node.Line, err)
	}
	parsed, err := parseSymbol(str)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*s = symbol(parsed)
	return nil
}

// word is a symbol sequence written as one string; "" or "ε" is empty
type word []model.Symbol

func (w word) MarshalYAML() (any, error) {
	if len(w) == 0 {
		return "", nil
	}
	return string(w), nil
}

func (w *word) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return fmt.Errorf("line %d: symbol string: %w", node.Line, err)
	}
	if str == "ε" {
		str = ""
	}
	*w = word([]rune(str))
	return nil
}

// alphabet is written as a string of symbols or as a list of one-rune strings
type alphabet model.Alphabet

func (a alphabet) MarshalYAML() (any, error) {
	return string(a), nil
}

func (a *alphabet) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return fmt.Errorf("line %d: alphabet: %w", node.Line, err)
		}
		*a = alphabet(model.AlphabetOf(str))
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return fmt.Errorf("line %d: alphabet: %w", node.Line, err)
		}
		syms := make([]model.Symbol, 0, len(items))
		for _, item := range items {
			r := []rune(item)
			if len(r) != 1 {
				return fmt.Errorf("line %d: alphabet entry %q is not a single symbol", node.Line, item)
			}
			syms = append(syms, r[0])
		}
		*a = alphabet(model.NewAlphabet(syms...))
		return nil
	}
	return fmt.Errorf("line %d: alphabet must be a string or a list", node.Line)
}

// stateTable maps state names to indices in order of first mention
type stateTable struct {
	names []string
	index map[string]model.State
}

func newStateTable(declared []string) *stateTable {
	t := &stateTable{index: make(map[string]model.State)}
	for _, n := range declared {
		t.add(n)
	}
	return t
}

func (t *stateTable) add(name string) model.State {
	name = strings.TrimSpace(name)
	if id, ok := t.index[name]; ok {
		return id
	}
	id := len(t.names)
	t.names = append(t.names, name)
	t.index[name] = id
	return id
}

// lookup resolves a name; with a declared state list, unknown names are errors
func (t *stateTable) lookup(kind model.Kind, strict bool, name string) (model.State, error) {
	if id, ok := t.index[strings.TrimSpace(name)]; ok {
		return id, nil
	}
	if strict || strings.TrimSpace(name) == "" {
		return 0, model.Malformed(kind, "transition endpoints ∈ states", "unknown state %q", name)
	}
	return t.add(name), nil
}
