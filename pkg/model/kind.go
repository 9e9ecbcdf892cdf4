/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: kind.go
Description: Formalism kinds understood by the engine. A Kind tags every model and
drives operation dispatch, kind inference from description file extensions, and
compatibility checks between models.
*/

package model

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind identifies one of the six supported formalisms
type Kind int

const (
	KindDFA Kind = iota + 1
	KindNFA
	KindPDA
	KindRE
	KindCFG
	KindTM
)

var kindNames = map[Kind]string{
	KindDFA: "dfa",
	KindNFA: "nfa",
	KindPDA: "pda",
	KindRE:  "re",
	KindCFG: "cfg",
	KindTM:  "tm",
}

var kindDescriptions = map[Kind]string{
	KindDFA: "Deterministic finite automaton",
	KindNFA: "Nondeterministic finite automaton",
	KindPDA: "Pushdown automaton",
	KindRE:  "Regular expression",
	KindCFG: "Context-free grammar",
	KindTM:  "Turing machine",
}

// Kinds lists every kind in declaration order
func Kinds() []Kind {
	return []Kind{KindDFA, KindNFA, KindPDA, KindRE, KindCFG, KindTM}
}

// String returns the short name, which doubles as the file extension
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Description returns a human readable name for the kind
func (k Kind) Description() string {
	return kindDescriptions[k]
}

// Valid reports whether k is one of the declared kinds
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Regular reports whether the kind belongs to the RE/NFA/DFA family
func (k Kind) Regular() bool {
	return k == KindDFA || k == KindNFA || k == KindRE
}

// ParseKind parses a kind name such as "dfa" or "cfg" (case-insensitive)
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown model type %q (expected one of dfa, nfa, pda, re, cfg, tm)", s)
}

// KindFromPath infers the kind from a description file extension
func KindFromPath(path string) (Kind, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("cannot infer model type of %s: no file extension", path)
	}
	return ParseKind(ext)
}

// MarshalYAML writes the short name
func (k Kind) MarshalYAML() (any, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid kind %d", int(k))
	}
	return k.String(), nil
}

// UnmarshalYAML accepts the short names understood by ParseKind
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("kind at line %d: %w", node.Line, err)
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
