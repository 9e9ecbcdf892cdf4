/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: model.go
Description: Model is the closed tagged variant over the six formalisms. Models are
only built through the New* constructors, which validate once, and are read-only
afterwards; operations dispatch on Kind and reject incompatible kinds explicitly.
*/

package model

import "fmt"

// Model is a validated, immutable formalism instance
type Model struct {
	kind Kind
	// Name is a display label, usually the description file base name
	Name string

	fa  *Automaton
	pda *PDA
	re  *RegexModel
	cfg *Grammar
	tm  *TM
}

// NewDFA validates and wraps a deterministic automaton
func NewDFA(a *Automaton) (*Model, error) {
	if a.Kind != KindDFA {
		return nil, Malformed(KindDFA, "automaton kind", "automaton is tagged %s", a.Kind)
	}
	return newFA(a)
}

// NewNFA validates and wraps a nondeterministic automaton
func NewNFA(a *Automaton) (*Model, error) {
	if a.Kind != KindNFA {
		return nil, Malformed(KindNFA, "automaton kind", "automaton is tagged %s", a.Kind)
	}
	return newFA(a)
}

// NewAutomatonModel wraps a DFA or NFA according to its tag
func NewAutomatonModel(a *Automaton) (*Model, error) {
	return newFA(a)
}

func newFA(a *Automaton) (*Model, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &Model{kind: a.Kind, fa: a}, nil
}

// NewPDAModel validates and wraps a pushdown automaton
func NewPDAModel(p *PDA) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Model{kind: KindPDA, pda: p}, nil
}

// NewRegexModel validates and wraps a regular expression. A nil alphabet defaults
// to the literals of the expression.
func NewRegexModel(expr *Regex, alphabet Alphabet) (*Model, error) {
	if expr != nil && alphabet == nil {
		alphabet = expr.Symbols()
	}
	re := &RegexModel{Alphabet: alphabet, Expr: expr}
	if err := re.Validate(); err != nil {
		return nil, err
	}
	return &Model{kind: KindRE, re: re}, nil
}

// NewGrammarModel validates and wraps a context-free grammar
func NewGrammarModel(g *Grammar) (*Model, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &Model{kind: KindCFG, cfg: g}, nil
}

// NewTMModel validates and wraps a Turing machine
func NewTMModel(t *TM) (*Model, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Model{kind: KindTM, tm: t}, nil
}

// Kind returns the formalism tag
func (m *Model) Kind() Kind { return m.kind }

// Automaton returns the finite automaton of a DFA or NFA model
func (m *Model) Automaton() (*Automaton, bool) { return m.fa, m.fa != nil }

// PDA returns the pushdown automaton of a PDA model
func (m *Model) PDA() (*PDA, bool) { return m.pda, m.pda != nil }

// Regex returns the expression of an RE model
func (m *Model) Regex() (*RegexModel, bool) { return m.re, m.re != nil }

// Grammar returns the grammar of a CFG model
func (m *Model) Grammar() (*Grammar, bool) { return m.cfg, m.cfg != nil }

// TM returns the machine of a TM model
func (m *Model) TM() (*TM, bool) { return m.tm, m.tm != nil }

// Alphabet returns the input alphabet of any model
func (m *Model) Alphabet() Alphabet {
	switch m.kind {
	case KindDFA, KindNFA:
		return m.fa.Alphabet
	case KindPDA:
		return m.pda.Alphabet
	case KindRE:
		return m.re.Alphabet
	case KindCFG:
		return m.cfg.Terminals
	case KindTM:
		return m.tm.InputAlphabet
	}
	return nil
}

// CheckInput verifies that every symbol of s is in the input alphabet. Callers
// treat a failing input as rejected; the error says which symbol fell outside.
func (m *Model) CheckInput(s string) error {
	alpha := m.Alphabet()
	for _, r := range s {
		if !alpha.Contains(r) {
			return fmt.Errorf("symbol %q is not in the %s alphabet {%s}", r, m.kind, alpha)
		}
	}
	return nil
}

// Summary returns a one-line description used in logs and CLI output
func (m *Model) Summary() string {
	switch m.kind {
	case KindDFA, KindNFA:
		return fmt.Sprintf("%s with %d states over {%s}", m.kind, m.fa.NumStates(), m.fa.Alphabet)
	case KindPDA:
		return fmt.Sprintf("pda with %d states and %d rules (accepts by %s)", m.pda.NumStates(), len(m.pda.Rules), m.pda.Acceptance)
	case KindRE:
		return fmt.Sprintf("re %s over {%s}", m.re.Expr, m.re.Alphabet)
	case KindCFG:
		return fmt.Sprintf("cfg with %d nonterminals and %d productions", len(m.cfg.Nonterminals), len(m.cfg.Productions))
	case KindTM:
		return fmt.Sprintf("tm with %d states and %d rules", m.tm.NumStates(), len(m.tm.Rules))
	}
	return m.kind.String()
}
