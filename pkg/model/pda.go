/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: pda.go
Description: Pushdown automata. Rules read an input symbol or ε, pop a stack symbol
or ε, and push a sequence whose first element becomes the new top of stack. The model
records whether it accepts by final state or by empty stack.
*/

package model

import (
	"fmt"
	"strings"
)

// Acceptance is the PDA acceptance convention
type Acceptance int

const (
	AcceptByFinalState Acceptance = iota
	AcceptByEmptyStack
)

func (a Acceptance) String() string {
	if a == AcceptByEmptyStack {
		return "empty"
	}
	return "final"
}

// ParseAcceptance parses "final" or "empty"
func ParseAcceptance(s string) (Acceptance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "final", "final_state", "state":
		return AcceptByFinalState, nil
	case "empty", "empty_stack", "stack":
		return AcceptByEmptyStack, nil
	default:
		return 0, fmt.Errorf("unknown PDA acceptance %q (expected final or empty)", s)
	}
}

// PDARule is (From, Input|ε, Pop|ε) → (To, Push)
type PDARule struct {
	From  State
	Input Symbol
	Pop   Symbol
	To    State
	Push  []Symbol
}

func (r PDARule) Label() string {
	push := "ε"
	if len(r.Push) > 0 {
		push = string(r.Push)
	}
	return fmt.Sprintf("%s,%s→%s", SymbolString(r.Input), SymbolString(r.Pop), push)
}

// PDA is a nondeterministic pushdown automaton
type PDA struct {
	Alphabet      Alphabet
	StackAlphabet Alphabet
	Names         []string
	Start         State
	Accepting     []bool
	// InitialStack lists the starting stack contents, top first
	InitialStack []Symbol
	Acceptance   Acceptance
	Rules        []PDARule
}

// NumStates returns the number of states
func (p *PDA) NumStates() int { return len(p.Names) }

// RulesFrom returns the rules leaving a state, in declaration order
func (p *PDA) RulesFrom(s State) []PDARule {
	var out []PDARule
	for _, r := range p.Rules {
		if r.From == s {
			out = append(out, r)
		}
	}
	return out
}

// Validate checks the structural invariants of the PDA
func (p *PDA) Validate() error {
	n := p.NumStates()
	if n == 0 {
		return Malformed(KindPDA, "start ∈ states", "automaton has no states")
	}
	if len(p.Accepting) != n {
		return Malformed(KindPDA, "accepting ⊆ states", "accepting flags cover %d of %d states", len(p.Accepting), n)
	}
	if p.Start < 0 || p.Start >= n {
		return Malformed(KindPDA, "start ∈ states", "start state %d out of range", p.Start)
	}
	for _, s := range p.InitialStack {
		if !p.StackAlphabet.Contains(s) {
			return Malformed(KindPDA, "stack alphabet closure", "initial stack symbol %q is undeclared", s)
		}
	}
	for i, r := range p.Rules {
		if r.From < 0 || r.From >= n || r.To < 0 || r.To >= n {
			return Malformed(KindPDA, "transition endpoints ∈ states", "rule %d references an unknown state", i)
		}
		if r.Input != Epsilon && !p.Alphabet.Contains(r.Input) {
			return Malformed(KindPDA, "alphabet closure", "rule %d reads %q outside the input alphabet", i, r.Input)
		}
		if r.Pop != Epsilon && !p.StackAlphabet.Contains(r.Pop) {
			return Malformed(KindPDA, "stack alphabet closure", "rule %d pops undeclared %q", i, r.Pop)
		}
		for _, s := range r.Push {
			if !p.StackAlphabet.Contains(s) {
				return Malformed(KindPDA, "stack alphabet closure", "rule %d pushes undeclared %q", i, s)
			}
		}
	}
	return nil
}

// Clone returns an independent copy
func (p *PDA) Clone() *PDA {
	q := *p
	q.Alphabet = p.Alphabet.Clone()
	q.StackAlphabet = p.StackAlphabet.Clone()
	q.Names = append([]string(nil), p.Names...)
	q.Accepting = append([]bool(nil), p.Accepting...)
	q.InitialStack = append([]Symbol(nil), p.InitialStack...)
	q.Rules = make([]PDARule, len(p.Rules))
	for i, r := range p.Rules {
		r.Push = append([]Symbol(nil), r.Push...)
		q.Rules[i] = r
	}
	return &q
}
