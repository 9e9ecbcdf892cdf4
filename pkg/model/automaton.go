/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: automaton.go
Description: Finite automata (DFA and NFA). States live in an arena indexed by
integers and transitions form an adjacency table keyed by state index, so cyclic
automata need no special casing and renaming is a pure index remap.
*/

package model

import (
	"fmt"
	"sort"
)

// State is an index into an automaton's state arena
type State = int

// Transition is a single labelled edge
type Transition struct {
	From State
	On   Symbol
	To   State
}

// Automaton is a DFA or an NFA
type Automaton struct {
	Kind     Kind
	Alphabet Alphabet
	Start    State

	accepting []bool
	names     []string
	delta     []map[Symbol][]State
	dangling  []Transition
}

// NewAutomaton creates an empty automaton of the given kind (KindDFA or KindNFA)
func NewAutomaton(kind Kind, alphabet Alphabet) *Automaton {
	return &Automaton{Kind: kind, Alphabet: alphabet.Clone()}
}

// AddState appends a state and returns its index. An empty name defaults to qN.
func (a *Automaton) AddState(name string, accepting bool) State {
	id := len(a.accepting)
	if name == "" {
		name = fmt.Sprintf("q%d", id)
	}
	a.accepting = append(a.accepting, accepting)
	a.names = append(a.names, name)
	a.delta = append(a.delta, make(map[Symbol][]State))
	return id
}

// AddTransition adds an edge; duplicate edges are ignored
func (a *Automaton) AddTransition(from State, on Symbol, to State) {
	if from < 0 || from >= len(a.delta) {
		a.dangling = append(a.dangling, Transition{From: from, On: on, To: to})
		return
	}
	targets := a.delta[from][on]
	i := sort.SearchInts(targets, to)
	if i < len(targets) && targets[i] == to {
		return
	}
	targets = append(targets, 0)
	copy(targets[i+1:], targets[i:])
	targets[i] = to
	a.delta[from][on] = targets
}

// SetAccepting changes the accepting flag of a state
func (a *Automaton) SetAccepting(s State, accepting bool) {
	a.accepting[s] = accepting
}

// NumStates returns the number of states in the arena
func (a *Automaton) NumStates() int { return len(a.accepting) }

// IsAccepting reports whether s is an accepting state
func (a *Automaton) IsAccepting(s State) bool { return a.accepting[s] }

// Name returns the display name of a state
func (a *Automaton) Name(s State) string { return a.names[s] }

// Next returns the targets of s on symbol (Epsilon for ε-moves), sorted
func (a *Automaton) Next(s State, on Symbol) []State {
	return a.delta[s][on]
}

// Successor returns the unique target of s on a symbol for deterministic automata
func (a *Automaton) Successor(s State, on Symbol) (State, bool) {
	targets := a.delta[s][on]
	if len(targets) == 0 {
		return 0, false
	}
	return targets[0], true
}

// Labels returns the symbols leaving s in order, ε first
func (a *Automaton) Labels(s State) []Symbol {
	out := make([]Symbol, 0, len(a.delta[s]))
	for sym := range a.delta[s] {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HasEpsilon reports whether any ε-transition exists
func (a *Automaton) HasEpsilon() bool {
	for _, row := range a.delta {
		if len(row[Epsilon]) > 0 {
			return true
		}
	}
	return false
}

// AcceptingStates lists accepting state indices in order
func (a *Automaton) AcceptingStates() []State {
	var out []State
	for s, acc := range a.accepting {
		if acc {
			out = append(out, s)
		}
	}
	return out
}

// Transitions lists every edge ordered by source, symbol, then target
func (a *Automaton) Transitions() []Transition {
	var out []Transition
	for from := range a.delta {
		for _, sym := range a.Labels(from) {
			for _, to := range a.delta[from][sym] {
				out = append(out, Transition{From: from, On: sym, To: to})
			}
		}
	}
	return out
}

// Clone returns an independent copy
func (a *Automaton) Clone() *Automaton {
	b := &Automaton{
		Kind:      a.Kind,
		Alphabet:  a.Alphabet.Clone(),
		Start:     a.Start,
		accepting: append([]bool(nil), a.accepting...),
		names:     append([]string(nil), a.names...),
		delta:     make([]map[Symbol][]State, len(a.delta)),
	}
	for i, row := range a.delta {
		b.delta[i] = make(map[Symbol][]State, len(row))
		for sym, targets := range row {
			b.delta[i][sym] = append([]State(nil), targets...)
		}
	}
	return b
}

// Validate checks the structural invariants of the automaton
func (a *Automaton) Validate() error {
	if a.Kind != KindDFA && a.Kind != KindNFA {
		return Malformed(a.Kind, "automaton kind", "expected dfa or nfa")
	}
	n := a.NumStates()
	if n == 0 {
		return Malformed(a.Kind, "start ∈ states", "automaton has no states")
	}
	if a.Start < 0 || a.Start >= n {
		return Malformed(a.Kind, "start ∈ states", "start state %d out of range", a.Start)
	}
	if len(a.dangling) > 0 {
		return Malformed(a.Kind, "transition endpoints ∈ states", "transition leaves unknown state %d", a.dangling[0].From)
	}
	for from, row := range a.delta {
		for sym, targets := range row {
			if sym == Epsilon {
				if a.Kind == KindDFA && len(targets) > 0 {
					return Malformed(a.Kind, "no ε-transitions in a DFA", "state %s has an ε-transition", a.names[from])
				}
			} else if !a.Alphabet.Contains(sym) {
				return Malformed(a.Kind, "alphabet closure", "symbol %q on state %s is not in the alphabet", sym, a.names[from])
			}
			for _, to := range targets {
				if to < 0 || to >= n {
					return Malformed(a.Kind, "transition endpoints ∈ states", "state %s targets unknown state %d", a.names[from], to)
				}
			}
		}
	}
	if a.Kind == KindDFA {
		for from, row := range a.delta {
			for _, sym := range a.Alphabet {
				switch len(row[sym]) {
				case 1:
				case 0:
					return Malformed(a.Kind, "DFA completeness", "state %s has no transition on %q", a.names[from], sym)
				default:
					return Malformed(a.Kind, "DFA determinism", "state %s has %d transitions on %q", a.names[from], len(row[sym]), sym)
				}
			}
		}
	}
	return nil
}
