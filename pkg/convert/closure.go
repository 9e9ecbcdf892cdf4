/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: closure.go
Description: State-set primitives for finite automata: ε-closure and symbol moves
over bitset-backed sets of NFA states.
*/

package convert

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/kleascm/mentor/pkg/model"
)

// NewStateSet returns a set holding the given states
func NewStateSet(a *model.Automaton, states ...model.State) *bitset.BitSet {
	set := bitset.New(uint(a.NumStates()))
	for _, s := range states {
		set.Set(uint(s))
	}
	return set
}

// Members lists the states of a set in increasing order
func Members(set *bitset.BitSet) []model.State {
	out := make([]model.State, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		out = append(out, model.State(i))
	}
	return out
}

// EpsilonClosure returns every state reachable from seed through zero or more
// ε-transitions. The seed is not modified.
func EpsilonClosure(a *model.Automaton, seed *bitset.BitSet) *bitset.BitSet {
	closure := seed.Clone()
	work := Members(seed)
	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]
		for _, t := range a.Next(s, model.Epsilon) {
			if !closure.Test(uint(t)) {
				closure.Set(uint(t))
				work = append(work, t)
			}
		}
	}
	return closure
}

// Move returns the states reached from set by one transition on sym
func Move(a *model.Automaton, set *bitset.BitSet, sym model.Symbol) *bitset.BitSet {
	next := bitset.New(uint(a.NumStates()))
	for _, s := range Members(set) {
		for _, t := range a.Next(s, sym) {
			next.Set(uint(t))
		}
	}
	return next
}

// Step is the ε-closure of Move
func Step(a *model.Automaton, set *bitset.BitSet, sym model.Symbol) *bitset.BitSet {
	return EpsilonClosure(a, Move(a, set, sym))
}

// ContainsAccepting reports whether any member of set is accepting
func ContainsAccepting(a *model.Automaton, set *bitset.BitSet) bool {
	for _, s := range Members(set) {
		if a.IsAccepting(s) {
			return true
		}
	}
	return false
}

// SetName renders a state set with the automaton's state names, e.g. {q0,q2}
func SetName(a *model.Automaton, set *bitset.BitSet) string {
	members := Members(set)
	if len(members) == 0 {
		return "∅"
	}
	names := make([]string, len(members))
	for i, s := range members {
		names[i] = a.Name(s)
	}
	return "{" + strings.Join(names, ",") + "}"
}
