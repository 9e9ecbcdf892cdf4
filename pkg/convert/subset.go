/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: subset.go
Description: Subset construction from NFA to DFA. DFA states are ε-closed sets of NFA
states discovered from the closure of the start state by a worklist; the empty set
becomes an explicit dead state so the result is complete over the alphabet.
*/

package convert

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/kleascm/mentor/pkg/model"
)

// Determinize returns a complete DFA accepting the language of a. A DFA input is
// copied unchanged.
func Determinize(a *model.Automaton) *model.Automaton {
	if a.Kind == model.KindDFA {
		return a.Clone()
	}

	dfa := model.NewAutomaton(model.KindDFA, a.Alphabet)
	index := make(map[string]model.State)
	var sets []*bitset.BitSet

	intern := func(set *bitset.BitSet) model.State {
		key := set.String()
		if s, ok := index[key]; ok {
			return s
		}
		s := dfa.AddState(SetName(a, set), ContainsAccepting(a, set))
		index[key] = s
		sets = append(sets, set)
		return s
	}

	dfa.Start = intern(EpsilonClosure(a, NewStateSet(a, a.Start)))
	for next := 0; next < len(sets); next++ {
		current := sets[next]
		for _, sym := range a.Alphabet {
			target := intern(Step(a, current, sym))
			dfa.AddTransition(next, sym, target)
		}
	}
	return dfa
}
