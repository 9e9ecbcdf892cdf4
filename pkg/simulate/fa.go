/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: fa.go
Description: Finite automaton acceptance. A DFA follows its unique transition per
symbol and rejects as soon as one is missing; an NFA advances its whole ε-closed set
of active states per symbol, so no backtracking is needed.
*/

package simulate

import (
	"github.com/kleascm/mentor/pkg/convert"
	"github.com/kleascm/mentor/pkg/model"
)

// RunDFA reports whether a deterministic automaton accepts input
func RunDFA(a *model.Automaton, input string) bool {
	s := a.Start
	for _, sym := range input {
		next, ok := a.Successor(s, sym)
		if !ok {
			return false
		}
		s = next
	}
	return a.IsAccepting(s)
}

// RunNFA reports whether a nondeterministic automaton accepts input
func RunNFA(a *model.Automaton, input string) bool {
	active := convert.EpsilonClosure(a, convert.NewStateSet(a, a.Start))
	for _, sym := range input {
		active = convert.Step(a, active, sym)
		if active.None() {
			return false
		}
	}
	return convert.ContainsAccepting(a, active)
}

// AcceptFA runs a DFA or NFA; the trace, when requested, recomputes the run each
// time it is iterated.
func AcceptFA(a *model.Automaton, input string, trace bool) Result {
	res := Result{Input: input}
	if a.Kind == model.KindDFA {
		res.Accepted = RunDFA(a, input)
	} else {
		res.Accepted = RunNFA(a, input)
	}
	if trace {
		res.Trace = faTrace(a, input)
	}
	return res
}

func faTrace(a *model.Automaton, input string) *Trace {
	symbols := []rune(input)
	if a.Kind == model.KindDFA {
		return &Trace{seq: func(yield func(Snapshot) bool) {
			s := a.Start
			for i := 0; ; i++ {
				snap := Snapshot{Kind: model.KindDFA, Step: i, State: a.Name(s), Remaining: string(symbols[i:]), Accepting: a.IsAccepting(s)}
				if !yield(snap) || i == len(symbols) {
					return
				}
				next, ok := a.Successor(s, symbols[i])
				if !ok {
					return
				}
				s = next
			}
		}}
	}
	return &Trace{seq: func(yield func(Snapshot) bool) {
		active := convert.EpsilonClosure(a, convert.NewStateSet(a, a.Start))
		for i := 0; ; i++ {
			members := convert.Members(active)
			names := make([]string, len(members))
			for j, s := range members {
				names[j] = a.Name(s)
			}
			snap := Snapshot{Kind: model.KindNFA, Step: i, States: names, Remaining: string(symbols[i:]), Accepting: convert.ContainsAccepting(a, active)}
			if !yield(snap) || i == len(symbols) || active.None() {
				return
			}
			active = convert.Step(a, active, symbols[i])
		}
	}}
}
