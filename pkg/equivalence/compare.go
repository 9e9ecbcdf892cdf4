/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: compare.go
Description: Language equivalence for regular-family models. Both inputs are
normalized to complete DFAs over a shared alphabet and minimized, then walked in
lockstep by breadth-first search from the start states, pairing states reached by
the same prefix. The first pair that disagrees on acceptance yields the shortest,
then alphabetically least, distinguishing string.
*/

package equivalence

import (
	"fmt"

	"github.com/kleascm/mentor/pkg/convert"
	"github.com/kleascm/mentor/pkg/model"
)

// Result is the verdict of a comparison
type Result struct {
	Equivalent bool
	// Witness distinguishes the languages when Equivalent is false
	Witness string
	// LeftStates and RightStates are the minimal DFA sizes
	LeftStates  int
	RightStates int
}

func (r *Result) String() string {
	if r.Equivalent {
		return "equivalent"
	}
	return fmt.Sprintf("not equivalent (witness %q)", r.Witness)
}

// Compare decides whether two models define the same language
func Compare(left, right *model.Model) (*Result, error) {
	lk, rk := left.Kind(), right.Kind()
	if !lk.Regular() || !rk.Regular() {
		if lk != rk {
			return nil, &model.KindMismatchError{Left: lk, Right: rk}
		}
		return nil, model.Unsupported(lk, "equivalence check")
	}

	ld, err := convert.ToDFA(left)
	if err != nil {
		return nil, err
	}
	rd, err := convert.ToDFA(right)
	if err != nil {
		return nil, err
	}
	alphabet := ld.Alphabet.Union(rd.Alphabet)
	lm := convert.Minimize(Extend(ld, alphabet))
	rm := convert.Minimize(Extend(rd, alphabet))
	return CompareDFA(lm, rm)
}

type pair struct{ l, r model.State }

// CompareDFA runs the synchronized search on two complete DFAs over the same
// alphabet. Minimal inputs make the pairing a bijection when the languages agree.
func CompareDFA(l, r *model.Automaton) (*Result, error) {
	if !l.Alphabet.Equal(r.Alphabet) {
		return nil, fmt.Errorf("compare: alphabets differ ({%s} vs {%s})", l.Alphabet, r.Alphabet)
	}
	res := &Result{LeftStates: l.NumStates(), RightStates: r.NumStates()}

	start := pair{l.Start, r.Start}
	prefix := map[pair]string{start: ""}
	queue := []pair{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if l.IsAccepting(p.l) != r.IsAccepting(p.r) {
			res.Witness = prefix[p]
			return res, nil
		}
		for _, sym := range l.Alphabet {
			ln, _ := l.Successor(p.l, sym)
			rn, _ := r.Successor(p.r, sym)
			next := pair{ln, rn}
			if _, seen := prefix[next]; seen {
				continue
			}
			prefix[next] = prefix[p] + string(sym)
			queue = append(queue, next)
		}
	}

	if res.LeftStates != res.RightStates {
		return nil, fmt.Errorf("compare: no distinguishing string but minimal sizes differ (%d vs %d)", res.LeftStates, res.RightStates)
	}
	res.Equivalent = true
	return res, nil
}

// Extend completes a DFA over a larger alphabet, sending new symbols to a dead state
func Extend(dfa *model.Automaton, alphabet model.Alphabet) *model.Automaton {
	out := model.NewAutomaton(model.KindDFA, alphabet)
	for s := 0; s < dfa.NumStates(); s++ {
		out.AddState(dfa.Name(s), dfa.IsAccepting(s))
	}
	out.Start = dfa.Start
	dead := -1
	for s := 0; s < dfa.NumStates(); s++ {
		for _, sym := range alphabet {
			if t, ok := dfa.Successor(s, sym); ok {
				out.AddTransition(s, sym, t)
				continue
			}
			if dead < 0 {
				dead = out.AddState("∅", false)
				for _, ds := range alphabet {
					out.AddTransition(dead, ds, dead)
				}
			}
			out.AddTransition(s, sym, dead)
		}
	}
	return out
}
