/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: minimize.go
Description: DFA minimization. Unreachable states are dropped, then Moore-style
partition refinement starts from {accepting, non-accepting} and splits blocks whose
members disagree on the block of some successor until the partition is stable. The
minimal DFA is numbered in breadth-first order from the start state, so two minimal
DFAs of the same language over the same alphabet come out identical.
*/

package convert

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/kleascm/mentor/pkg/model"
)

// Reachable returns the states reachable from the start state
func Reachable(a *model.Automaton) *bitset.BitSet {
	seen := NewStateSet(a, a.Start)
	work := []model.State{a.Start}
	for len(work) > 0 {
		s := work[0]
		work = work[1:]
		for _, sym := range a.Labels(s) {
			for _, t := range a.Next(s, sym) {
				if !seen.Test(uint(t)) {
					seen.Set(uint(t))
					work = append(work, t)
				}
			}
		}
	}
	return seen
}

// CoAccessible returns the states from which some accepting state is reachable
func CoAccessible(a *model.Automaton) *bitset.BitSet {
	reverse := make([][]model.State, a.NumStates())
	for _, t := range a.Transitions() {
		reverse[t.To] = append(reverse[t.To], t.From)
	}
	live := bitset.New(uint(a.NumStates()))
	work := a.AcceptingStates()
	for _, s := range work {
		live.Set(uint(s))
	}
	for len(work) > 0 {
		s := work[0]
		work = work[1:]
		for _, p := range reverse[s] {
			if !live.Test(uint(p)) {
				live.Set(uint(p))
				work = append(work, p)
			}
		}
	}
	return live
}

// Restrict copies the automaton keeping only states in keep (the start state is
// always kept). Transitions into dropped states are removed.
func Restrict(a *model.Automaton, keep *bitset.BitSet) *model.Automaton {
	out := model.NewAutomaton(a.Kind, a.Alphabet)
	remap := make(map[model.State]model.State)
	for s := 0; s < a.NumStates(); s++ {
		if keep.Test(uint(s)) || s == a.Start {
			remap[s] = out.AddState(a.Name(s), a.IsAccepting(s))
		}
	}
	out.Start = remap[a.Start]
	for _, t := range a.Transitions() {
		from, okFrom := remap[t.From]
		to, okTo := remap[t.To]
		if okFrom && okTo {
			out.AddTransition(from, t.On, to)
		}
	}
	return out
}

// Minimize returns the minimal complete DFA for the language of a. NFAs are
// determinized first.
func Minimize(a *model.Automaton) *model.Automaton {
	dfa := Determinize(a)
	dfa = Restrict(dfa, Reachable(dfa))
	n := dfa.NumStates()

	block := make([]int, n)
	blocks := 0
	{
		ids := map[bool]int{}
		for s := 0; s < n; s++ {
			acc := dfa.IsAccepting(s)
			id, ok := ids[acc]
			if !ok {
				id = len(ids)
				ids[acc] = id
			}
			block[s] = id
		}
		blocks = len(ids)
	}

	for {
		signatures := make(map[string]int)
		next := make([]int, n)
		for s := 0; s < n; s++ {
			sig := signature(dfa, block, s)
			id, ok := signatures[sig]
			if !ok {
				id = len(signatures)
				signatures[sig] = id
			}
			next[s] = id
		}
		block = next
		if len(signatures) == blocks {
			break
		}
		blocks = len(signatures)
	}

	return quotient(dfa, block)
}

func signature(dfa *model.Automaton, block []int, s model.State) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(block[s]))
	for _, sym := range dfa.Alphabet {
		t, _ := dfa.Successor(s, sym)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(block[t]))
	}
	return sb.String()
}

// quotient builds the block automaton, numbering blocks in BFS order from the start
func quotient(dfa *model.Automaton, block []int) *model.Automaton {
	members := make(map[int]model.State)
	for s := 0; s < dfa.NumStates(); s++ {
		if _, ok := members[block[s]]; !ok {
			members[block[s]] = s
		}
	}

	out := model.NewAutomaton(model.KindDFA, dfa.Alphabet)
	order := make(map[int]model.State)
	queue := []int{block[dfa.Start]}
	order[block[dfa.Start]] = out.AddState("", dfa.IsAccepting(members[block[dfa.Start]]))
	out.Start = 0
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		rep := members[b]
		for _, sym := range dfa.Alphabet {
			t, _ := dfa.Successor(rep, sym)
			tb := block[t]
			target, ok := order[tb]
			if !ok {
				target = out.AddState("", dfa.IsAccepting(members[tb]))
				order[tb] = target
				queue = append(queue, tb)
			}
			out.AddTransition(order[b], sym, target)
		}
	}
	return out
}
