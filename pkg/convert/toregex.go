/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: toregex.go
Description: State elimination from finite automata to regular expressions. The
automaton is trimmed to useful states, wrapped with a fresh source and sink, and
states are ripped out in index order, folding their loops into starred terms.
*/

package convert

import (
	"github.com/kleascm/mentor/pkg/model"
)

// ToRegex returns an expression for the language of a DFA or NFA
func ToRegex(a *model.Automaton) *model.Regex {
	useful := Reachable(a)
	useful.InPlaceIntersection(CoAccessible(a))
	if !useful.Test(uint(a.Start)) {
		return model.EmptySet()
	}
	trimmed := Restrict(a, useful)

	n := trimmed.NumStates()
	source, sink := n, n+1
	size := n + 2
	r := make([][]*model.Regex, size)
	for i := range r {
		r[i] = make([]*model.Regex, size)
	}
	add := func(i, j int, term *model.Regex) {
		if r[i][j] == nil {
			r[i][j] = term
			return
		}
		r[i][j] = model.SimplifiedUnion(r[i][j], term)
	}

	add(source, trimmed.Start, model.Eps())
	for s := 0; s < n; s++ {
		if trimmed.IsAccepting(s) {
			add(s, sink, model.Eps())
		}
	}
	for _, t := range trimmed.Transitions() {
		if t.On == model.Epsilon {
			add(t.From, t.To, model.Eps())
		} else {
			add(t.From, t.To, model.Lit(t.On))
		}
	}

	for k := 0; k < n; k++ {
		loop := model.Eps()
		if r[k][k] != nil {
			loop = model.SimplifiedStar(r[k][k])
		}
		for i := 0; i < size; i++ {
			if i == k || r[i][k] == nil {
				continue
			}
			for j := 0; j < size; j++ {
				if j == k || r[k][j] == nil {
					continue
				}
				add(i, j, model.SimplifiedConcat(model.SimplifiedConcat(r[i][k], loop), r[k][j]))
			}
		}
		for i := 0; i < size; i++ {
			r[i][k] = nil
			r[k][i] = nil
		}
	}

	if r[source][sink] == nil {
		return model.EmptySet()
	}
	return r[source][sink]
}
