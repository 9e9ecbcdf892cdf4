/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: cnf.go
Description: Conversion of context-free grammars to Chomsky Normal Form: useless
symbols, ε-productions and unit productions are removed, terminals inside long bodies
are lifted to fresh nonterminals, and long bodies are binarized.
*/

package grammar

import (
	"github.com/kleascm/mentor/pkg/model"
)

// ToCNF normalizes a grammar. The input is not modified.
func ToCNF(g *model.Grammar) (*Normalized, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	nullable := Nullable(g)
	out := &Normalized{NullableStart: nullable[g.Start]}

	h := Trim(g)
	h = eliminateEpsilon(h, nullable)
	h = eliminateUnits(h)
	h = Trim(h)

	names := newFreshNames(h)
	h = liftTerminals(h, names)
	h = binarize(h, names)

	out.Grammar = h
	return out, nil
}

// eliminateEpsilon replaces each production by every variant that omits some subset
// of its nullable occurrences. Empty bodies are dropped.
func eliminateEpsilon(g *model.Grammar, nullable map[string]bool) *model.Grammar {
	var set productionSet
	for _, p := range g.Productions {
		variants := [][]model.GrammarSymbol{{}}
		for _, s := range p.Body {
			next := make([][]model.GrammarSymbol, 0, len(variants)*2)
			for _, v := range variants {
				with := append(append([]model.GrammarSymbol(nil), v...), s)
				next = append(next, with)
				if !s.Terminal && nullable[s.Nonterminal] {
					next = append(next, v)
				}
			}
			variants = next
		}
		for _, v := range variants {
			if len(v) > 0 {
				set.add(model.Production{Head: p.Head, Body: v})
			}
		}
	}
	out := &model.Grammar{
		Nonterminals: append([]string(nil), g.Nonterminals...),
		Terminals:    g.Terminals.Clone(),
		Start:        g.Start,
		Productions:  set.items,
	}
	return out
}

func isUnit(p model.Production) bool {
	return len(p.Body) == 1 && !p.Body[0].Terminal
}

// eliminateUnits replaces A → B chains with the non-unit alternatives of every B
// reachable from A through unit productions
func eliminateUnits(g *model.Grammar) *model.Grammar {
	units := make(map[string][]string)
	for _, p := range g.Productions {
		if isUnit(p) {
			units[p.Head] = append(units[p.Head], p.Body[0].Nonterminal)
		}
	}

	var set productionSet
	for _, a := range g.Nonterminals {
		closure := []string{a}
		seen := map[string]bool{a: true}
		for i := 0; i < len(closure); i++ {
			for _, b := range units[closure[i]] {
				if !seen[b] {
					seen[b] = true
					closure = append(closure, b)
				}
			}
		}
		for _, b := range closure {
			for _, p := range g.ProductionsOf(b) {
				if !isUnit(p) {
					set.add(model.Production{Head: a, Body: p.Body})
				}
			}
		}
	}
	return &model.Grammar{
		Nonterminals: append([]string(nil), g.Nonterminals...),
		Terminals:    g.Terminals.Clone(),
		Start:        g.Start,
		Productions:  set.items,
	}
}

// liftTerminals replaces terminals in bodies of length two or more with a
// nonterminal deriving exactly that terminal
func liftTerminals(g *model.Grammar, names *freshNames) *model.Grammar {
	lifted := make(map[model.Symbol]string)
	var order []model.Symbol
	out := &model.Grammar{
		Nonterminals: append([]string(nil), g.Nonterminals...),
		Terminals:    g.Terminals.Clone(),
		Start:        g.Start,
	}
	for _, p := range g.Productions {
		if len(p.Body) < 2 {
			out.Productions = append(out.Productions, p)
			continue
		}
		body := make([]model.GrammarSymbol, len(p.Body))
		for i, s := range p.Body {
			if !s.Terminal {
				body[i] = s
				continue
			}
			name, ok := lifted[s.Char]
			if !ok {
				name = names.next("T_" + string(s.Char))
				lifted[s.Char] = name
				order = append(order, s.Char)
			}
			body[i] = model.N(name)
		}
		out.Productions = append(out.Productions, model.Production{Head: p.Head, Body: body})
	}
	for _, c := range order {
		out.Nonterminals = append(out.Nonterminals, lifted[c])
		out.Productions = append(out.Productions, model.Production{Head: lifted[c], Body: []model.GrammarSymbol{model.T(c)}})
	}
	return out
}

// binarize splits A → X1 X2 … Xk into a right-leaning chain of binary productions
func binarize(g *model.Grammar, names *freshNames) *model.Grammar {
	out := &model.Grammar{
		Nonterminals: append([]string(nil), g.Nonterminals...),
		Terminals:    g.Terminals.Clone(),
		Start:        g.Start,
	}
	for _, p := range g.Productions {
		head := p.Head
		body := p.Body
		for len(body) > 2 {
			rest := names.next(p.Head + "'")
			out.Nonterminals = append(out.Nonterminals, rest)
			out.Productions = append(out.Productions, model.Production{Head: head, Body: []model.GrammarSymbol{body[0], model.N(rest)}})
			head = rest
			body = body[1:]
		}
		out.Productions = append(out.Productions, model.Production{Head: head, Body: append([]model.GrammarSymbol(nil), body...)})
	}
	return out
}

// Finite reports whether the normalized language is finite. When it is, maxLen is
// the length of its longest word.
func (n *Normalized) Finite() (finite bool, maxLen int) {
	const (
		unvisited = iota
		active
		done
	)
	color := make(map[string]int, len(n.Nonterminals))
	longest := make(map[string]int, len(n.Nonterminals))
	cyclic := false

	var visit func(a string)
	visit = func(a string) {
		color[a] = active
		best := 0
		for _, p := range n.ProductionsOf(a) {
			total := 0
			for _, s := range p.Body {
				if s.Terminal {
					total++
					continue
				}
				switch color[s.Nonterminal] {
				case active:
					cyclic = true
				case unvisited:
					visit(s.Nonterminal)
				}
				total += longest[s.Nonterminal]
			}
			if total > best {
				best = total
			}
		}
		longest[a] = best
		color[a] = done
	}
	visit(n.Start)
	if cyclic {
		return false, 0
	}
	return true, longest[n.Start]
}
