/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: clean.go
Description: Useless-symbol removal and nullable analysis for context-free grammars.
*/

package grammar

import (
	"github.com/kleascm/mentor/pkg/model"
)

// Nullable returns the nonterminals that derive ε
func Nullable(g *model.Grammar) map[string]bool {
	nullable := make(map[string]bool)
	for changed := true; changed; {
		changed = false
		for _, p := range g.Productions {
			if nullable[p.Head] {
				continue
			}
			all := true
			for _, s := range p.Body {
				if s.Terminal || !nullable[s.Nonterminal] {
					all = false
					break
				}
			}
			if all {
				nullable[p.Head] = true
				changed = true
			}
		}
	}
	return nullable
}

// Generating returns the nonterminals that derive at least one terminal string
func Generating(g *model.Grammar) map[string]bool {
	gen := make(map[string]bool)
	for changed := true; changed; {
		changed = false
		for _, p := range g.Productions {
			if gen[p.Head] {
				continue
			}
			if bodyGenerates(p.Body, gen) {
				gen[p.Head] = true
				changed = true
			}
		}
	}
	return gen
}

func bodyGenerates(body []model.GrammarSymbol, gen map[string]bool) bool {
	for _, s := range body {
		if !s.Terminal && !gen[s.Nonterminal] {
			return false
		}
	}
	return true
}

// Trim removes non-generating nonterminals, then nonterminals unreachable from the
// start symbol, with every production that mentions them. The start symbol is
// always kept.
func Trim(g *model.Grammar) *model.Grammar {
	gen := Generating(g)
	var productive []model.Production
	for _, p := range g.Productions {
		if gen[p.Head] && bodyGenerates(p.Body, gen) {
			productive = append(productive, p)
		}
	}

	reach := map[string]bool{g.Start: true}
	work := []string{g.Start}
	for len(work) > 0 {
		head := work[0]
		work = work[1:]
		for _, p := range productive {
			if p.Head != head {
				continue
			}
			for _, s := range p.Body {
				if !s.Terminal && !reach[s.Nonterminal] {
					reach[s.Nonterminal] = true
					work = append(work, s.Nonterminal)
				}
			}
		}
	}

	out := &model.Grammar{Terminals: g.Terminals.Clone(), Start: g.Start}
	for _, n := range g.Nonterminals {
		if n == g.Start || reach[n] {
			out.Nonterminals = append(out.Nonterminals, n)
		}
	}
	for _, p := range productive {
		if reach[p.Head] {
			out.Productions = append(out.Productions, model.Production{Head: p.Head, Body: append([]model.GrammarSymbol(nil), p.Body...)})
		}
	}
	return out
}
