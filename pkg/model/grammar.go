/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: grammar.go
Description: Context-free grammars. Productions keep their declaration order, which
fixes the order in which derivation search tries alternatives.
*/

package model

import (
	"sort"
	"strings"
)

// GrammarSymbol is either a terminal character or a nonterminal name
type GrammarSymbol struct {
	Terminal    bool
	Char        Symbol
	Nonterminal string
}

// T builds a terminal symbol
func T(c Symbol) GrammarSymbol { return GrammarSymbol{Terminal: true, Char: c} }

// N builds a nonterminal symbol
func N(name string) GrammarSymbol { return GrammarSymbol{Nonterminal: name} }

func (s GrammarSymbol) String() string {
	if s.Terminal {
		return string(s.Char)
	}
	return s.Nonterminal
}

// Production is Head → Body; an empty body derives ε
type Production struct {
	Head string
	Body []GrammarSymbol
}

func (p Production) String() string {
	if len(p.Body) == 0 {
		return p.Head + " → ε"
	}
	parts := make([]string, len(p.Body))
	for i, s := range p.Body {
		parts[i] = s.String()
	}
	return p.Head + " → " + strings.Join(parts, " ")
}

// Grammar is a context-free grammar
type Grammar struct {
	Nonterminals []string
	Terminals    Alphabet
	Start        string
	Productions  []Production
}

// IsNonterminal reports whether name is declared
func (g *Grammar) IsNonterminal(name string) bool {
	for _, n := range g.Nonterminals {
		if n == name {
			return true
		}
	}
	return false
}

// ProductionsOf returns the alternatives for a head in declaration order
func (g *Grammar) ProductionsOf(head string) []Production {
	var out []Production
	for _, p := range g.Productions {
		if p.Head == head {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks that every referenced symbol is declared
func (g *Grammar) Validate() error {
	declared := make(map[string]bool, len(g.Nonterminals))
	for _, n := range g.Nonterminals {
		if n == "" {
			return Malformed(KindCFG, "nonterminal names", "empty nonterminal name")
		}
		declared[n] = true
	}
	if !declared[g.Start] {
		return Malformed(KindCFG, "start ∈ nonterminals", "start symbol %q is undeclared", g.Start)
	}
	for _, p := range g.Productions {
		if !declared[p.Head] {
			return Malformed(KindCFG, "heads are declared", "production head %q is undeclared", p.Head)
		}
		for _, s := range p.Body {
			if s.Terminal {
				if !g.Terminals.Contains(s.Char) {
					return Malformed(KindCFG, "terminals are declared", "terminal %q in %s is undeclared", s.Char, p)
				}
			} else if !declared[s.Nonterminal] {
				return Malformed(KindCFG, "body nonterminals are declared", "nonterminal %q in %s is undeclared", s.Nonterminal, p)
			}
		}
	}
	return nil
}

// Clone returns an independent copy
func (g *Grammar) Clone() *Grammar {
	h := &Grammar{
		Nonterminals: append([]string(nil), g.Nonterminals...),
		Terminals:    g.Terminals.Clone(),
		Start:        g.Start,
		Productions:  make([]Production, len(g.Productions)),
	}
	for i, p := range g.Productions {
		h.Productions[i] = Production{Head: p.Head, Body: append([]GrammarSymbol(nil), p.Body...)}
	}
	return h
}

func (g *Grammar) String() string {
	var sb strings.Builder
	heads := append([]string(nil), g.Nonterminals...)
	sort.SliceStable(heads, func(i, j int) bool { return heads[i] == g.Start && heads[j] != g.Start })
	for _, h := range heads {
		for _, p := range g.ProductionsOf(h) {
			sb.WriteString(p.String())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
