/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: frompda.go
Description: Conversion of a pushdown automaton to an equivalent context-free grammar
through the triple construction. The PDA is first rewritten to accept by empty stack
under a fresh bottom marker, with every ε-pop rule expanded over the stack alphabet.
*/

package grammar

import (
	"fmt"

	"github.com/kleascm/mentor/pkg/model"
)

// MaxTripleProductions bounds the productions emitted by FromPDA
const MaxTripleProductions = 500000

type triple struct {
	p int
	x model.Symbol
	q int
}

type emptyStackPDA struct {
	names  []string
	start  int
	bottom model.Symbol
	stack  []model.Symbol
	rules  map[int][]model.PDARule
	source *model.PDA
}

func freshBottom(stack model.Alphabet) model.Symbol {
	if !stack.Contains('⊥') {
		return '⊥'
	}
	for r := model.Symbol(0xE000); ; r++ {
		if !stack.Contains(r) {
			return r
		}
	}
}

func uniqueNames(names []string) []string {
	out := make([]string, len(names))
	seen := make(map[string]bool, len(names))
	for i, n := range names {
		if n == "" || seen[n] {
			n = fmt.Sprintf("%s#%d", n, i)
		}
		seen[n] = true
		out[i] = n
	}
	return out
}

func toEmptyStack(p *model.PDA) *emptyStackPDA {
	n := p.NumStates()
	e := &emptyStackPDA{
		names:  append(uniqueNames(p.Names), "start⊥", "end⊥"),
		start:  n,
		bottom: freshBottom(p.StackAlphabet),
		rules:  make(map[int][]model.PDARule),
		source: p,
	}
	e.stack = append(p.StackAlphabet.Clone(), e.bottom)
	end := n + 1
	add := func(r model.PDARule) { e.rules[r.From] = append(e.rules[r.From], r) }

	add(model.PDARule{From: e.start, Input: model.Epsilon, Pop: e.bottom, To: p.Start, Push: append(append([]model.Symbol(nil), p.InitialStack...), e.bottom)})
	for _, r := range p.Rules {
		if r.Pop != model.Epsilon {
			add(r)
			continue
		}
		for _, x := range e.stack {
			add(model.PDARule{From: r.From, Input: r.Input, Pop: x, To: r.To, Push: append(append([]model.Symbol(nil), r.Push...), x)})
		}
	}

	if p.Acceptance == model.AcceptByEmptyStack {
		for q := 0; q < n; q++ {
			add(model.PDARule{From: q, Input: model.Epsilon, Pop: e.bottom, To: end})
		}
		return e
	}
	for q := 0; q < n; q++ {
		if !p.Accepting[q] {
			continue
		}
		for _, x := range e.stack {
			add(model.PDARule{From: q, Input: model.Epsilon, Pop: x, To: end})
		}
	}
	for _, x := range e.stack {
		add(model.PDARule{From: end, Input: model.Epsilon, Pop: x, To: end})
	}
	return e
}

func (e *emptyStackPDA) nonterminal(t triple) string {
	return fmt.Sprintf("[%s,%s,%s]", e.names[t.p], model.SymbolString(t.x), e.names[t.q])
}

// FromPDA builds a grammar generating the language of p
func FromPDA(p *model.PDA) (*model.Grammar, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	e := toEmptyStack(p)
	states := len(e.names)

	g := &model.Grammar{Terminals: p.Alphabet.Clone(), Start: "S"}
	declared := map[string]bool{"S": true}
	g.Nonterminals = []string{"S"}
	var work []triple
	need := func(t triple) model.GrammarSymbol {
		name := e.nonterminal(t)
		if !declared[name] {
			declared[name] = true
			g.Nonterminals = append(g.Nonterminals, name)
			work = append(work, t)
		}
		return model.N(name)
	}

	for q := 0; q < states; q++ {
		g.Productions = append(g.Productions, model.Production{Head: "S", Body: []model.GrammarSymbol{need(triple{e.start, e.bottom, q})}})
	}

	for len(work) > 0 {
		t := work[0]
		work = work[1:]
		head := e.nonterminal(t)
		for _, r := range e.rules[t.p] {
			if r.Pop != t.x {
				continue
			}
			var prefix []model.GrammarSymbol
			if r.Input != model.Epsilon {
				prefix = []model.GrammarSymbol{model.T(r.Input)}
			}
			k := len(r.Push)
			if k == 0 {
				if r.To == t.q {
					g.Productions = append(g.Productions, model.Production{Head: head, Body: prefix})
				}
				continue
			}
			// intermediate states q1..q(k-1); the last one is fixed to t.q
			mids := make([]int, k-1)
			for {
				body := append([]model.GrammarSymbol(nil), prefix...)
				from := r.To
				for i, y := range r.Push {
					to := t.q
					if i < k-1 {
						to = mids[i]
					}
					body = append(body, need(triple{from, y, to}))
					from = to
				}
				g.Productions = append(g.Productions, model.Production{Head: head, Body: body})
				if len(g.Productions) > MaxTripleProductions {
					return nil, fmt.Errorf("PDA with %d states is too large to convert: more than %d productions", p.NumStates(), MaxTripleProductions)
				}
				if !advance(mids, states) {
					break
				}
			}
		}
	}
	return Trim(g), nil
}

// advance steps an odometer over [0, base)^len(digits)
func advance(digits []int, base int) bool {
	for i := len(digits) - 1; i >= 0; i-- {
		digits[i]++
		if digits[i] < base {
			return true
		}
		digits[i] = 0
	}
	return false
}
