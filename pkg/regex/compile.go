/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: compile.go
Description: Thompson construction from regex syntax trees to NFAs. Every node
compiles to a fragment with one entry and one exit state, wired with ε-transitions,
so the NFA has at most two states per AST node.
*/

package regex

import (
	"github.com/kleascm/mentor/pkg/model"
)

type fragment struct {
	entry model.State
	exit  model.State
}

type compiler struct {
	nfa *model.Automaton
}

// Compile builds a Thompson NFA for the expression over the given alphabet
func Compile(expr *model.Regex, alphabet model.Alphabet) *model.Automaton {
	c := &compiler{nfa: model.NewAutomaton(model.KindNFA, alphabet)}
	f := c.compile(expr)
	c.nfa.Start = f.entry
	c.nfa.SetAccepting(f.exit, true)
	return c.nfa
}

// CompileModel converts an RE model into a new NFA model
func CompileModel(m *model.Model) (*model.Model, error) {
	re, ok := m.Regex()
	if !ok {
		return nil, model.Unsupported(m.Kind(), model.KindNFA.String())
	}
	out, err := model.NewNFA(Compile(re.Expr, re.Alphabet))
	if err != nil {
		return nil, err
	}
	out.Name = m.Name
	return out, nil
}

func (c *compiler) pair() fragment {
	return fragment{entry: c.nfa.AddState("", false), exit: c.nfa.AddState("", false)}
}

func (c *compiler) compile(re *model.Regex) fragment {
	switch re.Op() {
	case model.OpEmpty:
		return c.pair()
	case model.OpEpsilon:
		f := c.pair()
		c.nfa.AddTransition(f.entry, model.Epsilon, f.exit)
		return f
	case model.OpLiteral:
		f := c.pair()
		c.nfa.AddTransition(f.entry, re.Symbol(), f.exit)
		return f
	case model.OpConcat:
		left := c.compile(re.Left())
		right := c.compile(re.Right())
		c.nfa.AddTransition(left.exit, model.Epsilon, right.entry)
		return fragment{entry: left.entry, exit: right.exit}
	case model.OpUnion:
		f := c.pair()
		left := c.compile(re.Left())
		right := c.compile(re.Right())
		c.nfa.AddTransition(f.entry, model.Epsilon, left.entry)
		c.nfa.AddTransition(f.entry, model.Epsilon, right.entry)
		c.nfa.AddTransition(left.exit, model.Epsilon, f.exit)
		c.nfa.AddTransition(right.exit, model.Epsilon, f.exit)
		return f
	case model.OpStar:
		f := c.pair()
		inner := c.compile(re.Left())
		c.nfa.AddTransition(f.entry, model.Epsilon, inner.entry)
		c.nfa.AddTransition(f.entry, model.Epsilon, f.exit)
		c.nfa.AddTransition(inner.exit, model.Epsilon, inner.entry)
		c.nfa.AddTransition(inner.exit, model.Epsilon, f.exit)
		return f
	}
	return c.pair()
}
