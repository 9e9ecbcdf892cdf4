/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: grammar_test.go
Description: Tests for grammar normalization, CYK membership, derivation search and
the PDA to grammar construction.
*/

package grammar_test

import (
	"testing"

	"github.com/kleascm/mentor/pkg/grammar"
	"github.com/kleascm/mentor/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func body(symbols ...model.GrammarSymbol) []model.GrammarSymbol { return symbols }

// anbn is S → a S b | ε
func anbn() *model.Grammar {
	return &model.Grammar{
		Nonterminals: []string{"S"},
		Terminals:    model.AlphabetOf("ab"),
		Start:        "S",
		Productions: []model.Production{
			{Head: "S", Body: body(model.T('a'), model.N("S"), model.T('b'))},
			{Head: "S"},
		},
	}
}

// arithmetic is a small expression grammar with unit chains: E → E + T | T, T → T * F | F, F → ( E ) | x
func arithmetic() *model.Grammar {
	return &model.Grammar{
		Nonterminals: []string{"E", "T", "F"},
		Terminals:    model.AlphabetOf("+*()x"),
		Start:        "E",
		Productions: []model.Production{
			{Head: "E", Body: body(model.N("E"), model.T('+'), model.N("T"))},
			{Head: "E", Body: body(model.N("T"))},
			{Head: "T", Body: body(model.N("T"), model.T('*'), model.N("F"))},
			{Head: "T", Body: body(model.N("F"))},
			{Head: "F", Body: body(model.T('('), model.N("E"), model.T(')'))},
			{Head: "F", Body: body(model.T('x'))},
		},
	}
}

func requireCNF(t *testing.T, n *grammar.Normalized) {
	t.Helper()
	require.NoError(t, n.Validate())
	for _, p := range n.Productions {
		switch len(p.Body) {
		case 1:
			assert.True(t, p.Body[0].Terminal, "unit production %s", p)
		case 2:
			assert.False(t, p.Body[0].Terminal, "terminal in binary production %s", p)
			assert.False(t, p.Body[1].Terminal, "terminal in binary production %s", p)
		default:
			t.Errorf("production %s is not in CNF", p)
		}
	}
}

func TestToCNF(t *testing.T) {
	n, err := grammar.ToCNF(anbn())
	require.NoError(t, err)
	requireCNF(t, n)
	assert.True(t, n.NullableStart)

	n, err = grammar.ToCNF(arithmetic())
	require.NoError(t, err)
	requireCNF(t, n)
	assert.False(t, n.NullableStart)
}

func TestCYK(t *testing.T) {
	n, err := grammar.ToCNF(anbn())
	require.NoError(t, err)
	for w, expected := range map[string]bool{"": true, "ab": true, "aabb": true, "aab": false, "ba": false, "abab": false} {
		assert.Equal(t, expected, n.Accepts(w), w)
	}

	n, err = grammar.ToCNF(arithmetic())
	require.NoError(t, err)
	var cyk grammar.Recognizer = grammar.NewCYK(n)
	for w, expected := range map[string]bool{"x": true, "x+x*x": true, "(x+x)*x": true, "x+": false, "()": false, "": false} {
		assert.Equal(t, expected, cyk.Accepts(w), w)
	}
	assert.Contains(t, cyk.Name(), "cyk")
}

func TestWordsUpTo(t *testing.T) {
	n, err := grammar.ToCNF(anbn())
	require.NoError(t, err)
	d := grammar.NewDeriver(n, 0)

	words, err := d.WordsUpTo(6)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "ab", "aabb", "aaabbb"}, words)

	words, err = d.WordsOfLength(4)
	require.NoError(t, err)
	assert.Equal(t, []string{"aabb"}, words)

	words, err = d.WordsOfLength(3)
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestDerivationAgreesWithCYK(t *testing.T) {
	n, err := grammar.ToCNF(arithmetic())
	require.NoError(t, err)
	words, err := grammar.NewDeriver(n, 0).WordsUpTo(5)
	require.NoError(t, err)
	assert.Contains(t, words, "x+x*x")
	assert.Contains(t, words, "(x)")
	for _, w := range words {
		assert.True(t, n.Accepts(w), w)
	}
	assert.Equal(t, "x", words[0])
}

func TestInfiniteLoopGuard(t *testing.T) {
	g := &model.Grammar{
		Nonterminals: []string{"S"},
		Terminals:    model.AlphabetOf("a"),
		Start:        "S",
		Productions: []model.Production{
			{Head: "S", Body: body(model.N("S"), model.N("S"))},
			{Head: "S", Body: body(model.T('a'))},
		},
	}
	n, err := grammar.ToCNF(g)
	require.NoError(t, err)
	_, err = grammar.NewDeriver(n, 5).WordsUpTo(8)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInfiniteLoopGuard)
}

func TestTrim(t *testing.T) {
	g := &model.Grammar{
		Nonterminals: []string{"S", "A", "B", "C"},
		Terminals:    model.AlphabetOf("ab"),
		Start:        "S",
		Productions: []model.Production{
			{Head: "S", Body: body(model.T('a'))},
			{Head: "S", Body: body(model.N("B"))},
			{Head: "B", Body: body(model.N("B"), model.T('b'))},
			{Head: "C", Body: body(model.T('b'))},
			{Head: "A", Body: body(model.N("S"))},
		},
	}
	trimmed := grammar.Trim(g)
	assert.Equal(t, []string{"S"}, trimmed.Nonterminals)
	assert.Len(t, trimmed.Productions, 1)
	assert.True(t, grammar.Generating(g)["C"])
	assert.False(t, grammar.Generating(g)["B"])
}

func TestFinite(t *testing.T) {
	n, err := grammar.ToCNF(anbn())
	require.NoError(t, err)
	finite, _ := n.Finite()
	assert.False(t, finite)

	g := &model.Grammar{
		Nonterminals: []string{"S", "A"},
		Terminals:    model.AlphabetOf("abc"),
		Start:        "S",
		Productions: []model.Production{
			{Head: "S", Body: body(model.T('a'))},
			{Head: "S", Body: body(model.T('b'), model.N("A"))},
			{Head: "A", Body: body(model.T('c'))},
			{Head: "A"},
		},
	}
	n, err = grammar.ToCNF(g)
	require.NoError(t, err)
	finite, maxLen := n.Finite()
	assert.True(t, finite)
	assert.Equal(t, 2, maxLen)

	words, err := grammar.NewDeriver(n, 0).WordsUpTo(maxLen)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "bc"}, words)
}

func TestFromPDA(t *testing.T) {
	balanced := &model.PDA{
		Alphabet:      model.AlphabetOf("()"),
		StackAlphabet: model.AlphabetOf("X"),
		Names:         []string{"q"},
		Accepting:     []bool{false},
		Acceptance:    model.AcceptByEmptyStack,
		Rules: []model.PDARule{
			{From: 0, Input: '(', Pop: model.Epsilon, To: 0, Push: []model.Symbol{'X'}},
			{From: 0, Input: ')', Pop: 'X', To: 0},
		},
	}
	g, err := grammar.FromPDA(balanced)
	require.NoError(t, err)
	n, err := grammar.ToCNF(g)
	require.NoError(t, err)
	words, err := grammar.NewDeriver(n, 0).WordsUpTo(4)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "()", "(())", "()()"}, words)

	anbn := &model.PDA{
		Alphabet:      model.AlphabetOf("ab"),
		StackAlphabet: model.AlphabetOf("AZ"),
		Names:         []string{"push", "pop", "done"},
		Accepting:     []bool{false, false, true},
		InitialStack:  []model.Symbol{'Z'},
		Acceptance:    model.AcceptByFinalState,
		Rules: []model.PDARule{
			{From: 0, Input: 'a', Pop: model.Epsilon, To: 0, Push: []model.Symbol{'A'}},
			{From: 0, Input: model.Epsilon, Pop: model.Epsilon, To: 1},
			{From: 1, Input: 'b', Pop: 'A', To: 1},
			{From: 1, Input: model.Epsilon, Pop: 'Z', To: 2, Push: []model.Symbol{'Z'}},
		},
	}
	g, err = grammar.FromPDA(anbn)
	require.NoError(t, err)
	n, err = grammar.ToCNF(g)
	require.NoError(t, err)
	words, err = grammar.NewDeriver(n, 0).WordsUpTo(6)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "ab", "aabb", "aaabbb"}, words)
}
