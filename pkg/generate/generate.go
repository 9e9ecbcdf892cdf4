/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generate.go
Description: Lazy enumeration of the words of a language in shortlex order. Regular
models walk their minimal DFA breadth-first, pruned to states that can still reach
acceptance. Grammars and pushdown automata enumerate one length at a time through
derivation search on the normalized grammar.
*/

package generate

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
	"github.com/kleascm/mentor/pkg/convert"
	"github.com/kleascm/mentor/pkg/grammar"
	"github.com/kleascm/mentor/pkg/model"
)

// Generator yields distinct words in shortlex order. Next returns false once the
// language is exhausted. A generator cannot be rewound.
type Generator interface {
	Next() (string, bool, error)
}

// Options bounds generation
type Options struct {
	// MaxForms bounds each derivation search; zero selects the grammar default
	MaxForms int
}

// New builds a generator for a DFA, NFA, RE, CFG or PDA model
func New(m *model.Model, opts Options) (Generator, error) {
	switch m.Kind() {
	case model.KindDFA, model.KindNFA, model.KindRE:
		dfa, err := convert.ToDFA(m)
		if err != nil {
			return nil, err
		}
		return newRegularGenerator(convert.Minimize(dfa)), nil
	case model.KindCFG, model.KindPDA:
		n, err := normalize(m)
		if err != nil {
			return nil, err
		}
		return newGrammarGenerator(n, opts), nil
	}
	return nil, model.Unsupported(m.Kind(), "generate")
}

// ByCount returns up to count words. When a search budget trips, the words
// collected so far travel in the InfiniteLoopGuardError.
func ByCount(m *model.Model, count int, opts Options) ([]string, error) {
	gen, err := New(m, opts)
	if err != nil {
		return nil, err
	}
	var words []string
	for len(words) < count {
		w, ok, err := gen.Next()
		if err != nil {
			return words, withPartial(err, words)
		}
		if !ok {
			break
		}
		words = append(words, w)
	}
	return words, nil
}

// UpToLength returns every word no longer than length. It is defined for grammars
// and pushdown automata.
func UpToLength(m *model.Model, length int, opts Options) ([]string, error) {
	if m.Kind() != model.KindCFG && m.Kind() != model.KindPDA {
		return nil, model.Unsupported(m.Kind(), "generate-length")
	}
	n, err := normalize(m)
	if err != nil {
		return nil, err
	}
	return grammar.NewDeriver(n, opts.MaxForms).WordsUpTo(length)
}

func normalize(m *model.Model) (*grammar.Normalized, error) {
	g, ok := m.Grammar()
	if !ok {
		p, _ := m.PDA()
		var err error
		if g, err = grammar.FromPDA(p); err != nil {
			return nil, err
		}
	}
	return grammar.ToCNF(g)
}

func withPartial(err error, words []string) error {
	var guard *model.InfiniteLoopGuardError
	if !errors.As(err, &guard) {
		return err
	}
	partial := append(append([]string(nil), words...), guard.Partial...)
	return &model.InfiniteLoopGuardError{Limit: guard.Limit, Partial: partial}
}

type frontier struct {
	state model.State
	word  []rune
}

type regularGenerator struct {
	dfa   *model.Automaton
	live  *bitset.BitSet
	queue []frontier
}

func newRegularGenerator(dfa *model.Automaton) *regularGenerator {
	g := &regularGenerator{dfa: dfa, live: convert.CoAccessible(dfa)}
	if g.live.Test(uint(dfa.Start)) {
		g.queue = []frontier{{state: dfa.Start}}
	}
	return g
}

func (g *regularGenerator) Next() (string, bool, error) {
	for len(g.queue) > 0 {
		cur := g.queue[0]
		g.queue = g.queue[1:]
		for _, sym := range g.dfa.Alphabet {
			next, ok := g.dfa.Successor(cur.state, sym)
			if !ok || !g.live.Test(uint(next)) {
				continue
			}
			word := make([]rune, len(cur.word)+1)
			copy(word, cur.word)
			word[len(cur.word)] = sym
			g.queue = append(g.queue, frontier{state: next, word: word})
		}
		if g.dfa.IsAccepting(cur.state) {
			return string(cur.word), true, nil
		}
	}
	return "", false, nil
}

type grammarGenerator struct {
	deriver *grammar.Deriver
	finite  bool
	maxLen  int
	length  int
	pending []string
}

func newGrammarGenerator(n *grammar.Normalized, opts Options) *grammarGenerator {
	finite, maxLen := n.Finite()
	return &grammarGenerator{
		deriver: grammar.NewDeriver(n, opts.MaxForms),
		finite:  finite,
		maxLen:  maxLen,
	}
}

func (g *grammarGenerator) Next() (string, bool, error) {
	for len(g.pending) == 0 {
		if g.finite && g.length > g.maxLen {
			return "", false, nil
		}
		words, err := g.deriver.WordsOfLength(g.length)
		if err != nil {
			return "", false, err
		}
		g.length++
		g.pending = words
	}
	w := g.pending[0]
	g.pending = g.pending[1:]
	return w, true, nil
}
