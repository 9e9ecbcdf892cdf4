/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: derive.go
Description: Breadth-first leftmost derivation search over a Normalized grammar.
Every CNF symbol yields at least one character, so forms longer than the target length
are pruned. A budget on distinct sentential forms guards against runaway searches.
*/

package grammar

import (
	"sort"
	"strings"

	"github.com/kleascm/mentor/pkg/model"
)

// DefaultMaxForms bounds the sentential forms explored by one search
const DefaultMaxForms = 200000

// Deriver enumerates the words of a normalized grammar by length
type Deriver struct {
	g        *Normalized
	maxForms int
}

// NewDeriver creates a deriver; maxForms <= 0 selects DefaultMaxForms
func NewDeriver(g *Normalized, maxForms int) *Deriver {
	if maxForms <= 0 {
		maxForms = DefaultMaxForms
	}
	return &Deriver{g: g, maxForms: maxForms}
}

// WordsOfLength returns every word of exactly length n in shortlex order
func (d *Deriver) WordsOfLength(n int) ([]string, error) {
	return d.search(n, true)
}

// WordsUpTo returns every word of length at most n in shortlex order
func (d *Deriver) WordsUpTo(n int) ([]string, error) {
	return d.search(n, false)
}

func formKey(form []model.GrammarSymbol) string {
	var sb strings.Builder
	for _, s := range form {
		if s.Terminal {
			sb.WriteRune(s.Char)
		} else {
			sb.WriteByte(0)
			sb.WriteString(s.Nonterminal)
			sb.WriteByte(0)
		}
	}
	return sb.String()
}

func (d *Deriver) search(n int, exact bool) ([]string, error) {
	if n < 0 {
		return nil, nil
	}
	found := make(map[string]bool)
	if d.g.NullableStart && (n == 0 || !exact) {
		found[""] = true
	}

	start := []model.GrammarSymbol{model.N(d.g.Start)}
	seen := map[string]bool{formKey(start): true}
	queue := [][]model.GrammarSymbol{start}
	alternatives := make(map[string][]model.Production)
	for _, p := range d.g.Productions {
		alternatives[p.Head] = append(alternatives[p.Head], p)
	}

	for len(queue) > 0 {
		form := queue[0]
		queue = queue[1:]

		i := 0
		for i < len(form) && form[i].Terminal {
			i++
		}
		if i == len(form) {
			if len(form) <= n && (!exact || len(form) == n) {
				found[terminalString(form)] = true
			}
			continue
		}
		for _, p := range alternatives[form[i].Nonterminal] {
			if len(form)-1+len(p.Body) > n {
				continue
			}
			next := make([]model.GrammarSymbol, 0, len(form)-1+len(p.Body))
			next = append(next, form[:i]...)
			next = append(next, p.Body...)
			next = append(next, form[i+1:]...)
			key := formKey(next)
			if seen[key] {
				continue
			}
			seen[key] = true
			if len(seen) > d.maxForms {
				return nil, &model.InfiniteLoopGuardError{Limit: d.maxForms, Partial: shortlex(found)}
			}
			queue = append(queue, next)
		}
	}
	return shortlex(found), nil
}

func terminalString(form []model.GrammarSymbol) string {
	r := make([]rune, len(form))
	for i, s := range form {
		r[i] = s.Char
	}
	return string(r)
}

// shortlex sorts a word set by length, then by code point
func shortlex(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	SortShortlex(out)
	return out
}

// SortShortlex orders words by rune length, then lexicographically by code point
func SortShortlex(words []string) {
	sort.Slice(words, func(i, j int) bool {
		li, lj := len([]rune(words[i])), len([]rune(words[j]))
		if li != lj {
			return li < lj
		}
		return words[i] < words[j]
	})
}
