/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: grammar.go
Description: Grammar engine entry points for context-free grammars: a Normalized
grammar in Chomsky Normal Form with a nullable-start flag, used for CYK membership,
derivation search and finiteness analysis.
*/

package grammar

import (
	"fmt"
	"strings"

	"github.com/kleascm/mentor/pkg/model"
)

// Normalized is a grammar in Chomsky Normal Form. Every production is A → B C or
// A → a; whether ε belongs to the language is tracked separately.
type Normalized struct {
	*model.Grammar
	NullableStart bool
}

// Recognizer answers membership questions for one grammar
type Recognizer interface {
	// Accepts reports whether the grammar derives the word
	Accepts(word string) bool
	// Name returns a label for logs
	Name() string
}

// Name returns a short label used in logs
func (n *Normalized) Name() string {
	return fmt.Sprintf("cnf(%s, %d productions)", n.Start, len(n.Productions))
}

func (n *Normalized) String() string {
	var sb strings.Builder
	if n.NullableStart {
		sb.WriteString(n.Start + " → ε\n")
	}
	sb.WriteString(n.Grammar.String())
	return sb.String()
}

// freshNames hands out nonterminal names that do not collide with existing ones
type freshNames struct {
	used map[string]bool
}

func newFreshNames(g *model.Grammar) *freshNames {
	f := &freshNames{used: make(map[string]bool, len(g.Nonterminals))}
	for _, n := range g.Nonterminals {
		f.used[n] = true
	}
	return f
}

func (f *freshNames) next(base string) string {
	name := base
	for i := 1; f.used[name]; i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}
	f.used[name] = true
	return name
}

func productionKey(p model.Production) string {
	var sb strings.Builder
	sb.WriteString(p.Head)
	sb.WriteString("→")
	for _, s := range p.Body {
		if s.Terminal {
			sb.WriteString("'")
			sb.WriteRune(s.Char)
		} else {
			sb.WriteString("<")
			sb.WriteString(s.Nonterminal)
			sb.WriteString(">")
		}
	}
	return sb.String()
}

// productionSet keeps insertion order and drops duplicates
type productionSet struct {
	seen  map[string]bool
	items []model.Production
}

func (s *productionSet) add(p model.Production) {
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	k := productionKey(p)
	if s.seen[k] {
		return
	}
	s.seen[k] = true
	s.items = append(s.items, p)
}
