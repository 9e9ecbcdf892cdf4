/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: cyk.go
Description: CYK membership test over a Normalized grammar.
*/

package grammar

import (
	"github.com/kleascm/mentor/pkg/model"
)

type binaryRule struct {
	head, left, right int
}

// CYK is a prepared membership tester
type CYK struct {
	g        *Normalized
	index    map[string]int
	byChar   map[model.Symbol][]int
	binaries []binaryRule
}

// NewCYK indexes the productions of a normalized grammar
func NewCYK(g *Normalized) *CYK {
	c := &CYK{
		g:      g,
		index:  make(map[string]int, len(g.Nonterminals)),
		byChar: make(map[model.Symbol][]int),
	}
	for i, n := range g.Nonterminals {
		c.index[n] = i
	}
	for _, p := range g.Productions {
		head := c.index[p.Head]
		switch len(p.Body) {
		case 1:
			c.byChar[p.Body[0].Char] = append(c.byChar[p.Body[0].Char], head)
		case 2:
			c.binaries = append(c.binaries, binaryRule{head, c.index[p.Body[0].Nonterminal], c.index[p.Body[1].Nonterminal]})
		}
	}
	return c
}

// Name implements Recognizer
func (c *CYK) Name() string { return "cyk " + c.g.Name() }

// Accepts implements Recognizer
func (c *CYK) Accepts(word string) bool {
	w := []rune(word)
	n := len(w)
	if n == 0 {
		return c.g.NullableStart
	}
	start, ok := c.index[c.g.Start]
	if !ok {
		return false
	}
	k := len(c.g.Nonterminals)

	// table[l-1][i] holds the nonterminals deriving w[i:i+l]
	table := make([][][]bool, n)
	for l := 1; l <= n; l++ {
		row := make([][]bool, n-l+1)
		for i := range row {
			row[i] = make([]bool, k)
		}
		table[l-1] = row
	}
	for i, r := range w {
		for _, h := range c.byChar[r] {
			table[0][i][h] = true
		}
	}
	for l := 2; l <= n; l++ {
		for i := 0; i+l <= n; i++ {
			cell := table[l-1][i]
			for split := 1; split < l; split++ {
				left := table[split-1][i]
				right := table[l-split-1][i+split]
				for _, b := range c.binaries {
					if !cell[b.head] && left[b.left] && right[b.right] {
						cell[b.head] = true
					}
				}
			}
		}
	}
	return table[n-1][0][start]
}

// Accepts reports whether the normalized grammar derives word
func (n *Normalized) Accepts(word string) bool {
	return NewCYK(n).Accepts(word)
}
