/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: alphabet.go
Description: Symbols and alphabets shared by every formalism. An alphabet is a sorted,
duplicate-free set of runes fixed when the model is built.
*/

package model

import (
	"sort"
	"strings"
)

// Symbol is a single input, stack or tape character
type Symbol = rune

// Epsilon labels transitions that consume nothing
const Epsilon Symbol = -1

// SymbolString renders a symbol, using ε for Epsilon
func SymbolString(s Symbol) string {
	if s == Epsilon {
		return "ε"
	}
	return string(s)
}

// Alphabet is an ordered finite set of symbols
type Alphabet []Symbol

// NewAlphabet builds a sorted, deduplicated alphabet
func NewAlphabet(symbols ...Symbol) Alphabet {
	seen := make(map[Symbol]bool, len(symbols))
	out := make(Alphabet, 0, len(symbols))
	for _, s := range symbols {
		if s == Epsilon || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AlphabetOf builds an alphabet from the runes of a string
func AlphabetOf(s string) Alphabet {
	return NewAlphabet([]rune(s)...)
}

// Contains reports whether s is a member of the alphabet
func (a Alphabet) Contains(s Symbol) bool {
	return a.Index(s) >= 0
}

// Index returns the position of s in the alphabet, or -1
func (a Alphabet) Index(s Symbol) int {
	i := sort.Search(len(a), func(i int) bool { return a[i] >= s })
	if i < len(a) && a[i] == s {
		return i
	}
	return -1
}

// Union returns the alphabet containing symbols of both
func (a Alphabet) Union(b Alphabet) Alphabet {
	all := make([]Symbol, 0, len(a)+len(b))
	all = append(all, a...)
	all = append(all, b...)
	return NewAlphabet(all...)
}

// Equal reports whether both alphabets hold the same symbols
func (a Alphabet) Equal(b Alphabet) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy
func (a Alphabet) Clone() Alphabet {
	return append(Alphabet(nil), a...)
}

func (a Alphabet) String() string {
	var sb strings.Builder
	for _, s := range a {
		sb.WriteRune(s)
	}
	return sb.String()
}
