/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: regex.go
Description: Regular expression syntax trees over Empty, Epsilon, Literal, Concat,
Union and Star. Nodes are immutable once built; the constructors apply only the
identities that keep printed expressions readable (∅ and ε absorption).
*/

package model

import "strings"

// RegexOp tags a regex node
type RegexOp int

const (
	OpEmpty RegexOp = iota
	OpEpsilon
	OpLiteral
	OpConcat
	OpUnion
	OpStar
)

// Regex is an immutable regular expression node
type Regex struct {
	op    RegexOp
	sym   Symbol
	left  *Regex
	right *Regex
}

var (
	emptyRegex   = &Regex{op: OpEmpty}
	epsilonRegex = &Regex{op: OpEpsilon}
)

// EmptySet matches nothing
func EmptySet() *Regex { return emptyRegex }

// Eps matches only the empty string
func Eps() *Regex { return epsilonRegex }

// Lit matches a single symbol
func Lit(s Symbol) *Regex { return &Regex{op: OpLiteral, sym: s} }

// Concat matches a followed by b
func Concat(a, b *Regex) *Regex { return &Regex{op: OpConcat, left: a, right: b} }

// Union matches a or b
func Union(a, b *Regex) *Regex { return &Regex{op: OpUnion, left: a, right: b} }

// Star matches zero or more repetitions of a
func Star(a *Regex) *Regex { return &Regex{op: OpStar, left: a} }

// SimplifiedConcat is Concat with ∅ and ε identities applied
func SimplifiedConcat(a, b *Regex) *Regex {
	switch {
	case a.op == OpEmpty || b.op == OpEmpty:
		return emptyRegex
	case a.op == OpEpsilon:
		return b
	case b.op == OpEpsilon:
		return a
	}
	return Concat(a, b)
}

// SimplifiedUnion is Union with ∅ identity and duplicate removal
func SimplifiedUnion(a, b *Regex) *Regex {
	switch {
	case a.op == OpEmpty:
		return b
	case b.op == OpEmpty:
		return a
	case a.String() == b.String():
		return a
	}
	return Union(a, b)
}

// SimplifiedStar is Star with ∅* = ε* = ε and (r*)* = r*
func SimplifiedStar(a *Regex) *Regex {
	switch a.op {
	case OpEmpty, OpEpsilon:
		return epsilonRegex
	case OpStar:
		return a
	}
	return Star(a)
}

// Op returns the node tag
func (r *Regex) Op() RegexOp { return r.op }

// Symbol returns the literal symbol of an OpLiteral node
func (r *Regex) Symbol() Symbol { return r.sym }

// Left returns the first operand (the only operand for Star)
func (r *Regex) Left() *Regex { return r.left }

// Right returns the second operand of Concat and Union
func (r *Regex) Right() *Regex { return r.right }

// Symbols returns the literals used by the expression
func (r *Regex) Symbols() Alphabet {
	var syms []Symbol
	var walk func(*Regex)
	walk = func(n *Regex) {
		switch n.op {
		case OpLiteral:
			syms = append(syms, n.sym)
		case OpConcat, OpUnion:
			walk(n.left)
			walk(n.right)
		case OpStar:
			walk(n.left)
		}
	}
	walk(r)
	return NewAlphabet(syms...)
}

// Size counts the AST nodes
func (r *Regex) Size() int {
	switch r.op {
	case OpConcat, OpUnion:
		return 1 + r.left.Size() + r.right.Size()
	case OpStar:
		return 1 + r.left.Size()
	default:
		return 1
	}
}

const regexMeta = `|*+?()\ε∅`

func (r *Regex) precedence() int {
	switch r.op {
	case OpUnion:
		return 1
	case OpConcat:
		return 2
	default:
		return 3
	}
}

// String prints the expression in the syntax accepted by the regex parser
func (r *Regex) String() string {
	var sb strings.Builder
	r.write(&sb)
	return sb.String()
}

func (r *Regex) write(sb *strings.Builder) {
	switch r.op {
	case OpEmpty:
		sb.WriteString("∅")
	case OpEpsilon:
		sb.WriteString("ε")
	case OpLiteral:
		if strings.ContainsRune(regexMeta, r.sym) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r.sym)
	case OpUnion:
		r.left.writeWrapped(sb, 1)
		sb.WriteByte('|')
		r.right.writeWrapped(sb, 1)
	case OpConcat:
		r.left.writeWrapped(sb, 2)
		r.right.writeWrapped(sb, 2)
	case OpStar:
		r.left.writeWrapped(sb, 3)
		sb.WriteByte('*')
	}
}

func (r *Regex) writeWrapped(sb *strings.Builder, min int) {
	if r.precedence() < min || (min == 3 && r.op == OpStar) {
		sb.WriteByte('(')
		r.write(sb)
		sb.WriteByte(')')
		return
	}
	r.write(sb)
}

// RegexModel pairs an expression with its alphabet
type RegexModel struct {
	Alphabet Alphabet
	Expr     *Regex
}

// Validate checks that the expression only uses declared symbols
func (m *RegexModel) Validate() error {
	if m.Expr == nil {
		return Malformed(KindRE, "expression present", "missing expression")
	}
	for _, s := range m.Expr.Symbols() {
		if !m.Alphabet.Contains(s) {
			return Malformed(KindRE, "alphabet closure", "literal %q is not in the alphabet", s)
		}
	}
	return nil
}
