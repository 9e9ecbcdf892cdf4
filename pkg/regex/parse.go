/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: parse.go
Description: Parser for the regular expression text used in .re description files.
Grammar: union := concat ('|' concat)*, concat := postfix*, postfix := atom ('*'|'+'|'?')*.
A backslash escapes the next rune, ε or () is the empty string and ∅ is the empty set.
*/

package regex

import (
	"github.com/kleascm/mentor/pkg/model"
)

type parser struct {
	src []rune
	pos int
}

// Parse reads an expression. Syntax errors are MalformedModel errors.
func Parse(text string) (*model.Regex, error) {
	p := &parser{src: []rune(text)}
	re, err := p.union()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected %q", p.src[p.pos])
	}
	return re, nil
}

// MustParse is Parse for expressions known to be valid, such as test fixtures
func MustParse(text string) *model.Regex {
	re, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return re
}

func (p *parser) errorf(format string, args ...interface{}) error {
	args = append(args, p.pos)
	return model.Malformed(model.KindRE, "regex syntax", format+" at offset %d", args...)
}

func (p *parser) peek() (rune, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) union() (*model.Regex, error) {
	left, err := p.concat()
	if err != nil {
		return nil, err
	}
	for {
		r, ok := p.peek()
		if !ok || r != '|' {
			return left, nil
		}
		p.pos++
		right, err := p.concat()
		if err != nil {
			return nil, err
		}
		left = model.Union(left, right)
	}
}

func (p *parser) concat() (*model.Regex, error) {
	var out *model.Regex
	for {
		r, ok := p.peek()
		if !ok || r == '|' || r == ')' {
			break
		}
		next, err := p.postfix()
		if err != nil {
			return nil, err
		}
		if out == nil {
			out = next
		} else {
			out = model.Concat(out, next)
		}
	}
	if out == nil {
		return model.Eps(), nil
	}
	return out, nil
}

func (p *parser) postfix() (*model.Regex, error) {
	atom, err := p.atom()
	if err != nil {
		return nil, err
	}
	for {
		r, ok := p.peek()
		if !ok {
			return atom, nil
		}
		switch r {
		case '*':
			atom = model.Star(atom)
		case '+':
			atom = model.Concat(atom, model.Star(atom))
		case '?':
			atom = model.Union(atom, model.Eps())
		default:
			return atom, nil
		}
		p.pos++
	}
}

func (p *parser) atom() (*model.Regex, error) {
	r, _ := p.peek()
	switch r {
	case '(':
		p.pos++
		if next, ok := p.peek(); ok && next == ')' {
			p.pos++
			return model.Eps(), nil
		}
		inner, err := p.union()
		if err != nil {
			return nil, err
		}
		if next, ok := p.peek(); !ok || next != ')' {
			return nil, p.errorf("missing closing parenthesis")
		}
		p.pos++
		return inner, nil
	case '\\':
		p.pos++
		esc, ok := p.peek()
		if !ok {
			return nil, p.errorf("dangling escape")
		}
		p.pos++
		return model.Lit(esc), nil
	case 'ε':
		p.pos++
		return model.Eps(), nil
	case '∅':
		p.pos++
		return model.EmptySet(), nil
	case '*', '+', '?':
		return nil, p.errorf("operator %q has no operand", r)
	}
	p.pos++
	return model.Lit(r), nil
}
