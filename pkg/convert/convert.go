/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: convert.go
Description: Conversion dispatch inside the RE, NFA, DFA triangle. Every conversion
returns a brand-new model; requests involving PDAs, CFGs or TMs fail with
UnsupportedConversion.
*/

package convert

import (
	"github.com/kleascm/mentor/pkg/model"
	"github.com/kleascm/mentor/pkg/regex"
)

// Convert produces an equivalent model of the target kind
func Convert(m *model.Model, target model.Kind) (*model.Model, error) {
	if !m.Kind().Regular() || !target.Regular() {
		return nil, model.Unsupported(m.Kind(), target.String())
	}

	var out *model.Model
	var err error
	switch target {
	case model.KindDFA:
		var dfa *model.Automaton
		if dfa, err = ToDFA(m); err == nil {
			out, err = model.NewDFA(Minimize(dfa))
		}
	case model.KindNFA:
		out, err = toNFAModel(m)
	case model.KindRE:
		if m.Kind() == model.KindRE {
			re, _ := m.Regex()
			out, err = model.NewRegexModel(re.Expr, re.Alphabet)
			break
		}
		a, _ := m.Automaton()
		out, err = model.NewRegexModel(ToRegex(a), a.Alphabet)
	}
	if err != nil {
		return nil, err
	}
	out.Name = m.Name
	return out, nil
}

// ToDFA normalizes any regular-family model to a complete DFA
func ToDFA(m *model.Model) (*model.Automaton, error) {
	switch m.Kind() {
	case model.KindDFA:
		a, _ := m.Automaton()
		return a.Clone(), nil
	case model.KindNFA:
		a, _ := m.Automaton()
		return Determinize(a), nil
	case model.KindRE:
		re, _ := m.Regex()
		return Determinize(regex.Compile(re.Expr, re.Alphabet)), nil
	}
	return nil, model.Unsupported(m.Kind(), model.KindDFA.String())
}

// ToNFA normalizes any regular-family model to an automaton usable by NFA
// algorithms. DFAs are returned as copies retagged as NFAs.
func ToNFA(m *model.Model) (*model.Automaton, error) {
	switch m.Kind() {
	case model.KindDFA, model.KindNFA:
		a, _ := m.Automaton()
		nfa := a.Clone()
		nfa.Kind = model.KindNFA
		return nfa, nil
	case model.KindRE:
		re, _ := m.Regex()
		return regex.Compile(re.Expr, re.Alphabet), nil
	}
	return nil, model.Unsupported(m.Kind(), model.KindNFA.String())
}

func toNFAModel(m *model.Model) (*model.Model, error) {
	nfa, err := ToNFA(m)
	if err != nil {
		return nil, err
	}
	return model.NewNFA(nfa)
}
