/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: encode.go
Description: Writing models back to description files in the format Load reads.
*/

package desc

import (
	"fmt"
	"os"
	"sort"

	"github.com/kleascm/mentor/pkg/model"
	"gopkg.in/yaml.v3"
)

// Encode serializes a model to YAML
func Encode(m *model.Model) ([]byte, error) {
	doc, err := document(m)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

// Save writes the encoded model to path
func Save(path string, m *model.Model) error {
	data, err := Encode(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write description: %w", err)
	}
	return nil
}

func document(m *model.Model) (any, error) {
	switch m.Kind() {
	case model.KindDFA, model.KindNFA:
		a, _ := m.Automaton()
		f := &faFile{Kind: m.Kind(), Name: m.Name, Alphabet: alphabet(a.Alphabet), Start: a.Name(a.Start)}
		for s := 0; s < a.NumStates(); s++ {
			f.States = append(f.States, a.Name(s))
		}
		for _, s := range a.AcceptingStates() {
			f.Accepting = append(f.Accepting, a.Name(s))
		}
		for _, t := range a.Transitions() {
			f.Transitions = append(f.Transitions, faTransition{From: a.Name(t.From), On: symbolRef(t.On), To: a.Name(t.To)})
		}
		return f, nil

	case model.KindPDA:
		p, _ := m.PDA()
		f := &pdaFile{
			Kind:          model.KindPDA,
			Name:          m.Name,
			Alphabet:      alphabet(p.Alphabet),
			StackAlphabet: alphabet(p.StackAlphabet),
			States:        append([]string(nil), p.Names...),
			Start:         p.Names[p.Start],
			AcceptBy:      p.Acceptance.String(),
			InitialStack:  word(p.InitialStack),
		}
		for s, ok := range p.Accepting {
			if ok {
				f.Accepting = append(f.Accepting, p.Names[s])
			}
		}
		for _, r := range p.Rules {
			f.Transitions = append(f.Transitions, pdaTransition{From: p.Names[r.From], Input: symbolRef(r.Input), Pop: symbolRef(r.Pop), To: p.Names[r.To], Push: word(r.Push)})
		}
		return f, nil

	case model.KindRE:
		re, _ := m.Regex()
		return &reFile{Kind: model.KindRE, Name: m.Name, Alphabet: alphabet(re.Alphabet), Regex: re.Expr.String()}, nil

	case model.KindCFG:
		g, _ := m.Grammar()
		f := &cfgFile{Kind: model.KindCFG, Name: m.Name, Start: g.Start, Nonterminals: append([]string(nil), g.Nonterminals...), Terminals: alphabet(g.Terminals)}
		for _, n := range g.Nonterminals {
			if len(g.ProductionsOf(n)) > 0 {
				f.Productions = append(f.Productions, productionText(g, n))
			}
		}
		return f, nil

	case model.KindTM:
		t, _ := m.TM()
		f := &tmFile{
			Kind:          model.KindTM,
			Name:          m.Name,
			InputAlphabet: alphabet(t.InputAlphabet),
			TapeAlphabet:  alphabet(t.TapeAlphabet),
			Blank:         symbol(t.Blank),
			States:        append([]string(nil), t.Names...),
			Start:         t.Names[t.Start],
		}
		for s := range t.Names {
			if t.Accept[s] {
				f.Accept = append(f.Accept, t.Names[s])
			}
			if t.Reject[s] {
				f.Reject = append(f.Reject, t.Names[s])
			}
		}
		keys := make([]model.TMKey, 0, len(t.Rules))
		for k := range t.Rules {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].State != keys[j].State {
				return keys[i].State < keys[j].State
			}
			return keys[i].Read < keys[j].Read
		})
		for _, k := range keys {
			act := t.Rules[k]
			f.Transitions = append(f.Transitions, tmTransition{From: t.Names[k.State], Read: symbol(k.Read), To: t.Names[act.To], Write: symbol(act.Write), Move: act.Move.String()})
		}
		return f, nil
	}
	return nil, fmt.Errorf("cannot encode model of kind %s", m.Kind())
}
