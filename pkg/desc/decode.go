/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: decode.go
Description: Loading description files into validated models. The kind comes from
the caller when declared, otherwise from a top-level kind key, otherwise from the
file extension.
*/

package desc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kleascm/mentor/pkg/model"
	"github.com/kleascm/mentor/pkg/regex"
	"gopkg.in/yaml.v3"
)

// Load reads and decodes a description file. A zero declared kind means infer.
func Load(path string, declared model.Kind) (*model.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read description: %w", err)
	}
	kind := declared
	if kind == 0 {
		if kind = headerKind(data); kind == 0 {
			if kind, err = model.KindFromPath(path); err != nil {
				return nil, err
			}
		}
	}
	m, err := LoadBytes(data, kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

// LoadBytes decodes a description. A zero kind is taken from the kind: key.
func LoadBytes(data []byte, kind model.Kind) (*model.Model, error) {
	if kind == 0 {
		kind = headerKind(data)
	}
	var (
		m   *model.Model
		err error
	)
	switch kind {
	case model.KindDFA, model.KindNFA:
		m, err = decodeFA(data, kind)
	case model.KindPDA:
		m, err = decodePDA(data)
	case model.KindRE:
		m, err = decodeRE(data)
	case model.KindCFG:
		m, err = decodeCFG(data)
	case model.KindTM:
		m, err = decodeTM(data)
	default:
		return nil, fmt.Errorf("cannot determine the model kind (set kind: or --type)")
	}
	return m, err
}

func headerKind(data []byte) model.Kind {
	var h header
	if err := yaml.Unmarshal(data, &h); err != nil {
		return 0
	}
	return h.Kind
}

func syntaxError(kind model.Kind, err error) error {
	return model.Malformed(kind, "description syntax", "%v", err)
}

func decodeFA(data []byte, kind model.Kind) (*model.Model, error) {
	var f faFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, syntaxError(kind, err)
	}
	states := newStateTable(f.States)
	strict := len(f.States) > 0
	if !strict && f.Start != "" {
		states.add(f.Start)
	}

	type edge struct {
		from, to model.State
		on       model.Symbol
	}
	edges := make([]edge, 0, len(f.Transitions))
	for _, t := range f.Transitions {
		from, err := states.lookup(kind, strict, t.From)
		if err != nil {
			return nil, err
		}
		to, err := states.lookup(kind, strict, t.To)
		if err != nil {
			return nil, err
		}
		edges = append(edges, edge{from, to, orEpsilon(t.On)})
	}
	accepting := make(map[model.State]bool, len(f.Accepting))
	for _, name := range f.Accepting {
		s, err := states.lookup(kind, strict, name)
		if err != nil {
			return nil, model.Malformed(kind, "accepting ⊆ states", "unknown accepting state %q", name)
		}
		accepting[s] = true
	}
	start, err := states.lookup(kind, true, f.Start)
	if err != nil {
		return nil, model.Malformed(kind, "start ∈ states", "unknown start state %q", f.Start)
	}

	a := model.NewAutomaton(kind, model.Alphabet(f.Alphabet))
	for i, name := range states.names {
		a.AddState(name, accepting[i])
	}
	a.Start = start
	for _, e := range edges {
		a.AddTransition(e.from, e.on, e.to)
	}
	m, err := model.NewAutomatonModel(a)
	if err != nil {
		return nil, err
	}
	m.Name = f.Name
	return m, nil
}

func decodePDA(data []byte) (*model.Model, error) {
	var f pdaFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, syntaxError(model.KindPDA, err)
	}
	acceptance, err := model.ParseAcceptance(f.AcceptBy)
	if err != nil {
		return nil, model.Malformed(model.KindPDA, "acceptance convention", "%v", err)
	}
	states := newStateTable(f.States)
	strict := len(f.States) > 0
	if !strict && f.Start != "" {
		states.add(f.Start)
	}

	p := &model.PDA{
		Alphabet:      model.Alphabet(f.Alphabet),
		StackAlphabet: model.Alphabet(f.StackAlphabet),
		InitialStack:  []model.Symbol(f.InitialStack),
		Acceptance:    acceptance,
	}
	for _, t := range f.Transitions {
		from, err := states.lookup(model.KindPDA, strict, t.From)
		if err != nil {
			return nil, err
		}
		to, err := states.lookup(model.KindPDA, strict, t.To)
		if err != nil {
			return nil, err
		}
		p.Rules = append(p.Rules, model.PDARule{From: from, Input: orEpsilon(t.Input), Pop: orEpsilon(t.Pop), To: to, Push: []model.Symbol(t.Push)})
	}
	accepting := make(map[model.State]bool)
	for _, name := range f.Accepting {
		s, err := states.lookup(model.KindPDA, strict, name)
		if err != nil {
			return nil, model.Malformed(model.KindPDA, "accepting ⊆ states", "unknown accepting state %q", name)
		}
		accepting[s] = true
	}
	if p.Start, err = states.lookup(model.KindPDA, true, f.Start); err != nil {
		return nil, model.Malformed(model.KindPDA, "start ∈ states", "unknown start state %q", f.Start)
	}
	p.Names = states.names
	p.Accepting = make([]bool, len(p.Names))
	for s := range accepting {
		p.Accepting[s] = true
	}

	m, err := model.NewPDAModel(p)
	if err != nil {
		return nil, err
	}
	m.Name = f.Name
	return m, nil
}

func decodeRE(data []byte) (*model.Model, error) {
	var f reFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, syntaxError(model.KindRE, err)
	}
	expr, err := regex.Parse(f.Regex)
	if err != nil {
		return nil, err
	}
	var alpha model.Alphabet
	if f.Alphabet != nil {
		alpha = model.Alphabet(f.Alphabet)
	}
	m, err := model.NewRegexModel(expr, alpha)
	if err != nil {
		return nil, err
	}
	m.Name = f.Name
	return m, nil
}

func decodeTM(data []byte) (*model.Model, error) {
	var f tmFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, syntaxError(model.KindTM, err)
	}
	states := newStateTable(f.States)
	strict := len(f.States) > 0
	if !strict && f.Start != "" {
		states.add(f.Start)
	}

	tm := &model.TM{
		InputAlphabet: model.Alphabet(f.InputAlphabet),
		TapeAlphabet:  model.Alphabet(f.TapeAlphabet),
		Blank:         model.Symbol(f.Blank),
		Accept:        make(map[model.State]bool),
		Reject:        make(map[model.State]bool),
		Rules:         make(map[model.TMKey]model.TMAction),
	}
	if tm.Blank == model.Epsilon || tm.Blank == 0 {
		return nil, model.Malformed(model.KindTM, "blank ∈ tape alphabet", "missing blank symbol")
	}
	for _, t := range f.Transitions {
		from, err := states.lookup(model.KindTM, strict, t.From)
		if err != nil {
			return nil, err
		}
		to, err := states.lookup(model.KindTM, strict, t.To)
		if err != nil {
			return nil, err
		}
		move, err := model.ParseMove(t.Move)
		if err != nil {
			return nil, model.Malformed(model.KindTM, "move ∈ {L,R,S}", "%v", err)
		}
		key := model.TMKey{State: from, Read: model.Symbol(t.Read)}
		if _, dup := tm.Rules[key]; dup {
			return nil, model.Malformed(model.KindTM, "at most one rule per (state, read)", "state %s has two rules reading %q", t.From, key.Read)
		}
		tm.Rules[key] = model.TMAction{To: to, Write: model.Symbol(t.Write), Move: move}
	}
	for _, name := range f.Accept {
		s, err := states.lookup(model.KindTM, strict, name)
		if err != nil {
			return nil, model.Malformed(model.KindTM, "accept ⊆ states", "unknown accept state %q", name)
		}
		tm.Accept[s] = true
	}
	for _, name := range f.Reject {
		s, err := states.lookup(model.KindTM, strict, name)
		if err != nil {
			return nil, model.Malformed(model.KindTM, "reject ⊆ states", "unknown reject state %q", name)
		}
		tm.Reject[s] = true
	}
	var err error
	if tm.Start, err = states.lookup(model.KindTM, true, f.Start); err != nil {
		return nil, model.Malformed(model.KindTM, "start ∈ states", "unknown start state %q", f.Start)
	}
	tm.Names = states.names

	m, err := model.NewTMModel(tm)
	if err != nil {
		return nil, err
	}
	m.Name = f.Name
	return m, nil
}
