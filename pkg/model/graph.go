/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: graph.go
Description: Renderer-neutral node/edge view of automata. Parallel edges between the
same pair of states are merged into one edge with a comma separated label.
*/

package model

import (
	"fmt"
	"sort"
	"strings"
)

// GraphNode is one state of a graph view
type GraphNode struct {
	ID        int    `json:"id"`
	Label     string `json:"label"`
	Start     bool   `json:"start"`
	Accepting bool   `json:"accepting"`
	Rejecting bool   `json:"rejecting,omitempty"`
}

// GraphEdge is a labelled arc between two nodes
type GraphEdge struct {
	From  int    `json:"from"`
	To    int    `json:"to"`
	Label string `json:"label"`
}

// GraphView is the drawing-independent shape of an automaton
type GraphView struct {
	Kind  Kind        `json:"-"`
	Title string      `json:"title"`
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

type edgeKey struct{ from, to int }

type edgeLabels struct {
	keys   []edgeKey
	labels map[edgeKey][]string
}

func (e *edgeLabels) add(from, to int, label string) {
	if e.labels == nil {
		e.labels = make(map[edgeKey][]string)
	}
	k := edgeKey{from, to}
	if _, ok := e.labels[k]; !ok {
		e.keys = append(e.keys, k)
	}
	for _, l := range e.labels[k] {
		if l == label {
			return
		}
	}
	e.labels[k] = append(e.labels[k], label)
}

func (e *edgeLabels) edges() []GraphEdge {
	sort.Slice(e.keys, func(i, j int) bool {
		if e.keys[i].from != e.keys[j].from {
			return e.keys[i].from < e.keys[j].from
		}
		return e.keys[i].to < e.keys[j].to
	})
	out := make([]GraphEdge, 0, len(e.keys))
	for _, k := range e.keys {
		out = append(out, GraphEdge{From: k.from, To: k.to, Label: strings.Join(e.labels[k], ", ")})
	}
	return out
}

// GraphView builds the node/edge view of a DFA, NFA, PDA or TM model. REs must be
// compiled first and CFGs have no graph.
func (m *Model) GraphView() (*GraphView, error) {
	view := &GraphView{Kind: m.kind, Title: m.Name}
	var edges edgeLabels
	switch m.kind {
	case KindDFA, KindNFA:
		a := m.fa
		for s := 0; s < a.NumStates(); s++ {
			view.Nodes = append(view.Nodes, GraphNode{ID: s, Label: a.Name(s), Start: s == a.Start, Accepting: a.IsAccepting(s)})
		}
		for _, t := range a.Transitions() {
			edges.add(t.From, t.To, SymbolString(t.On))
		}
	case KindPDA:
		p := m.pda
		for s := 0; s < p.NumStates(); s++ {
			view.Nodes = append(view.Nodes, GraphNode{ID: s, Label: p.Names[s], Start: s == p.Start, Accepting: p.Accepting[s]})
		}
		for _, r := range p.Rules {
			edges.add(r.From, r.To, r.Label())
		}
	case KindTM:
		t := m.tm
		for s := 0; s < t.NumStates(); s++ {
			view.Nodes = append(view.Nodes, GraphNode{ID: s, Label: t.Names[s], Start: s == t.Start, Accepting: t.Accept[s], Rejecting: t.Reject[s]})
		}
		keys := make([]TMKey, 0, len(t.Rules))
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
			edges.add(k.State, act.To, fmt.Sprintf("%c→%c,%s", k.Read, act.Write, act.Move))
		}
	default:
		return nil, Unsupported(m.kind, "graph")
	}
	view.Edges = edges.edges()
	return view, nil
}
