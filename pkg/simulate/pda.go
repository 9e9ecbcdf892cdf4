/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: pda.go
Description: Pushdown automaton acceptance by breadth-first search over
(state, input position, stack) configurations. Stacks are interned so a
configuration costs a few ints; each one is explored at most once, which cuts
ε-cycles, and a configuration budget stops ε-chains that keep growing the stack.
*/

package simulate

import (
	"strings"

	"github.com/kleascm/mentor/pkg/model"
)

// DefaultMaxConfigurations bounds PDA searches when the caller passes no bound
const DefaultMaxConfigurations = 200000

// maxStackRender caps the stack symbols shown in snapshots and errors
const maxStackRender = 64

// stackTable interns stacks as persistent linked cells. Cell 0 is the empty
// stack; equal stacks share one id, so a configuration key is three ints.
type stackTable struct {
	cells []stackCell
	index map[stackCell]int
}

type stackCell struct {
	top   model.Symbol
	below int
}

func newStackTable() *stackTable {
	return &stackTable{cells: []stackCell{{}}, index: make(map[stackCell]int)}
}

func (t *stackTable) push(below int, sym model.Symbol) int {
	cell := stackCell{top: sym, below: below}
	if id, ok := t.index[cell]; ok {
		return id
	}
	t.cells = append(t.cells, cell)
	id := len(t.cells) - 1
	t.index[cell] = id
	return id
}

// pushAll pushes syms so that syms[0] ends on top
func (t *stackTable) pushAll(below int, syms []model.Symbol) int {
	id := below
	for i := len(syms) - 1; i >= 0; i-- {
		id = t.push(id, syms[i])
	}
	return id
}

// render writes the stack top first, cut after maxStackRender symbols
func (t *stackTable) render(id int) string {
	var sb strings.Builder
	for n := 0; id != 0; n++ {
		if n == maxStackRender {
			sb.WriteString("…")
			break
		}
		sb.WriteRune(t.cells[id].top)
		id = t.cells[id].below
	}
	return sb.String()
}

type pdaConfig struct {
	state model.State
	pos   int
	stack int // id in the stack table
}

type pdaNode struct {
	config pdaConfig
	depth  int
	parent int
}

// AcceptPDA searches for an accepting run. maxConfigs <= 0 uses
// DefaultMaxConfigurations. Exceeding the budget returns a TimeoutExceededError
// together with the partial result.
func AcceptPDA(p *model.PDA, input string, trace bool, maxConfigs int) (Result, error) {
	if maxConfigs <= 0 {
		maxConfigs = DefaultMaxConfigurations
	}
	symbols := []rune(input)
	res := Result{Input: input}
	stacks := newStackTable()

	nodes := []pdaNode{{config: pdaConfig{state: p.Start, stack: stacks.pushAll(0, p.InitialStack)}, parent: -1}}
	seen := map[pdaConfig]bool{nodes[0].config: true}
	best := 0
	rules := make([][]model.PDARule, p.NumStates())
	for s := range rules {
		rules[s] = p.RulesFrom(s)
	}

	for head := 0; head < len(nodes); head++ {
		cur := nodes[head]
		if better(cur, nodes[best]) {
			best = head
		}
		if cur.config.pos == len(symbols) && pdaAccepts(p, cur.config) {
			res.Accepted = true
			best = head
			break
		}
		for _, r := range rules[cur.config.state] {
			next := cur.config
			if r.Input != model.Epsilon {
				if next.pos >= len(symbols) || symbols[next.pos] != r.Input {
					continue
				}
				next.pos++
			}
			if r.Pop != model.Epsilon {
				if next.stack == 0 || stacks.cells[next.stack].top != r.Pop {
					continue
				}
				next.stack = stacks.cells[next.stack].below
			}
			next.state = r.To
			next.stack = stacks.pushAll(next.stack, r.Push)
			if seen[next] {
				continue
			}
			if len(seen) >= maxConfigs {
				if trace {
					res.Trace = pdaTrace(p, symbols, stacks, nodes, best)
				}
				return res, &model.TimeoutExceededError{Input: input, Bound: maxConfigs, Steps: len(seen), Last: pdaSnapshot(p, symbols, stacks, nodes[best]).String()}
			}
			seen[next] = true
			nodes = append(nodes, pdaNode{config: next, depth: cur.depth + 1, parent: head})
		}
	}

	if trace {
		res.Trace = pdaTrace(p, symbols, stacks, nodes, best)
	}
	return res, nil
}

func pdaAccepts(p *model.PDA, c pdaConfig) bool {
	if p.Acceptance == model.AcceptByEmptyStack {
		return c.stack == 0
	}
	return p.Accepting[c.state]
}

// better orders branches for the rejection trace: most input consumed, then longest
func better(a, b pdaNode) bool {
	if a.config.pos != b.config.pos {
		return a.config.pos > b.config.pos
	}
	return a.depth > b.depth
}

func pdaSnapshot(p *model.PDA, symbols []rune, stacks *stackTable, n pdaNode) Snapshot {
	c := n.config
	return Snapshot{
		Kind:      model.KindPDA,
		Step:      n.depth,
		State:     p.Names[c.state],
		Remaining: string(symbols[c.pos:]),
		Stack:     stacks.render(c.stack),
		Accepting: c.pos == len(symbols) && pdaAccepts(p, c),
	}
}

func pdaTrace(p *model.PDA, symbols []rune, stacks *stackTable, nodes []pdaNode, last int) *Trace {
	var path []Snapshot
	for i := last; i >= 0; i = nodes[i].parent {
		path = append(path, pdaSnapshot(p, symbols, stacks, nodes[i]))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return newRecordedTrace(path)
}
