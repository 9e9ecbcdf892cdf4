/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: tm.go
Description: Turing machine simulation on an unbounded two-way tape stored sparsely:
only written cells are kept and every other cell reads as blank. Halting is
undecidable, so every run needs an explicit step bound.
*/

package simulate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kleascm/mentor/pkg/model"
)

// Tape is a sparse two-way infinite tape
type Tape struct {
	blank model.Symbol
	cells map[int]model.Symbol
}

// NewTape writes input starting at cell 0
func NewTape(blank model.Symbol, input string) *Tape {
	t := &Tape{blank: blank, cells: make(map[int]model.Symbol)}
	i := 0
	for _, r := range input {
		t.Write(i, r)
		i++
	}
	return t
}

// Read returns the symbol at a cell
func (t *Tape) Read(pos int) model.Symbol {
	if s, ok := t.cells[pos]; ok {
		return s
	}
	return t.blank
}

// Write stores a symbol; writing blank frees the cell
func (t *Tape) Write(pos int, s model.Symbol) {
	if s == t.blank {
		delete(t.cells, pos)
		return
	}
	t.cells[pos] = s
}

// Bounds returns the lowest and highest non-blank cells, widened to include extra
func (t *Tape) Bounds(extra int) (int, int) {
	lo, hi := extra, extra
	for pos := range t.cells {
		if pos < lo {
			lo = pos
		}
		if pos > hi {
			hi = pos
		}
	}
	return lo, hi
}

// Contents returns the non-blank region of the tape
func (t *Tape) Contents() string {
	if len(t.cells) == 0 {
		return ""
	}
	positions := make([]int, 0, len(t.cells))
	for pos := range t.cells {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	var sb strings.Builder
	for pos := positions[0]; pos <= positions[len(positions)-1]; pos++ {
		sb.WriteRune(t.Read(pos))
	}
	return sb.String()
}

// Render shows the written region with the head cell in brackets
func (t *Tape) Render(head int) string {
	lo, hi := t.Bounds(head)
	var sb strings.Builder
	for pos := lo; pos <= hi; pos++ {
		if pos == head {
			sb.WriteByte('[')
			sb.WriteRune(t.Read(pos))
			sb.WriteByte(']')
			continue
		}
		sb.WriteRune(t.Read(pos))
	}
	return sb.String()
}

// TMResult extends Result with the final tape
type TMResult struct {
	Result
	Steps int
	Tape  string
}

// RunTM steps the machine until it halts or maxSteps is exceeded. Exceeding the
// bound returns a TimeoutExceededError together with the partial result.
func RunTM(m *model.TM, input string, trace bool, maxSteps int) (TMResult, error) {
	if maxSteps <= 0 {
		return TMResult{}, fmt.Errorf("turing machine step bound must be positive, got %d", maxSteps)
	}
	res := TMResult{Result: Result{Input: input}}
	tape := NewTape(m.Blank, input)
	state, head := m.Start, 0
	var snapshots []Snapshot
	record := func(step int) {
		if trace {
			snapshots = append(snapshots, Snapshot{Kind: model.KindTM, Step: step, State: m.Names[state], Tape: tape.Render(head), Head: head, Accepting: m.Accept[state]})
		}
	}

	record(0)
	for step := 1; ; step++ {
		if m.Halting(state) {
			break
		}
		act, ok := m.Rules[model.TMKey{State: state, Read: tape.Read(head)}]
		if !ok {
			break
		}
		if step > maxSteps {
			res.Steps = step - 1
			res.Tape = tape.Contents()
			if trace {
				res.Trace = newRecordedTrace(snapshots)
			}
			last := fmt.Sprintf("%s %s", m.Names[state], tape.Render(head))
			return res, &model.TimeoutExceededError{Input: input, Bound: maxSteps, Steps: res.Steps, Last: last}
		}
		tape.Write(head, act.Write)
		head += int(act.Move)
		state = act.To
		res.Steps = step
		record(step)
	}

	res.Accepted = m.Accept[state]
	res.Tape = tape.Contents()
	if trace {
		res.Trace = newRecordedTrace(snapshots)
	}
	return res, nil
}
