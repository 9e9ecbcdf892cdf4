/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: trace.go
Description: Traces of simulation runs. A Trace is a finite, restartable sequence of
snapshots: every call to All starts over from the first snapshot. Finite automaton
traces are computed lazily from the model while PDA and TM traces replay the
configurations recorded along the reported branch.
*/

package simulate

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/kleascm/mentor/pkg/model"
)

// Snapshot is one instantaneous configuration of a run
type Snapshot struct {
	Kind model.Kind
	Step int
	// State is the current state (DFA, PDA, TM)
	State string
	// States is the active set (NFA)
	States []string
	// Remaining is the unconsumed input (DFA, NFA, PDA)
	Remaining string
	// Stack is the PDA stack, top first
	Stack string
	// Tape is the written region of a TM tape with the head cell in brackets
	Tape      string
	Head      int
	Accepting bool
}

func (s Snapshot) String() string {
	remaining := s.Remaining
	if remaining == "" {
		remaining = "ε"
	}
	switch s.Kind {
	case model.KindNFA:
		return fmt.Sprintf("%3d  {%s}  %s", s.Step, strings.Join(s.States, ","), remaining)
	case model.KindPDA:
		stack := s.Stack
		if stack == "" {
			stack = "ε"
		}
		return fmt.Sprintf("%3d  %s  %s  [%s]", s.Step, s.State, remaining, stack)
	case model.KindTM:
		return fmt.Sprintf("%3d  %s  %s  head=%d", s.Step, s.State, s.Tape, s.Head)
	default:
		return fmt.Sprintf("%3d  %s  %s", s.Step, s.State, remaining)
	}
}

// Trace is a restartable sequence of snapshots
type Trace struct {
	seq iter.Seq[Snapshot]
}

func newRecordedTrace(snapshots []Snapshot) *Trace {
	return &Trace{seq: slices.Values(snapshots)}
}

// All iterates the snapshots from the beginning
func (t *Trace) All() iter.Seq[Snapshot] {
	return t.seq
}

// Snapshots collects the whole trace
func (t *Trace) Snapshots() []Snapshot {
	return slices.Collect(t.seq)
}

// Result is the outcome of running one input
type Result struct {
	Input    string
	Accepted bool
	// Reason explains a rejection that happened before the run started
	Reason string
	// Trace is nil unless tracing was requested
	Trace *Trace
}
