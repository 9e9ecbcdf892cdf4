/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: tm.go
Description: Single-tape deterministic Turing machines. The tape itself is a
simulation concern; the model holds the alphabets, states, the accept and reject
sets, and at most one rule per (state, read symbol).
*/

package model

import (
	"fmt"
	"strings"
)

// Move is a head movement
type Move int

const (
	MoveLeft Move = iota - 1
	MoveStay
	MoveRight
)

func (m Move) String() string {
	switch m {
	case MoveLeft:
		return "L"
	case MoveRight:
		return "R"
	default:
		return "S"
	}
}

// ParseMove parses L, R or S (also accepts left/right/stay)
func ParseMove(s string) (Move, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L", "LEFT":
		return MoveLeft, nil
	case "R", "RIGHT":
		return MoveRight, nil
	case "S", "N", "STAY":
		return MoveStay, nil
	default:
		return 0, fmt.Errorf("unknown head move %q (expected L, R or S)", s)
	}
}

// TMKey indexes a rule by the current state and the symbol under the head
type TMKey struct {
	State State
	Read  Symbol
}

// TMAction is what a rule does
type TMAction struct {
	To    State
	Write Symbol
	Move  Move
}

// TM is a deterministic single-tape Turing machine
type TM struct {
	InputAlphabet Alphabet
	TapeAlphabet  Alphabet
	Blank         Symbol
	Names         []string
	Start         State
	Accept        map[State]bool
	Reject        map[State]bool
	Rules         map[TMKey]TMAction
}

// NumStates returns the number of states
func (t *TM) NumStates() int { return len(t.Names) }

// Halting reports whether s is an accept or reject state
func (t *TM) Halting(s State) bool { return t.Accept[s] || t.Reject[s] }

// Validate checks the structural invariants of the machine
func (t *TM) Validate() error {
	n := t.NumStates()
	if n == 0 {
		return Malformed(KindTM, "start ∈ states", "machine has no states")
	}
	if t.Start < 0 || t.Start >= n {
		return Malformed(KindTM, "start ∈ states", "start state %d out of range", t.Start)
	}
	if !t.TapeAlphabet.Contains(t.Blank) {
		return Malformed(KindTM, "blank ∈ tape alphabet", "blank %q is not a tape symbol", t.Blank)
	}
	for _, s := range t.InputAlphabet {
		if s == t.Blank {
			return Malformed(KindTM, "blank ∉ input alphabet", "blank %q is an input symbol", s)
		}
		if !t.TapeAlphabet.Contains(s) {
			return Malformed(KindTM, "input alphabet ⊆ tape alphabet", "input symbol %q is not a tape symbol", s)
		}
	}
	for s := range t.Accept {
		if s < 0 || s >= n {
			return Malformed(KindTM, "accept ⊆ states", "accept state %d out of range", s)
		}
		if t.Reject[s] {
			return Malformed(KindTM, "accept ∩ reject = ∅", "state %s both accepts and rejects", t.Names[s])
		}
	}
	for s := range t.Reject {
		if s < 0 || s >= n {
			return Malformed(KindTM, "reject ⊆ states", "reject state %d out of range", s)
		}
	}
	for k, act := range t.Rules {
		if k.State < 0 || k.State >= n || act.To < 0 || act.To >= n {
			return Malformed(KindTM, "transition endpoints ∈ states", "rule on %q references an unknown state", k.Read)
		}
		if !t.TapeAlphabet.Contains(k.Read) || !t.TapeAlphabet.Contains(act.Write) {
			return Malformed(KindTM, "tape alphabet closure", "rule %s/%q uses a symbol outside the tape alphabet", t.Names[k.State], k.Read)
		}
		if act.Move < MoveLeft || act.Move > MoveRight {
			return Malformed(KindTM, "move ∈ {L,R,S}", "rule %s/%q has move %d", t.Names[k.State], k.Read, act.Move)
		}
	}
	return nil
}

// Clone returns an independent copy
func (t *TM) Clone() *TM {
	u := *t
	u.InputAlphabet = t.InputAlphabet.Clone()
	u.TapeAlphabet = t.TapeAlphabet.Clone()
	u.Names = append([]string(nil), t.Names...)
	u.Accept = make(map[State]bool, len(t.Accept))
	for k, v := range t.Accept {
		u.Accept[k] = v
	}
	u.Reject = make(map[State]bool, len(t.Reject))
	for k, v := range t.Reject {
		u.Reject[k] = v
	}
	u.Rules = make(map[TMKey]TMAction, len(t.Rules))
	for k, v := range t.Rules {
		u.Rules[k] = v
	}
	return &u
}
