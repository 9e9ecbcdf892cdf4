/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: simulate_test.go
Description: Tests for finite automaton, pushdown automaton and Turing machine runs,
including traces and step bounds.
*/

package simulate_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kleascm/mentor/pkg/model"
	"github.com/kleascm/mentor/pkg/regex"
	"github.com/kleascm/mentor/pkg/simulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func balancedParens() *model.PDA {
	return &model.PDA{
		Alphabet:      model.AlphabetOf("()"),
		StackAlphabet: model.AlphabetOf("X"),
		Names:         []string{"q"},
		Accepting:     []bool{false},
		Acceptance:    model.AcceptByEmptyStack,
		Rules: []model.PDARule{
			{From: 0, Input: '(', Pop: model.Epsilon, To: 0, Push: []model.Symbol{'X'}},
			{From: 0, Input: ')', Pop: 'X', To: 0},
		},
	}
}

// anbn accepts a^n b^n by final state with a Z bottom marker
func anbn() *model.PDA {
	return &model.PDA{
		Alphabet:      model.AlphabetOf("ab"),
		StackAlphabet: model.AlphabetOf("AZ"),
		Names:         []string{"push", "pop", "done"},
		Accepting:     []bool{false, false, true},
		InitialStack:  []model.Symbol{'Z'},
		Acceptance:    model.AcceptByFinalState,
		Rules: []model.PDARule{
			{From: 0, Input: 'a', Pop: model.Epsilon, To: 0, Push: []model.Symbol{'A'}},
			{From: 0, Input: model.Epsilon, Pop: model.Epsilon, To: 1},
			{From: 1, Input: 'b', Pop: 'A', To: 1},
			{From: 1, Input: model.Epsilon, Pop: 'Z', To: 2, Push: []model.Symbol{'Z'}},
		},
	}
}

// spinner loops forever on x and accepts the empty input
func spinner() *model.TM {
	return &model.TM{
		InputAlphabet: model.AlphabetOf("x"),
		TapeAlphabet:  model.AlphabetOf("x_"),
		Blank:         '_',
		Names:         []string{"spin", "yes"},
		Accept:        map[model.State]bool{1: true},
		Reject:        map[model.State]bool{},
		Rules: map[model.TMKey]model.TMAction{
			{State: 0, Read: 'x'}: {To: 0, Write: 'x', Move: model.MoveStay},
			{State: 0, Read: '_'}: {To: 1, Write: '_', Move: model.MoveStay},
		},
	}
}

// flipper rewrites every a to b and accepts at the first blank
func flipper() *model.TM {
	return &model.TM{
		InputAlphabet: model.AlphabetOf("ab"),
		TapeAlphabet:  model.AlphabetOf("ab_"),
		Blank:         '_',
		Names:         []string{"scan", "accept", "reject"},
		Accept:        map[model.State]bool{1: true},
		Reject:        map[model.State]bool{2: true},
		Rules: map[model.TMKey]model.TMAction{
			{State: 0, Read: 'a'}: {To: 0, Write: 'b', Move: model.MoveRight},
			{State: 0, Read: 'b'}: {To: 0, Write: 'b', Move: model.MoveRight},
			{State: 0, Read: '_'}: {To: 1, Write: '_', Move: model.MoveLeft},
		},
	}
}

func TestRegexAcceptance(t *testing.T) {
	m, err := model.NewRegexModel(regex.MustParse("a(b|c)*"), model.AlphabetOf("abc"))
	require.NoError(t, err)
	runner, err := simulate.NewRunner(m, simulate.Options{})
	require.NoError(t, err)

	inputs := []string{"a", "abcbc", "abca", "b"}
	expected := []bool{true, true, false, false}
	for i, w := range inputs {
		res, err := runner.Accept(w)
		require.NoError(t, err)
		assert.Equal(t, expected[i], res.Accepted, w)
		assert.Nil(t, res.Trace)
	}

	_, err = runner.Accept("abd")
	assert.Error(t, err, "symbols outside the alphabet are rejected up front")
}

func TestDFATrace(t *testing.T) {
	a := model.NewAutomaton(model.KindDFA, model.AlphabetOf("ab"))
	even := a.AddState("even", true)
	odd := a.AddState("odd", false)
	a.AddTransition(even, 'a', odd)
	a.AddTransition(even, 'b', even)
	a.AddTransition(odd, 'a', even)
	a.AddTransition(odd, 'b', odd)

	res := simulate.AcceptFA(a, "aba", true)
	assert.True(t, res.Accepted)
	require.NotNil(t, res.Trace)

	snaps := res.Trace.Snapshots()
	require.Len(t, snaps, 4)
	assert.Equal(t, []string{"even", "odd", "odd", "even"}, []string{snaps[0].State, snaps[1].State, snaps[2].State, snaps[3].State})
	assert.Equal(t, "ba", snaps[1].Remaining)
	assert.True(t, snaps[3].Accepting)

	// a trace restarts from the first snapshot on every iteration
	assert.Equal(t, snaps, res.Trace.Snapshots())

	count := 0
	for range res.Trace.All() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestNFATrace(t *testing.T) {
	nfa := regex.Compile(regex.MustParse("a*b"), model.AlphabetOf("ab"))
	res := simulate.AcceptFA(nfa, "ab", true)
	assert.True(t, res.Accepted)
	snaps := res.Trace.Snapshots()
	require.Len(t, snaps, 3)
	assert.NotEmpty(t, snaps[0].States)
	assert.True(t, snaps[2].Accepting)
	assert.Contains(t, snaps[0].String(), "ab")
}

func TestPDAEmptyStack(t *testing.T) {
	p := balancedParens()
	inputs := []string{"(())", "(()", "", ")(", "()()"}
	expected := []bool{true, false, true, false, true}
	for i, w := range inputs {
		res, err := simulate.AcceptPDA(p, w, false, 0)
		require.NoError(t, err)
		assert.Equal(t, expected[i], res.Accepted, w)
	}
}

func TestPDAFinalStateTrace(t *testing.T) {
	p := anbn()
	res, err := simulate.AcceptPDA(p, "aabb", true, 0)
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	snaps := res.Trace.Snapshots()
	require.NotEmpty(t, snaps)
	assert.Equal(t, "push", snaps[0].State)
	assert.Equal(t, "Z", snaps[0].Stack)
	last := snaps[len(snaps)-1]
	assert.Equal(t, "done", last.State)
	assert.True(t, last.Accepting)

	res, err = simulate.AcceptPDA(p, "aab", true, 0)
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	snaps = res.Trace.Snapshots()
	require.NotEmpty(t, snaps)
	assert.Equal(t, "", snaps[len(snaps)-1].Remaining, "rejection trace follows the branch that read the most input")
}

func TestPDAConfigurationBudget(t *testing.T) {
	// an ε-loop that grows the stack has infinitely many configurations
	p := &model.PDA{
		Alphabet:      model.AlphabetOf("a"),
		StackAlphabet: model.AlphabetOf("X"),
		Names:         []string{"grow", "end"},
		Accepting:     []bool{false, true},
		Acceptance:    model.AcceptByFinalState,
		Rules: []model.PDARule{
			{From: 0, Input: model.Epsilon, Pop: model.Epsilon, To: 0, Push: []model.Symbol{'X'}},
		},
	}
	_, err := simulate.AcceptPDA(p, "a", false, 50)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrTimeoutExceeded)

	var timeout *model.TimeoutExceededError
	require.True(t, errors.As(err, &timeout))
	assert.Equal(t, 50, timeout.Bound)
}

func TestPDAGrowingStackFailsFast(t *testing.T) {
	// one state, one rule (p, ε, ε) → (p, X): every configuration is new
	p := &model.PDA{
		Alphabet:      model.AlphabetOf("a"),
		StackAlphabet: model.AlphabetOf("X"),
		Names:         []string{"p"},
		Accepting:     []bool{false},
		Acceptance:    model.AcceptByFinalState,
		Rules: []model.PDARule{
			{From: 0, Input: model.Epsilon, Pop: model.Epsilon, To: 0, Push: []model.Symbol{'X'}},
		},
	}

	start := time.Now()
	res, err := simulate.AcceptPDA(p, "a", true, 0)
	elapsed := time.Since(start)

	var timeout *model.TimeoutExceededError
	require.ErrorAs(t, err, &timeout)
	assert.Equal(t, simulate.DefaultMaxConfigurations, timeout.Bound)
	assert.Less(t, elapsed, 10*time.Second)
	assert.Less(t, len(timeout.Error()), 512)
	assert.False(t, res.Accepted)

	snaps := res.Trace.Snapshots()
	require.NotEmpty(t, snaps)
	last := snaps[len(snaps)-1]
	assert.Equal(t, strings.Repeat("X", 64)+"…", last.Stack)
	assert.Equal(t, "X", snaps[1].Stack)
}

func TestTMTimeout(t *testing.T) {
	res, err := simulate.RunTM(spinner(), "x", false, 1000)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrTimeoutExceeded)
	assert.Equal(t, 1000, res.Steps)

	res, err = simulate.RunTM(spinner(), "", false, 1000)
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, 1, res.Steps)

	_, err = simulate.RunTM(spinner(), "", false, 0)
	assert.Error(t, err)
}

func TestTMRun(t *testing.T) {
	res, err := simulate.RunTM(flipper(), "aba", true, 100)
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, "bbb", res.Tape)
	assert.Equal(t, 4, res.Steps)

	snaps := res.Trace.Snapshots()
	require.Len(t, snaps, 5)
	assert.Equal(t, "[a]ba", snaps[0].Tape)
	assert.Equal(t, "accept", snaps[4].State)
}

func TestTape(t *testing.T) {
	tape := simulate.NewTape('_', "ab")
	assert.Equal(t, 'a', tape.Read(0))
	assert.Equal(t, '_', tape.Read(-3))
	tape.Write(-1, 'c')
	assert.Equal(t, "cab", tape.Contents())
	tape.Write(-1, '_')
	assert.Equal(t, "ab", tape.Contents())
	assert.Equal(t, "ab_[_]", tape.Render(3))
}

func TestRunnerKinds(t *testing.T) {
	tm, err := model.NewTMModel(spinner())
	require.NoError(t, err)
	runner, err := simulate.NewRunner(tm, simulate.Options{MaxSteps: 10})
	require.NoError(t, err)
	_, err = runner.Accept("x")
	assert.ErrorIs(t, err, model.ErrTimeoutExceeded)

	res, err := runner.Accept("xy")
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.Contains(t, res.Reason, "'y'")

	g, err := model.NewGrammarModel(&model.Grammar{Nonterminals: []string{"S"}, Start: "S"})
	require.NoError(t, err)
	_, err = simulate.NewRunner(g, simulate.Options{})
	assert.ErrorIs(t, err, model.ErrUnsupportedConversion)
}
