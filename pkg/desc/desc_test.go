/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: desc_test.go
Description: Tests for description file decoding, kind inference and encoding.
*/

package desc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kleascm/mentor/pkg/desc"
	"github.com/kleascm/mentor/pkg/model"
	"github.com/kleascm/mentor/pkg/simulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const evenDFA = `
alphabet: ab
start: even
accepting: [even]
transitions:
  - {from: even, on: a, to: odd}
  - {from: even, on: b, to: even}
  - {from: odd, on: a, to: even}
  - {from: odd, on: b, to: odd}
`

const balancedPDA = `
alphabet: "()"
stack_alphabet: X
start: q
accept_by: empty
transitions:
  - {from: q, input: "(", to: q, push: X}
  - {from: q, input: ")", pop: X, to: q}
`

const anbnCFG = `
start: S
productions:
  - "S -> a S b | ε"
`

const flipTM = `
input_alphabet: ab
tape_alphabet: ab_
blank: _
start: scan
accept: [done]
transitions:
  - {from: scan, read: a, to: scan, write: b, move: R}
  - {from: scan, read: b, to: scan, write: b, move: R}
  - {from: scan, read: _, to: done, write: _, move: L}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDFA(t *testing.T) {
	m, err := desc.Load(writeFile(t, "even.dfa", evenDFA), 0)
	require.NoError(t, err)
	assert.Equal(t, model.KindDFA, m.Kind())
	assert.Equal(t, "even", m.Name)

	a, ok := m.Automaton()
	require.True(t, ok)
	assert.Equal(t, 2, a.NumStates())
	assert.Equal(t, "even", a.Name(a.Start))
	assert.True(t, simulate.RunDFA(a, "abab"))
	assert.False(t, simulate.RunDFA(a, "ab"))
}

func TestKindResolution(t *testing.T) {
	// the declared kind wins over the extension
	m, err := desc.Load(writeFile(t, "even.txt", evenDFA), model.KindNFA)
	require.NoError(t, err)
	assert.Equal(t, model.KindNFA, m.Kind())

	// an embedded kind key wins over the extension
	m, err = desc.Load(writeFile(t, "machine.yaml", "kind: dfa\n"+evenDFA), 0)
	require.NoError(t, err)
	assert.Equal(t, model.KindDFA, m.Kind())

	_, err = desc.Load(writeFile(t, "machine", evenDFA), 0)
	assert.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	cases := map[string]string{
		"incomplete.dfa": "alphabet: ab\nstart: q\naccepting: [q]\ntransitions:\n  - {from: q, on: a, to: q}\n",
		"badstart.dfa":   "alphabet: a\nstates: [q]\nstart: p\ntransitions:\n  - {from: q, on: a, to: q}\n",
		"syntax.nfa":     "alphabet: [ab\n",
		"regex.re":       "regex: \"(a\"\n",
		"arrow.cfg":      "productions: [\"S a b\"]\n",
		"dup.tm":         "input_alphabet: a\ntape_alphabet: a_\nblank: _\nstart: q\naccept: [y]\ntransitions:\n  - {from: q, read: a, to: y, write: a, move: R}\n  - {from: q, read: a, to: q, write: a, move: L}\n",
	}
	for name, content := range cases {
		_, err := desc.Load(writeFile(t, name, content), 0)
		assert.ErrorIs(t, err, model.ErrMalformedModel, name)
	}
}

func TestLoadPDA(t *testing.T) {
	m, err := desc.LoadBytes([]byte(balancedPDA), model.KindPDA)
	require.NoError(t, err)
	p, ok := m.PDA()
	require.True(t, ok)
	assert.Equal(t, model.AcceptByEmptyStack, p.Acceptance)
	assert.Equal(t, model.Epsilon, p.Rules[0].Pop)

	for w, expected := range map[string]bool{"(())": true, "(()": false, "": true} {
		res, err := simulate.AcceptPDA(p, w, false, 0)
		require.NoError(t, err)
		assert.Equal(t, expected, res.Accepted, w)
	}
}

func TestLoadCFG(t *testing.T) {
	m, err := desc.LoadBytes([]byte(anbnCFG), model.KindCFG)
	require.NoError(t, err)
	g, ok := m.Grammar()
	require.True(t, ok)
	assert.Equal(t, []string{"S"}, g.Nonterminals)
	assert.Equal(t, model.AlphabetOf("ab"), g.Terminals)
	require.Len(t, g.Productions, 2)
	assert.Equal(t, "S → a S b", g.Productions[0].String())
	assert.Empty(t, g.Productions[1].Body)
}

func TestLoadRE(t *testing.T) {
	m, err := desc.LoadBytes([]byte("regex: \"a(b|c)*\"\n"), model.KindRE)
	require.NoError(t, err)
	re, _ := m.Regex()
	assert.Equal(t, model.AlphabetOf("abc"), re.Alphabet)

	m, err = desc.LoadBytes([]byte("alphabet: [a, b, c, d]\nregex: \"a*\"\n"), model.KindRE)
	require.NoError(t, err)
	assert.Equal(t, model.AlphabetOf("abcd"), m.Alphabet())
}

func TestLoadTM(t *testing.T) {
	m, err := desc.LoadBytes([]byte(flipTM), model.KindTM)
	require.NoError(t, err)
	tm, _ := m.TM()
	res, err := simulate.RunTM(tm, "ab", false, 100)
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, "bb", res.Tape)
}

func TestEncodeRoundTrip(t *testing.T) {
	sources := map[model.Kind]string{
		model.KindDFA: evenDFA,
		model.KindPDA: balancedPDA,
		model.KindCFG: anbnCFG,
		model.KindTM:  flipTM,
		model.KindRE:  "regex: \"a(b|c)*\"\n",
	}
	for kind, src := range sources {
		m, err := desc.LoadBytes([]byte(src), kind)
		require.NoError(t, err, kind.String())
		data, err := desc.Encode(m)
		require.NoError(t, err, kind.String())
		back, err := desc.LoadBytes(data, kind)
		require.NoError(t, err, "%s:\n%s", kind, data)
		assert.Equal(t, m.Summary(), back.Summary(), kind.String())

		// encoded files carry their kind
		path := writeFile(t, "model.yaml", string(data))
		loaded, err := desc.Load(path, 0)
		require.NoError(t, err, kind.String())
		assert.Equal(t, kind, loaded.Kind())
	}
}

func TestSave(t *testing.T) {
	m, err := desc.LoadBytes([]byte(evenDFA), model.KindDFA)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "out.dfa")
	require.NoError(t, desc.Save(path, m))
	loaded, err := desc.Load(path, 0)
	require.NoError(t, err)
	assert.Equal(t, model.KindDFA, loaded.Kind())
}
