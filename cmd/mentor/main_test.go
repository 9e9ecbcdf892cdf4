/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main_test.go
Description: End-to-end tests of the mentor command line.
*/

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kleascm/mentor/pkg/desc"
	"github.com/kleascm/mentor/pkg/model"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const endsWithB = `alphabet: ab
start: s
accepting: [f]
transitions:
  - {from: s, on: a, to: s}
  - {from: s, on: b, to: s}
  - {from: s, on: b, to: f}
`

const anbn = `start: S
productions:
  - "S -> a S b | ε"
`

const runaway = `input_alphabet: a
tape_alphabet: a_
blank: _
start: q
accept: [y]
transitions:
  - {from: q, read: a, to: q, write: a, move: R}
  - {from: q, read: _, to: q, write: _, move: R}
`

func writeDesc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(viper.Reset)
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAcceptCommand(t *testing.T) {
	nfa := writeDesc(t, "ends.nfa", endsWithB)

	out, err := run(t, "accept", nfa, "ab", "ba", "ε")
	require.NoError(t, err)
	assert.Equal(t, "ab: accepted\nba: rejected\nε: rejected\n", out)

	out, err = run(t, "accept", "--trace", nfa, "b")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "b: accepted", lines[0])
	assert.Contains(t, lines[2], "{s,f}")

	out, err = run(t, "accept", nfa, "ab", "abc", "b")
	require.NoError(t, err)
	assert.Equal(t, "ab: accepted\nabc: rejected (symbol 'c' is not in the nfa alphabet {ab})\nb: accepted\n", out)
}

func TestTypeOverride(t *testing.T) {
	path := writeDesc(t, "machine.txt", endsWithB)

	_, err := run(t, "accept", path, "b")
	assert.Error(t, err)

	out, err := run(t, "-t", "nfa", "accept", path, "b")
	require.NoError(t, err)
	assert.Equal(t, "b: accepted\n", out)

	_, err = run(t, "--type", "lba", "accept", path, "b")
	assert.Error(t, err)
}

func TestAcceptGrammarCommand(t *testing.T) {
	cfg := writeDesc(t, "anbn.cfg", anbn)
	out, err := run(t, "accept", cfg, "aabb", "abab")
	require.NoError(t, err)
	assert.Equal(t, "aabb: accepted\nabab: rejected\n", out)
}

func TestConvertCommand(t *testing.T) {
	nfa := writeDesc(t, "ends.nfa", endsWithB)

	out, err := run(t, "convert", nfa, "--output-type", "dfa")
	require.NoError(t, err)
	assert.Contains(t, out, "kind: dfa")

	m, err := desc.LoadBytes([]byte(out), 0)
	require.NoError(t, err)
	assert.Equal(t, model.KindDFA, m.Kind())

	target := filepath.Join(t.TempDir(), "ends.re")
	out, err = run(t, "convert", nfa, "-o", "re", "--out", target)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+target)

	out, err = run(t, "compare", target, nfa)
	require.NoError(t, err)
	assert.Equal(t, "equivalent\n", out)

	_, err = run(t, "convert", writeDesc(t, "anbn.cfg", anbn), "-o", "dfa")
	assert.ErrorIs(t, err, model.ErrUnsupportedConversion)
}

func TestCompareCommand(t *testing.T) {
	nfa := writeDesc(t, "ends.nfa", endsWithB)
	all := writeDesc(t, "all.re", "regex: \"(a|b)*\"\n")

	out, err := run(t, "compare", nfa, all)
	require.NoError(t, err)
	assert.Equal(t, "not equivalent; witness ε\n", out)

	_, err = run(t, "compare", nfa, writeDesc(t, "anbn.cfg", anbn))
	assert.ErrorIs(t, err, model.ErrKindMismatch)
}

func TestGraphCommand(t *testing.T) {
	nfa := writeDesc(t, "ends.nfa", endsWithB)

	out, err := run(t, "graph", "--dot", nfa)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph"))

	out, err = run(t, "graph", "--viewer", "true", nfa)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "wrote "))
	shown := strings.TrimSpace(strings.TrimPrefix(out, "wrote "))
	assert.Equal(t, "ends.html", filepath.Base(shown))
	assert.FileExists(t, shown)
	t.Cleanup(func() { os.RemoveAll(filepath.Dir(shown)) })

	page := filepath.Join(t.TempDir(), "ends.html")
	out, err = run(t, "graph", nfa, page)
	require.NoError(t, err)
	assert.Equal(t, "wrote "+page+"\n", out)
	assert.FileExists(t, page)

	_, err = run(t, "graph", "--dot", writeDesc(t, "anbn.cfg", anbn))
	assert.ErrorIs(t, err, model.ErrUnsupportedConversion)

	_, err = run(t, "graph", "--viewer", filepath.Join(t.TempDir(), "no-such-viewer"), nfa)
	assert.Error(t, err)
}

func TestGenerateCommands(t *testing.T) {
	out, err := run(t, "generate", writeDesc(t, "ends.nfa", endsWithB), "3")
	require.NoError(t, err)
	assert.Equal(t, "b\nab\nbb\n", out)

	cfg := writeDesc(t, "anbn.cfg", anbn)
	out, err = run(t, "generate-length", cfg, "4")
	require.NoError(t, err)
	assert.Equal(t, "ε\nab\naabb\n", out)

	_, err = run(t, "generate", cfg, "many")
	assert.Error(t, err)
	_, err = run(t, "generate-length", cfg, "-1")
	assert.Error(t, err)
}

func TestBoundsFromEnvironmentAndFlags(t *testing.T) {
	tm := writeDesc(t, "runaway.tm", runaway)

	t.Setenv("MENTOR_TM_MAX_STEPS", "5")
	_, err := run(t, "accept", tm, "a")
	require.Error(t, err)
	var timeout *model.TimeoutExceededError
	require.ErrorAs(t, err, &timeout)
	assert.Equal(t, 5, timeout.Bound)

	_, err = run(t, "--max-steps", "7", "accept", tm, "a")
	require.ErrorAs(t, err, &timeout)
	assert.Equal(t, 7, timeout.Bound)
}

func TestConfigFile(t *testing.T) {
	tm := writeDesc(t, "runaway.tm", runaway)
	config := writeDesc(t, "mentor.yaml", "tm:\n  max_steps: 3\nlog_level: error\n")

	_, err := run(t, "--config", config, "accept", tm, "a")
	var timeout *model.TimeoutExceededError
	require.ErrorAs(t, err, &timeout)
	assert.Equal(t, 3, timeout.Bound)

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "accept", tm, "a")
	assert.Error(t, err)
}
