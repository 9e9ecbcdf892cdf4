/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: regex_test.go
Description: Tests for regular expression parsing and Thompson compilation.
*/

package regex_test

import (
	"testing"

	"github.com/kleascm/mentor/pkg/model"
	"github.com/kleascm/mentor/pkg/regex"
	"github.com/kleascm/mentor/pkg/simulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := map[string]string{
		"a(b|c)*": "a(b|c)*",
		"ab|c":    "ab|c",
		"a+":      "aa*",
		"a?":      "a|ε",
		"()":      "ε",
		"":        "ε",
		"∅":       "∅",
		`\*a`:     `\*a`,
		"(a|b)c":  "(a|b)c",
	}
	for text, expected := range cases {
		re, err := regex.Parse(text)
		require.NoError(t, err, text)
		assert.Equal(t, expected, re.String(), text)
	}
}

func TestParseErrors(t *testing.T) {
	for _, text := range []string{"(a", "a)", "*a", `a\`, "a|+"} {
		_, err := regex.Parse(text)
		assert.ErrorIs(t, err, model.ErrMalformedModel, text)
	}
	assert.Panics(t, func() { regex.MustParse("(") })
}

func TestCompile(t *testing.T) {
	cases := []struct {
		expr     string
		accept   []string
		reject   []string
	}{
		{"a(b|c)*", []string{"a", "abcbc", "ac"}, []string{"", "abca", "b"}},
		{"a*b", []string{"b", "ab", "aaab"}, []string{"", "a", "ba"}},
		{"(ab)+", []string{"ab", "abab"}, []string{"", "a", "aba"}},
		{"ε", []string{""}, []string{"a"}},
		{"∅", nil, []string{"", "a"}},
	}
	for _, tc := range cases {
		nfa := regex.Compile(regex.MustParse(tc.expr), model.AlphabetOf("abc"))
		assert.Equal(t, model.KindNFA, nfa.Kind)
		for _, w := range tc.accept {
			assert.True(t, simulate.RunNFA(nfa, w), "%s should accept %q", tc.expr, w)
		}
		for _, w := range tc.reject {
			assert.False(t, simulate.RunNFA(nfa, w), "%s should reject %q", tc.expr, w)
		}
	}
}

func TestCompileModel(t *testing.T) {
	re, err := model.NewRegexModel(regex.MustParse("ab*"), nil)
	require.NoError(t, err)
	re.Name = "ab-star"

	nfa, err := regex.CompileModel(re)
	require.NoError(t, err)
	assert.Equal(t, model.KindNFA, nfa.Kind())
	assert.Equal(t, "ab-star", nfa.Name)

	_, err = regex.CompileModel(nfa)
	assert.ErrorIs(t, err, model.ErrUnsupportedConversion)
}
