/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: run.go
Description: Kind dispatch for automaton acceptance. Regular expressions run on
their Thompson NFA; grammars are answered by the grammar engine instead.
*/

package simulate

import (
	"github.com/kleascm/mentor/pkg/model"
	"github.com/kleascm/mentor/pkg/regex"
)

// Options bounds and instruments a run
type Options struct {
	Trace bool
	// MaxSteps bounds Turing machine runs and must be positive for TMs
	MaxSteps int
	// MaxConfigurations bounds PDA searches; zero selects the default
	MaxConfigurations int
}

// Runner accepts inputs for one automaton model. Building a Runner compiles an RE
// once so that many inputs share the NFA.
type Runner struct {
	model *model.Model
	fa    *model.Automaton
	opts  Options
}

// NewRunner prepares a model for repeated acceptance checks
func NewRunner(m *model.Model, opts Options) (*Runner, error) {
	r := &Runner{model: m, opts: opts}
	switch m.Kind() {
	case model.KindDFA, model.KindNFA:
		r.fa, _ = m.Automaton()
	case model.KindRE:
		re, _ := m.Regex()
		r.fa = regex.Compile(re.Expr, re.Alphabet)
	case model.KindPDA, model.KindTM:
	default:
		return nil, model.Unsupported(m.Kind(), "automaton simulation")
	}
	return r, nil
}

// Accept runs one input. An input with a symbol outside the alphabet is rejected
// without running.
func (r *Runner) Accept(input string) (Result, error) {
	if err := r.model.CheckInput(input); err != nil {
		return Result{Input: input, Reason: err.Error()}, nil
	}
	switch r.model.Kind() {
	case model.KindPDA:
		p, _ := r.model.PDA()
		return AcceptPDA(p, input, r.opts.Trace, r.opts.MaxConfigurations)
	case model.KindTM:
		t, _ := r.model.TM()
		res, err := RunTM(t, input, r.opts.Trace, r.opts.MaxSteps)
		return res.Result, err
	default:
		return AcceptFA(r.fa, input, r.opts.Trace), nil
	}
}
