/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine.go
Description: The mentor engine. Every command follows the same flow: load a model
from a description, run one operation on it, log what happened under the session
id. Models are immutable, so an engine can be reused for any number of operations.
*/

package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/mentor/pkg/convert"
	"github.com/kleascm/mentor/pkg/desc"
	"github.com/kleascm/mentor/pkg/equivalence"
	"github.com/kleascm/mentor/pkg/generate"
	"github.com/kleascm/mentor/pkg/grammar"
	"github.com/kleascm/mentor/pkg/logging"
	"github.com/kleascm/mentor/pkg/model"
	"github.com/kleascm/mentor/pkg/render"
	"github.com/kleascm/mentor/pkg/simulate"
)

// Engine runs operations on models
type Engine struct {
	config    *Config
	logger    *logging.Logger
	sessionID string
	renderer  *render.Renderer
}

// NewEngine creates an engine. A nil config selects DefaultConfig; a nil logger is
// built from config.Logging.
func NewEngine(config *Config, logger *logging.Logger) (*Engine, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		var err error
		if logger, err = logging.NewLogger(config.Logging); err != nil {
			return nil, err
		}
	}

	e := &Engine{
		config:    config,
		logger:    logger,
		sessionID: uuid.New().String(),
	}
	logger.SetSessionID(e.sessionID)
	e.renderer = render.NewRenderer(render.NewPageGenerator(logger.GetLogger(), e.sessionID))
	e.renderer.SetPDFTimeout(config.PDFTimeout)
	return e, nil
}

// SessionID identifies this engine in logs and rendered pages
func (e *Engine) SessionID() string { return e.sessionID }

// Config returns the active configuration
func (e *Engine) Config() *Config { return e.config }

// Logger returns the engine logger
func (e *Engine) Logger() *logging.Logger { return e.logger }

// Close releases the log file, if any
func (e *Engine) Close() error {
	return e.logger.Close()
}

// Load builds a model from a description file. declared overrides the kind named
// in the file; pass the zero Kind to infer it.
func (e *Engine) Load(path string, declared model.Kind) (*model.Model, error) {
	start := time.Now()
	m, err := desc.Load(path, declared)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	e.logger.LogLoad(path, m.Kind().String(), modelSize(m), time.Since(start))
	return m, nil
}

// LoadBytes builds a model from description text
func (e *Engine) LoadBytes(data []byte, kind model.Kind) (*model.Model, error) {
	start := time.Now()
	m, err := desc.LoadBytes(data, kind)
	if err != nil {
		return nil, err
	}
	e.logger.LogLoad("<bytes>", m.Kind().String(), modelSize(m), time.Since(start))
	return m, nil
}

// Accept decides membership for each input. Inputs with symbols outside the
// alphabet are rejected with a Reason. A bound error stops the batch and the
// verdicts reached so far are returned with it.
func (e *Engine) Accept(m *model.Model, inputs []string, trace bool) ([]AcceptResult, error) {
	check, err := e.membership(m, trace)
	if err != nil {
		return nil, err
	}

	results := make([]AcceptResult, 0, len(inputs))
	for _, in := range inputs {
		res, err := check(in)
		if err != nil {
			if errors.Is(err, model.ErrTimeoutExceeded) {
				e.logger.LogBound("accept", err)
			}
			return results, err
		}
		steps := 0
		if res.Trace != nil {
			steps = len(res.Trace.Snapshots()) - 1
		}
		e.logger.LogAccept(m.Kind().String(), in, res.Accepted, steps)
		results = append(results, res)
	}
	return results, nil
}

func (e *Engine) membership(m *model.Model, trace bool) (func(string) (AcceptResult, error), error) {
	if m.Kind() == model.KindCFG {
		g, _ := m.Grammar()
		n, err := grammar.ToCNF(g)
		if err != nil {
			return nil, err
		}
		var rec grammar.Recognizer = grammar.NewCYK(n)
		e.logger.Debug("Grammar recognizer ready", map[string]interface{}{"recognizer": rec.Name()})
		return func(in string) (AcceptResult, error) {
			if err := m.CheckInput(in); err != nil {
				return AcceptResult{Input: in, Reason: err.Error()}, nil
			}
			return AcceptResult{Input: in, Accepted: rec.Accepts(in)}, nil
		}, nil
	}

	runner, err := simulate.NewRunner(m, simulate.Options{
		Trace:             trace,
		MaxSteps:          e.config.MaxSteps,
		MaxConfigurations: e.config.MaxConfigurations,
	})
	if err != nil {
		return nil, err
	}
	return func(in string) (AcceptResult, error) {
		res, err := runner.Accept(in)
		return AcceptResult{Input: in, Accepted: res.Accepted, Reason: res.Reason, Trace: res.Trace}, err
	}, nil
}

// Convert produces an equivalent model of kind target
func (e *Engine) Convert(m *model.Model, target model.Kind) (*model.Model, error) {
	start := time.Now()
	out, err := convert.Convert(m, target)
	if err != nil {
		return nil, err
	}
	e.logger.LogConversion(m.Kind().String(), target.String(), modelSize(m), modelSize(out), time.Since(start))
	return out, nil
}

// Compare decides language equivalence of two regular-family models
func (e *Engine) Compare(a, b *model.Model) (*equivalence.Result, error) {
	res, err := equivalence.Compare(a, b)
	if err != nil {
		return nil, err
	}
	e.logger.LogComparison(a.Name, b.Name, res.Equivalent, res.Witness)
	return res, nil
}

// Generate returns the first count words of the language in shortlex order
func (e *Engine) Generate(m *model.Model, count int) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("word count must be non-negative, got %d", count)
	}
	start := time.Now()
	words, err := generate.ByCount(m, count, generate.Options{MaxForms: e.config.MaxForms})
	e.afterGeneration(m, count, words, err, start)
	return words, err
}

// GenerateUpToLength returns every word of length at most length in shortlex order
func (e *Engine) GenerateUpToLength(m *model.Model, length int) ([]string, error) {
	if length < 0 {
		return nil, fmt.Errorf("length bound must be non-negative, got %d", length)
	}
	start := time.Now()
	words, err := generate.UpToLength(m, length, generate.Options{MaxForms: e.config.MaxForms})
	e.afterGeneration(m, -1, words, err, start)
	return words, err
}

func (e *Engine) afterGeneration(m *model.Model, requested int, words []string, err error, start time.Time) {
	if errors.Is(err, model.ErrInfiniteLoopGuard) {
		e.logger.LogBound("generate", err)
	}
	if err == nil || len(words) > 0 {
		e.logger.LogGeneration(m.Kind().String(), requested, len(words), time.Since(start))
	}
}

// GraphView returns the node/edge view of an automaton. Regular expressions are
// shown as their Thompson NFA.
func (e *Engine) GraphView(m *model.Model) (*model.GraphView, error) {
	if m.Kind() == model.KindRE {
		nfa, err := convert.Convert(m, model.KindNFA)
		if err != nil {
			return nil, err
		}
		m = nfa
	}
	return m.GraphView()
}

// RenderGraph writes the graph of m to path as DOT, HTML or PDF by extension
func (e *Engine) RenderGraph(ctx context.Context, m *model.Model, path string) error {
	view, err := e.GraphView(m)
	if err != nil {
		return err
	}
	if err := e.renderer.WriteFile(ctx, path, view); err != nil {
		return fmt.Errorf("failed to render graph: %w", err)
	}
	return nil
}

// modelSize is the state count, nonterminal count or regex node count logged for m
func modelSize(m *model.Model) int {
	switch m.Kind() {
	case model.KindDFA, model.KindNFA:
		a, _ := m.Automaton()
		return a.NumStates()
	case model.KindPDA:
		p, _ := m.PDA()
		return p.NumStates()
	case model.KindTM:
		t, _ := m.TM()
		return t.NumStates()
	case model.KindCFG:
		g, _ := m.Grammar()
		return len(g.Nonterminals)
	case model.KindRE:
		re, _ := m.Regex()
		return re.Expr.Size()
	}
	return 0
}
