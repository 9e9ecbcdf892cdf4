/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: types.go
Description: Core types for the mentor engine: run bounds, logging settings and the
results returned by engine operations.
*/

package core

import (
	"fmt"
	"time"

	"github.com/kleascm/mentor/pkg/grammar"
	"github.com/kleascm/mentor/pkg/logging"
	"github.com/kleascm/mentor/pkg/render"
	"github.com/kleascm/mentor/pkg/simulate"
)

// DefaultMaxSteps bounds Turing machine runs when no bound is configured
const DefaultMaxSteps = 10000

// Config holds the engine bounds and logging settings
type Config struct {
	// MaxSteps bounds each Turing machine run
	MaxSteps int `json:"max_steps"`
	// MaxConfigurations bounds each PDA search
	MaxConfigurations int `json:"max_configurations"`
	// MaxForms bounds each derivation search during generation
	MaxForms int `json:"max_forms"`
	// PDFTimeout bounds one headless browser export
	PDFTimeout time.Duration `json:"pdf_timeout"`

	Logging *logging.LoggerConfig `json:"logging"`
}

// DefaultConfig returns the bounds used when nothing is configured
func DefaultConfig() *Config {
	return &Config{
		MaxSteps:          DefaultMaxSteps,
		MaxConfigurations: simulate.DefaultMaxConfigurations,
		MaxForms:          grammar.DefaultMaxForms,
		PDFTimeout:        render.DefaultPDFTimeout,
		Logging:           logging.DefaultConfig(),
	}
}

// Validate checks that every bound is positive
func (c *Config) Validate() error {
	if c.MaxSteps <= 0 {
		return fmt.Errorf("tm.max_steps must be positive, got %d", c.MaxSteps)
	}
	if c.MaxConfigurations <= 0 {
		return fmt.Errorf("pda.max_configurations must be positive, got %d", c.MaxConfigurations)
	}
	if c.MaxForms <= 0 {
		return fmt.Errorf("generate.max_forms must be positive, got %d", c.MaxForms)
	}
	if c.Logging != nil {
		if err := c.Logging.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// AcceptResult is the verdict for one input string
type AcceptResult struct {
	Input    string          `json:"input"`
	Accepted bool            `json:"accepted"`
	Reason   string          `json:"reason,omitempty"`
	Trace    *simulate.Trace `json:"-"`
}
