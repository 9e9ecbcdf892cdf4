/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: reporter.go
Description: Plain-text reporting of engine results for the command line.
*/

package core

import (
	"fmt"
	"io"

	"github.com/kleascm/mentor/pkg/equivalence"
	"github.com/kleascm/mentor/pkg/model"
)

// Reporter writes results in a line-oriented text format
type Reporter struct {
	w io.Writer
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Accept prints one verdict line per input followed by its trace, if any
func (r *Reporter) Accept(results []AcceptResult) {
	for _, res := range results {
		verdict := "rejected"
		if res.Accepted {
			verdict = "accepted"
		}
		if res.Reason != "" {
			fmt.Fprintf(r.w, "%s: %s (%s)\n", displayWord(res.Input), verdict, res.Reason)
			continue
		}
		fmt.Fprintf(r.w, "%s: %s\n", displayWord(res.Input), verdict)
		if res.Trace == nil {
			continue
		}
		for snap := range res.Trace.All() {
			fmt.Fprintf(r.w, "  %s\n", snap)
		}
	}
}

// Comparison prints the equivalence verdict
func (r *Reporter) Comparison(res *equivalence.Result) {
	if res.Equivalent {
		fmt.Fprintln(r.w, "equivalent")
		return
	}
	fmt.Fprintf(r.w, "not equivalent; witness %s\n", displayWord(res.Witness))
}

// Words prints one word per line, ε for the empty word
func (r *Reporter) Words(words []string) {
	for _, w := range words {
		fmt.Fprintln(r.w, displayWord(w))
	}
}

// Model prints the one-line model summary
func (r *Reporter) Model(m *model.Model) {
	fmt.Fprintln(r.w, m.Summary())
}

func displayWord(w string) string {
	if w == "" {
		return "ε"
	}
	return w
}
