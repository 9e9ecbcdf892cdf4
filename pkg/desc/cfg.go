/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: cfg.go
Description: Production-line syntax for grammar descriptions: "S -> a S b | ε".
Tokens are separated by spaces; a token naming a nonterminal is that nonterminal,
ε (or eps) is the empty body, and any other token is a run of terminals.
*/

package desc

import (
	"strings"

	"github.com/kleascm/mentor/pkg/model"
	"gopkg.in/yaml.v3"
)

type productionLine struct {
	head         string
	alternatives [][]string
}

func splitProduction(line string) (productionLine, error) {
	arrow := "->"
	idx := strings.Index(line, arrow)
	if alt := strings.Index(line, "→"); alt >= 0 && (idx < 0 || alt < idx) {
		idx, arrow = alt, "→"
	}
	if idx < 0 {
		return productionLine{}, model.Malformed(model.KindCFG, "production syntax", "missing -> in %q", line)
	}
	head := strings.TrimSpace(line[:idx])
	if head == "" || strings.ContainsAny(head, " \t") {
		return productionLine{}, model.Malformed(model.KindCFG, "production syntax", "bad head in %q", line)
	}
	out := productionLine{head: head}
	for _, alt := range strings.Split(line[idx+len(arrow):], "|") {
		out.alternatives = append(out.alternatives, strings.Fields(alt))
	}
	return out, nil
}

func isEpsilonToken(tok string) bool {
	return tok == "ε" || tok == "eps" || tok == "epsilon"
}

func decodeCFG(data []byte) (*model.Model, error) {
	var f cfgFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, syntaxError(model.KindCFG, err)
	}
	if len(f.Productions) == 0 && f.Start == "" {
		return nil, model.Malformed(model.KindCFG, "start ∈ nonterminals", "grammar has no start symbol")
	}

	lines := make([]productionLine, 0, len(f.Productions))
	for _, text := range f.Productions {
		line, err := splitProduction(text)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	g := &model.Grammar{Start: f.Start}
	declared := make(map[string]bool)
	addNonterminal := func(n string) {
		if !declared[n] {
			declared[n] = true
			g.Nonterminals = append(g.Nonterminals, n)
		}
	}
	if len(f.Nonterminals) > 0 {
		for _, n := range f.Nonterminals {
			addNonterminal(n)
		}
	} else {
		if g.Start != "" {
			addNonterminal(g.Start)
		}
		for _, l := range lines {
			addNonterminal(l.head)
		}
	}
	if g.Start == "" {
		g.Start = lines[0].head
	}

	var terminals []model.Symbol
	for _, l := range lines {
		for _, alt := range l.alternatives {
			var body []model.GrammarSymbol
			for _, tok := range alt {
				switch {
				case declared[tok]:
					body = append(body, model.N(tok))
				case isEpsilonToken(tok):
				default:
					for _, r := range tok {
						body = append(body, model.T(r))
						terminals = append(terminals, r)
					}
				}
			}
			g.Productions = append(g.Productions, model.Production{Head: l.head, Body: body})
		}
	}
	if f.Terminals != nil {
		g.Terminals = model.Alphabet(f.Terminals)
	} else {
		g.Terminals = model.NewAlphabet(terminals...)
	}

	m, err := model.NewGrammarModel(g)
	if err != nil {
		return nil, err
	}
	m.Name = f.Name
	return m, nil
}

// productionText writes every alternative of a head on one line
func productionText(g *model.Grammar, head string) string {
	var alts []string
	for _, p := range g.ProductionsOf(head) {
		if len(p.Body) == 0 {
			alts = append(alts, "ε")
			continue
		}
		toks := make([]string, len(p.Body))
		for i, s := range p.Body {
			toks[i] = s.String()
		}
		alts = append(alts, strings.Join(toks, " "))
	}
	return head + " -> " + strings.Join(alts, " | ")
}
