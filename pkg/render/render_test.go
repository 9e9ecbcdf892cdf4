/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: render_test.go
Description: Tests for DOT output, the HTML graph page and format dispatch. The
HTML page is inspected with goquery. PDF export needs a local Chrome and is skipped
without one.
*/

package render_test

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/kleascm/mentor/pkg/model"
	"github.com/kleascm/mentor/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evenView(t *testing.T) *model.GraphView {
	t.Helper()
	a := model.NewAutomaton(model.KindDFA, model.AlphabetOf("ab"))
	even := a.AddState("even", true)
	odd := a.AddState("odd", false)
	a.AddTransition(even, 'a', odd)
	a.AddTransition(even, 'b', even)
	a.AddTransition(odd, 'a', even)
	a.AddTransition(odd, 'b', odd)
	m, err := model.NewDFA(a)
	require.NoError(t, err)
	m.Name = "even-a"
	view, err := m.GraphView()
	require.NoError(t, err)
	return view
}

func TestDOT(t *testing.T) {
	dot := render.DOT(evenView(t))
	assert.True(t, strings.HasPrefix(dot, `digraph "even-a" {`))
	assert.Contains(t, dot, `n0 [label="even", shape=doublecircle];`)
	assert.Contains(t, dot, `n1 [label="odd", shape=circle];`)
	assert.Contains(t, dot, "__start -> n0;")
	assert.Contains(t, dot, `n0 -> n1 [label="a"];`)
	assert.Contains(t, dot, `n0 -> n0 [label="b"];`)
}

func TestHTMLPage(t *testing.T) {
	pages := render.NewPageGenerator(nil, "session-1")
	var buf bytes.Buffer
	require.NoError(t, pages.Render(&buf, evenView(t)))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "even-a - mentor", doc.Find("title").Text())
	assert.Equal(t, "session-1", doc.Find(".session").Text())
	assert.Equal(t, 2, doc.Find("svg g.node").Length())
	assert.Equal(t, 4, doc.Find("svg g.edge").Length())
	assert.Equal(t, 1, doc.Find("svg g.node.accepting").Length())
	assert.Equal(t, 1, doc.Find("svg g.node.start").Length())

	var labels []string
	doc.Find("svg text.node-label").Each(func(_ int, s *goquery.Selection) {
		labels = append(labels, s.Text())
	})
	assert.Equal(t, []string{"even", "odd"}, labels)
	assert.Equal(t, 4, doc.Find("table.edges tbody tr").Length())
}

func TestHTMLEscapesLabels(t *testing.T) {
	view := &model.GraphView{
		Kind:  model.KindNFA,
		Title: "<script>",
		Nodes: []model.GraphNode{{ID: 0, Label: "<b>", Start: true}},
		Edges: []model.GraphEdge{{From: 0, To: 0, Label: "a&b"}},
	}
	var buf bytes.Buffer
	require.NoError(t, render.NewPageGenerator(nil, "").Render(&buf, view))
	assert.NotContains(t, buf.String(), "<b>")

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "<b>", doc.Find("svg text.node-label").Text())
	assert.Equal(t, "a&b", doc.Find("svg text.edge-label").Text())
	assert.NotEmpty(t, doc.Find(".session").Text())
}

func TestFormatFromPath(t *testing.T) {
	for path, expected := range map[string]render.Format{"g.dot": render.FormatDOT, "g.HTML": render.FormatHTML, "out/g.pdf": render.FormatPDF} {
		f, err := render.FormatFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, expected, f)
	}
	_, err := render.FormatFromPath("g.png")
	assert.Error(t, err)
}

func TestRendererWriteFile(t *testing.T) {
	dir := t.TempDir()
	r := render.NewRenderer(render.NewPageGenerator(nil, ""))
	view := evenView(t)

	dotPath := filepath.Join(dir, "even.dot")
	require.NoError(t, r.WriteFile(context.Background(), dotPath, view))
	data, err := os.ReadFile(dotPath)
	require.NoError(t, err)
	assert.Equal(t, render.DOT(view), string(data))

	htmlPath := filepath.Join(dir, "nested", "even.html")
	require.NoError(t, r.WriteFile(context.Background(), htmlPath, view))
	assert.FileExists(t, htmlPath)
}

func TestPDFExport(t *testing.T) {
	if testing.Short() {
		t.Skip("PDF export starts a browser")
	}
	found := false
	for _, name := range []string{"google-chrome", "chromium", "chromium-browser", "headless-shell"} {
		if _, err := exec.LookPath(name); err == nil {
			found = true
			break
		}
	}
	if !found {
		t.Skip("no Chrome binary available")
	}

	path := filepath.Join(t.TempDir(), "even.pdf")
	r := render.NewRenderer(render.NewPageGenerator(nil, ""))
	require.NoError(t, r.WriteFile(context.Background(), path, evenView(t)))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.FileExists(t, strings.TrimSuffix(path, ".pdf")+".html")
}
