/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: html.go
Description: HTML graph pages. The page is self-contained so it can be opened from
disk, printed to PDF or served as-is.
*/

package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/mentor/pkg/model"
	"github.com/sirupsen/logrus"
)

// PageData is everything the page template needs
type PageData struct {
	Title       string    `json:"title"`
	Kind        string    `json:"kind"`
	GeneratedAt time.Time `json:"generated_at"`
	SessionID   string    `json:"session_id"`
	Layout      layout    `json:"-"`
	Edges       []tableEdge
}

type tableEdge struct {
	From, To, Label string
}

// PageGenerator renders graph views to HTML
type PageGenerator struct {
	logger    *logrus.Logger
	templates *template.Template
	sessionID string
}

// NewPageGenerator creates a generator. An empty session ID gets a fresh one.
func NewPageGenerator(logger *logrus.Logger, sessionID string) *PageGenerator {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	funcs := template.FuncMap{
		"sub": func(a, b float64) float64 { return a - b },
	}
	return &PageGenerator{
		logger:    logger,
		templates: template.Must(template.New("page").Funcs(funcs).Parse(pageTemplate)),
		sessionID: sessionID,
	}
}

// Data prepares the template data for a view
func (g *PageGenerator) Data(view *model.GraphView) *PageData {
	title := view.Title
	if title == "" {
		title = view.Kind.Description()
	}
	data := &PageData{
		Title:       title,
		Kind:        view.Kind.Description(),
		GeneratedAt: time.Now(),
		SessionID:   g.sessionID,
		Layout:      circleLayout(view),
	}
	names := make(map[int]string, len(view.Nodes))
	for _, n := range view.Nodes {
		names[n.ID] = n.Label
	}
	for _, e := range view.Edges {
		data.Edges = append(data.Edges, tableEdge{From: names[e.From], To: names[e.To], Label: e.Label})
	}
	return data
}

// Render writes the page for a view
func (g *PageGenerator) Render(w io.Writer, view *model.GraphView) error {
	if err := g.templates.Execute(w, g.Data(view)); err != nil {
		return fmt.Errorf("failed to render graph page: %w", err)
	}
	return nil
}

// WriteFile renders the page to path, creating parent directories
func (g *PageGenerator) WriteFile(path string, view *model.GraphView) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	var buf bytes.Buffer
	if err := g.Render(&buf, view); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write graph page: %w", err)
	}
	g.logger.WithFields(logrus.Fields{
		"path":  path,
		"nodes": len(view.Nodes),
		"edges": len(view.Edges),
	}).Info("Graph page written")
	return nil
}
