/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: render.go
Description: Output format dispatch by file extension and opening rendered files in
the desktop viewer.
*/

package render

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/kleascm/mentor/pkg/model"
)

// Format is a rendering target
type Format string

const (
	FormatDOT  Format = "dot"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// FormatFromPath picks the format from the output extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dot", ".gv":
		return FormatDOT, nil
	case ".html", ".htm":
		return FormatHTML, nil
	case ".pdf":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("unsupported graph output %q (expected .dot, .html or .pdf)", path)
}

// Renderer writes graph views in any supported format
type Renderer struct {
	pages *PageGenerator
	pdf   *PDFExporter
}

// NewRenderer wraps a page generator
func NewRenderer(pages *PageGenerator) *Renderer {
	return &Renderer{pages: pages, pdf: NewPDFExporter(pages, 0)}
}

// SetPDFTimeout bounds each PDF export; d <= 0 selects DefaultPDFTimeout
func (r *Renderer) SetPDFTimeout(d time.Duration) {
	r.pdf = NewPDFExporter(r.pages, d)
}

// WriteFile renders view to path in the format implied by its extension
func (r *Renderer) WriteFile(ctx context.Context, path string, view *model.GraphView) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	switch format {
	case FormatDOT:
		if err := os.WriteFile(path, []byte(DOT(view)), 0644); err != nil {
			return fmt.Errorf("failed to write DOT file: %w", err)
		}
		return nil
	case FormatHTML:
		return r.pages.WriteFile(path, view)
	default:
		return r.pdf.Export(ctx, path, view)
	}
}

// Open shows a rendered file with the platform viewer
func Open(path string) error {
	return OpenWith("", path)
}

// OpenWith shows a rendered file with viewer, or the platform viewer when empty
func OpenWith(viewer, path string) error {
	if viewer != "" {
		if err := exec.Command(viewer, path).Start(); err != nil {
			return fmt.Errorf("failed to start viewer %s: %w", viewer, err)
		}
		return nil
	}
	for _, cmd := range []string{"xdg-open", "open", "start"} {
		if err := exec.Command(cmd, path).Start(); err == nil {
			return nil
		}
	}
	return fmt.Errorf("could not open %s automatically", path)
}
