/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: pdf.go
Description: PDF export of graph pages through headless Chrome. The HTML page is
written next to the PDF, loaded from disk and printed with page.PrintToPDF.
*/

package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/kleascm/mentor/pkg/model"
)

// DefaultPDFTimeout bounds one browser session
const DefaultPDFTimeout = 30 * time.Second

// PDFExporter prints graph pages with a headless browser
type PDFExporter struct {
	pages   *PageGenerator
	timeout time.Duration
}

// NewPDFExporter creates an exporter; timeout <= 0 selects DefaultPDFTimeout
func NewPDFExporter(pages *PageGenerator, timeout time.Duration) *PDFExporter {
	if timeout <= 0 {
		timeout = DefaultPDFTimeout
	}
	return &PDFExporter{pages: pages, timeout: timeout}
}

// Export writes path.pdf and the HTML page it was printed from
func (e *PDFExporter) Export(ctx context.Context, path string, view *model.GraphView) error {
	htmlPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".html"
	if err := e.pages.WriteFile(htmlPath, view); err != nil {
		return err
	}
	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", htmlPath, err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer allocCancel()
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+filepath.ToSlash(abs)),
		chromedp.WaitReady("svg"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to print graph to PDF: %w", err)
	}
	if err := os.WriteFile(path, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}
