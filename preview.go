package planpdf

import (
	"io"

	"github.com/lvillar/planpdf/content"
	"github.com/lvillar/planpdf/extract"
	"github.com/lvillar/planpdf/layout"
	"github.com/lvillar/planpdf/pdfsurface"
	"github.com/lvillar/planpdf/preview"
	"github.com/lvillar/planpdf/stats"
)

// Preview lays doc out on an in-memory canvas instead of a PDF and writes
// the page transcript to w. It returns the number of pages the document
// would have. Brand decorations are ignored.
func Preview(w io.Writer, doc *content.Document, st stats.Summary, productName string, opts ...Option) (int, error) {
	if doc == nil {
		return 0, newRenderError("Preview", ErrInvalidParam, nil)
	}
	cfg := newRenderConfig(opts)
	if productName == "" {
		productName = DefaultProductName
	}
	width, height, err := pdfsurface.PageDimensions(cfg.pageSize)
	if err != nil {
		return 0, newRenderError("Preview", ErrCapabilityUnavailable, err)
	}

	rec := preview.NewRecorder(width, height)
	composer := layout.Composer{Theme: cfg.theme, Logger: cfg.logger}
	in := layout.Input{Title: cfg.title, Stats: st, ProductName: productName, Plan: extract.All(doc)}
	if _, err := composer.Compose(rec, in); err != nil {
		return 0, newRenderError("Preview", ErrCapabilityUnavailable, err)
	}
	if err := rec.WriteTranscript(w); err != nil {
		return 0, newRenderError("Preview", ErrExport, err)
	}
	return rec.PageCount(), nil
}
