// Package planpdf renders a generated fitness plan into a paginated PDF.
//
// The plan arrives as loosely structured HTML. Render extracts the workout
// cards, nutrition table and mindset cards from it, lays them out on A4 pages
// under a title and stats box, stamps a footer on every page and returns an
// immutable Artifact that can be written anywhere or handed to an Exporter.
//
//	doc, _ := content.ParseString(payload.AIPlan)
//	art, err := planpdf.Render(doc, payload.Summary(), "AI Personal Trainer")
//	if err != nil {
//	    return err
//	}
//	return art.Save(ctx, planpdf.FileExporter{Dir: "out"}, "")
package planpdf

import (
	"bytes"

	"github.com/google/uuid"

	"github.com/lvillar/planpdf/content"
	"github.com/lvillar/planpdf/extract"
	"github.com/lvillar/planpdf/layout"
	"github.com/lvillar/planpdf/pdfsurface"
	"github.com/lvillar/planpdf/stats"
)

const (
	// DefaultProductName is used in the footer when none is given.
	DefaultProductName = "AI Personal Trainer"
	// DefaultTitle is the heading of the first page.
	DefaultTitle = "Elite Fitness & Nutrition Plan"
	// DefaultFilename is the name artifacts are saved under.
	DefaultFilename = "Elite_Fitness_Plan.pdf"
)

// Render lays out doc and returns the finished document. Missing sections
// and malformed records never fail a render; only a drawing surface that
// cannot be built or fails mid-pass does, and then no artifact is returned.
func Render(doc *content.Document, st stats.Summary, productName string, opts ...Option) (*Artifact, error) {
	if doc == nil {
		return nil, newRenderError("Render", ErrInvalidParam, nil)
	}
	return RenderPlan(extract.All(doc), st, productName, opts...)
}

// RenderPlan renders an already extracted plan.
func RenderPlan(plan extract.Plan, st stats.Summary, productName string, opts ...Option) (*Artifact, error) {
	cfg := newRenderConfig(opts)
	if productName == "" {
		productName = DefaultProductName
	}

	surfaceOpts := []pdfsurface.Option{
		pdfsurface.WithPageSize(cfg.pageSize),
		pdfsurface.WithMargins(cfg.theme.Margin, cfg.theme.Top),
		pdfsurface.WithCreationDate(cfg.created),
	}
	if cfg.logo != nil {
		surfaceOpts = append(surfaceOpts, pdfsurface.WithLogo(cfg.logo))
	}
	if cfg.letterhead != "" {
		surfaceOpts = append(surfaceOpts, pdfsurface.WithLetterhead(cfg.letterhead))
	}
	if cfg.qrPayload != "" {
		surfaceOpts = append(surfaceOpts, pdfsurface.WithQRCode(cfg.qrPayload))
	}
	if cfg.watermark != "" {
		surfaceOpts = append(surfaceOpts, pdfsurface.WithWatermark(cfg.watermark))
	}

	surface, err := pdfsurface.New(surfaceOpts...)
	if err != nil {
		return nil, newRenderError("Render", ErrCapabilityUnavailable, err)
	}

	composer := layout.Composer{Theme: cfg.theme, Logger: cfg.logger}
	in := layout.Input{Title: cfg.title, Stats: st, ProductName: productName, Plan: plan}
	if _, err := composer.Compose(surface, in); err != nil {
		return nil, newRenderError("Render", ErrCapabilityUnavailable, err)
	}

	data, err := surface.Bytes()
	if err != nil {
		return nil, newRenderError("Render", ErrCapabilityUnavailable, err)
	}

	art := &Artifact{
		id:   uuid.NewString(),
		data: data,
	}
	for p := 1; p <= surface.PageCount(); p++ {
		art.pages = append(art.pages, surface.PageText(p))
	}
	cfg.logger.Debug("plan rendered", "artifact", art.id, "pages", len(art.pages), "bytes", len(data))
	return art, nil
}

// Artifact is a finished PDF. It is immutable and safe for concurrent use.
type Artifact struct {
	id    string
	data  []byte
	pages [][]string
}

// ID is a random identifier assigned at render time.
func (a *Artifact) ID() string { return a.id }

// PageCount returns the number of pages.
func (a *Artifact) PageCount() int { return len(a.pages) }

// PageText returns the text drawn on page (1-based), in draw order.
func (a *Artifact) PageText(page int) []string {
	if page < 1 || page > len(a.pages) {
		return nil
	}
	return append([]string(nil), a.pages[page-1]...)
}

// Bytes returns a copy of the PDF.
func (a *Artifact) Bytes() []byte {
	return bytes.Clone(a.data)
}

// Len returns the size of the PDF in bytes.
func (a *Artifact) Len() int { return len(a.data) }
