package planpdf

import (
	"io"
	"log/slog"
	"time"

	"github.com/lvillar/planpdf/layout"
)

// Option is a functional option for configuring a render pass.
type Option func(*renderConfig)

type renderConfig struct {
	title      string
	theme      layout.Theme
	pageSize   string
	logo       io.Reader
	letterhead string
	qrPayload  string
	watermark  string
	logger     *slog.Logger
	created    time.Time
}

func newRenderConfig(opts []Option) *renderConfig {
	cfg := &renderConfig{
		title:    DefaultTitle,
		theme:    layout.DefaultTheme(),
		pageSize: "A4",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	if cfg.created.IsZero() {
		cfg.created = time.Now()
	}
	return cfg
}

// WithTitle sets the heading drawn at the top of the first page.
func WithTitle(title string) Option {
	return func(c *renderConfig) {
		if title != "" {
			c.title = title
		}
	}
}

// WithTheme replaces the default geometry, colors and section copy.
func WithTheme(th layout.Theme) Option {
	return func(c *renderConfig) {
		c.theme = th
	}
}

// WithPageSize sets the page size by name ("A4", "Letter", "Legal", ...).
func WithPageSize(size string) Option {
	return func(c *renderConfig) {
		c.pageSize = size
	}
}

// WithLogo draws an image in the top-left corner of the first page.
func WithLogo(r io.Reader) Option {
	return func(c *renderConfig) {
		c.logo = r
	}
}

// WithLetterhead draws the first page of the PDF at path under every page.
func WithLetterhead(path string) Option {
	return func(c *renderConfig) {
		c.letterhead = path
	}
}

// WithQRCode stamps a QR code encoding payload on the first page.
func WithQRCode(payload string) Option {
	return func(c *renderConfig) {
		c.qrPayload = payload
	}
}

// WithWatermark draws text diagonally across every page.
func WithWatermark(text string) Option {
	return func(c *renderConfig) {
		c.watermark = text
	}
}

// WithLogger receives debug reports about records that fell back to
// defaults. Rendering is silent without it.
func WithLogger(l *slog.Logger) Option {
	return func(c *renderConfig) {
		c.logger = l
	}
}

// WithCreationDate fixes the document's creation date. Renders of the same
// input with the same date produce identical bytes.
func WithCreationDate(t time.Time) Option {
	return func(c *renderConfig) {
		c.created = t
	}
}
