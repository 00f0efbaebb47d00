package pdfsurface

import (
	"io"
	"time"
)

// Option configures a Surface.
type Option func(*config)

type config struct {
	pageSize     string
	fontFamily   string
	margin       float64
	top          float64
	created      time.Time
	logo         io.Reader
	logoHeight   float64
	letterhead   string
	qrPayload    string
	qrSize       float64
	watermark    string
	watermarkRGB [3]int
}

func defaultConfig() config {
	return config{
		pageSize:     "A4",
		fontFamily:   "Helvetica",
		margin:       14,
		top:          20,
		logoHeight:   14,
		qrSize:       16,
		watermarkRGB: [3]int{200, 200, 200},
	}
}

// WithPageSize selects a standard page size known to fpdf ("A4", "Letter",
// "Legal", "A5", ...).
func WithPageSize(size string) Option {
	return func(c *config) {
		if size != "" {
			c.pageSize = size
		}
	}
}

// WithMargins sets the left/right margin and the top margin in millimetres.
func WithMargins(side, top float64) Option {
	return func(c *config) {
		c.margin = side
		c.top = top
	}
}

// WithCreationDate fixes the document creation date so identical renders
// produce identical bytes.
func WithCreationDate(t time.Time) Option {
	return func(c *config) { c.created = t }
}

// WithLogo draws the PNG, JPEG or GIF image read from r in the top-left
// corner of the first page.
func WithLogo(r io.Reader) Option {
	return func(c *config) { c.logo = r }
}

// WithLetterhead imports the first page of the PDF at path and draws it
// under the content of every page.
func WithLetterhead(path string) Option {
	return func(c *config) { c.letterhead = path }
}

// WithQRCode stamps a QR code encoding payload in the top-right corner of
// the first page.
func WithQRCode(payload string) Option {
	return func(c *config) { c.qrPayload = payload }
}

// WithWatermark draws text diagonally across every page, behind the content.
func WithWatermark(text string) Option {
	return func(c *config) { c.watermark = text }
}
