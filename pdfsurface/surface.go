// Package pdfsurface implements the layout canvas on top of go-pdf/fpdf.
//
// A Surface draws text and boxes with the core Helvetica font, wraps text by
// measuring the cp1252-encoded string fpdf will actually emit, and delegates
// tables to the table package. Every page it creates can carry an imported
// letterhead and a watermark; the first page can carry a logo and a QR code.
// The UTF-8 text drawn on each page is kept so callers can inspect a render
// without parsing the PDF.
package pdfsurface

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/lvillar/planpdf/layout"
)

// ErrPageRange is reported when SetActivePage names a page that does not exist.
var ErrPageRange = errors.New("pdfsurface: page out of range")

// Surface is a layout.Canvas writing to an fpdf document. It is not safe for
// concurrent use.
type Surface struct {
	pdf       *fpdf.Fpdf
	cfg       config
	tr        func(string) string
	width     float64
	height    float64
	active    int
	pages     [][]string
	deco      decorations
	err       error
	finalized []byte
}

var _ layout.Canvas = (*Surface)(nil)

// New creates an empty document. It fails when fpdf rejects the page size or
// when a logo, letterhead or QR code cannot be prepared.
func New(opts ...Option) (*Surface, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	pdf := fpdf.New("P", "mm", cfg.pageSize, "")
	if pdf.Err() {
		return nil, fmt.Errorf("pdfsurface: %w", pdf.Error())
	}
	pdf.SetMargins(cfg.margin, cfg.top, cfg.margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	pdf.SetFont(cfg.fontFamily, "", 10)
	if !cfg.created.IsZero() {
		pdf.SetCreationDate(cfg.created)
		pdf.SetModificationDate(cfg.created)
	}

	s := &Surface{
		pdf: pdf,
		cfg: cfg,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
	s.width, s.height = pdf.GetPageSize()

	deco, err := prepareDecorations(pdf, cfg, s.tr)
	if err != nil {
		return nil, err
	}
	s.deco = deco
	if pdf.Err() {
		return nil, fmt.Errorf("pdfsurface: %w", pdf.Error())
	}
	return s, nil
}

// PageDimensions returns the portrait width and height in millimetres of a
// page size name such as "A4" or "Letter".
func PageDimensions(size string) (float64, float64, error) {
	pdf := fpdf.New("P", "mm", size, "")
	if pdf.Err() {
		return 0, 0, fmt.Errorf("pdfsurface: %w", pdf.Error())
	}
	w, h := pdf.GetPageSize()
	return w, h, nil
}

func (s *Surface) PageSize() (float64, float64) { return s.width, s.height }

func (s *Surface) DrawText(text string, x, y float64, st layout.TextStyle) {
	if !s.ready() {
		return
	}
	s.applyText(st)
	enc := s.tr(text)
	if st.Align == layout.AlignCenter {
		x -= s.pdf.GetStringWidth(enc) / 2
	}
	s.pdf.Text(x, y, enc)
	s.record(s.active, text)
}

func (s *Surface) DrawRect(x, y, w, h float64, st layout.BoxStyle) {
	if !s.ready() {
		return
	}
	mode := ""
	if st.Fill != nil {
		s.pdf.SetFillColor(st.Fill.R, st.Fill.G, st.Fill.B)
		mode += "F"
	}
	if st.Stroke != nil {
		s.pdf.SetDrawColor(st.Stroke.R, st.Stroke.G, st.Stroke.B)
		if st.LineWidth > 0 {
			s.pdf.SetLineWidth(st.LineWidth)
		}
		mode += "D"
	}
	if mode == "" {
		return
	}
	s.pdf.Rect(x, y, w, h, mode)
}

func (s *Surface) NewPage() {
	s.pdf.AddPage()
	s.pageAdded()
}

// pageAdded runs after fpdf has started a page, whoever started it.
func (s *Surface) pageAdded() {
	s.pages = append(s.pages, nil)
	s.active = s.pdf.PageNo()
	s.deco.apply(s.pdf, s.active, s.width, s.height)
}

func (s *Surface) PageCount() int { return s.pdf.PageCount() }

func (s *Surface) SetActivePage(page int) {
	if page < 1 || page > s.pdf.PageCount() {
		s.fail(fmt.Errorf("%w: %d of %d", ErrPageRange, page, s.pdf.PageCount()))
		return
	}
	s.pdf.SetPage(page)
	s.active = page
}

func (s *Surface) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.pdf.Error()
}

// Wrap measures lines in the font's code page but returns them in UTF-8.
func (s *Surface) Wrap(text string, maxWidth float64, st layout.TextStyle) []string {
	s.applyFont(st)
	return layout.WrapText(text, maxWidth, func(line string) float64 {
		return s.pdf.GetStringWidth(s.tr(line))
	})
}

// PageText returns the UTF-8 text drawn on page, in draw order.
func (s *Surface) PageText(page int) []string {
	if page < 1 || page > len(s.pages) {
		return nil
	}
	return append([]string(nil), s.pages[page-1]...)
}

// Bytes finalizes the document and returns the PDF. The document cannot be
// drawn on afterwards; later calls return the same bytes.
func (s *Surface) Bytes() ([]byte, error) {
	if s.finalized != nil {
		return s.finalized, nil
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := s.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdfsurface: output: %w", err)
	}
	s.finalized = buf.Bytes()
	return s.finalized, nil
}

func (s *Surface) ready() bool {
	if s.active == 0 {
		s.fail(errors.New("pdfsurface: draw before the first page"))
		return false
	}
	return true
}

func (s *Surface) applyFont(st layout.TextStyle) {
	size := st.Size
	if size <= 0 {
		size = 10
	}
	s.pdf.SetFont(s.cfg.fontFamily, st.Style, size)
}

func (s *Surface) applyText(st layout.TextStyle) {
	s.applyFont(st)
	s.pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
}

func (s *Surface) record(page int, text string) {
	if page >= 1 && page <= len(s.pages) {
		s.pages[page-1] = append(s.pages[page-1], text)
	}
}

func (s *Surface) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}
