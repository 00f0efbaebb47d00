// Package preview provides an in-memory canvas that records draw operations
// instead of producing a PDF. It measures text with a fixed-advance glyph face
// so layouts are reproducible, which makes it the canvas of choice for
// inspecting pagination and for tests.
package preview

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/lvillar/planpdf/layout"
)

// Sentinel errors reported through Recorder.Err.
var (
	ErrNoPage    = errors.New("preview: no page has been added")
	ErrPageRange = errors.New("preview: page out of range")
)

const (
	ptToMM = 25.4 / 72
	// glyphEm is the advance of one glyph relative to the font size.
	glyphEm = 0.5
)

// OpKind identifies a recorded operation.
type OpKind int

const (
	OpText OpKind = iota
	OpRect
	OpCell
)

// Op is one recorded draw call.
type Op struct {
	Kind  OpKind
	X, Y  float64
	W, H  float64
	Text  string
	Style layout.TextStyle
	Box   layout.BoxStyle
}

// Page holds the operations drawn on one page.
type Page struct {
	Number int
	Ops    []Op
}

// Recorder is a layout.Canvas that keeps every operation in memory.
type Recorder struct {
	width, height float64
	pages         []*Page
	active        int
	err           error
}

var _ layout.Canvas = (*Recorder)(nil)

// NewRecorder returns an empty recorder with the given page size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{width: width, height: height}
}

// A4 returns an empty recorder sized 210x297 mm.
func A4() *Recorder {
	return NewRecorder(210, 297)
}

func (r *Recorder) PageSize() (float64, float64) { return r.width, r.height }

func (r *Recorder) DrawText(text string, x, y float64, st layout.TextStyle) {
	r.record(Op{Kind: OpText, X: x, Y: y, Text: text, Style: st})
}

func (r *Recorder) DrawRect(x, y, w, h float64, st layout.BoxStyle) {
	r.record(Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Box: st})
}

func (r *Recorder) NewPage() {
	r.pages = append(r.pages, &Page{Number: len(r.pages) + 1})
	r.active = len(r.pages)
}

func (r *Recorder) PageCount() int { return len(r.pages) }

func (r *Recorder) SetActivePage(page int) {
	if page < 1 || page > len(r.pages) {
		r.fail(fmt.Errorf("%w: %d of %d", ErrPageRange, page, len(r.pages)))
		return
	}
	r.active = page
}

// ActivePage returns the page draw calls currently target.
func (r *Recorder) ActivePage() int { return r.active }

func (r *Recorder) Err() error { return r.err }

func (r *Recorder) Wrap(text string, maxWidth float64, st layout.TextStyle) []string {
	return layout.WrapText(text, maxWidth, func(s string) float64 {
		return TextWidth(s, st.Size)
	})
}

// TextWidth returns the width in millimetres of s at size points.
func TextWidth(s string, size float64) float64 {
	face := basicfont.Face7x13
	px := float64(font.MeasureString(face, s)) / 64
	return px / float64(face.Advance) * size * glyphEm * ptToMM
}

func (r *Recorder) record(op Op) {
	if r.active == 0 {
		r.fail(ErrNoPage)
		return
	}
	p := r.pages[r.active-1]
	p.Ops = append(p.Ops, op)
}

func (r *Recorder) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// Ops returns the operations recorded on page (1-based).
func (r *Recorder) Ops(page int) []Op {
	if page < 1 || page > len(r.pages) {
		return nil
	}
	return r.pages[page-1].Ops
}

// Texts returns the text drawn on page, in draw order.
func (r *Recorder) Texts(page int) []string {
	var out []string
	for _, op := range r.Ops(page) {
		if op.Kind == OpText || op.Kind == OpCell {
			out = append(out, op.Text)
		}
	}
	return out
}

// WriteTranscript writes a page-by-page listing of the recorded text.
func (r *Recorder) WriteTranscript(w io.Writer) error {
	var b strings.Builder
	for _, p := range r.pages {
		fmt.Fprintf(&b, "--- page %d of %d ---\n", p.Number, len(r.pages))
		for _, op := range p.Ops {
			if op.Kind == OpRect {
				continue
			}
			fmt.Fprintf(&b, "%6.1f  %s\n", op.Y, op.Text)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
