package layout

// Cursor is the write position of a render pass: the Y of the next line and
// the 1-based page it lands on. Y only grows within a page and is reset to the
// theme's top margin when a page is added.
type Cursor struct {
	Y    float64
	Page int
}

// Flow applies the page-overflow policy to a canvas. Renderers receive the
// current cursor and return the advanced one; the flow never stores it.
type Flow struct {
	canvas Canvas
	theme  Theme
}

// NewFlow binds a canvas and theme for one render pass.
func NewFlow(cv Canvas, th Theme) *Flow {
	return &Flow{canvas: cv, theme: th}
}

// Canvas returns the canvas being drawn on.
func (f *Flow) Canvas() Canvas { return f.canvas }

// Theme returns the active theme.
func (f *Flow) Theme() Theme { return f.theme }

// WouldOverflow reports whether a block of the proposed height starting at c
// passes threshold. The thresholds are soft cut-offs, so the last line of a
// block may still land slightly below the nominal content area.
func (f *Flow) WouldOverflow(c Cursor, proposedHeight, threshold float64) bool {
	return c.Y+proposedHeight > threshold
}

// AdvancePage starts a new page and returns a cursor at its top margin.
func (f *Flow) AdvancePage(c Cursor) Cursor {
	f.canvas.NewPage()
	return Cursor{Y: f.theme.Top, Page: c.Page + 1}
}

// Reserve advances to a new page when a block at c would pass threshold.
func (f *Flow) Reserve(c Cursor, proposedHeight, threshold float64) Cursor {
	if f.WouldOverflow(c, proposedHeight, threshold) {
		return f.AdvancePage(c)
	}
	return c
}

// SectionTitle draws a section heading at the left margin and moves below it.
func (f *Flow) SectionTitle(c Cursor, title string) Cursor {
	f.canvas.DrawText(title, f.theme.Margin, c.Y, f.theme.sectionTitle())
	c.Y += f.theme.SectionTitleAdvance
	return c
}

// Lines wraps text to width, draws it starting at (x, c.Y) one line-height
// apart, and returns the number of lines drawn.
func (f *Flow) Lines(c Cursor, text string, x, width float64, st TextStyle) int {
	lines := f.canvas.Wrap(text, width, st)
	f.drawLines(lines, x, c.Y, st)
	return len(lines)
}

func (f *Flow) drawLines(lines []string, x, y float64, st TextStyle) {
	for i, l := range lines {
		f.canvas.DrawText(l, x, y+float64(i)*f.theme.LineHeight, st)
	}
}
