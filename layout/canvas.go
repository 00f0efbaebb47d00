// Package layout paginates an extracted plan onto a fixed-size page surface.
//
// Drawing, text measurement and table layout are capabilities supplied by a
// Canvas (see the pdfsurface and preview packages). The package owns the
// vertical cursor, the page-overflow policy and the order in which sections are
// rendered.
package layout

// RGB is a color with 0-255 components.
type RGB struct {
	R int `yaml:"r" json:"r"`
	G int `yaml:"g" json:"g"`
	B int `yaml:"b" json:"b"`
}

// Align is the horizontal anchoring of a text draw.
type Align int

const (
	// AlignLeft draws text starting at x.
	AlignLeft Align = iota
	// AlignCenter centers text on x.
	AlignCenter
)

// TextStyle describes how a single line of text is drawn.
type TextStyle struct {
	Style string  // "", "B", "I" or "BI"
	Size  float64 // points
	Color RGB
	Align Align
}

// BoxStyle describes a rectangle draw. A nil Fill or Stroke skips that part.
type BoxStyle struct {
	Fill      *RGB
	Stroke    *RGB
	LineWidth float64
}

// TableStyle configures a table draw.
type TableStyle struct {
	X, Width     float64
	FirstColumn  float64 // fixed width of the first column; 0 shares the width evenly
	FontSize     float64
	CellPadding  float64
	HeaderFill   RGB
	HeaderText   RGB
	BodyText     RGB
	ZebraFill    RGB
	BorderColor  RGB
	BorderWidth  float64
	PageBottom   float64 // rows ending below this Y move to a new page
	PageTop      float64 // first row Y on continuation pages
	HeaderRepeat bool
}

// TableResult reports where a table draw finished.
type TableResult struct {
	EndY    float64
	EndPage int
}

// Surface is the drawing capability. Pages are numbered from 1; NewPage
// appends a page and makes it active.
type Surface interface {
	PageSize() (width, height float64)
	DrawText(text string, x, y float64, st TextStyle)
	DrawRect(x, y, w, h float64, st BoxStyle)
	NewPage()
	PageCount() int
	SetActivePage(page int)
	// Err reports the first drawing failure, if any.
	Err() error
}

// Measurer is the text measurement and wrapping capability.
type Measurer interface {
	Wrap(text string, maxWidth float64, st TextStyle) []string
}

// TableDrawer is the table layout capability. It paginates internally and
// reports the exact end position.
type TableDrawer interface {
	DrawTable(startY float64, headers []string, rows [][]string, st TableStyle) (TableResult, error)
}

// Canvas bundles the capabilities a render pass needs.
type Canvas interface {
	Surface
	Measurer
	TableDrawer
}
