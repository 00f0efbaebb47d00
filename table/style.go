// Package table lays out paginated tables on a go-pdf/fpdf document.
//
// A Table is built row by row and drawn with Render. Header rows are repeated
// at the top of every page the table spills onto, body rows can alternate
// fill colors, and long cell text wraps inside its column. Render reports the
// page and Y position where the table ended so callers can keep flowing
// content below it.
package table

// RGBColor represents an RGB color value.
type RGBColor struct {
	R, G, B int
}

// FontSpec defines font properties for text rendering.
type FontSpec struct {
	Family string
	Style  string  // "", "B", "I", "BI"
	Size   float64 // in points
}

// Padding defines spacing inside a cell.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// BorderStyle defines the appearance of cell borders.
type BorderStyle struct {
	Width float64
	Color RGBColor
}

// CellStyle defines the visual appearance of a cell. Nil fields inherit.
type CellStyle struct {
	FillColor *RGBColor
	TextColor *RGBColor
	Font      *FontSpec
	Align     string // "L", "C" or "R"
}

// AlternateStyle defines alternating body row styles, counted from the first
// body row (index 0 is Even).
type AlternateStyle struct {
	Even CellStyle
	Odd  CellStyle
}

// TableStyle defines the overall appearance of a table.
type TableStyle struct {
	Border        *BorderStyle
	AlternateRows *AlternateStyle
	HeaderStyle   *CellStyle
	BodyStyle     *CellStyle
	CellPadding   Padding
	CellFont      *FontSpec
}
