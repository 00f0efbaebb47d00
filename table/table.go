package table

import (
	"errors"

	"github.com/go-pdf/fpdf"
)

// ErrNoColumns is returned by Render when neither column definitions nor
// cells determine a column count.
var ErrNoColumns = errors.New("table: no columns")

// ColumnDef defines the properties of a table column.
type ColumnDef struct {
	Width float64 // Fixed width. 0 means the column shares the remaining width.
}

// Result reports where a rendered table ended.
type Result struct {
	EndY       float64 // Y just below the last row
	EndPage    int     // page holding the last row
	PagesAdded int
}

// Table is a high-level table builder for generating PDF tables.
type Table struct {
	pdf        *fpdf.Fpdf
	columns    []ColumnDef
	headers    []*Row
	rows       []*Row
	style      TableStyle
	x, y       float64 // starting position (0 means current)
	tableWidth float64 // total table width (0 means page width minus margins)
	top        float64 // first row Y on continuation pages (0 means top margin)
	bottom     float64 // rows ending below this move to a new page (0 means page height minus bottom margin)
	noRepeat   bool
	encode     func(string) string
	onPage     func()
	onCell     func(page int, text string)
}

// New creates a new Table associated with the given PDF document.
func New(pdf *fpdf.Fpdf) *Table {
	return &Table{
		pdf: pdf,
		style: TableStyle{
			CellPadding: UniformPadding(1),
		},
	}
}

// SetColumns sets column definitions for the table.
func (t *Table) SetColumns(cols ...ColumnDef) *Table {
	t.columns = cols
	return t
}

// SetColumnWidths is a convenience method to set column widths directly.
// A width of 0 means the column will auto-fill remaining space.
func (t *Table) SetColumnWidths(widths ...float64) *Table {
	t.columns = make([]ColumnDef, len(widths))
	for i, w := range widths {
		t.columns[i] = ColumnDef{Width: w}
	}
	return t
}

// SetStyle sets the table-wide style.
func (t *Table) SetStyle(s TableStyle) *Table {
	t.style = s
	return t
}

// SetPosition sets the starting position for the table.
// If not called, the table starts at the current PDF cursor position.
func (t *Table) SetPosition(x, y float64) *Table {
	t.x = x
	t.y = y
	return t
}

// SetWidth sets the total table width. If not called, uses page width minus margins.
func (t *Table) SetWidth(w float64) *Table {
	t.tableWidth = w
	return t
}

// SetPageBounds sets the Y where rows resume on a continuation page and the
// Y below which a row may not end.
func (t *Table) SetPageBounds(top, bottom float64) *Table {
	t.top = top
	t.bottom = bottom
	return t
}

// SetHeaderRepeat controls whether header rows are drawn again on every
// continuation page. It is on by default.
func (t *Table) SetHeaderRepeat(on bool) *Table {
	t.noRepeat = !on
	return t
}

// SetEncoder sets the function applied to cell text before it is measured
// and drawn, typically a translator from UTF-8 to the font's code page.
func (t *Table) SetEncoder(fn func(string) string) *Table {
	t.encode = fn
	return t
}

// OnPageAdded registers fn to run right after the table adds a page and
// before the repeated header rows are drawn.
func (t *Table) OnPageAdded(fn func()) *Table {
	t.onPage = fn
	return t
}

// OnCell registers fn to receive the text of every drawn cell together with
// the page it landed on.
func (t *Table) OnCell(fn func(page int, text string)) *Table {
	t.onCell = fn
	return t
}

// AddRow adds a new data row to the table and returns it for chaining.
func (t *Table) AddRow() *Row {
	r := &Row{}
	t.rows = append(t.rows, r)
	return r
}

// AddHeaderRow adds a header row. Header rows are drawn before the body and
// again at the top of each new page.
func (t *Table) AddHeaderRow() *Row {
	r := &Row{isHeader: true}
	t.headers = append(t.headers, r)
	return r
}

// Render draws the table to the PDF document.
func (t *Table) Render() (Result, error) {
	if t.pdf.Err() {
		return Result{}, t.pdf.Error()
	}

	widths := t.calculateWidths()
	if len(widths) == 0 {
		return Result{}, ErrNoColumns
	}

	startX := t.x
	if startX == 0 {
		startX = t.pdf.GetX()
	}
	if t.y != 0 {
		t.pdf.SetY(t.y)
	}
	bottom := t.pageBottom()

	added := 0
	if t.pdf.GetY()+t.leadHeight(widths) > bottom {
		t.newPage()
		added++
	}
	for _, r := range t.headers {
		t.renderRow(r, widths, startX, -1)
	}

	for i, r := range t.rows {
		if t.pdf.GetY()+t.rowHeight(r, widths, i) > bottom {
			t.newPage()
			added++
			for _, hr := range t.headers {
				if !t.noRepeat {
					t.renderRow(hr, widths, startX, -1)
				}
			}
		}
		t.renderRow(r, widths, startX, i)
	}

	res := Result{EndY: t.pdf.GetY(), EndPage: t.pdf.PageNo(), PagesAdded: added}
	return res, t.pdf.Error()
}

// leadHeight is the height of the header rows plus the first body row, which
// must share a page.
func (t *Table) leadHeight(widths []float64) float64 {
	h := 0.0
	for _, r := range t.headers {
		h += t.rowHeight(r, widths, -1)
	}
	if len(t.rows) > 0 {
		h += t.rowHeight(t.rows[0], widths, 0)
	}
	return h
}

func (t *Table) newPage() {
	t.pdf.AddPage()
	if t.onPage != nil {
		t.onPage()
	}
	if t.top > 0 {
		t.pdf.SetY(t.top)
	} else {
		_, top, _, _ := t.pdf.GetMargins()
		t.pdf.SetY(top)
	}
}

func (t *Table) pageBottom() float64 {
	if t.bottom > 0 {
		return t.bottom
	}
	_, pageH := t.pdf.GetPageSize()
	_, _, _, bMargin := t.pdf.GetMargins()
	return pageH - bMargin
}

// calculateWidths computes final column widths based on definitions and available space.
func (t *Table) calculateWidths() []float64 {
	totalWidth := t.tableWidth
	if totalWidth == 0 {
		pageW, _ := t.pdf.GetPageSize()
		lMargin, _, rMargin, _ := t.pdf.GetMargins()
		totalWidth = pageW - lMargin - rMargin
	}

	numCols := len(t.columns)
	if numCols == 0 {
		for _, rows := range [][]*Row{t.headers, t.rows} {
			for _, r := range rows {
				numCols = max(numCols, len(r.cells))
			}
		}
		if numCols == 0 {
			return nil
		}
		t.columns = make([]ColumnDef, numCols)
	}

	widths := make([]float64, numCols)
	fixedTotal := 0.0
	autoCount := 0
	for i, col := range t.columns {
		if col.Width > 0 {
			widths[i] = col.Width
			fixedTotal += col.Width
		} else {
			autoCount++
		}
	}

	if autoCount > 0 {
		remaining := max(totalWidth-fixedTotal, 0)
		autoWidth := remaining / float64(autoCount)
		for i, col := range t.columns {
			if col.Width > 0 {
				continue
			}
			widths[i] = autoWidth
		}
	}
	return widths
}

// rowHeight computes the height needed for a row. bodyIdx is -1 for header rows.
func (t *Table) rowHeight(r *Row, widths []float64, bodyIdx int) float64 {
	maxH := 5.0
	pad := t.style.CellPadding
	for i, cell := range r.cells {
		if i >= len(widths) {
			break
		}
		t.applyFont(t.resolveCellStyle(r, bodyIdx))
		lines := t.lines(cell.text, widths[i]-pad.Left-pad.Right)
		cellH := float64(len(lines))*t.lineHeight() + pad.Top + pad.Bottom
		maxH = max(maxH, cellH)
	}
	return maxH
}

// renderRow draws a single row at the current Y and moves below it.
func (t *Table) renderRow(r *Row, widths []float64, startX float64, bodyIdx int) {
	rowH := t.rowHeight(r, widths, bodyIdx)
	pad := t.style.CellPadding
	y := t.pdf.GetY()
	x := startX

	for i, cell := range r.cells {
		if i >= len(widths) {
			break
		}
		cellW := widths[i]
		style := t.resolveCellStyle(r, bodyIdx)

		if style.FillColor != nil {
			t.pdf.SetFillColor(style.FillColor.R, style.FillColor.G, style.FillColor.B)
			t.pdf.Rect(x, y, cellW, rowH, "F")
		}
		if b := t.style.Border; b != nil {
			t.pdf.SetDrawColor(b.Color.R, b.Color.G, b.Color.B)
			if b.Width > 0 {
				t.pdf.SetLineWidth(b.Width)
			}
			t.pdf.Rect(x, y, cellW, rowH, "D")
		}

		if tc := style.TextColor; tc != nil {
			t.pdf.SetTextColor(tc.R, tc.G, tc.B)
		} else {
			t.pdf.SetTextColor(0, 0, 0)
		}
		t.applyFont(style)

		align := "L"
		if style.Align != "" {
			align = style.Align
		}

		contentW := cellW - pad.Left - pad.Right
		lineH := t.lineHeight()
		for j, line := range t.lines(cell.text, contentW) {
			t.pdf.SetXY(x+pad.Left, y+pad.Top+float64(j)*lineH)
			t.pdf.CellFormat(contentW, lineH, line, "", 0, align, false, 0, "")
		}
		if t.onCell != nil {
			t.onCell(t.pdf.PageNo(), cell.text)
		}
		x += cellW
	}

	t.pdf.SetDrawColor(0, 0, 0)
	t.pdf.SetFillColor(0, 0, 0)
	t.pdf.SetTextColor(0, 0, 0)
	t.pdf.SetXY(startX, y+rowH)
}

// lines wraps text to width in the document's encoding. It always returns
// at least one line.
func (t *Table) lines(text string, width float64) []string {
	if t.encode != nil {
		text = t.encode(text)
	}
	width = max(width, 1)
	var out []string
	for _, l := range t.pdf.SplitLines([]byte(text), width) {
		out = append(out, string(l))
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return out
}

func (t *Table) lineHeight() float64 {
	_, unitSize := t.pdf.GetFontSize()
	return unitSize * 1.5
}

func (t *Table) applyFont(s CellStyle) {
	if s.Font != nil {
		t.pdf.SetFont(s.Font.Family, s.Font.Style, s.Font.Size)
	}
}

// resolveCellStyle determines the effective style for a cell by merging
// the table font with the header, body and alternate row styles.
func (t *Table) resolveCellStyle(row *Row, bodyIdx int) CellStyle {
	var result CellStyle
	if t.style.CellFont != nil {
		result.Font = t.style.CellFont
	}

	switch {
	case row.isHeader:
		if t.style.HeaderStyle != nil {
			mergeStyle(&result, t.style.HeaderStyle)
		}
	default:
		if t.style.BodyStyle != nil {
			mergeStyle(&result, t.style.BodyStyle)
		}
		if alt := t.style.AlternateRows; alt != nil && bodyIdx >= 0 {
			if bodyIdx%2 == 0 {
				mergeStyle(&result, &alt.Even)
			} else {
				mergeStyle(&result, &alt.Odd)
			}
		}
	}

	return result
}

// mergeStyle copies non-nil fields from src to dst.
func mergeStyle(dst, src *CellStyle) {
	if src.FillColor != nil {
		dst.FillColor = src.FillColor
	}
	if src.TextColor != nil {
		dst.TextColor = src.TextColor
	}
	if src.Font != nil {
		dst.Font = src.Font
	}
	if src.Align != "" {
		dst.Align = src.Align
	}
}
