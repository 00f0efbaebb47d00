package preview

import (
	"errors"

	"github.com/lvillar/planpdf/layout"
)

// DrawTable lays out rows with equal-width columns after an optional fixed
// first column. It moves to a new page when a row would end below
// st.PageBottom, repeating the header row if requested, and never leaves the
// header alone at the foot of a page.
func (r *Recorder) DrawTable(startY float64, headers []string, rows [][]string, st layout.TableStyle) (layout.TableResult, error) {
	if len(headers) == 0 {
		return layout.TableResult{}, errors.New("preview: table has no columns")
	}
	if r.active == 0 {
		return layout.TableResult{}, ErrNoPage
	}
	widths := make([]float64, len(headers))
	first, rest := 0.0, len(headers)
	if len(headers) > 1 && st.FirstColumn > 0 && st.FirstColumn < st.Width {
		first, rest = st.FirstColumn, len(headers)-1
	}
	for i := range widths {
		widths[i] = (st.Width - first) / float64(rest)
	}
	if first > 0 {
		widths[0] = first
	}
	lineH := st.FontSize * ptToMM * 1.5
	cell := layout.TextStyle{Size: st.FontSize}

	rowHeight := func(cells []string) float64 {
		h := 0.0
		for i, c := range cells {
			if i >= len(widths) {
				break
			}
			n := len(r.Wrap(c, widths[i]-2*st.CellPadding, cell))
			if ch := float64(n)*lineH + 2*st.CellPadding; ch > h {
				h = ch
			}
		}
		return h
	}
	drawRow := func(y float64, cells []string, fill *layout.RGB) float64 {
		h := rowHeight(cells)
		x := st.X
		for i, c := range cells {
			if i >= len(widths) {
				break
			}
			r.DrawRect(x, y, widths[i], h, layout.BoxStyle{Fill: fill, Stroke: &st.BorderColor, LineWidth: st.BorderWidth})
			r.record(Op{Kind: OpCell, X: x + st.CellPadding, Y: y + st.CellPadding, Text: c, Style: cell})
			x += widths[i]
		}
		return y + h
	}

	y := startY
	lead := rowHeight(headers)
	if len(rows) > 0 {
		lead += rowHeight(rows[0])
	}
	if y+lead > st.PageBottom {
		r.NewPage()
		y = st.PageTop
	}
	y = drawRow(y, headers, &st.HeaderFill)
	for i, row := range rows {
		if y+rowHeight(row) > st.PageBottom {
			r.NewPage()
			y = st.PageTop
			if st.HeaderRepeat {
				y = drawRow(y, headers, &st.HeaderFill)
			}
		}
		var fill *layout.RGB
		if i%2 == 1 {
			fill = &st.ZebraFill
		}
		y = drawRow(y, row, fill)
	}
	return layout.TableResult{EndY: y, EndPage: r.active}, nil
}
