package pdfsurface

import (
	"fmt"

	"github.com/lvillar/planpdf/layout"
	"github.com/lvillar/planpdf/table"
)

// DrawTable renders headers and rows with the table package, starting at
// startY on the active page. Pages the table adds get the same decorations
// as pages added through NewPage.
func (s *Surface) DrawTable(startY float64, headers []string, rows [][]string, st layout.TableStyle) (layout.TableResult, error) {
	if !s.ready() {
		return layout.TableResult{}, s.err
	}
	font := &table.FontSpec{Family: s.cfg.fontFamily, Size: st.FontSize}
	cols := make([]table.ColumnDef, len(headers))
	if len(cols) > 1 && st.FirstColumn > 0 && st.FirstColumn < st.Width {
		cols[0].Width = st.FirstColumn
	}
	tbl := table.New(s.pdf).
		SetColumns(cols...).
		SetPosition(st.X, startY).
		SetWidth(st.Width).
		SetPageBounds(st.PageTop, st.PageBottom).
		SetHeaderRepeat(st.HeaderRepeat).
		SetEncoder(s.tr).
		OnPageAdded(s.pageAdded).
		OnCell(s.record).
		SetStyle(table.TableStyle{
			CellPadding: table.UniformPadding(st.CellPadding),
			CellFont:    font,
			Border:      &table.BorderStyle{Width: st.BorderWidth, Color: rgb(st.BorderColor)},
			HeaderStyle: &table.CellStyle{
				FillColor: ptr(rgb(st.HeaderFill)),
				TextColor: ptr(rgb(st.HeaderText)),
				Font:      &table.FontSpec{Family: s.cfg.fontFamily, Style: "B", Size: st.FontSize},
			},
			BodyStyle: &table.CellStyle{TextColor: ptr(rgb(st.BodyText))},
			AlternateRows: &table.AlternateStyle{
				Odd: table.CellStyle{FillColor: ptr(rgb(st.ZebraFill))},
			},
		})

	tbl.AddHeaderRow().AddCells(headers...)
	for _, r := range rows {
		tbl.AddRow().AddCells(r...)
	}

	res, err := tbl.Render()
	if err != nil {
		return layout.TableResult{}, fmt.Errorf("pdfsurface: table: %w", err)
	}
	s.active = res.EndPage
	return layout.TableResult{EndY: res.EndY, EndPage: res.EndPage}, nil
}

func rgb(c layout.RGB) table.RGBColor { return table.RGBColor{R: c.R, G: c.G, B: c.B} }

func ptr[T any](v T) *T { return &v }
