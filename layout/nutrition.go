package layout

import (
	"fmt"

	"github.com/lvillar/planpdf/extract"
)

// NutritionSection draws the nutrition table. It draws nothing at all when
// the table has no headers.
type NutritionSection struct {
	Table extract.NutritionTable
}

func (s NutritionSection) Render(f *Flow, c Cursor) (Cursor, error) {
	if s.Table.Empty() {
		return c, nil
	}
	th := f.theme
	c = f.Reserve(c, 0, th.TableThreshold)
	c = f.SectionTitle(c, th.NutritionTitle)

	pageW, pageH := f.canvas.PageSize()
	rows, _ := s.Table.Grid()
	res, err := f.canvas.DrawTable(c.Y, s.Table.Headers, rows, TableStyle{
		X:            th.Margin,
		Width:        pageW - 2*th.Margin,
		FirstColumn:  th.DayColumn,
		FontSize:     th.TableSize,
		CellPadding:  th.CellPadding,
		HeaderFill:   th.Accent,
		HeaderText:   th.Light,
		BodyText:     th.Quote,
		ZebraFill:    th.Zebra,
		BorderColor:  th.Grid,
		BorderWidth:  0.1,
		PageBottom:   pageH - th.Top,
		PageTop:      th.Top,
		HeaderRepeat: true,
	})
	if err != nil {
		return c, fmt.Errorf("layout: drawing nutrition table: %w", err)
	}
	return Cursor{Y: res.EndY + th.TableGap, Page: res.EndPage}, nil
}
