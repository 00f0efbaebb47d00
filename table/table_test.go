package table_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"

	"github.com/lvillar/planpdf/table"
)

func newTestPDF() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return pdf
}

func TestBasicTable(t *testing.T) {
	pdf := newTestPDF()

	tb := table.New(pdf)
	tb.SetColumnWidths(40, 60, 30, 30)
	tb.SetPosition(14, 60)
	tb.AddHeaderRow().AddCells("ID", "Name", "Qty", "Price")
	tb.AddRow().AddCells("1", "Widget", "10", "$5.00")
	tb.AddRow().AddCells("2", "Gadget", "5", "$12.50")

	res, err := tb.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if res.EndPage != 1 || res.PagesAdded != 0 {
		t.Errorf("result = %+v, want a single page", res)
	}
	if res.EndY <= 60 {
		t.Errorf("EndY = %.2f, want below the start", res.EndY)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty PDF output")
	}
}

func TestHeaderRepeatsOnPageBreak(t *testing.T) {
	pdf := newTestPDF()

	headerPerPage := map[int]int{}
	hooks := 0
	tb := table.New(pdf)
	tb.SetColumnWidths(60, 60, 60)
	tb.OnPageAdded(func() { hooks++ })
	tb.OnCell(func(page int, text string) {
		if text == "ID" {
			headerPerPage[page]++
		}
	})
	tb.AddHeaderRow().AddCells("ID", "Name", "Value")
	for i := 0; i < 80; i++ {
		r := tb.AddRow()
		r.AddCellf("%d", i+1)
		r.AddCellf("Item %d", i+1)
		r.AddCellf("$%.2f", float64(i+1)*1.5)
	}

	res, err := tb.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if res.EndPage < 2 || res.EndPage != pdf.PageCount() {
		t.Fatalf("EndPage = %d, document has %d pages", res.EndPage, pdf.PageCount())
	}
	if res.PagesAdded != res.EndPage-1 || hooks != res.PagesAdded {
		t.Errorf("PagesAdded = %d, hooks = %d, EndPage = %d", res.PagesAdded, hooks, res.EndPage)
	}
	for p := 1; p <= res.EndPage; p++ {
		if headerPerPage[p] != 1 {
			t.Errorf("page %d has %d header rows", p, headerPerPage[p])
		}
	}
}

func TestPageBounds(t *testing.T) {
	pdf := newTestPDF()

	tb := table.New(pdf)
	tb.SetColumnWidths(90, 90)
	tb.SetPosition(14, 20)
	tb.SetPageBounds(30, 100)
	for i := 0; i < 30; i++ {
		tb.AddRow().AddCells("left", "right")
	}

	res, err := tb.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if res.PagesAdded == 0 {
		t.Fatal("expected the bottom bound to force a page break")
	}
	if res.EndY > 100 {
		t.Errorf("EndY = %.2f, past the bottom bound", res.EndY)
	}
}

func TestWrappedCellGrowsRow(t *testing.T) {
	render := func(text string) float64 {
		pdf := newTestPDF()
		tb := table.New(pdf)
		tb.SetColumnWidths(25, 25)
		tb.SetPosition(14, 40)
		tb.AddRow().AddCells("Breakfast", text)
		res, err := tb.Render()
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		return res.EndY
	}
	short := render("Oats")
	long := render(strings.Repeat("Greek yogurt with honey ", 4))
	if long <= short {
		t.Errorf("wrapped row ends at %.2f, single-line row at %.2f", long, short)
	}
}

func TestHeaderKeptWithFirstRow(t *testing.T) {
	pdf := newTestPDF()

	headerPerPage := map[int]int{}
	tb := table.New(pdf)
	tb.SetColumnWidths(60, 60)
	tb.SetPosition(14, 92)
	tb.SetPageBounds(20, 100)
	tb.OnCell(func(page int, text string) {
		if text == "ID" {
			headerPerPage[page]++
		}
	})
	tb.AddHeaderRow().AddCells("ID", "Name")
	tb.AddRow().AddCells("1", "Widget")
	tb.AddRow().AddCells("2", "Gadget")

	res, err := tb.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if res.PagesAdded != 1 || res.EndPage != 2 {
		t.Fatalf("result = %+v, want the whole table on page 2", res)
	}
	if headerPerPage[1] != 0 || headerPerPage[2] != 1 {
		t.Errorf("header rows per page = %v", headerPerPage)
	}
}

func TestAutoColumnTakesRemainingWidth(t *testing.T) {
	render := func(setup func(*table.Table)) float64 {
		pdf := newTestPDF()
		tb := table.New(pdf)
		tb.SetPosition(14, 40)
		setup(tb)
		tb.AddRow().AddCells("Monday", "Greek yogurt with honey and berries")
		res, err := tb.Render()
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		return res.EndY
	}
	fixed := render(func(tb *table.Table) { tb.SetColumnWidths(20, 20) })
	shared := render(func(tb *table.Table) {
		tb.SetWidth(182)
		tb.SetColumns(table.ColumnDef{Width: 20}, table.ColumnDef{})
	})
	if shared >= fixed {
		t.Errorf("auto column row ends at %.2f, narrow fixed column at %.2f", shared, fixed)
	}
}

func TestEncoderAppliedToCells(t *testing.T) {
	pdf := newTestPDF()

	var seen []string
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	tb := table.New(pdf)
	tb.SetEncoder(func(s string) string {
		seen = append(seen, s)
		return tr(s)
	})
	tb.AddRow().AddCells("Día", "Café")
	if _, err := tb.Render(); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(strings.Join(seen, "|"), "Día") {
		t.Errorf("encoder saw %q", seen)
	}
}

func TestAlternatingRows(t *testing.T) {
	pdf := newTestPDF()

	tb := table.New(pdf)
	tb.SetColumnWidths(60, 60, 60)
	tb.SetStyle(table.TableStyle{
		CellPadding: table.UniformPadding(2),
		AlternateRows: &table.AlternateStyle{
			Odd: table.CellStyle{FillColor: &table.RGBColor{R: 249, G: 250, B: 251}},
		},
	})
	for i := 0; i < 10; i++ {
		r := tb.AddRow()
		r.AddCellf("Row %d Col 1", i)
		r.AddCellf("Row %d Col 2", i)
		r.AddCellf("Row %d Col 3", i)
	}

	if _, err := tb.Render(); err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := pdf.Output(&bytes.Buffer{}); err != nil {
		t.Fatalf("output: %v", err)
	}
}

func TestEmptyTable(t *testing.T) {
	pdf := newTestPDF()

	tb := table.New(pdf)
	tb.SetColumnWidths(60, 60)
	tb.SetPosition(14, 50)

	res, err := tb.Render()
	if err != nil {
		t.Fatalf("render empty table: %v", err)
	}
	if res.EndY != 50 {
		t.Errorf("EndY = %.2f, want 50", res.EndY)
	}
}

func TestNoColumns(t *testing.T) {
	_, err := table.New(newTestPDF()).Render()
	if !errors.Is(err, table.ErrNoColumns) {
		t.Errorf("err = %v, want ErrNoColumns", err)
	}
}

func TestRenderReportsDocumentError(t *testing.T) {
	pdf := newTestPDF()
	boom := errors.New("boom")
	pdf.SetError(boom)

	tb := table.New(pdf)
	tb.AddRow().AddCell("x")
	if _, err := tb.Render(); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}
