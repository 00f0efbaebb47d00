package table

import "fmt"

// Cell is a single text cell in a table row.
type Cell struct {
	text string
}

// Row represents a single row in a table.
type Row struct {
	cells    []*Cell
	isHeader bool
}

// AddCell adds a text cell to the row and returns the cell.
func (r *Row) AddCell(text string) *Cell {
	c := &Cell{text: text}
	r.cells = append(r.cells, c)
	return c
}

// AddCellf adds a formatted text cell to the row.
func (r *Row) AddCellf(format string, args ...any) *Cell {
	return r.AddCell(fmt.Sprintf(format, args...))
}

// AddCells adds one cell per text.
func (r *Row) AddCells(texts ...string) *Row {
	for _, t := range texts {
		r.AddCell(t)
	}
	return r
}
