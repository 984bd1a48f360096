package game

import (
	"fmt"
	"strings"
)

// Field is the playing field: a rows x columns matrix of cells where the top
// HiddenRows rows sit above the visible play area.
type Field struct {
	rows    int
	columns int
	cells   [][]Cell
}

// NewField creates an empty field with the given visible size. HiddenRows
// extra rows are added on top.
func NewField(visibleRows, columns int) *Field {
	if visibleRows <= 0 || columns <= 0 {
		panic(fmt.Sprintf("game: field dimensions must be positive, got %dx%d", visibleRows, columns))
	}
	rows := visibleRows + HiddenRows
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, columns)
	}
	return &Field{
		rows:    rows,
		columns: columns,
		cells:   cells,
	}
}

// Rows returns the total row count, hidden rows included.
func (f *Field) Rows() int { return f.rows }

// VisibleRows returns the row count below the hidden rows.
func (f *Field) VisibleRows() int { return f.rows - HiddenRows }

func (f *Field) Columns() int { return f.columns }

// IsInside reports whether (row, col) is a cell of the field.
func (f *Field) IsInside(row, col int) bool {
	return row >= 0 && row < f.rows && col >= 0 && col < f.columns
}

// IsEmpty reports whether (row, col) is inside the field and empty.
// Out-of-bounds cells are never empty.
func (f *Field) IsEmpty(row, col int) bool {
	return f.IsInside(row, col) && f.cells[row][col] == Empty
}

// At returns the cell at (row, col), or Empty when out of bounds.
func (f *Field) At(row, col int) Cell {
	if !f.IsInside(row, col) {
		return Empty
	}
	return f.cells[row][col]
}

// Set writes a cell. Writes outside the field are ignored.
func (f *Field) Set(row, col int, c Cell) {
	if !f.IsInside(row, col) {
		return
	}
	f.cells[row][col] = c
}

// IsRowFull reports whether every cell in the row is occupied. Rows outside
// the field are never full.
func (f *Field) IsRowFull(row int) bool {
	if row < 0 || row >= f.rows {
		return false
	}
	for c := 0; c < f.columns; c++ {
		if f.IsEmpty(row, c) {
			return false
		}
	}
	return true
}

// IsRowEmpty reports whether every cell in the row is empty. Rows outside
// the field are never empty.
func (f *Field) IsRowEmpty(row int) bool {
	if row < 0 || row >= f.rows {
		return false
	}
	for c := 0; c < f.columns; c++ {
		if !f.IsEmpty(row, c) {
			return false
		}
	}
	return true
}

// ClearFullRows clears every full row and collapses the rows above.
//
// Rows are swept once from the bottom up. A full row is cleared and bumps the
// running count; every other row seen after a clear is copied down by the
// count so far, not by one. The top rows nothing lands on end up empty.
func (f *Field) ClearFullRows() int {
	cleared := 0
	for r := f.rows - 1; r >= 0; r-- {
		switch {
		case f.IsRowFull(r):
			f.clearRow(r)
			cleared++
		case cleared > 0:
			f.moveRowDown(r, cleared)
		}
	}
	for r := 0; r < cleared; r++ {
		f.clearRow(r)
	}
	return cleared
}

func (f *Field) clearRow(r int) {
	for c := range f.cells[r] {
		f.cells[r][c] = Empty
	}
}

func (f *Field) moveRowDown(r, n int) {
	copy(f.cells[r+n], f.cells[r])
}

// CheckGameOver reports whether any hidden row holds a block.
func (f *Field) CheckGameOver() bool {
	for r := 0; r < HiddenRows; r++ {
		if !f.IsRowEmpty(r) {
			return true
		}
	}
	return false
}

// Reset empties every cell.
func (f *Field) Reset() {
	for r := range f.cells {
		f.clearRow(r)
	}
}

// Cells returns a deep copy of the cell matrix.
func (f *Field) Cells() [][]Cell {
	out := make([][]Cell, f.rows)
	for r := range f.cells {
		out[r] = make([]Cell, f.columns)
		copy(out[r], f.cells[r])
	}
	return out
}

// String renders the field one row per line, '.' for empty cells and the
// first letter of the color otherwise. A '-' separator marks the hidden rows.
func (f *Field) String() string {
	var b strings.Builder
	for r, row := range f.cells {
		if r == HiddenRows {
			b.WriteString(strings.Repeat("-", f.columns))
			b.WriteByte('\n')
		}
		for _, c := range row {
			if c == Empty {
				b.WriteByte('.')
			} else {
				b.WriteByte(c.String()[0])
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
