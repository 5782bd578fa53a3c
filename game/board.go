package game

import (
	"iter"
	"slices"
)

// Rows 0 and 1 form a hidden buffer above the visible play area; pieces
// spawn there and slide into view.
const (
	Columns     = 10
	VisibleRows = 20
	HiddenRows  = 2
	TotalRows   = VisibleRows + HiddenRows
)

// Block is a single board slot.
type Block struct {
	Color  Color
	Filled bool
}

// Row is one horizontal line of the board.
type Row [Columns]Block

// Board is the playfield grid. Row 0 is the topmost (hidden) row.
type Board struct {
	rows []Row
}

func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset empties every slot.
func (b *Board) Reset() {
	b.rows = make([]Row, TotalRows)
}

// IsFilled reports whether any of the given cells is occupied or out of
// bounds. It is the sole occupancy oracle: out-of-range cells count as
// filled so that walls and the floor reject movement the same way the
// stack does.
func (b *Board) IsFilled(cells Cells) bool {
	for _, cell := range cells {
		if b.filledAt(cell.Column, cell.Row) {
			return true
		}
	}
	return false
}

func (b *Board) filledAt(column, row int) bool {
	return row < 0 || row >= TotalRows ||
		column < 0 || column >= Columns ||
		b.rows[row][column].Filled
}

// LandingSpot shifts the cell set down one row at a time and returns the
// deepest placement that does not collide. Used for the ghost preview and
// for computing drop distances.
func (b *Board) LandingSpot(cells Cells) Cells {
	spot := cells
	for {
		for _, cell := range spot {
			if b.filledAt(cell.Column, cell.Row+1) {
				return spot
			}
		}
		for i := range spot {
			spot[i].Row++
		}
	}
}

// Commit marks the given cells filled with color, removes every complete
// row (order-preserving) and reinserts that many empty rows at the top so
// the row count stays fixed. Returns the number of cleared rows.
func (b *Board) Commit(cells Cells, color Color) int {
	for _, cell := range cells {
		b.rows[cell.Row][cell.Column] = Block{Color: color, Filled: true}
	}

	cleared := 0
	b.rows = slices.DeleteFunc(b.rows, func(row Row) bool {
		for _, block := range row {
			if !block.Filled {
				return false
			}
		}
		cleared++
		return true
	})

	b.rows = slices.Insert(b.rows, 0, make([]Row, cleared)...)
	return cleared
}

// Filled iterates over every occupied slot and its color. It is the draw
// snapshot handed to the renderer and mutates nothing.
func (b *Board) Filled() iter.Seq2[Cell, Color] {
	return func(yield func(Cell, Color) bool) {
		for r := range b.rows {
			for c := range b.rows[r] {
				if !b.rows[r][c].Filled {
					continue
				}
				if !yield(Cell{Column: c, Row: r}, b.rows[r][c].Color) {
					return
				}
			}
		}
	}
}
