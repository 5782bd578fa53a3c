package game

// Cell is a board coordinate. Row 0 is the top of the grid, including the
// hidden buffer rows above the visible play area.
type Cell struct {
	Column int
	Row    int
}

// Cells is the absolute footprint of one tetromino.
type Cells [4]Cell

// Color is an RGBA cell color.
type Color struct {
	R, G, B, A uint8
}
