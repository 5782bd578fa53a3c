package game

// Pane identifies which board region a draw primitive belongs to. The
// front end decides where each pane sits on screen.
type Pane uint8

const (
	PaneHold Pane = iota
	PanePlayfield
	PaneNext
)

// previewColumns is the width in cells of the hold and next panes.
const previewColumns = 6

// CellOp is one drawable primitive: a filled or outlined cell at a grid
// position within a pane. Playfield rows include the hidden buffer; the
// renderer shifts them up by HiddenRows.
type CellOp struct {
	Pane    Pane
	Cell    Cell
	Color   Color
	Outline bool
}

// Frame is the per-step render snapshot handed to the front end.
type Frame struct {
	Ops   []CellOp
	Title string
}

func (f *Frame) reset() { f.Ops = f.Ops[:0] }

func (f *Frame) fill(pane Pane, cell Cell, color Color) {
	f.Ops = append(f.Ops, CellOp{Pane: pane, Cell: cell, Color: color})
}

func (f *Frame) outline(pane Pane, cell Cell, color Color) {
	f.Ops = append(f.Ops, CellOp{Pane: pane, Cell: cell, Color: color, Outline: true})
}
