package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetra/game"
)

// renderBoardViewer shows a character grid of the full board including
// the hidden buffer rows. '#' is stack, 'o' is the active piece, '.' is
// empty; hidden rows are marked on the right.
func (o *Overlay) renderBoardViewer() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(240, 460), imgui.CondOnce)

	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	var grid [game.TotalRows][game.Columns]byte
	for row := range grid {
		for column := range grid[row] {
			grid[row][column] = '.'
		}
	}
	filled := 0
	for cell := range o.sim.Board.Filled() {
		grid[cell.Row][cell.Column] = '#'
		filled++
	}

	for _, cell := range o.sim.Source.Active().Cells() {
		if cell.Row >= 0 && cell.Row < game.TotalRows &&
			cell.Column >= 0 && cell.Column < game.Columns {
			grid[cell.Row][cell.Column] = 'o'
		}
	}

	imgui.Text(fmt.Sprintf("Stack cells: %d", filled))
	imgui.Separator()

	var line strings.Builder
	for row := range grid {
		line.Reset()
		line.Write(grid[row][:])
		if row < game.HiddenRows {
			line.WriteString("  hidden")
		}
		imgui.Text(line.String())
	}

	imgui.End()
}
