package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetra/game"
)

// renderPieceInspector shows the active piece, the lock countdown, the
// hold slot, the next queue, and the flow/scoring state.
func (o *Overlay) renderPieceInspector() {
	imgui.SetNextWindowPosV(imgui.NewVec2(260, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 300), imgui.CondOnce)

	if !imgui.BeginV("Pieces", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	active := o.sim.Source.Active()
	left, bottom := active.Anchor()

	imgui.Text(fmt.Sprintf("Active: %s %s", active.Kind(), active.State()))
	imgui.Text(fmt.Sprintf("Anchor: (%d, %d)", left, bottom))
	imgui.Text(fmt.Sprintf("Visible: %t", active.Visible()))

	if active.Locking() {
		remaining := game.LockDelay - (o.sim.Clock.Now() - active.LockMark())
		imgui.Text(fmt.Sprintf("Locking: %.0f ms left", float64(remaining.Milliseconds())))
	} else {
		imgui.Text("Locking: no")
	}

	imgui.Separator()

	if held := o.sim.Source.Held(); held != nil {
		imgui.Text(fmt.Sprintf("Hold: %s", held.Kind()))
	} else {
		imgui.Text("Hold: empty")
	}

	imgui.Text("Next:")
	for _, piece := range o.sim.Source.Queue() {
		imgui.BulletText(piece.Kind().String())
	}

	imgui.Separator()
	imgui.Text(fmt.Sprintf("State: %s", o.sim.State()))
	imgui.Text(fmt.Sprintf("Level: %d", o.sim.Score.Level()))
	imgui.Text(fmt.Sprintf("Lines: %d", o.sim.Score.Lines()))
	imgui.Text(fmt.Sprintf("Score: %d", o.sim.Score.Score()))
	imgui.Text(fmt.Sprintf("Gravity: %d ms/row", o.sim.Score.Speed().Milliseconds()))

	imgui.End()
}
