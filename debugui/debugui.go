// Package debugui renders Dear ImGui inspection panels over a running
// game: board occupancy, piece state, and step timing charts. The front
// end calls Render once per frame between the backend's BeginFrame and
// EndFrame.
package debugui

import (
	"time"

	"github.com/plus3/tetra/game"
)

// Overlay owns the debug windows and their accumulated chart state.
type Overlay struct {
	sim *game.Sim

	frameHistory []float32
	frameOffset  int
	lastFrame    time.Time
}

const frameHistorySize = 100

func NewOverlay(sim *game.Sim) *Overlay {
	return &Overlay{
		sim:          sim,
		frameHistory: make([]float32, frameHistorySize),
		lastFrame:    time.Now(),
	}
}

// Render draws all panels. Must run inside an active ImGui frame.
func (o *Overlay) Render() {
	now := time.Now()
	delta := float32(now.Sub(o.lastFrame).Seconds())
	o.lastFrame = now

	o.frameHistory[o.frameOffset] = delta * 1000.0
	o.frameOffset = (o.frameOffset + 1) % frameHistorySize

	o.renderBoardViewer()
	o.renderPieceInspector()
	o.renderStatsPanel()
}
