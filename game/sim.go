// Package game implements a falling-block puzzle simulation: the board,
// tetromino geometry and rotation with wall kicks, piece dealing with a
// 7-bag randomizer and hold, score/level progression, and the top-level
// state machine. The package is single-threaded and frame-stepped: a
// front end delivers input commands, calls Step once per frame, and
// renders the returned snapshot.
package game

import (
	"math/rand/v2"
	"time"
)

// Sim is the simulation context: one instance of every subsystem, owned
// and mutated only by the frame loop that steps it.
type Sim struct {
	Clock  *Clock
	Board  *Board
	Source *PieceSource
	Score  *Progression

	// FrameTarget is the minimum frame interval enforced by Step. Front
	// ends with their own frame pacing set it to zero.
	FrameTarget time.Duration

	flow    flow
	gravity time.Duration
	frame   Frame
	title   string
	done    bool
	stats   StepStats
}

// NewSim assembles a simulation dealing pieces from rng. The flow starts
// Paused, which doubles as the title screen.
func NewSim(clock *Clock, rng *rand.Rand) *Sim {
	s := &Sim{
		Clock:       clock,
		Board:       NewBoard(),
		Score:       NewProgression(),
		FrameTarget: FrameInterval,
		stats:       newStepStats(),
	}
	s.Source = NewPieceSource(rng, s.Board, clock.Now())
	s.flow.change(s, pauseState{})
	return s
}

// Done reports that the player confirmed exiting.
func (s *Sim) Done() bool { return s.done }

// State returns the id of the active flow state.
func (s *Sim) State() StateID { return s.flow.curr.ID() }

// Stats returns per-phase step timing for the debug overlay.
func (s *Sim) Stats() *StepStats { return &s.stats }

// Step runs one frame: advance the clock, drain the pending commands,
// update the active state, and build the render snapshot. The returned
// frame is reused across steps.
func (s *Sim) Step(commands []Command) *Frame {
	s.Clock.AdvanceFrame(s.FrameTarget)

	s.stats.Input.measure(func() {
		for _, c := range commands {
			s.apply(c)
		}
	})
	s.stats.Update.measure(func() {
		s.flow.curr.Update(s)
	})
	s.stats.Render.measure(func() {
		s.frame.reset()
		s.flow.curr.Draw(s, &s.frame)
		s.frame.Title = s.title
	})

	return &s.frame
}

// apply routes one command. A quit signal interposes the exit
// confirmation from any state except itself.
func (s *Sim) apply(c Command) {
	if c == Quit && s.State() != StateBeforeExit {
		s.flow.change(s, beforeExitState{})
		return
	}
	s.flow.curr.HandleCommand(s, c)
}

// stepPieces advances the active piece: force-lock once the delay has
// expired, otherwise apply gravity from the accumulated frame time.
func (s *Sim) stepPieces() {
	active := s.Source.Active()

	if active.Locking() && s.Clock.Now()-active.LockMark() >= LockDelay {
		s.land()
		s.gravity = 0
		return
	}

	s.gravity += s.Clock.Frame()
	speed := s.Score.Speed()
	if rows := s.gravity / speed; rows > 0 {
		s.gravity %= speed
		active.SoftDrop(s.Board, s.Clock.Now(), int(rows))
	}
}

// land commits the active piece, scores the drop, and brings up the next
// piece. Locking while still hidden, or a blocked spawn, ends the game.
func (s *Sim) land() {
	active := s.Source.Active()
	r := active.HardDrop(s.Board, s.Clock.Now())

	if !active.Visible() {
		s.flow.change(s, gameOverState{})
		return
	}

	s.Score.OnClear(r.Cleared)
	s.Score.OnHardDrop(r.Dropped)

	next := s.Source.Advance(s.Board, s.Clock.Now())
	if s.Board.IsFilled(next.Cells()) {
		s.flow.change(s, gameOverState{})
	}
}

// resetMatch rebuilds the board, scoring and piece queue for a new game.
func (s *Sim) resetMatch() {
	s.Board.Reset()
	s.Score.Reset()
	s.Source.Reset(s.Board, s.Clock.Now())
	s.gravity = 0
}

// lockingColor replaces a resting piece's own color while it counts down.
var lockingColor = Color{0x55, 0x55, 0x55, 0xFF}

// drawPlayfield emits the stack, the ghost outline at the landing spot,
// the active piece, and the hold/next previews.
func (s *Sim) drawPlayfield(f *Frame) {
	for cell, color := range s.Board.Filled() {
		f.fill(PanePlayfield, cell, color)
	}

	active := s.Source.Active()
	if active.Visible() {
		for _, cell := range s.Board.LandingSpot(active.Cells()) {
			f.outline(PanePlayfield, cell, active.Color())
		}
	}

	color := active.Color()
	if active.Locking() {
		color = lockingColor
	}
	for _, cell := range active.Cells() {
		f.fill(PanePlayfield, cell, color)
	}

	for i, piece := range s.Source.Queue() {
		drawPreview(f, PaneNext, piece, 3*(i+1))
	}

	if held := s.Source.Held(); held != nil {
		drawPreview(f, PaneHold, held, 3)
	}
}

// drawPreview places a piece in its Up pose inside a preview pane with
// its bottom row at baseRow, centered horizontally.
func drawPreview(f *Frame, pane Pane, piece *Tetromino, baseRow int) {
	left := (previewColumns - piece.WidthOf(Up)) / 2
	for _, cell := range piece.CellsAt(0, 0, Up) {
		f.fill(pane, Cell{Column: left + cell.Column, Row: baseRow + cell.Row}, piece.Color())
	}
}
