package game_test

import (
	"testing"
	"time"

	"github.com/plus3/tetra/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSim(t *testing.T) (*game.Sim, func(time.Duration)) {
	t.Helper()
	clock, advance := game.NewManualClock()
	sim := game.NewSim(clock, newRand())
	sim.FrameTarget = 0
	return sim, advance
}

func step(sim *game.Sim, advance func(time.Duration), d time.Duration, commands ...game.Command) *game.Frame {
	advance(d)
	return sim.Step(commands)
}

// startPlaying confirms past the title screen.
func startPlaying(t *testing.T, sim *game.Sim, advance func(time.Duration)) {
	t.Helper()
	step(sim, advance, 0, game.Confirm)
	require.Equal(t, game.StatePlaying, sim.State())
}

// dropToFloor soft-drops the active piece until it rests.
func dropToFloor(t *testing.T, sim *game.Sim, advance func(time.Duration)) {
	t.Helper()
	for range 25 {
		if sim.Source.Active().Locking() {
			return
		}
		step(sim, advance, 0, game.SoftDrop)
	}
	t.Fatal("piece never reached the floor")
}

func TestInitialStateIsTitleScreen(t *testing.T) {
	sim, advance := newTestSim(t)

	frame := step(sim, advance, 0)

	assert.Equal(t, game.StatePaused, sim.State())
	assert.Equal(t, "Tetris - press <Enter> to start!", frame.Title)
	assert.Empty(t, frame.Ops)
	assert.False(t, sim.Done())
}

func TestConfirmStartsPlaying(t *testing.T) {
	sim, advance := newTestSim(t)

	frame := step(sim, advance, 0, game.Confirm)

	assert.Equal(t, game.StatePlaying, sim.State())
	assert.Equal(t, "Level: 1 Lines: 0 Scores: 0", frame.Title)
	assert.NotEmpty(t, frame.Ops)
}

func TestPauseAndResume(t *testing.T) {
	sim, advance := newTestSim(t)
	startPlaying(t, sim, advance)

	frame := step(sim, advance, 0, game.Pause)
	assert.Equal(t, game.StatePaused, sim.State())
	assert.Equal(t, "Paused... press <Enter> to resume!", frame.Title)
	assert.Empty(t, frame.Ops)

	step(sim, advance, 0, game.Confirm)
	assert.Equal(t, game.StatePlaying, sim.State())
}

func TestQuitAsksForConfirmation(t *testing.T) {
	sim, advance := newTestSim(t)
	startPlaying(t, sim, advance)

	frame := step(sim, advance, 0, game.Quit)
	assert.Equal(t, game.StateBeforeExit, sim.State())
	assert.Equal(t, "Press <Esc> to exit or <Enter> to cancel!", frame.Title)
	assert.False(t, sim.Done())

	// Confirm backs out of the prompt and resumes where we were.
	step(sim, advance, 0, game.Confirm)
	assert.Equal(t, game.StatePlaying, sim.State())
	assert.False(t, sim.Done())

	step(sim, advance, 0, game.Quit)
	step(sim, advance, 0, game.Cancel)
	assert.True(t, sim.Done())
}

func TestGravityPullsTheActivePiece(t *testing.T) {
	sim, advance := newTestSim(t)
	startPlaying(t, sim, advance)

	before := sim.Source.Active().Cells()
	step(sim, advance, time.Second)
	after := sim.Source.Active().Cells()

	for i := range before {
		assert.Equal(t, before[i].Row+1, after[i].Row)
		assert.Equal(t, before[i].Column, after[i].Column)
	}
}

func TestSoftDropCommandScoresOnePoint(t *testing.T) {
	sim, advance := newTestSim(t)
	startPlaying(t, sim, advance)

	step(sim, advance, 0, game.SoftDrop)
	assert.Equal(t, 1, sim.Score.Score())
}

func TestLockDelayExpiryCommitsThePiece(t *testing.T) {
	sim, advance := newTestSim(t)
	startPlaying(t, sim, advance)

	dropToFloor(t, sim, advance)
	resting := sim.Source.Active()

	// One tick short of the delay: still in play.
	step(sim, advance, 499*time.Millisecond)
	assert.Same(t, resting, sim.Source.Active())
	assert.Equal(t, 0, countFilled(sim.Board))

	step(sim, advance, time.Millisecond)
	assert.NotSame(t, resting, sim.Source.Active())
	assert.Equal(t, 4, countFilled(sim.Board))
	assert.Equal(t, game.StatePlaying, sim.State())
}

func TestPauseFreezesTheLockCountdown(t *testing.T) {
	sim, advance := newTestSim(t)
	startPlaying(t, sim, advance)

	dropToFloor(t, sim, advance)
	resting := sim.Source.Active()

	step(sim, advance, 300*time.Millisecond)
	require.Same(t, resting, sim.Source.Active())

	// Ten wall-clock seconds spent paused contribute nothing.
	step(sim, advance, 0, game.Pause)
	step(sim, advance, 10*time.Second)
	step(sim, advance, 0, game.Confirm)

	step(sim, advance, 150*time.Millisecond)
	assert.Same(t, resting, sim.Source.Active())

	step(sim, advance, 100*time.Millisecond)
	assert.NotSame(t, resting, sim.Source.Active())
	assert.Equal(t, 4, countFilled(sim.Board))
}

func TestHardDropCommandCommitsImmediately(t *testing.T) {
	sim, advance := newTestSim(t)
	startPlaying(t, sim, advance)

	first := sim.Source.Active()
	step(sim, advance, 0, game.HardDrop)

	assert.NotSame(t, first, sim.Source.Active())
	assert.Equal(t, 4, countFilled(sim.Board))
	assert.Greater(t, sim.Score.Score(), 0)
}

func TestStackingOutEndsTheGame(t *testing.T) {
	sim, advance := newTestSim(t)
	startPlaying(t, sim, advance)

	for range 300 {
		if sim.State() == game.StateGameOver {
			break
		}
		step(sim, advance, 0, game.HardDrop)
	}

	require.Equal(t, game.StateGameOver, sim.State())

	frame := step(sim, advance, 0)
	assert.Contains(t, frame.Title, "Game Over!")
	assert.Contains(t, frame.Title, "press <Enter> to restart")
	assert.NotEmpty(t, frame.Ops)
}

func TestRestartAfterGameOver(t *testing.T) {
	sim, advance := newTestSim(t)
	startPlaying(t, sim, advance)

	for range 300 {
		if sim.State() == game.StateGameOver {
			break
		}
		step(sim, advance, 0, game.HardDrop)
	}
	require.Equal(t, game.StateGameOver, sim.State())

	frame := step(sim, advance, 0, game.Confirm)

	assert.Equal(t, game.StatePlaying, sim.State())
	assert.Equal(t, 0, countFilled(sim.Board))
	assert.Equal(t, 0, sim.Score.Score())
	assert.Equal(t, "Level: 1 Lines: 0 Scores: 0", frame.Title)
}

func TestPlayfieldFrameContents(t *testing.T) {
	sim, advance := newTestSim(t)
	startPlaying(t, sim, advance)

	frame := step(sim, advance, 0)

	var fills, outlines, previews int
	for _, op := range frame.Ops {
		switch {
		case op.Pane == game.PaneNext:
			previews++
		case op.Outline:
			outlines++
		case op.Pane == game.PanePlayfield:
			fills++
		}
	}

	// Active piece plus its ghost plus three previews of four cells each.
	assert.Equal(t, 4, fills)
	assert.Equal(t, 4, outlines)
	assert.Equal(t, 12, previews)
}

func TestStepStatsAccumulate(t *testing.T) {
	sim, advance := newTestSim(t)

	step(sim, advance, 0)
	step(sim, advance, 0, game.Confirm)

	for _, phase := range sim.Stats().Phases() {
		assert.Equal(t, int64(2), phase.Count, phase.Name)
		assert.GreaterOrEqual(t, phase.Max, phase.Min, phase.Name)
	}
}
