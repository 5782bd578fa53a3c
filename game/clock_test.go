package game_test

import (
	"testing"
	"time"

	"github.com/plus3/tetra/game"
	"github.com/stretchr/testify/assert"
)

func TestClockPauseDiscardsTime(t *testing.T) {
	clock, advance := game.NewManualClock()

	advance(100 * time.Millisecond)
	assert.Equal(t, 100*time.Millisecond, clock.Now())

	clock.Pause()
	advance(50 * time.Millisecond)
	assert.Equal(t, 100*time.Millisecond, clock.Now())

	clock.Resume()
	advance(25 * time.Millisecond)
	assert.Equal(t, 125*time.Millisecond, clock.Now())
}

func TestClockPauseIsIdempotent(t *testing.T) {
	clock, advance := game.NewManualClock()

	clock.Pause()
	advance(time.Second)
	clock.Pause()
	advance(time.Second)
	clock.Resume()
	clock.Resume()

	assert.Equal(t, time.Duration(0), clock.Now())

	advance(30 * time.Millisecond)
	assert.Equal(t, 30*time.Millisecond, clock.Now())
}

func TestAdvanceFrameDeltas(t *testing.T) {
	clock, advance := game.NewManualClock()

	advance(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, clock.AdvanceFrame(0))
	assert.Equal(t, 16*time.Millisecond, clock.Frame())

	// A frame stepped entirely inside a pause has a zero delta.
	clock.Pause()
	advance(10 * time.Second)
	assert.Equal(t, time.Duration(0), clock.AdvanceFrame(0))

	clock.Resume()
	advance(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, clock.AdvanceFrame(0))
}
