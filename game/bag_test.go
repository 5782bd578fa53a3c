package game_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/tetra/game"
	"github.com/stretchr/testify/assert"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestBagFairness(t *testing.T) {
	b := game.NewBoard()
	src := game.NewPieceSource(newRand(), b, 0)

	// The initial deal plus ten advances plus the final queue covers two
	// full bags: fourteen pieces, each variant exactly twice.
	counts := map[game.Kind]int{}
	counts[src.Active().Kind()]++
	for range 10 {
		counts[src.Advance(b, 0).Kind()]++
	}
	for _, piece := range src.Queue() {
		counts[piece.Kind()]++
	}

	assert.Len(t, counts, 7)
	for kind, n := range counts {
		assert.Equal(t, 2, n, "kind %s", kind)
	}
}

func TestQueueLength(t *testing.T) {
	b := game.NewBoard()
	src := game.NewPieceSource(newRand(), b, 0)

	assert.Len(t, src.Queue(), game.QueueLength)
	src.Advance(b, 0)
	assert.Len(t, src.Queue(), game.QueueLength)
}

func TestHoldOncePerPiece(t *testing.T) {
	b := game.NewBoard()
	src := game.NewPieceSource(newRand(), b, 0)

	first := src.Active()
	next := src.Queue()[0]

	// First hold stashes the active piece and promotes the queue.
	src.Hold(b, 0)
	assert.Same(t, first, src.Held())
	assert.Same(t, next, src.Active())

	// Holding again before a lock is a no-op.
	src.Hold(b, 0)
	assert.Same(t, first, src.Held())
	assert.Same(t, next, src.Active())
}

func TestHoldRearmsAfterAdvance(t *testing.T) {
	b := game.NewBoard()
	src := game.NewPieceSource(newRand(), b, 0)

	first := src.Active()
	src.Hold(b, 0)

	second := src.Advance(b, 0)
	src.Hold(b, 0)

	// The stashed piece comes back into play and swaps with the new one.
	assert.Same(t, first, src.Active())
	assert.Same(t, second, src.Held())
}

func TestHeldPieceReturnsInSpawnPose(t *testing.T) {
	b := game.NewBoard()
	src := game.NewPieceSource(newRand(), b, 0)

	first := src.Active()
	first.SoftDrop(b, 0, 5)
	first.TryRotate(b, 0)

	src.Hold(b, 0)
	src.Advance(b, 0)
	src.Hold(b, 0)

	assert.Same(t, first, src.Active())
	assert.Equal(t, game.Up, first.State())
	assert.False(t, first.Locking())
}

func TestResetDiscardsHeld(t *testing.T) {
	b := game.NewBoard()
	src := game.NewPieceSource(newRand(), b, 0)

	src.Hold(b, 0)
	assert.NotNil(t, src.Held())

	src.Reset(b, 0)
	assert.Nil(t, src.Held())
	assert.Len(t, src.Queue(), game.QueueLength)
}
