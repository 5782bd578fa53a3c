package game

import (
	"math/rand/v2"
	"time"
)

// QueueLength is the number of upcoming pieces shown to the player.
const QueueLength = 3

// PieceSource owns the active piece, the held piece and the next queue,
// and deals pieces with a 7-bag randomizer: every block of seven
// consecutive draws contains each variant exactly once.
type PieceSource struct {
	rng     *rand.Rand
	bag     [kindCount]Kind
	index   int
	active  *Tetromino
	held    *Tetromino
	queue   []*Tetromino
	hasHeld bool
}

// NewPieceSource creates a source dealing from the given generator and
// spawns the first active piece onto the board.
func NewPieceSource(rng *rand.Rand, b *Board, now time.Duration) *PieceSource {
	p := &PieceSource{rng: rng}
	p.Reset(b, now)
	return p
}

// Reset deals a fresh bag, spawns a new active piece and refills the next
// queue. The held piece is discarded.
func (p *PieceSource) Reset(b *Board, now time.Duration) {
	p.bag = [kindCount]Kind{KindI, KindO, KindT, KindJ, KindL, KindS, KindZ}
	p.index = len(p.bag)

	p.active = p.deal()
	p.active.Spawn(b, now)
	p.held = nil

	p.queue = p.queue[:0]
	for range QueueLength {
		p.queue = append(p.queue, p.deal())
	}

	p.hasHeld = false
}

func (p *PieceSource) Active() *Tetromino  { return p.active }
func (p *PieceSource) Held() *Tetromino    { return p.held }
func (p *PieceSource) Queue() []*Tetromino { return p.queue }

// deal pops the next variant from the bag, reshuffling only once the
// cursor reaches the end so that bag fairness holds exactly.
func (p *PieceSource) deal() *Tetromino {
	if p.index >= len(p.bag) {
		p.rng.Shuffle(len(p.bag), func(i, j int) {
			p.bag[i], p.bag[j] = p.bag[j], p.bag[i]
		})
		p.index = 0
	}

	kind := p.bag[p.index]
	p.index++
	return NewTetromino(kind)
}

// Advance promotes the front of the queue to active, spawns it, appends a
// freshly dealt piece, and re-arms hold. Returns the new active piece.
func (p *PieceSource) Advance(b *Board, now time.Duration) *Tetromino {
	next := p.queue[0]
	next.Spawn(b, now)
	p.queue = append(p.queue[1:], p.deal())
	p.hasHeld = false
	p.active = next
	return next
}

// Hold stashes the active piece and swaps in the previously held one, or
// deals from the queue if nothing is held yet. At most one hold per piece
// in play; further holds are no-ops until the next lock.
func (p *PieceSource) Hold(b *Board, now time.Duration) {
	if p.hasHeld {
		return
	}

	p.active, p.held = p.held, p.active
	if p.active == nil {
		p.Advance(b, now)
	}
	p.active.Spawn(b, now)
	p.held.ResetPose()
	p.hasHeld = true
}
