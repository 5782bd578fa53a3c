package game

import "time"

// LockDelay is how long a resting piece may keep adjusting before it is
// committed regardless of input.
const LockDelay = 500 * time.Millisecond

// boxSize is the side of the bounding box the shape masks are decoded in.
const boxSize = 4

// Kind enumerates the seven tetromino variants.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindJ
	KindL
	KindS
	KindZ
	kindCount
)

var kindNames = [...]string{"I", "O", "T", "J", "L", "S", "Z"}

func (k Kind) String() string { return kindNames[k] }

// Orientation is one of the four rotational poses.
type Orientation uint8

const (
	Up Orientation = iota
	Right
	Down
	Left
	orientationCount
)

var orientationNames = [...]string{"Up", "Right", "Down", "Left"}

func (o Orientation) String() string { return orientationNames[o] }

// shapeInfo is the per-variant geometry table. Each orientation has a
// 16-bit mask over a 4x4 box, scanned row-major from the high bit.
type shapeInfo struct {
	shapes  [orientationCount]uint16
	widths  [orientationCount]int
	heights [orientationCount]int
	color   Color
	kicks   kickClass
}

var shapeTable = [kindCount]shapeInfo{
	KindI: {
		shapes:  [orientationCount]uint16{0x000F, 0x8888, 0x000F, 0x8888},
		widths:  [orientationCount]int{4, 1, 4, 1},
		heights: [orientationCount]int{1, 4, 1, 4},
		color:   Color{0x00, 0xE6, 0xE6, 0xAA},
		kicks:   kickBar,
	},
	KindO: {
		shapes:  [orientationCount]uint16{0x00CC, 0x00CC, 0x00CC, 0x00CC},
		widths:  [orientationCount]int{2, 2, 2, 2},
		heights: [orientationCount]int{2, 2, 2, 2},
		color:   Color{0xE6, 0xE6, 0x00, 0xAA},
		kicks:   kickNone,
	},
	KindT: {
		shapes:  [orientationCount]uint16{0x004E, 0x08C8, 0x00E4, 0x04C4},
		widths:  [orientationCount]int{3, 2, 3, 2},
		heights: [orientationCount]int{2, 3, 2, 3},
		color:   Color{0xE6, 0x00, 0xE6, 0xAA},
		kicks:   kickBox3,
	},
	KindJ: {
		shapes:  [orientationCount]uint16{0x008E, 0x0C88, 0x00E2, 0x044C},
		widths:  [orientationCount]int{3, 2, 3, 2},
		heights: [orientationCount]int{2, 3, 2, 3},
		color:   Color{0x00, 0x72, 0xFB, 0xAA},
		kicks:   kickBox3,
	},
	KindL: {
		shapes:  [orientationCount]uint16{0x002E, 0x088C, 0x00E8, 0x0C44},
		widths:  [orientationCount]int{3, 2, 3, 2},
		heights: [orientationCount]int{2, 3, 2, 3},
		color:   Color{0xE6, 0x95, 0x00, 0xAA},
		kicks:   kickBox3,
	},
	KindS: {
		shapes:  [orientationCount]uint16{0x006C, 0x08C4, 0x006C, 0x08C4},
		widths:  [orientationCount]int{3, 2, 3, 2},
		heights: [orientationCount]int{2, 3, 2, 3},
		color:   Color{0x00, 0xE6, 0x00, 0xAA},
		kicks:   kickBox3,
	},
	KindZ: {
		shapes:  [orientationCount]uint16{0x00C6, 0x04C8, 0x00C6, 0x04C8},
		widths:  [orientationCount]int{3, 2, 3, 2},
		heights: [orientationCount]int{2, 3, 2, 3},
		color:   Color{0xE6, 0x00, 0x00, 0xAA},
		kicks:   kickBox3,
	},
}

// Tetromino is a falling piece. Its occupied cells are always derived
// from (kind, orientation, anchor) through the shape masks; no cell list
// is stored.
type Tetromino struct {
	kind     Kind
	state    Orientation
	left     int
	bottom   int
	locking  bool
	lockMark time.Duration
}

func NewTetromino(kind Kind) *Tetromino {
	t := &Tetromino{kind: kind}
	t.ResetPose()
	return t
}

func (t *Tetromino) Kind() Kind         { return t.kind }
func (t *Tetromino) State() Orientation { return t.state }
func (t *Tetromino) Color() Color       { return shapeTable[t.kind].color }

// Anchor returns the piece's (left, bottom) position in board coordinates.
func (t *Tetromino) Anchor() (left, bottom int) { return t.left, t.bottom }

func (t *Tetromino) WidthOf(state Orientation) int  { return shapeTable[t.kind].widths[state] }
func (t *Tetromino) HeightOf(state Orientation) int { return shapeTable[t.kind].heights[state] }
func (t *Tetromino) Width() int                     { return t.WidthOf(t.state) }
func (t *Tetromino) Height() int                    { return t.HeightOf(t.state) }

// Locking reports whether the piece is resting and counting down its lock
// delay; LockMark is the clock reading of the last lock refresh.
func (t *Tetromino) Locking() bool           { return t.locking }
func (t *Tetromino) LockMark() time.Duration { return t.lockMark }

// Visible reports whether the piece has left the hidden buffer. A piece
// that locks while still hidden ends the game.
func (t *Tetromino) Visible() bool { return t.bottom > HiddenRows }

// CellsAt decodes the shape mask for the given pose into absolute cells.
// This is the single source of truth for piece occupancy.
func (t *Tetromino) CellsAt(left, bottom int, state Orientation) Cells {
	var cells Cells
	shape := shapeTable[t.kind].shapes[state]
	for i, j := 0, 0; i != 16; i++ {
		if shape&(0x8000>>i) != 0 {
			cells[j] = Cell{
				Column: left + i%boxSize,
				Row:    bottom - boxSize + i/boxSize,
			}
			j++
		}
	}
	return cells
}

// Cells decodes the current pose.
func (t *Tetromino) Cells() Cells { return t.CellsAt(t.left, t.bottom, t.state) }

// ResetPose returns the piece to its spawn pose: orientation Up, centered
// horizontally, anchored just below the top of the grid, lock state clear.
func (t *Tetromino) ResetPose() {
	t.state = Up
	t.locking = false
	t.lockMark = 0
	t.left = (Columns - t.Width()) / 2
	t.bottom = t.Height()
}

// Spawn resets the pose and probes downward from the hidden buffer for
// the highest non-colliding position, so a fresh piece may start
// partially hidden and slide into view. If the spot directly below
// already collides the piece starts out locking: the stack has reached
// spawn height.
func (t *Tetromino) Spawn(b *Board, now time.Duration) {
	t.ResetPose()

	for bottom := HiddenRows + t.bottom; bottom >= t.bottom; bottom-- {
		if !b.IsFilled(t.CellsAt(t.left, bottom, t.state)) {
			t.bottom = bottom
			break
		}
	}

	if b.IsFilled(t.CellsAt(t.left, t.bottom+1, t.state)) {
		t.lock(now)
	}
}

// MoveLeft shifts the piece one column left unless blocked.
func (t *Tetromino) MoveLeft(b *Board, now time.Duration) {
	if !b.IsFilled(t.CellsAt(t.left-1, t.bottom, t.state)) {
		t.left--
		t.unlock(b, now)
	}
}

// MoveRight shifts the piece one column right unless blocked.
func (t *Tetromino) MoveRight(b *Board, now time.Duration) {
	if !b.IsFilled(t.CellsAt(t.left+1, t.bottom, t.state)) {
		t.left++
		t.unlock(b, now)
	}
}

// SoftDrop moves the piece down by at most rows. If the landing spot is
// within reach the piece drops onto it and starts locking. Returns the
// rows actually descended; a piece that is already locking does not move.
func (t *Tetromino) SoftDrop(b *Board, now time.Duration, rows int) int {
	if t.locking {
		return 0
	}

	cells := t.Cells()
	height := b.LandingSpot(cells)[0].Row - cells[0].Row

	if height <= rows {
		t.bottom += height
		t.lock(now)
		return height
	}

	t.bottom += rows
	return rows
}

// HardDropResult reports the outcome of committing a piece to the board.
type HardDropResult struct {
	Dropped int
	Cleared int
}

// HardDrop drops the piece all the way to its landing spot and commits it
// to the board.
func (t *Tetromino) HardDrop(b *Board, now time.Duration) HardDropResult {
	var r HardDropResult
	r.Dropped = t.SoftDrop(b, now, TotalRows)
	r.Cleared = b.Commit(t.Cells(), t.Color())
	return r
}

// TryRotate advances to the next clockwise orientation, trying each kick
// nudge for the target orientation in priority order. The first
// collision-free placement wins; if none fits the piece is unchanged.
// The O piece has no kick entries and never rotates.
func (t *Tetromino) TryRotate(b *Board, now time.Duration) {
	next := (t.state + 1) % orientationCount
	entry, ok := kickTable.Get(kickKey(shapeTable[t.kind].kicks, next))
	if !ok {
		return
	}

	baseLeft := t.left + entry.offset.Column
	baseBottom := t.bottom + entry.offset.Row

	for _, attempt := range entry.attempts {
		left := baseLeft + attempt.Column
		bottom := baseBottom + attempt.Row
		if !b.IsFilled(t.CellsAt(left, bottom, next)) {
			t.left = left
			t.bottom = bottom
			t.state = next
			t.unlock(b, now)
			return
		}
	}
}

// lock marks the piece resting and stamps the lock timer.
func (t *Tetromino) lock(now time.Duration) {
	t.locking = true
	t.lockMark = now
}

// unlock refreshes the lock timer after an accepted move, but clears the
// locking flag only if the piece is now airborne. A piece nudged along
// the top of the stack keeps locking with a fresh countdown.
func (t *Tetromino) unlock(b *Board, now time.Duration) {
	if !b.IsFilled(t.CellsAt(t.left, t.bottom+1, t.state)) {
		t.locking = false
	}
	t.lockMark = now
}
