package game

import (
	"fmt"
	"time"
)

// MaxLevel caps difficulty progression.
const MaxLevel = 15

// gravitySpeeds[level-1] is how long gravity takes to pull the active
// piece down one row at that level.
var gravitySpeeds = [MaxLevel]time.Duration{
	1000 * time.Millisecond,
	793 * time.Millisecond,
	618 * time.Millisecond,
	473 * time.Millisecond,
	355 * time.Millisecond,
	262 * time.Millisecond,
	190 * time.Millisecond,
	135 * time.Millisecond,
	94 * time.Millisecond,
	64 * time.Millisecond,
	43 * time.Millisecond,
	28 * time.Millisecond,
	18 * time.Millisecond,
	11 * time.Millisecond,
	7 * time.Millisecond,
}

// clearScores[n-1] is the base award for clearing n rows at once.
var clearScores = [4]int{100, 300, 500, 800}

// Progression tracks score, level and the gravity speed curve.
type Progression struct {
	ticksPerRow time.Duration
	level       int
	currRows    int
	totalRows   int
	score       int
}

func NewProgression() *Progression {
	p := &Progression{}
	p.Reset()
	return p
}

func (p *Progression) Reset() {
	p.ticksPerRow = gravitySpeeds[0]
	p.level = 1
	p.currRows = 0
	p.totalRows = 0
	p.score = 0
}

// Speed returns the current gravity interval per row.
func (p *Progression) Speed() time.Duration { return p.ticksPerRow }

func (p *Progression) Level() int { return p.level }
func (p *Progression) Lines() int { return p.totalRows }
func (p *Progression) Score() int { return p.score }

// OnClear awards line-clear points scaled by level and advances the level
// curve.
func (p *Progression) OnClear(rows int) {
	if rows <= 0 {
		return
	}
	p.score += clearScores[rows-1] * p.level
	p.totalRows += rows
	p.currRows += rows
	p.tryLevelUp()
}

// OnSoftDrop awards one point per manually dropped row, capped at 20.
func (p *Progression) OnSoftDrop(rows int) {
	if rows > 0 {
		p.score += min(rows, 20)
	}
}

// OnHardDrop awards two points per dropped row, capped at 40.
func (p *Progression) OnHardDrop(rows int) {
	if rows > 0 {
		p.score += min(rows*2, 40)
	}
}

// Title renders the status line shown in the window title.
func (p *Progression) Title() string {
	return fmt.Sprintf("Level: %d Lines: %d Scores: %d", p.level, p.totalRows, p.score)
}

// tryLevelUp consumes level*5 cleared rows and steps the gravity speed
// down the fixed curve. Speed changes only when the level actually
// increases.
func (p *Progression) tryLevelUp() {
	if p.level >= MaxLevel {
		return
	}

	required := p.level * 5
	if p.currRows < required {
		return
	}

	p.ticksPerRow = gravitySpeeds[p.level]
	p.currRows -= required
	p.level++
}
