package game

import "time"

// FrameInterval is the target duration of one frame (60 FPS).
const FrameInterval = time.Second / 60

// Clock is the simulation's monotonic time source. Now returns elapsed
// unpaused time: pausing freezes the reading and the paused span is
// discarded on resume, so every duration-based rule (gravity, lock delay)
// is automatically exempt from wall time spent paused.
type Clock struct {
	now   func() time.Time
	sleep func(time.Duration)

	start      time.Time
	mark       time.Time
	last       time.Duration
	frame      time.Duration
	pauseStart time.Time
	paused     time.Duration
	hasPaused  bool
}

// NewClock returns a wall-clock-backed Clock.
func NewClock() *Clock {
	return newClock(time.Now, time.Sleep)
}

// NewManualClock returns a Clock driven by the returned advance function
// instead of the wall clock, for deterministic tests. Frame capping does
// not sleep.
func NewManualClock() (*Clock, func(time.Duration)) {
	current := time.Unix(0, 0)
	clock := newClock(func() time.Time { return current }, func(time.Duration) {})
	return clock, func(step time.Duration) { current = current.Add(step) }
}

func newClock(now func() time.Time, sleep func(time.Duration)) *Clock {
	c := &Clock{now: now, sleep: sleep}
	c.start = now()
	c.mark = c.start
	return c
}

// Now returns the elapsed unpaused time since the clock was created.
func (c *Clock) Now() time.Duration {
	at := c.now()
	if c.hasPaused {
		at = c.pauseStart
	}
	return at.Sub(c.start) - c.paused
}

// Frame returns the simulated delta of the most recent AdvanceFrame.
func (c *Clock) Frame() time.Duration { return c.frame }

// Pause freezes Now at its current reading.
func (c *Clock) Pause() {
	if !c.hasPaused {
		c.hasPaused = true
		c.pauseStart = c.now()
	}
}

// Resume unfreezes the clock; the span spent paused contributes nothing
// to Now.
func (c *Clock) Resume() {
	if c.hasPaused {
		c.hasPaused = false
		c.paused += c.now().Sub(c.pauseStart)
	}
}

// AdvanceFrame sleeps until at least target has passed since the previous
// frame, then records and returns the unpaused time elapsed since that
// frame.
func (c *Clock) AdvanceFrame(target time.Duration) time.Duration {
	if interval := c.now().Sub(c.mark); interval < target {
		c.sleep(target - interval)
	}

	curr := c.Now()
	c.frame = curr - c.last
	c.last = curr
	c.mark = c.now()
	return c.frame
}
