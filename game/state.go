package game

// StateID tags the states of the game flow.
type StateID uint8

const (
	StateNone StateID = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateBeforeExit
)

var stateNames = [...]string{"None", "Playing", "Paused", "GameOver", "BeforeExit"}

func (id StateID) String() string { return stateNames[id] }

// gameState is one node of the flow machine. Enter/exit hooks may pause
// the clock or reset subsystems; they never fail.
type gameState interface {
	ID() StateID
	HandleCommand(s *Sim, c Command)
	Update(s *Sim)
	Draw(s *Sim, f *Frame)
	OnEnter(s *Sim)
	OnExit(s *Sim, next StateID)
}

// flow holds the current and previous state. Exactly one state is active;
// every transition runs the old state's exit hook (told which state comes
// next) before the new state's enter hook.
type flow struct {
	last gameState
	curr gameState
}

func (fl *flow) change(s *Sim, next gameState) {
	if fl.curr != nil {
		fl.curr.OnExit(s, next.ID())
	}
	fl.last = fl.curr
	fl.curr = next
	fl.curr.OnEnter(s)
}

// goBack swaps back to the previous state, running both hooks.
func (fl *flow) goBack(s *Sim) {
	if fl.curr == nil || fl.last == nil {
		return
	}
	fl.curr.OnExit(s, fl.last.ID())
	fl.last.OnEnter(s)
	fl.curr, fl.last = fl.last, fl.curr
}

func (fl *flow) lastID() StateID {
	if fl.last == nil {
		return StateNone
	}
	return fl.last.ID()
}

// playState runs the simulation proper.
type playState struct{}

func (playState) ID() StateID { return StatePlaying }

func (playState) HandleCommand(s *Sim, c Command) {
	switch c {
	case Pause, Cancel:
		s.flow.change(s, pauseState{})
	case MoveLeft:
		s.Source.Active().MoveLeft(s.Board, s.Clock.Now())
	case MoveRight:
		s.Source.Active().MoveRight(s.Board, s.Clock.Now())
	case RotateCW:
		s.Source.Active().TryRotate(s.Board, s.Clock.Now())
	case SoftDrop:
		s.Score.OnSoftDrop(s.Source.Active().SoftDrop(s.Board, s.Clock.Now(), 1))
	case HardDrop:
		s.land()
	case Hold:
		s.Source.Hold(s.Board, s.Clock.Now())
	}
}

func (playState) Update(s *Sim) {
	s.stepPieces()
	s.title = s.Score.Title()
}

func (playState) Draw(s *Sim, f *Frame) {
	s.drawPlayfield(f)
}

func (playState) OnEnter(s *Sim) {
	s.title = s.Score.Title()
}

func (playState) OnExit(*Sim, StateID) {}

// pauseState doubles as the title screen: it is the initial state and the
// destination of the pause command. Entering it freezes the clock.
type pauseState struct{}

func (pauseState) ID() StateID { return StatePaused }

func (pauseState) HandleCommand(s *Sim, c Command) {
	if c == Confirm {
		s.flow.change(s, playState{})
	}
}

func (pauseState) Update(*Sim)       {}
func (pauseState) Draw(*Sim, *Frame) {}

func (pauseState) OnEnter(s *Sim) {
	if s.flow.lastID() == StatePlaying {
		s.title = "Paused... press <Enter> to resume!"
	} else {
		s.title = "Tetris - press <Enter> to start!"
	}
	s.Clock.Pause()
}

func (pauseState) OnExit(s *Sim, next StateID) {
	if next == StatePlaying {
		s.Clock.Resume()
	}
}

// gameOverState shows the final board; confirming starts a fresh match.
type gameOverState struct{}

func (gameOverState) ID() StateID { return StateGameOver }

func (gameOverState) HandleCommand(s *Sim, c Command) {
	if c == Confirm {
		s.flow.change(s, playState{})
	}
}

func (gameOverState) Update(*Sim) {}

func (gameOverState) Draw(s *Sim, f *Frame) {
	s.drawPlayfield(f)
}

func (gameOverState) OnEnter(s *Sim) {
	s.title = "Game Over! " + s.Score.Title() + " - press <Enter> to restart"
}

func (gameOverState) OnExit(s *Sim, next StateID) {
	if next == StatePlaying {
		s.resetMatch()
	}
}

// beforeExitState asks for confirmation after a quit signal.
type beforeExitState struct{}

func (beforeExitState) ID() StateID { return StateBeforeExit }

func (beforeExitState) HandleCommand(s *Sim, c Command) {
	switch c {
	case Cancel, Quit:
		s.done = true
	case Confirm:
		s.flow.goBack(s)
	}
}

func (beforeExitState) Update(*Sim)       {}
func (beforeExitState) Draw(*Sim, *Frame) {}

func (beforeExitState) OnEnter(s *Sim) {
	s.title = "Press <Esc> to exit or <Enter> to cancel!"
}

func (beforeExitState) OnExit(*Sim, StateID) {}
