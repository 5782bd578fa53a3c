package game

import "time"

// PhaseStats accumulates execution timing for one phase of the frame
// step.
type PhaseStats struct {
	Name  string
	Count int64
	Min   time.Duration
	Max   time.Duration
	Last  time.Duration
	Total time.Duration
}

// Avg returns the mean duration over all executions.
func (p *PhaseStats) Avg() time.Duration {
	if p.Count == 0 {
		return 0
	}
	return p.Total / time.Duration(p.Count)
}

func (p *PhaseStats) measure(fn func()) {
	start := time.Now()
	fn()
	d := time.Since(start)

	p.Count++
	p.Last = d
	p.Total += d
	if p.Count == 1 || d < p.Min {
		p.Min = d
	}
	if d > p.Max {
		p.Max = d
	}
}

// StepStats breaks Sim.Step into its phases: command handling, state
// update, and render snapshot construction.
type StepStats struct {
	Input  PhaseStats
	Update PhaseStats
	Render PhaseStats
}

func newStepStats() StepStats {
	return StepStats{
		Input:  PhaseStats{Name: "Input"},
		Update: PhaseStats{Name: "Update"},
		Render: PhaseStats{Name: "Render"},
	}
}

// Phases lists the phases in execution order.
func (s *StepStats) Phases() []*PhaseStats {
	return []*PhaseStats{&s.Input, &s.Update, &s.Render}
}
