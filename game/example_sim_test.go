package game_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/plus3/tetra/game"
)

func ExampleSim() {
	clock, advance := game.NewManualClock()
	sim := game.NewSim(clock, rand.New(rand.NewPCG(1, 2)))
	sim.FrameTarget = 0

	show := func(commands ...game.Command) {
		advance(game.FrameInterval)
		frame := sim.Step(commands)
		fmt.Printf("%s: %s\n", sim.State(), frame.Title)
	}

	show()
	show(game.Confirm)
	show(game.Pause)
	show(game.Quit)

	// Output:
	// Paused: Tetris - press <Enter> to start!
	// Playing: Level: 1 Lines: 0 Scores: 0
	// Paused: Paused... press <Enter> to resume!
	// BeforeExit: Press <Esc> to exit or <Enter> to cancel!
}
