// Command tetra runs the falling-block game in an Ebiten window, with an
// optional Dear ImGui debug overlay.
package main

import (
	"flag"
	"image/color"
	"log"
	"math/rand/v2"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/tetra/debugui"
	debugui_ebiten "github.com/plus3/tetra/debugui/ebiten"
	"github.com/plus3/tetra/game"
)

// Screen layout in cells: the hold pane, the playfield, and the next
// pane sit side by side with a one-cell gutter.
const (
	previewCols  = 6
	holdPaneX    = 0
	playfieldX   = previewCols + 1
	nextPaneX    = playfieldX + game.Columns + 1
	screenCols   = nextPaneX + previewCols
	screenRows   = game.VisibleRows
	defaultScale = 30
)

// Key autorepeat in ticks, tuned for 60 TPS.
const (
	repeatDelay    = 15
	repeatInterval = 3
)

var background = color.RGBA{0x10, 0x10, 0x14, 0xFF}

type App struct {
	sim      *game.Sim
	frame    *game.Frame
	commands []game.Command
	scale    float32

	overlay *debugui.Overlay
	backend *debugui_ebiten.ImguiBackend
}

// repeating reports a pressed key on its first tick and then on the
// autorepeat cadence.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

func (a *App) readCommands() []game.Command {
	a.commands = a.commands[:0]

	if repeating(ebiten.KeyLeft) {
		a.commands = append(a.commands, game.MoveLeft)
	}
	if repeating(ebiten.KeyRight) {
		a.commands = append(a.commands, game.MoveRight)
	}
	if repeating(ebiten.KeyDown) {
		a.commands = append(a.commands, game.SoftDrop)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		a.commands = append(a.commands, game.RotateCW)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.commands = append(a.commands, game.HardDrop)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.commands = append(a.commands, game.Hold)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.commands = append(a.commands, game.Pause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		a.commands = append(a.commands, game.Confirm)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.commands = append(a.commands, game.Cancel)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || ebiten.IsWindowBeingClosed() {
		a.commands = append(a.commands, game.Quit)
	}

	return a.commands
}

func (a *App) Update() error {
	if a.backend != nil {
		a.backend.BeginFrame()
	}

	a.frame = a.sim.Step(a.readCommands())
	ebiten.SetWindowTitle(a.frame.Title)

	if a.overlay != nil {
		a.overlay.Render()
	}
	if a.backend != nil {
		a.backend.EndFrame()
	}

	if a.sim.Done() {
		return ebiten.Termination
	}
	return nil
}

// cellOrigin maps a pane-local cell to screen pixels. Playfield rows
// include the hidden buffer and shift up so row HiddenRows lands at the
// top of the window.
func (a *App) cellOrigin(op game.CellOp) (x, y float32) {
	cell := op.Cell
	switch op.Pane {
	case game.PaneHold:
		x = float32(holdPaneX + cell.Column)
	case game.PanePlayfield:
		x = float32(playfieldX + cell.Column)
		cell.Row -= game.HiddenRows
	case game.PaneNext:
		x = float32(nextPaneX + cell.Column)
	}
	return x * a.scale, float32(cell.Row) * a.scale
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if a.frame == nil {
		return
	}

	// Playfield backdrop and border.
	px := float32(playfieldX) * a.scale
	pw := float32(game.Columns) * a.scale
	ph := float32(game.VisibleRows) * a.scale
	vector.DrawFilledRect(screen, px, 0, pw, ph, color.RGBA{0x00, 0x00, 0x00, 0xFF}, false)
	vector.StrokeRect(screen, px-1, 0, pw+2, ph, 1, color.RGBA{0x60, 0x60, 0x60, 0xFF}, false)

	for _, op := range a.frame.Ops {
		x, y := a.cellOrigin(op)
		c := color.RGBA{op.Color.R, op.Color.G, op.Color.B, op.Color.A}
		if op.Outline {
			vector.StrokeRect(screen, x+1, y+1, a.scale-2, a.scale-2, 1, c, false)
		} else {
			vector.DrawFilledRect(screen, x+1, y+1, a.scale-2, a.scale-2, c, false)
		}
	}

	if a.backend != nil {
		a.backend.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.backend != nil {
		a.backend.Layout(outsideWidth, outsideHeight)
	}
	return int(float32(screenCols) * a.scale), int(float32(screenRows) * a.scale)
}

func main() {
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay.")
	seed := flag.Uint64("seed", 0, "Piece randomizer seed; 0 picks one at random.")
	scale := flag.Int("scale", defaultScale, "Cell size in pixels.")
	flag.Parse()

	if *seed == 0 {
		*seed = rand.Uint64()
	}
	log.Printf("seed: %d", *seed)

	app := &App{
		sim:   game.NewSim(game.NewClock(), rand.New(rand.NewPCG(*seed, *seed))),
		scale: float32(*scale),
	}

	// Ebiten paces the loop; the simulation must not sleep on its own.
	app.sim.FrameTarget = 0

	width := int(float32(screenCols) * app.scale)
	height := int(float32(screenRows) * app.scale)

	if *debug {
		backend := ebitenbackend.NewEbitenBackend()
		backend.CreateWindow("Tetris", width, height)
		imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

		app.backend = &debugui_ebiten.ImguiBackend{EbitenBackend: backend}
		app.overlay = debugui.NewOverlay(app.sim)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("Tetris")
	}

	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
