//go:build ebiten

package app

import (
	"image"
	"log"
	"time"

	"lifegrid/internal/render"
	"lifegrid/internal/ui"
	"lifegrid/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const gridBorder = 1

// Game adapts a Life simulation to the ebiten.Game interface.
type Game struct {
	sim     *life.Life
	layout  *ui.Layout
	painter *render.GridPainter
	hud     *ui.HUD
	logger  *log.Logger
	seed    int64
}

// New constructs a Game drawing cells of scale pixels.
func New(sim *life.Life, scale int, seed int64, logger *log.Logger) *Game {
	if scale <= 0 {
		scale = 20
	}
	geo := render.Geometry{N: sim.Size().W, Cell: scale, Border: gridBorder}
	layout := ui.NewLayout(geo, sim.Patterns())
	return &Game{
		sim:     sim,
		layout:  layout,
		painter: render.NewGridPainter(geo, render.DefaultPalette()),
		hud:     ui.NewHUD(layout, sim),
		logger:  logger,
		seed:    seed,
	}
}

// Size returns the window size the layout needs.
func (g *Game) Size() (int, int) { return g.layout.Width, g.layout.Height }

// Update handles input and feeds one frame of time into the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.dispatch(life.ToggleRun())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.dispatch(life.ClearGrid())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sim.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.seed = time.Now().UnixNano()
		g.sim.Reset(g.seed)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if cmd, ok := g.layout.CommandAt(image.Pt(ebiten.CursorPosition())); ok {
			g.dispatch(cmd)
		}
	}

	delta := time.Second / time.Duration(ebiten.TPS())
	if _, err := g.sim.Tick(delta); err != nil {
		g.logger.Printf("tick: %v", err)
	}
	return nil
}

func (g *Game) dispatch(cmd life.Command) {
	if err := g.sim.Dispatch(cmd); err != nil {
		g.logger.Printf("%s: %v", cmd.Kind, err)
	}
}

// Draw renders the grid and the control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.DefaultPalette().Dead)
	g.painter.Blit(screen, g.sim.Cells(), g.layout.Grid.Min.X, g.layout.Grid.Min.Y)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.Width, g.layout.Height
}
