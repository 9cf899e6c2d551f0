//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifegrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor  = color.RGBA{R: 242, G: 242, B: 242, A: 255}
	runColor    = color.RGBA{R: 51, G: 153, B: 230, A: 255}
	clearColor  = color.RGBA{R: 217, G: 51, B: 51, A: 255}
	patternFill = color.RGBA{R: 102, G: 102, B: 204, A: 255}
)

type statusProvider interface {
	RunState() core.RunState
	Parameters() core.ParameterSnapshot
}

// HUD draws the control panel described by a Layout.
type HUD struct {
	layout *Layout
	sim    statusProvider
}

// NewHUD constructs a HUD for the provided layout and simulation.
func NewHUD(layout *Layout, sim statusProvider) *HUD {
	return &HUD{layout: layout, sim: sim}
}

// Draw paints the panel background, buttons and status lines.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.layout == nil {
		return
	}
	l := h.layout
	left := float32(l.Grid.Max.X)
	vector.DrawFilledRect(screen, left, 0, float32(l.Width)-left, float32(l.Height), panelColor, false)

	state := h.sim.RunState()
	face := basicfont.Face7x13
	for i, b := range l.Buttons {
		fill := patternFill
		switch i {
		case 0:
			fill = runColor
		case 1:
			fill = clearColor
		}
		r := b.Rect
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fill, false)
		label := ButtonLabel(b, state)
		tx := r.Min.X + (r.Dx()-len(label)*7)/2
		ty := r.Min.Y + r.Dy()/2 + 4
		text.Draw(screen, label, face, tx, ty, color.White)
	}

	text.Draw(screen, "Patterns:", face, l.PatternsHeader.X, l.PatternsHeader.Y+lineHeight, color.Black)

	params := h.sim.Parameters()
	y := l.Status.Y + lineHeight
	for _, key := range []string{"state", "generation", "population", "policy"} {
		p, ok := params.Lookup(key)
		if !ok {
			continue
		}
		text.Draw(screen, fmt.Sprintf("%s: %s", p.Label, p.Value), face, l.Status.X, y, color.Black)
		y += lineHeight
	}
}
