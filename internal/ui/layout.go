package ui

import (
	"image"

	"lifegrid/internal/render"
	"lifegrid/pkg/core"
	"lifegrid/pkg/sims/life"
)

const (
	margin       = 10
	panelWidth   = 160
	buttonHeight = 32
	buttonGap    = 8
	headerHeight = 24
	statusLines  = 4
	lineHeight   = 16
)

// Button is a clickable sidebar control bound to one command.
type Button struct {
	Label   string
	Rect    image.Rectangle
	Command life.Command
}

// Layout places the grid and the control panel on screen and maps clicks
// back to commands.
type Layout struct {
	Geometry render.Geometry
	Grid     image.Rectangle
	Buttons  []Button
	// PatternsHeader and Status are text origins (top-left) in the panel.
	PatternsHeader image.Point
	Status         image.Point
	Width, Height  int
}

// NewLayout puts the grid on the left and a column of buttons to its right:
// run/stop, clear, then one button per pattern.
func NewLayout(geo render.Geometry, patterns []string) *Layout {
	extent := geo.Extent()
	l := &Layout{
		Geometry: geo,
		Grid:     image.Rect(margin, margin, margin+extent, margin+extent),
	}

	left := l.Grid.Max.X + margin
	y := margin
	add := func(label string, cmd life.Command) {
		l.Buttons = append(l.Buttons, Button{
			Label:   label,
			Rect:    image.Rect(left, y, left+panelWidth, y+buttonHeight),
			Command: cmd,
		})
		y += buttonHeight + buttonGap
	}
	add("Start", life.ToggleRun())
	add("Clear", life.ClearGrid())

	l.PatternsHeader = image.Pt(left, y)
	y += headerHeight
	for _, name := range patterns {
		add(name, life.ApplyPattern(name))
	}

	l.Status = image.Pt(left, y+margin)
	y += margin + statusLines*lineHeight

	l.Width = left + panelWidth + margin
	l.Height = max(l.Grid.Max.Y+margin, y+margin)
	return l
}

// CommandAt returns the command triggered by a click at pt.
func (l *Layout) CommandAt(pt image.Point) (life.Command, bool) {
	if pt.In(l.Grid) {
		local := pt.Sub(l.Grid.Min)
		x, y, ok := l.Geometry.CellAt(local.X, local.Y)
		if !ok {
			return life.Command{}, false
		}
		return life.ToggleCell(x, y), true
	}
	for _, b := range l.Buttons {
		if pt.In(b.Rect) {
			return b.Command, true
		}
	}
	return life.Command{}, false
}

// ButtonLabel returns the text shown on b for the given run state.
func ButtonLabel(b Button, state core.RunState) string {
	if b.Command.Kind == life.CmdToggleRun && state == core.Running {
		return "Stop"
	}
	return b.Label
}
