package ui

import (
	"image"
	"testing"

	"lifegrid/internal/render"
	"lifegrid/pkg/core"
	"lifegrid/pkg/sims/life"
)

func testLayout() *Layout {
	geo := render.Geometry{N: 35, Cell: 20, Border: 1}
	return NewLayout(geo, []string{"Block", "Glider"})
}

func TestLayoutGridClicks(t *testing.T) {
	l := testLayout()
	cmd, ok := l.CommandAt(l.Grid.Min.Add(image.Pt(22*4+10, 22*7+10)))
	if !ok || cmd != life.ToggleCell(4, 7) {
		t.Fatalf("grid click = %+v, %v", cmd, ok)
	}
	if _, ok := l.CommandAt(image.Pt(2, 2)); ok {
		t.Fatal("click in the margin must not produce a command")
	}
}

func TestLayoutButtons(t *testing.T) {
	l := testLayout()
	if len(l.Buttons) != 4 {
		t.Fatalf("expected 4 buttons, got %d", len(l.Buttons))
	}
	want := []life.Command{life.ToggleRun(), life.ClearGrid(), life.ApplyPattern("Block"), life.ApplyPattern("Glider")}
	for i, b := range l.Buttons {
		center := b.Rect.Min.Add(b.Rect.Size().Div(2))
		cmd, ok := l.CommandAt(center)
		if !ok || cmd != want[i] {
			t.Fatalf("button %q click = %+v, expected %+v", b.Label, cmd, want[i])
		}
		if b.Rect.Min.X < l.Grid.Max.X {
			t.Fatalf("button %q overlaps the grid", b.Label)
		}
		if b.Rect.Max.X > l.Width || b.Rect.Max.Y > l.Height {
			t.Fatalf("button %q outside the screen", b.Label)
		}
	}
}

func TestButtonLabelFollowsRunState(t *testing.T) {
	l := testLayout()
	run := l.Buttons[0]
	if got := ButtonLabel(run, core.Stopped); got != "Start" {
		t.Fatalf("stopped label = %q", got)
	}
	if got := ButtonLabel(run, core.Running); got != "Stop" {
		t.Fatalf("running label = %q", got)
	}
	if got := ButtonLabel(l.Buttons[1], core.Running); got != "Clear" {
		t.Fatalf("clear label = %q", got)
	}
}
