// Package term runs a Life simulation in a terminal using tcell.
package term

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"lifegrid/pkg/sims/life"
)

// The grid starts below the status line; every cell takes two columns.
const (
	originX   = 0
	originY   = 1
	cellWidth = 2
)

var errQuit = errors.New("quit")

var (
	statusStyle = tcell.StyleDefault.Bold(true)
	helpStyle   = tcell.StyleDefault.Dim(true)
	cursorStyle = tcell.StyleDefault.Reverse(true)
)

// Shell draws the grid, turns keys and clicks into commands and drives the
// simulation clock with the measured time between frames.
type Shell struct {
	screen  tcell.Screen
	sim     *life.Life
	frame   time.Duration
	logger  *log.Logger
	cursor  image.Point
	buttons tcell.ButtonMask
}

// New returns a shell over an initialised screen. Run takes ownership of
// the screen and finalises it on return.
func New(screen tcell.Screen, sim *life.Life, frame time.Duration, logger *log.Logger) *Shell {
	if frame <= 0 {
		frame = time.Second / 60
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Shell{screen: screen, sim: sim, frame: frame, logger: logger}
}

// Run processes input and frames until the user quits or ctx is done.
// Input is polled on its own goroutine; the simulation is only touched
// from the frame loop.
func (s *Shell) Run(ctx context.Context) error {
	s.screen.EnableMouse()
	s.draw()

	events := make(chan tcell.Event)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})
	g.Go(func() error {
		defer s.screen.Fini()
		ticker := time.NewTicker(s.frame)
		defer ticker.Stop()
		last := time.Now()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ev := <-events:
				if s.handle(ev) {
					return errQuit
				}
			case now := <-ticker.C:
				delta := now.Sub(last)
				last = now
				if _, err := s.sim.Tick(delta); err != nil {
					s.logger.Printf("tick: %v", err)
				}
			}
			s.draw()
		}
	})

	err := g.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// handle applies one input event and reports whether the user asked to quit.
func (s *Shell) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
	case *tcell.EventKey:
		return s.handleKey(ev)
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && s.buttons&tcell.Button1 == 0 {
			if x, y, ok := s.cellAt(ev.Position()); ok {
				s.cursor = image.Pt(x, y)
				s.dispatch(life.ToggleCell(x, y))
			}
		}
		s.buttons = ev.Buttons()
	}
	return false
}

func (s *Shell) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		s.moveCursor(0, -1)
	case tcell.KeyDown:
		s.moveCursor(0, 1)
	case tcell.KeyLeft:
		s.moveCursor(-1, 0)
	case tcell.KeyRight:
		s.moveCursor(1, 0)
	case tcell.KeyEnter:
		s.dispatch(life.ToggleCell(s.cursor.X, s.cursor.Y))
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q':
			return true
		case r == ' ':
			s.dispatch(life.ToggleRun())
		case r == 'c':
			s.dispatch(life.ClearGrid())
		case r == 'n':
			s.sim.Step()
		case r >= '1' && r <= '9':
			names := s.sim.Patterns()
			if i := int(r - '1'); i < len(names) {
				s.dispatch(life.ApplyPattern(names[i]))
			}
		}
	}
	return false
}

func (s *Shell) dispatch(cmd life.Command) {
	if err := s.sim.Dispatch(cmd); err != nil {
		s.logger.Printf("%s: %v", cmd.Kind, err)
	}
}

func (s *Shell) moveCursor(dx, dy int) {
	n := s.sim.Size().W
	s.cursor.X = min(max(s.cursor.X+dx, 0), n-1)
	s.cursor.Y = min(max(s.cursor.Y+dy, 0), n-1)
}

func (s *Shell) cellAt(col, row int) (int, int, bool) {
	n := s.sim.Size().W
	x := (col - originX) / cellWidth
	y := row - originY
	if col < originX || x >= n || y < 0 || y >= n {
		return 0, 0, false
	}
	return x, y, true
}

func (s *Shell) draw() {
	s.screen.Clear()
	grid := s.sim.Snapshot()
	n := grid.Size()

	status := fmt.Sprintf("%s  gen %d  alive %d  %s", s.sim.RunState(), s.sim.Generation(), grid.Population(), s.sim.Config().Policy)
	s.puts(0, 0, status, statusStyle)

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			style := tcell.StyleDefault
			if s.cursor == image.Pt(x, y) {
				style = cursorStyle
			}
			left, right := '·', ' '
			if grid.Alive(x, y) {
				left, right = '█', '█'
			}
			col := originX + x*cellWidth
			s.screen.SetContent(col, originY+y, left, nil, style)
			s.screen.SetContent(col+1, originY+y, right, nil, style)
		}
	}

	names := s.sim.Patterns()
	menu := make([]string, 0, len(names))
	for i, name := range names {
		if i >= 9 {
			break
		}
		menu = append(menu, fmt.Sprintf("%d %s", i+1, name))
	}
	s.puts(0, originY+n, "space run/stop  c clear  n step  arrows+enter edit  q quit", helpStyle)
	s.puts(0, originY+n+1, strings.Join(menu, "  "), helpStyle)
	s.screen.Show()
}

func (s *Shell) puts(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
