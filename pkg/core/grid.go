package core

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

var (
	// ErrOutOfRange reports a direct cell access outside [0, N).
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrSizeMismatch reports an attempt to publish a grid of another size.
	ErrSizeMismatch = errors.New("grid size mismatch")
)

// Grid is an immutable N×N snapshot of cell life states stored in row-major
// order. The zero value is an empty grid.
type Grid struct {
	n     int
	cells []bool
}

// GridFrom builds a fresh grid by evaluating alive for every cell.
func GridFrom(n int, alive func(x, y int) bool) Grid {
	if n <= 0 {
		n = 1
	}
	g := Grid{n: n, cells: make([]bool, n*n)}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			g.cells[y*n+x] = alive(x, y)
		}
	}
	return g
}

// Size returns N.
func (g Grid) Size() int { return g.n }

// Index returns the linear slice index for coordinates (x, y).
func (g Grid) Index(x, y int) int { return y*g.n + x }

// Contains reports whether (x, y) lies inside the grid.
func (g Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.n && y >= 0 && y < g.n
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g Grid) Wrap(x, y int) (int, int) {
	x = (x%g.n + g.n) % g.n
	y = (y%g.n + g.n) % g.n
	return x, y
}

// Get returns the life state at (x, y).
func (g Grid) Get(x, y int) (bool, error) {
	if !g.Contains(x, y) {
		return false, rangeError(x, y, g.n)
	}
	return g.cells[g.Index(x, y)], nil
}

// Alive is Get for readers that treat everything outside the grid as dead.
func (g Grid) Alive(x, y int) bool {
	if !g.Contains(x, y) {
		return false
	}
	return g.cells[g.Index(x, y)]
}

// Population counts live cells.
func (g Grid) Population() int {
	count := 0
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return count
}

// Points lists live cells in row-major order.
func (g Grid) Points() []image.Point {
	var pts []image.Point
	for i, alive := range g.cells {
		if alive {
			pts = append(pts, image.Pt(i%g.n, i/g.n))
		}
	}
	return pts
}

// Equal reports whether both grids have the same size and cells.
func (g Grid) Equal(other Grid) bool {
	if g.n != other.n {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Binary writes the grid as 0/1 values into dst, growing it when needed.
func (g Grid) Binary(dst []uint8) []uint8 {
	if cap(dst) < len(g.cells) {
		dst = make([]uint8, len(g.cells))
	}
	dst = dst[:len(g.cells)]
	for i, alive := range g.cells {
		dst[i] = 0
		if alive {
			dst[i] = 1
		}
	}
	return dst
}

// String renders the grid with '#' for live and '.' for dead cells.
func (g Grid) String() string {
	var b strings.Builder
	b.Grow(len(g.cells) + g.n)
	for y := 0; y < g.n; y++ {
		for x := 0; x < g.n; x++ {
			if g.cells[g.Index(x, y)] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// GridState owns the authoritative grid. Every mutation goes through its
// methods; readers take a Snapshot.
type GridState struct {
	n     int
	cells []bool
}

// NewGridState allocates an all-dead grid of n×n cells.
func NewGridState(n int) *GridState {
	if n <= 0 {
		n = 1
	}
	return &GridState{n: n, cells: make([]bool, n*n)}
}

// Size returns N.
func (s *GridState) Size() int { return s.n }

// Get returns the life state at (x, y).
func (s *GridState) Get(x, y int) (bool, error) {
	if !s.contains(x, y) {
		return false, rangeError(x, y, s.n)
	}
	return s.cells[y*s.n+x], nil
}

// Set updates the life state at (x, y).
func (s *GridState) Set(x, y int, alive bool) error {
	if !s.contains(x, y) {
		return rangeError(x, y, s.n)
	}
	s.cells[y*s.n+x] = alive
	return nil
}

// Toggle flips the life state at (x, y).
func (s *GridState) Toggle(x, y int) error {
	alive, err := s.Get(x, y)
	if err != nil {
		return err
	}
	return s.Set(x, y, !alive)
}

// Clear kills every cell.
func (s *GridState) Clear() {
	for i := range s.cells {
		s.cells[i] = false
	}
}

// Snapshot returns an immutable copy of the current cells.
func (s *GridState) Snapshot() Grid {
	cells := make([]bool, len(s.cells))
	copy(cells, s.cells)
	return Grid{n: s.n, cells: cells}
}

// Publish replaces the whole grid with next in one step.
func (s *GridState) Publish(next Grid) error {
	if next.n != s.n {
		return fmt.Errorf("%w: publishing %dx%d into %dx%d", ErrSizeMismatch, next.n, next.n, s.n, s.n)
	}
	copy(s.cells, next.cells)
	return nil
}

func (s *GridState) contains(x, y int) bool {
	return x >= 0 && x < s.n && y >= 0 && y < s.n
}

func rangeError(x, y, n int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrOutOfRange, x, y, n, n)
}
