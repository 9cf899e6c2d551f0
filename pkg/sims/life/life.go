package life

import (
	"fmt"

	"lifegrid/pkg/core"
)

// EdgePolicy decides how neighbours beyond the grid border are counted.
type EdgePolicy uint8

const (
	// Bounded treats everything outside the grid as dead.
	Bounded EdgePolicy = iota
	// Toroidal wraps coordinates so opposite edges touch.
	Toroidal
)

func (p EdgePolicy) String() string {
	if p == Toroidal {
		return "toroidal"
	}
	return "bounded"
}

// ParsePolicy maps a policy name to its EdgePolicy.
func ParsePolicy(name string) (EdgePolicy, error) {
	switch name {
	case "bounded", "":
		return Bounded, nil
	case "toroidal", "torus":
		return Toroidal, nil
	}
	return Bounded, fmt.Errorf("unknown edge policy %q", name)
}

// NextGeneration computes the generation after g under Conway's rule.
// g is only read, so cell evaluation order never matters.
func NextGeneration(g core.Grid, policy EdgePolicy) core.Grid {
	return core.GridFrom(g.Size(), func(x, y int) bool {
		neighbors := countNeighbors(g, x, y, policy)
		if g.Alive(x, y) {
			return neighbors == 2 || neighbors == 3
		}
		return neighbors == 3
	})
}

func countNeighbors(g core.Grid, x, y int, policy EdgePolicy) int {
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if policy == Toroidal {
				nx, ny = g.Wrap(nx, ny)
			}
			if g.Alive(nx, ny) {
				neighbors++
			}
		}
	}
	return neighbors
}
