package life

import (
	"errors"
	"fmt"
	"image"
	"slices"

	"lifegrid/pkg/core"
)

// ErrUnknownPattern reports a lookup of a name missing from the catalog.
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a named seed shape in absolute grid coordinates.
type Pattern struct {
	Name  string
	Cells []image.Point
}

// Catalog holds seed shapes in menu order.
type Catalog struct {
	patterns []Pattern
	index    map[string]int
}

// NewCatalog copies the provided patterns into a catalog. A later pattern
// with a repeated name replaces the earlier one.
func NewCatalog(patterns ...Pattern) *Catalog {
	c := &Catalog{index: make(map[string]int, len(patterns))}
	for _, p := range patterns {
		p.Cells = slices.Clone(p.Cells)
		if i, ok := c.index[p.Name]; ok {
			c.patterns[i] = p
			continue
		}
		c.index[p.Name] = len(c.patterns)
		c.patterns = append(c.patterns, p)
	}
	return c
}

// Names lists the pattern names in menu order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.patterns))
	for i, p := range c.patterns {
		names[i] = p.Name
	}
	return names
}

// Lookup returns a copy of the named pattern.
func (c *Catalog) Lookup(name string) (Pattern, bool) {
	i, ok := c.index[name]
	if !ok {
		return Pattern{}, false
	}
	p := c.patterns[i]
	p.Cells = slices.Clone(p.Cells)
	return p, true
}

// Apply clears the grid and stamps the named pattern. Coordinates outside
// the grid are skipped one by one. The result is published in a single
// step, so readers see either the old grid or the stamped one.
func (c *Catalog) Apply(name string, state *core.GridState) (stamped int, err error) {
	i, ok := c.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	scratch := core.NewGridState(state.Size())
	for _, pt := range c.patterns[i].Cells {
		if err := scratch.Set(pt.X, pt.Y, true); err != nil {
			continue
		}
		stamped++
	}
	if err := state.Publish(scratch.Snapshot()); err != nil {
		return 0, err
	}
	return stamped, nil
}

// DefaultCatalog returns the built-in shapes.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Pattern{Name: "Block", Cells: blockCells},
		Pattern{Name: "Glider", Cells: gliderCells},
		Pattern{Name: "Pulsar", Cells: pulsarCells},
		Pattern{Name: "KaiYing", Cells: kaiYingCells},
		Pattern{Name: "Shuttle", Cells: shuttleCells},
		Pattern{Name: "CShuttle", Cells: cShuttleCells},
	)
}

func pts(coords ...int) []image.Point {
	out := make([]image.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, image.Pt(coords[i], coords[i+1]))
	}
	return out
}

var blockCells = pts(10, 10, 11, 10, 10, 11, 11, 11)

var gliderCells = pts(2, 2, 3, 3, 1, 4, 2, 4, 3, 4)

var pulsarCells = pts(
	18, 14, 18, 13, 18, 12,
	19, 15, 20, 15, 21, 15,
	23, 14, 23, 13, 23, 12,
	21, 10, 20, 10, 19, 10,
	19, 17, 20, 17, 21, 17,
	18, 18, 18, 19, 18, 20,
	23, 18, 23, 19, 23, 20,
	19, 22, 20, 22, 21, 22,
	16, 18, 16, 19, 16, 20,
	15, 17, 14, 17, 13, 17,
	13, 15, 14, 15, 15, 15,
	16, 14, 16, 13, 16, 12,
	15, 10, 14, 10, 13, 10,
	11, 12, 11, 13, 11, 14,
	11, 18, 11, 19, 11, 20,
	13, 22, 14, 22, 15, 22,
)

var kaiYingCells = pts(
	18, 21, 19, 20, 20, 19,
	20, 18, 20, 16, 20, 17,
	18, 12, 19, 13, 20, 14,
	20, 15, 17, 13, 16, 14,
	16, 15, 16, 16, 16, 17,
	16, 18, 16, 19, 17, 20,
)

var shuttleCells = pts(
	6, 15, 5, 15, 5, 16, 6, 16,
	25, 15, 26, 15, 26, 16, 25, 16,
	10, 15, 11, 15, 11, 14, 11, 16,
	12, 13, 13, 12, 14, 13, 14, 14,
	14, 15, 14, 16, 14, 17, 13, 14,
	13, 15, 13, 16, 12, 17, 13, 18,
)

var cShuttleCells = pts(
	18, 11, 18, 10, 19, 9, 19, 8,
	19, 7, 18, 6, 18, 5, 20, 6,
	21, 7, 22, 8, 21, 9, 20, 10,
	23, 17, 24, 17, 25, 18, 26, 18,
	27, 18, 28, 17, 29, 17, 28, 19,
	27, 20, 26, 21, 25, 20, 24, 19,
	17, 22, 17, 23, 16, 24, 16, 25,
	16, 26, 17, 27, 17, 28, 15, 23,
	14, 24, 13, 25, 14, 26, 15, 27,
	12, 16, 11, 16, 10, 15, 9, 15,
	8, 15, 7, 16, 6, 16, 7, 14,
	8, 13, 9, 12, 10, 13, 11, 14,
)
