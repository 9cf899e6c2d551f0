package render

import "image/color"

// Palette maps cell states to colors.
type Palette struct {
	Alive  color.RGBA
	Dead   color.RGBA
	Border color.RGBA
}

// DefaultPalette draws black live cells on white with grey grid lines.
func DefaultPalette() Palette {
	return Palette{
		Alive:  color.RGBA{A: 255},
		Dead:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Border: color.RGBA{R: 204, G: 204, B: 204, A: 255},
	}
}

// Geometry describes how an n×n grid maps onto pixels: every cell is a
// square of Cell pixels framed by Border pixels on each side.
type Geometry struct {
	N      int
	Cell   int
	Border int
}

// Pitch is the pixel distance between neighbouring cell origins.
func (g Geometry) Pitch() int { return g.Cell + 2*g.Border }

// Extent is the width and height of the whole grid in pixels.
func (g Geometry) Extent() int { return g.N * g.Pitch() }

// CellAt maps a pixel inside the grid to its cell. Pixels on grid lines
// belong to the cell they frame.
func (g Geometry) CellAt(px, py int) (x, y int, ok bool) {
	pitch := g.Pitch()
	if pitch <= 0 || px < 0 || py < 0 || px >= g.Extent() || py >= g.Extent() {
		return 0, 0, false
	}
	return px / pitch, py / pitch, true
}

// FillRGBA converts binary cell data (0/1) into RGBA pixels in buf, which
// must hold 4*Extent()*Extent() bytes.
func FillRGBA(buf []byte, cells []uint8, geo Geometry, p Palette) {
	extent := geo.Extent()
	pitch := geo.Pitch()
	if len(cells) != geo.N*geo.N || len(buf) < 4*extent*extent {
		return
	}
	for py := 0; py < extent; py++ {
		cy, oy := py/pitch, py%pitch
		rowLine := oy < geo.Border || oy >= geo.Border+geo.Cell
		for px := 0; px < extent; px++ {
			cx, ox := px/pitch, px%pitch
			col := p.Dead
			switch {
			case rowLine || ox < geo.Border || ox >= geo.Border+geo.Cell:
				col = p.Border
			case cells[cy*geo.N+cx] != 0:
				col = p.Alive
			}
			base := 4 * (py*extent + px)
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
