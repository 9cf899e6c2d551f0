//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one image of the grid and refreshes it from cell data.
type GridPainter struct {
	geo     Geometry
	palette Palette
	img     *ebiten.Image
	buf     []byte
}

// NewGridPainter allocates a painter for the given geometry.
func NewGridPainter(geo Geometry, palette Palette) *GridPainter {
	extent := geo.Extent()
	return &GridPainter{
		geo:     geo,
		palette: palette,
		img:     ebiten.NewImage(extent, extent),
		buf:     make([]byte, 4*extent*extent),
	}
}

// Blit uploads the provided cells and draws the grid at (x, y) on dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, x, y int) {
	if len(cells) != gp.geo.N*gp.geo.N {
		return
	}
	FillRGBA(gp.buf, cells, gp.geo, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(gp.img, op)
}

// Geometry returns the pixel layout the painter draws with.
func (gp *GridPainter) Geometry() Geometry { return gp.geo }
