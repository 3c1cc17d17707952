//go:build ebiten

package render

import (
	"github.com/MdMxMyr/Automata-engine/pkg/automata"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps an ebiten image in sync with a Canvas.
type GridPainter struct {
	canvas *Canvas
	img    *ebiten.Image
}

// NewGridPainter allocates a painter for a rows x cols grid at resolution.
func NewGridPainter(rows, cols, resolution int) *GridPainter {
	c := NewCanvas(rows, cols, resolution, nil)
	b := c.Image().Bounds()
	return &GridPainter{canvas: c, img: ebiten.NewImage(b.Dx(), b.Dy())}
}

// Blit renders grid into the canvas, uploads it and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, grid *automata.Grid) {
	gp.canvas.Frame(grid)
	gp.img.WritePixels(gp.canvas.Pix())
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) {
	b := gp.canvas.Image().Bounds()
	return b.Dx(), b.Dy()
}
