package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/MdMxMyr/Automata-engine/pkg/automata"
)

// Canvas rasterizes render calls into an RGBA image. Each active automaton
// becomes a square of resolution-1 pixels, leaving a one pixel gutter on the
// right and bottom edges of its cell, blended over what is already there.
type Canvas struct {
	img        *image.RGBA
	background color.Color
}

// NewCanvas allocates a canvas covering rows x cols cells of resolution pixels.
func NewCanvas(rows, cols, resolution int, background color.Color) *Canvas {
	if background == nil {
		background = color.Black
	}
	c := &Canvas{
		img:        image.NewRGBA(image.Rect(0, 0, cols*resolution, rows*resolution)),
		background: background,
	}
	c.Clear()
	return c
}

// Image exposes the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Pix exposes the raw RGBA bytes.
func (c *Canvas) Pix() []byte { return c.img.Pix }

// Clear paints the whole canvas with the background color.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.background), image.Point{}, draw.Src)
}

// DrawAutomaton paints one automaton using its color and opacity properties.
func (c *Canvas) DrawAutomaton(row, col, resolution int, props automata.Properties) {
	size := resolution - 1
	if size < 1 {
		size = 1
	}
	x, y := col*resolution, row*resolution
	rect := image.Rect(x, y, x+size, y+size).Intersect(c.img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(c.img, rect, image.NewUniform(props.Color()), image.Point{}, draw.Over)
}

// Frame clears the canvas and renders grid onto it.
func (c *Canvas) Frame(grid *automata.Grid) {
	c.Clear()
	grid.Render(c)
}
