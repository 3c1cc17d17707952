package render

import (
	"image/color"
	"testing"

	"github.com/MdMxMyr/Automata-engine/pkg/automata"
)

type fixed struct {
	*automata.Base
}

func (f *fixed) Evaluate(*automata.Cell) int { return f.State() }

func newFixed(_ *automata.Cell, typeID string, _ int, props automata.Properties) (automata.Automaton, error) {
	return &fixed{Base: automata.NewBase(typeID, props.IntOr(automata.PropState, 1), props)}, nil
}

func TestCanvasDrawsActiveCellsWithGutter(t *testing.T) {
	g, err := automata.NewGrid(20, 30, 10)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	red := automata.Properties{automata.PropColor: []int{255, 0, 0}, automata.PropOpacity: 255}
	if err := g.SeedCell(1, 2, "x", red, newFixed); err != nil {
		t.Fatalf("SeedCell: %v", err)
	}
	hidden := automata.Properties{automata.PropColor: []int{0, 255, 0}, automata.PropState: 0}
	if err := g.SeedCell(0, 0, "x", hidden, newFixed); err != nil {
		t.Fatalf("SeedCell: %v", err)
	}

	c := NewCanvas(g.Rows(), g.Cols(), g.Resolution(), color.Black)
	c.Frame(g)
	img := c.Image()
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 20 {
		t.Fatalf("canvas bounds = %v", b)
	}

	wantRed := color.RGBA{R: 255, A: 255}
	if got := img.RGBAAt(20, 10); got != wantRed {
		t.Fatalf("cell origin pixel = %+v, want red", got)
	}
	if got := img.RGBAAt(28, 18); got != wantRed {
		t.Fatalf("inner corner pixel = %+v, want red", got)
	}
	black := color.RGBA{A: 255}
	if got := img.RGBAAt(29, 19); got != black {
		t.Fatalf("gutter pixel = %+v, want background", got)
	}
	if got := img.RGBAAt(5, 5); got != black {
		t.Fatalf("inactive automaton was drawn: %+v", got)
	}
}

func TestCanvasBlendsOpacity(t *testing.T) {
	c := NewCanvas(1, 1, 4, color.Black)
	c.DrawAutomaton(0, 0, 4, automata.Properties{automata.PropColor: []int{255, 255, 255}, automata.PropOpacity: 0})
	if got := c.Image().RGBAAt(1, 1); got != (color.RGBA{A: 255}) {
		t.Fatalf("transparent automaton changed pixel to %+v", got)
	}
	c.DrawAutomaton(0, 0, 4, automata.Properties{automata.PropColor: []int{255, 255, 255}, automata.PropOpacity: 255})
	if got := c.Image().RGBAAt(1, 1); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("opaque automaton pixel = %+v", got)
	}
}
