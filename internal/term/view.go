package term

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/MdMxMyr/Automata-engine/internal/app"
	"github.com/MdMxMyr/Automata-engine/internal/core"
	"github.com/MdMxMyr/Automata-engine/pkg/automata"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 30 * time.Millisecond

// View draws a simulation onto a terminal screen, two columns per cell.
// The newest active automaton in a cell decides its colour.
type View struct {
	screen tcell.Screen
	sim    *app.Simulation
	timer  *core.FixedStep
	paused bool

	rows, cols int
	colors     []color.NRGBA
	filled     []bool
}

// New constructs a View. The caller owns the screen's Init and Fini.
func New(screen tcell.Screen, sim *app.Simulation) *View {
	v := &View{
		screen: screen,
		sim:    sim,
		timer:  core.NewFixedStep(sim.Config().TPS),
	}
	sim.View(func(g *automata.Grid) {
		v.rows, v.cols = g.Rows(), g.Cols()
	})
	v.colors = make([]color.NRGBA, v.rows*v.cols)
	v.filled = make([]bool, v.rows*v.cols)
	return v
}

// Paused reports whether automatic advancing is suspended.
func (v *View) Paused() bool { return v.paused }

// DrawAutomaton records the first active automaton drawn for each cell.
func (v *View) DrawAutomaton(row, col, _ int, props automata.Properties) {
	i := row*v.cols + col
	if i < 0 || i >= len(v.filled) || v.filled[i] {
		return
	}
	v.filled[i] = true
	v.colors[i] = props.Color()
}

// Draw paints the current generation and a status line beneath it.
func (v *View) Draw() {
	clear(v.filled)
	v.sim.View(func(g *automata.Grid) { g.Render(v) })

	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	for r := 0; r < v.rows; r++ {
		for c := 0; c < v.cols; c++ {
			style := base
			if i := r*v.cols + c; v.filled[i] {
				style = base.Background(blend(v.colors[i]))
			}
			v.screen.SetContent(c*2, r, ' ', nil, style)
			v.screen.SetContent(c*2+1, r, ' ', nil, style)
		}
	}
	v.drawStatus(v.sim.Census())
	v.screen.Show()
}

func (v *View) drawStatus(census core.Census) {
	var b strings.Builder
	fmt.Fprintf(&b, "gen %d", census.Generation)
	for _, s := range census.Species {
		fmt.Fprintf(&b, "  %s %d/%d", s.TypeID, s.Active, s.Total)
	}
	if v.paused {
		b.WriteString("  [paused]")
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	width, _ := v.screen.Size()
	x := 0
	for _, r := range b.String() {
		if x >= width {
			break
		}
		v.screen.SetContent(x, v.rows, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		v.screen.SetContent(x, v.rows, ' ', nil, style)
	}
}

// blend composites c over black so opacity reads as brightness.
func blend(c color.NRGBA) tcell.Color {
	a := int32(c.A)
	return tcell.NewRGBColor(int32(c.R)*a/255, int32(c.G)*a/255, int32(c.B)*a/255)
}

// HandleKey applies one key press. quit is true when the view should close.
func (v *View) HandleKey(ev *tcell.EventKey) (quit bool, err error) {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true, nil
	}
	switch ev.Rune() {
	case 'q':
		return true, nil
	case ' ':
		v.paused = !v.paused
	case 'n':
		if _, err := v.sim.Step(); err != nil {
			return false, fmt.Errorf("advance: %w", err)
		}
	case 'r':
		if err := v.sim.Reset(v.sim.Seed()); err != nil {
			return false, err
		}
	case 's':
		if err := v.sim.Reset(time.Now().UnixNano()); err != nil {
			return false, err
		}
	}
	return false, nil
}

// Run polls input and advances the simulation until the user quits, the
// generation limit is reached or ctx is cancelled.
func (v *View) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				quit, err := v.HandleKey(ev)
				if err != nil || quit {
					return err
				}
				v.Draw()
			case *tcell.EventResize:
				v.screen.Sync()
				v.Draw()
			}
		case <-ticker.C:
			due := v.timer.Due()
			if v.paused || due == 0 {
				continue
			}
			for i := 0; i < due; i++ {
				if _, err := v.sim.Step(); err != nil {
					return fmt.Errorf("advance: %w", err)
				}
				if v.sim.Done() {
					v.Draw()
					return nil
				}
			}
			v.Draw()
		}
	}
}
