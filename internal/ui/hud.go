//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/MdMxMyr/Automata-engine/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 15
	panelWidth   = 200
)

// HUD draws a translucent census panel in the top-left corner.
type HUD struct {
	hidden bool
	panel  *ebiten.Image
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	return &HUD{}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.hidden = !h.hidden
}

// Draw paints the generation counter and one line per species.
func (h *HUD) Draw(screen *ebiten.Image, census core.Census, paused bool) {
	if h == nil || h.hidden {
		return
	}
	lines := []string{fmt.Sprintf("gen %d", census.Generation)}
	if paused {
		lines[0] += " (paused)"
	}
	for _, s := range census.Species {
		lines = append(lines, fmt.Sprintf("%s %d/%d", s.TypeID, s.Active, s.Total))
	}

	height := panelPadding*2 + lineHeight*len(lines)
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(panelWidth, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	for i, line := range lines {
		y := panelPadding + lineHeight*(i+1) - 3
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}
