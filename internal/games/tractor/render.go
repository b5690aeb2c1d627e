package tractor

import (
	"fmt"

	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/games/base"
)

// Visual characters for rendering
const (
	SoilChar    = '.'
	CropChar    = '♣'
	TractorChar = 'T'
)

const cellW = 3

// Render draws the field, the crops still standing and the tractor.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Session().Snapshot()
	extra := fmt.Sprintf("Harvest: %d/%d", snap.Score, snap.Counters[counterCrops])
	base.DrawHUD(dst, g.Title(), snap, extra)

	n := g.cfg.Grid
	ox, oy := base.GridView(dst, n, n, cellW)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			dst.SetColored(ox+x*cellW+1, oy+y, SoilChar, core.ColorBrown)
		}
	}
	for _, e := range snap.Entities {
		dst.SetColored(ox+int(e.X)*cellW+1, oy+int(e.Y), CropChar, core.ColorGreen)
	}
	if p := snap.Player; p != nil {
		dst.SetColored(ox+int(p.X)*cellW+1, oy+int(p.Y), TractorChar, core.ColorRed)
	}
}
