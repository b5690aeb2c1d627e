package maze

import (
	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/games/base"
)

const cellW = 2

// Render draws walls, pellets, ghosts and the kid.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Session().Snapshot()
	extra := ""
	if snap.Counters[counterPower] > 0 {
		extra = "POWER!"
	}
	base.DrawHUD(dst, g.Title(), snap, extra)

	ox, oy := base.GridView(dst, g.grid.w, g.grid.h, cellW)
	put := func(x, y float64, r rune, c core.Color) {
		sx, sy := ox+int(x)*cellW, oy+int(y)
		for i := 0; i < cellW; i++ {
			dst.SetColored(sx+i, sy, r, c)
		}
	}
	for y := 0; y < g.grid.h; y++ {
		for x := 0; x < g.grid.w; x++ {
			if g.grid.walls[y][x] {
				put(float64(x), float64(y), WallChar, core.ColorBlue)
			}
		}
	}

	blink := snap.Counters[counterPower] < 20 && snap.Tick%4 < 2
	for _, e := range snap.Entities {
		switch e.Variant {
		case variantCandy:
			dst.SetColored(ox+int(e.X)*cellW, oy+int(e.Y), CandyChar, core.ColorYellow)
		case variantPower:
			dst.SetColored(ox+int(e.X)*cellW, oy+int(e.Y), PowerChar, core.ColorPink)
		case variantGhost:
			if e.Kind == engine.KindCollectible && !blink {
				put(e.X, e.Y, ScaredChar, core.ColorBlue)
			} else {
				put(e.X, e.Y, GhostChar, core.ColorRed)
			}
		}
	}
	if snap.Player != nil {
		put(snap.Player.X, snap.Player.Y, KidChar, core.ColorYellow)
	}
}
