package firetruck

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/games/base"
)

// Visual characters for rendering
const (
	HouseChar = '⌂'
	FlameChar = '^'
	WaterChar = '~'
)

const cellW = 7

var flameColors = [MaxSize + 1]core.Color{core.ColorYellow, core.ColorOrange, core.ColorRed}

// Render draws the street, a flame over every burning house and the hose.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Session().Snapshot()
	extra := fmt.Sprintf("Fires out: %d/%d", snap.Score, snap.Counters[counterGoal])
	base.DrawHUD(dst, g.Title(), snap, extra)

	ox, oy := base.GridView(dst, g.cfg.Columns, g.rows*2, cellW)
	for _, e := range snap.Entities {
		x := ox + int(e.X)*cellW
		y := oy + int(e.Y)*2
		dst.SetColored(x+cellW/2, y+1, HouseChar, core.ColorBrown)
		switch e.Mode {
		case spotBurning:
			size := Size(e.Timer, g.cfg.GrowTicks)
			flame := strings.Repeat(string(FlameChar), size*2+1)
			dst.DrawTextColored(x+cellW/2-size, y, flame, flameColors[size])
		case spotDousing:
			dst.DrawTextColored(x+cellW/2-1, y, strings.Repeat(string(WaterChar), 3), core.ColorBlue)
		}
	}
	if p := snap.Player; p != nil && snap.Phase == engine.PhasePlaying {
		x := ox + int(p.X)*cellW
		y := oy + int(p.Y)*2 + 1
		dst.SetColored(x, y, '[', core.ColorCyan)
		dst.SetColored(x+cellW-1, y, ']', core.ColorCyan)
	}
}
