package memory

import (
	"fmt"

	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/games/base"
)

const (
	cardW     = 8
	backLabel = "??"
)

// Render draws the card grid and the cursor.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Session().Snapshot()
	extra := fmt.Sprintf("Pairs: %d/%d", snap.Counters[counterMatched], snap.Counters[counterPairs])
	base.DrawHUD(dst, g.Title(), snap, extra)

	ox, oy := base.GridView(dst, g.cols, g.rows*2, cardW)
	for _, e := range snap.Entities {
		label, c := backLabel, core.ColorBlue
		switch e.Mode {
		case faceUp:
			label, c = e.Variant, core.ColorYellow
		case faceMatched:
			label, c = e.Variant, core.ColorGreen
		}
		x := ox + int(e.X)*cardW
		y := oy + int(e.Y)*2
		dst.DrawTextColored(x+1+(cardW-2-len(label))/2, y, label, c)
	}
	if p := snap.Player; p != nil {
		x := ox + int(p.X)*cardW
		y := oy + int(p.Y)*2
		dst.SetColored(x, y, '[', core.ColorWhite)
		dst.SetColored(x+cardW-1, y, ']', core.ColorWhite)
	}
}
