package digger

import (
	"fmt"

	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/games/base"
)

const slotW = 12

// Render draws the sandpit slots, the bucket and the truck being loaded.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Session().Snapshot()
	extra := fmt.Sprintf("Trucks: %d/%d", snap.Counters[counterTrucks], snap.Counters[counterGoal])
	base.DrawHUD(dst, g.Title(), snap, extra)

	ox, oy := base.GridView(dst, g.cfg.Slots, 3, slotW)
	for _, e := range snap.Entities {
		x := ox + int(e.X)*slotW
		switch e.Mode {
		case slotItem:
			dst.DrawTextColored(x+1+(slotW-2-len(e.Variant))/2, oy+1, e.Variant, core.ColorWhite)
		case slotScooped:
			dst.DrawTextColored(x+1+(slotW-2-len(e.Variant))/2, oy, e.Variant, core.ColorYellow)
		}
		dst.DrawTextColored(x+1, oy+2, "~~~~~~~~~~", core.ColorBrown)
	}
	if p := snap.Player; p != nil && snap.Phase == engine.PhasePlaying {
		x := ox + int(p.X)*slotW
		dst.SetColored(x, oy+1, '[', core.ColorYellow)
		dst.SetColored(x+slotW-1, oy+1, ']', core.ColorYellow)
	}

	truck := fmt.Sprintf("Truck: %d/%d", snap.Counters[counterLoad], snap.Counters[counterLoads])
	dst.DrawTextCentered(oy+5, truck, core.ColorOrange)
	if praise := g.Praise(snap.Score); praise != "" {
		dst.DrawTextCentered(oy-3, praise, core.ColorGreen)
	}
}
