package orchard

import (
	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/games/base"
)

// Visual characters for rendering
const (
	LeafChar  = '♣'
	TrunkChar = '║'
	AppleChar = '●'
	BirdChar  = 'v'
	GrassChar = '"'
)

// Render draws the tree, its apples and the bird.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Session().Snapshot()
	base.DrawHUD(dst, g.Title(), snap, g.Praise(snap.Counters[counterShoos]))

	vp := base.FieldView(dst, fieldSize, fieldSize, false)

	// crown and trunk
	cx0, cy0 := vp.Cell(30, 8)
	cx1, cy1 := vp.Cell(70, 50)
	dst.DrawRect(core.NewRect(cx0, cy0, cx1-cx0, cy1-cy0), LeafChar, core.ColorGreen)
	tx, ty := vp.Cell(48, 50)
	_, gy := vp.Cell(0, 88)
	for y := ty; y < gy; y++ {
		dst.SetColored(tx, y, TrunkChar, core.ColorBrown)
	}
	dst.DrawHLine(vp.Area.X, gy, vp.Area.W, GrassChar, core.ColorGreen)

	for _, e := range snap.Entities {
		switch e.Kind {
		case engine.KindCollectible:
			c := core.ColorGreen
			switch {
			case e.Scale >= 1:
				c = core.ColorRed
			case e.Scale >= 0.5:
				c = core.ColorYellow
			}
			x, y := vp.Cell(e.X, e.Y)
			dst.SetColored(x, y, AppleChar, c)
		case engine.KindHazard:
			x, y := vp.Cell(e.X, e.Y)
			if vp.Area.Contains(x, y) {
				dst.SetColored(x, y, BirdChar, core.ColorMagenta)
			}
		}
	}
}
