package carwash

import (
	"fmt"

	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/games/base"
)

// Visual characters for rendering
const (
	BodyChar  = '▒'
	DirtChar  = '@'
	WheelChar = 'o'
)

const cellW = 3

var paints = map[string]core.Color{
	"red":    core.ColorRed,
	"blue":   core.ColorBlue,
	"purple": core.ColorMagenta,
	"green":  core.ColorGreen,
	"yellow": core.ColorYellow,
	"orange": core.ColorOrange,
	"pink":   core.ColorPink,
}

// Render draws the car, the dirt left on it and the sponge.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Session().Snapshot()
	car := min(snap.Counters[counterCar], snap.Counters[counterCars])
	extra := fmt.Sprintf("Car %d/%d", car, snap.Counters[counterCars])
	base.DrawHUD(dst, g.Title(), snap, extra)

	cols, rows := g.cfg.Columns, g.cfg.Rows
	ox, oy := base.GridView(dst, cols, rows+1, cellW)
	paint, ok := paints[g.Color(car)]
	if !ok {
		paint = core.ColorWhite
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			for dx := 0; dx < cellW; dx++ {
				dst.SetColored(ox+x*cellW+dx, oy+y, BodyChar, paint)
			}
		}
	}
	dst.SetColored(ox+cellW+1, oy+rows, WheelChar, core.ColorGray)
	dst.SetColored(ox+(cols-2)*cellW+1, oy+rows, WheelChar, core.ColorGray)

	for _, e := range snap.Entities {
		dst.SetColored(ox+int(e.X)*cellW+1, oy+int(e.Y), DirtChar, core.ColorBrown)
	}
	if snap.Counters[counterDepart] > 0 {
		dst.DrawTextCentered(oy-2, "Sparkling clean!", core.ColorCyan)
		return
	}
	if p := snap.Player; p != nil && snap.Phase == engine.PhasePlaying {
		x := ox + int(p.X)*cellW
		y := oy + int(p.Y)
		dst.SetColored(x, y, '[', core.ColorYellow)
		dst.SetColored(x+cellW-1, y, ']', core.ColorYellow)
	}
}
