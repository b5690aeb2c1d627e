package base

import (
	"fmt"

	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
)

// HUDHeight is the number of rows above the play area.
const HUDHeight = 1

// DrawHUD writes the title, score and an optional extra on the top row.
func DrawHUD(dst *core.Screen, title string, snap engine.Snapshot, extra string) {
	dst.DrawTextColored(1, 0, title, core.ColorCyan)
	score := fmt.Sprintf("Score: %d", snap.Score)
	dst.DrawTextColored(dst.Width()-len(score)-1, 0, score, core.ColorYellow)
	if extra != "" {
		x := (dst.Width() - len([]rune(extra))) / 2
		dst.DrawText(max(x, len(title)+2), 0, extra)
	}
}

// PlayArea returns the boxed area below the HUD and the cells inside it.
func PlayArea(dst *core.Screen) (frame, inner core.Rect) {
	frame = core.NewRect(0, HUDHeight, dst.Width(), dst.Height()-HUDHeight)
	inner = core.NewRect(frame.X+1, frame.Y+1, max(frame.W-2, 0), max(frame.H-2, 0))
	return frame, inner
}

// FieldView draws the play-area frame and maps a field onto its inside.
func FieldView(dst *core.Screen, fieldW, fieldH float64, flipY bool) core.Viewport {
	frame, inner := PlayArea(dst)
	dst.DrawBox(frame, core.ColorGray)
	return core.Viewport{Area: inner, FieldW: fieldW, FieldH: fieldH, FlipY: flipY}
}

// GridView maps a cols x rows grid onto the play area, centered, with
// cellW screen columns per grid column. It draws the frame around the grid.
func GridView(dst *core.Screen, cols, rows, cellW int) (originX, originY int) {
	_, inner := PlayArea(dst)
	w, h := cols*cellW, rows
	originX = inner.X + max((inner.W-w)/2, 0)
	originY = inner.Y + max((inner.H-h)/2, 0)
	dst.DrawBox(core.NewRect(originX-1, originY-1, w+2, h+2), core.ColorGray)
	return originX, originY
}

// DrawEntity fills an entity's footprint with r. For flipped viewports the
// entity's y is its bottom edge.
func DrawEntity(dst *core.Screen, vp core.Viewport, e engine.EntityView, r rune, c core.Color) {
	x, y := vp.Cell(e.X, e.Y)
	w := vp.Span(e.W)
	h := max(1, int(e.H/vp.FieldH*float64(vp.Area.H)+0.5))
	if vp.FieldH <= 0 {
		h = 1
	}
	for dy := 0; dy < h; dy++ {
		row := y + dy
		if vp.FlipY {
			row = y - dy
		}
		for dx := 0; dx < w; dx++ {
			if vp.Area.Contains(x+dx, row) {
				dst.SetColored(x+dx, row, r, c)
			}
		}
	}
}
