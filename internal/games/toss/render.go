package toss

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/games/base"
)

// Visual characters for rendering
const (
	BallChar   = 'o'
	TargetChar = '&'
	GrassChar  = '"'
	BarFull    = '#'
	BarEmpty   = '.'
	SweetChar  = '^'
)

const barWidth = 50

// Render draws the meadow, the animal, the ball and the power bar.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Session().Snapshot()
	extra := fmt.Sprintf("Animal %d/%d  Tries: %d",
		snap.Counters[counterRound], snap.Counters[counterRounds], snap.Counters[counterAttempts])
	base.DrawHUD(dst, g.Title(), snap, extra)

	vp := base.FieldView(dst, fieldWidth, fieldHeight, true)
	ground := vp.Area.Bottom() - 3
	dst.DrawHLine(vp.Area.X, ground+1, vp.Area.W, GrassChar, core.ColorGreen)

	for _, e := range snap.Entities {
		x, _ := vp.Cell(e.X, 0)
		c := core.ColorBrown
		if e.Mode == targetShaking {
			c = core.ColorYellow
		}
		dst.SetColored(x, ground, TargetChar, c)
		dst.DrawTextColored(max(x-len(e.Variant)/2, vp.Area.X), ground-1, e.Variant, c)
	}
	if p := snap.Player; p != nil {
		x, y := vp.Cell(p.X, p.Y)
		dst.SetColored(x, min(y, ground), BallChar, core.ColorRed)
	}

	g.drawBar(dst, vp.Area, snap)
	if msg := Message(snap); msg != "" {
		dst.DrawTextCentered(vp.Area.Y+1, msg, core.ColorYellow)
	}
}

// drawBar shows the swing and marks the sweet spot under it.
func (g *Game) drawBar(dst *core.Screen, area core.Rect, snap engine.Snapshot) {
	w := min(barWidth, area.W-2)
	if w <= 0 {
		return
	}
	x := area.X + (area.W-w)/2
	y := area.Bottom() - 1
	filled := snap.Counters[counterPower] * w / maxPower
	dst.DrawTextColored(x, y, strings.Repeat(string(BarFull), filled), core.ColorOrange)
	dst.DrawTextColored(x+filled, y, strings.Repeat(string(BarEmpty), w-filled), core.ColorGray)
	sweet := min(snap.Counters[counterSweet]*w/maxPower, w-1)
	dst.SetColored(x+sweet, y-1, SweetChar, core.ColorGreen)
}

// Message is the line shown over the meadow for the current stage.
func Message(snap engine.Snapshot) string {
	if snap.Player == nil || snap.Phase != engine.PhasePlaying {
		return ""
	}
	switch snap.Player.Mode {
	case stageAim:
		switch snap.Counters[counterMiss] {
		case missShort:
			return "Too short! Try again"
		case missFar:
			return "Too far! Try again"
		}
		return "Press space to swing"
	case stageCharge:
		return "Press space to throw!"
	case stageShake:
		return "Wiggle... wiggle..."
	case stagePause:
		if snap.Count(engine.KindCollectible) == 0 {
			return "Caught!"
		}
		return "It ran away!"
	}
	return ""
}
