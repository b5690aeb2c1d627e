package quiz

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/games/base"
)

const choiceW = 14

// Render draws the clue, the shadow of the answer and the choice board.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Session().Snapshot()
	extra := fmt.Sprintf("Round %d/%d", snap.Counters[counterRound], snap.Counters[counterRounds])
	base.DrawHUD(dst, g.Title(), snap, extra)

	answer, solved := "", false
	for _, e := range snap.Entities {
		if e.ID == snap.Counters[counterAnswer] {
			answer, solved = e.Variant, e.Mode == choiceRight
		}
	}
	ox, oy := base.GridView(dst, columns, g.rows()*2, choiceW)
	if answer != "" {
		dst.DrawTextCentered(oy-5, "Who is it? It "+g.Clue(answer)+".", core.ColorCyan)
		shadow, c := Shadow(answer), core.ColorGray
		if solved {
			shadow, c = strings.ToUpper(answer)+"!", core.ColorGreen
		}
		dst.DrawTextCentered(oy-3, shadow, c)
	}
	for _, e := range snap.Entities {
		c := core.ColorWhite
		switch e.Mode {
		case choiceWrong:
			c = core.ColorGray
		case choiceRight:
			c = core.ColorGreen
		}
		x := ox + int(e.X)*choiceW
		y := oy + int(e.Y)*2
		dst.DrawTextColored(x+1+(choiceW-2-len(e.Variant))/2, y, e.Variant, c)
	}
	if p := snap.Player; p != nil && snap.Phase == engine.PhasePlaying {
		x := ox + int(p.X)*choiceW
		y := oy + int(p.Y)*2
		dst.SetColored(x, y, '[', core.ColorYellow)
		dst.SetColored(x+choiceW-1, y, ']', core.ColorYellow)
	}
}

// Shadow hides a name but its first letter: "owl" becomes "O _ _".
func Shadow(name string) string {
	runes := []rune(strings.ToUpper(name))
	if len(runes) == 0 {
		return ""
	}
	parts := []string{string(runes[0])}
	for range runes[1:] {
		parts = append(parts, "_")
	}
	return strings.Join(parts, " ")
}
