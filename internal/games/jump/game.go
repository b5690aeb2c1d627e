// Package jump implements the tap-to-charge jump. Taps during the charge
// window build power; when time runs out the fish leaps, and the height it
// reaches is the score.
package jump

import (
	"fmt"
	"math"

	"github.com/vovakirdan/kids-arcade/internal/config"
	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/games/base"
	"github.com/vovakirdan/kids-arcade/internal/registry"
)

// Stages of a round, kept in the fish's Mode.
const (
	stageCharge = "charge"
	stageFlight = "flight"
)

// Counter names.
const (
	counterTaps     = "taps"
	counterHeight   = "height"
	counterLanded   = "landed"
	counterTimeLeft = "time_left_ms"
)

const fieldHeight = 60

// Milestones are the heights marked on the sky.
var Milestones = []int{10, 20, 30, 40}

// Visual characters for rendering
const (
	FishChar  = '>'
	WaterChar = '~'
	MarkChar  = '-'
)

// Game implements the jump.
type Game struct {
	base.Game
	cfg    config.JumpConfig
	tickMs int
}

// New creates a new jump instance.
func New() *Game {
	return &Game{
		Game: base.New("jump", "Fish Jump", "Tap fast, then watch the fish fly"),
		cfg:  config.DefaultJump(),
	}
}

func init() {
	registry.Register("jump", func() registry.Game {
		return New()
	})
}

// Reset loads the configuration and leaves the round idle.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadJump(rc.ConfigPath)
	if err != nil {
		g.Logger().Warn("using default config", "error", err)
	}
	g.cfg = cfg

	g.Configure(rc, cfg.Common, engine.Config{
		Field: engine.Field{W: 10, H: fieldHeight},
		Player: engine.Entity{
			Variant: "fish",
			Mode:    stageCharge,
			Pos:     engine.Vec{X: 4},
			W:       2,
			H:       1,
			Active:  true,
		},
		Motion: engine.MotionFunc(g.update),
		Rules:  g.Rules(cfg.Rules, config.DefaultJump().Rules),
		Hooks: engine.Hooks{
			Setup: func(w *engine.World) {
				w.SetCounter(counterTimeLeft, g.cfg.ChargeMs)
			},
		},
	})
	g.tickMs = max(int(g.TickInterval().Milliseconds()), 1)
}

// update counts taps while charging, then flies the fish along an arc
// and lands it after the flight time.
func (g *Game) update(w *engine.World, fish *engine.Entity) {
	fish.Timer++
	elapsed := fish.Timer * g.tickMs

	switch fish.Mode {
	case stageCharge:
		if w.Intent().Tap {
			w.AddCounter(counterTaps, 1)
		}
		w.SetCounter(counterTimeLeft, max(g.cfg.ChargeMs-elapsed, 0))
		if elapsed < g.cfg.ChargeMs {
			return
		}
		taps := float64(w.Counter(counterTaps))
		height := int(math.Floor(taps*g.cfg.TapHeight + w.Rand().Float64()*g.cfg.RandomHeight))
		w.SetCounter(counterHeight, height)
		fish.Mode = stageFlight
		fish.Timer = 0

	case stageFlight:
		flight := max(g.cfg.FlightMs, 1)
		t := min(float64(elapsed)/float64(flight), 1)
		// up and back down: peak at the middle of the flight
		fish.Pos.Y = float64(w.Counter(counterHeight)) * 4 * t * (1 - t)
		if elapsed < flight {
			return
		}
		fish.Pos.Y = 0
		w.SetScore(w.Counter(counterHeight))
		w.SetCounter(counterLanded, 1)
	}
}

// Render draws the sky, the height marks and the fish.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Session().Snapshot()
	extra := ""
	if snap.Player != nil && snap.Player.Mode == stageCharge && snap.Phase == engine.PhasePlaying {
		extra = fmt.Sprintf("Taps: %d  Time: %.1fs", snap.Counters[counterTaps], float64(snap.Counters[counterTimeLeft])/1000)
	} else if h, ok := snap.Counters[counterHeight]; ok {
		extra = fmt.Sprintf("Height: %d", h)
	}
	base.DrawHUD(dst, g.Title(), snap, extra)

	vp := base.FieldView(dst, 10, fieldHeight, true)
	dst.DrawHLine(vp.Area.X, vp.Area.Bottom()-1, vp.Area.W, WaterChar, core.ColorBlue)
	for _, m := range Milestones {
		_, y := vp.Cell(0, float64(m))
		dst.DrawHLine(vp.Area.X, y, 3, MarkChar, core.ColorGray)
		dst.DrawTextColored(vp.Area.X+4, y, fmt.Sprintf("%d", m), core.ColorGray)
	}
	if snap.Player != nil {
		x, y := vp.Cell(snap.Player.X, snap.Player.Y)
		y = min(y, vp.Area.Bottom()-2)
		dst.SetColored(x, y, FishChar, core.ColorOrange)
	}
}
