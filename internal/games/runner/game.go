// Package runner implements the auto-runner: the kid runs on its own, taps
// jump over boulders and moles, and every ball caught is a point. The world
// scrolls faster the longer the round lasts.
package runner

import (
	"math"

	"github.com/vovakirdan/kids-arcade/internal/config"
	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/games/base"
	"github.com/vovakirdan/kids-arcade/internal/registry"
)

// Visual characters for rendering
const (
	KidChar     = '@'
	BoulderChar = 'O'
	MoleChar    = 'M'
	BallChar    = 'o'
	GroundChar  = '═'
)

// Game implements the auto-runner.
type Game struct {
	base.Game
	cfg config.RunnerConfig
}

// New creates a new runner instance.
func New() *Game {
	return &Game{
		Game: base.New("runner", "Ball Runner", "Jump the rocks, catch the balls"),
		cfg:  config.DefaultRunner(),
	}
}

func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}

// Reset loads the configuration and leaves the round idle.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadRunner(rc.ConfigPath)
	if err != nil {
		g.Logger().Warn("using default config", "error", err)
	}
	cfg.ApplyPreset(base.Preset(rc))
	g.cfg = cfg
	g.Configure(rc, cfg.Common, g.engineConfig())
}

// engineConfig translates the YAML config into the engine's terms.
func (g *Game) engineConfig() engine.Config {
	cfg := g.cfg
	return engine.Config{
		Field: engine.Field{W: cfg.Field.Width, H: cfg.Field.Height, Margin: cfg.Field.Margin},
		Player: engine.Entity{
			Variant: "kid",
			Pos:     engine.Vec{X: cfg.Player.X},
			W:       cfg.Player.Width,
			H:       cfg.Player.Height,
			Active:  true,
		},
		Motion: engine.GravityMotion{Gravity: cfg.Physics.Gravity, JumpImpulse: cfg.Physics.JumpImpulse},
		Scroll: true,
		Ramp:   engine.Ramp{Initial: cfg.Ramp.Initial, Max: cfg.Ramp.Max, PerTick: cfg.Ramp.PerTick},
		Spawner: &engine.Spawner{
			Threshold:    cfg.Spawn.Threshold,
			HazardWeight: cfg.Spawn.HazardWeight,
			Edges:        []float64{cfg.Spawn.Edge},
			HazardLanes:  cfg.Spawn.HazardLanes,
			CollectLanes: cfg.Spawn.CollectLanes,
			Hazard:       g.buildHazard,
			Collectible:  g.buildBall,
		},
		Resolver: engine.Resolver{
			HazardShrink:  cfg.Collision.HazardShrink,
			CollectShrink: cfg.Collision.CollectShrink,
			Reward:        cfg.Collectible.Reward,
		},
		Rules: g.Rules(cfg.Rules, config.DefaultRunner().Rules),
	}
}

// buildHazard picks an obstacle variant and a random size around its base.
func (g *Game) buildHazard(r engine.Random) engine.Entity {
	hazards := g.cfg.Hazards
	if len(hazards) == 0 {
		hazards = config.DefaultRunner().Hazards
	}
	h := hazards[r.Pick(len(hazards))]
	lo, hi := g.cfg.Spawn.ScaleMin, g.cfg.Spawn.ScaleMax
	if hi < lo {
		hi = lo
	}
	scale := lo + r.Float64()*(hi-lo)
	if scale <= 0 {
		scale = 1
	}
	size := math.Round(h.Size * scale)
	return engine.Entity{Variant: h.Variant, W: size, H: size, Scale: scale}
}

func (g *Game) buildBall(engine.Random) engine.Entity {
	c := g.cfg.Collectible
	return engine.Entity{Variant: c.Variant, W: c.Width, H: c.Height, Reward: c.Reward}
}

// Render draws the runner, obstacles and balls above the ground line.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Session().Snapshot()
	base.DrawHUD(dst, g.Title(), snap, "")

	vp := base.FieldView(dst, g.cfg.Field.Width, g.cfg.Field.Height, true)
	dst.DrawHLine(vp.Area.X, vp.Area.Bottom(), vp.Area.W, GroundChar, core.ColorBrown)

	for _, e := range snap.Entities {
		r, c := BallChar, core.ColorRed
		if e.Kind == engine.KindHazard {
			r, c = BoulderChar, core.ColorGray
			if e.Variant == "mole" {
				r, c = MoleChar, core.ColorBrown
			}
		}
		base.DrawEntity(dst, vp, e, r, c)
	}
	if snap.Player != nil {
		base.DrawEntity(dst, vp, *snap.Player, KidChar, core.ColorGreen)
	}
}
