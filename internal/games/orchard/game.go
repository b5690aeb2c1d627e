// Package orchard implements the apple-tree guard. Apples ripen on the tree
// while birds fly in from either side; a tap shoos an approaching bird away.
// A bird that reaches the tree eats an apple. The round is won when every
// remaining apple is ripe and lost when none are left.
package orchard

import (
	"github.com/vovakirdan/kids-arcade/internal/config"
	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/games/base"
	"github.com/vovakirdan/kids-arcade/internal/registry"
)

// Bird modes.
const (
	modeApproach = "approach"
	modeEating   = "eating"
	modeFlee     = "flee"
)

// Lanes tell which side a bird came from.
const (
	laneLeft  = 0
	laneRight = 1
)

// Counter names.
const (
	counterApples = "apples"
	counterRipe   = "ripe"
	counterShoos  = "shoos"
)

const (
	fieldSize  = 100
	birdSize   = 6
	spawnRight = 108
	spawnLeft  = -8
	exitRight  = 112
	exitLeft   = -12
	appleSize  = 4
	fullRipe   = 100.0
)

// applePlaces are crown positions in field units.
var applePlaces = []engine.Vec{
	{X: 36, Y: 16}, {X: 46, Y: 12}, {X: 57, Y: 16},
	{X: 34, Y: 35}, {X: 46, Y: 38}, {X: 58, Y: 34},
}

// Game implements the orchard.
type Game struct {
	base.Game
	cfg    config.OrchardConfig
	tickMs int
}

// New creates a new orchard instance.
func New() *Game {
	return &Game{
		Game: base.New("orchard", "Apple Tree", "Keep the birds away until the apples are ripe"),
		cfg:  config.DefaultOrchard(),
	}
}

func init() {
	registry.Register("orchard", func() registry.Game {
		return New()
	})
}

// Reset loads the configuration and leaves the round idle.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadOrchard(rc.ConfigPath)
	if err != nil {
		g.Logger().Warn("using default config", "error", err)
	}
	cfg.ApplyPreset(base.Preset(rc))
	g.cfg = cfg
	g.tickMs = max(int(base.Interval(rc, cfg.TickMs).Milliseconds()), 1)

	g.Configure(rc, cfg.Common, engine.Config{
		Field: engine.Field{W: fieldSize, H: fieldSize, Margin: 20},
		Spawner: &engine.Spawner{
			Threshold: float64(cfg.BirdIntervalMs),
			Step:      float64(g.tickMs),
			Hazard:    g.buildBird,
			Ready:     func(w *engine.World) bool { return w.Store().Count(engine.KindHazard) == 0 },
		},
		Resolver: engine.Resolver{Disabled: true},
		Rules:    g.Rules(cfg.Rules, config.DefaultOrchard().Rules),
		Hooks: engine.Hooks{
			Setup:     g.setup,
			AfterMove: g.afterMove,
		},
	})
}

func (g *Game) setup(w *engine.World) {
	for i := 0; i < g.cfg.Apples; i++ {
		at := applePlaces[i%len(applePlaces)]
		apple := w.Spawn(engine.Entity{
			Kind:    engine.KindCollectible,
			Variant: "apple",
			Pos:     at,
			W:       appleSize,
			H:       appleSize,
		})
		apple.Scale = 0
	}
	w.Spawn(g.buildBird(w.Rand()))
	g.count(w)
}

// buildBird starts a bird on a random side, heading for the tree.
func (g *Game) buildBird(r engine.Random) engine.Entity {
	bird := engine.Entity{
		Kind:    engine.KindHazard,
		Variant: "bird",
		Mode:    modeApproach,
		W:       birdSize,
		H:       birdSize,
		Pos:     engine.Vec{Y: 20},
	}
	if r.Pick(2) == laneRight {
		bird.Lane = laneRight
		bird.Pos.X = spawnRight
		bird.Vel.X = -g.cfg.ApproachSpeed
	} else {
		bird.Lane = laneLeft
		bird.Pos.X = spawnLeft
		bird.Vel.X = g.cfg.ApproachSpeed
	}
	return bird
}

// afterMove runs the birds and ripens the apples. Birds have already moved
// by their velocity.
func (g *Game) afterMove(w *engine.World) {
	for _, bird := range w.Store().Alive(engine.KindHazard) {
		g.updateBird(w, bird)
	}
	for _, apple := range w.Store().Alive(engine.KindCollectible) {
		if ripeness(apple.Timer, g.cfg.RipenPerTick) < fullRipe {
			apple.Timer++
		}
		apple.Scale = ripeness(apple.Timer, g.cfg.RipenPerTick) / fullRipe
	}
	g.count(w)
}

func (g *Game) updateBird(w *engine.World, bird *engine.Entity) {
	away := 1.0
	if bird.Lane == laneLeft {
		away = -1
	}
	switch bird.Mode {
	case modeApproach:
		if w.Intent().Tap {
			bird.Mode = modeFlee
			bird.Vel.X = away * g.cfg.FleeSpeed
			w.AddCounter(counterShoos, 1)
			return
		}
		reached := bird.Pos.X >= g.cfg.ReachFromLeft
		if bird.Lane == laneRight {
			reached = bird.Pos.X <= g.cfg.ReachFromRight
		}
		if !reached {
			return
		}
		g.eatApple(w)
		bird.Mode = modeEating
		bird.Timer = g.cfg.EatTicks
		bird.Vel = engine.Vec{}
		bird.Pos.X = g.cfg.ReachFromLeft
		if bird.Lane == laneRight {
			bird.Pos.X = g.cfg.ReachFromRight
		}

	case modeEating:
		bird.Timer--
		if bird.Timer <= 0 {
			bird.Mode = modeFlee
			bird.Vel.X = away * g.cfg.FleeSpeed
		}

	case modeFlee:
		if bird.Pos.X > exitRight || bird.Pos.X < exitLeft {
			bird.Eliminated = true
		}
	}
}

func (g *Game) eatApple(w *engine.World) {
	living := w.Store().Alive(engine.KindCollectible)
	if len(living) == 0 {
		return
	}
	living[w.Rand().Pick(len(living))].Eliminated = true
}

// count refreshes the apple counters; the score is the apples still on
// the tree.
func (g *Game) count(w *engine.World) {
	apples, ripe := 0, 0
	for _, apple := range w.Store().Alive(engine.KindCollectible) {
		apples++
		if ripeness(apple.Timer, g.cfg.RipenPerTick) >= fullRipe {
			ripe++
		}
	}
	w.SetCounter(counterApples, apples)
	w.SetCounter(counterRipe, ripe)
	w.SetScore(apples)
}

func ripeness(ticks int, perTick float64) float64 {
	return min(float64(ticks)*perTick, fullRipe)
}

// Praise returns the cheer for the latest shoo, rotating through the
// configured words.
func (g *Game) Praise(shoos int) string {
	return base.Praise(g.cfg.Praise, shoos)
}
