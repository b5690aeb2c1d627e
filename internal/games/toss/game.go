// Package toss implements the ball toss. A tap starts the power swing and
// a second tap lets go; a throw that lands in the sweet spot catches the
// animal. Each animal allows a few tries, and the score is how many were
// caught.
package toss

import (
	"math"

	"github.com/vovakirdan/kids-arcade/internal/config"
	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/games/base"
	"github.com/vovakirdan/kids-arcade/internal/registry"
)

// Stages of a throw, kept in the ball's Mode.
const (
	stageAim    = "aim"
	stageCharge = "charge"
	stageThrow  = "throw"
	stageShake  = "shake"
	stagePause  = "pause"
)

// Target modes.
const (
	targetWaiting = "waiting"
	targetShaking = "shaking"
	targetFled    = "fled"
)

// Counter names. miss tells how the last throw went wrong.
const (
	counterRound    = "round"
	counterRounds   = "rounds"
	counterAttempts = "attempts"
	counterPower    = "power"
	counterSweet    = "sweet"
	counterMiss     = "miss"
	counterFinished = "finished"
)

const (
	missNone = iota
	missShort
	missFar
)

const (
	fieldWidth  = 100
	fieldHeight = 20
	arcPeak     = 12
	maxPower    = 100
)

// Game implements the ball toss.
type Game struct {
	base.Game
	cfg    config.TossConfig
	tickMs int
	lineup []string
}

// New creates a new toss instance.
func New() *Game {
	return &Game{
		Game: base.New("toss", "Ball Toss", "Let go in the sweet spot to catch the animals"),
		cfg:  config.DefaultToss(),
	}
}

func init() {
	registry.Register("toss", func() registry.Game {
		return New()
	})
}

// Reset loads the configuration and leaves the round idle.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadToss(rc.ConfigPath)
	if err != nil {
		g.Logger().Warn("using default config", "error", err)
	}
	if len(cfg.Targets) == 0 {
		cfg.Targets = config.DefaultToss().Targets
	}
	g.cfg = cfg

	g.Configure(rc, cfg.Common, engine.Config{
		Field: engine.Field{W: fieldWidth, H: fieldHeight},
		Player: engine.Entity{
			Variant: "ball",
			Mode:    stageAim,
			W:       1,
			H:       1,
			Active:  true,
		},
		Motion:   engine.MotionFunc(g.update),
		Resolver: engine.Resolver{Disabled: true},
		Rules:    g.Rules(cfg.Rules, config.DefaultToss().Rules),
		Hooks:    engine.Hooks{Setup: g.setup},
	})
	g.tickMs = max(int(g.TickInterval().Milliseconds()), 1)
}

// Power is the swing after elapsedMs of charging: it climbs from 0 to 100
// over the first half of a cycle and falls back over the second.
func Power(elapsedMs, cycleMs int) int {
	if cycleMs <= 0 || elapsedMs < 0 {
		return 0
	}
	t := float64(elapsedMs%cycleMs) / float64(cycleMs)
	if t > 0.5 {
		t = 1 - t
	}
	return int(math.Round(t * 2 * maxPower))
}

// setup shuffles the lineup and sends out the first animal.
func (g *Game) setup(w *engine.World) {
	g.lineup = append(g.lineup[:0], g.cfg.Targets...)
	w.Rand().Shuffle(len(g.lineup), func(i, j int) {
		g.lineup[i], g.lineup[j] = g.lineup[j], g.lineup[i]
	})
	w.SetCounter(counterRounds, g.cfg.Rounds)
	w.SetCounter(counterRound, 0)
	g.nextRound(w, w.Player())
}

// nextRound resets the ball and brings out a new animal at a random
// distance, or finishes once every round is played.
func (g *Game) nextRound(w *engine.World, ball *engine.Entity) {
	for _, e := range w.Store().Alive(engine.KindCollectible) {
		e.Eliminated = true
	}
	g.readyBall(ball)
	w.SetCounter(counterMiss, missNone)
	w.SetCounter(counterPower, 0)

	round := w.AddCounter(counterRound, 1)
	if round > g.cfg.Rounds {
		w.SetCounter(counterRound, g.cfg.Rounds)
		w.SetCounter(counterFinished, 1)
		return
	}
	w.SetCounter(counterAttempts, g.cfg.Attempts)

	distance := g.cfg.Near + w.Rand().Float64()*(g.cfg.Far-g.cfg.Near)
	sweet := int(distance*70 + 10)
	w.SetCounter(counterSweet, sweet)
	w.Spawn(engine.Entity{
		Kind:    engine.KindCollectible,
		Variant: g.lineup[(round-1)%len(g.lineup)],
		Mode:    targetWaiting,
		Pos:     engine.Vec{X: float64(sweet)},
		W:       1,
		H:       1,
		Scale:   distance,
		Reward:  1,
	})
}

func (g *Game) readyBall(ball *engine.Entity) {
	ball.Mode = stageAim
	ball.Timer = 0
	ball.Pos = engine.Vec{}
}

// update drives the throw from the ball's stage. The swing value lives in
// the power counter so it survives between ticks and shows in snapshots.
func (g *Game) update(w *engine.World, ball *engine.Entity) {
	ball.Timer++
	elapsed := ball.Timer * g.tickMs

	switch ball.Mode {
	case stageAim:
		if w.Intent().Tap {
			ball.Mode = stageCharge
			ball.Timer = 0
			w.SetCounter(counterMiss, missNone)
			w.SetCounter(counterPower, 0)
		}

	case stageCharge:
		w.SetCounter(counterPower, Power(elapsed, g.cfg.CycleMs))
		if w.Intent().Tap {
			ball.Mode = stageThrow
			ball.Timer = 0
		}

	case stageThrow:
		flight := max(g.cfg.ThrowMs, 1)
		t := min(float64(elapsed)/float64(flight), 1)
		ball.Pos.X = float64(w.Counter(counterPower)) * t
		ball.Pos.Y = arcPeak * 4 * t * (1 - t)
		if elapsed >= flight {
			g.land(w, ball)
		}

	case stageShake:
		if elapsed < g.cfg.ShakeMs {
			return
		}
		if target := g.target(w); target != nil {
			target.Collected = true
			w.AddScore(target.Reward)
		}
		ball.Mode = stagePause
		ball.Timer = 0

	case stagePause:
		if elapsed >= g.cfg.PauseMs {
			g.nextRound(w, ball)
		}
	}
}

// land settles a throw: inside the sweet spot the animal is caught after a
// shake, otherwise a try is used up.
func (g *Game) land(w *engine.World, ball *engine.Entity) {
	ball.Pos.Y = 0
	ball.Timer = 0
	target := g.target(w)

	diff := w.Counter(counterPower) - w.Counter(counterSweet)
	if diff >= -g.cfg.SweetHalf && diff <= g.cfg.SweetHalf {
		ball.Mode = stageShake
		if target != nil {
			target.Mode = targetShaking
		}
		return
	}

	if diff < 0 {
		w.SetCounter(counterMiss, missShort)
	} else {
		w.SetCounter(counterMiss, missFar)
	}
	if w.AddCounter(counterAttempts, -1) > 0 {
		ball.Mode = stageAim
		ball.Pos = engine.Vec{}
		return
	}
	if target != nil {
		target.Mode = targetFled
	}
	ball.Mode = stagePause
}

func (g *Game) target(w *engine.World) *engine.Entity {
	if alive := w.Store().Alive(engine.KindCollectible); len(alive) > 0 {
		return alive[0]
	}
	return nil
}
