// Package base holds what every mini-game shares: metadata, the session,
// the star scale, input steering and the HUD.
package base

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kids-arcade/internal/config"
	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/scores"
)

// Game is embedded by every mini-game. The session is created once, so
// callbacks registered on it survive Reset.
type Game struct {
	id          string
	title       string
	description string

	session  *engine.Session
	scale    scores.StarScale
	interval time.Duration
	logger   *log.Logger
}

// New returns an unconfigured game with an idle session.
func New(id, title, description string) Game {
	return Game{
		id:          id,
		title:       title,
		description: description,
		session:     engine.NewSession(engine.Config{}),
		interval:    50 * time.Millisecond,
		logger:      log.Default().WithPrefix(id),
	}
}

func (g *Game) ID() string                  { return g.id }
func (g *Game) Title() string               { return g.title }
func (g *Game) Description() string         { return g.description }
func (g *Game) TickInterval() time.Duration { return g.interval }
func (g *Game) Scale() scores.StarScale     { return g.scale }
func (g *Game) Session() *engine.Session    { return g.session }
func (g *Game) Logger() *log.Logger         { return g.logger }

// Configure applies a loaded configuration: tick interval, star scale and
// the engine setup. The session is left idle and reseeded.
func (g *Game) Configure(rc core.RuntimeConfig, common config.Common, ec engine.Config) {
	g.interval = Interval(rc, common.TickMs)
	g.scale = common.Stars
	ec.Seed = rc.Seed
	g.session.Configure(ec)
}

// Interval returns the tick interval: the runtime override when set,
// otherwise the game's own cadence.
func Interval(rc core.RuntimeConfig, tickMs int) time.Duration {
	if rc.TickRate > 0 {
		return time.Second / time.Duration(rc.TickRate)
	}
	if tickMs <= 0 {
		tickMs = 50
	}
	return time.Duration(tickMs) * time.Millisecond
}

// Preset returns the difficulty preset named in the runtime config.
// Unknown names fall back to normal.
func Preset(rc core.RuntimeConfig) config.DifficultyPreset {
	p, _ := config.ParsePreset(rc.Preset)
	return p
}

// Rules compiles the configured win/loss expressions. A broken expression
// is logged and replaced by the built-in one.
func (g *Game) Rules(custom, builtin config.RulesConfig) engine.Rules {
	rules, err := engine.CompileRules(custom.Won, custom.Lost)
	if err == nil {
		return rules
	}
	g.logger.Warn("invalid rules, using defaults", "error", err)
	rules, err = engine.CompileRules(builtin.Won, builtin.Lost)
	if err != nil {
		g.logger.Error("built-in rules do not compile", "error", err)
		return engine.Rules{}
	}
	return rules
}

// Direction returns the direction requested by a frame, or DirNone.
func Direction(in core.InputFrame) engine.Dir {
	switch {
	case in.Has(core.ActionUp):
		return engine.DirUp
	case in.Has(core.ActionDown):
		return engine.DirDown
	case in.Has(core.ActionLeft):
		return engine.DirLeft
	case in.Has(core.ActionRight):
		return engine.DirRight
	default:
		return engine.DirNone
	}
}

// Steer turns a frame into session intents.
func (g *Game) Steer(in core.InputFrame) {
	if d := Direction(in); d != engine.DirNone {
		g.session.SetDirection(d)
	}
	if in.Has(core.ActionTap) {
		g.session.Tap()
	}
}

// Step steers and ticks. Games with special input override it.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.Steer(in)
	return Result(g.session.Tick())
}

// StepCursor is Step for board games: a direction moves the player one
// cell at once, clamped to the field, and a tap is queued for the tick.
func (g *Game) StepCursor(in core.InputFrame) core.StepResult {
	if d := Direction(in); d != engine.DirNone {
		g.session.Do(func(w *engine.World) {
			dx, dy := d.Delta()
			p := w.Player()
			p.Pos.X += float64(dx)
			p.Pos.Y += float64(dy)
			w.Field().Clamp(p)
		})
	}
	if in.Has(core.ActionTap) {
		g.session.Tap()
	}
	return Result(g.session.Tick())
}

// Praise picks the cheer for the n-th success, rotating through words.
// It is empty before the first success.
func Praise(words []string, n int) string {
	if n <= 0 || len(words) == 0 {
		return ""
	}
	return words[(n-1)%len(words)]
}

// State returns the current score and phase.
func (g *Game) State() core.GameState {
	return stateOf(g.session.Snapshot())
}

// Result wraps a snapshot as a step result.
func Result(snap engine.Snapshot) core.StepResult {
	return core.StepResult{State: stateOf(snap)}
}

func stateOf(snap engine.Snapshot) core.GameState {
	return core.GameState{Score: snap.Score, Phase: string(snap.Phase)}
}
