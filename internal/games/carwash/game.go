// Package carwash implements the car wash. A dirty car rolls in; the player
// scrubs every spot of dirt with the sponge and the clean car drives off
// before the next one arrives.
package carwash

import (
	"github.com/vovakirdan/kids-arcade/internal/config"
	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/games/base"
	"github.com/vovakirdan/kids-arcade/internal/registry"
)

// Counter names. depart counts down while a clean car drives away.
const (
	counterCar    = "car"
	counterCars   = "cars"
	counterDepart = "depart"
)

// Game implements the car wash.
type Game struct {
	base.Game
	cfg         config.CarwashConfig
	departTicks int
}

// New creates a new car wash instance.
func New() *Game {
	return &Game{
		Game: base.New("carwash", "Car Wash", "Scrub off all the dirt"),
		cfg:  config.DefaultCarwash(),
	}
}

func init() {
	registry.Register("carwash", func() registry.Game {
		return New()
	})
}

// Reset loads the configuration and leaves the round idle.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadCarwash(rc.ConfigPath)
	if err != nil {
		g.Logger().Warn("using default config", "error", err)
	}
	if len(cfg.Layouts) == 0 {
		cfg.Layouts = config.DefaultCarwash().Layouts
	}
	if len(cfg.Colors) == 0 {
		cfg.Colors = config.DefaultCarwash().Colors
	}
	cfg.Columns = max(cfg.Columns, 1)
	cfg.Rows = max(cfg.Rows, 1)
	g.cfg = cfg

	g.Configure(rc, cfg.Common, engine.Config{
		Field: engine.Field{W: float64(cfg.Columns), H: float64(cfg.Rows)},
		Player: engine.Entity{
			Variant: "sponge",
			W:       1,
			H:       1,
			Active:  true,
		},
		Resolver: engine.Resolver{Disabled: true},
		Rules:    g.Rules(cfg.Rules, config.DefaultCarwash().Rules),
		Hooks: engine.Hooks{
			Setup:     g.setup,
			AfterMove: g.afterMove,
		},
	})
	tickMs := max(int(g.TickInterval().Milliseconds()), 1)
	g.departTicks = max(cfg.DepartMs/tickMs, 1)
}

// Step moves the sponge at once and queues a scrub for the tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.StepCursor(in)
}

func (g *Game) setup(w *engine.World) {
	w.SetCounter(counterCars, g.cfg.Cars)
	w.SetCounter(counterCar, 0)
	g.nextCar(w)
}

// nextCar rolls in the next car with its dirt.
func (g *Game) nextCar(w *engine.World) {
	car := w.AddCounter(counterCar, 1)
	layout := g.cfg.Layouts[(car-1)%len(g.cfg.Layouts)]
	for _, c := range layout {
		if c[0] < 0 || c[0] >= g.cfg.Columns || c[1] < 0 || c[1] >= g.cfg.Rows {
			continue
		}
		w.Spawn(engine.Entity{
			Kind:    engine.KindCollectible,
			Variant: "dirt",
			Pos:     engine.Vec{X: float64(c[0]), Y: float64(c[1])},
			W:       1,
			H:       1,
		})
	}
}

// afterMove scrubs the spot under the sponge and sends the car off once
// nothing is left. While a car departs, scrubbing waits.
func (g *Game) afterMove(w *engine.World) {
	if left := w.Counter(counterDepart); left > 0 {
		left--
		w.SetCounter(counterDepart, left)
		if left == 0 {
			w.AddScore(1)
			if w.Score() < g.cfg.Cars {
				g.nextCar(w)
			}
		}
		return
	}
	if !w.Intent().Tap {
		return
	}
	for _, e := range w.Store().Alive(engine.KindCollectible) {
		if e.Pos == w.Player().Pos {
			e.Collected = true
		}
	}
	if w.Store().Count(engine.KindCollectible) == 0 {
		w.SetCounter(counterDepart, g.departTicks)
	}
}

// Color returns the paint of the given car, counting from one.
func (g *Game) Color(car int) string {
	return g.cfg.Colors[max(car-1, 0)%len(g.cfg.Colors)]
}
