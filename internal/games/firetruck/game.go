// Package firetruck implements the fire truck. Fires flare up on the houses
// of a small street and grow while they burn; moving the hose over a fire
// and tapping puts it out. A spot that went out can catch fire again after
// a while. The round is won once enough fires are out.
package firetruck

import (
	"github.com/vovakirdan/kids-arcade/internal/config"
	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/games/base"
	"github.com/vovakirdan/kids-arcade/internal/registry"
)

// Spot modes. Timer counts the ticks spent in the current mode.
const (
	spotIdle    = "idle"
	spotBurning = "burning"
	spotDousing = "dousing"
)

const (
	counterGoal    = "goal"
	counterBurning = "burning"
)

// MaxSize is the biggest a fire grows.
const MaxSize = 2

// Game implements the fire truck.
type Game struct {
	base.Game
	cfg  config.FiretruckConfig
	rows int
}

// New creates a new fire truck instance.
func New() *Game {
	g := &Game{
		Game: base.New("firetruck", "Fire Truck", "Spray water on the fires to put them out"),
		cfg:  config.DefaultFiretruck(),
	}
	g.layout()
	return g
}

func init() {
	registry.Register("firetruck", func() registry.Game {
		return New()
	})
}

func (g *Game) layout() {
	g.cfg.Columns = max(g.cfg.Columns, 1)
	g.cfg.Spots = max(g.cfg.Spots, 1)
	g.rows = (g.cfg.Spots + g.cfg.Columns - 1) / g.cfg.Columns
}

// Reset loads the configuration and leaves the round idle.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadFiretruck(rc.ConfigPath)
	if err != nil {
		g.Logger().Warn("using default config", "error", err)
	}
	cfg.MaxFires = min(max(cfg.MaxFires, 1), max(cfg.Spots, 1))
	g.cfg = cfg
	g.layout()

	g.Configure(rc, cfg.Common, engine.Config{
		Field: engine.Field{W: float64(g.cfg.Columns), H: float64(g.rows)},
		Player: engine.Entity{
			Variant: "hose",
			W:       1,
			H:       1,
			Active:  true,
		},
		Resolver: engine.Resolver{Disabled: true},
		Rules:    g.Rules(cfg.Rules, config.DefaultFiretruck().Rules),
		Hooks: engine.Hooks{
			Setup:     g.setup,
			AfterMove: g.afterMove,
		},
	})
}

// Step moves the hose at once and queues a spray for the tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.StepCursor(in)
}

// setup builds the street and lights the first fires.
func (g *Game) setup(w *engine.World) {
	spots := make([]*engine.Entity, 0, g.cfg.Spots)
	for i := 0; i < g.cfg.Spots; i++ {
		spots = append(spots, w.Spawn(engine.Entity{
			Kind:    engine.KindCollectible,
			Variant: "house",
			Mode:    spotIdle,
			Pos:     engine.Vec{X: float64(i % g.cfg.Columns), Y: float64(i / g.cfg.Columns)},
			W:       1,
			H:       1,
			Timer:   g.cfg.RespawnTicks,
		}))
	}
	w.Rand().Shuffle(len(spots), func(i, j int) { spots[i], spots[j] = spots[j], spots[i] })
	for _, s := range spots[:g.cfg.MaxFires] {
		ignite(s)
	}
	w.SetCounter(counterGoal, g.cfg.Goal)
	w.SetCounter(counterBurning, g.cfg.MaxFires)
}

func ignite(s *engine.Entity) {
	s.Mode = spotBurning
	s.Timer = 0
}

// afterMove sprays, ages every spot and relights one cooled-down spot when
// fewer than the allowed number of fires burn.
func (g *Game) afterMove(w *engine.World) {
	spots := w.Store().Alive(engine.KindCollectible)

	if w.Intent().Tap {
		for _, s := range spots {
			if s.Pos == w.Player().Pos && s.Mode == spotBurning {
				s.Mode = spotDousing
				s.Timer = 0
				w.AddScore(1)
			}
		}
	}

	burning := 0
	var ready []*engine.Entity
	for _, s := range spots {
		s.Timer++
		switch s.Mode {
		case spotDousing:
			if s.Timer >= g.cfg.DouseTicks {
				s.Mode = spotIdle
				s.Timer = 0
			}
		case spotBurning:
			burning++
		}
		if s.Mode == spotIdle && s.Timer >= g.cfg.RespawnTicks {
			ready = append(ready, s)
		}
	}
	if burning < g.cfg.MaxFires && len(ready) > 0 {
		ignite(ready[w.Rand().Pick(len(ready))])
		burning++
	}
	w.SetCounter(counterBurning, burning)
}

// Size returns how big a fire has grown after burning for ticks.
func Size(ticks, growTicks int) int {
	if growTicks <= 0 {
		return MaxSize
	}
	return min(ticks/growTicks, MaxSize)
}
