// Package tractor implements the harvest. Crops grow on random squares of a
// small field; the tractor drives one square per press and harvests any crop
// it rolls over. The round is won when the field is bare.
package tractor

import (
	"github.com/vovakirdan/kids-arcade/internal/config"
	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/games/base"
	"github.com/vovakirdan/kids-arcade/internal/registry"
)

const counterCrops = "crops"

// Game implements the harvest.
type Game struct {
	base.Game
	cfg config.TractorConfig
}

// New creates a new tractor instance.
func New() *Game {
	return &Game{
		Game: base.New("tractor", "Tractor", "Drive over every crop to bring in the harvest"),
		cfg:  config.DefaultTractor(),
	}
}

func init() {
	registry.Register("tractor", func() registry.Game {
		return New()
	})
}

// Reset loads the configuration and leaves the round idle.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadTractor(rc.ConfigPath)
	if err != nil {
		g.Logger().Warn("using default config", "error", err)
	}
	cfg.Grid = max(cfg.Grid, 2)
	cfg.Crops = min(max(cfg.Crops, 1), cfg.Grid*cfg.Grid-1)
	g.cfg = cfg

	size := float64(cfg.Grid)
	g.Configure(rc, cfg.Common, engine.Config{
		Field: engine.Field{W: size, H: size},
		Player: engine.Entity{
			Variant: "tractor",
			Pos:     engine.Vec{X: float64(cfg.Start[0]), Y: float64(cfg.Start[1])},
			W:       1,
			H:       1,
			Active:  true,
		},
		Resolver: engine.Resolver{Reward: 1},
		Rules:    g.Rules(cfg.Rules, config.DefaultTractor().Rules),
		Hooks:    engine.Hooks{Setup: g.plant},
	})
}

// Step drives one square at once; the harvest happens on the tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.StepCursor(in)
}

// plant sows crops on distinct random squares, never under the tractor.
func (g *Game) plant(w *engine.World) {
	start := w.Player().Pos
	var cells []engine.Vec
	for y := 0; y < g.cfg.Grid; y++ {
		for x := 0; x < g.cfg.Grid; x++ {
			if c := (engine.Vec{X: float64(x), Y: float64(y)}); c != start {
				cells = append(cells, c)
			}
		}
	}
	w.Rand().Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
	for _, at := range cells[:g.cfg.Crops] {
		w.Spawn(engine.Entity{
			Kind:    engine.KindCollectible,
			Variant: "crop",
			Pos:     at,
			W:       1,
			H:       1,
		})
	}
	w.SetCounter(counterCrops, g.cfg.Crops)
}
