// Package snake implements the grid snake. Each fruit is a point and makes
// the snake one segment longer; the snake speeds up as the score grows.
// Running into a wall or into its own body ends the round.
package snake

import (
	"github.com/vovakirdan/kids-arcade/internal/config"
	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/games/base"
	"github.com/vovakirdan/kids-arcade/internal/registry"
)

const (
	variantBody = "body"
	variantFood = "food"
)

// Visual characters for rendering
const (
	HeadChar = '●'
	BodyChar = 'o'
	FoodChar = '♦'
)

// Game implements the snake.
type Game struct {
	base.Game
	cfg config.SnakeConfig

	// Per-round state, reset by setup.
	heading engine.Dir
	body    []*engine.Entity // segments after the head, nearest first
	grow    int
	elapsed int
	tickMs  int
}

// New creates a new snake instance.
func New() *Game {
	return &Game{
		Game: base.New("snake", "Snake", "Eat fruit, grow long, don't bite yourself"),
		cfg:  config.DefaultSnake(),
	}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// Reset loads the configuration and leaves the round idle.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadSnake(rc.ConfigPath)
	if err != nil {
		g.Logger().Warn("using default config", "error", err)
	}
	if cfg.Grid <= 0 {
		cfg.Grid = config.DefaultSnake().Grid
	}
	cfg.ApplyPreset(base.Preset(rc))
	g.cfg = cfg

	size := float64(cfg.Grid)
	g.Configure(rc, cfg.Common, engine.Config{
		Field: engine.Field{W: size, H: size, Margin: 1},
		Player: engine.Entity{
			Variant: "head",
			Pos:     engine.Vec{X: float64(cfg.Start[0]), Y: float64(cfg.Start[1])},
			W:       1,
			H:       1,
			Active:  true,
		},
		Motion:   engine.MotionFunc(g.move),
		Resolver: engine.Resolver{Reward: cfg.FoodReward},
		Rules:    g.Rules(cfg.Rules, config.DefaultSnake().Rules),
		Hooks: engine.Hooks{
			Setup:        g.setup,
			AfterCollide: g.afterCollide,
		},
	})
	g.tickMs = max(int(g.TickInterval().Milliseconds()), 1)
}

func (g *Game) setup(w *engine.World) {
	g.heading = engine.DirUp
	g.body = nil
	g.grow = 0
	g.elapsed = 0

	w.Spawn(engine.Entity{
		Kind:    engine.KindCollectible,
		Variant: variantFood,
		Pos:     engine.Vec{X: float64(g.cfg.Food[0]), Y: float64(g.cfg.Food[1])},
		W:       1,
		H:       1,
	})
	w.SetCounter("cells", g.cfg.Grid*g.cfg.Grid)
	w.SetCounter("length", 1)
}

// Interval returns the step interval in milliseconds at a given score.
func (g *Game) Interval(score int) int {
	c := g.cfg
	return c.BaseIntervalMs - min(c.IntervalStepMs*score, c.BaseIntervalMs-c.MinIntervalMs)
}

// move advances the snake one cell whenever its interval has elapsed.
// A requested reversal is ignored.
func (g *Game) move(w *engine.World, head *engine.Entity) {
	g.elapsed += g.tickMs
	if g.elapsed < g.Interval(w.Score()) {
		return
	}
	g.elapsed = 0

	if want := w.Intent().Dir; want != engine.DirNone && want != g.heading.Opposite() {
		g.heading = want
	}
	dx, dy := g.heading.Delta()
	next := engine.Vec{X: head.Pos.X + float64(dx), Y: head.Pos.Y + float64(dy)}
	n := float64(g.cfg.Grid)
	if next.X < 0 || next.Y < 0 || next.X >= n || next.Y >= n {
		w.End(engine.PhaseGameOver, "wall")
		return
	}

	prev := head.Pos
	head.Pos = next
	for _, seg := range g.body {
		seg.Pos, prev = prev, seg.Pos
	}
	if g.grow > 0 {
		g.grow--
		g.body = append(g.body, w.Spawn(engine.Entity{
			Kind:    engine.KindHazard,
			Variant: variantBody,
			Pos:     prev,
			W:       1,
			H:       1,
		}))
		w.SetCounter("length", len(g.body)+1)
	}
}

// afterCollide grows the snake and moves the fruit to a free cell.
func (g *Game) afterCollide(w *engine.World, out engine.Outcome) {
	for _, e := range out.Collected {
		if e.Variant != variantFood {
			continue
		}
		g.grow++
		g.placeFood(w)
	}
}

func (g *Game) placeFood(w *engine.World) {
	n := g.cfg.Grid
	taken := make(map[[2]int]bool, len(g.body)+1)
	p := w.Player()
	taken[[2]int{int(p.Pos.X), int(p.Pos.Y)}] = true
	for _, seg := range g.body {
		taken[[2]int{int(seg.Pos.X), int(seg.Pos.Y)}] = true
	}
	free := make([][2]int, 0, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !taken[[2]int{x, y}] {
				free = append(free, [2]int{x, y})
			}
		}
	}
	if len(free) == 0 {
		return
	}
	c := free[w.Rand().Pick(len(free))]
	w.Spawn(engine.Entity{
		Kind:    engine.KindCollectible,
		Variant: variantFood,
		Pos:     engine.Vec{X: float64(c[0]), Y: float64(c[1])},
		W:       1,
		H:       1,
	})
}

// Render draws the board.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Session().Snapshot()
	base.DrawHUD(dst, g.Title(), snap, "")

	const cellW = 2
	ox, oy := base.GridView(dst, g.cfg.Grid, g.cfg.Grid, cellW)
	for _, e := range snap.Entities {
		r, c := BodyChar, core.ColorGreen
		if e.Variant == variantFood {
			r, c = FoodChar, core.ColorRed
		}
		dst.SetColored(ox+int(e.X)*cellW, oy+int(e.Y), r, c)
	}
	if snap.Player != nil {
		dst.SetColored(ox+int(snap.Player.X)*cellW, oy+int(snap.Player.Y), HeadChar, core.ColorYellow)
	}
}
