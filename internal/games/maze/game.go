// Package maze implements the maze chase: eat every candy while two ghosts
// wander the corridors. A power ball turns the ghosts edible for a while.
package maze

import (
	"github.com/vovakirdan/kids-arcade/internal/config"
	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/games/base"
	"github.com/vovakirdan/kids-arcade/internal/registry"
)

// Layout cells.
const (
	cellWall  = '#'
	cellCandy = '.'
	cellPower = 'o'
)

// Entity variants and ghost modes.
const (
	variantCandy = "candy"
	variantPower = "power"
	variantGhost = "ghost"

	modeChase  = "chase"
	modeScared = "scared"
)

// Counter names.
const (
	counterPellets = "pellets"
	counterPower   = "power"
)

// Visual characters for rendering
const (
	WallChar   = '█'
	CandyChar  = '·'
	PowerChar  = 'o'
	GhostChar  = 'G'
	ScaredChar = 'g'
	KidChar    = '@'
)

// Game implements the maze chase.
type Game struct {
	base.Game
	cfg    config.MazeConfig
	grid   grid
	motion engine.GridMotion

	heading engine.Dir
	kidFrom engine.Vec
	ghosts  map[int]engine.Dir
}

// New creates a new maze instance.
func New() *Game {
	g := &Game{
		Game: base.New("maze", "Candy Maze", "Eat the candy, dodge the ghosts"),
		cfg:  config.DefaultMaze(),
	}
	g.grid = newGrid(g.cfg.Layout)
	return g
}

func init() {
	registry.Register("maze", func() registry.Game {
		return New()
	})
}

// Reset loads the configuration and leaves the round idle.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadMaze(rc.ConfigPath)
	if err != nil {
		g.Logger().Warn("using default config", "error", err)
	}
	if len(cfg.Layout) == 0 {
		cfg.Layout = config.DefaultMaze().Layout
	}
	cfg.ApplyPreset(base.Preset(rc))
	g.cfg = cfg
	g.grid = newGrid(cfg.Layout)

	wrap := 0
	if cfg.TunnelsWrapX {
		wrap = g.grid.w
	}
	g.motion = engine.GridMotion{Passable: g.grid.passable, WrapW: wrap}

	g.Configure(rc, cfg.Common, engine.Config{
		Field: engine.Field{W: float64(g.grid.w), H: float64(g.grid.h), Margin: 1},
		Player: engine.Entity{
			Variant: "kid",
			Pos:     cellPos(cfg.PlayerStart),
			W:       1,
			H:       1,
			Active:  true,
		},
		Motion: engine.MotionFunc(g.movePlayer),
		Rules:  g.Rules(cfg.Rules, config.DefaultMaze().Rules),
		Hooks: engine.Hooks{
			Setup:        g.setup,
			AfterMove:    g.moveGhosts,
			AfterCollide: g.afterCollide,
		},
	})
}

func cellPos(c [2]int) engine.Vec {
	return engine.Vec{X: float64(c[0]), Y: float64(c[1])}
}

// setup fills the maze with candy, power balls and ghosts.
func (g *Game) setup(w *engine.World) {
	g.heading = engine.DirNone
	g.ghosts = make(map[int]engine.Dir)

	start := g.cfg.PlayerStart
	for y, row := range g.cfg.Layout {
		for x := 0; x < len(row); x++ {
			if x == start[0] && y == start[1] {
				continue
			}
			switch row[x] {
			case cellCandy:
				w.Spawn(g.pellet(x, y, variantCandy, g.cfg.CandyPoints))
			case cellPower:
				w.Spawn(g.pellet(x, y, variantPower, g.cfg.PowerPoints))
			}
		}
	}
	for _, at := range g.cfg.GhostStarts {
		g.spawnGhost(w, at)
	}
	w.SetCounter(counterPellets, g.pellets(w))
	w.SetCounter(counterPower, 0)
}

func (g *Game) pellet(x, y int, variant string, reward int) engine.Entity {
	return engine.Entity{
		Kind:    engine.KindCollectible,
		Variant: variant,
		Pos:     engine.Vec{X: float64(x), Y: float64(y)},
		W:       1,
		H:       1,
		Reward:  reward,
	}
}

func (g *Game) spawnGhost(w *engine.World, at [2]int) {
	ghost := w.Spawn(engine.Entity{
		Kind:    engine.KindHazard,
		Variant: variantGhost,
		Mode:    modeChase,
		Pos:     cellPos(at),
		W:       1,
		H:       1,
	})
	g.ghosts[ghost.ID] = engine.DirNone
}

// movePlayer keeps the kid moving: a requested turn is taken as soon as the
// corridor allows it, otherwise the kid keeps its heading until a wall.
func (g *Game) movePlayer(w *engine.World, p *engine.Entity) {
	g.kidFrom = p.Pos
	every := uint64(max(g.cfg.PlayerEvery, 1))
	if w.Tick()%every != 0 {
		return
	}
	x, y := int(p.Pos.X), int(p.Pos.Y)
	if want := w.Intent().Dir; want != engine.DirNone {
		if nx, ny, ok := g.motion.Try(x, y, want); ok {
			g.heading = want
			p.Pos = engine.Vec{X: float64(nx), Y: float64(ny)}
			return
		}
	}
	if nx, ny, ok := g.motion.Try(x, y, g.heading); ok {
		p.Pos = engine.Vec{X: float64(nx), Y: float64(ny)}
	}
}

// moveGhosts counts down power mode and walks the ghosts. Ghosts pick a
// random open corridor and only turn back at dead ends. Scared ghosts move
// at half speed.
func (g *Game) moveGhosts(w *engine.World) {
	if left := w.Counter(counterPower); left > 0 {
		left--
		w.SetCounter(counterPower, left)
		if left == 0 {
			g.calmGhosts(w)
		}
	}

	every := uint64(max(g.cfg.GhostEvery, 1))
	if w.Tick()%every != 0 {
		return
	}
	scaredTurn := w.Tick()%(2*every) == 0
	for _, e := range w.Store().Items() {
		if !w.Playing() {
			return
		}
		if !e.Alive() || e.Variant != variantGhost {
			continue
		}
		if e.Mode == modeScared && !scaredTurn {
			continue
		}
		g.stepGhost(w, e)
	}
}

func (g *Game) stepGhost(w *engine.World, e *engine.Entity) {
	x, y := int(e.Pos.X), int(e.Pos.Y)
	back := g.ghosts[e.ID].Opposite()

	var options []engine.Dir
	for _, d := range []engine.Dir{engine.DirUp, engine.DirDown, engine.DirLeft, engine.DirRight} {
		if d == back {
			continue
		}
		if _, _, ok := g.motion.Try(x, y, d); ok {
			options = append(options, d)
		}
	}
	if len(options) == 0 {
		if back == engine.DirNone {
			return
		}
		options = []engine.Dir{back}
	}
	d := options[w.Rand().Pick(len(options))]
	nx, ny, _ := g.motion.Try(x, y, d)
	from := e.Pos
	e.Pos = engine.Vec{X: float64(nx), Y: float64(ny)}
	g.ghosts[e.ID] = d

	if kid := w.Player(); kid.Pos == from && e.Pos == g.kidFrom {
		g.crossed(w, e)
	}
}

// crossed settles a ghost and the kid trading cells on the same tick. They
// never overlap after the move, so the collision pass would miss it.
func (g *Game) crossed(w *engine.World, e *engine.Entity) {
	if e.Mode != modeScared {
		w.End(engine.PhaseGameOver, "collision")
		return
	}
	e.Collected = true
	w.AddScore(e.Reward)
	delete(g.ghosts, e.ID)
	g.spawnGhost(w, g.cfg.GhostHome)
}

// afterCollide handles power balls and eaten ghosts, then recounts pellets.
func (g *Game) afterCollide(w *engine.World, out engine.Outcome) {
	for _, e := range out.Collected {
		switch e.Variant {
		case variantPower:
			w.SetCounter(counterPower, g.cfg.PowerTicks)
			g.scareGhosts(w)
		case variantGhost:
			delete(g.ghosts, e.ID)
			g.spawnGhost(w, g.cfg.GhostHome)
		}
	}
	w.SetCounter(counterPellets, g.pellets(w))
}

func (g *Game) scareGhosts(w *engine.World) {
	for _, e := range w.Store().Alive(engine.KindHazard) {
		if e.Variant == variantGhost {
			e.Kind = engine.KindCollectible
			e.Mode = modeScared
			e.Reward = g.cfg.GhostPoints
		}
	}
}

func (g *Game) calmGhosts(w *engine.World) {
	for _, e := range w.Store().Alive(engine.KindCollectible) {
		if e.Variant == variantGhost {
			e.Kind = engine.KindHazard
			e.Mode = modeChase
			e.Reward = 0
		}
	}
}

func (g *Game) pellets(w *engine.World) int {
	n := 0
	for _, e := range w.Store().Alive(engine.KindCollectible) {
		if e.Variant == variantCandy || e.Variant == variantPower {
			n++
		}
	}
	return n
}
