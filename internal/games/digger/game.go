// Package digger implements the digger. Things lie in a row of sandpit
// slots; the player parks the bucket over one and taps to scoop it into
// the truck. The arm is busy while it scoops, and an emptied slot soon
// fills with something new. A full truck drives away and the next backs up.
package digger

import (
	"slices"

	"github.com/vovakirdan/kids-arcade/internal/config"
	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/games/base"
	"github.com/vovakirdan/kids-arcade/internal/registry"
)

// Slot modes. Timer counts the ticks spent in the current mode.
const (
	slotItem    = "item"
	slotScooped = "scooped"
	slotEmpty   = "empty"
)

// Counter names. load is the scoops in the current truck.
const (
	counterLoad   = "load"
	counterLoads  = "loads"
	counterTrucks = "trucks"
	counterGoal   = "goal"
)

// Game implements the digger.
type Game struct {
	base.Game
	cfg         config.DiggerConfig
	scoopTicks  int
	refillTicks int
}

// New creates a new digger instance.
func New() *Game {
	return &Game{
		Game: base.New("digger", "Digger", "Scoop things into the truck"),
		cfg:  config.DefaultDigger(),
	}
}

func init() {
	registry.Register("digger", func() registry.Game {
		return New()
	})
}

// Reset loads the configuration and leaves the round idle.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadDigger(rc.ConfigPath)
	if err != nil {
		g.Logger().Warn("using default config", "error", err)
	}
	cfg.Slots = max(cfg.Slots, 1)
	cfg.LoadsPerTruck = max(cfg.LoadsPerTruck, 1)
	if len(cfg.Items) <= cfg.Slots {
		cfg.Items = config.DefaultDigger().Items
	}
	cfg.Slots = min(cfg.Slots, len(cfg.Items)-1)
	g.cfg = cfg

	g.Configure(rc, cfg.Common, engine.Config{
		Field: engine.Field{W: float64(cfg.Slots), H: 1},
		Player: engine.Entity{
			Variant: "bucket",
			W:       1,
			H:       1,
			Active:  true,
		},
		Resolver: engine.Resolver{Disabled: true},
		Rules:    g.Rules(cfg.Rules, config.DefaultDigger().Rules),
		Hooks: engine.Hooks{
			Setup:     g.setup,
			AfterMove: g.afterMove,
		},
	})
	tickMs := max(int(g.TickInterval().Milliseconds()), 1)
	g.scoopTicks = max(cfg.ScoopMs/tickMs, 1)
	g.refillTicks = max(cfg.RefillMs/tickMs, 1)
}

// Step moves the bucket at once and queues a scoop for the tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.StepCursor(in)
}

// setup fills every slot with a different thing.
func (g *Game) setup(w *engine.World) {
	items := slices.Clone(g.cfg.Items)
	w.Rand().Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	for i := 0; i < g.cfg.Slots; i++ {
		w.Spawn(engine.Entity{
			Kind:    engine.KindCollectible,
			Variant: items[i],
			Mode:    slotItem,
			Pos:     engine.Vec{X: float64(i)},
			W:       1,
			H:       1,
		})
	}
	w.SetCounter(counterLoads, g.cfg.LoadsPerTruck)
	w.SetCounter(counterGoal, g.cfg.Trucks)
}

// afterMove starts a scoop under the bucket when the arm is free, then
// finishes scoops and refills slots whose time is up.
func (g *Game) afterMove(w *engine.World) {
	slots := w.Store().Alive(engine.KindCollectible)

	if w.Intent().Tap && !busy(slots) {
		for _, s := range slots {
			if s.Pos == w.Player().Pos && s.Mode == slotItem {
				s.Mode = slotScooped
				s.Timer = 0
			}
		}
	}

	for _, s := range slots {
		s.Timer++
		switch {
		case s.Mode == slotScooped && s.Timer >= g.scoopTicks:
			s.Mode = slotEmpty
			s.Timer = 0
			g.load(w)
		case s.Mode == slotEmpty && s.Timer >= g.refillTicks:
			s.Variant = g.fresh(w, slots)
			s.Mode = slotItem
			s.Timer = 0
		}
	}
}

func busy(slots []*engine.Entity) bool {
	return slices.ContainsFunc(slots, func(s *engine.Entity) bool { return s.Mode == slotScooped })
}

// load drops one scoop into the truck and sends a full truck away.
func (g *Game) load(w *engine.World) {
	w.AddScore(1)
	if w.AddCounter(counterLoad, 1) >= g.cfg.LoadsPerTruck {
		w.SetCounter(counterLoad, 0)
		w.AddCounter(counterTrucks, 1)
	}
}

// fresh picks a thing that is not already showing in another slot.
func (g *Game) fresh(w *engine.World, slots []*engine.Entity) string {
	var pool []string
	for _, item := range g.cfg.Items {
		showing := slices.ContainsFunc(slots, func(s *engine.Entity) bool {
			return s.Mode != slotEmpty && s.Variant == item
		})
		if !showing {
			pool = append(pool, item)
		}
	}
	return pool[w.Rand().Pick(len(pool))]
}

// Praise returns the cheer for the latest scoop.
func (g *Game) Praise(scoops int) string {
	return base.Praise(g.cfg.Praise, scoops)
}
