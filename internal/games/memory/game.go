// Package memory implements pair matching. Cards lie face down in a grid;
// the player flips two at a time and keeps the pairs that match. Fewer
// moves is better. The machines edition deals four vehicle pairs around a
// face-up star.
package memory

import (
	"slices"

	"github.com/vovakirdan/kids-arcade/internal/config"
	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/games/base"
	"github.com/vovakirdan/kids-arcade/internal/registry"
)

// Card faces, kept in the card's Mode.
const (
	faceDown    = "down"
	faceUp      = "up"
	faceMatched = "matched"
)

// Counter names. first and second hold card IDs; hide counts down the
// ticks until a mismatched pair turns back over.
const (
	counterPairs   = "pairs"
	counterMatched = "matched"
	counterFirst   = "first"
	counterSecond  = "second"
	counterHide    = "hide"
)

// Game implements pair matching.
type Game struct {
	base.Game
	cfg        config.MemoryConfig
	defaults   func() config.MemoryConfig
	load       func(string) (config.MemoryConfig, error)
	cols, rows int
	hideTicks  int
}

// New creates a new memory instance.
func New() *Game {
	return newGame(base.New("memory", "Memory", "Find all the pairs in as few moves as you can"),
		config.DefaultMemory, config.LoadMemory)
}

// NewMachines creates the machines edition.
func NewMachines() *Game {
	return newGame(base.New("machines", "Machine Memory", "Find the matching machines"),
		config.DefaultMachines, config.LoadMachines)
}

func newGame(bg base.Game, defaults func() config.MemoryConfig, load func(string) (config.MemoryConfig, error)) *Game {
	g := &Game{Game: bg, cfg: defaults(), defaults: defaults, load: load}
	g.layout()
	return g
}

func init() {
	registry.Register("memory", func() registry.Game {
		return New()
	})
	registry.Register("machines", func() registry.Game {
		return NewMachines()
	})
}

func (g *Game) layout() {
	g.cols = max(g.cfg.Columns, 1)
	cards := 2 * len(g.cfg.Symbols)
	if g.cfg.Wild != "" {
		cards++
	}
	g.rows = max((cards+g.cols-1)/g.cols, 1)
}

// Reset loads the configuration and leaves the round idle.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := g.load(rc.ConfigPath)
	if err != nil {
		g.Logger().Warn("using default config", "error", err)
	}
	if len(cfg.Symbols) == 0 {
		cfg.Symbols = g.defaults().Symbols
	}
	g.cfg = cfg
	g.layout()

	tickMs := max(int(base.Interval(rc, cfg.TickMs).Milliseconds()), 1)
	g.hideTicks = max(cfg.HideMs/tickMs, 1)

	g.Configure(rc, cfg.Common, engine.Config{
		Field: engine.Field{W: float64(g.cols), H: float64(g.rows)},
		Player: engine.Entity{
			Variant: "cursor",
			W:       1,
			H:       1,
			Active:  true,
		},
		Resolver: engine.Resolver{Disabled: true},
		Rules:    g.Rules(cfg.Rules, g.defaults().Rules),
		Hooks: engine.Hooks{
			Setup:     g.deal,
			AfterMove: g.afterMove,
		},
	})
}

// deal shuffles two of every symbol onto the grid, face down. A wild card
// goes in the middle, face up and out of play.
func (g *Game) deal(w *engine.World) {
	deck := make([]string, 0, 2*len(g.cfg.Symbols)+1)
	for _, s := range g.cfg.Symbols {
		deck = append(deck, s, s)
	}
	w.Rand().Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	wild := -1
	if g.cfg.Wild != "" {
		wild = len(deck) / 2
		deck = slices.Insert(deck, wild, g.cfg.Wild)
	}

	for i, symbol := range deck {
		mode := faceDown
		if i == wild {
			mode = faceMatched
		}
		w.Spawn(engine.Entity{
			Kind:    engine.KindCollectible,
			Variant: symbol,
			Mode:    mode,
			Pos:     engine.Vec{X: float64(i % g.cols), Y: float64(i / g.cols)},
			W:       1,
			H:       1,
		})
	}
	w.SetCounter(counterPairs, len(g.cfg.Symbols))
	w.SetCounter(counterMatched, 0)
}

// Step moves the cursor at once and queues a flip for the tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.StepCursor(in)
}

func (g *Game) afterMove(w *engine.World) {
	if left := w.Counter(counterHide); left > 0 {
		left--
		w.SetCounter(counterHide, left)
		if left == 0 {
			g.turnBack(w)
		}
		return
	}
	if w.Intent().Tap {
		g.flip(w)
	}
}

// flip turns the card under the cursor. The second card of a move either
// completes a pair or starts the hide countdown.
func (g *Game) flip(w *engine.World) {
	card := g.cardAt(w, w.Player().Pos)
	if card == nil || card.Mode != faceDown {
		return
	}
	card.Mode = faceUp

	firstID := w.Counter(counterFirst)
	if firstID == 0 {
		w.SetCounter(counterFirst, card.ID)
		return
	}
	w.AddScore(1)
	first, ok := w.Store().Find(firstID)
	if ok && first.Variant == card.Variant {
		first.Mode = faceMatched
		card.Mode = faceMatched
		w.AddCounter(counterMatched, 1)
		w.SetCounter(counterFirst, 0)
		return
	}
	w.SetCounter(counterSecond, card.ID)
	w.SetCounter(counterHide, g.hideTicks)
}

func (g *Game) turnBack(w *engine.World) {
	for _, name := range []string{counterFirst, counterSecond} {
		if card, ok := w.Store().Find(w.Counter(name)); ok && card.Mode == faceUp {
			card.Mode = faceDown
		}
		w.SetCounter(name, 0)
	}
}

func (g *Game) cardAt(w *engine.World, at engine.Vec) *engine.Entity {
	for _, e := range w.Store().Alive(engine.KindCollectible) {
		if e.Pos == at {
			return e
		}
	}
	return nil
}
