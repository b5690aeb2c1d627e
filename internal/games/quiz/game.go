// Package quiz implements the guessing game. Each round shows a clue and a
// few names; the player picks one. A wrong name is greyed out and the round
// goes on until the right one is found, but only a first-try answer scores.
package quiz

import (
	"github.com/vovakirdan/kids-arcade/internal/config"
	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/games/base"
	"github.com/vovakirdan/kids-arcade/internal/registry"
)

// Choice modes.
const (
	choiceOpen  = "open"
	choiceWrong = "wrong"
	choiceRight = "right"
)

// Counter names. answer holds the entity ID of the right choice.
const (
	counterRound    = "round"
	counterRounds   = "rounds"
	counterAnswer   = "answer"
	counterWrong    = "wrong"
	counterReveal   = "reveal"
	counterFinished = "finished"
)

// columns is the width of the choice board.
const columns = 2

// Game implements the guessing game.
type Game struct {
	base.Game
	cfg         config.QuizConfig
	clues       map[string]string
	order       []int
	revealTicks int
}

// New creates a new quiz instance.
func New() *Game {
	g := &Game{
		Game: base.New("quiz", "Who Is It?", "Read the clue and pick the right animal"),
	}
	g.apply(config.DefaultQuiz())
	return g
}

func init() {
	registry.Register("quiz", func() registry.Game {
		return New()
	})
}

func (g *Game) apply(cfg config.QuizConfig) {
	if len(cfg.Animals) < 2 {
		cfg.Animals = config.DefaultQuiz().Animals
	}
	cfg.Choices = min(max(cfg.Choices, 2), len(cfg.Animals))
	g.cfg = cfg
	g.clues = make(map[string]string, len(cfg.Animals))
	for _, a := range cfg.Animals {
		g.clues[a.Name] = a.Clue
	}
}

func (g *Game) rows() int {
	return (g.cfg.Choices + columns - 1) / columns
}

// Reset loads the configuration and leaves the round idle.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadQuiz(rc.ConfigPath)
	if err != nil {
		g.Logger().Warn("using default config", "error", err)
	}
	g.apply(cfg)

	tickMs := max(int(base.Interval(rc, cfg.TickMs).Milliseconds()), 1)
	g.revealTicks = max(cfg.RevealMs/tickMs, 1)

	g.Configure(rc, cfg.Common, engine.Config{
		Field: engine.Field{W: columns, H: float64(g.rows())},
		Player: engine.Entity{
			Variant: "cursor",
			W:       1,
			H:       1,
			Active:  true,
		},
		Resolver: engine.Resolver{Disabled: true},
		Rules:    g.Rules(cfg.Rules, config.DefaultQuiz().Rules),
		Hooks: engine.Hooks{
			Setup:     g.setup,
			AfterMove: g.afterMove,
		},
	})
}

// Step moves the cursor at once and queues a pick for the tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.StepCursor(in)
}

// setup draws the answers for every round up front, so no animal is the
// answer twice until the list runs out.
func (g *Game) setup(w *engine.World) {
	g.order = g.order[:0]
	for i := range g.cfg.Animals {
		g.order = append(g.order, i)
	}
	w.Rand().Shuffle(len(g.order), func(i, j int) { g.order[i], g.order[j] = g.order[j], g.order[i] })
	w.SetCounter(counterRounds, g.cfg.Rounds)
	w.SetCounter(counterRound, 0)
	g.nextRound(w)
}

// nextRound clears the board and deals the answer among distractors, or
// finishes once every round is played.
func (g *Game) nextRound(w *engine.World) {
	for _, e := range w.Store().Alive(engine.KindCollectible) {
		e.Eliminated = true
	}
	w.SetCounter(counterWrong, 0)

	round := w.AddCounter(counterRound, 1)
	if round > g.cfg.Rounds {
		w.SetCounter(counterRound, g.cfg.Rounds)
		w.SetCounter(counterFinished, 1)
		return
	}

	answer := g.order[(round-1)%len(g.order)]
	names := []string{g.cfg.Animals[answer].Name}
	others := make([]int, 0, len(g.cfg.Animals)-1)
	for i := range g.cfg.Animals {
		if i != answer {
			others = append(others, i)
		}
	}
	w.Rand().Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })
	for _, i := range others[:g.cfg.Choices-1] {
		names = append(names, g.cfg.Animals[i].Name)
	}
	w.Rand().Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })

	for i, name := range names {
		e := w.Spawn(engine.Entity{
			Kind:    engine.KindCollectible,
			Variant: name,
			Mode:    choiceOpen,
			Pos:     engine.Vec{X: float64(i % columns), Y: float64(i / columns)},
			W:       1,
			H:       1,
		})
		if name == g.cfg.Animals[answer].Name {
			w.SetCounter(counterAnswer, e.ID)
		}
	}
}

// afterMove waits out the reveal of a solved round, otherwise it resolves
// a pick under the cursor.
func (g *Game) afterMove(w *engine.World) {
	if left := w.Counter(counterReveal); left > 0 {
		left--
		w.SetCounter(counterReveal, left)
		if left == 0 {
			g.nextRound(w)
		}
		return
	}
	if w.Intent().Tap {
		g.pick(w)
	}
}

func (g *Game) pick(w *engine.World) {
	choice := g.choiceAt(w, w.Player().Pos)
	if choice == nil || choice.Mode != choiceOpen {
		return
	}
	if choice.ID != w.Counter(counterAnswer) {
		choice.Mode = choiceWrong
		w.AddCounter(counterWrong, 1)
		return
	}
	choice.Mode = choiceRight
	if w.Counter(counterWrong) == 0 {
		w.AddScore(1)
	}
	w.SetCounter(counterReveal, g.revealTicks)
}

func (g *Game) choiceAt(w *engine.World, at engine.Vec) *engine.Entity {
	for _, e := range w.Store().Alive(engine.KindCollectible) {
		if e.Pos == at {
			return e
		}
	}
	return nil
}

// Clue returns the clue for an answer name.
func (g *Game) Clue(name string) string {
	return g.clues[name]
}
