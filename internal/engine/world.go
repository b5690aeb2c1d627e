package engine

import "github.com/vovakirdan/kids-arcade/internal/core"

// Phase is the session's place in its lifecycle.
type Phase string

const (
	PhaseIdle     Phase = core.PhaseIdle
	PhasePlaying  Phase = core.PhasePlaying
	PhaseWon      Phase = core.PhaseWon
	PhaseGameOver Phase = core.PhaseGameOver
)

// Terminal reports whether the phase ends a round.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseGameOver
}

// World is the mutable state of one round. It is only ever touched while the
// owning Session holds its lock: inside Tick, inside hooks and inside Do.
type World struct {
	cfg      *Config
	store    *Store
	rand     Random
	intent   Intent
	phase    Phase
	reason   string
	tick     uint64
	score    int
	speed    float64
	spawnAcc float64
	counters map[string]int
}

func newWorld(cfg *Config) *World {
	w := &World{
		cfg:      cfg,
		store:    NewStore(),
		rand:     NewRandom(cfg.Seed),
		phase:    PhaseIdle,
		speed:    cfg.Ramp.Speed(0),
		counters: make(map[string]int),
	}
	w.store.SetPlayer(cfg.Player)
	return w
}

func (w *World) Store() *Store   { return w.store }
func (w *World) Field() Field    { return w.cfg.Field }
func (w *World) Rand() Random    { return w.rand }
func (w *World) Intent() Intent  { return w.intent }
func (w *World) Phase() Phase    { return w.phase }
func (w *World) Tick() uint64    { return w.tick }
func (w *World) Score() int      { return w.score }
func (w *World) Speed() float64  { return w.speed }
func (w *World) Player() *Entity { return w.store.Player() }

// Playing reports whether the round is in progress.
func (w *World) Playing() bool {
	return w.phase == PhasePlaying
}

// AddScore adds points. Outside the playing phase it does nothing.
func (w *World) AddScore(n int) {
	if w.phase == PhasePlaying {
		w.score += n
	}
}

// SetScore replaces the score, for games whose score is derived state
// (apples saved, height reached). Outside the playing phase it does nothing.
func (w *World) SetScore(n int) {
	if w.phase == PhasePlaying {
		w.score = n
	}
}

// End moves a playing round to a terminal phase. It reports false when the
// round was not playing or p is not terminal; the first End wins.
func (w *World) End(p Phase, reason string) bool {
	if w.phase != PhasePlaying || !p.Terminal() {
		return false
	}
	w.phase = p
	w.reason = reason
	return true
}

// Spawn adds an entity to the store.
func (w *World) Spawn(e Entity) *Entity {
	return w.store.Add(e)
}

// Counter returns a named per-session counter.
func (w *World) Counter(name string) int {
	return w.counters[name]
}

// SetCounter sets a named per-session counter.
func (w *World) SetCounter(name string, v int) {
	w.counters[name] = v
}

// AddCounter adds d to a named counter and returns the new value.
func (w *World) AddCounter(name string, d int) int {
	w.counters[name] += d
	return w.counters[name]
}

// step runs one tick of the pipeline. The caller guarantees the round is
// playing when it starts.
func (w *World) step() {
	w.tick++
	w.store.Cleanup()

	w.move()
	if w.phase == PhasePlaying && w.cfg.Spawner != nil {
		w.cfg.Spawner.Update(w)
	}
	out := w.collide()
	if w.phase == PhasePlaying && w.cfg.Hooks.AfterCollide != nil {
		w.cfg.Hooks.AfterCollide(w, out)
	}
	w.settle()

	w.intent.Tap = false
}

func (w *World) move() {
	field := w.cfg.Field
	p := w.store.Player()
	if p.Active && w.cfg.Motion != nil {
		w.cfg.Motion.Move(w, p)
	}

	for _, e := range w.store.items {
		if !e.Alive() {
			continue
		}
		if w.cfg.Scroll {
			e.Pos.X -= w.speed
		}
		e.Pos = e.Pos.Add(e.Vel)
	}

	if w.phase == PhasePlaying && w.cfg.Hooks.AfterMove != nil {
		w.cfg.Hooks.AfterMove(w)
	}

	if p.Active {
		field.Clamp(p)
	}
	for _, e := range w.store.items {
		if e.Alive() && !field.InMargin(e) {
			e.Active = false
		}
	}
}

func (w *World) collide() Outcome {
	if w.phase != PhasePlaying {
		return Outcome{}
	}
	out := w.cfg.Resolver.Resolve(w.store)
	if out.Fatal != nil {
		w.End(PhaseGameOver, "collision")
		return out
	}
	w.AddScore(out.Points)
	return out
}

func (w *World) settle() {
	if w.phase != PhasePlaying {
		return
	}
	switch rules := w.cfg.Rules; {
	case rules.Won != nil && rules.Won(w):
		w.End(PhaseWon, "objective")
	case rules.Lost != nil && rules.Lost(w):
		w.End(PhaseGameOver, "rule")
	}
	w.speed = w.cfg.Ramp.Speed(w.tick)
}
