package engine

import "sync"

// Predicate inspects a world and decides a rule.
type Predicate func(w *World) bool

// Rules decides when a round is won or lost beyond fatal collisions.
// Won is checked before Lost.
type Rules struct {
	Won  Predicate
	Lost Predicate
}

// Hooks let a game add bespoke per-stage work without reordering the
// pipeline. Every hook runs under the session lock and only while playing.
type Hooks struct {
	// Setup runs once when a round starts, after the world has been reset.
	Setup func(w *World)
	// AfterMove runs after the player and items have moved, before items
	// that left the field are retired.
	AfterMove func(w *World)
	// AfterCollide sees what the resolver found, including a fatal hit.
	AfterCollide func(w *World, out Outcome)
}

// Config is everything a game injects into a session.
type Config struct {
	Field    Field
	Player   Entity
	Motion   PlayerMotion
	Scroll   bool
	Ramp     Ramp
	Spawner  *Spawner
	Resolver Resolver
	Rules    Rules
	Hooks    Hooks
	Seed     int64
}

// Session is the single authoritative object for one game instance. The
// clock callback and input handlers both go through it, serialised by one
// mutex. Subscribers and the terminal callback survive Start and Reset.
type Session struct {
	mu    sync.Mutex
	cfg   Config
	world *World

	subs    map[int]func(Snapshot)
	nextSub int

	onTerminal func(Snapshot)
	fired      bool
}

// NewSession returns an idle session.
func NewSession(cfg Config) *Session {
	s := &Session{
		cfg:  cfg,
		subs: make(map[int]func(Snapshot)),
	}
	s.world = newWorld(&s.cfg)
	return s
}

// Configure replaces the game configuration and returns the session to idle.
func (s *Session) Configure(cfg Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	s.world = newWorld(&s.cfg)
	s.fired = false
}

// SetSeed changes the seed used by the next Start.
func (s *Session) SetSeed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Seed = seed
}

// Start begins a fresh round: empty store, zero score, initial speed, tick
// zero and a reseeded random source. It does nothing while a round is
// already playing and reports whether it started one.
func (s *Session) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.world.phase == PhasePlaying {
		return false
	}
	s.world = newWorld(&s.cfg)
	s.world.phase = PhasePlaying
	s.fired = false
	if s.cfg.Hooks.Setup != nil {
		s.cfg.Hooks.Setup(s.world)
	}
	return true
}

// Reset abandons the current round and returns to idle.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.world = newWorld(&s.cfg)
	s.fired = false
}

// End forces a playing round into a terminal phase, firing the terminal
// callback like a tick would.
func (s *Session) End(p Phase, reason string) bool {
	return s.Do(func(w *World) { w.End(p, reason) })
}

// SetIntent replaces the pending intent. The last write before a tick wins.
func (s *Session) SetIntent(in Intent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.world.intent = in
}

// SetDirection changes the heading and keeps any pending tap.
func (s *Session) SetDirection(d Dir) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.world.intent.Dir = d
}

// Tap requests the primary action on the next tick.
func (s *Session) Tap() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.world.intent.Tap = true
}

// Do runs fn against the world while the round is playing, for input that
// acts immediately instead of on the next tick. It reports whether fn ran.
func (s *Session) Do(fn func(w *World)) bool {
	s.mu.Lock()
	w := s.world
	if w.phase != PhasePlaying {
		s.mu.Unlock()
		return false
	}
	fn(w)
	snap, terminal := s.finishLocked()
	s.mu.Unlock()

	if terminal != nil {
		terminal(snap)
	}
	return true
}

// Tick advances a playing round by one step and publishes the snapshot.
// On any other phase it is a no-op that returns the current snapshot, which
// makes late ticks from a stopping clock harmless.
func (s *Session) Tick() Snapshot {
	s.mu.Lock()
	w := s.world
	if w.phase != PhasePlaying {
		snap := w.snapshot()
		s.mu.Unlock()
		return snap
	}
	w.step()
	snap, terminal := s.finishLocked()
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	if terminal != nil {
		terminal(snap)
	}
	return snap
}

// finishLocked snapshots the world and, on the first terminal transition of
// the round, hands back the terminal callback.
func (s *Session) finishLocked() (Snapshot, func(Snapshot)) {
	snap := s.world.snapshot()
	if !snap.Phase.Terminal() || s.fired {
		return snap, nil
	}
	s.fired = true
	return snap, s.onTerminal
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.snapshot()
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.phase
}

// Score returns the current score.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.score
}

// View runs fn with read access to the world, for renderers that need more
// than a snapshot. fn must not keep the world.
func (s *Session) View(fn func(w *World)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.world)
}

// OnTerminal registers the callback invoked once per round when it ends.
// It runs outside the session lock.
func (s *Session) OnTerminal(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTerminal = fn
}

// Subscribe registers fn to receive the snapshot of every tick.
func (s *Session) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}
