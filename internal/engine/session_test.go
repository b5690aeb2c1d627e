package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(x, y, w, h float64) Entity {
	return Entity{Pos: Vec{X: x, Y: y}, W: w, H: h, Active: true}
}

// runnerConfig mirrors the auto-runner tuning without its rendering.
func runnerConfig(seed int64) Config {
	player := box(60, 0, 44, 44)
	return Config{
		Field:  Field{W: 400, H: 232, Margin: 60},
		Player: player,
		Motion: GravityMotion{Gravity: 0.55, JumpImpulse: 14},
		Scroll: true,
		Ramp:   Ramp{Initial: 2.2, Max: 5, PerTick: 0.0002},
		Spawner: &Spawner{
			Threshold:    220,
			HazardWeight: 0.65,
			Edges:        []float64{410},
			HazardLanes:  []float64{0},
			CollectLanes: []float64{0, 50},
			Hazard: func(r Random) Entity {
				size := 30 + r.Float64()*10
				return Entity{Variant: "rock", W: size, H: size}
			},
			Collectible: func(r Random) Entity {
				return Entity{Variant: "ball", W: 24, H: 44, Reward: 1}
			},
		},
		Resolver: Resolver{HazardShrink: 0.25},
		Seed:     seed,
	}
}

func TestSessionStartsIdle(t *testing.T) {
	s := NewSession(runnerConfig(1))

	assert.Equal(t, PhaseIdle, s.Phase())
	snap := s.Tick()
	assert.Equal(t, uint64(0), snap.Tick, "idle sessions ignore ticks")
	assert.Equal(t, 0, snap.Score)
}

func TestSessionStartIsNoOpWhilePlaying(t *testing.T) {
	s := NewSession(runnerConfig(1))

	require.True(t, s.Start())
	s.Tick()
	s.Tick()
	assert.False(t, s.Start())
	assert.Equal(t, uint64(2), s.Snapshot().Tick)
}

func TestSessionResetReturnsToIdle(t *testing.T) {
	s := NewSession(runnerConfig(1))
	s.Start()
	s.Tick()

	s.Reset()
	snap := s.Snapshot()
	assert.Equal(t, PhaseIdle, snap.Phase)
	assert.Equal(t, uint64(0), snap.Tick)
	assert.Empty(t, snap.Entities)
}

func TestPlayerStaysInBounds(t *testing.T) {
	cfg := runnerConfig(42)
	cfg.Resolver.Disabled = true
	s := NewSession(cfg)
	s.Start()

	field := cfg.Field
	for i := 0; i < 3000; i++ {
		if i%37 == 0 {
			s.Tap()
		}
		snap := s.Tick()
		require.NotNil(t, snap.Player)
		p := snap.Player
		require.GreaterOrEqual(t, p.X, 0.0, "tick %d", snap.Tick)
		require.GreaterOrEqual(t, p.Y, 0.0, "tick %d", snap.Tick)
		require.LessOrEqual(t, p.X+p.W, field.W, "tick %d", snap.Tick)
		require.LessOrEqual(t, p.Y+p.H, field.H, "tick %d", snap.Tick)

		for _, e := range snap.Entities {
			require.Greater(t, e.X+e.W, -field.Margin, "entity %d left the margin", e.ID)
			require.Less(t, e.X, field.W+field.Margin, "entity %d past the spawn edge", e.ID)
		}
	}
}

func TestOffFieldItemsAreRemoved(t *testing.T) {
	cfg := Config{
		Field:    Field{W: 100, H: 100, Margin: 10},
		Player:   box(0, 0, 1, 1),
		Scroll:   true,
		Ramp:     Ramp{Initial: 5},
		Resolver: Resolver{Disabled: true},
		Hooks: Hooks{Setup: func(w *World) {
			w.Spawn(Entity{Kind: KindHazard, Pos: Vec{X: 0, Y: 50}, W: 4, H: 4})
		}},
	}
	s := NewSession(cfg)
	s.Start()

	snap := s.Tick()
	require.Len(t, snap.Entities, 1)
	assert.InDelta(t, -5.0, snap.Entities[0].X, 1e-9)

	snap = s.Tick()
	require.Len(t, snap.Entities, 1, "still overlapping the margin")
	snap = s.Tick()
	assert.Empty(t, snap.Entities, "past the margin")
}

func TestSpeedAfterFiveThousandTicks(t *testing.T) {
	cfg := runnerConfig(7)
	cfg.Spawner = nil
	s := NewSession(cfg)
	s.Start()

	var snap Snapshot
	for i := 0; i < 5000; i++ {
		snap = s.Tick()
	}
	require.Equal(t, PhasePlaying, snap.Phase)
	assert.InDelta(t, 3.2, snap.Speed, 1e-9)
}

func TestRampIsMonotonicAndCapped(t *testing.T) {
	r := Ramp{Initial: 2.2, Max: 5, PerTick: 0.0002}

	prev := r.Speed(0)
	assert.Equal(t, 2.2, prev)
	for tick := uint64(1); tick <= 40000; tick += 13 {
		cur := r.Speed(tick)
		require.GreaterOrEqual(t, cur, prev)
		require.LessOrEqual(t, cur, 5.0)
		prev = cur
	}
	assert.Equal(t, 5.0, r.Speed(1_000_000))
	assert.Equal(t, 1.0, r.Progress(5))
	assert.InDelta(t, 0.5, r.Progress(3.6), 1e-9)
}

func TestCollectiblesPayRewardEach(t *testing.T) {
	const n, reward = 4, 7
	cfg := Config{
		Field:    Field{W: 100, H: 100},
		Player:   box(10, 10, 10, 10),
		Resolver: Resolver{Reward: 3},
		Hooks: Hooks{Setup: func(w *World) {
			for i := 0; i < n; i++ {
				w.Spawn(Entity{Kind: KindCollectible, Pos: Vec{X: 12, Y: 12}, W: 4, H: 4, Reward: reward})
			}
			// No reward of its own: the resolver default applies.
			w.Spawn(Entity{Kind: KindCollectible, Pos: Vec{X: 15, Y: 15}, W: 2, H: 2})
		}},
	}
	s := NewSession(cfg)
	s.Start()

	snap := s.Tick()
	assert.Equal(t, n*reward+3, snap.Score)
	assert.Empty(t, snap.Entities)

	snap = s.Tick()
	assert.Equal(t, n*reward+3, snap.Score, "collected items never pay twice")
}

func TestHazardWinsOverCollectible(t *testing.T) {
	terminal := 0
	cfg := Config{
		Field:    Field{W: 100, H: 100},
		Player:   box(0, 0, 10, 10),
		Resolver: Resolver{},
		Hooks: Hooks{Setup: func(w *World) {
			w.Spawn(Entity{Kind: KindCollectible, Pos: Vec{X: 1, Y: 1}, W: 5, H: 5, Reward: 10})
			w.Spawn(Entity{Kind: KindHazard, Pos: Vec{X: 2, Y: 2}, W: 5, H: 5})
		}},
	}
	s := NewSession(cfg)
	s.OnTerminal(func(Snapshot) { terminal++ })
	s.Start()

	snap := s.Tick()
	assert.Equal(t, PhaseGameOver, snap.Phase)
	assert.Equal(t, "collision", snap.Reason)
	assert.Equal(t, 0, snap.Score, "no score on the fatal tick")
	assert.Equal(t, 1, snap.Count(KindCollectible), "collectible untouched")

	// Terminal phases are sticky.
	snap = s.Tick()
	assert.Equal(t, uint64(1), snap.Tick)
	assert.False(t, s.End(PhaseWon, "late"))
	assert.False(t, s.Do(func(w *World) { w.AddScore(100) }))
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 1, terminal, "terminal callback fires once")

	// A new round re-arms the callback.
	s.Start()
	s.Tick()
	assert.Equal(t, 2, terminal)
}

func TestRulesWonBeforeLost(t *testing.T) {
	cfg := Config{
		Field:  Field{W: 10, H: 10},
		Player: box(0, 0, 1, 1),
		Rules: Rules{
			Won:  func(w *World) bool { return w.Tick() >= 3 },
			Lost: func(w *World) bool { return w.Tick() >= 3 },
		},
	}
	s := NewSession(cfg)
	s.Start()

	s.Tick()
	s.Tick()
	snap := s.Tick()
	assert.Equal(t, PhaseWon, snap.Phase)
	assert.Equal(t, "objective", snap.Reason)
}

func TestHooksRunInOrder(t *testing.T) {
	var order []string
	cfg := Config{
		Field:  Field{W: 10, H: 10},
		Player: box(0, 0, 1, 1),
		Motion: MotionFunc(func(*World, *Entity) { order = append(order, "move") }),
		Hooks: Hooks{
			AfterMove:    func(*World) { order = append(order, "after-move") },
			AfterCollide: func(*World, Outcome) { order = append(order, "after-collide") },
		},
		Rules: Rules{Won: func(*World) bool {
			order = append(order, "rules")
			return false
		}},
	}
	s := NewSession(cfg)
	s.Subscribe(func(Snapshot) { order = append(order, "snapshot") })
	s.Start()
	s.Tick()

	assert.Equal(t, []string{"move", "after-move", "after-collide", "rules", "snapshot"}, order)
}

func TestSubscribeCancel(t *testing.T) {
	s := NewSession(runnerConfig(1))
	got := 0
	cancel := s.Subscribe(func(Snapshot) { got++ })
	s.Start()

	s.Tick()
	cancel()
	s.Tick()
	assert.Equal(t, 1, got)
}

func TestSnapshotIsACopy(t *testing.T) {
	cfg := Config{
		Field:  Field{W: 10, H: 10},
		Player: box(0, 0, 1, 1),
		Hooks: Hooks{Setup: func(w *World) {
			w.SetCounter("lives", 3)
			w.Spawn(Entity{Kind: KindCollectible, Pos: Vec{X: 5, Y: 5}, W: 1, H: 1})
		}},
	}
	s := NewSession(cfg)
	s.Start()

	snap := s.Tick()
	snap.Counters["lives"] = 0
	snap.Entities[0].X = 99

	again := s.Snapshot()
	assert.Equal(t, 3, again.Counters["lives"])
	assert.Equal(t, 5.0, again.Entities[0].X)
}

func TestSameSeedSameRound(t *testing.T) {
	run := func() []Snapshot {
		s := NewSession(runnerConfig(99))
		s.Start()
		var out []Snapshot
		for i := 0; i < 800; i++ {
			if i%50 == 0 {
				s.Tap()
			}
			out = append(out, s.Tick())
		}
		return out
	}
	assert.Equal(t, run(), run())
}

func TestEntityIDsAreSessionScoped(t *testing.T) {
	cfg := Config{
		Field:  Field{W: 10, H: 10},
		Player: box(0, 0, 1, 1),
		Hooks: Hooks{Setup: func(w *World) {
			w.Spawn(Entity{Kind: KindHazard, Pos: Vec{X: 8, Y: 8}, W: 1, H: 1})
		}},
	}
	a, b := NewSession(cfg), NewSession(cfg)
	a.Start()
	b.Start()

	sa, sb := a.Snapshot(), b.Snapshot()
	require.Len(t, sa.Entities, 1)
	assert.Equal(t, sa.Player.ID, sb.Player.ID)
	assert.Equal(t, sa.Entities[0].ID, sb.Entities[0].ID)
}

func TestScoreOnlyWhilePlaying(t *testing.T) {
	s := NewSession(Config{Field: Field{W: 1, H: 1}})

	assert.False(t, s.Do(func(w *World) { w.AddScore(5) }))
	s.Start()
	assert.True(t, s.Do(func(w *World) { w.AddScore(5) }))
	assert.Equal(t, 5, s.Score())
}
