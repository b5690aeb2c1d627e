package orchard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/registry"
)

func seeded(seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.Seed = seed
	return rc
}

func started(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(seeded(seed))
	require.True(t, g.Session().Start())
	return g
}

func step(g *Game, n int, tap bool) engine.Snapshot {
	for i := 0; i < n; i++ {
		in := core.NewInputFrame()
		if tap {
			in.Set(core.ActionTap)
		}
		g.Step(in)
	}
	return g.Session().Snapshot()
}

func TestSetup(t *testing.T) {
	g := started(t, 1)
	snap := g.Session().Snapshot()

	assert.Nil(t, snap.Player)
	assert.Equal(t, 6, snap.Count(engine.KindCollectible))
	assert.Equal(t, 1, snap.Count(engine.KindHazard))
	assert.Equal(t, 6, snap.Score)
	assert.Equal(t, 6, snap.Counters["apples"])
	assert.Zero(t, snap.Counters["ripe"])
}

func TestTapShoosBird(t *testing.T) {
	g := started(t, 1)

	snap := step(g, 1, true)
	assert.Equal(t, 1, snap.Counters["shoos"])
	for _, e := range snap.Entities {
		if e.Kind == engine.KindHazard {
			assert.Equal(t, modeFlee, e.Mode)
		}
	}
	assert.Equal(t, "Great!", g.Praise(snap.Counters["shoos"]))

	snap = step(g, 5, false)
	assert.Zero(t, snap.Count(engine.KindHazard))
	assert.Equal(t, 6, snap.Score)
}

func TestBirdEatsAnApple(t *testing.T) {
	g := started(t, 4)

	snap := step(g, 60, false)
	assert.Equal(t, 5, snap.Counters["apples"])
	assert.Equal(t, 5, snap.Score)
	assert.Equal(t, engine.PhasePlaying, snap.Phase)
}

func TestGuardingEveryBirdWins(t *testing.T) {
	var schedule []registry.Input
	for tick := uint64(1); tick <= 900; tick++ {
		schedule = append(schedule, registry.Input{Tick: tick, Action: "tap"})
	}
	snap, err := registry.Replay(New(), seeded(2), 900, schedule)
	require.NoError(t, err)

	assert.Equal(t, engine.PhaseWon, snap.Phase)
	assert.Equal(t, uint64(800), snap.Tick)
	assert.Equal(t, 6, snap.Score)
	assert.Equal(t, 6, snap.Counters["ripe"])
}

func TestUnguardedTreeIsLost(t *testing.T) {
	snap, err := registry.Replay(New(), seeded(3), 2000, nil)
	require.NoError(t, err)

	assert.Equal(t, engine.PhaseGameOver, snap.Phase)
	assert.Equal(t, "rule", snap.Reason)
	assert.Zero(t, snap.Score)
	assert.Less(t, snap.Tick, uint64(800))
}

func TestPraiseRotates(t *testing.T) {
	g := New()
	assert.Equal(t, "", g.Praise(0))
	words := []string{"Great!", "Nice!", "Super!", "Good!", "Great!"}
	for i, want := range words {
		assert.Equal(t, want, g.Praise(i+1))
	}
}

func TestPraiseCounterIsPerRound(t *testing.T) {
	g := started(t, 1)
	step(g, 1, true)
	require.Equal(t, 1, g.Session().Snapshot().Counters["shoos"])

	g.Session().Reset()
	require.True(t, g.Session().Start())
	assert.Zero(t, g.Session().Snapshot().Counters["shoos"])
}

func TestReplayIsDeterministic(t *testing.T) {
	schedule := []registry.Input{{Tick: 20, Action: "tap"}, {Tick: 130, Action: "tap"}}
	a, err := registry.Replay(New(), seeded(8), 400, schedule)
	require.NoError(t, err)
	b, err := registry.Replay(New(), seeded(8), 400, schedule)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRender(t *testing.T) {
	g := started(t, 1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), string(AppleChar))
	assert.Contains(t, screen.String(), string(LeafChar))
}
