package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/registry"
)

func runtime(seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.Seed = seed
	return rc
}

func TestRegistered(t *testing.T) {
	info, ok := registry.Info("runner")
	require.True(t, ok)
	assert.Equal(t, "Ball Runner", info.Title)
}

func TestResetLeavesRoundIdle(t *testing.T) {
	g := New()
	g.Reset(runtime(1))

	assert.Equal(t, core.PhaseIdle, g.State().Phase)
	assert.Equal(t, 16, int(g.TickInterval().Milliseconds()))

	// ticks before Start do nothing
	g.Step(core.NewInputFrame())
	assert.Zero(t, g.Session().Snapshot().Tick)

	require.True(t, g.Session().Start())
	assert.True(t, g.State().Playing())
}

func TestTapJumps(t *testing.T) {
	snap, err := registry.Replay(New(), runtime(1), 3, []registry.Input{{Tick: 1, Action: "jump"}})
	require.NoError(t, err)
	require.NotNil(t, snap.Player)
	assert.Greater(t, snap.Player.Y, 0.0)
}

func TestUnattendedRunnerHitsAnObstacle(t *testing.T) {
	snap, err := registry.Replay(New(), runtime(7), 20000, nil)
	require.NoError(t, err)
	assert.Equal(t, engine.PhaseGameOver, snap.Phase)
	assert.Equal(t, "collision", snap.Reason)
}

func TestReplayIsDeterministic(t *testing.T) {
	schedule := []registry.Input{
		{Tick: 90, Action: "tap"},
		{Tick: 200, Action: "tap"},
		{Tick: 320, Action: "tap"},
	}
	a, err := registry.Replay(New(), runtime(42), 600, schedule)
	require.NoError(t, err)
	b, err := registry.Replay(New(), runtime(42), 600, schedule)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCatchingABallScores(t *testing.T) {
	g := New()
	g.Reset(runtime(3))
	s := g.Session()
	require.True(t, s.Start())

	s.Do(func(w *engine.World) {
		p := w.Player()
		w.Spawn(engine.Entity{Kind: engine.KindCollectible, Variant: "ball", Pos: p.Pos, W: 24, H: 44, Reward: 1})
	})
	res := g.Step(core.NewInputFrame())
	assert.Equal(t, 1, res.State.Score)
	assert.Zero(t, s.Snapshot().Count(engine.KindCollectible))
}

func TestHazardSizesFollowScale(t *testing.T) {
	g := New()
	r := engine.NewRandom(5)
	for i := 0; i < 200; i++ {
		h := g.buildHazard(r)
		assert.Equal(t, h.W, h.H)
		assert.GreaterOrEqual(t, h.Scale, 0.7)
		assert.LessOrEqual(t, h.Scale, 1.3)
		assert.GreaterOrEqual(t, h.W, float64(21)) // round(30*0.7)
		assert.LessOrEqual(t, h.W, float64(50))    // round(38*1.3)
	}
}

func TestFixedPresetKeepsSpeed(t *testing.T) {
	rc := runtime(1)
	rc.Preset = "fixed"
	snap, err := registry.Replay(New(), rc, 90, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.2, snap.Speed, 1e-9)

	snap, err = registry.Replay(New(), runtime(1), 90, nil)
	require.NoError(t, err)
	assert.Greater(t, snap.Speed, 2.2)
}

func TestRenderShowsKid(t *testing.T) {
	g := New()
	g.Reset(runtime(1))
	g.Session().Start()
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), string(KidChar))
	assert.Contains(t, screen.Row(0), "Score: 0")
}
