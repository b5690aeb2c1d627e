package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGravityJumpOnlyFromGround(t *testing.T) {
	cfg := Config{
		Field:  Field{W: 100, H: 300},
		Player: box(10, 0, 10, 10),
		Motion: GravityMotion{Gravity: 0.5, JumpImpulse: 10},
	}
	s := NewSession(cfg)
	s.Start()

	s.Tap()
	snap := s.Tick()
	assert.InDelta(t, 9.5, snap.Player.Y, 1e-9)

	// Mid-air taps are ignored.
	s.Tap()
	snap = s.Tick()
	assert.InDelta(t, 18.5, snap.Player.Y, 1e-9)

	for i := 0; i < 100; i++ {
		snap = s.Tick()
	}
	assert.Zero(t, snap.Player.Y, "lands and stays on the ground")
}

func TestTapIsConsumedByOneTick(t *testing.T) {
	cfg := Config{
		Field:  Field{W: 100, H: 300},
		Player: box(10, 0, 10, 10),
		Motion: GravityMotion{Gravity: 5, JumpImpulse: 10},
	}
	s := NewSession(cfg)
	s.Start()

	s.Tap()
	s.Tick()
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	snap := s.Snapshot()
	assert.Zero(t, snap.Player.Y, "a single tap jumps once")
}

func TestGridMotion(t *testing.T) {
	walls := map[[2]int]bool{{2, 1}: true}
	g := GridMotion{
		Passable: func(x, y int) bool {
			return x >= 0 && x < 5 && y >= 0 && y < 5 && !walls[[2]int{x, y}]
		},
		WrapW: 5,
	}

	x, y, ok := g.Try(1, 1, DirRight)
	assert.False(t, ok, "wall blocks")
	assert.Equal(t, [2]int{1, 1}, [2]int{x, y})

	x, y, ok = g.Try(0, 3, DirLeft)
	require.True(t, ok)
	assert.Equal(t, [2]int{4, 3}, [2]int{x, y}, "wraps horizontally")

	_, _, ok = g.Try(0, 0, DirUp)
	assert.False(t, ok, "no vertical wrap")

	_, _, ok = g.Try(0, 0, DirNone)
	assert.False(t, ok)
}

func TestGridMotionCadence(t *testing.T) {
	cfg := Config{
		Field:  Field{W: 10, H: 10},
		Player: box(0, 0, 1, 1),
		Motion: GridMotion{Every: 2},
	}
	s := NewSession(cfg)
	s.Start()
	s.SetDirection(DirRight)

	s.Tick()
	assert.Zero(t, s.Snapshot().Player.X, "odd ticks hold")
	s.Tick()
	assert.Equal(t, 1.0, s.Snapshot().Player.X)

	for i := 0; i < 40; i++ {
		s.Tick()
	}
	assert.Equal(t, 9.0, s.Snapshot().Player.X, "clamped to the field")
}

func TestDirOpposite(t *testing.T) {
	for _, d := range []Dir{DirUp, DirDown, DirLeft, DirRight} {
		assert.Equal(t, d, d.Opposite().Opposite())
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		assert.Equal(t, 0, dx+ox)
		assert.Equal(t, 0, dy+oy)
	}
	assert.Equal(t, DirNone, DirNone.Opposite())
}
