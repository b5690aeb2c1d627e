package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset selects how fast a game starts and how quickly it ramps.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	// DifficultyFixed keeps the starting pace for the whole round.
	DifficultyFixed DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return DifficultyNormal, fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", s)
	}
}

// pace returns the starting-speed and ramp multipliers for a preset.
func (p DifficultyPreset) pace() (start, ramp float64) {
	switch p {
	case DifficultyEasy:
		return 0.8, 0.5
	case DifficultyHard:
		return 1.2, 1.5
	case DifficultyFixed:
		return 1, 0
	default:
		return 1, 1
	}
}

// Scaled returns the ramp adjusted for a preset. The cap never drops below
// the starting speed.
func (r RampConfig) Scaled(p DifficultyPreset) RampConfig {
	start, ramp := p.pace()
	out := RampConfig{
		Initial: r.Initial * start,
		Max:     r.Max,
		PerTick: r.PerTick * ramp,
	}
	if out.Max > 0 && out.Max < out.Initial {
		out.Max = out.Initial
	}
	return out
}

// ScaleInterval adjusts a step interval for a preset: easy is slower, hard
// is faster. Intervals never drop below one millisecond.
func ScaleInterval(ms int, p DifficultyPreset) int {
	start, _ := p.pace()
	if start <= 0 {
		return ms
	}
	return max(1, int(float64(ms)/start))
}

// ApplyPreset adjusts the runner's speed ramp.
func (c *RunnerConfig) ApplyPreset(p DifficultyPreset) {
	c.Ramp = c.Ramp.Scaled(p)
}

// ApplyPreset adjusts the snake's step interval; fixed stops it shrinking.
func (c *SnakeConfig) ApplyPreset(p DifficultyPreset) {
	c.BaseIntervalMs = ScaleInterval(c.BaseIntervalMs, p)
	c.MinIntervalMs = min(c.MinIntervalMs, c.BaseIntervalMs)
	if p == DifficultyFixed {
		c.IntervalStepMs = 0
	}
}

// ApplyPreset adjusts how often ghosts move.
func (c *MazeConfig) ApplyPreset(p DifficultyPreset) {
	switch p {
	case DifficultyEasy:
		c.GhostEvery++
	case DifficultyHard:
		c.GhostEvery = max(1, c.GhostEvery-1)
	}
}

// ApplyPreset adjusts bird speed and frequency.
func (c *OrchardConfig) ApplyPreset(p DifficultyPreset) {
	start, _ := p.pace()
	c.ApproachSpeed *= start
	c.BirdIntervalMs = ScaleInterval(c.BirdIntervalMs, p)
}
