package engine

import "math"

// Ramp is a linear speed schedule capped at Max.
type Ramp struct {
	Initial float64
	Max     float64
	PerTick float64
}

// Speed returns the scroll speed after the given number of ticks.
// It is computed from the tick count rather than accumulated, so long
// rounds do not drift.
func (r Ramp) Speed(tick uint64) float64 {
	s := r.Initial + r.PerTick*float64(tick)
	if r.Max > 0 {
		s = math.Min(s, r.Max)
	}
	return math.Max(s, r.Initial)
}

// Progress reports how far along the ramp a speed is, in [0, 1].
func (r Ramp) Progress(speed float64) float64 {
	if r.Max <= r.Initial {
		return 1
	}
	return clampF((speed-r.Initial)/(r.Max-r.Initial), 0, 1)
}
