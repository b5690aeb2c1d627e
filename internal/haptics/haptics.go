// Package haptics turns game events into short vibration patterns.
//
// A Pattern alternates on and off durations, starting with "on". Vibrators
// are fire-and-forget: Vibrate never blocks the caller and never fails.
package haptics

import (
	"time"

	"github.com/charmbracelet/log"
)

// Pattern is a list of alternating on/off durations in milliseconds.
type Pattern []int

// Named cues.
var (
	Success  = Pattern{20}
	Error    = Pattern{30, 50, 30}
	GameOver = Pattern{50, 30, 80}
	Victory  = Pattern{20, 40, 20, 40, 60}
)

// Total returns the length of the whole pattern.
func (p Pattern) Total() time.Duration {
	var ms int
	for _, d := range p {
		ms += max(d, 0)
	}
	return time.Duration(ms) * time.Millisecond
}

// Pulses returns the "on" durations.
func (p Pattern) Pulses() []time.Duration {
	out := make([]time.Duration, 0, (len(p)+1)/2)
	for i := 0; i < len(p); i += 2 {
		out = append(out, time.Duration(max(p[i], 0))*time.Millisecond)
	}
	return out
}

// Vibrator plays a pattern.
type Vibrator interface {
	Vibrate(p Pattern)
}

// Nop ignores every pattern.
type Nop struct{}

func (Nop) Vibrate(Pattern) {}

// Fire plays p on v, recovering from any panic in the device layer.
func Fire(v Vibrator, p Pattern, logger *log.Logger) {
	if v == nil || len(p) == 0 {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			if logger == nil {
				logger = log.Default()
			}
			logger.Warn("haptic feedback failed", "panic", r)
		}
	}()
	v.Vibrate(p)
}
