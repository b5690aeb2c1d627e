package registry

import (
	"fmt"

	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
)

// MaxReplayTicks bounds a headless run.
const MaxReplayTicks = 100_000

// Input is one scheduled action: it is applied on the given tick (1-based).
type Input struct {
	Tick   uint64 `json:"tick"`
	Action string `json:"action"`
}

// Replay plays a fresh round of g headlessly: it resets the game with cfg,
// starts the session and steps up to ticks times, applying the scheduled
// inputs. It stops early when the round ends. The same game, config and
// schedule always produce the same snapshot.
func Replay(g Game, cfg core.RuntimeConfig, ticks int, schedule []Input) (engine.Snapshot, error) {
	if ticks <= 0 || ticks > MaxReplayTicks {
		return engine.Snapshot{}, fmt.Errorf("registry: ticks must be in 1..%d, got %d", MaxReplayTicks, ticks)
	}

	frames := make(map[uint64]core.InputFrame)
	for _, in := range schedule {
		action, ok := core.ParseAction(in.Action)
		if !ok {
			return engine.Snapshot{}, fmt.Errorf("registry: unknown action %q at tick %d", in.Action, in.Tick)
		}
		frame, ok := frames[in.Tick]
		if !ok {
			frame = core.NewInputFrame()
		}
		frame.Set(action)
		frames[in.Tick] = frame
	}

	g.Reset(cfg)
	s := g.Session()
	s.Start()
	for t := uint64(1); t <= uint64(ticks); t++ {
		frame, ok := frames[t]
		if !ok {
			frame = core.NewInputFrame()
		}
		if g.Step(frame).State.Over() {
			break
		}
	}
	return s.Snapshot(), nil
}
