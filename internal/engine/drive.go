package engine

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrClockRunning is returned when Drive is handed a clock that is in use.
var ErrClockRunning = errors.New("engine: clock already running")

// Run calls step on every clock tick until a step returns a terminal
// snapshot or ctx is done. The clock is stopped, and its goroutine has
// exited, whenever Run returns.
func Run(ctx context.Context, c *Clock, interval time.Duration, step func() Snapshot) (Snapshot, error) {
	var (
		mu   sync.Mutex
		last Snapshot
		once sync.Once
	)
	finished := make(chan struct{})

	c.OnTick(func(time.Time) {
		snap := step()
		mu.Lock()
		last = snap
		mu.Unlock()
		if snap.Phase.Terminal() {
			once.Do(func() { close(finished) })
		}
	})
	if !c.Start(interval) {
		return Snapshot{}, ErrClockRunning
	}

	var err error
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case <-finished:
	}
	c.Stop()
	<-c.Done()

	mu.Lock()
	defer mu.Unlock()
	return last, err
}

// Drive starts the session if needed and runs it on the clock until the
// round ends or ctx is cancelled.
func Drive(ctx context.Context, s *Session, c *Clock, interval time.Duration) (Snapshot, error) {
	if s.Phase() != PhasePlaying {
		s.Start()
	}
	snap, err := Run(ctx, c, interval, s.Tick)
	if err != nil && !errors.Is(err, ErrClockRunning) {
		return s.Snapshot(), err
	}
	return snap, err
}
