package engine

import (
	"sync"
	"time"
)

// Clock fires a callback at a fixed interval while running. It is backed by
// a time.Ticker, which drops ticks when the callback overruns, so a slow
// frame is absorbed instead of replayed.
type Clock struct {
	mu       sync.Mutex
	onTick   func(time.Time)
	running  bool
	interval time.Duration
	elapsed  time.Duration
	ticks    uint64
	stop     chan struct{}
	done     chan struct{}
}

// NewClock returns a stopped clock.
func NewClock() *Clock {
	done := make(chan struct{})
	close(done)
	return &Clock{done: done}
}

// OnTick sets the callback. It replaces any previous one.
func (c *Clock) OnTick(fn func(time.Time)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onTick = fn
}

// Start begins ticking at the given interval. Starting a running clock, or
// starting with a non-positive interval, does nothing and reports false.
func (c *Clock) Start(interval time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running || interval <= 0 {
		return false
	}
	c.running = true
	c.interval = interval
	c.elapsed = 0
	c.ticks = 0
	c.stop = make(chan struct{})
	c.done = make(chan struct{})
	go c.run(interval, c.stop, c.done)
	return true
}

func (c *Clock) run(interval time.Duration, stop, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			c.mu.Lock()
			if !c.running || c.stop != stop {
				c.mu.Unlock()
				return
			}
			c.elapsed += interval
			c.ticks++
			fn := c.onTick
			c.mu.Unlock()

			if fn != nil {
				fn(now)
			}
		}
	}
}

// Stop halts the clock. It is safe to call repeatedly, from any goroutine,
// including from inside the tick callback.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	c.running = false
	close(c.stop)
}

// Running reports whether the clock is ticking.
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Elapsed is the simulated time of the current run: ticks times interval.
func (c *Clock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

// Ticks returns how many callbacks the current run has fired.
func (c *Clock) Ticks() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticks
}

// Done is closed once the ticking goroutine of the current run has exited.
// For a clock that was never started it is already closed.
func (c *Clock) Done() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}
