package haptics

import (
	"io"
	"sync"
	"time"
)

// Bell rings the terminal bell once per pulse.
type Bell struct {
	mu    sync.Mutex
	out   io.Writer
	sleep func(time.Duration)
}

// NewBell writes BEL characters to out.
func NewBell(out io.Writer) *Bell {
	return &Bell{out: out, sleep: time.Sleep}
}

// Vibrate plays the pattern in the background.
func (b *Bell) Vibrate(p Pattern) {
	if len(p) == 0 {
		return
	}
	go b.play(p)
}

func (b *Bell) play(p Pattern) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, d := range p {
		if i%2 == 0 {
			b.out.Write([]byte{'\a'}) //nolint:errcheck
		}
		b.sleep(time.Duration(max(d, 0)) * time.Millisecond)
	}
}
