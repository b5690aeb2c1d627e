package haptics

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
)

func TestPatternTotals(t *testing.T) {
	assert.Equal(t, 20*time.Millisecond, Success.Total())
	assert.Equal(t, 110*time.Millisecond, Error.Total())
	assert.Equal(t, 160*time.Millisecond, GameOver.Total())
	assert.Equal(t, 180*time.Millisecond, Victory.Total())

	assert.Equal(t, []time.Duration{20 * time.Millisecond, 20 * time.Millisecond, 60 * time.Millisecond}, Victory.Pulses())
}

func TestStreamerLength(t *testing.T) {
	s := Streamer(GameOver)
	want := sampleRate.N(GameOver.Total())

	buf := make([][2]float64, 512)
	total := 0
	var loud, quiet int
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if smp[0] != 0 {
				loud++
			} else {
				quiet++
			}
		}
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, want, total)
	assert.Positive(t, loud)
	assert.GreaterOrEqual(t, quiet, sampleRate.N(30*time.Millisecond))
}

func TestStreamerSamplesInRange(t *testing.T) {
	buf := make([][2]float64, sampleRate.N(20*time.Millisecond))
	n, _ := Streamer(Success).Stream(buf)
	for _, smp := range buf[:n] {
		assert.LessOrEqual(t, smp[0], 1.0)
		assert.GreaterOrEqual(t, smp[0], -1.0)
	}
	var _ beep.Streamer = Streamer(nil)
}

type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestBellRingsOncePerPulse(t *testing.T) {
	out := &syncBuffer{}
	bell := NewBell(out)
	var slept []time.Duration
	bell.sleep = func(d time.Duration) { slept = append(slept, d) }

	bell.play(Victory)
	assert.Equal(t, "\a\a\a", out.String())
	assert.Len(t, slept, len(Victory))
}

func TestBellVibrateIsAsync(t *testing.T) {
	out := &syncBuffer{}
	bell := NewBell(out)
	bell.sleep = func(time.Duration) {}

	bell.Vibrate(Error)
	assert.Eventually(t, func() bool { return out.String() == "\a\a" }, time.Second, time.Millisecond)
}

type panicky struct{}

func (panicky) Vibrate(Pattern) { panic("no device") }

type recorder struct{ got []Pattern }

func (r *recorder) Vibrate(p Pattern) { r.got = append(r.got, p) }

func TestFire(t *testing.T) {
	logger := log.New(&bytes.Buffer{})
	assert.NotPanics(t, func() { Fire(panicky{}, Success, logger) })
	assert.NotPanics(t, func() { Fire(nil, Success, logger) })

	r := &recorder{}
	Fire(r, Victory, logger)
	Fire(r, nil, logger)
	assert.Equal(t, []Pattern{Victory}, r.got)

	Nop{}.Vibrate(GameOver)
}
