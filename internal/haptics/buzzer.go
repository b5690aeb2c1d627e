package haptics

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	buzzFreq   = 180.0
	buzzVolume = 0.2
)

// Buzzer renders a pattern as low tone bursts on the default audio device.
type Buzzer struct {
	mu          sync.Mutex
	initialized bool
}

// NewBuzzer returns a buzzer. The speaker is opened on first use.
func NewBuzzer() *Buzzer {
	return &Buzzer{}
}

// Init opens the speaker. Calling it again is a no-op.
func (b *Buzzer) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	b.initialized = true
	return nil
}

// Vibrate queues the pattern. Without an audio device it does nothing.
func (b *Buzzer) Vibrate(p Pattern) {
	if len(p) == 0 || b.Init() != nil {
		return
	}
	speaker.Play(Streamer(p))
}

// Streamer returns the audio for a pattern: a tone for every "on" span and
// silence for every "off" span.
func Streamer(p Pattern) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(p))
	for i, d := range p {
		n := sampleRate.N(time.Duration(max(d, 0)) * time.Millisecond)
		if i%2 == 0 {
			parts = append(parts, beep.Take(n, tone(buzzFreq)))
		} else {
			parts = append(parts, beep.Silence(n))
		}
	}
	return beep.Seq(parts...)
}

func tone(freq float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(pos) / float64(sampleRate)
			v := buzzVolume * math.Sin(2*math.Pi*freq*t)
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}
