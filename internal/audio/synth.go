package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Synth plays effects through the system speaker.
type Synth struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64 // Linear gain in [0, 1]
	initialized bool
}

// NewSynth creates a synth at the given linear volume. Call Initialize
// before playing.
func NewSynth(volume float64) *Synth {
	return &Synth{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the audio device. Without a device the synth stays
// silent and Play does nothing.
func (s *Synth) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play queues an effect on the mixer.
func (s *Synth) Play(snd Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	st, err := Streamer(snd, sampleRate, s.volume)
	if err != nil || st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences all playing effects.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

// Streamer renders the melody of snd as a finite stream at volume.
func Streamer(snd Sound, sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes := Melody(snd)
	if len(notes) == 0 {
		return nil, nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sr, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("%s tone %.0f Hz: %w", snd, n.Freq, err)
		}
		parts = append(parts, beep.Take(sr.N(n.Duration), tone))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// withVolume applies a linear gain. Zero or less is silent.
func withVolume(st beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: st, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: math.Log2(vol)}
}
