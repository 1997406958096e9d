// Package audio plays the Turbo Rush sound effects through a beep mixer.
// Playback never blocks the caller. Each sound category has at most one
// melody in flight; a request for a busy category is dropped.
package audio

import (
	"fmt"
	"time"

	"github.com/vovakirdan/turbo-rush/internal/core"
)

// Tone is a single note. A zero frequency is a rest.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// Melody is a sequence of tones played back to back.
type Melody []Tone

// NewMelody pairs frequencies with durations. A zero frequency is a rest.
func NewMelody(freqs []float64, durations []time.Duration) (Melody, error) {
	if len(freqs) != len(durations) {
		return nil, fmt.Errorf("audio: %d tones but %d durations", len(freqs), len(durations))
	}
	m := make(Melody, len(freqs))
	for i := range freqs {
		if freqs[i] < 0 || durations[i] < 0 {
			return nil, fmt.Errorf("audio: tone %d has negative frequency or duration", i)
		}
		m[i] = Tone{Freq: freqs[i], Duration: durations[i]}
	}
	return m, nil
}

// Duration returns the total length of the melody.
func (m Melody) Duration() time.Duration {
	var d time.Duration
	for _, t := range m {
		d += t.Duration
	}
	return d
}

// Note frequencies in Hz
var scale = []float64{523, 587, 659, 698} // C5 D5 E5 F5

const (
	shortNote = 200 * time.Millisecond
	longNote  = 500 * time.Millisecond
)

var melodies = [core.SoundCount]Melody{
	core.SoundCrash:    mustMelody(scale, repeat(shortNote, len(scale))),
	core.SoundPowerUp:  jingle(scale, shortNote),
	core.SoundGameOver: mustMelody([]float64{300, 250, 200}, repeat(longNote, 3)),
}

// jingle plays each note followed by a rest of the same length.
func jingle(notes []float64, d time.Duration) Melody {
	freqs := make([]float64, 0, 2*len(notes))
	for _, f := range notes {
		freqs = append(freqs, f, 0)
	}
	return mustMelody(freqs, repeat(d, len(freqs)))
}

func repeat(d time.Duration, n int) []time.Duration {
	out := make([]time.Duration, n)
	for i := range out {
		out[i] = d
	}
	return out
}

// mustMelody is NewMelody for the built-in tables.
func mustMelody(freqs []float64, durations []time.Duration) Melody {
	m, err := NewMelody(freqs, durations)
	if err != nil {
		panic(err)
	}
	return m
}

// MelodyFor returns the melody of a sound category. Unknown sounds have
// no melody.
func MelodyFor(s core.Sound) Melody {
	if s < 0 || int(s) >= len(melodies) {
		return nil
	}
	return melodies[s]
}
