package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	sampleRate = beep.SampleRate(44100)

	speakerBuffer = 100 * time.Millisecond
	rampDuration  = 5 * time.Millisecond // Fade in and out to avoid clicks
)

// ToneGenerator produces a sine wave of fixed length.
type ToneGenerator struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	pos    int
	total  int
	ramp   int
}

// NewToneGenerator creates a generator for one tone.
func NewToneGenerator(sr beep.SampleRate, t Tone, volume float64) *ToneGenerator {
	return &ToneGenerator{
		sr:     sr,
		freq:   t.Freq,
		volume: volume,
		total:  sr.N(t.Duration),
		ramp:   sr.N(rampDuration),
	}
}

// Stream fills samples with the next part of the tone and reports false
// once the tone is exhausted.
func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		sample := g.volume * g.envelope() * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// Err always returns nil; a generated tone cannot fail.
func (g *ToneGenerator) Err() error {
	return nil
}

func (g *ToneGenerator) envelope() float64 {
	if g.ramp <= 0 {
		return 1
	}
	head := float64(g.pos) / float64(g.ramp)
	tail := float64(g.total-g.pos) / float64(g.ramp)
	return math.Min(1, math.Min(head, tail))
}

// melodyStreamer turns a melody into one streamer. Rests become silence.
func melodyStreamer(sr beep.SampleRate, m Melody, volume float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(m))
	for _, t := range m {
		if t.Freq <= 0 {
			parts = append(parts, beep.Silence(sr.N(t.Duration)))
			continue
		}
		parts = append(parts, NewToneGenerator(sr, t, volume))
	}
	return beep.Seq(parts...)
}
