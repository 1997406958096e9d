package audio

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/turbo-rush/internal/config"
	"github.com/vovakirdan/turbo-rush/internal/core"
)

// Notifier plays sound events. Its zero state is silent: until Initialize
// succeeds every Notify call is a no-op returning false.
type Notifier struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	logger      *log.Logger
	mixer       *beep.Mixer
	play        func(beep.Streamer)
	initialized bool
	device      bool // Playing through the system speaker

	inFlight [core.SoundCount]atomic.Bool
}

// New creates a notifier. Call Initialize to open the audio device.
func New(cfg config.AudioConfig, logger *log.Logger) *Notifier {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Notifier{
		cfg:    cfg,
		logger: logger.WithPrefix("audio"),
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker. A disabled config leaves the notifier
// silent without error. A failure to open the device is returned and the
// notifier stays silent; the game can continue without sound.
func (n *Notifier) Initialize() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.initialized || !n.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		return fmt.Errorf("audio: open speaker: %w", err)
	}
	speaker.Play(n.mixer)

	n.play = func(s beep.Streamer) {
		speaker.Lock()
		n.mixer.Add(s)
		speaker.Unlock()
	}
	n.initialized = true
	n.device = true
	n.logger.Debug("speaker initialized", "sample_rate", int(sampleRate))
	return nil
}

// attach wires a custom sink in place of the speaker.
func (n *Notifier) attach(play func(beep.Streamer)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.play = play
	n.initialized = true
}

// Notify starts the melody of s and returns immediately. It returns false
// when the notifier is silent or a melody of the same category is still
// playing.
func (n *Notifier) Notify(s core.Sound) bool {
	melody := MelodyFor(s)
	if melody == nil {
		return false
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.initialized {
		return false
	}
	if !n.inFlight[s].CompareAndSwap(false, true) {
		n.logger.Debug("sound dropped, category busy", "sound", s)
		return false
	}

	n.playMelody(melody, func() { n.inFlight[s].Store(false) })
	return true
}

// playMelody queues a melody on the sink and calls done once it finished
// streaming. Callers hold n.mu.
func (n *Notifier) playMelody(m Melody, done func()) {
	n.play(beep.Seq(
		melodyStreamer(sampleRate, m, n.cfg.Volume),
		beep.Callback(done),
	))
}

// Playing reports whether a melody of category s is in flight.
func (n *Notifier) Playing(s core.Sound) bool {
	if s < 0 || int(s) >= core.SoundCount {
		return false
	}
	return n.inFlight[s].Load()
}

// Close stops all playback and makes the notifier silent.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.initialized {
		return
	}
	if n.device {
		speaker.Lock()
		n.mixer.Clear()
		speaker.Unlock()
	} else {
		n.mixer.Clear()
	}
	for i := range n.inFlight {
		n.inFlight[i].Store(false)
	}
	n.initialized = false
	n.device = false
}
