package roadrush

import (
	"testing"

	"github.com/vovakirdan/turbo-rush/internal/config"
	"github.com/vovakirdan/turbo-rush/internal/core"
)

// recordingNotifier counts sound events instead of playing them.
type recordingNotifier struct {
	events []core.Sound
}

func (r *recordingNotifier) Notify(s core.Sound) bool {
	r.events = append(r.events, s)
	return true
}

func (r *recordingNotifier) count(s core.Sound) int {
	n := 0
	for _, e := range r.events {
		if e == s {
			n++
		}
	}
	return n
}

// quietConfig returns the default config with random spawning and the
// loading screen turned off, so tests place every entity themselves.
func quietConfig() config.Config {
	cfg := config.Default()
	cfg.Spawn.ObstacleChance = 0
	cfg.Spawn.PowerUpChance = 0
	cfg.Loading.Enabled = false
	return cfg
}

// newTestGame creates a reset game in the playing phase.
func newTestGame(t *testing.T, cfg config.Config) (*Game, *recordingNotifier) {
	t.Helper()
	n := &recordingNotifier{}
	g := New(cfg, n)
	g.Reset(core.RuntimeConfig{Seed: 1})
	if g.phase != core.PhasePlaying {
		t.Fatalf("expected playing phase after reset, got %v", g.phase)
	}
	return g, n
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}
