package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/turbo-rush/internal/config"
	"github.com/vovakirdan/turbo-rush/internal/core"
	"github.com/vovakirdan/turbo-rush/internal/games/roadrush"
)

func newTestModel(t *testing.T) (Model, *roadrush.Game) {
	t.Helper()
	cfg := config.Default()
	cfg.Spawn.ObstacleChance = 0
	cfg.Spawn.PowerUpChance = 0
	cfg.Loading.Enabled = false

	game := roadrush.New(cfg, nil)
	m := NewModel(game, core.RuntimeConfig{Seed: 1, TickInterval: cfg.TickInterval()}, Options{
		HoldWindow: cfg.HoldWindow(),
	})
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should start the tick loop")
	}
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelSteersCar(t *testing.T) {
	m, game := newTestModel(t)
	now := time.Unix(100, 0)
	m.now = func() time.Time { return now }

	m, _ = update(t, m, runeKey('d'))
	m, cmd := update(t, m, TickMsg(now.Add(10*time.Millisecond)))

	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if x := game.Snapshot().Car.X; x != 16 {
		t.Errorf("car x = %d, expected 16", x)
	}

	// The hold window expired, so the car stops
	m, _ = update(t, m, TickMsg(now.Add(200*time.Millisecond)))
	if x := game.Snapshot().Car.X; x != 16 {
		t.Errorf("car x = %d after release, expected 16", x)
	}
}

func TestModelQuitKey(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, runeKey('q'))

	if !isQuit(cmd) {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

// newDoomedModel returns a model whose car sits in a one-column lane
// under a stream of obstacles, so it crashes on tick 17.
func newDoomedModel(t *testing.T) (Model, *roadrush.Game) {
	t.Helper()
	cfg := config.Default()
	cfg.Lane.Width = 3
	cfg.Spawn.ObstacleChance = 1
	cfg.Spawn.PowerUpChance = 0
	cfg.Loading.Enabled = false

	game := roadrush.New(cfg, nil)
	m := NewModel(game, core.RuntimeConfig{Seed: 3, TickInterval: cfg.TickInterval()}, Options{})
	m.Init()
	return m, game
}

func crash(t *testing.T, m Model, at time.Time) Model {
	t.Helper()
	for i := 0; i < 40 && !m.State().GameOver(); i++ {
		m, _ = update(t, m, TickMsg(at))
	}
	if !m.State().GameOver() {
		t.Fatal("car should crash into the obstacle stream")
	}
	return m
}

func TestModelGameOverLinger(t *testing.T) {
	m, game := newDoomedModel(t)
	start := time.Unix(100, 0)
	m = crash(t, m, start)

	m, cmd := update(t, m, TickMsg(start.Add(time.Second)))
	if isQuit(cmd) {
		t.Fatal("final board should linger")
	}
	if m.View() == "" {
		t.Error("final board should still render")
	}
	if game.State() != m.State() {
		t.Error("model should track the game state")
	}

	_, cmd = update(t, m, TickMsg(start.Add(DefaultGameOverLinger)))
	if !isQuit(cmd) {
		t.Error("program should exit after the linger time")
	}
}

func TestModelGameOverIgnoresHeldKeys(t *testing.T) {
	m, _ := newDoomedModel(t)
	start := time.Unix(100, 0)
	m = crash(t, m, start)

	// Auto-repeat of the keys held during the crash
	for _, msg := range []tea.KeyMsg{runeKey('a'), runeKey('d'), {Type: tea.KeySpace, Runes: []rune{' '}}, runeKey('x')} {
		var cmd tea.Cmd
		m, cmd = update(t, m, msg)
		if isQuit(cmd) {
			t.Fatalf("%q after the crash must not dismiss the final board", msg.String())
		}
	}

	m, cmd := update(t, m, TickMsg(start.Add(time.Second)))
	if isQuit(cmd) {
		t.Error("final board should stay up until the linger time")
	}
	if m.View() == "" {
		t.Error("final board should still render")
	}
}

func TestModelConfirmDismissesGameOver(t *testing.T) {
	m, _ := newDoomedModel(t)
	m = crash(t, m, time.Unix(100, 0))

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !isQuit(cmd) {
		t.Error("enter should dismiss the final board")
	}
}

func TestModelQuitDuringGameOver(t *testing.T) {
	m, _ := newDoomedModel(t)
	m = crash(t, m, time.Unix(100, 0))

	_, cmd := update(t, m, runeKey('q'))
	if !isQuit(cmd) {
		t.Error("q should quit from the final board")
	}
}

func TestModelLoadingSkipDoesNotFire(t *testing.T) {
	cfg := config.Default()
	cfg.Spawn.ObstacleChance = 0
	cfg.Spawn.PowerUpChance = 0
	game := roadrush.New(cfg, nil)
	m := NewModel(game, core.RuntimeConfig{Seed: 1, TickInterval: cfg.TickInterval()}, Options{
		HoldWindow: cfg.HoldWindow(),
	})
	m.Init()

	now := time.Unix(100, 0)
	m.now = func() time.Time { return now }

	m, _ = update(t, m, runeKey('x'))
	m, _ = update(t, m, TickMsg(now))
	if m.State().Phase != core.PhaseLoading {
		t.Fatalf("expected loading, got %v", m.State().Phase)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = update(t, m, TickMsg(now.Add(5*time.Millisecond)))
	if m.State().Phase != core.PhasePlaying {
		t.Fatalf("space should skip loading, got %v", m.State().Phase)
	}

	// Still inside the hold window of the skipping press
	m, _ = update(t, m, TickMsg(now.Add(20*time.Millisecond)))
	if n := len(game.Snapshot().Bullets); n != 0 {
		t.Errorf("the skipping press fired %d bullets", n)
	}
}

func TestModelViewIncludesHelp(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()

	if !strings.Contains(view, "Score: 0") {
		t.Error("view should include the score line")
	}
	if !strings.Contains(view, "shoot") {
		t.Error("view should include the help line")
	}
}

func TestModelTerminalTooSmall(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("small terminal should show a warning")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	if strings.Contains(m.View(), "Terminal too small") {
		t.Error("large terminal should show the game")
	}
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetCell(0, 0, 'A', core.ColorBrightGreen)
	s.DrawTextColored(1, 1, "ok", core.ColorRed)

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "A") || !strings.Contains(lines[1], "ok") {
		t.Errorf("unexpected output %q", out)
	}
}
