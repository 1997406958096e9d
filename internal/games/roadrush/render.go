package roadrush

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/turbo-rush/internal/core"
)

// Visual characters for rendering
const (
	RoadChar     = '|'
	CarChar      = 'A'
	ObstacleChar = '#'
	PowerUpChar  = '+'
	BulletChar   = '|'
)

// Entity colours
const (
	CarColor      = core.ColorBrightGreen
	ObstacleColor = core.ColorBrightRed
	PowerUpColor  = core.ColorBrightYellow
	BulletColor   = core.ColorBrightBlue
	ScoreColor    = core.ColorBrightYellow
	emptyColor    = core.ColorGray
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws a snapshot to the screen. It is the whole
// presentation contract: it reads the snapshot and never touches the game.
func RenderSnapshot(dst *core.Screen, s Snapshot) {
	dst.Clear()
	dst.SetBackground(s.Palette.Background)

	if s.Phase == core.PhaseLoading {
		drawLoading(dst, s)
		return
	}

	drawLane(dst, s)

	if s.Phase == core.PhaseGameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Final Score: %d", s.Score))
	}
}

// drawLane renders the road, the entities and the score line.
func drawLane(dst *core.Screen, s Snapshot) {
	lane := s.Lane
	play := core.NewRect(0, 1, lane.Width, lane.Height-2)

	dst.DrawHLine(0, 0, lane.Width, RoadChar, s.Palette.Text)
	for y := play.Y; y < play.Bottom(); y++ {
		dst.DrawHLine(0, y, lane.Width, ' ', emptyColor)
	}
	dst.DrawHLine(0, lane.Height-1, lane.Width, RoadChar, s.Palette.Text)

	// Later layers win when entities share a cell
	for _, b := range s.Bullets {
		drawEntity(dst, play, b.Point, BulletChar, BulletColor)
	}
	drawEntity(dst, play, s.Car.Point, CarChar, CarColor)
	for _, o := range s.Obstacles {
		drawEntity(dst, play, o.Point, ObstacleChar, ObstacleColor)
	}
	for _, p := range s.PowerUps {
		drawEntity(dst, play, p.Point, PowerUpChar, PowerUpColor)
	}

	hud := fmt.Sprintf("Score: %d", s.Score)
	if s.Car.HasSpeedBoost {
		hud += fmt.Sprintf("  Boost: %d", s.Car.SpeedBoostDuration)
	}
	dst.DrawTextColored(0, lane.Height, hud, ScoreColor)
}

// drawEntity draws a glyph if the point lies inside the playable area.
func drawEntity(dst *core.Screen, play core.Rect, p core.Point, r rune, c core.Color) {
	if !play.Contains(p.X, p.Y) {
		return
	}
	dst.SetCell(p.X, p.Y, r, c)
}

// drawLoading renders the loading screen.
func drawLoading(dst *core.Screen, s Snapshot) {
	text := s.Palette.Text
	if s.Loaded {
		dst.DrawTextCentered(dst.Height()/2, "Game Loaded! Starting...", text)
		return
	}

	lines := []string{
		"Loading Game...",
		"",
		"Welcome to the",
		"Turbo Rush:",
		"Road to Victory!",
		"",
		"Controls:",
		"A - Move Left",
		"D - Move Right",
		"Space - Shoot",
		"",
		progressBar(s.LoadingPercent),
	}
	top := (dst.Height() - len(lines)) / 2
	for i, line := range lines {
		dst.DrawTextCentered(top+i, line, text)
	}
}

// progressBar formats the loading bar, e.g. "[====      ] 40%".
func progressBar(percent int) string {
	filled := core.Clamp(percent/10, 0, 10)
	return fmt.Sprintf("[%s%s] %d%%", strings.Repeat("=", filled), strings.Repeat(" ", 10-filled), percent)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)

	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightRed)
	dst.DrawTextColored(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle, ScoreColor)
}
