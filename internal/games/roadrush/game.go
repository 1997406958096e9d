// Package roadrush implements Turbo Rush, a vertical lane racer.
// The player steers a car along the bottom row, dodging obstacles that
// scroll down the lane, shooting them for points and picking up
// power-ups. The package holds pure simulation logic: the platform
// feeds it one input snapshot per tick and renders the result.
package roadrush

import (
	"math/rand"

	"github.com/vovakirdan/turbo-rush/internal/config"
	"github.com/vovakirdan/turbo-rush/internal/core"
)

// AudioNotifier receives sound events. Implementations must not block the
// tick; the game never waits on playback and ignores whether it happened.
type AudioNotifier interface {
	Notify(s core.Sound) bool
}

type silentNotifier struct{}

func (silentNotifier) Notify(core.Sound) bool { return false }

// Game implements the Turbo Rush simulation.
type Game struct {
	cfg      config.Config
	lane     Lane
	notifier AudioNotifier

	rng     *rand.Rand
	spawner *Spawner

	car       Car
	obstacles []Obstacle
	powerUps  []PowerUp
	bullets   []Bullet

	score        int
	paletteScore int // Score at the last palette change
	palette      Palette

	phase        core.Phase
	tick         uint64 // Playing ticks since start
	loadingTicks int
}

// New creates a game with the given configuration. A nil notifier plays
// nothing.
func New(cfg config.Config, notifier AudioNotifier) *Game {
	if notifier == nil {
		notifier = silentNotifier{}
	}
	return &Game{
		cfg:      cfg,
		lane:     Lane{Width: cfg.Lane.Width, Height: cfg.Lane.Height},
		notifier: notifier,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "roadrush"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Turbo Rush"
}

// ScreenSize returns the character grid the game renders into: the lane
// plus one line for the score.
func (g *Game) ScreenSize() (int, int) {
	return g.lane.Width, g.lane.Height + 1
}

// Reset initializes or restarts the game. The seed in rc drives every
// random decision of the run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.spawner = NewSpawner(g.rng, g.lane, g.cfg.Spawn)

	g.car = NewCar(g.lane.Center(), g.lane.CarRow())
	g.obstacles = g.obstacles[:0]
	g.powerUps = g.powerUps[:0]
	g.bullets = g.bullets[:0]

	g.score = 0
	g.paletteScore = 0
	g.palette = DefaultPalette()

	g.tick = 0
	g.loadingTicks = 0
	g.phase = core.PhasePlaying
	if g.cfg.Loading.Enabled {
		g.phase = core.PhaseLoading
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case core.PhaseLoading:
		g.stepLoading(in)
	case core.PhasePlaying:
		g.stepPlaying(in)
	}
	return core.StepResult{State: g.State()}
}

// stepPlaying runs one simulation tick: kinematics, spawning, collision
// resolution in fixed order, then firing.
func (g *Game) stepPlaying(in core.InputFrame) {
	g.tick++
	g.updatePalette()

	AdvanceCar(&g.car, in.Has(core.ActionLeft), in.Has(core.ActionRight), g.lane, g.cfg.PowerUps.BoostStep)
	AdvanceObstacles(g.obstacles, g.cfg.Spawn.ObstacleSpeed)
	AdvancePowerUps(g.powerUps)
	AdvanceBullets(g.bullets)

	if g.spawner.ObstacleGate() {
		g.obstacles = g.spawner.SpawnObstacle(g.obstacles)
	}
	g.powerUps = g.spawner.SpawnPowerUp(g.powerUps)

	// The fatal check comes first and ends the tick
	if CarHit(g.car, g.obstacles) {
		g.phase = core.PhaseGameOver
		g.notifier.Notify(core.SoundGameOver)
		return
	}

	if remaining, p, ok := CollectPowerUp(g.car, g.powerUps); ok {
		g.powerUps = remaining
		g.applyPowerUp(p)
	}

	var hits int
	g.obstacles, hits = ResolveBulletHits(g.bullets, g.obstacles)
	for i := 0; i < hits; i++ {
		g.score++
		g.notifier.Notify(core.SoundCrash)
	}

	g.bullets = CullBullets(g.bullets)
	if g.cfg.Lane.CullOffscreen {
		g.obstacles = CullObstacles(g.obstacles, g.lane.Height)
		g.powerUps = CullPowerUps(g.powerUps, g.lane.Height)
	}

	if in.Has(core.ActionFire) {
		g.bullets = append(g.bullets, NewBullet(g.car.X, g.car.Y-1))
	}
}

// applyPowerUp applies the effect of a collected power-up.
func (g *Game) applyPowerUp(p PowerUp) {
	switch p.Type {
	case PowerUpScoreBoost:
		// score_boost_points defaults to 0: the pickup only plays a jingle
		g.score += g.cfg.PowerUps.ScoreBoostPoints
		g.notifier.Notify(core.SoundPowerUp)
	case PowerUpSpeedBoost:
		ApplySpeedBoost(&g.car, g.cfg.PowerUps.BoostDuration)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Phase: g.phase,
	}
}
