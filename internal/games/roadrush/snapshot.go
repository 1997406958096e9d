package roadrush

import "github.com/vovakirdan/turbo-rush/internal/core"

// Snapshot is a read-only copy of the full game state, handed to the
// renderer once per tick and used for determinism checks. Mutating it
// never affects the game.
type Snapshot struct {
	Tick      uint64
	Phase     core.Phase
	Lane      Lane
	Car       Car
	Obstacles []Obstacle
	PowerUps  []PowerUp
	Bullets   []Bullet
	Score     int
	Palette   Palette

	LoadingPercent int
	Loaded         bool
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:           g.tick,
		Phase:          g.phase,
		Lane:           g.lane,
		Car:            g.car,
		Obstacles:      append([]Obstacle(nil), g.obstacles...),
		PowerUps:       append([]PowerUp(nil), g.powerUps...),
		Bullets:        append([]Bullet(nil), g.bullets...),
		Score:          g.score,
		Palette:        g.palette,
		LoadingPercent: g.loadingPercent(),
		Loaded:         g.loaded(),
	}
}
