package roadrush

import (
	"math/rand"

	"github.com/vovakirdan/turbo-rush/internal/config"
)

// Spawner generates obstacles and power-ups on the spawn row.
// The random source is injected so a seed reproduces a whole run.
type Spawner struct {
	rng            *rand.Rand
	lane           Lane
	obstacleChance float64
	powerUpChance  float64
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, lane Lane, cfg config.SpawnConfig) *Spawner {
	return &Spawner{
		rng:            rng,
		lane:           lane,
		obstacleChance: cfg.ObstacleChance,
		powerUpChance:  cfg.PowerUpChance,
	}
}

// ObstacleGate rolls the per-tick obstacle probability.
// The loop owns this gate; SpawnObstacle itself always spawns.
func (s *Spawner) ObstacleGate() bool {
	return roll(s.rng, s.obstacleChance)
}

// SpawnObstacle appends one obstacle at a random column on the spawn row.
func (s *Spawner) SpawnObstacle(obstacles []Obstacle) []Obstacle {
	return append(obstacles, NewObstacle(s.randomX(), s.lane.SpawnRow()))
}

// SpawnPowerUp rolls its own probability and, on success, appends one
// power-up of a uniformly chosen type at a random column.
func (s *Spawner) SpawnPowerUp(powerUps []PowerUp) []PowerUp {
	if !roll(s.rng, s.powerUpChance) {
		return powerUps
	}
	t := PowerUpType(s.rng.Intn(int(powerUpTypeCount)))
	return append(powerUps, NewPowerUp(s.randomX(), s.lane.SpawnRow(), t))
}

// randomX returns a column in [MinX, MaxX].
func (s *Spawner) randomX() int {
	return s.lane.MinX() + s.rng.Intn(s.lane.MaxX()-s.lane.MinX()+1)
}

// roll returns true with probability p. The RNG is consumed even for
// p of 0 or 1 so changing a chance does not shift the rest of the sequence.
func roll(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}
