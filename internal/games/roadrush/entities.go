package roadrush

import "github.com/vovakirdan/turbo-rush/internal/core"

// bulletSpent marks a bullet that hit something this tick. The cull step
// removes it together with bullets that left the top of the lane.
const bulletSpent = -1

// Lane is the playfield. Row 0 and row Height-1 are the road edges;
// entities live on rows 1..Height-2 and columns 1..Width-2.
type Lane struct {
	Width  int
	Height int
}

// MinX returns the leftmost column the car may occupy.
func (l Lane) MinX() int {
	return 1
}

// MaxX returns the rightmost column the car may occupy.
func (l Lane) MaxX() int {
	return l.Width - 2
}

// SpawnRow returns the row new obstacles and power-ups appear on.
func (l Lane) SpawnRow() int {
	return 1
}

// CarRow returns the fixed row of the car.
func (l Lane) CarRow() int {
	return l.Height - 2
}

// Center returns the column the car starts on.
func (l Lane) Center() int {
	return l.Width / 2
}

// Car is the player's vehicle. Its row never changes.
type Car struct {
	core.Point
	HasSpeedBoost      bool
	SpeedBoostDuration int // Ticks of boost remaining
}

// NewCar creates a car at the given cell with no boost.
func NewCar(x, y int) Car {
	return Car{Point: core.Point{X: x, Y: y}}
}

// Obstacle scrolls down the lane. Touching the car ends the game.
type Obstacle struct {
	core.Point
}

// NewObstacle creates an obstacle at the given cell.
func NewObstacle(x, y int) Obstacle {
	return Obstacle{Point: core.Point{X: x, Y: y}}
}

// PowerUpType selects the effect applied when the car collects a power-up.
type PowerUpType int

const (
	PowerUpScoreBoost PowerUpType = iota
	PowerUpSpeedBoost
	powerUpTypeCount
)

// String returns the name of the power-up type.
func (p PowerUpType) String() string {
	switch p {
	case PowerUpScoreBoost:
		return "ScoreBoost"
	case PowerUpSpeedBoost:
		return "SpeedBoost"
	default:
		return "?"
	}
}

// PowerUp scrolls down the lane until collected.
type PowerUp struct {
	core.Point
	Type PowerUpType
}

// NewPowerUp creates a power-up at the given cell.
func NewPowerUp(x, y int, t PowerUpType) PowerUp {
	return PowerUp{Point: core.Point{X: x, Y: y}, Type: t}
}

// Bullet travels up the lane from just above the car.
type Bullet struct {
	core.Point
}

// NewBullet creates a bullet at the given cell.
func NewBullet(x, y int) Bullet {
	return Bullet{Point: core.Point{X: x, Y: y}}
}

// Spent reports whether the bullet already hit an obstacle.
func (b Bullet) Spent() bool {
	return b.Y == bulletSpent
}
