package roadrush

import "github.com/vovakirdan/turbo-rush/internal/core"

// AdvanceCar applies one tick of player steering. The step is boostStep
// while a speed boost is active and 1 otherwise; the boost counts down
// every tick whether or not the car moves. The result is clamped to the
// lane so out-of-range requests are absorbed silently.
func AdvanceCar(car *Car, left, right bool, lane Lane, boostStep int) {
	step := 1
	if car.HasSpeedBoost {
		step = boostStep
		car.SpeedBoostDuration--
		if car.SpeedBoostDuration <= 0 {
			car.SpeedBoostDuration = 0
			car.HasSpeedBoost = false
		}
	}

	if left && car.X > lane.MinX() {
		car.X = core.Clamp(car.X-step, lane.MinX(), lane.MaxX())
	}
	if right && car.X < lane.MaxX() {
		car.X = core.Clamp(car.X+step, lane.MinX(), lane.MaxX())
	}
}

// AdvanceObstacles moves every obstacle down by speed rows.
func AdvanceObstacles(obstacles []Obstacle, speed int) {
	for i := range obstacles {
		obstacles[i].Y += speed
	}
}

// AdvancePowerUps moves every power-up down one row.
func AdvancePowerUps(powerUps []PowerUp) {
	for i := range powerUps {
		powerUps[i].Y++
	}
}

// AdvanceBullets moves every bullet up one row.
func AdvanceBullets(bullets []Bullet) {
	for i := range bullets {
		bullets[i].Y--
	}
}
