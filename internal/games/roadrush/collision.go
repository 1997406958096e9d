package roadrush

// Collisions are exact cell matches found by linear scan in insertion
// order; the first match wins. Entity counts stay in the tens, so no
// spatial index is needed.

// CarHit reports whether any obstacle occupies the car's cell.
func CarHit(car Car, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if o.Point == car.Point {
			return true
		}
	}
	return false
}

// CollectPowerUp removes the first power-up on the car's cell and returns
// it. At most one power-up is collected per call.
func CollectPowerUp(car Car, powerUps []PowerUp) ([]PowerUp, PowerUp, bool) {
	for i, p := range powerUps {
		if p.Point == car.Point {
			return append(powerUps[:i], powerUps[i+1:]...), p, true
		}
	}
	return powerUps, PowerUp{}, false
}

// ApplySpeedBoost grants a speed boost. Collecting a second boost while one
// is active restarts the countdown rather than extending it.
func ApplySpeedBoost(car *Car, duration int) {
	car.HasSpeedBoost = duration > 0
	car.SpeedBoostDuration = duration
}

// ResolveBulletHits matches every live bullet against the obstacles. Each
// bullet destroys at most one obstacle; the obstacle is removed and the
// bullet is marked spent in place so indices stay stable during the scan.
// It returns the surviving obstacles and the number of hits.
func ResolveBulletHits(bullets []Bullet, obstacles []Obstacle) ([]Obstacle, int) {
	hits := 0
	for i := range bullets {
		if bullets[i].Spent() {
			continue
		}
		for j, o := range obstacles {
			if o.Point == bullets[i].Point {
				obstacles = append(obstacles[:j], obstacles[j+1:]...)
				bullets[i].Y = bulletSpent
				hits++
				break
			}
		}
	}
	return obstacles, hits
}

// CullBullets removes bullets at or above row 0, which includes spent ones.
func CullBullets(bullets []Bullet) []Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		if b.Y > 0 {
			kept = append(kept, b)
		}
	}
	return kept
}

// CullObstacles removes obstacles that scrolled below maxY.
func CullObstacles(obstacles []Obstacle, maxY int) []Obstacle {
	kept := obstacles[:0]
	for _, o := range obstacles {
		if o.Y <= maxY {
			kept = append(kept, o)
		}
	}
	return kept
}

// CullPowerUps removes power-ups that scrolled below maxY.
func CullPowerUps(powerUps []PowerUp, maxY int) []PowerUp {
	kept := powerUps[:0]
	for _, p := range powerUps {
		if p.Y <= maxY {
			kept = append(kept, p)
		}
	}
	return kept
}
