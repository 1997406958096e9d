package core

// Sound is a discrete audio event emitted by a game.
// Each sound is its own playback category: at most one sound of a
// category is in flight at a time.
type Sound int

const (
	SoundCrash    Sound = iota // Bullet destroyed an obstacle
	SoundPowerUp               // Score boost collected
	SoundGameOver              // Fatal collision
	soundCount
)

// SoundCount is the number of distinct sound categories.
const SoundCount = int(soundCount)

// String returns the event name used in logs.
func (s Sound) String() string {
	switch s {
	case SoundCrash:
		return "crash"
	case SoundPowerUp:
		return "powerup"
	case SoundGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}
