package game

import "time"

// Config holds game configuration options.
type Config struct {
	// FPS is the rate of the frame tick that drives input, animation and
	// state updates.
	FPS int

	// PlayerMonster and EnemyMonster are monster ids from monsters.json.
	PlayerMonster string
	EnemyMonster  string

	// FadeDuration is how long the screen takes to fade out before a finished
	// battle restarts.
	FadeDuration time.Duration
}

// DefaultConfig returns the standard encounter at 30 frames per second.
func DefaultConfig() Config {
	return Config{
		FPS:           30,
		PlayerMonster: "iguanignite",
		EnemyMonster:  "carnodusk",
		FadeDuration:  600 * time.Millisecond,
	}
}
