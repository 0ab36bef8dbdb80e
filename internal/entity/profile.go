// Package entity provides the battle monsters and their on-screen actors.
package entity

import "time"

// Point is a position in screen cells. Fractional values occur mid-tween.
type Point struct {
	X, Y float64
}

// Side identifies which combatant a monster is in the encounter.
type Side int

const (
	// SidePlayer is the player's monster, shown bottom left.
	SidePlayer Side = iota
	// SideEnemy is the wild monster, shown top right.
	SideEnemy
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Profile is the presentation data that distinguishes the two sides.
type Profile struct {
	Home           Point // sprite resting position
	AppearFrom     Point // sprite slide-in origin
	AppearDuration time.Duration

	PanelHome     Point // name/level/HP panel resting position
	PanelFrom     Point // panel slide-in origin
	PanelDuration time.Duration

	DeathTravel   float64 // rows moved by the faint effect; negative moves up
	DeathDuration time.Duration

	ShowHealthText bool // draw "current/max" under the bar
}

const (
	blinkCycle     = 150 * time.Millisecond
	blinkRepeats   = 10
	healthBarSweep = time.Second
)

// PlayerProfile returns the layout used for the player's monster.
func PlayerProfile() Profile {
	return Profile{
		Home:           Point{X: 12, Y: 10},
		AppearFrom:     Point{X: -10, Y: 10},
		AppearDuration: 800 * time.Millisecond,
		PanelHome:      Point{X: 44, Y: 11},
		PanelFrom:      Point{X: 80, Y: 11},
		PanelDuration:  800 * time.Millisecond,
		DeathTravel:    12,
		DeathDuration:  2 * time.Second,
		ShowHealthText: true,
	}
}

// EnemyProfile returns the layout used for the wild monster.
func EnemyProfile() Profile {
	return Profile{
		Home:           Point{X: 58, Y: 2},
		AppearFrom:     Point{X: -10, Y: 2},
		AppearDuration: 1600 * time.Millisecond,
		PanelHome:      Point{X: 2, Y: 1},
		PanelFrom:      Point{X: -40, Y: 1},
		PanelDuration:  1500 * time.Millisecond,
		DeathTravel:    -12,
		DeathDuration:  2 * time.Second,
	}
}

// ProfileFor returns the default profile for a side.
func ProfileFor(side Side) Profile {
	if side == SideEnemy {
		return EnemyProfile()
	}
	return PlayerProfile()
}
