package entity

import (
	"github.com/samdwyer/monsterbattle/internal/anim"
)

// HealthBar is an animated fill meter. It implements combat.HealthDisplay.
type HealthBar struct {
	sched    *anim.Scheduler
	fraction float64
}

// NewHealthBar creates a full health bar.
func NewHealthBar(sched *anim.Scheduler) *HealthBar {
	return &HealthBar{sched: sched, fraction: 1}
}

// Fraction returns the currently displayed fill in [0,1].
func (h *HealthBar) Fraction() float64 {
	return h.fraction
}

// SetFraction sweeps the fill to f and then calls onComplete.
func (h *HealthBar) SetFraction(f float64, onComplete func()) {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	from := h.fraction
	h.sched.Tween(healthBarSweep, func(p float64) {
		h.fraction = anim.Lerp(from, f, anim.EaseOutSine(p))
	}, onComplete)
}

// Actor is the on-screen presence of one monster: its sprite and its status
// panel. It implements combat.Visual.
type Actor struct {
	sched   *anim.Scheduler
	profile Profile

	SpritePos     Point
	SpriteVisible bool
	SpriteHidden  bool // true during the off phase of the hit blink

	PanelPos     Point
	PanelVisible bool

	Bar *HealthBar
}

// NewActor creates a hidden actor resting at its profile's home positions.
func NewActor(sched *anim.Scheduler, profile Profile) *Actor {
	return &Actor{
		sched:     sched,
		profile:   profile,
		SpritePos: profile.Home,
		PanelPos:  profile.PanelHome,
		Bar:       NewHealthBar(sched),
	}
}

// Profile returns the actor's presentation data.
func (a *Actor) Profile() Profile {
	return a.profile
}

// PlayAppear slides the sprite in from off screen.
func (a *Actor) PlayAppear(onComplete func()) {
	from, to := a.profile.AppearFrom, a.profile.Home
	a.SpriteVisible = true
	a.sched.Tween(a.profile.AppearDuration, func(p float64) {
		a.SpritePos = Point{X: anim.Lerp(from.X, to.X, p), Y: anim.Lerp(from.Y, to.Y, p)}
	}, onComplete)
}

// PlayHealthBarAppear slides the status panel in.
func (a *Actor) PlayHealthBarAppear(onComplete func()) {
	from, to := a.profile.PanelFrom, a.profile.PanelHome
	a.PanelVisible = true
	a.sched.Tween(a.profile.PanelDuration, func(p float64) {
		a.PanelPos = Point{X: anim.Lerp(from.X, to.X, p), Y: anim.Lerp(from.Y, to.Y, p)}
	}, onComplete)
}

// PlayTakeDamage blinks the sprite.
func (a *Actor) PlayTakeDamage(onComplete func()) {
	a.sched.Tween(blinkCycle*blinkRepeats, func(p float64) {
		if p >= 1 {
			a.SpriteHidden = false
			return
		}
		cycle := p * blinkRepeats
		a.SpriteHidden = cycle-float64(int(cycle)) >= 0.5
	}, onComplete)
}

// PlayDeath moves the sprite off screen vertically.
func (a *Actor) PlayDeath(onComplete func()) {
	startY := a.SpritePos.Y
	endY := startY + a.profile.DeathTravel
	a.sched.Tween(a.profile.DeathDuration, func(p float64) {
		a.SpritePos.Y = anim.Lerp(startY, endY, p)
	}, func() {
		a.SpriteVisible = false
		if onComplete != nil {
			onComplete()
		}
	})
}
