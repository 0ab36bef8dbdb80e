// Package combat provides the live battle state of a creature and the flat
// damage exchange used by the turn controller.
package combat

// MaxMoves is the number of move slots a combatant can know.
const MaxMoves = 4

// Move is an attack a combatant can use. Moves are shared read-only data.
type Move struct {
	ID        int
	Name      string
	Animation string
}

// MoveLookup resolves static move data by id.
type MoveLookup interface {
	// GetMove returns the move with the given id, or false if none exists.
	GetMove(id int) (Move, bool)
}

// Visual is the presentation collaborator for a combatant. Each method begins
// a fixed-duration effect and calls onComplete exactly once when it ends.
type Visual interface {
	PlayAppear(onComplete func())
	PlayHealthBarAppear(onComplete func())
	PlayTakeDamage(onComplete func())
	PlayDeath(onComplete func())
}

// HealthDisplay animates a health bar towards a fill fraction in [0,1].
type HealthDisplay interface {
	SetFraction(fraction float64, onComplete func())
}

// Config describes a combatant at the start of a battle.
type Config struct {
	Name       string
	Asset      string // opaque visual reference
	CurrentHP  int    // 0 means full health
	MaxHP      int
	BaseAttack int
	Level      int
	MoveIDs    []int

	Moves  MoveLookup
	Visual Visual
	Health HealthDisplay
}

// Combatant is a creature's live state for the duration of one battle.
type Combatant struct {
	name          string
	asset         string
	currentHealth int
	maxHealth     int
	baseAttack    int
	level         int
	moves         []Move

	visual Visual
	health HealthDisplay
}

// New creates a combatant. Move ids that the lookup cannot resolve are skipped,
// and only the first MaxMoves resolved moves are kept.
func New(cfg Config) *Combatant {
	maxHP := cfg.MaxHP
	if maxHP < 0 {
		maxHP = 0
	}
	current := cfg.CurrentHP
	if current <= 0 || current > maxHP {
		current = maxHP
	}

	moves := make([]Move, 0, MaxMoves)
	if cfg.Moves != nil {
		for _, id := range cfg.MoveIDs {
			if len(moves) == MaxMoves {
				break
			}
			if move, ok := cfg.Moves.GetMove(id); ok {
				moves = append(moves, move)
			}
		}
	}

	visual := cfg.Visual
	if visual == nil {
		visual = instantVisual{}
	}
	health := cfg.Health
	if health == nil {
		health = instantHealth{}
	}

	return &Combatant{
		name:          cfg.Name,
		asset:         cfg.Asset,
		currentHealth: current,
		maxHealth:     maxHP,
		baseAttack:    cfg.BaseAttack,
		level:         cfg.Level,
		moves:         moves,
		visual:        visual,
		health:        health,
	}
}

// Name returns the combatant's display name.
func (c *Combatant) Name() string { return c.name }

// Asset returns the opaque visual reference.
func (c *Combatant) Asset() string { return c.asset }

// CurrentHealth returns the remaining hit points.
func (c *Combatant) CurrentHealth() int { return c.currentHealth }

// MaxHealth returns the maximum hit points.
func (c *Combatant) MaxHealth() int { return c.maxHealth }

// BaseAttack returns the flat damage dealt per attack.
func (c *Combatant) BaseAttack() int { return c.baseAttack }

// Level returns the display level.
func (c *Combatant) Level() int { return c.level }

// Moves returns a copy of the known moves.
func (c *Combatant) Moves() []Move {
	out := make([]Move, len(c.moves))
	copy(out, c.moves)
	return out
}

// Move returns the move in the given slot, or false if the slot is empty.
func (c *Combatant) Move(slot int) (Move, bool) {
	if slot < 0 || slot >= len(c.moves) {
		return Move{}, false
	}
	return c.moves[slot], true
}

// IsFainted reports whether health has reached zero.
func (c *Combatant) IsFainted() bool {
	return c.currentHealth <= 0
}

// HealthFraction returns current/max health, or 0 when max health is 0.
func (c *Combatant) HealthFraction() float64 {
	if c.maxHealth <= 0 {
		return 0
	}
	return float64(c.currentHealth) / float64(c.maxHealth)
}

// TakeDamage subtracts amount from health, clamping at zero, and reports the
// new fraction to the health display. onComplete fires once the display has
// finished updating. A fainted combatant's health is left unchanged.
func (c *Combatant) TakeDamage(amount int, onComplete func()) {
	if !c.IsFainted() {
		c.currentHealth -= amount
		if c.currentHealth < 0 {
			c.currentHealth = 0
		}
		if c.currentHealth > c.maxHealth {
			c.currentHealth = c.maxHealth
		}
	}
	c.health.SetFraction(c.HealthFraction(), onComplete)
}

// PlayAppear starts the appear effect.
func (c *Combatant) PlayAppear(onComplete func()) { c.visual.PlayAppear(onComplete) }

// PlayHealthBarAppear starts the health bar appear effect.
func (c *Combatant) PlayHealthBarAppear(onComplete func()) { c.visual.PlayHealthBarAppear(onComplete) }

// PlayTakeDamage starts the hit effect.
func (c *Combatant) PlayTakeDamage(onComplete func()) { c.visual.PlayTakeDamage(onComplete) }

// PlayDeath starts the faint effect.
func (c *Combatant) PlayDeath(onComplete func()) { c.visual.PlayDeath(onComplete) }

// instantVisual completes every effect immediately.
type instantVisual struct{}

func (instantVisual) PlayAppear(onComplete func())          { call(onComplete) }
func (instantVisual) PlayHealthBarAppear(onComplete func()) { call(onComplete) }
func (instantVisual) PlayTakeDamage(onComplete func())      { call(onComplete) }
func (instantVisual) PlayDeath(onComplete func())           { call(onComplete) }

type instantHealth struct{}

func (instantHealth) SetFraction(_ float64, onComplete func()) { call(onComplete) }

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
