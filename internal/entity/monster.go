package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/monsterbattle/internal/anim"
	"github.com/samdwyer/monsterbattle/internal/combat"
	"github.com/samdwyer/monsterbattle/internal/gamedata"
)

// Monster is a combatant together with the definition it was spawned from and
// the actor that presents it.
type Monster struct {
	*combat.Combatant
	Def   *gamedata.MonsterDef
	Side  Side
	Actor *Actor
}

// NewMonsterFromDef creates a full-health battle monster from a data-driven
// definition, using the default profile for its side.
func NewMonsterFromDef(def *gamedata.MonsterDef, side Side, moves combat.MoveLookup, sched *anim.Scheduler) *Monster {
	return NewMonster(def, side, ProfileFor(side), moves, sched)
}

// NewMonster is NewMonsterFromDef with an explicit presentation profile.
func NewMonster(def *gamedata.MonsterDef, side Side, profile Profile, moves combat.MoveLookup, sched *anim.Scheduler) *Monster {
	actor := NewActor(sched, profile)
	c := combat.New(combat.Config{
		Name:       def.Name,
		Asset:      def.Asset,
		MaxHP:      def.HP,
		BaseAttack: def.Attack,
		Level:      def.Level,
		MoveIDs:    def.Moves,
		Moves:      moves,
		Visual:     actor,
		Health:     actor.Bar,
	})
	return &Monster{
		Combatant: c,
		Def:       def,
		Side:      side,
		Actor:     actor,
	}
}

// Glyph returns the monster's display character.
func (m *Monster) Glyph() rune {
	return m.Def.GlyphRune()
}

// Color returns the tcell color for this monster.
func (m *Monster) Color() tcell.Color {
	return m.Def.TCellColor()
}
