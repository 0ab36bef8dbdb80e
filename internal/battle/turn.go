package battle

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/monsterbattle/internal/combat"
)

// turnRecord collects what happened in one BATTLE state for the turn span.
type turnRecord struct {
	span         trace.Span
	move         string
	damageDealt  int
	damageTaken  int
	enemyFainted bool
}

// enterBattle resolves one turn: the player attacks first and the enemy
// counter-attacks only if it is still standing.
func (c *Controller) enterBattle() {
	c.menu.HideMoveMenu()
	c.turns++

	move, _ := c.player.Move(c.playerMove)
	rec := &turnRecord{move: move.Name}
	_, rec.span = c.tracer.Start(c.ctx, "battle.turn")

	c.attack(c.player, c.enemy, move.Name, func(res combat.StrikeResult) {
		rec.damageDealt = res.Damage
		if res.TargetFainted {
			rec.enemyFainted = true
			c.endTurn(rec)
			return
		}

		enemyMove, _ := c.enemy.Move(c.enemyMove)
		c.attack(c.enemy, c.player, enemyMove.Name, func(res combat.StrikeResult) {
			rec.damageTaken = res.Damage
			c.endTurn(rec)
		})
	})
}

// attack announces the move, waits the post-message delay, then lands the hit.
func (c *Controller) attack(attacker, target *combat.Combatant, moveName string, onComplete func(combat.StrikeResult)) {
	msg := fmt.Sprintf("%s used %s", attacker.Name(), moveName)
	if moveName == "" {
		msg = fmt.Sprintf("%s attacked", attacker.Name())
	}
	c.menu.ShowMessageNoInputRequired(msg, func() {
		c.sched.After(c.timings.PostMessage, func() {
			combat.Strike(attacker, target, onComplete)
		})
	})
}

func (c *Controller) endTurn(rec *turnRecord) {
	rec.span.SetAttributes(
		attribute.Int("turn", c.turns),
		attribute.String("move", rec.move),
		attribute.Int("damage.dealt", rec.damageDealt),
		attribute.Int("damage.taken", rec.damageTaken),
		attribute.Bool("enemy.fainted", rec.enemyFainted),
	)
	rec.span.End()
	c.machine.SetState(StatePostAttackCheck)
}

// enterPostAttackCheck reports a faint, enemy first, or hands control back to
// the player.
func (c *Controller) enterPostAttackCheck() {
	switch {
	case c.enemy.IsFainted():
		c.outcome = OutcomeVictory
		c.enemy.PlayDeath(func() {
			c.menu.EnqueueMessages([]string{
				fmt.Sprintf("Wild %s fainted", c.enemy.Name()),
				"You have gained some experience",
			}, func() {
				c.machine.SetState(StateFinished)
			})
		})
	case c.player.IsFainted():
		c.outcome = OutcomeDefeat
		c.player.PlayDeath(func() {
			c.menu.EnqueueMessages([]string{
				fmt.Sprintf("%s fainted", c.player.Name()),
				"You have no more monsters, escaping to safety...",
			}, func() {
				c.machine.SetState(StateFinished)
			})
		})
	default:
		c.menu.ShowMainMenu()
		c.machine.SetState(StatePlayerInput)
	}
}
