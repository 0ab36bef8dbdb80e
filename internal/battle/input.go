package battle

import (
	"go.uber.org/zap"

	"github.com/samdwyer/monsterbattle/internal/input"
)

// HandleInput applies one frame of input. Outside PLAYER_INPUT the only
// accepted input is a confirm that acknowledges a pending message. Inside it,
// a confirm consumes the frame, then a cancel, then a single direction.
func (c *Controller) HandleInput(f input.Frame) {
	switch c.machine.Current() {
	case StatePreBattleInfo, StatePostAttackCheck, StateFleeAttempt:
		if f.Confirm && c.menu.AwaitingAcknowledgment() {
			c.menu.HandleInput(input.Confirm)
		}
		return
	case StatePlayerInput:
	default:
		return
	}

	if f.Confirm {
		c.menu.HandleInput(input.Confirm)
		slot, ok := c.menu.SelectedAttack()
		if !ok {
			return
		}
		if _, known := c.player.Move(slot); !known {
			return
		}
		c.playerMove = slot
		c.logger.Debug("player selected move", zap.Int("slot", slot))
		c.menu.HideMoveMenu()
		c.machine.SetState(StateEnemyInput)
		return
	}
	if f.Cancel {
		c.menu.HandleInput(input.Cancel)
		return
	}
	if dir := f.Direction(); dir != input.None {
		c.menu.HandleInput(dir)
	}
}
