package battle

// Battle states, in the order a battle normally visits them.
const (
	StateIntro           = "INTRO"
	StatePreBattleInfo   = "PRE_BATTLE_INFO"
	StateBringOutMonster = "BRING_OUT_MONSTER"
	StatePlayerInput     = "PLAYER_INPUT"
	StateEnemyInput      = "ENEMY_INPUT"
	StateBattle          = "BATTLE"
	StatePostAttackCheck = "POST_ATTACK_CHECK"
	StateFinished        = "FINISHED"
	StateFleeAttempt     = "FLEE_ATTEMPT"
)

// Outcome is how a battle ended.
type Outcome int

const (
	// OutcomeNone means the battle has not finished.
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
	OutcomeFled
)

// String returns the outcome name used in logs and spans.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeFled:
		return "fled"
	default:
		return "unknown"
	}
}
