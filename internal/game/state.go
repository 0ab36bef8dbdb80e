package game

// State represents the lifecycle of a battle scene.
type State int

const (
	// StateBattle is the running encounter.
	StateBattle State = iota
	// StateFadeOut is the fade to black after the battle finished.
	StateFadeOut
	// StateDone means the scene is over and a fresh one should start.
	StateDone
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateBattle:
		return "battle"
	case StateFadeOut:
		return "fade_out"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}
