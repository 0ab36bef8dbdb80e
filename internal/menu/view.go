package menu

import "github.com/samdwyer/monsterbattle/internal/combat"

// View is a snapshot of what the menu shows, for the renderer.
type View struct {
	Line1       string
	Line2       string
	TextVisible bool

	MainVisible bool
	MainOption  MainOption

	MoveVisible bool
	MoveOption  MoveOption
	MoveNames   [combat.MaxMoves]string

	// AckCursor is shown while a message waits for confirm.
	AckCursor bool
}

// View returns the current display state.
func (m *Menu) View() View {
	v := View{
		Line1:       m.line1,
		TextVisible: m.textVisible,
		MainVisible: m.mainVisible,
		MainOption:  m.mainOption,
		MoveVisible: m.moveVisible,
		MoveOption:  m.moveOption,
		MoveNames:   m.moveNames,
		AckCursor:   m.awaiting,
	}
	if m.mainVisible {
		v.Line2 = m.prompt
	}
	return v
}
