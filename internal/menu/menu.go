// Package menu implements the battle menu: main and move-select navigation,
// the placeholder item/switch/flee panels, and the info panel message queue
// that waits for the player to acknowledge each message.
package menu

import (
	"github.com/samdwyer/monsterbattle/internal/combat"
	"github.com/samdwyer/monsterbattle/internal/input"
)

// Placeholder messages for menu options that are not implemented.
const (
	MsgBagEmpty   = "Your bag is empty..."
	MsgNoSwitch   = "You have no other monsters in your party..."
	MsgFleeFailed = "You fail to run away..."
)

// EmptyMoveLabel is drawn in move slots without a move.
const EmptyMoveLabel = "-"

const promptLine1 = "what should"

// Menu tracks the battle menu state for one battle. It is not safe for
// concurrent use; the host frame loop owns it.
type Menu struct {
	prompt    string
	moveNames [combat.MaxMoves]string
	moveCount int

	active     ActiveMenu
	mainOption MainOption
	moveOption MoveOption

	selectedAttack int
	hasSelected    bool

	queue    []string
	callback func()
	awaiting bool

	line1       string
	textVisible bool
	mainVisible bool
	moveVisible bool
}

// New creates a hidden menu for the named monster and its known move names.
// Names beyond the fourth are ignored.
func New(monsterName string, moveNames []string) *Menu {
	m := &Menu{
		prompt:         monsterName + " do next",
		active:         MenuMain,
		mainOption:     OptionFight,
		moveOption:     Move1,
		selectedAttack: -1,
		queue:          make([]string, 0),
		line1:          promptLine1,
	}
	for i := range m.moveNames {
		m.moveNames[i] = EmptyMoveLabel
	}
	for i, name := range moveNames {
		if i == combat.MaxMoves {
			break
		}
		m.moveNames[i] = name
		m.moveCount++
	}
	return m
}

// Active returns the menu receiving input.
func (m *Menu) Active() ActiveMenu { return m.active }

// MainOption returns the highlighted main menu option.
func (m *Menu) MainOption() MainOption { return m.mainOption }

// MoveOption returns the highlighted move slot.
func (m *Menu) MoveOption() MoveOption { return m.moveOption }

// AwaitingAcknowledgment reports whether a message is waiting for confirm.
func (m *Menu) AwaitingAcknowledgment() bool { return m.awaiting }

// SelectedAttack returns the committed move slot. It is only available while
// the move menu is active and after a slot holding a move was confirmed.
func (m *Menu) SelectedAttack() (int, bool) {
	if m.active != MenuMoveSelect || !m.hasSelected {
		return 0, false
	}
	return m.selectedAttack, true
}

// ShowMainMenu activates the main menu with FIGHT highlighted and clears any
// committed attack.
func (m *Menu) ShowMainMenu() {
	m.active = MenuMain
	m.line1 = promptLine1
	m.textVisible = true
	m.mainVisible = true
	m.mainOption = OptionFight
	m.selectedAttack = -1
	m.hasSelected = false
}

// HideMainMenu hides the main menu and the info text.
func (m *Menu) HideMainMenu() {
	m.mainVisible = false
	m.textVisible = false
}

// ShowMoveMenu activates the move menu with the first slot highlighted.
func (m *Menu) ShowMoveMenu() {
	m.active = MenuMoveSelect
	m.moveVisible = true
	m.moveOption = Move1
}

// HideMoveMenu hides the move menu and makes the main menu active again.
func (m *Menu) HideMoveMenu() {
	m.active = MenuMain
	m.moveVisible = false
}

// HandleInput applies one input signal.
//
// While a message awaits acknowledgment, confirm and cancel advance the
// message queue and every other signal is ignored. Otherwise cancel returns to the main
// menu, confirm commits the highlighted option, and directions move the
// highlight within the active menu.
func (m *Menu) HandleInput(s input.Signal) {
	switch s {
	case input.None, input.Up, input.Down, input.Left, input.Right, input.Confirm, input.Cancel:
	default:
		unreachable("input signal", s)
	}

	if m.awaiting {
		if s == input.Confirm || s == input.Cancel {
			m.advance()
		}
		return
	}

	switch s {
	case input.Cancel:
		m.switchToMain()
		return
	case input.Confirm:
		switch m.active {
		case MenuMain:
			m.chooseMainOption()
		case MenuMoveSelect:
			m.chooseAttack()
		}
		return
	}

	switch m.active {
	case MenuMain:
		m.mainOption = MainOption(navigate(int(m.mainOption), s))
	case MenuMoveSelect:
		m.moveOption = MoveOption(navigate(int(m.moveOption), s))
	}
}

// EnqueueMessages replaces the pending messages and callback, then shows the
// first message and waits for acknowledgment. With no messages the callback
// runs immediately.
func (m *Menu) EnqueueMessages(messages []string, callback func()) {
	m.queue = append(make([]string, 0, len(messages)), messages...)
	m.callback = callback
	m.advance()
}

// ShowMessageNoInputRequired shows a single message without waiting for
// acknowledgment and runs callback synchronously.
func (m *Menu) ShowMessageNoInputRequired(message string, callback func()) {
	m.line1 = message
	m.textVisible = true
	m.awaiting = false
	if callback != nil {
		callback()
	}
}

// advance shows the next queued message, or runs the queued callback once the
// queue is empty.
func (m *Menu) advance() {
	m.awaiting = false
	m.line1 = ""
	m.textVisible = true

	if len(m.queue) == 0 {
		if cb := m.callback; cb != nil {
			m.callback = nil
			cb()
		}
		return
	}

	m.line1 = m.queue[0]
	m.queue = m.queue[1:]
	m.awaiting = true
}

func (m *Menu) switchToMain() {
	m.awaiting = false
	m.HideMoveMenu()
	m.ShowMainMenu()
}

func (m *Menu) chooseMainOption() {
	m.HideMainMenu()

	switch m.mainOption {
	case OptionFight:
		m.ShowMoveMenu()
	case OptionItem:
		m.EnqueueMessages([]string{MsgBagEmpty}, m.switchToMain)
		m.active = MenuItem
	case OptionSwitch:
		m.EnqueueMessages([]string{MsgNoSwitch}, m.switchToMain)
		m.active = MenuSwitch
	case OptionFlee:
		m.EnqueueMessages([]string{MsgFleeFailed}, m.switchToMain)
		m.active = MenuFlee
	default:
		unreachable("main option", m.mainOption)
	}
}

func (m *Menu) chooseAttack() {
	idx := m.moveOption.Index()
	if idx >= m.moveCount {
		return
	}
	m.selectedAttack = idx
	m.hasSelected = true
}
