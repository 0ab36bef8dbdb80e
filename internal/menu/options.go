package menu

import "fmt"

// ActiveMenu is the panel currently receiving input.
type ActiveMenu int

const (
	MenuMain ActiveMenu = iota
	MenuMoveSelect
	MenuItem
	MenuSwitch
	MenuFlee
)

// String returns the menu name.
func (a ActiveMenu) String() string {
	switch a {
	case MenuMain:
		return "BATTLE_MAIN"
	case MenuMoveSelect:
		return "BATTLE_MOVE_SELECT"
	case MenuItem:
		return "BATTLE_ITEM"
	case MenuSwitch:
		return "BATTLE_SWITCH"
	case MenuFlee:
		return "BATTLE_FLEE"
	default:
		return "unknown"
	}
}

// MainOption is an entry of the main battle menu. The values are grid
// positions, laid out row-major as [[FIGHT, SWITCH], [ITEM, FLEE]].
type MainOption int

const (
	OptionFight MainOption = iota
	OptionSwitch
	OptionItem
	OptionFlee
)

// String returns the label drawn for the option.
func (o MainOption) String() string {
	switch o {
	case OptionFight:
		return "FIGHT"
	case OptionSwitch:
		return "SWITCH"
	case OptionItem:
		return "ITEM"
	case OptionFlee:
		return "FLEE"
	default:
		return "unknown"
	}
}

// MoveOption is a slot of the move menu, laid out like the main menu.
type MoveOption int

const (
	Move1 MoveOption = iota
	Move2
	Move3
	Move4
)

// String returns the slot name.
func (o MoveOption) String() string {
	switch o {
	case Move1:
		return "MOVE_1"
	case Move2:
		return "MOVE_2"
	case Move3:
		return "MOVE_3"
	case Move4:
		return "MOVE_4"
	default:
		return "unknown"
	}
}

// Index returns the move slot index for the option.
func (o MoveOption) Index() int {
	switch o {
	case Move1:
		return 0
	case Move2:
		return 1
	case Move3:
		return 2
	case Move4:
		return 3
	default:
		unreachable("move option", o)
		return -1
	}
}

// unreachable fails loudly on a value outside a closed option set.
func unreachable(kind string, v any) {
	panic(fmt.Sprintf("menu: reached forbidden guard with unexpected %s value: %v", kind, v))
}
