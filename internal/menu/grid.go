package menu

import "github.com/samdwyer/monsterbattle/internal/input"

const gridCells = 4

// navigate moves a position on a 2x2 grid [[0,1],[2,3]]. Moving off an edge
// leaves the position unchanged; there is no wrapping.
func navigate(pos int, s input.Signal) int {
	if pos < 0 || pos >= gridCells {
		unreachable("grid position", pos)
	}
	row, col := pos/2, pos%2

	switch s {
	case input.None:
	case input.Left:
		if col == 1 {
			return pos - 1
		}
	case input.Right:
		if col == 0 {
			return pos + 1
		}
	case input.Up:
		if row == 1 {
			return pos - 2
		}
	case input.Down:
		if row == 0 {
			return pos + 2
		}
	default:
		unreachable("direction", s)
	}
	return pos
}

// Cell returns the column and row of a grid position.
func Cell(pos int) (col, row int) {
	return pos % 2, pos / 2
}
