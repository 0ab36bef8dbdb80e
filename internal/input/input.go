// Package input turns raw terminal key events into per-frame battle input.
package input

import "github.com/gdamore/tcell/v2"

// Signal is an abstract menu input.
type Signal int

const (
	None Signal = iota
	Up
	Down
	Left
	Right
	Confirm
	Cancel
)

// String returns the signal name.
func (s Signal) String() string {
	switch s {
	case None:
		return "none"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Confirm:
		return "confirm"
	case Cancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// IsDirection reports whether s is one of the four directions.
func (s Signal) IsDirection() bool {
	return s == Up || s == Down || s == Left || s == Right
}

// Frame is the input collected during one host frame: which directions were
// held and whether confirm or cancel were pressed.
type Frame struct {
	Up, Down, Left, Right bool
	Confirm               bool
	Cancel                bool
	Quit                  bool
}

// Direction returns the single direction for this frame, or None. When
// several are held, left wins over right, right over down, down over up.
func (f Frame) Direction() Signal {
	switch {
	case f.Left:
		return Left
	case f.Right:
		return Right
	case f.Down:
		return Down
	case f.Up:
		return Up
	default:
		return None
	}
}

// Empty reports whether nothing was pressed.
func (f Frame) Empty() bool {
	return f == Frame{}
}

// Collector accumulates key events between frames.
type Collector struct {
	frame Frame
}

// HandleKey records a key event. It returns false for keys it ignores.
func (c *Collector) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		c.frame.Up = true
	case tcell.KeyDown:
		c.frame.Down = true
	case tcell.KeyLeft:
		c.frame.Left = true
	case tcell.KeyRight:
		c.frame.Right = true
	case tcell.KeyEnter:
		c.frame.Confirm = true
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		c.frame.Cancel = true
	case tcell.KeyCtrlC:
		c.frame.Quit = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'z', 'Z':
			c.frame.Confirm = true
		case 'x', 'X':
			c.frame.Cancel = true
		case 'w', 'W', 'k':
			c.frame.Up = true
		case 's', 'S', 'j':
			c.frame.Down = true
		case 'a', 'A', 'h':
			c.frame.Left = true
		case 'd', 'D', 'l':
			c.frame.Right = true
		case 'q', 'Q':
			c.frame.Quit = true
		default:
			return false
		}
	default:
		return false
	}
	return true
}

// Take returns the accumulated frame and resets the collector.
func (c *Collector) Take() Frame {
	f := c.frame
	c.frame = Frame{}
	return f
}
