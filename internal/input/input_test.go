package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestSignalString(t *testing.T) {
	tests := []struct {
		signal   Signal
		expected string
	}{
		{None, "none"},
		{Up, "up"},
		{Down, "down"},
		{Left, "left"},
		{Right, "right"},
		{Confirm, "confirm"},
		{Cancel, "cancel"},
		{Signal(42), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.signal.String())
	}
}

func TestIsDirection(t *testing.T) {
	for _, s := range []Signal{Up, Down, Left, Right} {
		assert.True(t, s.IsDirection(), s.String())
	}
	for _, s := range []Signal{None, Confirm, Cancel} {
		assert.False(t, s.IsDirection(), s.String())
	}
}

func TestFrameDirectionPriority(t *testing.T) {
	assert.Equal(t, None, Frame{}.Direction())
	assert.Equal(t, Up, Frame{Up: true}.Direction())
	assert.Equal(t, Down, Frame{Up: true, Down: true}.Direction())
	assert.Equal(t, Right, Frame{Down: true, Right: true}.Direction())
	assert.Equal(t, Left, Frame{Left: true, Right: true, Up: true}.Direction())
}

func TestCollector(t *testing.T) {
	var c Collector

	assert.True(t, c.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)))
	assert.True(t, c.HandleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	assert.False(t, c.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)))
	assert.False(t, c.HandleKey(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)))

	f := c.Take()
	assert.True(t, f.Right)
	assert.True(t, f.Confirm)
	assert.False(t, f.Cancel)
	assert.False(t, f.Empty())

	assert.True(t, c.Take().Empty(), "Take resets the collector")

	c.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	c.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	f = c.Take()
	assert.True(t, f.Cancel)
	assert.True(t, f.Quit)
}
