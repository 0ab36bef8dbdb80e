// Package fsm provides a small named-state machine with queued transitions.
//
// A transition requested while another state's OnEnter is still running is not
// executed inline. It is appended to a FIFO queue and applied by the next call
// to Update, so at most one OnEnter runs per call stack.
package fsm

import (
	"go.uber.org/zap"
)

// State is a named state with an optional entry action.
type State[C any] struct {
	Name    string
	OnEnter func(C)
}

// Machine is a finite state machine whose entry actions are bound to a fixed
// context value supplied at construction.
type Machine[C any] struct {
	id       string
	context  C
	states   map[string]State[C]
	current  *State[C]
	changing bool
	queue    []string
	logger   *zap.Logger

	onTransition func(from, to string)
}

// New creates an empty machine. Entry actions receive ctx when invoked.
// A nil logger disables logging.
func New[C any](id string, ctx C, logger *zap.Logger) *Machine[C] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Machine[C]{
		id:      id,
		context: ctx,
		states:  make(map[string]State[C]),
		queue:   make([]string, 0),
		logger:  logger.With(zap.String("fsm", id)),
	}
}

// AddState registers a state. Registering an existing name overwrites it.
func (m *Machine[C]) AddState(name string, onEnter func(C)) {
	m.states[name] = State[C]{Name: name, OnEnter: onEnter}
}

// OnTransition registers an observer called after the current state changes
// and before the new state's OnEnter runs.
func (m *Machine[C]) OnTransition(fn func(from, to string)) {
	m.onTransition = fn
}

// Current returns the current state name, or "" before the first transition.
func (m *Machine[C]) Current() string {
	if m.current == nil {
		return ""
	}
	return m.current.Name
}

// Pending returns the number of queued transition requests.
func (m *Machine[C]) Pending() int {
	return len(m.queue)
}

// Update applies the oldest queued transition, if any. Call once per frame.
func (m *Machine[C]) Update() {
	if len(m.queue) == 0 {
		return
	}
	next := m.queue[0]
	m.queue = m.queue[1:]
	m.SetState(next)
}

// SetState transitions to the named state.
//
// Unknown names are logged and ignored. Requesting the current state is a no-op.
// Requests made while a transition is in progress are queued for Update.
func (m *Machine[C]) SetState(name string) {
	state, ok := m.states[name]
	if !ok {
		m.logger.Warn("tried to change to unknown state", zap.String("state", name))
		return
	}

	if m.current != nil && m.current.Name == name {
		return
	}

	if m.changing {
		m.queue = append(m.queue, name)
		return
	}

	m.changing = true
	defer func() { m.changing = false }()

	from := "none"
	if m.current != nil {
		from = m.current.Name
	}
	m.logger.Debug("state change", zap.String("from", from), zap.String("to", name))

	m.current = &state
	if m.onTransition != nil {
		m.onTransition(from, name)
	}

	if state.OnEnter != nil {
		state.OnEnter(m.context)
		m.logger.Debug("on enter invoked", zap.String("state", name))
	}
}
