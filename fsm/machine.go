package fsm

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Machine holds the mutually exclusive states of one owner and drives their lifecycle.
// It has no timer; the owner calls Update and FixedUpdate from its own tick source.
// A Machine must be driven from a single call site and is not safe for concurrent use.
type Machine[O any] struct {
	name     string
	owner    O
	states   map[StateID]State[O]
	current  State[O]
	previous StateID
	log      logrus.FieldLogger
}

// NewMachine creates a machine bound to owner. name labels log entries, e.g. "locomotion".
// A nil logger discards output.
func NewMachine[O any](name string, owner O, log logrus.FieldLogger) *Machine[O] {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Machine[O]{
		name:   name,
		owner:  owner,
		states: make(map[StateID]State[O]),
		log: log.WithFields(logrus.Fields{
			"machine": name,
			"owner":   fmt.Sprintf("%T", owner),
		}),
	}
}

// AddState registers s under its ID, replacing any state with the same ID.
func (m *Machine[O]) AddState(s State[O]) {
	m.states[s.ID()] = s
}

// ChangeState exits the current state and enters the state registered as id.
// An unknown id is logged and leaves the current state untouched.
// Changing to the current state exits and re-enters it.
func (m *Machine[O]) ChangeState(id StateID) bool {
	next, ok := m.states[id]
	if !ok {
		err := &UnknownStateError{Owner: fmt.Sprintf("%T", m.owner), State: id}
		m.log.WithField("state", id).Warn(err.Error())
		return false
	}

	if m.current != nil {
		m.previous = m.current.ID()
		m.current.OnExit(m.owner)
	}
	m.current = next
	m.log.WithFields(logrus.Fields{"from": m.previous, "state": id}).Debug("state changed")
	next.OnEnter(m.owner)
	return true
}

// Update forwards one frame tick to the current state.
func (m *Machine[O]) Update() {
	if m.current == nil {
		return
	}
	m.current.OnUpdate(m.owner)
}

// FixedUpdate forwards one fixed step to the current state.
func (m *Machine[O]) FixedUpdate() {
	if m.current == nil {
		return
	}
	m.current.OnFixedUpdate(m.owner)
}

// Cleanup exits the current state and drops every registered state.
// States must be added again before the machine is driven.
func (m *Machine[O]) Cleanup() {
	if m.current != nil {
		m.current.OnExit(m.owner)
	}
	m.current = nil
	m.previous = StateNone
	clear(m.states)
}

// Current returns the ID of the active state, or StateNone.
func (m *Machine[O]) Current() StateID {
	if m.current == nil {
		return StateNone
	}
	return m.current.ID()
}

// Previous returns the ID of the state exited by the last transition.
func (m *Machine[O]) Previous() StateID {
	return m.previous
}

// Is reports whether id is the active state.
func (m *Machine[O]) Is(id StateID) bool {
	return m.current != nil && m.current.ID() == id
}

// Has reports whether a state is registered as id.
func (m *Machine[O]) Has(id StateID) bool {
	_, ok := m.states[id]
	return ok
}

// Owner returns the value the machine's states operate on.
func (m *Machine[O]) Owner() O {
	return m.owner
}

// Name returns the label given at construction.
func (m *Machine[O]) Name() string {
	return m.name
}
