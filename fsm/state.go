// Package fsm implements a generic state machine bound to an owner value.
//
// Each owner builds its own Machine, adds its states once during setup and then
// drives it with Update and FixedUpdate from its tick callbacks. Parallel behavior
// is modeled by running several independent machines on one owner.
package fsm

// StateID identifies a state within one machine.
type StateID string

// StateNone is the current state of a machine before its first transition and after Cleanup.
const StateNone StateID = ""

// State is one mode of owner behavior.
//
// Lifecycle per activation:
//  1. OnEnter - once, before any update
//  2. OnUpdate / OnFixedUpdate - zero or more times, independent cadences
//  3. OnExit - once, before the next state's OnEnter
//
// A State instance is reused across activations; fields that must be fresh per
// activation are reset in OnEnter.
type State[O any] interface {
	ID() StateID
	OnEnter(owner O)
	OnUpdate(owner O)
	OnFixedUpdate(owner O)
	OnExit(owner O)
}

// BaseState provides no-op hooks. Embed it and override only what the state needs.
type BaseState[O any] struct{}

func (BaseState[O]) OnEnter(O)       {}
func (BaseState[O]) OnUpdate(O)      {}
func (BaseState[O]) OnFixedUpdate(O) {}
func (BaseState[O]) OnExit(O)        {}
