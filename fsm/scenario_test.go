package fsm_test

import (
	"testing"

	"github.com/centraunit/shopkit/fsm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	walkerIdle   fsm.StateID = "idle"
	walkerMoving fsm.StateID = "moving"
)

type walker struct {
	input   float64
	machine *fsm.Machine[*walker]
	log     []string
}

type walkerIdleState struct{ fsm.BaseState[*walker] }

func (walkerIdleState) ID() fsm.StateID { return walkerIdle }
func (walkerIdleState) OnEnter(w *walker) {
	w.log = append(w.log, "idle.enter")
}
func (walkerIdleState) OnUpdate(w *walker) {
	if w.input > 0.1 {
		w.machine.ChangeState(walkerMoving)
	}
}
func (walkerIdleState) OnFixedUpdate(w *walker) {
	w.log = append(w.log, "idle.fixed")
}
func (walkerIdleState) OnExit(w *walker) {
	w.log = append(w.log, "idle.exit")
}

type walkerMovingState struct{ fsm.BaseState[*walker] }

func (walkerMovingState) ID() fsm.StateID { return walkerMoving }
func (walkerMovingState) OnEnter(w *walker) {
	w.log = append(w.log, "moving.enter")
}
func (walkerMovingState) OnFixedUpdate(w *walker) {
	w.log = append(w.log, "moving.fixed")
}

func TestLocomotionScenario(t *testing.T) {
	w := &walker{}
	w.machine = fsm.NewMachine("locomotion", w, nil)
	w.machine.AddState(walkerIdleState{})
	w.machine.AddState(walkerMovingState{})
	require.Equal(t, fsm.StateNone, w.machine.Current())

	require.True(t, w.machine.ChangeState(walkerIdle))
	assert.Equal(t, []string{"idle.enter"}, w.log)

	w.input = 0.5
	w.machine.Update()
	assert.True(t, w.machine.Is(walkerMoving))

	w.machine.FixedUpdate()
	w.machine.FixedUpdate()
	assert.Equal(t, []string{"idle.enter", "idle.exit", "moving.enter", "moving.fixed", "moving.fixed"}, w.log)
}
