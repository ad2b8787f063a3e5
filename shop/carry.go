package shop

import "github.com/centraunit/shopkit/fsm"

const (
	StateHandsFree fsm.StateID = "hands_free"
	StateCarrying  fsm.StateID = "carrying"
)

// HandsFreeState waits for the character to pick something up.
type HandsFreeState struct {
	fsm.BaseState[Carrier]
}

func (HandsFreeState) ID() fsm.StateID { return StateHandsFree }

func (HandsFreeState) OnUpdate(c Carrier) {
	if c.HeldCount() > 0 {
		c.Carrying().ChangeState(StateCarrying)
	}
}

// CarryingState keeps the carry pose while the character holds items.
type CarryingState struct {
	fsm.BaseState[Carrier]
}

func (CarryingState) ID() fsm.StateID { return StateCarrying }

func (CarryingState) OnEnter(c Carrier) {
	c.SetCarryPose(true)
}

func (CarryingState) OnUpdate(c Carrier) {
	if c.HeldCount() == 0 {
		c.Carrying().ChangeState(StateHandsFree)
	}
}

func (CarryingState) OnExit(c Carrier) {
	c.SetCarryPose(false)
}
