package shop

import "github.com/centraunit/shopkit/fsm"

const (
	StateIdle   fsm.StateID = "idle"
	StateMoving fsm.StateID = "moving"

	AnimIdle = "idle"
	AnimRun  = "run"
)

// IdleState holds the character still until the input leaves the dead zone.
type IdleState struct {
	fsm.BaseState[Mover]
}

func (IdleState) ID() fsm.StateID { return StateIdle }

func (IdleState) OnEnter(m Mover) {
	m.SetVelocity(0)
	m.SetAnimation(AnimIdle)
}

func (IdleState) OnUpdate(m Mover) {
	if m.MoveInput() > DeadZone {
		m.Locomotion().ChangeState(StateMoving)
	}
}

// MovingState moves the character proportionally to the input on every fixed step.
type MovingState struct {
	fsm.BaseState[Mover]
}

func (MovingState) ID() fsm.StateID { return StateMoving }

func (MovingState) OnEnter(m Mover) {
	m.SetAnimation(AnimRun)
}

func (MovingState) OnUpdate(m Mover) {
	if m.MoveInput() <= DeadZone {
		m.Locomotion().ChangeState(StateIdle)
	}
}

func (MovingState) OnFixedUpdate(m Mover) {
	v := m.MoveInput() * m.Speed()
	m.SetVelocity(v)
	if clock := m.Clock(); clock != nil {
		m.Travel(v * clock.FixedStep().Seconds())
	}
}

func (MovingState) OnExit(m Mover) {
	m.SetVelocity(0)
}
