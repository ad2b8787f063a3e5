package shop

import (
	"github.com/centraunit/shopkit"
	"github.com/centraunit/shopkit/fsm"
	"github.com/sirupsen/logrus"
)

// DeadZone is the input magnitude at or below which a character stands still.
const DeadZone = 0.1

// Mover is the slice of a character the locomotion states operate on.
type Mover interface {
	MoveInput() float64
	Speed() float64
	SetVelocity(v float64)
	Travel(distance float64)
	SetAnimation(name string)
	Locomotion() *fsm.Machine[Mover]
	Clock() Clock
}

// Carrier is the slice of a character the carrying states operate on.
type Carrier interface {
	HeldCount() int
	SetCarryPose(carrying bool)
	Carrying() *fsm.Machine[Carrier]
}

// Character is a player or worker that walks around the shop and carries items.
// Locomotion and carrying run as two independent machines on the same character.
type Character struct {
	Name     string
	Capacity int
	MaxSpeed float64

	input Input
	clock Clock
	stock Stock

	velocity  float64
	position  float64
	animation string
	carryPose bool
	held      []string

	locomotion *fsm.Machine[Mover]
	carrying   *fsm.Machine[Carrier]
	log        logrus.FieldLogger
}

// NewCharacter builds a character with its locomotion and carrying machines.
// Dependencies must be injected before the first tick.
func NewCharacter(name string, capacity int, speed float64, log logrus.FieldLogger) *Character {
	if log == nil {
		log = logrus.StandardLogger()
	}
	c := &Character{
		Name:     name,
		Capacity: capacity,
		MaxSpeed: speed,
		log:      log.WithField("character", name),
	}

	c.locomotion = fsm.NewMachine[Mover]("locomotion", c, log)
	c.locomotion.AddState(IdleState{})
	c.locomotion.AddState(MovingState{})

	c.carrying = fsm.NewMachine[Carrier]("carrying", c, log)
	c.carrying.AddState(HandsFreeState{})
	c.carrying.AddState(CarryingState{})
	return c
}

// Dependencies implements shopkit.Injectable.
func (c *Character) Dependencies(in *shopkit.Injector) {
	shopkit.Required(in, "input", &c.input)
	shopkit.Required(in, "clock", &c.clock)
	shopkit.Optional(in, "stock", &c.stock)
}

// Start enters the initial states.
func (c *Character) Start() {
	c.locomotion.ChangeState(StateIdle)
	c.carrying.ChangeState(StateHandsFree)
}

// Tick runs one frame on both machines.
func (c *Character) Tick() {
	c.locomotion.Update()
	c.carrying.Update()
}

// FixedTick runs one fixed step on both machines.
func (c *Character) FixedTick() {
	c.locomotion.FixedUpdate()
	c.carrying.FixedUpdate()
}

// Close tears down both machines.
func (c *Character) Close() {
	c.locomotion.Cleanup()
	c.carrying.Cleanup()
}

// PickUp puts item in the character's hands if there is room.
func (c *Character) PickUp(item string) bool {
	if len(c.held) >= c.Capacity {
		return false
	}
	c.held = append(c.held, item)
	return true
}

// Drop removes the most recently picked up item.
func (c *Character) Drop() (string, bool) {
	if len(c.held) == 0 {
		return "", false
	}
	item := c.held[len(c.held)-1]
	c.held = c.held[:len(c.held)-1]
	return item, true
}

// StockShelf places every held item on the shelves and returns how many were placed.
// Without a Stock service nothing is placed.
func (c *Character) StockShelf() int {
	if c.stock == nil {
		c.log.Warn("no stock service, cannot stock shelf")
		return 0
	}
	placed := 0
	for {
		item, ok := c.Drop()
		if !ok {
			return placed
		}
		c.stock.Put(item, 1)
		placed++
	}
}

func (c *Character) MoveInput() float64 {
	if c.input == nil {
		return 0
	}
	return c.input.MoveMagnitude()
}

func (c *Character) Speed() float64                  { return c.MaxSpeed }
func (c *Character) SetVelocity(v float64)           { c.velocity = v }
func (c *Character) Velocity() float64               { return c.velocity }
func (c *Character) Travel(distance float64)         { c.position += distance }
func (c *Character) Position() float64               { return c.position }
func (c *Character) SetAnimation(name string)        { c.animation = name }
func (c *Character) Animation() string               { return c.animation }
func (c *Character) SetCarryPose(carrying bool)      { c.carryPose = carrying }
func (c *Character) CarryPose() bool                 { return c.carryPose }
func (c *Character) HeldCount() int                  { return len(c.held) }
func (c *Character) Clock() Clock                    { return c.clock }
func (c *Character) Locomotion() *fsm.Machine[Mover] { return c.locomotion }
func (c *Character) Carrying() *fsm.Machine[Carrier] { return c.carrying }
