package shop

import (
	"time"

	"github.com/centraunit/shopkit"
	"github.com/centraunit/shopkit/fsm"
	"github.com/sirupsen/logrus"
)

const (
	StateStopped   fsm.StateID = "stopped"
	StateProducing fsm.StateID = "producing"
	StateFull      fsm.StateID = "full"
)

// ProductionMachine turns out one item per cycle until its output tray is full.
type ProductionMachine struct {
	Name     string
	Output   string
	Cycle    time.Duration
	Capacity int

	clock Clock

	running   bool
	ready     int
	startedAt time.Duration

	machine *fsm.Machine[*ProductionMachine]
	log     logrus.FieldLogger
}

func NewProductionMachine(name, output string, cycle time.Duration, capacity int, log logrus.FieldLogger) *ProductionMachine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	p := &ProductionMachine{
		Name:     name,
		Output:   output,
		Cycle:    cycle,
		Capacity: capacity,
		log:      log.WithField("station", name),
	}
	p.machine = fsm.NewMachine("production", p, log)
	p.machine.AddState(stoppedState{})
	p.machine.AddState(producingState{})
	p.machine.AddState(fullState{})
	return p
}

// Dependencies implements shopkit.Injectable.
func (p *ProductionMachine) Dependencies(in *shopkit.Injector) {
	shopkit.Required(in, "clock", &p.clock)
}

func (p *ProductionMachine) Start()     { p.machine.ChangeState(StateStopped) }
func (p *ProductionMachine) Tick()      { p.machine.Update() }
func (p *ProductionMachine) FixedTick() { p.machine.FixedUpdate() }
func (p *ProductionMachine) Close()     { p.machine.Cleanup() }

// SetRunning switches the station on or off. A stopped station keeps its output.
func (p *ProductionMachine) SetRunning(running bool) {
	p.running = running
}

// Ready returns the number of finished items waiting to be collected.
func (p *ProductionMachine) Ready() int {
	return p.ready
}

func (p *ProductionMachine) State() fsm.StateID {
	return p.machine.Current()
}

// Collect moves finished items into c's hands until either side runs out.
func (p *ProductionMachine) Collect(c *Character) int {
	n := 0
	for p.ready > 0 && c.PickUp(p.Output) {
		p.ready--
		n++
	}
	return n
}

type stoppedState struct {
	fsm.BaseState[*ProductionMachine]
}

func (stoppedState) ID() fsm.StateID { return StateStopped }

func (stoppedState) OnUpdate(p *ProductionMachine) {
	if p.running {
		p.machine.ChangeState(StateProducing)
	}
}

// producingState runs one cycle per activation; finishing a cycle re-enters
// the state to start the next one.
type producingState struct {
	fsm.BaseState[*ProductionMachine]
}

func (producingState) ID() fsm.StateID { return StateProducing }

func (producingState) OnEnter(p *ProductionMachine) {
	p.startedAt = p.clock.Elapsed()
}

func (producingState) OnUpdate(p *ProductionMachine) {
	switch {
	case !p.running:
		p.machine.ChangeState(StateStopped)
	case p.ready >= p.Capacity:
		p.machine.ChangeState(StateFull)
	case p.clock.Elapsed()-p.startedAt >= p.Cycle:
		p.ready++
		p.log.WithField("ready", p.ready).Debug("item produced")
		p.machine.ChangeState(StateProducing)
	}
}

type fullState struct {
	fsm.BaseState[*ProductionMachine]
}

func (fullState) ID() fsm.StateID { return StateFull }

func (fullState) OnUpdate(p *ProductionMachine) {
	switch {
	case !p.running:
		p.machine.ChangeState(StateStopped)
	case p.ready < p.Capacity:
		p.machine.ChangeState(StateProducing)
	}
}
