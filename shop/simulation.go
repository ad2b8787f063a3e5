package shop

import (
	"github.com/centraunit/shopkit"
	"github.com/sirupsen/logrus"
)

// Owner is a gameplay component driven by the simulation.
type Owner interface {
	shopkit.Injectable
	Start()
	Tick()
	FixedTick()
	Close()
}

// Simulation is the tick source: it advances the clock, runs fixed steps, then frames.
type Simulation struct {
	registry     *shopkit.Registry
	clock        Clock
	fixedPerTick int
	owners       []Owner
	ticks        int
	log          logrus.FieldLogger
}

func NewSimulation(reg *shopkit.Registry, fixedPerTick int, log logrus.FieldLogger) *Simulation {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if fixedPerTick < 1 {
		fixedPerTick = 1
	}
	return &Simulation{
		registry:     reg,
		fixedPerTick: fixedPerTick,
		log:          log.WithField("component", "simulation"),
	}
}

// Dependencies implements shopkit.Injectable.
func (s *Simulation) Dependencies(in *shopkit.Injector) {
	shopkit.Required(in, "clock", &s.clock)
}

// Add injects owner and starts it. An owner missing a required service is not added.
func (s *Simulation) Add(owner Owner) error {
	in := shopkit.Inject(s.registry, owner)
	if err := in.RequiredErr(); err != nil {
		return err
	}
	owner.Start()
	s.owners = append(s.owners, owner)
	return nil
}

// Step runs one frame: fixed steps first, then one update on every owner.
func (s *Simulation) Step() {
	for i := 0; i < s.fixedPerTick; i++ {
		if s.clock != nil {
			s.clock.Advance(s.clock.FixedStep())
		}
		for _, o := range s.owners {
			o.FixedTick()
		}
	}
	for _, o := range s.owners {
		o.Tick()
	}
	s.ticks++
}

// Run steps n frames, calling before ahead of each one when it is non-nil.
func (s *Simulation) Run(n int, before func(tick int)) {
	for i := 0; i < n; i++ {
		if before != nil {
			before(i)
		}
		s.Step()
	}
	s.log.WithField("ticks", s.ticks).Debug("run finished")
}

// Ticks returns the number of frames stepped so far.
func (s *Simulation) Ticks() int {
	return s.ticks
}

// Close tears down every owner in reverse order of addition.
func (s *Simulation) Close() {
	for i := len(s.owners) - 1; i >= 0; i-- {
		s.owners[i].Close()
	}
	s.owners = nil
}
