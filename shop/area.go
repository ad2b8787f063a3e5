package shop

import (
	"time"

	"github.com/centraunit/shopkit"
	"github.com/centraunit/shopkit/fsm"
	"github.com/sirupsen/logrus"
)

const (
	StateLocked    fsm.StateID = "locked"
	StateUnlocking fsm.StateID = "unlocking"
	StateUnlocked  fsm.StateID = "unlocked"
)

// PurchaseArea is a store section the player buys by standing on it until the
// unlock timer elapses.
type PurchaseArea struct {
	Name           string
	Price          int
	UnlockDuration time.Duration

	wallet Wallet
	clock  Clock

	occupied  bool
	startedAt time.Duration
	declined  int

	machine *fsm.Machine[*PurchaseArea]
	log     logrus.FieldLogger
}

func NewPurchaseArea(name string, price int, unlock time.Duration, log logrus.FieldLogger) *PurchaseArea {
	if log == nil {
		log = logrus.StandardLogger()
	}
	a := &PurchaseArea{
		Name:           name,
		Price:          price,
		UnlockDuration: unlock,
		log:            log.WithField("area", name),
	}
	a.machine = fsm.NewMachine("purchase", a, log)
	a.machine.AddState(lockedState{})
	a.machine.AddState(unlockingState{})
	a.machine.AddState(unlockedState{})
	return a
}

// Dependencies implements shopkit.Injectable.
func (a *PurchaseArea) Dependencies(in *shopkit.Injector) {
	shopkit.Required(in, "wallet", &a.wallet)
	shopkit.Required(in, "clock", &a.clock)
}

func (a *PurchaseArea) Start()     { a.machine.ChangeState(StateLocked) }
func (a *PurchaseArea) Tick()      { a.machine.Update() }
func (a *PurchaseArea) FixedTick() { a.machine.FixedUpdate() }
func (a *PurchaseArea) Close()     { a.machine.Cleanup() }

// SetOccupied records whether the player stands on the area.
func (a *PurchaseArea) SetOccupied(occupied bool) {
	a.occupied = occupied
}

// Unlocked reports whether the area has been bought.
func (a *PurchaseArea) Unlocked() bool {
	return a.machine.Is(StateUnlocked)
}

// Declined returns how many unlock attempts failed for lack of funds.
func (a *PurchaseArea) Declined() int {
	return a.declined
}

func (a *PurchaseArea) State() fsm.StateID {
	return a.machine.Current()
}

type lockedState struct {
	fsm.BaseState[*PurchaseArea]
}

func (lockedState) ID() fsm.StateID { return StateLocked }

func (lockedState) OnUpdate(a *PurchaseArea) {
	if a.occupied {
		a.machine.ChangeState(StateUnlocking)
	}
}

// unlockingState polls the clock until the unlock duration has passed.
type unlockingState struct {
	fsm.BaseState[*PurchaseArea]
}

func (unlockingState) ID() fsm.StateID { return StateUnlocking }

func (unlockingState) OnEnter(a *PurchaseArea) {
	a.startedAt = a.clock.Elapsed()
}

func (unlockingState) OnUpdate(a *PurchaseArea) {
	if !a.occupied {
		a.machine.ChangeState(StateLocked)
		return
	}
	if a.clock.Elapsed()-a.startedAt < a.UnlockDuration {
		return
	}
	if !a.wallet.Spend(a.Price) {
		a.declined++
		a.log.WithFields(logrus.Fields{
			"price":   a.Price,
			"balance": a.wallet.Balance(),
		}).Warn("insufficient funds to unlock area")
		a.machine.ChangeState(StateLocked)
		return
	}
	a.machine.ChangeState(StateUnlocked)
}

type unlockedState struct {
	fsm.BaseState[*PurchaseArea]
}

func (unlockedState) ID() fsm.StateID { return StateUnlocked }

func (unlockedState) OnEnter(a *PurchaseArea) {
	a.log.WithField("price", a.Price).Info("area unlocked")
}
