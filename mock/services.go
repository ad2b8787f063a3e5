package mock

import (
	"time"

	"github.com/centraunit/shopkit"
	"github.com/centraunit/shopkit/shop"
)

// Input is a scripted shop.Input.
type Input struct {
	Magnitude float64
	Reads     int
}

func (i *Input) MoveMagnitude() float64 {
	i.Reads++
	return i.Magnitude
}

// Wallet is a shop.Wallet that records every spend attempt.
type Wallet struct {
	Funds  int
	Spends []int
}

func (w *Wallet) Balance() int { return w.Funds }

func (w *Wallet) Spend(amount int) bool {
	w.Spends = append(w.Spends, amount)
	if amount > w.Funds {
		return false
	}
	w.Funds -= amount
	return true
}

func (w *Wallet) Earn(amount int) { w.Funds += amount }

// Clock is a manual shop.Clock.
type Clock struct {
	Now  time.Duration
	Step time.Duration
}

func (c *Clock) Elapsed() time.Duration   { return c.Now }
func (c *Clock) FixedStep() time.Duration { return c.Step }
func (c *Clock) Advance(d time.Duration)  { c.Now += d }

// Greeter is a contract used by registry tests.
type Greeter interface {
	Greet() string
}

type EnglishGreeter struct{}

func (EnglishGreeter) Greet() string { return "hello" }

type FrenchGreeter struct{}

func (*FrenchGreeter) Greet() string { return "bonjour" }

// Registry returns a registry with Input, Wallet and Clock doubles registered.
func Registry(input *Input, wallet *Wallet, clock *Clock) *shopkit.Registry {
	reg := shopkit.NewRegistry(nil)
	if input != nil {
		_ = shopkit.Register[shop.Input](reg, input)
	}
	if wallet != nil {
		_ = shopkit.Register[shop.Wallet](reg, wallet)
	}
	if clock != nil {
		_ = shopkit.Register[shop.Clock](reg, clock)
	}
	return reg
}
