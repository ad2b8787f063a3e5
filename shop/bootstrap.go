package shop

import (
	"errors"
	"time"

	"github.com/centraunit/shopkit"
)

// Options configures the default services registered by Bootstrap.
type Options struct {
	StartingFunds int
	FixedStep     time.Duration
}

// Services are the concrete default implementations registered by Bootstrap.
// The driver keeps them to feed input and read results.
type Services struct {
	Input  *AxisInput
	Wallet *CashWallet
	Clock  *TickClock
	Stock  *ShelfStock
}

// Bootstrap registers the default implementation of every shop service contract.
// It runs once, before any owner is injected.
func Bootstrap(reg *shopkit.Registry, opts Options) (*Services, error) {
	if opts.FixedStep <= 0 {
		opts.FixedStep = 20 * time.Millisecond
	}
	svc := &Services{
		Input:  &AxisInput{},
		Wallet: NewCashWallet(opts.StartingFunds),
		Clock:  NewTickClock(opts.FixedStep),
		Stock:  NewShelfStock(),
	}

	err := errors.Join(
		shopkit.Register[Input](reg, svc.Input),
		shopkit.Register[Wallet](reg, svc.Wallet),
		shopkit.Register[Clock](reg, svc.Clock),
		shopkit.Register[Stock](reg, svc.Stock),
	)
	if err != nil {
		return nil, err
	}
	return svc, nil
}
