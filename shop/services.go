// Package shop contains the gameplay owners of the shop simulation and the
// service contracts they are injected with.
package shop

import (
	"sync"
	"time"
)

// Input reports the player's movement intent.
type Input interface {
	// MoveMagnitude returns the stick deflection in [0, 1].
	MoveMagnitude() float64
}

// Wallet holds the shop's money.
type Wallet interface {
	Balance() int
	// Spend deducts amount and reports whether the balance covered it.
	Spend(amount int) bool
	Earn(amount int)
}

// Clock is the simulation clock, advanced once per fixed step by the driver.
type Clock interface {
	Elapsed() time.Duration
	FixedStep() time.Duration
	Advance(d time.Duration)
}

// Stock tracks item counts on the shop shelves.
type Stock interface {
	Count(item string) int
	Put(item string, n int)
	// Take removes one item and reports whether one was available.
	Take(item string) bool
}

// AxisInput is an Input whose magnitude is set by the driver.
type AxisInput struct {
	mu        sync.RWMutex
	magnitude float64
}

func (a *AxisInput) MoveMagnitude() float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.magnitude
}

// Set clamps m into [0, 1] and stores it.
func (a *AxisInput) Set(m float64) {
	switch {
	case m < 0:
		m = 0
	case m > 1:
		m = 1
	}
	a.mu.Lock()
	a.magnitude = m
	a.mu.Unlock()
}

// CashWallet is an in-memory Wallet.
type CashWallet struct {
	mu      sync.Mutex
	balance int
}

func NewCashWallet(funds int) *CashWallet {
	return &CashWallet{balance: funds}
}

func (w *CashWallet) Balance() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance
}

func (w *CashWallet) Spend(amount int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if amount < 0 || amount > w.balance {
		return false
	}
	w.balance -= amount
	return true
}

func (w *CashWallet) Earn(amount int) {
	if amount <= 0 {
		return
	}
	w.mu.Lock()
	w.balance += amount
	w.mu.Unlock()
}

// TickClock is a Clock that only moves when advanced.
type TickClock struct {
	mu      sync.RWMutex
	elapsed time.Duration
	step    time.Duration
}

func NewTickClock(step time.Duration) *TickClock {
	return &TickClock{step: step}
}

func (c *TickClock) Elapsed() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.elapsed
}

func (c *TickClock) FixedStep() time.Duration {
	return c.step
}

func (c *TickClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.elapsed += d
	c.mu.Unlock()
}

// ShelfStock is an in-memory Stock.
type ShelfStock struct {
	mu    sync.Mutex
	items map[string]int
}

func NewShelfStock() *ShelfStock {
	return &ShelfStock{items: make(map[string]int)}
}

func (s *ShelfStock) Count(item string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[item]
}

func (s *ShelfStock) Put(item string, n int) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	s.items[item] += n
	s.mu.Unlock()
}

func (s *ShelfStock) Take(item string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.items[item] == 0 {
		return false
	}
	s.items[item]--
	return true
}
