package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/centraunit/shopkit"
	"github.com/centraunit/shopkit/config"
	"github.com/centraunit/shopkit/logger"
	"github.com/centraunit/shopkit/shop"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	log.WithFields(logrus.Fields{
		"ticks":      cfg.Ticks,
		"fixed_step": cfg.FixedStep,
	}).Info("starting shop simulation")

	reg := shopkit.NewRegistry(log)
	defer reg.Clear()

	services, err := shop.Bootstrap(reg, shop.Options{
		StartingFunds: cfg.StartingFunds,
		FixedStep:     cfg.FixedStep,
	})
	if err != nil {
		log.WithError(err).Fatal("bootstrap failed")
	}
	log.WithField("services", reg.Services()).Debug("services registered")

	sim := shop.NewSimulation(reg, cfg.FixedStepsPerTick, log)
	if err := shopkit.Inject(reg, sim).RequiredErr(); err != nil {
		log.WithError(err).Fatal("simulation is missing required services")
	}

	player := shop.NewCharacter("player", 4, 3, log)
	area := shop.NewPurchaseArea("bakery", cfg.AreaPrice, cfg.AreaUnlock, log)
	oven := shop.NewProductionMachine("oven", "bread", cfg.AreaUnlock/2, 3, log)
	for _, owner := range []shop.Owner{player, area, oven} {
		if err := sim.Add(owner); err != nil {
			log.WithError(err).Fatal("failed to add owner")
		}
	}
	defer sim.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	walkUntil := cfg.Ticks / 3
	for tick := 0; tick < cfg.Ticks; tick++ {
		select {
		case <-stop:
			log.Warn("interrupted, shutting down")
			return
		default:
		}

		switch {
		case tick < walkUntil:
			services.Input.Set(cfg.InputMagnitude)
		case tick == walkUntil:
			services.Input.Set(0)
			area.SetOccupied(true)
			oven.SetRunning(true)
		}
		if area.Unlocked() && oven.Ready() > 0 {
			oven.Collect(player)
			player.StockShelf()
		}
		sim.Step()
	}

	log.WithFields(logrus.Fields{
		"position":      player.Position(),
		"area":          area.State(),
		"balance":       services.Wallet.Balance(),
		"bread_stocked": services.Stock.Count("bread"),
	}).Info("simulation finished")
}
