package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config controls the headless shop simulation.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	Ticks             int           `env:"SHOPSIM_TICKS"               envDefault:"300"`
	FixedStepsPerTick int           `env:"SHOPSIM_FIXED_STEPS_PER_TICK" envDefault:"1"`
	FixedStep         time.Duration `env:"SHOPSIM_FIXED_STEP"          envDefault:"20ms"`
	StartingFunds     int           `env:"SHOPSIM_STARTING_FUNDS"      envDefault:"100"`
	AreaPrice         int           `env:"SHOPSIM_AREA_PRICE"          envDefault:"50"`
	AreaUnlock        time.Duration `env:"SHOPSIM_AREA_UNLOCK"         envDefault:"1s"`
	InputMagnitude    float64       `env:"SHOPSIM_INPUT_MAGNITUDE"     envDefault:"0.5"`
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Ticks < 0 {
		return Config{}, fmt.Errorf("SHOPSIM_TICKS must not be negative, got %d", cfg.Ticks)
	}
	if cfg.FixedStepsPerTick < 1 {
		return Config{}, fmt.Errorf("SHOPSIM_FIXED_STEPS_PER_TICK must be at least 1, got %d", cfg.FixedStepsPerTick)
	}
	return cfg, nil
}
