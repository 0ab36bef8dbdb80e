// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Frame rate limits accepted for MONSTERBATTLE_FPS.
const (
	MinFPS = 1
	MaxFPS = 240
)

// Config holds the settings for one run of the game.
type Config struct {
	Debug         bool   `env:"MONSTERBATTLE_DEBUG"          envDefault:"false"`
	FPS           int    `env:"MONSTERBATTLE_FPS"            envDefault:"30"`
	PlayerMonster string `env:"MONSTERBATTLE_PLAYER_MONSTER" envDefault:"iguanignite"`
	EnemyMonster  string `env:"MONSTERBATTLE_ENEMY_MONSTER"  envDefault:"carnodusk"`
	LogFile       string `env:"MONSTERBATTLE_LOG_FILE"       envDefault:"monsterbattle.log"`
	Telemetry     bool   `env:"MONSTERBATTLE_TELEMETRY"      envDefault:"true"`

	HoneycombAPIKey  string `env:"HONEYCOMB_MONSTERBATTLE_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_MONSTERBATTLE_DATASET" envDefault:"monsterbattle"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges that the env tags cannot express.
func (c Config) Validate() error {
	if c.FPS < MinFPS || c.FPS > MaxFPS {
		return fmt.Errorf("MONSTERBATTLE_FPS must be between %d and %d, got %d", MinFPS, MaxFPS, c.FPS)
	}
	if c.PlayerMonster == "" {
		return fmt.Errorf("MONSTERBATTLE_PLAYER_MONSTER must not be empty")
	}
	if c.EnemyMonster == "" {
		return fmt.Errorf("MONSTERBATTLE_ENEMY_MONSTER must not be empty")
	}
	return nil
}
