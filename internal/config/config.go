// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
)

// GameConfig contains all configuration for 2048.
type GameConfig struct {
	Rules   RulesConfig   `yaml:"rules"`
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
}

// RulesConfig defines spawning and the win condition.
type RulesConfig struct {
	WinTile      int     `yaml:"win_tile"`
	Spawn4       float64 `yaml:"spawn4"` // 0.0-1.0
	InitialTiles int     `yaml:"initial_tiles"`
	SpawnOnNoop  bool    `yaml:"spawn_on_noop"`
}

// DisplayConfig defines UI parameters.
type DisplayConfig struct {
	TickRate int  `yaml:"tick_rate"`
	Color    bool `yaml:"color"`
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the config describes a playable game.
func (c GameConfig) Validate() error {
	w := c.Rules.WinTile
	if w < 4 || w&(w-1) != 0 {
		return fmt.Errorf("%w: win_tile %d is not a power of two >= 4", ErrInvalidConfig, w)
	}
	if c.Rules.Spawn4 < 0 || c.Rules.Spawn4 > 1 {
		return fmt.Errorf("%w: spawn4 %g is outside [0, 1]", ErrInvalidConfig, c.Rules.Spawn4)
	}
	if c.Rules.InitialTiles < 1 || c.Rules.InitialTiles > 16 {
		return fmt.Errorf("%w: initial_tiles %d is outside [1, 16]", ErrInvalidConfig, c.Rules.InitialTiles)
	}
	if c.Display.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive", ErrInvalidConfig)
	}
	return nil
}
