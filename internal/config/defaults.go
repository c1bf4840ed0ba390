package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() GameConfig {
	return GameConfig{
		Rules: RulesConfig{
			WinTile:      2048,
			Spawn4:       0.10,
			InitialTiles: 2,
			SpawnOnNoop:  true,
		},
		Display: DisplayConfig{
			TickRate: 30,
			Color:    true,
		},
		Storage: StorageConfig{
			DBPath: "~/.t2048/scores.db",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
