package config

import (
	_ "embed"
)

//go:embed defaults/lightemall.yaml
var defaultLightEmAllYAML []byte

// DefaultLightEmAllConfig returns the default LightEmAll configuration.
func DefaultLightEmAllConfig() LightEmAllConfig {
	return LightEmAllConfig{
		Power: PowerConfig{
			Radius: 0, // derive from each level
			Slack:  1,
		},
		Board: BoardConfig{
			CellWidth:  3,
			CellHeight: 1,
		},
		Scramble: ScrambleConfig{
			Enabled:  true,
			MinTurns: 1,
			MaxTurns: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			MaxAt:        6,
		},
		Theme: "default",
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultLightEmAllYAML
}
