package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "lightemall.yaml"

// Load loads LightEmAll configuration.
// Search order: customPath -> ~/.lightemall/configs/lightemall.yaml ->
// ./configs/lightemall.yaml -> embedded default -> hardcoded default.
//
// Files are decoded on top of the defaults, so a partial file only
// overrides the keys it names.
func Load(customPath string) (LightEmAllConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LightEmAllConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return LightEmAllConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return LightEmAllConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := decode(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	var cfg LightEmAllConfig
	if err := yaml.Unmarshal(defaultLightEmAllYAML, &cfg); err != nil {
		return DefaultLightEmAllConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode unmarshals data over the hardcoded defaults.
func decode(data []byte) (LightEmAllConfig, error) {
	cfg := DefaultLightEmAllConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LightEmAllConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lightemall", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *LightEmAllConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust the puzzle based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Power.Slack = 3
		cfg.Scramble.MinTurns = 1
		cfg.Scramble.MaxTurns = 2
	case DifficultyNormal:
		cfg.Power.Slack = 1
		cfg.Scramble.MinTurns = 1
		cfg.Scramble.MaxTurns = 3
	case DifficultyHard:
		cfg.Power.Slack = 0
		cfg.Scramble.MinTurns = 2
		cfg.Scramble.MaxTurns = 3
	}
}
