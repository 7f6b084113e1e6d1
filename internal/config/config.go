// Package config provides YAML-based game configuration loading and
// difficulty management for LightEmAll.
package config

import "fmt"

// LightEmAllConfig contains all configuration for the LightEmAll game.
type LightEmAllConfig struct {
	Power      PowerConfig      `yaml:"power"`
	Board      BoardConfig      `yaml:"board"`
	Scramble   ScrambleConfig   `yaml:"scramble"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Theme      string           `yaml:"theme"`      // default, neon or mono
	LevelsDir  string           `yaml:"levels_dir"` // extra level files, may be empty
}

// PowerConfig controls the propagation radius.
type PowerConfig struct {
	Radius int `yaml:"radius"` // 0 means derive from each level
	Slack  int `yaml:"slack"`  // added to a derived radius
}

// BoardConfig controls how tiles are laid out on screen.
type BoardConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// ScrambleConfig controls the random rotations applied when a level starts.
type ScrambleConfig struct {
	Enabled  bool `yaml:"enabled"`
	MinTurns int  `yaml:"min_turns"`
	MaxTurns int  `yaml:"max_turns"`
}

// DifficultyConfig defines how the puzzle tightens as levels are solved.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	MaxAt        int     `yaml:"max_at"`        // Levels solved at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Themes lists the accepted theme names.
var Themes = []string{"default", "neon", "mono"}

// ParsePreset converts a CLI string to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks the configuration for values the game cannot use.
func (c LightEmAllConfig) Validate() error {
	if c.Power.Radius < 0 {
		return fmt.Errorf("power.radius must be >= 0, got %d", c.Power.Radius)
	}
	if c.Power.Slack < 0 {
		return fmt.Errorf("power.slack must be >= 0, got %d", c.Power.Slack)
	}
	if c.Board.CellWidth < 1 || c.Board.CellHeight < 1 {
		return fmt.Errorf("board cell size must be at least 1x1, got %dx%d",
			c.Board.CellWidth, c.Board.CellHeight)
	}
	if c.Scramble.MinTurns < 0 || c.Scramble.MaxTurns < c.Scramble.MinTurns {
		return fmt.Errorf("scramble turns must satisfy 0 <= min <= max, got %d..%d",
			c.Scramble.MinTurns, c.Scramble.MaxTurns)
	}
	if !validTheme(c.Theme) {
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	return nil
}

func validTheme(name string) bool {
	if name == "" {
		return true
	}
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}
