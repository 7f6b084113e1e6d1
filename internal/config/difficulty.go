package config

import "math"

// DifficultyManager tightens the puzzle as the player solves levels.
// At full difficulty the radius slack is gone and every tile gets at
// least the maximum number of scramble turns.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the current difficulty level (0.0 to 1.0) after solved levels.
func (d *DifficultyManager) Level(solved int) float64 {
	if !d.cfg.Enabled {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(solved)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Slack returns the radius slack after solved levels, shrinking to zero.
func (d *DifficultyManager) Slack(baseSlack, solved int) int {
	if !d.cfg.Enabled {
		return baseSlack
	}
	level := d.Level(solved)
	return int(math.Round(float64(baseSlack) * (1.0 - level)))
}

// Turns returns the scramble range after solved levels. The lower bound
// rises towards maxTurns; the upper bound is unchanged.
func (d *DifficultyManager) Turns(minTurns, maxTurns, solved int) (int, int) {
	if !d.cfg.Enabled || maxTurns <= minTurns {
		return minTurns, maxTurns
	}
	level := d.Level(solved)
	lo := minTurns + int(level*float64(maxTurns-minTurns))
	return lo, maxTurns
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
