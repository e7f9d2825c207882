package config

import (
	"math"
	"time"
)

// DifficultyManager calculates spawn parameters based on score or scene time.
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

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0). With progression
// disabled the level is always zero so base values apply unchanged.
func (d *DifficultyManager) Level(score int, elapsed time.Duration) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = elapsed.Seconds() / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales an obstacle speed component by the current level.
func (d *DifficultyManager) Speed(base float64, score int, elapsed time.Duration) float64 {
	level := d.Level(score, elapsed)
	return base * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// Interval returns the spawn period for the current level. The result never
// drops below the configured floor, nor below one millisecond.
func (d *DifficultyManager) Interval(base time.Duration, score int, elapsed time.Duration) time.Duration {
	level := d.Level(score, elapsed)
	reduction := time.Duration(level*float64(d.cfg.Scaling.IntervalReduction)) * time.Millisecond
	result := base - reduction

	floor := time.Duration(d.cfg.Scaling.MinSpawnIntervalMS) * time.Millisecond
	if floor > base {
		floor = base
	}
	if result < floor {
		result = floor
	}
	if result < time.Millisecond {
		result = time.Millisecond
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
