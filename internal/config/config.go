// Package config provides YAML-based game configuration loading and
// difficulty management for the dodge game.
package config

import "time"

// DodgeConfig contains all configuration for the dodge game.
type DodgeConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Assets     AssetConfig      `yaml:"assets"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the physics world.
type WorldConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	GravityX float64 `yaml:"gravity_x"`
	GravityY float64 `yaml:"gravity_y"`
}

// PlayerConfig defines the player body.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Horizontal speed in units per second
}

// ObstacleConfig defines spawned obstacle bodies.
type ObstacleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	MinVX  float64 `yaml:"min_vx"`
	MaxVX  float64 `yaml:"max_vx"`
	VY     float64 `yaml:"vy"`
	Bounce float64 `yaml:"bounce"`
}

// SpawnerConfig defines the obstacle spawn timer.
type SpawnerConfig struct {
	IntervalMS     int `yaml:"interval_ms"`
	ScoreIncrement int `yaml:"score_increment"`
}

// Interval returns the spawn period.
func (s SpawnerConfig) Interval() time.Duration {
	return time.Duration(s.IntervalMS) * time.Millisecond
}

// AssetConfig holds the image URLs used by the window frontend.
type AssetConfig struct {
	Background string `yaml:"background"`
	Player     string `yaml:"player"`
	Obstacle   string `yaml:"obstacle"`
}

// InputConfig tunes input sampling.
type InputConfig struct {
	// HoldWindowMS is how long a key counts as held after its last press
	// event. Terminals report key presses and repeats, never releases.
	HoldWindowMS int `yaml:"hold_window_ms"`
}

// HoldWindow returns the hold window as a duration.
func (i InputConfig) HoldWindow() time.Duration {
	return time.Duration(i.HoldWindowMS) * time.Millisecond
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier    float64 `yaml:"speed_multiplier"`      // Multiplier added to obstacle speed at max difficulty
	IntervalReduction  int     `yaml:"interval_reduction"`    // Spawn interval reduction (ms) at max difficulty
	MinSpawnIntervalMS int     `yaml:"min_spawn_interval_ms"` // Floor for the reduced spawn interval
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means fixed.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return DifficultyFixed, true
	default:
		return "", false
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
