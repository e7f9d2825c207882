package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultDodgeYAML))
	copy(out, defaultDodgeYAML)
	return out
}

// DefaultDodgeConfig returns the default dodge configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		World: WorldConfig{
			Width:    800,
			Height:   600,
			GravityY: 200,
		},
		Player: PlayerConfig{
			X:      400,
			Y:      550,
			Width:  17,
			Height: 17,
			Speed:  160,
		},
		Obstacles: ObstacleConfig{
			Width:  16,
			Height: 16,
			MinVX:  -200,
			MaxVX:  200,
			VY:     20,
			Bounce: 1,
		},
		Spawner: SpawnerConfig{
			IntervalMS:     1000,
			ScoreIncrement: 10,
		},
		Assets: AssetConfig{
			Background: "https://labs.phaser.io/assets/skies/space3.png",
			Player:     "https://labs.phaser.io/assets/sprites/ball.png",
			Obstacle:   "https://labs.phaser.io/assets/sprites/red.png",
		},
		Input: InputConfig{
			HoldWindowMS: 150,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:    1.0,
				IntervalReduction:  500,
				MinSpawnIntervalMS: 300,
			},
		},
	}
}
