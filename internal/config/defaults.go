package config

import (
	_ "embed"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultRacerConfig returns the default lane racer configuration.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Road: RoadConfig{
			Width: 300,
			Lanes: 3,
		},
		Player: PlayerConfig{
			Width:        40,
			Height:       60,
			BottomOffset: 100,
			LateralSpeed: 5,
		},
		Obstacles: ObstacleConfig{
			Width:    40,
			Height:   60,
			MinSpeed: 3,
			MaxSpeed: 7,
			Palette:  []string{"blue", "green", "yellow"},
		},
		LaneMarks: LaneMarkConfig{
			Width:      10,
			Height:     20,
			Spacing:    40,
			BaseScroll: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			ScoreStep:      10,
			MultiplierStep: 0.2,
		},
	}
}
