package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			TileCount: 20,
		},
		Speed: SpeedConfig{
			EasyMS:   200,
			MediumMS: 150,
			HardMS:   100,
		},
		Difficulty: "medium",
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Storage: StorageConfig{
			Path: "~/.snake/scores.db",
		},
	}
}
