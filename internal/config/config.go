// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	Board      BoardConfig   `yaml:"board"`
	Speed      SpeedConfig   `yaml:"speed"`
	Difficulty string        `yaml:"difficulty"` // easy, medium, hard
	Audio      AudioConfig   `yaml:"audio"`
	Storage    StorageConfig `yaml:"storage"`
}

// BoardConfig defines the playing field.
type BoardConfig struct {
	TileCount int `yaml:"tile_count"`
}

// SpeedConfig defines the tick interval for each difficulty.
type SpeedConfig struct {
	EasyMS   int `yaml:"easy_ms"`
	MediumMS int `yaml:"medium_ms"`
	HardMS   int `yaml:"hard_ms"`
}

// AudioConfig controls sound effects.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// StorageConfig locates the scores database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// Intervals converts the speed table to engine intervals.
func (c SnakeConfig) Intervals() snake.Intervals {
	return snake.Intervals{
		snake.Easy:   time.Duration(c.Speed.EasyMS) * time.Millisecond,
		snake.Medium: time.Duration(c.Speed.MediumMS) * time.Millisecond,
		snake.Hard:   time.Duration(c.Speed.HardMS) * time.Millisecond,
	}
}

// Level returns the configured starting difficulty.
func (c SnakeConfig) Level() (snake.Difficulty, error) {
	return snake.ParseDifficulty(c.Difficulty)
}

// Validate checks that the config describes a playable game.
func (c SnakeConfig) Validate() error {
	if c.Board.TileCount < snake.MinTileCount {
		return fmt.Errorf("config: board.tile_count must be at least %d, got %d",
			snake.MinTileCount, c.Board.TileCount)
	}
	for name, ms := range map[string]int{
		"easy_ms":   c.Speed.EasyMS,
		"medium_ms": c.Speed.MediumMS,
		"hard_ms":   c.Speed.HardMS,
	} {
		if ms <= 0 {
			return fmt.Errorf("config: speed.%s must be positive, got %d", name, ms)
		}
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio.volume must be within [0, 1], got %g", c.Audio.Volume)
	}
	return nil
}

// ApplyDifficultyPreset overrides the starting difficulty by name.
func ApplyDifficultyPreset(cfg *SnakeConfig, preset string) error {
	if preset == "" {
		return nil
	}
	level, err := snake.ParseDifficulty(preset)
	if err != nil {
		return err
	}
	cfg.Difficulty = level.String()
	return nil
}
