package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"gridsnake/game/types"
)

// Config is the root configuration for the game binary.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Snake  SnakeConfig  `yaml:"snake"`
	Food   FoodConfig   `yaml:"food"`
	Window WindowConfig `yaml:"window"`
}

type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type SnakeConfig struct {
	TickMillis int `yaml:"tick_ms"`
}

// TickPeriod returns the movement clock period.
func (s SnakeConfig) TickPeriod() time.Duration {
	return time.Duration(s.TickMillis) * time.Millisecond
}

type FoodConfig struct {
	SpawnMillis int `yaml:"spawn_ms"`
	Max         int `yaml:"max"`
}

// SpawnPeriod returns the food spawn timer period.
func (f FoodConfig) SpawnPeriod() time.Duration {
	return time.Duration(f.SpawnMillis) * time.Millisecond
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// Default returns the configuration matching the original game.
func Default() Config {
	return Config{
		Grid:   GridConfig{Width: types.DefaultGridWidth, Height: types.DefaultGridHeight},
		Snake:  SnakeConfig{TickMillis: 150},
		Food:   FoodConfig{SpawnMillis: 1000, Max: types.MaxFoodOnGrid},
		Window: WindowConfig{Width: 800, Height: 800, FPS: 60},
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	// The canonical spawn sits at (3,3) with the tail at (3,2); the grid
	// has to contain both with room to move.
	if c.Grid.Width < 5 || c.Grid.Height < 5 {
		return fmt.Errorf("grid %dx%d too small, need at least 5x5", c.Grid.Width, c.Grid.Height)
	}
	if c.Snake.TickMillis <= 0 {
		return fmt.Errorf("snake tick_ms must be positive, got %d", c.Snake.TickMillis)
	}
	if c.Food.SpawnMillis <= 0 {
		return fmt.Errorf("food spawn_ms must be positive, got %d", c.Food.SpawnMillis)
	}
	if c.Food.Max < 1 {
		return fmt.Errorf("food max must be at least 1, got %d", c.Food.Max)
	}
	return nil
}
