// Package config loads sandbox settings from YAML with compiled-in
// defaults. Search order: explicit path, ~/.bombs/config.yaml, then
// ./bombs.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all user-tunable settings.
type Config struct {
	Terrain       TerrainConfig `yaml:"terrain"`
	FlameLingerMS int           `yaml:"flame_linger_ms"` // 0 keeps flames until the next action
	Theme         Theme         `yaml:"theme"`
}

// TerrainConfig controls the blank terrain used when no file is given.
type TerrainConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Theme holds the renderer's color palette as hex strings.
type Theme struct {
	Empty  string `yaml:"empty"`
	Wall   string `yaml:"wall"`
	Bomb   string `yaml:"bomb"`
	Flame  string `yaml:"flame"`
	Marker string `yaml:"marker"`
	Cursor string `yaml:"cursor"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Terrain:       TerrainConfig{Width: 20, Height: 15},
		FlameLingerMS: 1500,
		Theme: Theme{
			Empty:  "#1a1a2e",
			Wall:   "#8B6914",
			Bomb:   "#ff4444",
			Flame:  "#ffcc00",
			Marker: "#44aaff",
			Cursor: "#00ff88",
		},
	}
}

// FlameLinger returns how long flames stay on screen before the sandbox
// clears them. Zero means they linger until the next action.
func (c Config) FlameLinger() time.Duration {
	return time.Duration(c.FlameLingerMS) * time.Millisecond
}

// Load reads the configuration, overlaying any file found onto the
// defaults. A missing file is not an error unless an explicit path was
// given; a malformed file is.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		return cfg, nil
	}
	return cfg, nil
}

func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".bombs", "config.yaml"))
	}
	return append(paths, "bombs.yaml")
}
