package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Terrain.Width <= 0 || cfg.Terrain.Height <= 0 {
		t.Errorf("default terrain size %dx%d should be positive", cfg.Terrain.Width, cfg.Terrain.Height)
	}
	if cfg.FlameLinger() != 1500*time.Millisecond {
		t.Errorf("default flame linger = %v, want 1.5s", cfg.FlameLinger())
	}
	if cfg.Theme.Wall == "" || cfg.Theme.Bomb == "" {
		t.Error("default theme colors should be set")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "flame_linger_ms: 250\nterrain:\n  width: 8\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.FlameLinger() != 250*time.Millisecond {
		t.Errorf("flame linger = %v, want 250ms", cfg.FlameLinger())
	}
	if cfg.Terrain.Width != 8 {
		t.Errorf("terrain width = %d, want 8", cfg.Terrain.Width)
	}
	// Untouched fields keep their defaults.
	if cfg.Terrain.Height != Default().Terrain.Height {
		t.Errorf("terrain height = %d, want default %d", cfg.Terrain.Height, Default().Terrain.Height)
	}
	if cfg.Theme.Bomb != Default().Theme.Bomb {
		t.Errorf("bomb color = %q, want default", cfg.Theme.Bomb)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":::"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}
