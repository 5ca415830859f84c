package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-linkup/internal/config"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.LoadLinkup("")
	if err != nil {
		t.Fatalf("LoadLinkup failed: %v", err)
	}

	if cfg != config.DefaultLinkupConfig() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, config.DefaultLinkupConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  default_size: 8\ntimer:\n  time_limit: 45\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadLinkup(path)
	if err != nil {
		t.Fatalf("LoadLinkup failed: %v", err)
	}

	if cfg.Board.DefaultSize != 8 {
		t.Errorf("DefaultSize = %d, want 8", cfg.Board.DefaultSize)
	}
	if cfg.Timer.TimeLimit != 45 {
		t.Errorf("TimeLimit = %d, want 45", cfg.Timer.TimeLimit)
	}
	// Unspecified keys keep their defaults
	if cfg.Board.MaxSize != 12 || cfg.Board.SizeStep != 2 {
		t.Errorf("Board = %+v, want defaults for unset keys", cfg.Board)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".linkup", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "linkup.yaml"), []byte("timer:\n  time_limit: 99\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadLinkup("")
	if err != nil {
		t.Fatalf("LoadLinkup failed: %v", err)
	}
	if cfg.Timer.TimeLimit != 99 {
		t.Errorf("TimeLimit = %d, want 99 from user config", cfg.Timer.TimeLimit)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := config.LoadLinkup(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [oops"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.LoadLinkup(path); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		in    config.LinkupConfig
		check func(t *testing.T, c config.LinkupConfig)
	}{
		{
			name: "zero value becomes defaults",
			in:   config.LinkupConfig{},
			check: func(t *testing.T, c config.LinkupConfig) {
				def := config.DefaultLinkupConfig()
				if c.Board != def.Board || c.Timer != def.Timer {
					t.Errorf("got %+v, want defaults", c)
				}
			},
		},
		{
			name: "default size clamped to max",
			in: config.LinkupConfig{
				Board: config.BoardConfig{DefaultSize: 40, MinSize: 4, MaxSize: 10, SizeStep: 2},
				Timer: config.TimerConfig{TimeLimit: 30},
			},
			check: func(t *testing.T, c config.LinkupConfig) {
				if c.Board.DefaultSize != 10 {
					t.Errorf("DefaultSize = %d, want 10", c.Board.DefaultSize)
				}
			},
		},
		{
			name: "max below min",
			in: config.LinkupConfig{
				Board: config.BoardConfig{DefaultSize: 6, MinSize: 6, MaxSize: 3, SizeStep: 1},
				Timer: config.TimerConfig{TimeLimit: 30},
			},
			check: func(t *testing.T, c config.LinkupConfig) {
				if c.Board.MaxSize < c.Board.MinSize {
					t.Errorf("MaxSize %d < MinSize %d", c.Board.MaxSize, c.Board.MinSize)
				}
			},
		},
		{
			name: "unknown difficulty",
			in: config.LinkupConfig{
				Difficulty: "nightmare",
			},
			check: func(t *testing.T, c config.LinkupConfig) {
				if c.Difficulty != config.DifficultyNormal {
					t.Errorf("Difficulty = %q, want normal", c.Difficulty)
				}
			},
		},
		{
			name: "negative flash",
			in: config.LinkupConfig{
				Display: config.DisplayConfig{PathFlashMs: -5},
			},
			check: func(t *testing.T, c config.LinkupConfig) {
				if c.Display.PathFlashMs != 0 {
					t.Errorf("PathFlashMs = %d, want 0", c.Display.PathFlashMs)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.in
			c.Validate()
			tt.check(t, c)
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name      string
		timeLimit int
		hints     bool
	}{
		{"easy", 60, true},
		{"Normal", 30, true},
		{" hard ", 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preset, err := config.ParseDifficulty(tt.name)
			if err != nil {
				t.Fatalf("ParseDifficulty(%q) failed: %v", tt.name, err)
			}

			cfg := config.DefaultLinkupConfig()
			config.ApplyLinkupPreset(&cfg, preset)

			if cfg.Timer.TimeLimit != tt.timeLimit {
				t.Errorf("TimeLimit = %d, want %d", cfg.Timer.TimeLimit, tt.timeLimit)
			}
			if cfg.Gameplay.Hints != tt.hints {
				t.Errorf("Hints = %v, want %v", cfg.Gameplay.Hints, tt.hints)
			}
		})
	}

	if _, err := config.ParseDifficulty("insane"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if len(config.GetDefaultYAML("linkup")) == 0 {
		t.Error("expected embedded YAML for linkup")
	}
	if config.GetDefaultYAML("pong") != nil {
		t.Error("expected nil for unknown game")
	}
}
