package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLinkup loads Link Up configuration.
// Search order: customPath -> ~/.linkup/configs/linkup.yaml -> ./configs/linkup.yaml -> embedded default
// The result is always validated.
func LoadLinkup(customPath string) (LinkupConfig, error) {
	cfg := DefaultLinkupConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Validate()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("linkup.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "linkup.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	var embedded LinkupConfig
	if err := yaml.Unmarshal(defaultLinkupYAML, &embedded); err != nil {
		return DefaultLinkupConfig(), nil // Fallback to hardcoded if embed fails
	}
	embedded.Validate()
	return embedded, nil
}

// tryLoad reads an optional config file. Missing or malformed files are skipped.
func tryLoad(path string) (LinkupConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LinkupConfig{}, false
	}
	cfg := DefaultLinkupConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LinkupConfig{}, false
	}
	cfg.Validate()
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".linkup", "configs", filename)
}

// ApplyLinkupPreset modifies the config based on a difficulty preset.
func ApplyLinkupPreset(cfg *LinkupConfig, preset DifficultyPreset) {
	cfg.Difficulty = preset
	cfg.Timer.TimeLimit = TimeLimitForPreset(preset)

	// Hard mode also takes hints away
	if preset == DifficultyHard {
		cfg.Gameplay.Hints = false
	}
}
