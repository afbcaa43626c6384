package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	tetrisFile     = "tetris.yaml"
	sourceEmbedded = "embedded"
)

// LoadTetris loads tetris configuration and validates it.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
// An unreadable custom path is an error; broken files elsewhere are skipped.
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg, err := loadTetris(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", cfg.Source, err)
	}
	return cfg, nil
}

func loadTetris(customPath string) (TetrisConfig, error) {
	// Try custom path first
	if customPath != "" {
		return decodeFile(customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(tetrisFile); userCfgPath != "" {
		if cfg, err := decodeFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := decodeFile(filepath.Join("configs", tetrisFile)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Source = sourceEmbedded
	return cfg, nil
}

// decodeFile reads a YAML file over the default config.
func decodeFile(path string) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}
