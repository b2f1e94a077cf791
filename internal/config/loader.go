package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const treatsFile = "treats.yaml"

// LoadTreats loads the Treat Hunt configuration.
// Search order: customPath -> ~/.treathunt/configs/treats.yaml -> ./configs/treats.yaml -> embedded default.
// Files are decoded on top of the defaults, so a file only needs the keys it overrides.
func LoadTreats(customPath string) (TreatsConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TreatsConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeTreats(data)
		if err != nil {
			return TreatsConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath(treatsFile),
		filepath.Join("configs", treatsFile),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decodeTreats(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := decodeTreats(defaultTreatsYAML)
	if err != nil {
		return DefaultTreatsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decodeTreats(data []byte) (TreatsConfig, error) {
	cfg := DefaultTreatsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TreatsConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path of a file under ~/.treathunt/configs, or "" without a home directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".treathunt", "configs", filename)
}
