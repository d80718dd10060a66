package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFrenzy loads the simulation tuning.
// Search order: customPath -> ~/.frenzy/configs/frenzy.yaml -> ./configs/frenzy.yaml -> embedded default
//
// Only an explicit customPath can fail; broken files in the implicit locations
// are skipped.
func LoadFrenzy(customPath string) (FrenzyConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FrenzyConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return FrenzyConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("frenzy.yaml"), filepath.Join("configs", "frenzy.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultFrenzyYAML)
	if err != nil {
		return DefaultFrenzyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
// Fields missing from data keep their default values.
func Parse(data []byte) (FrenzyConfig, error) {
	cfg := DefaultFrenzyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FrenzyConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return FrenzyConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Marshal encodes the tuning as YAML, e.g. to store it next to a recording.
func Marshal(cfg FrenzyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".frenzy", "configs", filename)
}
