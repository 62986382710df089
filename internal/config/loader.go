package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding a config file path.
const EnvConfigPath = "SIDESTEP_CONFIG"

// Load loads the Sidestep configuration and validates it.
// Search order: customPath -> $SIDESTEP_CONFIG -> ~/.sidestep/sidestep.yaml ->
// ./configs/sidestep.yaml -> embedded default.
// Files are overlaid on the defaults, so a file may set only the keys it changes.
func Load(customPath string) (SidestepConfig, error) {
	// Explicit locations must exist and parse
	for _, path := range []string{customPath, os.Getenv(EnvConfigPath)} {
		if path == "" {
			continue
		}
		cfg, err := loadFile(path)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	// Implicit locations are skipped when missing or broken
	candidates := []string{userConfigPath("sidestep.yaml"), filepath.Join("configs", "sidestep.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSidestepYAML)
	if err != nil {
		return DefaultSidestepConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// Parse decodes YAML on top of the default configuration.
func Parse(data []byte) (SidestepConfig, error) {
	cfg := DefaultSidestepConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg SidestepConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// loadFile reads and parses one config file.
func loadFile(path string) (SidestepConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SidestepConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sidestep", filename)
}
