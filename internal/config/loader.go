package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localPath is the project-relative configuration file.
const localPath = "configs/copperhead.yaml"

// Load reads the configuration and overlays it on the embedded defaults.
// Search order: customPath -> ~/.copperhead/config.yaml -> ./configs/copperhead.yaml -> embedded default.
// A custom path must exist; the other locations are optional.
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		if err := readInto(customPath, &cfg); err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(), localPath} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := readInto(path, &cfg); err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	return cfg, cfg.Validate()
}

// readInto decodes the YAML file at path over cfg.
func readInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	cfg.source = path
	return nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".copperhead", "config.yaml")
}
