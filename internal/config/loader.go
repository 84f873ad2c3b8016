package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		// The embedded file is fixed at build time; a parse failure is a
		// packaging bug.
		panic("config: embedded default is invalid: " + err.Error())
	}
	cfg.Normalize()
	return cfg
}

// Load resolves the configuration.
// Search order: customPath -> ~/.lifepad/config.yaml -> ./lifepad.yaml ->
// embedded default. An unreadable or invalid customPath is an error; the
// fallback locations are skipped silently when absent or invalid.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", customPath, err)
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", customPath, err)
		}
		cfg.Normalize()
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(), "lifepad.yaml"} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			continue
		}
		cfg.Normalize()
		return cfg, nil
	}

	return Default(), nil
}

// userConfigPath returns the per-user config location, or empty when the
// home directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lifepad", "config.yaml")
}
