package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPusher loads the game configuration.
// Search order: customPath -> ~/.starpusher/configs/pusher.yaml ->
// ./configs/pusher.yaml -> embedded default -> hardcoded default.
// Only a bad customPath is an error; the other sources are skipped when
// missing or malformed. The result is always validated.
func LoadPusher(customPath string) (PusherConfig, error) {
	cfg, err := loadPusher(customPath)
	if err != nil {
		return cfg, err
	}
	cfg.Validate()
	return cfg, nil
}

func loadPusher(customPath string) (PusherConfig, error) {
	var cfg PusherConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{"configs/pusher.yaml"}
	if p := userConfigPath("pusher.yaml"); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		var c PusherConfig
		if err := yaml.Unmarshal(data, &c); err == nil {
			return c, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPusherYAML, &cfg); err != nil {
		return DefaultPusherConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starpusher", "configs", filename)
}

// Marshal encodes cfg as YAML.
func Marshal(cfg PusherConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: encoding: %w", err)
	}
	return data, nil
}

// Save writes cfg as YAML, creating parent directories as needed.
func Save(path string, cfg PusherConfig) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}

// UserConfigPath returns ~/.starpusher/configs/pusher.yaml, or an empty
// string when the home directory cannot be resolved.
func UserConfigPath() string {
	return userConfigPath("pusher.yaml")
}
