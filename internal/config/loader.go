package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// LoadCircle loads circle toy configuration.
// Search order: customPath -> ~/.littlespace/configs/circle.{yaml,toml} -> ./configs/circle.{yaml,toml} -> embedded default
func LoadCircle(customPath string) (CircleConfig, error) {
	return load("circle", customPath, defaultCircleYAML, DefaultCircleConfig)
}

// LoadFlight loads space flight configuration.
// Search order: customPath -> ~/.littlespace/configs/flight.{yaml,toml} -> ./configs/flight.{yaml,toml} -> embedded default
func LoadFlight(customPath string) (FlightConfig, error) {
	return load("flight", customPath, defaultFlightYAML, DefaultFlightConfig)
}

// LoadSkirmish loads skirmish configuration.
// Search order: customPath -> ~/.littlespace/configs/skirmish.{yaml,toml} -> ./configs/skirmish.{yaml,toml} -> embedded default
func LoadSkirmish(customPath string) (SkirmishConfig, error) {
	return load("skirmish", customPath, defaultSkirmishYAML, DefaultSkirmishConfig)
}

// load resolves a config for one game. Files are decoded on top of the
// hardcoded defaults, so a file only needs the keys it changes.
// A custom path that fails to read, parse or validate is an error; files
// found by searching are skipped when broken.
func load[T validator](name, customPath string, embedded []byte, defaults func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		if err := decodeFile(customPath, &cfg); err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths(name) {
		cfg := defaults()
		if err := decodeFile(path, &cfg); err != nil {
			continue
		}
		if cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// searchPaths lists the user and local config locations for a game, YAML first.
func searchPaths(name string) []string {
	var paths []string
	for _, ext := range []string{".yaml", ".toml"} {
		if p := userConfigPath(name + ext); p != "" {
			paths = append(paths, p)
		}
	}
	for _, ext := range []string{".yaml", ".toml"} {
		paths = append(paths, filepath.Join("configs", name+ext))
	}
	return paths
}

// decodeFile reads path into v. Files ending in .toml are decoded as TOML,
// anything else as YAML.
func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := decode(path, data, v); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return nil
}

func decode(path string, data []byte, v any) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), v)
		return err
	}
	return yaml.Unmarshal(data, v)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".littlespace", "configs", filename)
}

// ApplySkirmishPreset modifies the config based on a difficulty preset.
func ApplySkirmishPreset(cfg *SkirmishConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Shields = 8
		cfg.Enemies.FireRange = 160
	case DifficultyHard:
		cfg.Gameplay.Shields = 3
		cfg.Enemies.CooldownMin = 0.6
	}
}
