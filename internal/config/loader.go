package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the user and local directories.
const FileName = "brickgame.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.brickgame/config.yaml -> ./configs/brickgame.yaml -> embedded default
//
// Only an explicit customPath that cannot be read or parsed is an error;
// broken files further down the chain are skipped.
func Load(customPath string) (Config, error) {
	return load(customPath, userConfigPath(), filepath.Join("configs", FileName))
}

func load(customPath, userPath, localPath string) (Config, error) {
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return DefaultConfig(), err
		}
		return cfg, nil
	}

	for _, p := range []string{userPath, localPath} {
		if p == "" {
			continue
		}
		if cfg, err := readFile(p); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func readFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes data over the defaults so omitted keys keep their default.
func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	cfg.normalize()
	return cfg, nil
}

// Marshal renders cfg as YAML, e.g. for writing a starter config file.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickgame", "config.yaml")
}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// ApplyPreset modifies the config based on a difficulty preset. Normal keeps
// the loaded values; the other presets override start speeds and spawn rates.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	cfg.Difficulty.Progression = !IsFixedPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Snake.StartSpeed = 7
		cfg.Breakout.StartSpeed = 10
		cfg.Asteroids.SpawnStart = 0.20
		cfg.Asteroids.SpawnMax = 0.35
		cfg.Tetris.StartSpeed = 1
	case DifficultyHard:
		cfg.Snake.StartSpeed = 14
		cfg.Breakout.StartSpeed = 20
		cfg.Asteroids.AsteroidSpeed = 3
		cfg.Asteroids.SpawnStart = 0.40
		cfg.Asteroids.SpawnMax = 0.55
		cfg.Tetris.StartSpeed = 3
	}
}
