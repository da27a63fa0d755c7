// Package config provides YAML-based game configuration loading and
// difficulty presets for the brick game engines.
package config

// Config is the whole tunable surface of the engines and front ends.
type Config struct {
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Snake      SnakeConfig      `yaml:"snake"`
	Breakout   BreakoutConfig   `yaml:"breakout"`
	Asteroids  AsteroidsConfig  `yaml:"asteroids"`
	Tetris     TetrisConfig     `yaml:"tetris"`
	Input      InputConfig      `yaml:"input"`
	Audio      AudioConfig      `yaml:"audio"`
}

// DifficultyConfig selects the preset and whether speeds ramp up during play.
type DifficultyConfig struct {
	Preset      DifficultyPreset `yaml:"preset"`
	Progression bool             `yaml:"progression"` // false freezes time-based ramps
}

// SnakeConfig defines Snake speeds in cells per second.
type SnakeConfig struct {
	StartSpeed int `yaml:"start_speed"`
	BoostSpeed int `yaml:"boost_speed"`
	WinLength  int `yaml:"win_length"`
}

// BreakoutConfig defines Breakout ball speeds in cells per second.
type BreakoutConfig struct {
	StartSpeed int `yaml:"start_speed"`
	BoostSpeed int `yaml:"boost_speed"`
}

// AsteroidsConfig defines Asteroids speeds and spawn rates.
type AsteroidsConfig struct {
	AsteroidSpeed int     `yaml:"asteroid_speed"`
	ShooterSpeed  int     `yaml:"shooter_speed"`
	BulletSteps   int     `yaml:"bullet_steps"` // cells a bullet travels per tick
	SpawnStart    float64 `yaml:"spawn_start"`  // per-column spawn probability at start
	SpawnMax      float64 `yaml:"spawn_max"`
	RampSeconds   int     `yaml:"ramp_seconds"`
	Bombs         bool    `yaml:"bombs"`
}

// TetrisConfig defines the Tetris speed curve.
type TetrisConfig struct {
	StartSpeed     int     `yaml:"start_speed"`
	MaxSpeed       int     `yaml:"max_speed"`
	SpeedUpSeconds int     `yaml:"speed_up_seconds"`
	SpeedUpFactor  float64 `yaml:"speed_up_factor"`
}

// InputConfig tunes key handling in terminal front ends.
type InputConfig struct {
	// HoldTimeoutMS is how long after the last auto-repeat a key counts as released.
	HoldTimeoutMS int `yaml:"hold_timeout_ms"`
}

// AudioConfig controls sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the valid presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
