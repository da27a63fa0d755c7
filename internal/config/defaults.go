package config

import (
	_ "embed"
)

//go:embed defaults/brickgame.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It matches the embedded
// defaults/brickgame.yaml.
func DefaultConfig() Config {
	return Config{
		Difficulty: DifficultyConfig{
			Preset:      DifficultyNormal,
			Progression: true,
		},
		Snake: SnakeConfig{
			StartSpeed: 10,
			BoostSpeed: 20,
			WinLength:  200,
		},
		Breakout: BreakoutConfig{
			StartSpeed: 15,
			BoostSpeed: 30,
		},
		Asteroids: AsteroidsConfig{
			AsteroidSpeed: 2,
			ShooterSpeed:  10,
			BulletSteps:   2,
			SpawnStart:    0.30,
			SpawnMax:      0.45,
			RampSeconds:   180,
			Bombs:         true,
		},
		Tetris: TetrisConfig{
			StartSpeed:     1,
			MaxSpeed:       10,
			SpeedUpSeconds: 30,
			SpeedUpFactor:  1.1220184543019633, // 10^0.05
		},
		Input: InputConfig{
			HoldTimeoutMS: 180,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.5,
		},
	}
}

// normalize replaces unusable values with defaults so a sparse or broken
// file still yields a playable configuration.
func (c *Config) normalize() {
	d := DefaultConfig()

	positive := func(v *int, def int) {
		if *v <= 0 {
			*v = def
		}
	}
	unit := func(v *float64, def float64) {
		if *v < 0 || *v > 1 {
			*v = def
		}
	}

	if c.Difficulty.Preset == "" {
		c.Difficulty.Preset = d.Difficulty.Preset
	}
	positive(&c.Snake.StartSpeed, d.Snake.StartSpeed)
	positive(&c.Snake.BoostSpeed, d.Snake.BoostSpeed)
	positive(&c.Snake.WinLength, d.Snake.WinLength)
	positive(&c.Breakout.StartSpeed, d.Breakout.StartSpeed)
	positive(&c.Breakout.BoostSpeed, d.Breakout.BoostSpeed)
	positive(&c.Asteroids.AsteroidSpeed, d.Asteroids.AsteroidSpeed)
	positive(&c.Asteroids.ShooterSpeed, d.Asteroids.ShooterSpeed)
	positive(&c.Asteroids.BulletSteps, d.Asteroids.BulletSteps)
	unit(&c.Asteroids.SpawnStart, d.Asteroids.SpawnStart)
	unit(&c.Asteroids.SpawnMax, d.Asteroids.SpawnMax)
	if c.Asteroids.SpawnMax < c.Asteroids.SpawnStart {
		c.Asteroids.SpawnMax = c.Asteroids.SpawnStart
	}
	positive(&c.Tetris.StartSpeed, d.Tetris.StartSpeed)
	positive(&c.Tetris.MaxSpeed, d.Tetris.MaxSpeed)
	if c.Tetris.SpeedUpFactor < 1 {
		c.Tetris.SpeedUpFactor = d.Tetris.SpeedUpFactor
	}
	positive(&c.Input.HoldTimeoutMS, d.Input.HoldTimeoutMS)
	unit(&c.Audio.Volume, d.Audio.Volume)
}
