package core

import "time"

// TickMillis is the nominal simulation period.
const TickMillis = 23

// FPS is the number of simulation ticks per second. Speeds throughout the
// engine are expressed in cells per second and converted with Every.
const FPS = 1000 / TickMillis

// TickInterval is TickMillis as a duration.
const TickInterval = TickMillis * time.Millisecond

// Every returns the tick interval at which something moving at speed cells
// per second should advance one cell. Speeds at or above FPS (and multiples
// of it) advance every tick; callers add sub-steps for the surplus.
func Every(speed int) int {
	if speed <= 0 {
		return FPS
	}
	rem := speed % FPS
	if rem == 0 {
		return 1
	}
	return max(1, FPS/rem)
}

// RuntimeConfig contains configuration passed to the engine by the front ends.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay, 0 means time based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
