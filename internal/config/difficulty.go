package config

import (
	"math"
	"time"
)

// Ramp interpolates a parameter linearly from Start to Max over Span of game
// time and holds it at Max afterwards.
type Ramp struct {
	Start float64
	Max   float64
	Span  time.Duration
	Fixed bool // progression disabled: always Start
}

// NewRamp creates a ramp.
func NewRamp(start, max float64, span time.Duration) Ramp {
	return Ramp{Start: start, Max: max, Span: span}
}

// SpawnRamp returns the asteroid spawn-rate ramp described by cfg.
func (c Config) SpawnRamp() Ramp {
	r := NewRamp(c.Asteroids.SpawnStart, c.Asteroids.SpawnMax, time.Duration(c.Asteroids.RampSeconds)*time.Second)
	r.Fixed = !c.Difficulty.Progression
	return r
}

// Progress returns how far along the ramp elapsed is, in [0, 1].
func (r Ramp) Progress(elapsed time.Duration) float64 {
	if r.Fixed {
		return 0
	}
	if r.Span <= 0 {
		return 1 // Prevent division by zero
	}
	return clampF(float64(elapsed)/float64(r.Span), 0.0, 1.0)
}

// Value returns the interpolated parameter at elapsed.
func (r Ramp) Value(elapsed time.Duration) float64 {
	return r.Start + r.Progress(elapsed)*(r.Max-r.Start)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
