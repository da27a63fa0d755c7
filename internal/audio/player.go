// Package audio plays the short synthesized effect cues the engine emits.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-brickgame/internal/config"
	"github.com/vovakirdan/tui-brickgame/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player implements engine.SoundPlayer on the system speaker. Until Init
// succeeds every Play is a no-op, so a machine without audio runs silently.
type Player struct {
	mu          sync.Mutex
	volume      float64
	logger      *log.Logger
	initialized bool
}

// NewPlayer creates a player with the configured volume.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	return &Player{volume: cfg.Volume, logger: logger}
}

// Init opens the speaker with a 100ms buffer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	p.initialized = true
	return nil
}

// Play queues the cue on the speaker mixer and returns immediately.
func (p *Player) Play(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := Stream(c, sampleRate, p.volume)
	if err != nil {
		if p.logger != nil {
			p.logger.Warn("could not build cue", "cue", c, "error", err)
		}
		return
	}
	if s != nil {
		speaker.Play(s)
	}
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
