package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-brickgame/internal/core"
)

// note is one tone of a cue; a zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

var cues = map[core.Cue][]note{
	core.CueEat:       {{880, 50 * time.Millisecond}},
	core.CueHit:       {{660, 40 * time.Millisecond}},
	core.CueLine:      {{523, 60 * time.Millisecond}, {659, 60 * time.Millisecond}, {784, 90 * time.Millisecond}},
	core.CueExplosion: {{110, 80 * time.Millisecond}, {82, 80 * time.Millisecond}, {55, 140 * time.Millisecond}},
	core.CueStage:     {{784, 70 * time.Millisecond}, {0, 30 * time.Millisecond}, {1047, 120 * time.Millisecond}},
	core.CueVictory:   {{523, 90 * time.Millisecond}, {659, 90 * time.Millisecond}, {784, 90 * time.Millisecond}, {1047, 200 * time.Millisecond}},
	core.CueDefeat:    {{392, 120 * time.Millisecond}, {330, 120 * time.Millisecond}, {262, 260 * time.Millisecond}},
}

// Duration returns how long the cue plays.
func Duration(c core.Cue) time.Duration {
	var d time.Duration
	for _, n := range cues[c] {
		d += n.dur
	}
	return d
}

// Stream builds the finite streamer for a cue at the given volume in [0,1].
// Unknown cues give nil.
func Stream(c core.Cue, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes, ok := cues[c]
	if !ok {
		return nil, nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n.freq == 0 {
			parts = append(parts, beep.Silence(rate.N(n.dur)))
			continue
		}
		tone, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(rate.N(n.dur), tone))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// withVolume scales s linearly; log2(0) is -Inf, so zero volume is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(min(vol, 1))}
}
