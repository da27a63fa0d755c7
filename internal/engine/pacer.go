package engine

import "time"

// Pacer computes self-correcting tick intervals. Each call measures how late
// (or early) the previous tick fired relative to the nominal period and
// shortens (or lengthens) the next request to compensate.
type Pacer struct {
	nominal time.Duration
	floor   time.Duration
	ceil    time.Duration
	delay   time.Duration
	last    time.Time
}

// NewPacer creates a pacer for the given nominal period.
func NewPacer(nominal time.Duration) *Pacer {
	return &Pacer{
		nominal: nominal,
		floor:   nominal / 4,
		ceil:    nominal * 2,
		delay:   nominal,
	}
}

// Nominal returns the configured period.
func (p *Pacer) Nominal() time.Duration {
	return p.nominal
}

// Next records a tick at now and returns the interval to request for the next one.
func (p *Pacer) Next(now time.Time) time.Duration {
	if p.last.IsZero() {
		p.last = now
		return p.delay
	}

	elapsed := now.Sub(p.last)
	p.last = now

	next := p.delay - (elapsed - p.nominal)
	if next < p.floor {
		next = p.floor
	}
	if next > p.ceil {
		next = p.ceil
	}
	p.delay = next
	return next
}

// Reset forgets the previous tick, e.g. after the loop was suspended.
func (p *Pacer) Reset() {
	p.last = time.Time{}
	p.delay = p.nominal
}
