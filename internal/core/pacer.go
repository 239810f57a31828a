package core

import "time"

// Pacer converts a display frame rate into a fixed simulation rate.
// It accumulates frame time and reports how many simulation ticks are due,
// carrying any remainder into the next frame. Arithmetic is done in
// frame-scaled integer units, so 60 frames at 60 fps yield exactly one
// second of simulation time.
type Pacer struct {
	interval time.Duration
	fps      int
	acc      time.Duration
}

// NewPacer creates a pacer firing once per interval at the given frame rate.
// Non-positive frame rates fall back to one frame per interval.
func NewPacer(interval time.Duration, fps int) Pacer {
	if fps <= 0 {
		fps = int(time.Second / interval)
	}
	if fps <= 0 {
		fps = 1
	}
	return Pacer{interval: interval, fps: fps}
}

// Advance accounts for one display frame and returns the number of
// simulation ticks that became due.
func (p *Pacer) Advance() int {
	if p.interval <= 0 {
		return 0
	}
	// One frame lasts 1/fps seconds; scale both sides by fps.
	p.acc += time.Second
	threshold := p.interval * time.Duration(p.fps)

	ticks := 0
	for p.acc >= threshold {
		p.acc -= threshold
		ticks++
	}
	return ticks
}

// Reset drops any accumulated time.
func (p *Pacer) Reset() {
	p.acc = 0
}
