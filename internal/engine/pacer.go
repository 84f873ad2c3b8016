package engine

import "time"

// Simulation rate bounds in generations per second.
const (
	MinRate = 1
	MaxRate = 1000
)

// maxCatchUp bounds how many generations a single frame may run, so a
// stalled process resumes smoothly instead of replaying the stall as a
// burst.
const maxCatchUp = 32

// pacer converts wall-clock time into due simulation steps at a target
// generations-per-second rate. It never waits: when not enough time has
// elapsed it reports zero steps and the caller retries next frame.
type pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

func newPacer(rate int) *pacer {
	p := &pacer{}
	p.SetRate(rate)
	return p
}

// SetRate changes the target rate, clamped to the valid range.
func (p *pacer) SetRate(rate int) {
	p.step = time.Second / time.Duration(ClampRate(rate))
}

// Steps reports how many generations are due at time now.
func (p *pacer) Steps(now time.Time) int {
	if p.last.IsZero() {
		p.last = now
		return 0
	}
	p.accumulator += now.Sub(p.last)
	p.last = now

	n := 0
	for p.accumulator >= p.step && n < maxCatchUp {
		p.accumulator -= p.step
		n++
	}
	if n == maxCatchUp {
		p.accumulator = 0
	}
	return n
}

// Sync discards accumulated time, so the next Steps call measures from
// now. Called while paused to keep a later resume from bursting.
func (p *pacer) Sync(now time.Time) {
	p.last = now
	p.accumulator = 0
}

// ClampRate restricts a requested rate to the valid range.
func ClampRate(rate int) int {
	if rate < MinRate {
		return MinRate
	}
	if rate > MaxRate {
		return MaxRate
	}
	return rate
}
