package sim

import "time"

// Accumulator converts variable frame times into a whole number of fixed
// ticks. A single frame never produces more than MaxTicks ticks; time beyond
// that is dropped rather than carried into later frames.
type Accumulator struct {
	Step     time.Duration
	MaxFrame time.Duration

	pending time.Duration
}

// NewAccumulator creates an accumulator for tickRate ticks per second. The
// step is at least a nanosecond and maxFrame at least one step, so every
// accumulator can make progress.
func NewAccumulator(tickRate int, maxFrame time.Duration) Accumulator {
	step := time.Nanosecond
	if tickRate > 0 {
		step = max(time.Second/time.Duration(tickRate), time.Nanosecond)
	}
	return Accumulator{
		Step:     step,
		MaxFrame: max(maxFrame, step),
	}
}

// MaxTicks is the upper bound on ticks per Advance call.
func (a *Accumulator) MaxTicks() int {
	if a.MaxFrame <= 0 {
		return 0
	}
	return int(a.MaxFrame / a.Step)
}

// Advance adds elapsed (clamped to [0, MaxFrame]) and returns the number of
// ticks now due.
func (a *Accumulator) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > a.MaxFrame {
		elapsed = a.MaxFrame
	}
	a.pending += elapsed

	n := int(a.pending / a.Step)
	if limit := a.MaxTicks(); n > limit {
		n = limit
		a.pending = 0
		return n
	}
	a.pending -= time.Duration(n) * a.Step
	return n
}

// Pending returns the time carried into the next frame.
func (a *Accumulator) Pending() time.Duration {
	return a.pending
}

// Reset drops any carried time.
func (a *Accumulator) Reset() {
	a.pending = 0
}

// Advance runs as many fixed ticks as elapsed real time allows, applying in
// to each, and returns how many ran.
func (s *State) Advance(elapsed time.Duration, in Input) int {
	n := s.acc.Advance(elapsed)
	for i := 0; i < n; i++ {
		s.Tick(in)
	}
	return n
}
