package sim

// HitKind identifies a scored obstacle collection.
type HitKind int

const (
	HitSlingshot HitKind = iota
	HitBumper
	HitButton
)

// HitTimers are the cosmetic "recently struck" countdowns for scored
// obstacles. They never affect physics.
type HitTimers struct {
	Slingshots []float64 `json:"slingshots"`
	Bumpers    []float64 `json:"bumpers"`
	Buttons    []float64 `json:"buttons"`
}

func newHitTimers(t *Table) HitTimers {
	return HitTimers{
		Slingshots: make([]float64, len(t.Slingshots)),
		Bumpers:    make([]float64, len(t.Bumpers)),
		Buttons:    make([]float64, len(t.Buttons)),
	}
}

func (h *HitTimers) slice(kind HitKind) []float64 {
	switch kind {
	case HitSlingshot:
		return h.Slingshots
	case HitBumper:
		return h.Bumpers
	default:
		return h.Buttons
	}
}

// Hit restarts the timer of obstacle i.
func (h *HitTimers) Hit(kind HitKind, i int, d float64) {
	h.slice(kind)[i] = d
}

// Decay counts every timer down by dt, stopping at zero.
func (h *HitTimers) Decay(dt float64) {
	for _, s := range [][]float64{h.Slingshots, h.Bumpers, h.Buttons} {
		for i := range s {
			s[i] -= dt
			if s[i] < 0 {
				s[i] = 0
			}
		}
	}
}

// Clear zeroes every timer.
func (h *HitTimers) Clear() {
	for _, s := range [][]float64{h.Slingshots, h.Bumpers, h.Buttons} {
		clear(s)
	}
}

// Ratios returns a copy with every timer divided by full, i.e. 1 right after a
// hit fading to 0.
func (h HitTimers) Ratios(full float64) HitTimers {
	scale := func(s []float64) []float64 {
		out := make([]float64, len(s))
		if full <= 0 {
			return out
		}
		for i, v := range s {
			out[i] = v / full
		}
		return out
	}
	return HitTimers{
		Slingshots: scale(h.Slingshots),
		Bumpers:    scale(h.Bumpers),
		Buttons:    scale(h.Buttons),
	}
}
