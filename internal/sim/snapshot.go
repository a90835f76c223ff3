package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-pinball/internal/physics"
)

// FlipperView is the render-facing state of one flipper.
type FlipperView struct {
	Pivot mgl64.Vec2 `json:"pivot"`
	Tip   mgl64.Vec2 `json:"tip"`
	R0    float64    `json:"r0"`
	R1    float64    `json:"r1"`
	Angle float64    `json:"angle"`
	// Transform maps bat-local coordinates (pivot at the origin, tip on +x)
	// to the world. ScaleX is -1 for the mirrored right flipper.
	Transform mgl64.Mat3 `json:"transform"`
	ScaleX    float64    `json:"scale_x"`
}

// DitchView is the render-facing state of one ditch.
type DitchView struct {
	State     string  `json:"state"`
	Closed    bool    `json:"closed"`
	Remaining float64 `json:"remaining"`
}

// Snapshot is a copy of everything a renderer needs between ticks.
type Snapshot struct {
	Tick          uint64         `json:"tick"`
	Ball          mgl64.Vec2     `json:"ball"`
	BallVel       mgl64.Vec2     `json:"ball_vel"`
	BallRadius    float64        `json:"ball_radius"`
	Flippers      [2]FlipperView `json:"flippers"`
	Ditches       []DitchView    `json:"ditches"`
	Hits          HitTimers      `json:"hits"` // 1 right after a hit, fading to 0
	PlungerCharge float64        `json:"plunger_charge"`
	Score         int            `json:"score"`
	Lives         int            `json:"lives"`
	GameOver      bool           `json:"game_over"`
	Practice      bool           `json:"practice"`
}

// Snapshot copies the current state for rendering or streaming.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          s.ticks,
		Ball:          s.Ball.Pos,
		BallVel:       s.Ball.Vel,
		BallRadius:    s.Ball.Radius,
		Hits:          s.Hits.Ratios(s.Params.HitTime),
		PlungerCharge: s.Plunger.Charge,
		Score:         s.Score.Score,
		Lives:         s.Score.Lives,
		GameOver:      s.Score.GameOver,
		Practice:      s.Score.Practice,
	}
	snap.Flippers[0] = viewFlipper(s.Left)
	snap.Flippers[1] = viewFlipper(s.Right)
	snap.Ditches = make([]DitchView, len(s.Ditches))
	for i, d := range s.Ditches {
		snap.Ditches[i] = DitchView{
			State:     d.State.String(),
			Closed:    d.Closed(),
			Remaining: d.Remaining(),
		}
	}
	return snap
}

func viewFlipper(f *physics.Flipper) FlipperView {
	return FlipperView{
		Pivot: f.Pivot,
		Tip:   f.Tip(),
		R0:    f.Spec.R0,
		R1:    f.Spec.R1,
		Angle: f.Orientation * f.ScaleX,

		Transform: f.Transform(),
		ScaleX:    f.ScaleX,
	}
}

// Hash folds the dynamic state into one number for determinism checks.
// Two runs with the same seed and inputs must produce the same hash.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(f float64) {
		h = h*31 + math.Float64bits(f)
	}
	mix(snap.Ball[0])
	mix(snap.Ball[1])
	mix(snap.BallVel[0])
	mix(snap.BallVel[1])
	for _, f := range snap.Flippers {
		mix(f.Angle)
	}
	for _, d := range snap.Ditches {
		mix(d.Remaining)
		h = h*31 + uint64(len(d.State))
	}
	mix(snap.PlungerCharge)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	return h
}
