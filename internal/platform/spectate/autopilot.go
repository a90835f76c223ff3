package spectate

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-pinball/internal/core"
	"github.com/vovakirdan/tui-pinball/internal/sim"
)

// Autopilot plays a table well enough to keep a spectator stream lively.
// It charges the plunger to a fixed level and flips whenever the ball falls
// into reach of a flipper.
type Autopilot struct {
	// Charge is the plunger charge (0..1) at which the ball is launched.
	Charge float64
	// Reach is how far past the flipper length the ball may be to trigger a
	// flip.
	Reach float64

	charging bool
}

// NewAutopilot returns an autopilot with stock settings.
func NewAutopilot() *Autopilot {
	return &Autopilot{Charge: 0.97, Reach: 1.5}
}

// Input decides the next frame's actions from the current snapshot.
func (a *Autopilot) Input(snap sim.Snapshot, t *sim.Table) core.InputFrame {
	in := core.NewInputFrame()
	if snap.GameOver {
		a.charging = false
		return in
	}

	if t.PlungerLane.Contains(snap.Ball) {
		switch {
		case snap.PlungerCharge >= a.Charge:
			a.charging = false // release this frame
		case snap.BallVel.Len() < 1 || a.charging:
			a.charging = true
			in.Set(core.ActionPlunger)
		}
		return in
	}
	a.charging = false

	if a.inReach(snap, snap.Flippers[0], -1) {
		in.Set(core.ActionFlipLeft)
	}
	if a.inReach(snap, snap.Flippers[1], 1) {
		in.Set(core.ActionFlipRight)
	}
	return in
}

// inReach reports whether a falling ball is on the flipper's side of the
// table and close enough to its bat to be hit. side is -1 for left, 1 for
// right.
func (a *Autopilot) inReach(snap sim.Snapshot, f sim.FlipperView, side float64) bool {
	if snap.BallVel[1] > 0 || snap.Ball[0]*side < 0 {
		return false
	}
	length := f.Tip.Sub(f.Pivot).Len()
	d := snap.Ball.Sub(f.Pivot)
	if d.Len() > length+a.Reach+snap.BallRadius {
		return false
	}
	// Only flip while the ball is above the bat's resting line.
	return d[1] > -mgl64.Abs(f.Tip[1]-f.Pivot[1])-snap.BallRadius
}
