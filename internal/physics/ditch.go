package physics

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// DitchState is the lifecycle stage of a ditch.
type DitchState int

const (
	DitchOpen      DitchState = iota // floor collidable, waiting for the ball
	DitchCaptured                    // ball landed, launch timer running
	DitchLaunching                   // ball kicked out, close timer running
	DitchClosed                      // lid collidable until Reopen
)

// String returns the state name.
func (s DitchState) String() string {
	switch s {
	case DitchOpen:
		return "open"
	case DitchCaptured:
		return "captured"
	case DitchLaunching:
		return "launching"
	case DitchClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// DitchTiming configures the capture/launch/close sequence.
type DitchTiming struct {
	LaunchDelay  float64 // seconds between capture and launch
	CloseDelay   float64 // seconds between launch and closing the lid
	LaunchSpeed  float64 // upward speed added to the ball at launch
	LaunchJitter float64 // launch speed varies by ±LaunchJitter (fraction)
}

// DefaultDitchTiming returns the stock timing.
func DefaultDitchTiming() DitchTiming {
	return DitchTiming{
		LaunchDelay:  1.0,
		CloseDelay:   0.4,
		LaunchSpeed:  55,
		LaunchJitter: 0.15,
	}
}

// Ditch is a ball-eating pocket. Each visit runs exactly once through
// Open → Captured → Launching → Closed; only Reopen goes back to Open.
type Ditch struct {
	Floor  Segment
	Lid    Segment
	Timing DitchTiming
	State  DitchState

	launchTimer float64
	closeTimer  float64
}

// NewDitch creates an open ditch.
func NewDitch(floor, lid Segment, timing DitchTiming) *Ditch {
	return &Ditch{Floor: floor, Lid: lid, Timing: timing}
}

// Closed reports whether the lid has shut.
func (d *Ditch) Closed() bool {
	return d.State == DitchClosed
}

// FloorCenter returns the midpoint of the capture floor.
func (d *Ditch) FloorCenter() mgl64.Vec2 {
	return d.Floor.Mid()
}

// Collide tests the ball against whichever surface is currently active:
// the floor while not closed, the lid once closed.
func (d *Ditch) Collide(ballPos mgl64.Vec2, ballR float64) (Contact, bool) {
	if d.Closed() {
		return CollideSegment(ballPos, ballR, d.Lid)
	}
	return CollideSegment(ballPos, ballR, d.Floor)
}

// Capture records ball-floor contact. Only the first contact of a visit
// starts the launch timer; it returns true on that transition.
func (d *Ditch) Capture() bool {
	if d.State != DitchOpen {
		return false
	}
	d.State = DitchCaptured
	d.launchTimer = d.Timing.LaunchDelay
	return true
}

// Advance runs the ditch timers by dt. When the launch timer expires the ball
// receives one upward kick with a randomized magnitude; it returns true on
// that tick only.
func (d *Ditch) Advance(dt float64, ball *Body, rng *rand.Rand) bool {
	switch d.State {
	case DitchCaptured:
		d.launchTimer -= dt
		if d.launchTimer > 0 {
			return false
		}
		d.launchTimer = 0
		scale := 1.0
		if rng != nil {
			scale += (rng.Float64()*2 - 1) * d.Timing.LaunchJitter
		}
		ball.Vel[1] += d.Timing.LaunchSpeed * scale
		d.State = DitchLaunching
		d.closeTimer = d.Timing.CloseDelay
		return true
	case DitchLaunching:
		d.closeTimer -= dt
		if d.closeTimer <= 0 {
			d.closeTimer = 0
			d.State = DitchClosed
		}
	}
	return false
}

// Reopen returns the ditch to Open unconditionally.
func (d *Ditch) Reopen() {
	d.State = DitchOpen
	d.launchTimer = 0
	d.closeTimer = 0
}

// Remaining returns the fraction of the running timer still left, clamped to
// [0, 1]. It is 0 when no timer is running.
func (d *Ditch) Remaining() float64 {
	switch d.State {
	case DitchCaptured:
		return ratio(d.launchTimer, d.Timing.LaunchDelay)
	case DitchLaunching:
		return ratio(d.closeTimer, d.Timing.CloseDelay)
	}
	return 0
}

func ratio(left, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return mgl64.Clamp(left/total, 0, 1)
}
