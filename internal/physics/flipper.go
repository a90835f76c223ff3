package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FlipperSpec holds the shape and motion limits shared by both flippers.
type FlipperSpec struct {
	Length             float64 // pivot centre to tip centre
	R0                 float64 // radius at the pivot
	R1                 float64 // radius at the tip
	MinAngle           float64 // rest orientation (radians)
	MaxAngle           float64 // raised orientation (radians)
	MaxAngularVelocity float64 // radians per second
}

// DefaultFlipperSpec returns the stock flipper: 8 units wide overall,
// resting 38° below horizontal and swinging up to 33° above it at 4 turns/s.
func DefaultFlipperSpec() FlipperSpec {
	return FlipperSpec{
		Length:             8.0 - 1.1 - 0.7,
		R0:                 1.1,
		R1:                 0.7,
		MinAngle:           mgl64.DegToRad(-38),
		MaxAngle:           mgl64.DegToRad(33),
		MaxAngularVelocity: 2 * math.Pi * 4,
	}
}

// Flipper is a tapered bat rotating about a fixed pivot.
//
// Orientation is always within [MinAngle, MaxAngle] in the flipper's own
// frame. Right flippers use ScaleX = -1, which mirrors the whole transform so
// both sides share the same limits.
type Flipper struct {
	Spec            FlipperSpec
	Pivot           mgl64.Vec2
	ScaleX          float64
	Orientation     float64
	AngularVelocity float64

	transform mgl64.Mat3
}

// NewFlipper creates a flipper at rest.
func NewFlipper(pivot mgl64.Vec2, spec FlipperSpec, left bool) *Flipper {
	f := &Flipper{
		Spec:        spec,
		Pivot:       pivot,
		ScaleX:      1,
		Orientation: spec.MinAngle,
	}
	if !left {
		f.ScaleX = -1
	}
	f.updateTransform()
	return f
}

// Activate drives the flipper upward.
func (f *Flipper) Activate() {
	f.AngularVelocity = f.Spec.MaxAngularVelocity
}

// Deactivate drives the flipper back to rest.
func (f *Flipper) Deactivate() {
	f.AngularVelocity = -f.Spec.MaxAngularVelocity
}

// SetActive calls Activate or Deactivate.
func (f *Flipper) SetActive(on bool) {
	if on {
		f.Activate()
	} else {
		f.Deactivate()
	}
}

// Update advances the orientation by dt and clamps it. Reaching a limit
// zeroes the angular velocity for this tick.
func (f *Flipper) Update(dt float64) {
	f.Orientation += f.AngularVelocity * dt
	switch {
	case f.Orientation <= f.Spec.MinAngle:
		f.Orientation = f.Spec.MinAngle
		f.AngularVelocity = 0
	case f.Orientation >= f.Spec.MaxAngle:
		f.Orientation = f.Spec.MaxAngle
		f.AngularVelocity = 0
	}
	f.updateTransform()
}

// Reset puts the flipper back at rest.
func (f *Flipper) Reset() {
	f.Orientation = f.Spec.MinAngle
	f.AngularVelocity = 0
	f.updateTransform()
}

func (f *Flipper) updateTransform() {
	f.transform = mgl64.Translate2D(f.Pivot[0], f.Pivot[1]).
		Mul3(mgl64.HomogRotate2D(f.Orientation * f.ScaleX)).
		Mul3(mgl64.Scale2D(f.ScaleX, 1))
}

// Transform returns the local-to-world transform (pivot at the local origin,
// tip at (Length, 0)).
func (f *Flipper) Transform() mgl64.Mat3 {
	return f.transform
}

// ToWorld maps a point from flipper-local space to world space.
func (f *Flipper) ToWorld(local mgl64.Vec2) mgl64.Vec2 {
	return f.transform.Mul3x1(local.Vec3(1)).Vec2()
}

// Tip returns the world position of the tip centre.
func (f *Flipper) Tip() mgl64.Vec2 {
	return f.ToWorld(mgl64.Vec2{f.Spec.Length, 0})
}

// WorldAngularVelocity is the signed angular velocity in world space
// (counter-clockwise positive).
func (f *Flipper) WorldAngularVelocity() float64 {
	return f.AngularVelocity * f.ScaleX
}

// PointVelocity returns the linear velocity of a world point rigidly attached
// to the flipper.
func (f *Flipper) PointVelocity(p mgl64.Vec2) mgl64.Vec2 {
	return Perp(p.Sub(f.Pivot)).Mul(f.WorldAngularVelocity())
}

// AtLimit reports whether the flipper rests at either end of its travel.
func (f *Flipper) AtLimit() bool {
	return f.Orientation == f.Spec.MinAngle || f.Orientation == f.Spec.MaxAngle
}
