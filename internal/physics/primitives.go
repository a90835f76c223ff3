// Package physics holds the obstacle shapes, the per-shape collision tests and
// the impulse resolver for the pinball table. Everything here is pure math over
// mgl64 vectors: no rendering, no timing, no global state.
//
// The world is y-up. The ball is the only dynamic body; obstacles are either
// static or (flippers) driven by an external angular input.
package physics

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// Body is the position/velocity pair of the ball.
type Body struct {
	Pos mgl64.Vec2
	Vel mgl64.Vec2
}

// Segment is a finite wall between two points.
// Used for plain walls, slingshots, one-way walls and ditch floors/lids.
type Segment struct {
	P0, P1 mgl64.Vec2
}

// Seg builds a segment from raw coordinates.
func Seg(x0, y0, x1, y1 float64) Segment {
	return Segment{P0: mgl64.Vec2{x0, y0}, P1: mgl64.Vec2{x1, y1}}
}

// Dir returns P1 - P0.
func (s Segment) Dir() mgl64.Vec2 {
	return s.P1.Sub(s.P0)
}

// Length returns the distance between the endpoints.
func (s Segment) Length() float64 {
	return s.Dir().Len()
}

// Mid returns the midpoint.
func (s Segment) Mid() mgl64.Vec2 {
	return s.P0.Add(s.P1).Mul(0.5)
}

// Mirror reflects the segment across the vertical axis x = 0.
// Endpoints are swapped so the left-hand side stays on the same physical side.
func (s Segment) Mirror() Segment {
	return Segment{P0: MirrorX(s.P1), P1: MirrorX(s.P0)}
}

// Arc is a curved wall. It runs counter-clockwise from Start to End; when
// End < Start the arc wraps through angle 0.
type Arc struct {
	Center mgl64.Vec2
	Radius float64
	Start  float64
	End    float64
}

// NewArc builds an arc. Angles must lie in [0, 2π); anything else is a
// construction bug and panics.
func NewArc(center mgl64.Vec2, radius, start, end float64) Arc {
	if !validAngle(start) || !validAngle(end) {
		panic(fmt.Sprintf("physics: arc angles out of range [0, 2π): start=%g end=%g", start, end))
	}
	return Arc{Center: center, Radius: radius, Start: start, End: end}
}

func validAngle(a float64) bool {
	return a >= 0 && a < TwoPi
}

// Contains reports whether angle (already in [0, 2π)) lies on the arc.
func (a Arc) Contains(angle float64) bool {
	if a.Start <= a.End {
		return angle >= a.Start && angle <= a.End
	}
	return angle >= a.Start || angle <= a.End
}

// Sweep returns the counter-clockwise angular length of the arc.
func (a Arc) Sweep() float64 {
	if a.End >= a.Start {
		return a.End - a.Start
	}
	return TwoPi - a.Start + a.End
}

// Point returns the point on the arc's circle at the given angle.
func (a Arc) Point(angle float64) mgl64.Vec2 {
	return a.Center.Add(mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(a.Radius))
}

// StartPoint is the arc endpoint at Start.
func (a Arc) StartPoint() mgl64.Vec2 { return a.Point(a.Start) }

// EndPoint is the arc endpoint at End.
func (a Arc) EndPoint() mgl64.Vec2 { return a.Point(a.End) }

// Mirror reflects the arc across x = 0. Reflection reverses orientation, so
// the mirrored start is the reflection of the old end.
func (a Arc) Mirror() Arc {
	return NewArc(
		MirrorX(a.Center),
		a.Radius,
		NormalizeAngle(math.Pi-a.End),
		NormalizeAngle(math.Pi-a.Start),
	)
}

// Capsule is a segment inflated by a uniform radius (small pegs).
type Capsule struct {
	Center     mgl64.Vec2
	HalfHeight float64
	Radius     float64
	Axis       mgl64.Vec2 // unit vector; the capsule spans Center ± Axis*HalfHeight
}

// NewCapsule builds an upright capsule.
func NewCapsule(center mgl64.Vec2, halfHeight, radius float64) Capsule {
	return Capsule{Center: center, HalfHeight: halfHeight, Radius: radius, Axis: mgl64.Vec2{0, 1}}
}

// Ends returns the two endpoints of the capsule's core segment.
func (c Capsule) Ends() (mgl64.Vec2, mgl64.Vec2) {
	off := c.Axis.Mul(c.HalfHeight)
	return c.Center.Sub(off), c.Center.Add(off)
}

// Circle is a pop bumper. Only Radius collides; InnerRadius is cosmetic.
type Circle struct {
	Center      mgl64.Vec2
	Radius      float64
	InnerRadius float64
}

// Button is a contact segment that always pushes the ball along Normal,
// regardless of which part of the segment was struck.
type Button struct {
	Segment
	Normal mgl64.Vec2
}

// NewButton builds a button whose normal points to the left of P0→P1.
func NewButton(seg Segment) Button {
	return Button{Segment: seg, Normal: Perp(seg.Dir()).Normalize()}
}

// Line is an infinite line through P with direction D.
type Line struct {
	P mgl64.Vec2
	D mgl64.Vec2
}

// Perp rotates v by +90°.
func Perp(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-v[1], v[0]}
}

// PerpDot is the 2D cross product a × b.
func PerpDot(a, b mgl64.Vec2) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// MirrorX reflects a point across x = 0.
func MirrorX(p mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-p[0], p[1]}
}

// Rotate rotates v counter-clockwise by angle radians.
func Rotate(v mgl64.Vec2, angle float64) mgl64.Vec2 {
	return mgl64.Rotate2D(angle).Mul2x1(v)
}

// NormalizeAngle wraps an angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	if a >= TwoPi {
		a = 0
	}
	return a
}

// AngleOf returns the angle of v in [0, 2π).
func AngleOf(v mgl64.Vec2) float64 {
	return NormalizeAngle(math.Atan2(v[1], v[0]))
}
