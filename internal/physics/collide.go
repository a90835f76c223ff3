package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Contact is the result of a positive collision test.
// Normal is a unit vector pointing from the obstacle toward the ball;
// Penetration is the overlap depth (>= 0).
type Contact struct {
	Normal      mgl64.Vec2
	Penetration float64
}

var up = mgl64.Vec2{0, 1}

// ClosestPointOnSegment projects p onto segment a-b, clamping the projection
// parameter to [0, 1]. It returns the closest point and that parameter.
func ClosestPointOnSegment(p, a, b mgl64.Vec2) (mgl64.Vec2, float64) {
	ab := b.Sub(a)
	t := mgl64.Clamp(p.Sub(a).Dot(ab)/ab.Dot(ab), 0, 1)
	return a.Add(ab.Mul(t)), t
}

// contactAt builds a contact between the ball centre and a closest point when
// the distance is within reach. fallback is used as the normal when the ball
// centre sits exactly on the closest point.
func contactAt(ballPos, closest mgl64.Vec2, reach float64, fallback mgl64.Vec2) (Contact, bool) {
	d := ballPos.Sub(closest)
	dist := d.Len()
	pen := reach - dist
	if pen < 0 {
		return Contact{}, false
	}
	n := fallback
	if dist > 0 {
		n = d.Mul(1 / dist)
	}
	return Contact{Normal: n, Penetration: pen}, true
}

// CollideSegment tests the ball against a finite segment.
func CollideSegment(ballPos mgl64.Vec2, ballR float64, s Segment) (Contact, bool) {
	closest, _ := ClosestPointOnSegment(ballPos, s.P0, s.P1)
	return contactAt(ballPos, closest, ballR, Perp(s.Dir()).Normalize())
}

// CollideOneWay is CollideSegment gated to the left-hand side of P0→P1.
// A ball on the right-hand side passes through.
func CollideOneWay(ballPos mgl64.Vec2, ballR float64, s Segment) (Contact, bool) {
	if PerpDot(s.Dir(), ballPos.Sub(s.P0)) < 0 {
		return Contact{}, false
	}
	return CollideSegment(ballPos, ballR, s)
}

// CollideButton is a segment test whose normal is the button's fixed normal.
func CollideButton(ballPos mgl64.Vec2, ballR float64, b Button) (Contact, bool) {
	c, ok := CollideSegment(ballPos, ballR, b.Segment)
	if !ok {
		return Contact{}, false
	}
	c.Normal = b.Normal
	return c, true
}

// CollideCapsule tests the ball against a capsule.
func CollideCapsule(ballPos mgl64.Vec2, ballR float64, c Capsule) (Contact, bool) {
	a, b := c.Ends()
	closest, _ := ClosestPointOnSegment(ballPos, a, b)
	return contactAt(ballPos, closest, ballR+c.Radius, Perp(c.Axis))
}

// CollideCircle tests the ball against a pop bumper's outer radius.
func CollideCircle(ballPos mgl64.Vec2, ballR float64, c Circle) (Contact, bool) {
	return contactAt(ballPos, c.Center, ballR+c.Radius, up)
}

// CollideArc tests the ball against an arc from either side. Inside the
// angular range the closest point is the radial projection; outside it the
// angularly nearer endpoint is used.
func CollideArc(ballPos mgl64.Vec2, ballR float64, a Arc) (Contact, bool) {
	angle := AngleOf(ballPos.Sub(a.Center))
	if !a.Contains(angle) {
		if angularDistance(angle, a.Start) <= angularDistance(angle, a.End) {
			angle = a.Start
		} else {
			angle = a.End
		}
	}
	closest := a.Point(angle)
	return contactAt(ballPos, closest, ballR, a.Center.Sub(closest).Normalize())
}

// angularDistance is the shortest distance between two angles in [0, 2π).
func angularDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, TwoPi-d)
}

// CollideFlipper tests the ball against a flipper: a segment from the pivot to
// the tip whose radius tapers from R0 to R1. It also returns the velocity of
// the touching point on the flipper surface.
func CollideFlipper(ballPos mgl64.Vec2, ballR float64, f *Flipper) (Contact, mgl64.Vec2, bool) {
	pivot, tip := f.Pivot, f.Tip()
	closest, t := ClosestPointOnSegment(ballPos, pivot, tip)
	r := Lerp(f.Spec.R0, f.Spec.R1, t)
	c, ok := contactAt(ballPos, closest, r+ballR, Perp(tip.Sub(pivot)).Normalize())
	if !ok {
		return Contact{}, mgl64.Vec2{}, false
	}
	surface := closest.Add(c.Normal.Mul(r))
	return c, f.PointVelocity(surface), true
}
