package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Closed-form placement helpers used by table construction.
// Inputs are assumed non-degenerate: coincident points, parallel lines and
// radii shorter than half the chord divide by zero or take sqrt of a negative.

// IntersectLines returns the intersection point of two non-parallel lines.
func IntersectLines(l1, l2 Line) mgl64.Vec2 {
	s := PerpDot(l2.P.Sub(l1.P), l2.D) / PerpDot(l1.D, l2.D)
	return l1.P.Add(l1.D.Mul(s))
}

// CircleThroughPoints returns the centre of the radius-r circle passing through
// p1 and p2 that lies to the left of the direction p1→p2.
func CircleThroughPoints(p1, p2 mgl64.Vec2, r float64) mgl64.Vec2 {
	chord := p2.Sub(p1)
	half := chord.Len() / 2
	h := math.Sqrt(r*r - half*half)
	mid := p1.Add(chord.Mul(0.5))
	return mid.Add(Perp(chord.Normalize()).Mul(h))
}

// ArcThroughPoints returns the short counter-clockwise arc of radius r from p1
// to p2 (centre on the left of p1→p2).
func ArcThroughPoints(p1, p2 mgl64.Vec2, r float64) Arc {
	c := CircleThroughPoints(p1, p2, r)
	return NewArc(c, r, AngleOf(p1.Sub(c)), AngleOf(p2.Sub(c)))
}

// Fillet is an arc that rounds the corner between two lines, together with
// the points where it touches each line.
type Fillet struct {
	Arc
	T1 mgl64.Vec2 // tangent point on the incoming line
	T2 mgl64.Vec2 // tangent point on the outgoing line
}

// FilletArc returns the radius-r arc tangent to both lines, placed inside the
// turn from in.D to out.D at their intersection. The incoming line is
// travelled along in.D toward the corner, the outgoing one along out.D away
// from it.
func FilletArc(in, out Line, r float64) Fillet {
	corner := IntersectLines(in, out)
	d1 := in.D.Normalize()
	d2 := out.D.Normalize()

	// Half the interior angle between the reversed incoming and the outgoing direction.
	half := math.Acos(mgl64.Clamp(d1.Mul(-1).Dot(d2), -1, 1)) / 2
	along := r / math.Tan(half)
	t1 := corner.Sub(d1.Mul(along))
	t2 := corner.Add(d2.Mul(along))

	bisector := d2.Sub(d1).Normalize()
	center := corner.Add(bisector.Mul(r / math.Sin(half)))

	a1 := AngleOf(t1.Sub(center))
	a2 := AngleOf(t2.Sub(center))

	// A left turn keeps the centre on the left, so the arc runs ccw from t1.
	var arc Arc
	if PerpDot(d1, d2) > 0 {
		arc = NewArc(center, r, a1, a2)
	} else {
		arc = NewArc(center, r, a2, a1)
	}
	return Fillet{Arc: arc, T1: t1, T2: t2}
}
