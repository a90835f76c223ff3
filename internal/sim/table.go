package sim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-pinball/internal/physics"
)

// Bounds is an axis-aligned rectangle in world units.
type Bounds struct {
	Min mgl64.Vec2 `json:"min"`
	Max mgl64.Vec2 `json:"max"`
}

// Contains reports whether p lies inside the rectangle (edges included).
func (b Bounds) Contains(p mgl64.Vec2) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] && p[1] >= b.Min[1] && p[1] <= b.Max[1]
}

// Size returns the width and height.
func (b Bounds) Size() mgl64.Vec2 {
	return b.Max.Sub(b.Min)
}

// DitchSpec is the geometry of one ditch. Its runtime state lives in State.
type DitchSpec struct {
	Floor physics.Segment
	Lid   physics.Segment
}

// Table is the obstacle layout of a playfield. It is built once and treated
// as read-only by the simulation; everything that changes during play lives
// in State.
type Table struct {
	Bounds Bounds // playfield rectangle

	Walls      []physics.Segment
	Slingshots []physics.Segment // scored, energetic
	OneWays    []physics.Segment // collide from the left of P0→P1 only
	Arcs       []physics.Arc
	Capsules   []physics.Capsule
	Bumpers    []physics.Circle // scored, energetic
	Buttons    []physics.Button // scored
	Ditches    []DitchSpec

	Flipper    physics.FlipperSpec
	LeftPivot  mgl64.Vec2
	RightPivot mgl64.Vec2

	LaunchPos   mgl64.Vec2 // ball spawn point, inside PlungerLane
	PlungerLane Bounds     // region where a plunger release launches the ball
	LowerBound  float64    // the ball drains once its centre drops below this
}
