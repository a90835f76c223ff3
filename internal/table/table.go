// Package table builds the playfield geometry from a handful of layout
// constants: border, rounded top corners, flipper guides, plunger lane with a
// one-way gate, slingshots, bumpers, pegs, buttons and two ditches.
package table

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-pinball/internal/config"
	"github.com/vovakirdan/tui-pinball/internal/physics"
	"github.com/vovakirdan/tui-pinball/internal/sim"
)

// launchClearance lifts the spawn point one ball radius above the lane floor.
const launchClearance = 1.0

// laneHeight is how far above the lane floor a plunger release still counts.
const laneHeight = 4.0

// gateRise is how much higher the gate sits at the outer wall than at the
// lane mouth. Nothing can rest on a sloped gate.
const gateRise = 3.0

// FlipperSpec converts the flipper section of the configuration.
func FlipperSpec(cfg config.FlipperConfig) physics.FlipperSpec {
	return physics.FlipperSpec{
		Length:             cfg.Width - cfg.PivotRadius - cfg.TipRadius,
		R0:                 cfg.PivotRadius,
		R1:                 cfg.TipRadius,
		MinAngle:           mgl64.DegToRad(cfg.MinAngle),
		MaxAngle:           mgl64.DegToRad(cfg.MaxAngle),
		MaxAngularVelocity: physics.TwoPi * cfg.TurnsPerSecond,
	}
}

// Default builds the stock table.
func Default() *sim.Table {
	cfg := config.DefaultPinballConfig()
	return Build(cfg.Table, FlipperSpec(cfg.Flipper))
}

// Build derives a complete table from cfg. It does not validate; call
// Validate on the result when cfg comes from user input.
func Build(cfg config.TableConfig, flipper physics.FlipperSpec) *sim.Table {
	halfW := cfg.Width/2 - cfg.BorderInset
	left, right := -halfW, halfW
	bottom := cfg.BorderInset
	top := cfg.Height - cfg.BorderInset

	t := &sim.Table{
		Bounds: sim.Bounds{
			Min: mgl64.Vec2{-cfg.Width / 2, 0},
			Max: mgl64.Vec2{cfg.Width / 2, cfg.Height},
		},
		Flipper:    flipper,
		LeftPivot:  mgl64.Vec2{-cfg.FlipperX, cfg.FlipperY},
		RightPivot: mgl64.Vec2{cfg.FlipperX, cfg.FlipperY},
		LowerBound: cfg.LowerBound,
	}

	buildBorder(t, cfg, left, right, bottom, top)
	buildGuides(t, cfg, flipper)
	buildLane(t, cfg, right)
	buildTargets(t, cfg, left)
	buildDitches(t, cfg)

	return t
}

// buildBorder adds the side and top walls. The bottom is open: that is the
// drain. With a positive corner radius the top corners are filleted.
func buildBorder(t *sim.Table, cfg config.TableConfig, left, right, bottom, top float64) {
	bottomRight := mgl64.Vec2{right, cfg.LaneFloor}
	bottomLeft := mgl64.Vec2{left, bottom}
	topRight := mgl64.Vec2{right, top}
	topLeft := mgl64.Vec2{left, top}

	if cfg.CornerRadius <= 0 {
		t.Walls = append(t.Walls,
			physics.Segment{P0: bottomRight, P1: topRight},
			physics.Segment{P0: topRight, P1: topLeft},
			physics.Segment{P0: topLeft, P1: bottomLeft},
		)
		return
	}

	rightWall := physics.Line{P: bottomRight, D: mgl64.Vec2{0, 1}}
	topWall := physics.Line{P: topRight, D: mgl64.Vec2{-1, 0}}
	leftWall := physics.Line{P: topLeft, D: mgl64.Vec2{0, -1}}

	rc := physics.FilletArc(rightWall, topWall, cfg.CornerRadius)
	lc := physics.FilletArc(topWall, leftWall, cfg.CornerRadius)

	t.Walls = append(t.Walls,
		physics.Segment{P0: bottomRight, P1: rc.T1},
		physics.Segment{P0: rc.T2, P1: lc.T1},
		physics.Segment{P0: lc.T2, P1: bottomLeft},
	)
	t.Arcs = append(t.Arcs, rc.Arc, lc.Arc)
}

// buildGuides adds the slanted inlane wall that feeds each flipper and the
// vertical wall above it. The slant continues the flipper's rest angle.
func buildGuides(t *sim.Table, cfg config.TableConfig, flipper physics.FlipperSpec) {
	angle := math.Pi + flipper.MinAngle
	p0 := mgl64.Vec2{-cfg.FlipperX - 0.5, cfg.FlipperY + flipper.R0 + 0.5}
	p1 := p0.Add(mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(cfg.GuideLength))
	p2 := p1.Add(mgl64.Vec2{0, cfg.GuideRise})

	t.Walls = appendMirrored(t.Walls,
		physics.Segment{P0: p0, P1: p1},
		physics.Segment{P0: p1, P1: p2},
	)
}

// buildLane adds the plunger lane along the right wall, closed on top by a
// gate the ball can leave through but not re-enter. The gate slopes down
// toward the playfield so a weak launch or a ball coming back rolls off it.
func buildLane(t *sim.Table, cfg config.TableConfig, right float64) {
	laneX := right - cfg.LaneWidth

	t.Walls = append(t.Walls,
		physics.Seg(laneX, cfg.LaneFloor, laneX, cfg.LaneTop),
		physics.Seg(laneX, cfg.LaneFloor, right, cfg.LaneFloor),
	)
	// P0→P1 runs up and to the right, so the colliding side is above.
	t.OneWays = append(t.OneWays, physics.Seg(laneX, cfg.LaneTop, right, cfg.LaneTop+gateRise))

	t.LaunchPos = mgl64.Vec2{(laneX + right) / 2, cfg.LaneFloor + launchClearance}
	t.PlungerLane = sim.Bounds{
		Min: mgl64.Vec2{laneX, cfg.LaneFloor},
		Max: mgl64.Vec2{right, cfg.LaneFloor + laneHeight},
	}
}

// buildTargets adds the scored obstacles and the pegs.
func buildTargets(t *sim.Table, cfg config.TableConfig, left float64) {
	sling := physics.Seg(cfg.Slingshot.From.X, cfg.Slingshot.From.Y, cfg.Slingshot.To.X, cfg.Slingshot.To.Y)
	t.Slingshots = appendMirrored(t.Slingshots, sling)

	for _, p := range cfg.Bumpers {
		t.Bumpers = append(t.Bumpers, physics.Circle{
			Center:      mgl64.Vec2{p.X, p.Y},
			Radius:      cfg.BumperRadius,
			InnerRadius: cfg.BumperInnerRadius,
		})
	}

	for _, p := range cfg.Pegs {
		t.Capsules = append(t.Capsules, physics.NewCapsule(mgl64.Vec2{p.X, p.Y}, cfg.PegHalfHeight, cfg.PegRadius))
	}

	// Top to bottom so the fixed normal points into the playfield (+x).
	x := left + cfg.ButtonInset
	for _, span := range cfg.Buttons {
		t.Buttons = append(t.Buttons, physics.NewButton(physics.Seg(x, span.Top, x, span.Bottom)))
	}
}

// buildDitches adds a pocket on each side: capture floor, lid, two side walls
// and a base wall just under the floor so the floor only catches from above.
func buildDitches(t *sim.Table, cfg config.TableConfig) {
	x0 := -(cfg.DitchX + cfg.DitchWidth)
	x1 := -cfg.DitchX
	y := cfg.DitchY
	lidY := y + cfg.DitchDepth

	floor := physics.Seg(x0, y, x1, y)
	lid := physics.Seg(x0, lidY, x1, lidY)

	t.Ditches = append(t.Ditches,
		sim.DitchSpec{Floor: floor, Lid: lid},
		sim.DitchSpec{Floor: floor.Mirror(), Lid: lid.Mirror()},
	)
	t.Walls = appendMirrored(t.Walls,
		physics.Seg(x0, y, x0, lidY),
		physics.Seg(x1, lidY, x1, y),
		physics.Seg(x0, y-0.1, x1, y-0.1),
	)
}

// appendMirrored appends each segment followed by its mirror image.
func appendMirrored(dst []physics.Segment, segs ...physics.Segment) []physics.Segment {
	for _, s := range segs {
		dst = append(dst, s, s.Mirror())
	}
	return dst
}
