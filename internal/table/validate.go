package table

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pinball/internal/physics"
	"github.com/vovakirdan/tui-pinball/internal/sim"
)

// ErrDegenerate is wrapped by every Validate failure.
var ErrDegenerate = errors.New("degenerate geometry")

const minLength = 1e-6

// Validate checks that a table can be simulated: no zero-length segments,
// positive radii, a sane flipper and a spawn point inside the plunger lane.
// The physics package assumes all of this without checking.
func Validate(t *sim.Table) error {
	size := t.Bounds.Size()
	if size[0] <= 0 || size[1] <= 0 {
		return fmt.Errorf("table: empty bounds %v: %w", size, ErrDegenerate)
	}

	groups := []struct {
		name string
		segs []physics.Segment
	}{
		{"wall", t.Walls},
		{"slingshot", t.Slingshots},
		{"one-way wall", t.OneWays},
	}
	for _, g := range groups {
		for i, s := range g.segs {
			if s.Length() < minLength {
				return fmt.Errorf("table: %s %d has zero length: %w", g.name, i, ErrDegenerate)
			}
		}
	}

	for i, b := range t.Buttons {
		if b.Length() < minLength {
			return fmt.Errorf("table: button %d has zero length: %w", i, ErrDegenerate)
		}
	}
	for i, a := range t.Arcs {
		if a.Radius <= 0 {
			return fmt.Errorf("table: arc %d radius %g: %w", i, a.Radius, ErrDegenerate)
		}
	}
	for i, c := range t.Capsules {
		if c.Radius <= 0 || c.HalfHeight < 0 {
			return fmt.Errorf("table: capsule %d radius %g half height %g: %w", i, c.Radius, c.HalfHeight, ErrDegenerate)
		}
	}
	for i, c := range t.Bumpers {
		if c.Radius <= 0 || c.InnerRadius > c.Radius {
			return fmt.Errorf("table: bumper %d radius %g inner %g: %w", i, c.Radius, c.InnerRadius, ErrDegenerate)
		}
	}
	for i, d := range t.Ditches {
		if d.Floor.Length() < minLength || d.Lid.Length() < minLength {
			return fmt.Errorf("table: ditch %d has a zero-length floor or lid: %w", i, ErrDegenerate)
		}
	}

	f := t.Flipper
	if f.Length <= 0 || f.R0 <= 0 || f.R1 <= 0 {
		return fmt.Errorf("table: flipper length %g radii %g/%g: %w", f.Length, f.R0, f.R1, ErrDegenerate)
	}
	if f.MinAngle >= f.MaxAngle || f.MaxAngularVelocity <= 0 {
		return fmt.Errorf("table: flipper travel %g..%g at %g rad/s: %w", f.MinAngle, f.MaxAngle, f.MaxAngularVelocity, ErrDegenerate)
	}

	if !t.PlungerLane.Contains(t.LaunchPos) {
		return fmt.Errorf("table: launch position %v outside plunger lane: %w", t.LaunchPos, ErrDegenerate)
	}
	if t.LowerBound >= t.LaunchPos[1] {
		return fmt.Errorf("table: lower bound %g above launch position: %w", t.LowerBound, ErrDegenerate)
	}
	return nil
}
