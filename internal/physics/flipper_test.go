package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestFlipperClampIsIdempotent(t *testing.T) {
	f := NewFlipper(mgl64.Vec2{-10, 7}, DefaultFlipperSpec(), true)
	f.Activate()

	for i := 0; i < 120; i++ {
		f.Update(1.0 / 120)
	}
	if f.Orientation != f.Spec.MaxAngle {
		t.Fatalf("orientation = %f, expected max %f", f.Orientation, f.Spec.MaxAngle)
	}
	if f.AngularVelocity != 0 {
		t.Errorf("angular velocity = %f, expected 0 at the limit", f.AngularVelocity)
	}

	tip := f.Tip()
	f.Update(1.0 / 120)
	if f.Orientation != f.Spec.MaxAngle || f.Tip() != tip {
		t.Error("updating at the limit should change nothing")
	}
}

func TestFlipperReturnsToRest(t *testing.T) {
	f := NewFlipper(mgl64.Vec2{0, 0}, DefaultFlipperSpec(), true)
	f.Activate()
	f.Update(0.02)
	if f.Orientation <= f.Spec.MinAngle {
		t.Fatal("flipper should have risen")
	}
	f.Deactivate()
	f.Update(1)
	if f.Orientation != f.Spec.MinAngle || !f.AtLimit() {
		t.Errorf("orientation = %f, expected rest %f", f.Orientation, f.Spec.MinAngle)
	}
}

func TestFlipperMirroring(t *testing.T) {
	spec := DefaultFlipperSpec()
	left := NewFlipper(mgl64.Vec2{-10, 7}, spec, true)
	right := NewFlipper(mgl64.Vec2{10, 7}, spec, false)

	for _, active := range []bool{false, true} {
		left.SetActive(active)
		right.SetActive(active)
		for i := 0; i < 5; i++ {
			left.Update(1.0 / 120)
			right.Update(1.0 / 120)

			if !nearVec(right.Tip(), MirrorX(left.Tip()), 1e-9) {
				t.Fatalf("right tip %v is not the mirror of left tip %v", right.Tip(), left.Tip())
			}
			if !near(right.WorldAngularVelocity(), -left.WorldAngularVelocity(), 1e-12) {
				t.Fatalf("world angular velocities should be opposite")
			}
		}
	}
}

func TestFlipperRestPosition(t *testing.T) {
	spec := DefaultFlipperSpec()
	f := NewFlipper(mgl64.Vec2{0, 0}, spec, true)
	tip := f.Tip()
	if tip[0] <= 0 || tip[1] >= 0 {
		t.Errorf("left flipper at rest should point right and down, tip = %v", tip)
	}
	if !near(tip.Len(), spec.Length, 1e-9) {
		t.Errorf("tip distance = %f, expected %f", tip.Len(), spec.Length)
	}
}

func TestFlipperPointVelocity(t *testing.T) {
	f := NewFlipper(mgl64.Vec2{1, 1}, DefaultFlipperSpec(), false)
	f.Activate()
	// Right flipper swinging up turns clockwise in world space.
	v := f.PointVelocity(mgl64.Vec2{-2, 1})
	if v[1] <= 0 {
		t.Errorf("point left of a right flipper pivot should move up, got %v", v)
	}
	f.Reset()
	if f.AngularVelocity != 0 || f.Orientation != f.Spec.MinAngle {
		t.Error("Reset should return to rest")
	}
}
