package sim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-pinball/internal/physics"
)

var still mgl64.Vec2

// restSpeed is the fastest the ball may move and still be launched.
const restSpeed = 2.0

// Tick advances the simulation by exactly one fixed step. It does nothing
// once the game is over.
//
// Order per tick: plunger, ball integration, drain check, flippers,
// collision passes, ditch timers, hit timers.
func (s *State) Tick(in Input) {
	if s.Score.GameOver {
		return
	}
	dt := s.Params.Step()
	s.ticks++

	s.updatePlunger(in.Plunger, dt)
	s.integrate(dt)

	if s.Ball.Pos[1] < s.Table.LowerBound {
		if !s.Score.LoseBall() {
			s.ResetBall()
		}
		return
	}

	s.Left.SetActive(in.Left)
	s.Right.SetActive(in.Right)
	s.Left.Update(dt)
	s.Right.Update(dt)

	s.collide()

	for _, d := range s.Ditches {
		d.Advance(dt, &s.Ball.Body, s.rng)
	}
	s.Hits.Decay(dt)
}

func (s *State) updatePlunger(held bool, dt float64) {
	charge, released := s.Plunger.update(held, dt, s.Params.ChargeTime)
	if !released || !s.InPlungerLane() || s.Ball.Vel.Len() > restSpeed {
		return
	}
	s.Ball.Vel[1] += charge * s.Params.PlungerSpeed
}

// integrate applies gravity and ditch pull, clamps the speed and moves the
// ball (semi-implicit Euler).
func (s *State) integrate(dt float64) {
	b := &s.Ball
	accel := mgl64.Vec2{0, -s.Params.Gravity}

	for _, d := range s.Ditches {
		if d.State != physics.DitchOpen && d.State != physics.DitchCaptured {
			continue
		}
		to := d.FloorCenter().Sub(b.Pos)
		dist := to.Len()
		if dist > 0 && dist < s.Params.PullRadius {
			accel = accel.Add(to.Mul(s.Params.PullForce / dist))
		}
	}

	b.Vel = b.Vel.Add(accel.Mul(dt))
	if limit := s.Params.MaxSpeed(); b.Vel.Len() > limit {
		b.Vel = b.Vel.Normalize().Mul(limit)
	}
	b.Pos = b.Pos.Add(b.Vel.Mul(dt))
}

// collide runs every collision pass in order. Contacts inside a pass are
// resolved one after another, never simultaneously.
func (s *State) collide() {
	b := &s.Ball
	p := s.Params
	pts := p.Points

	for _, f := range [2]*physics.Flipper{s.Left, s.Right} {
		if c, v, ok := physics.CollideFlipper(b.Pos, b.Radius, f); ok {
			s.resolver.Resolve(&b.Body, c, v, p.Bounce.Flipper)
		}
	}

	for _, w := range s.Table.Walls {
		if c, ok := physics.CollideSegment(b.Pos, b.Radius, w); ok {
			s.resolver.Resolve(&b.Body, c, still, p.Bounce.Wall)
		}
	}

	for _, d := range s.Ditches {
		if d.Closed() {
			continue
		}
		if c, ok := d.Collide(b.Pos, b.Radius); ok {
			s.resolver.Resolve(&b.Body, c, still, p.Bounce.Ditch)
			if d.Capture() {
				s.Score.Award(pts.Ditch)
			}
		}
	}

	for _, d := range s.Ditches {
		if !d.Closed() {
			continue
		}
		if c, ok := d.Collide(b.Pos, b.Radius); ok {
			s.resolver.Resolve(&b.Body, c, still, p.Bounce.Wall)
		}
	}

	for i, w := range s.Table.Slingshots {
		if c, ok := physics.CollideSegment(b.Pos, b.Radius, w); ok {
			if s.resolver.Resolve(&b.Body, c, still, p.Bounce.Slingshot) {
				s.scoreHit(HitSlingshot, i, pts.Slingshot)
			}
		}
	}

	for _, w := range s.Table.OneWays {
		if c, ok := physics.CollideOneWay(b.Pos, b.Radius, w); ok {
			s.resolver.Resolve(&b.Body, c, still, p.Bounce.OneWay)
		}
	}

	for _, a := range s.Table.Arcs {
		if c, ok := physics.CollideArc(b.Pos, b.Radius, a); ok {
			s.resolver.Resolve(&b.Body, c, still, p.Bounce.Arc)
		}
	}

	for _, cp := range s.Table.Capsules {
		if c, ok := physics.CollideCapsule(b.Pos, b.Radius, cp); ok {
			s.resolver.Resolve(&b.Body, c, still, p.Bounce.Capsule)
		}
	}

	for i, bm := range s.Table.Bumpers {
		if c, ok := physics.CollideCircle(b.Pos, b.Radius, bm); ok {
			if s.resolver.Resolve(&b.Body, c, still, p.Bounce.Bumper) {
				s.scoreHit(HitBumper, i, pts.Bumper)
			}
		}
	}

	for i, bt := range s.Table.Buttons {
		if c, ok := physics.CollideButton(b.Pos, b.Radius, bt); ok {
			if s.resolver.Resolve(&b.Body, c, still, p.Bounce.Button) {
				s.scoreHit(HitButton, i, pts.Button)
			}
		}
	}
}

func (s *State) scoreHit(kind HitKind, i, points int) {
	s.Score.Award(points)
	s.Hits.Hit(kind, i, s.Params.HitTime)
}
