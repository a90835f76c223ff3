package physics

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Restitution presets.
const (
	DefaultBounciness = 0.5  // ordinary walls
	DefaultFriction   = 0.99 // tangential damping per contact
	DefaultJitter     = 0.1  // max normal perturbation (radians) for energetic bounces
)

// Resolver turns a contact into a velocity and position correction.
//
// The correction is discrete and non-iterative: the ball is pushed out by the
// full penetration depth in one go. Rand is consulted only for bounciness > 1;
// a nil Rand disables the perturbation entirely.
type Resolver struct {
	Friction float64
	Jitter   float64
	Rand     *rand.Rand
}

// NewResolver returns a resolver with the default friction and jitter.
func NewResolver(rng *rand.Rand) Resolver {
	return Resolver{Friction: DefaultFriction, Jitter: DefaultJitter, Rand: rng}
}

// Resolve applies the contact to the ball. obstacleVel is the velocity of the
// obstacle at the contact point (zero for static shapes). It returns false,
// leaving the ball untouched, when the ball is already separating.
func (r Resolver) Resolve(ball *Body, c Contact, obstacleVel mgl64.Vec2, bounciness float64) bool {
	relN := ball.Vel.Sub(obstacleVel).Dot(c.Normal)
	if relN > 0 {
		return false
	}

	ball.Pos = ball.Pos.Add(c.Normal.Mul(c.Penetration))

	n := c.Normal
	if bounciness > 1 && r.Rand != nil && r.Jitter > 0 {
		n = Rotate(n, (r.Rand.Float64()*2-1)*r.Jitter)
	}

	vN := ball.Vel.Dot(n)
	vT := ball.Vel.Sub(n.Mul(vN))
	vN -= (1 + bounciness) * relN
	ball.Vel = n.Mul(vN).Add(vT.Mul(r.Friction))
	return true
}
