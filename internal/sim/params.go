package sim

import (
	"time"

	"github.com/vovakirdan/tui-pinball/internal/physics"
)

// Bounciness holds the restitution per obstacle kind.
type Bounciness struct {
	Wall      float64
	Flipper   float64
	Slingshot float64
	OneWay    float64
	Arc       float64
	Capsule   float64
	Bumper    float64
	Button    float64
	Ditch     float64
}

// Points awarded per scored event.
type Points struct {
	Slingshot int
	Bumper    int
	Button    int
	Ditch     int
}

// Params are the tunables of a simulation. They are usually derived from the
// YAML configuration; DefaultParams matches the embedded defaults.
type Params struct {
	TickRate int           // fixed ticks per second
	MaxFrame time.Duration // longest frame the accumulator will catch up on

	Gravity    float64 // downward acceleration, units/s²
	BallRadius float64
	Friction   float64 // tangential damping per contact
	Jitter     float64 // normal perturbation for bounciness > 1 (radians)
	Bounce     Bounciness

	PullRadius float64 // ditch attraction radius
	PullForce  float64 // ditch attraction acceleration

	Ditch physics.DitchTiming

	PlungerSpeed float64 // launch speed at full charge
	ChargeTime   float64 // seconds to reach full charge

	HitTime float64 // seconds a struck obstacle stays highlighted

	Lives    int
	Practice bool // never lose a ball
	Points   Points
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		TickRate:   120,
		MaxFrame:   100 * time.Millisecond,
		Gravity:    60,
		BallRadius: 1,
		Friction:   physics.DefaultFriction,
		Jitter:     physics.DefaultJitter,
		Bounce: Bounciness{
			Wall:      physics.DefaultBounciness,
			Flipper:   0.4,
			Slingshot: 1.3,
			OneWay:    physics.DefaultBounciness,
			Arc:       physics.DefaultBounciness,
			Capsule:   0.6,
			Bumper:    1.4,
			Button:    1.1,
			Ditch:     0,
		},
		PullRadius:   6,
		PullForce:    40,
		Ditch:        physics.DefaultDitchTiming(),
		PlungerSpeed: 95,
		ChargeTime:   1,
		HitTime:      0.25,
		Lives:        3,
		Points: Points{
			Slingshot: 10,
			Bumper:    100,
			Button:    50,
			Ditch:     500,
		},
	}
}

// Step returns the fixed tick duration in seconds.
func (p Params) Step() float64 {
	return 1 / float64(p.TickRate)
}

// MaxSpeed is the speed clamp that keeps per-tick displacement just under
// one ball radius.
func (p Params) MaxSpeed() float64 {
	return p.BallRadius * float64(p.TickRate) * 0.99
}
