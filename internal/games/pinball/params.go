package pinball

import (
	"time"

	"github.com/vovakirdan/tui-pinball/internal/config"
	"github.com/vovakirdan/tui-pinball/internal/physics"
	"github.com/vovakirdan/tui-pinball/internal/sim"
)

// paramsFrom converts the YAML configuration into simulation parameters.
func paramsFrom(cfg config.PinballConfig, practice bool) sim.Params {
	p := sim.DefaultParams()

	if cfg.Physics.TickRate > 0 {
		p.TickRate = cfg.Physics.TickRate
	}
	if cfg.Physics.MaxFrameMs > 0 {
		p.MaxFrame = time.Duration(cfg.Physics.MaxFrameMs) * time.Millisecond
	}
	p.Gravity = cfg.Physics.Gravity
	if cfg.Physics.BallRadius > 0 {
		p.BallRadius = cfg.Physics.BallRadius
	}
	p.Friction = cfg.Physics.Friction
	p.Jitter = cfg.Physics.Jitter
	p.PullRadius = cfg.Physics.PullRadius
	p.PullForce = cfg.Physics.PullForce

	p.Bounce = sim.Bounciness{
		Wall:      cfg.Bounce.Wall,
		Flipper:   cfg.Bounce.Flipper,
		Slingshot: cfg.Bounce.Slingshot,
		OneWay:    cfg.Bounce.OneWay,
		Arc:       cfg.Bounce.Arc,
		Capsule:   cfg.Bounce.Capsule,
		Bumper:    cfg.Bounce.Bumper,
		Button:    cfg.Bounce.Button,
		Ditch:     cfg.Bounce.Ditch,
	}

	p.Ditch = physics.DitchTiming{
		LaunchDelay:  cfg.Ditch.LaunchDelay,
		CloseDelay:   cfg.Ditch.CloseDelay,
		LaunchSpeed:  cfg.Ditch.LaunchSpeed,
		LaunchJitter: cfg.Ditch.LaunchJitter,
	}

	p.PlungerSpeed = cfg.Plunger.Speed
	p.ChargeTime = cfg.Plunger.ChargeTime

	p.Points = sim.Points{
		Slingshot: cfg.Scoring.Slingshot,
		Bumper:    cfg.Scoring.Bumper,
		Button:    cfg.Scoring.Button,
		Ditch:     cfg.Scoring.Ditch,
	}
	p.HitTime = cfg.Scoring.HitTime

	p.Lives = cfg.Gameplay.Lives
	if p.Lives < 1 {
		p.Lives = 1
	}
	p.Practice = practice
	return p
}
