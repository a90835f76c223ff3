package config

import (
	_ "embed"
)

//go:embed defaults/pinball.yaml
var defaultPinballYAML []byte

// DefaultPinballConfig returns the default pinball configuration. It mirrors
// defaults/pinball.yaml and is the last fallback when the embedded file fails
// to parse.
func DefaultPinballConfig() PinballConfig {
	return PinballConfig{
		Physics: PhysicsConfig{
			TickRate:   120,
			MaxFrameMs: 100,
			Gravity:    60,
			BallRadius: 1,
			Friction:   0.99,
			Jitter:     0.1,
			PullRadius: 6,
			PullForce:  40,
		},
		Bounce: BounceConfig{
			Wall:      0.5,
			Flipper:   0.4,
			Slingshot: 1.3,
			OneWay:    0.5,
			Arc:       0.5,
			Capsule:   0.6,
			Bumper:    1.4,
			Button:    1.1,
			Ditch:     0,
		},
		Flipper: FlipperConfig{
			Width:          8,
			PivotRadius:    1.1,
			TipRadius:      0.7,
			MinAngle:       -38,
			MaxAngle:       33,
			TurnsPerSecond: 4,
		},
		Ditch: DitchConfig{
			LaunchDelay:  1.0,
			CloseDelay:   0.4,
			LaunchSpeed:  55,
			LaunchJitter: 0.15,
		},
		Plunger: PlungerConfig{
			Speed:      95,
			ChargeTime: 1.0,
		},
		Scoring: ScoringConfig{
			Slingshot: 10,
			Bumper:    100,
			Button:    50,
			Ditch:     500,
			HitTime:   0.25,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Table: DefaultTableConfig(),
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				GravityMultiplier: 0.3,
				BumperMultiplier:  0.2,
			},
		},
	}
}

// DefaultTableConfig returns the stock playfield layout.
func DefaultTableConfig() TableConfig {
	return TableConfig{
		Width:        70,
		Height:       70,
		BorderInset:  0.1,
		CornerRadius: 12,
		LowerBound:   -2,
		FlipperX:     10,
		FlipperY:     7,
		GuideLength:  11,
		GuideRise:    13,
		LaneWidth:    6,
		LaneFloor:    2,
		LaneTop:      52,
		Slingshot: SegmentConfig{
			From: Point{X: -16, Y: 21},
			To:   Point{X: -12, Y: 13},
		},
		Bumpers:           []Point{{X: -8, Y: 48}, {X: 8, Y: 48}, {X: 0, Y: 40}},
		BumperRadius:      2.5,
		BumperInnerRadius: 1.8,
		Pegs:              []Point{{X: -4, Y: 30}, {X: 4, Y: 30}},
		PegHalfHeight:     1.5,
		PegRadius:         0.6,
		ButtonInset:       1.9,
		Buttons: []SpanConfig{
			{Bottom: 30, Top: 33},
			{Bottom: 35, Top: 38},
			{Bottom: 40, Top: 43},
		},
		DitchX:     20,
		DitchY:     52,
		DitchWidth: 5,
		DitchDepth: 2.5,
	}
}
