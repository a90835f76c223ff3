// Package config provides YAML-based configuration loading and difficulty
// management for the pinball table.
package config

// PinballConfig contains all configuration for the pinball game.
type PinballConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Bounce     BounceConfig     `yaml:"bounce"`
	Flipper    FlipperConfig    `yaml:"flipper"`
	Ditch      DitchConfig      `yaml:"ditch"`
	Plunger    PlungerConfig    `yaml:"plunger"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Table      TableConfig      `yaml:"table"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines the integration parameters.
type PhysicsConfig struct {
	TickRate   int     `yaml:"tick_rate"`    // fixed simulation ticks per second
	MaxFrameMs int     `yaml:"max_frame_ms"` // longest frame the loop catches up on
	Gravity    float64 `yaml:"gravity"`
	BallRadius float64 `yaml:"ball_radius"`
	Friction   float64 `yaml:"friction"` // tangential damping per contact
	Jitter     float64 `yaml:"jitter"`   // radians, energetic bounces only
	PullRadius float64 `yaml:"pull_radius"`
	PullForce  float64 `yaml:"pull_force"`
}

// BounceConfig defines restitution per obstacle kind.
type BounceConfig struct {
	Wall      float64 `yaml:"wall"`
	Flipper   float64 `yaml:"flipper"`
	Slingshot float64 `yaml:"slingshot"`
	OneWay    float64 `yaml:"one_way"`
	Arc       float64 `yaml:"arc"`
	Capsule   float64 `yaml:"capsule"`
	Bumper    float64 `yaml:"bumper"`
	Button    float64 `yaml:"button"`
	Ditch     float64 `yaml:"ditch"`
}

// FlipperConfig defines the flipper shape and travel.
type FlipperConfig struct {
	Width          float64 `yaml:"width"`        // overall, pivot edge to tip edge
	PivotRadius    float64 `yaml:"pivot_radius"` // wide end
	TipRadius      float64 `yaml:"tip_radius"`   // narrow end
	MinAngle       float64 `yaml:"min_angle"`    // degrees, rest
	MaxAngle       float64 `yaml:"max_angle"`    // degrees, raised
	TurnsPerSecond float64 `yaml:"turns_per_second"`
}

// DitchConfig defines the capture/launch timing.
type DitchConfig struct {
	LaunchDelay  float64 `yaml:"launch_delay"`
	CloseDelay   float64 `yaml:"close_delay"`
	LaunchSpeed  float64 `yaml:"launch_speed"`
	LaunchJitter float64 `yaml:"launch_jitter"`
}

// PlungerConfig defines the launch plunger.
type PlungerConfig struct {
	Speed      float64 `yaml:"speed"`       // at full charge
	ChargeTime float64 `yaml:"charge_time"` // seconds to full charge
}

// ScoringConfig defines points per event.
type ScoringConfig struct {
	Slingshot int     `yaml:"slingshot"`
	Bumper    int     `yaml:"bumper"`
	Button    int     `yaml:"button"`
	Ditch     int     `yaml:"ditch"`
	HitTime   float64 `yaml:"hit_time"` // seconds a struck obstacle stays lit
}

// GameplayConfig defines game rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// Point is a 2D position in world units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SegmentConfig is a wall given by its endpoints.
type SegmentConfig struct {
	From Point `yaml:"from"`
	To   Point `yaml:"to"`
}

// SpanConfig is a vertical range.
type SpanConfig struct {
	Bottom float64 `yaml:"bottom"`
	Top    float64 `yaml:"top"`
}

// TableConfig defines the playfield layout. The world is y-up with x = 0 on
// the centre line; left-side features are mirrored to the right.
type TableConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BorderInset  float64 `yaml:"border_inset"`
	CornerRadius float64 `yaml:"corner_radius"`
	LowerBound   float64 `yaml:"lower_bound"`

	FlipperX float64 `yaml:"flipper_x"` // pivot distance from the centre line
	FlipperY float64 `yaml:"flipper_y"`

	GuideLength float64 `yaml:"guide_length"` // slanted wall above each flipper
	GuideRise   float64 `yaml:"guide_rise"`   // vertical wall above that

	LaneWidth float64 `yaml:"lane_width"` // plunger lane, right edge
	LaneFloor float64 `yaml:"lane_floor"`
	LaneTop   float64 `yaml:"lane_top"` // one-way gate height at the lane mouth

	Slingshot SegmentConfig `yaml:"slingshot"` // left one, mirrored

	Bumpers           []Point `yaml:"bumpers"`
	BumperRadius      float64 `yaml:"bumper_radius"`
	BumperInnerRadius float64 `yaml:"bumper_inner_radius"`

	Pegs          []Point `yaml:"pegs"`
	PegHalfHeight float64 `yaml:"peg_half_height"`
	PegRadius     float64 `yaml:"peg_radius"`

	ButtonInset float64      `yaml:"button_inset"` // distance from the left wall
	Buttons     []SpanConfig `yaml:"buttons"`

	DitchX     float64 `yaml:"ditch_x"` // inner edge distance from the centre line
	DitchY     float64 `yaml:"ditch_y"`
	DitchWidth float64 `yaml:"ditch_width"`
	DitchDepth float64 `yaml:"ditch_depth"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	GravityMultiplier float64 `yaml:"gravity_multiplier"` // added to gravity at max difficulty
	BumperMultiplier  float64 `yaml:"bumper_multiplier"`  // added to bumper bounce at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown names yield "".
func ParsePreset(name string) DifficultyPreset {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
