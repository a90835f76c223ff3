package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const pinballFile = "pinball.yaml"

// MaxTickRate bounds physics.tick_rate.
const MaxTickRate = 10000

// searchPaths lists where a config file is looked for when no path is given,
// in priority order.
func searchPaths(filename string) []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".pinball", "configs", filename))
	}
	return append(paths, filepath.Join("configs", filename))
}

// decodePinball decodes data over the defaults, so a partial YAML only
// overrides the keys it names, then validates the result.
func decodePinball(data []byte) (PinballConfig, error) {
	cfg := DefaultPinballConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultPinballConfig(), err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultPinballConfig(), err
	}
	return cfg, nil
}

// LoadPinball loads the pinball configuration.
// Search order: customPath -> ~/.pinball/configs/pinball.yaml ->
// ./configs/pinball.yaml -> embedded default -> DefaultPinballConfig.
//
// An explicit path must exist and be valid; on error the defaults are
// returned alongside it. Files found by searching are skipped when broken.
func LoadPinball(customPath string) (PinballConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultPinballConfig(), fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := decodePinball(data)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot load %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths(pinballFile) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decodePinball(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := decodePinball(defaultPinballYAML); err == nil {
		return cfg, nil
	}
	return DefaultPinballConfig(), nil
}

// Validate reports settings the simulation cannot run with. Table geometry
// is checked separately once it is built.
func (c PinballConfig) Validate() error {
	var errs []error
	check := func(ok bool, msg string) {
		if !ok {
			errs = append(errs, errors.New(msg))
		}
	}

	check(c.Physics.TickRate > 0, "physics.tick_rate must be positive")
	check(c.Physics.TickRate <= MaxTickRate, fmt.Sprintf("physics.tick_rate must not exceed %d", MaxTickRate))
	check(c.Physics.MaxFrameMs > 0, "physics.max_frame_ms must be positive")
	// A frame must fit at least one tick or the table never moves.
	check(c.Physics.MaxFrameMs*c.Physics.TickRate >= 1000, "physics.max_frame_ms must cover at least one tick")
	check(c.Physics.BallRadius > 0, "physics.ball_radius must be positive")
	check(c.Physics.Gravity >= 0, "physics.gravity must not be negative")
	check(c.Physics.Friction >= 0 && c.Physics.Friction <= 1, "physics.friction must be within [0, 1]")
	check(c.Flipper.PivotRadius > 0 && c.Flipper.TipRadius > 0, "flipper radii must be positive")
	check(c.Flipper.Width > c.Flipper.PivotRadius+c.Flipper.TipRadius, "flipper.width must exceed both radii")
	check(c.Flipper.MinAngle < c.Flipper.MaxAngle, "flipper.min_angle must be below max_angle")
	check(c.Plunger.ChargeTime > 0, "plunger.charge_time must be positive")
	check(c.Gameplay.Lives > 0, "gameplay.lives must be positive")

	switch c.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not score, time or none", c.Difficulty.Progression.Type))
	}

	return errors.Join(errs...)
}

// ApplyPinballPreset modifies the config based on a difficulty preset.
func ApplyPinballPreset(cfg *PinballConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Physics.Gravity *= 0.85
		cfg.Bounce.Flipper += 0.1
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Physics.Gravity *= 1.15
		cfg.Ditch.LaunchDelay *= 0.5
	}
}
