package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg PinballConfig
	if err := yaml.Unmarshal(defaultPinballYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPinballConfig()) {
		t.Errorf("embedded YAML and DefaultPinballConfig differ:\n%+v\n%+v", cfg, DefaultPinballConfig())
	}
}

func TestLoadPinballCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("physics:\n  gravity: 42\ngameplay:\n  lives: 7\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadPinball(path)
	if err != nil {
		t.Fatalf("LoadPinball: %v", err)
	}
	if cfg.Physics.Gravity != 42 || cfg.Gameplay.Lives != 7 {
		t.Errorf("overrides not applied: gravity=%f lives=%d", cfg.Physics.Gravity, cfg.Gameplay.Lives)
	}
	// Unnamed keys keep their defaults.
	if cfg.Physics.TickRate != 120 || cfg.Table.Width != 70 {
		t.Errorf("defaults lost: tick_rate=%d width=%f", cfg.Physics.TickRate, cfg.Table.Width)
	}
}

func TestLoadPinballErrors(t *testing.T) {
	if _, err := LoadPinball(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [oops"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadPinball(path)
	if err == nil {
		t.Error("expected parse error")
	}
	if cfg.Physics.Gravity != 60 {
		t.Errorf("parse error should still return defaults, got gravity %f", cfg.Physics.Gravity)
	}
}

func TestApplyPinballPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		lives   int
		gravity float64
		enabled bool
		initial float64
	}{
		{DifficultyEasy, 5, 51, true, 0.0},
		{DifficultyNormal, 3, 60, true, 0.3},
		{DifficultyHard, 2, 69, true, 0.7},
		{DifficultyFixed, 3, 60, false, 0.0},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPinballConfig()
			ApplyPinballPreset(&cfg, tc.preset)
			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if math.Abs(cfg.Physics.Gravity-tc.gravity) > 1e-9 {
				t.Errorf("gravity = %f, expected %f", cfg.Physics.Gravity, tc.gravity)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initial {
				t.Errorf("initial level = %f, expected %f", cfg.Difficulty.InitialLevel, tc.initial)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard", "fixed"} {
		if ParsePreset(name) != DifficultyPreset(name) {
			t.Errorf("ParsePreset(%q) = %q", name, ParsePreset(name))
		}
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should map to empty")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultPinballConfig().Difficulty
	d := NewDifficultyManager(cfg)

	if d.Level(0, 0) != 0 {
		t.Errorf("Level(0) = %f, expected 0", d.Level(0, 0))
	}
	if d.Level(cfg.Progression.MaxAt*2, 0) != 1 {
		t.Errorf("Level past max = %f, expected 1", d.Level(cfg.Progression.MaxAt*2, 0))
	}
	if got := d.Gravity(60, cfg.Progression.MaxAt, 0); math.Abs(got-78) > 1e-9 {
		t.Errorf("Gravity at max = %f, expected 78", got)
	}
	if got := d.BumperBounce(1.4, 0, 0); got != 1.4 {
		t.Errorf("BumperBounce at start = %f, expected 1.4", got)
	}

	d.SetEnabled(false)
	d.SetInitialLevel(0.5)
	if d.IsEnabled() || d.Level(cfg.Progression.MaxAt, 0) != 0.5 {
		t.Error("disabled manager should stay at the initial level")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultPinballConfig().Validate(); err != nil {
		t.Fatalf("defaults should be valid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(c *PinballConfig)
	}{
		{"zero tick rate", func(c *PinballConfig) { c.Physics.TickRate = 0 }},
		{"huge tick rate", func(c *PinballConfig) { c.Physics.TickRate = 2_000_000_000 }},
		{"frame shorter than a tick", func(c *PinballConfig) { c.Physics.MaxFrameMs = 5 }},
		{"negative ball radius", func(c *PinballConfig) { c.Physics.BallRadius = -1 }},
		{"friction above one", func(c *PinballConfig) { c.Physics.Friction = 1.5 }},
		{"inverted flipper travel", func(c *PinballConfig) { c.Flipper.MinAngle, c.Flipper.MaxAngle = 10, -10 }},
		{"flipper too short", func(c *PinballConfig) { c.Flipper.Width = 1 }},
		{"no lives", func(c *PinballConfig) { c.Gameplay.Lives = 0 }},
		{"unknown progression", func(c *PinballConfig) { c.Difficulty.Progression.Type = "bananas" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPinballConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestLoadPinballRejectsInvalidCustom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad-physics.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  tick_rate: 0\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadPinball(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if cfg.Physics.TickRate != 120 {
		t.Errorf("invalid config should fall back to defaults, got tick_rate %d", cfg.Physics.TickRate)
	}
}

func TestLoadPinballSearchPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	// Nothing on disk: embedded defaults.
	cfg, err := LoadPinball("")
	if err != nil {
		t.Fatalf("LoadPinball: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPinballConfig()) {
		t.Error("expected embedded defaults")
	}

	// A user config wins over the local one.
	userDir := filepath.Join(home, ".pinball", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(userDir, pinballFile), []byte("gameplay:\n  lives: 9\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join("configs", pinballFile), []byte("gameplay:\n  lives: 4\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if cfg, _ := LoadPinball(""); cfg.Gameplay.Lives != 9 {
		t.Errorf("lives = %d, expected the user config's 9", cfg.Gameplay.Lives)
	}

	// A broken user config is skipped.
	if err := os.WriteFile(filepath.Join(userDir, pinballFile), []byte("gameplay: [\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if cfg, _ := LoadPinball(""); cfg.Gameplay.Lives != 4 {
		t.Errorf("lives = %d, expected the local config's 4", cfg.Gameplay.Lives)
	}
}
