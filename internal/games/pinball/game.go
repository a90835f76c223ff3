// Package pinball is the playable table: it wires configuration, table
// construction and the simulation together behind the registry.Game
// interface, and rasterizes the playfield onto a core.Screen.
package pinball

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-pinball/internal/config"
	"github.com/vovakirdan/tui-pinball/internal/core"
	"github.com/vovakirdan/tui-pinball/internal/registry"
	"github.com/vovakirdan/tui-pinball/internal/sim"
	"github.com/vovakirdan/tui-pinball/internal/table"
)

// Minimum screen size for a readable table.
const (
	minScreenW = 30
	minScreenH = 16
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game is a pinball table in play.
type Game struct {
	practice bool
	preset   *config.DifficultyPreset // overrides the package-level preset

	runtime    core.RuntimeConfig
	cfg        config.PinballConfig
	table      *sim.Table
	sim        *sim.State
	difficulty *config.DifficultyManager

	baseGravity float64
	baseBumper  float64

	paused         bool
	screenTooSmall bool
}

// New creates a regular game.
func New() *Game {
	return &Game{}
}

// NewPractice creates a game that never loses a ball.
func NewPractice() *Game {
	return &Game{practice: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.practice {
		return "pinball_practice"
	}
	return "pinball"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.practice {
		return "Pinball (Practice)"
	}
	return "Pinball"
}

// Reset loads configuration, builds the table and starts a new game.
// Broken configuration falls back to the built-in defaults.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPinball(configPath)
	if err != nil {
		cfg = config.DefaultPinballConfig()
	}
	preset := difficultyPreset
	if g.preset != nil {
		preset = *g.preset
	}
	if preset != "" {
		config.ApplyPinballPreset(&cfg, preset)
	}
	g.cfg = cfg

	tbl := table.Build(cfg.Table, table.FlipperSpec(cfg.Flipper))
	if err := table.Validate(tbl); err != nil {
		tbl = table.Default()
	}
	g.table = tbl

	params := paramsFrom(cfg, g.practice)
	g.baseGravity = params.Gravity
	g.baseBumper = params.Bounce.Bumper
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.sim = sim.New(tbl, params, rand.New(rand.NewSource(runtime.Seed)))
	g.paused = false
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
}

// Step advances one platform frame of 1/TickRate seconds.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return g.Advance(time.Second/time.Duration(rate), in)
}

// Advance runs as many fixed simulation ticks as elapsed allows. Flipper and
// plunger actions are treated as held for the whole frame.
func (g *Game) Advance(elapsed time.Duration, in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.sim.Score.GameOver {
		g.paused = !g.paused
	}
	if g.paused || g.sim.Score.GameOver || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	g.applyDifficulty()

	n := g.sim.Advance(elapsed, sim.Input{
		Left:    in.Has(core.ActionFlipLeft),
		Right:   in.Has(core.ActionFlipRight),
		Plunger: in.Has(core.ActionPlunger),
	})
	return core.StepResult{State: g.State(), Ticks: n}
}

// applyDifficulty scales gravity and bumper kick with progress.
func (g *Game) applyDifficulty() {
	score, ticks := g.sim.Score.Score, g.sim.Ticks()
	g.sim.SetGravity(g.difficulty.Gravity(g.baseGravity, score, ticks))
	g.sim.Params.Bounce.Bumper = g.difficulty.BumperBounce(g.baseBumper, score, ticks)
}

func (g *Game) restart() {
	g.sim.SetGravity(g.baseGravity)
	g.sim.Params.Bounce.Bumper = g.baseBumper
	g.sim.Reset()
	g.paused = false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score.Score,
		Lives:    g.sim.Score.Lives,
		GameOver: g.sim.Score.GameOver,
		Paused:   g.paused,
	}
}

// Snapshot returns the render-facing simulation state.
func (g *Game) Snapshot() sim.Snapshot {
	return g.sim.Snapshot()
}

// SetDifficulty overrides the difficulty preset for this game only. It takes
// effect on the next Reset.
func (g *Game) SetDifficulty(preset config.DifficultyPreset) {
	g.preset = &preset
}

// Resize adapts to a new screen size without restarting the game.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.screenTooSmall = w < minScreenW || h < minScreenH
}

// Progress reports how many balls have drained and how many ticks have run
// since the last reset.
func (g *Game) Progress() (drained int, ticks uint64) {
	return g.sim.Score.Drained, g.sim.Ticks()
}

// Sim exposes the underlying simulation state.
func (g *Game) Sim() *sim.State {
	return g.sim
}

// Table returns the playfield geometry.
func (g *Game) Table() *sim.Table {
	return g.table
}

func init() {
	registry.Register("pinball", func() registry.Game {
		return New()
	})
	registry.Register("pinball_practice", func() registry.Game {
		return NewPractice()
	})
}
