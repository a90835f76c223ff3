package pinball

import (
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-pinball/internal/config"
	"github.com/vovakirdan/tui-pinball/internal/core"
	"github.com/vovakirdan/tui-pinball/internal/registry"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  40,
		TickRate: 60,
		Seed:     12345,
	}
}

// scriptedInput holds the plunger for the first second, then alternates
// the flippers.
func scriptedInput(i int) core.InputFrame {
	in := core.NewInputFrame()
	switch {
	case i < 60:
		in.Set(core.ActionPlunger)
	case i%40 < 10:
		in.Set(core.ActionFlipLeft)
	case i%40 >= 20 && i%40 < 30:
		in.Set(core.ActionFlipRight)
	}
	return in
}

// dropBall puts the ball between the flippers, heading for the drain.
func dropBall(g *Game) {
	g.sim.Ball.Pos = mgl64.Vec2{0, 1}
	g.sim.Ball.Vel = mgl64.Vec2{0, -30}
}

func TestGameDeterminism(t *testing.T) {
	run := func() *Game {
		g := New()
		g.Reset(testConfig())
		for i := range 900 {
			if g.Step(scriptedInput(i)).State.GameOver {
				break
			}
		}
		return g
	}

	g1, g2 := run(), run()
	snap1, snap2 := g1.Snapshot(), g2.Snapshot()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	for i := range 300 {
		g.Step(scriptedInput(i))
	}

	g.Reset(testConfig())
	snap := g.Snapshot()

	if snap.Tick != 0 {
		t.Errorf("Tick = %d, expected 0", snap.Tick)
	}
	if snap.Score != 0 {
		t.Errorf("Score = %d, expected 0", snap.Score)
	}
	if snap.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", snap.Lives)
	}
	if snap.Ball != g.Table().LaunchPos {
		t.Errorf("Ball = %v, expected launch position %v", snap.Ball, g.Table().LaunchPos)
	}
}

func TestStepRunsFixedTicks(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	total := 0
	for range 60 {
		total += g.Step(core.NewInputFrame()).Ticks
	}
	// 60 frames at 60 Hz is one second of simulation at 120 Hz.
	if total != 120 {
		t.Errorf("ticks after one second = %d, expected 120", total)
	}
}

func TestAdvanceLongFrameIsBounded(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	res := g.Advance(5*time.Second, core.NewInputFrame())
	if res.Ticks != 12 {
		t.Errorf("Ticks = %d, expected 12", res.Ticks)
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("expected game to be paused")
	}

	before := g.Snapshot().Tick
	for range 10 {
		g.Step(core.NewInputFrame())
	}
	if after := g.Snapshot().Tick; after != before {
		t.Errorf("Tick = %d while paused, expected %d", after, before)
	}

	if g.Step(pause).State.Paused {
		t.Error("expected second pause to resume")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	for range 3 {
		dropBall(g)
		for range 60 {
			g.Step(core.NewInputFrame())
		}
	}

	state := g.State()
	if !state.GameOver {
		t.Fatalf("GameOver = false after draining every ball, lives=%d", state.Lives)
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	state = g.Step(restart).State
	if state.GameOver {
		t.Error("expected restart to clear game over")
	}
	if state.Lives != 3 {
		t.Errorf("Lives = %d after restart, expected 3", state.Lives)
	}
}

func TestPracticeNeverEnds(t *testing.T) {
	g := NewPractice()
	g.Reset(testConfig())

	for range 5 {
		dropBall(g)
		for range 60 {
			g.Step(core.NewInputFrame())
		}
	}

	if g.State().GameOver {
		t.Error("practice game should never end")
	}
	if g.sim.Score.Drained == 0 {
		t.Error("expected drained balls to be counted")
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 40)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "Score: 0") {
		t.Error("expected HUD to show the score")
	}
	if !strings.ContainsRune(out, BallGlyph) {
		t.Error("expected the ball to be drawn")
	}
	if !strings.ContainsRune(out, FlipperGlyph) {
		t.Error("expected flippers to be drawn")
	}
	if !strings.ContainsRune(out, BumperGlyph) {
		t.Error("expected bumpers to be drawn")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	cfg := testConfig()
	cfg.ScreenW, cfg.ScreenH = 20, 10
	g.Reset(cfg)

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected too-small message")
	}
}

func TestLineGlyph(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	vp := g.viewport(core.NewScreen(80, 40))

	tests := []struct {
		name string
		dx   float64
		dy   float64
		want rune
	}{
		{"horizontal", 1, 0, '─'},
		{"vertical", 0, 1, '│'},
		{"rising", 1, 2, '╱'},
		{"falling", 1, -2, '╲'},
		{"reversed horizontal", -1, 0, '─'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := mgl64.Vec2{tt.dx, tt.dy}
			if got := lineGlyph(vp, dir); got != tt.want {
				t.Errorf("lineGlyph(%v) = %q, expected %q", dir, got, tt.want)
			}
		})
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"pinball", "pinball_practice"} {
		if !registry.Exists(id) {
			t.Errorf("%s not registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%s) error: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %s, expected %s", g.ID(), id)
		}
	}
}

func TestSetDifficultyPreset(t *testing.T) {
	defer SetDifficultyPreset("")

	SetDifficultyPreset("easy")
	g := New()
	g.Reset(testConfig())
	if g.State().Lives != 5 {
		t.Errorf("easy Lives = %d, expected 5", g.State().Lives)
	}

	SetDifficultyPreset("hard")
	g.Reset(testConfig())
	if g.State().Lives != 2 {
		t.Errorf("hard Lives = %d, expected 2", g.State().Lives)
	}
}

func TestResizeKeepsGame(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	for i := range 30 {
		g.Step(scriptedInput(i))
	}
	before := g.Snapshot().Tick

	g.Resize(10, 5)
	if !g.screenTooSmall {
		t.Error("expected screenTooSmall after shrinking")
	}
	g.Resize(100, 50)
	if g.screenTooSmall {
		t.Error("expected screenTooSmall cleared after growing")
	}
	if _, ticks := g.Progress(); ticks != before {
		t.Errorf("ticks = %d after resize, expected %d", ticks, before)
	}
}

func TestSetDifficultyOverridesPackagePreset(t *testing.T) {
	defer SetDifficultyPreset("")
	SetDifficultyPreset("hard")

	g := New()
	g.SetDifficulty(config.DifficultyEasy)
	g.Reset(testConfig())
	if g.State().Lives != 5 {
		t.Errorf("Lives = %d, expected 5 from the per-game preset", g.State().Lives)
	}
}
