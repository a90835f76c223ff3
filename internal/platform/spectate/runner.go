package spectate

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pinball/internal/core"
	"github.com/vovakirdan/tui-pinball/internal/registry"
	"github.com/vovakirdan/tui-pinball/internal/sim"
	"github.com/vovakirdan/tui-pinball/internal/storage"
)

// Spectatable is a game the runner can drive headless and expose to spectators.
type Spectatable interface {
	registry.Game
	registry.FrameAdvancer
	Snapshot() sim.Snapshot
	Table() *sim.Table
	Progress() (drained int, ticks uint64)
}

// RunnerConfig configures the headless game loop.
type RunnerConfig struct {
	GameID       string        // registry ID of the table to run
	FPS          int           // frames per second driven by the runner
	Seed         int64         // 0 picks a time-based seed per game
	RestartDelay time.Duration // pause on the game-over screen before a new game
}

// DefaultRunnerConfig returns stock settings.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		GameID:       "pinball",
		FPS:          30,
		RestartDelay: 3 * time.Second,
	}
}

// Runner plays a table with the autopilot and publishes every frame to the
// hub. All access to the game goes through mu.
type Runner struct {
	mu     sync.Mutex
	cfg    RunnerConfig
	game   Spectatable
	pilot  *Autopilot
	hub    *Hub
	store  *storage.Store
	logger *log.Logger

	overFor time.Duration // time spent on the game-over screen
	games   int
}

// NewRunner creates the table and starts its first game. store may be nil.
func NewRunner(cfg RunnerConfig, hub *Hub, store *storage.Store, logger *log.Logger) (*Runner, error) {
	g, err := registry.Create(cfg.GameID)
	if err != nil {
		return nil, fmt.Errorf("spectate: %w", err)
	}
	t, ok := g.(Spectatable)
	if !ok {
		return nil, fmt.Errorf("spectate: game %q cannot be spectated", cfg.GameID)
	}
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultRunnerConfig().FPS
	}

	r := &Runner{
		cfg:    cfg,
		game:   t,
		pilot:  NewAutopilot(),
		hub:    hub,
		store:  store,
		logger: logger,
	}
	r.reset()
	return r, nil
}

func (r *Runner) reset() {
	seed := r.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	} else {
		seed += int64(r.games)
	}
	r.game.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  40,
		TickRate: r.cfg.FPS,
		Seed:     seed,
	})
	r.overFor = 0
	r.games++
}

// Step advances the game by elapsed and broadcasts the new snapshot.
func (r *Runner) Step(elapsed time.Duration) core.StepResult {
	r.mu.Lock()
	res := r.step(elapsed)
	snap := r.game.Snapshot()
	r.mu.Unlock()

	if r.hub != nil {
		data, err := json.Marshal(snap)
		if err != nil {
			r.logger.Error("cannot encode snapshot", "error", err)
			return res
		}
		r.hub.Broadcast(data)
	}
	return res
}

func (r *Runner) step(elapsed time.Duration) core.StepResult {
	if r.game.State().GameOver {
		r.overFor += elapsed
		if r.overFor >= r.cfg.RestartDelay {
			r.reset()
		}
		return core.StepResult{State: r.game.State()}
	}

	in := r.pilot.Input(r.game.Snapshot(), r.game.Table())
	res := r.game.Advance(elapsed, in)
	if res.State.GameOver {
		r.finish(res.State)
	}
	return res
}

// finish records a completed autopilot game under "<id>_autopilot" so it
// never mixes with human scores.
func (r *Runner) finish(state core.GameState) {
	drained, ticks := r.game.Progress()
	r.logger.Info("autopilot game over", "game", r.game.ID(), "score", state.Score, "drained", drained)
	if r.store == nil {
		return
	}
	_, err := r.store.SaveRun(storage.Run{
		GameID:  r.game.ID() + "_autopilot",
		Score:   state.Score,
		Drained: drained,
		Ticks:   ticks,
	})
	if err != nil {
		r.logger.Warn("could not save autopilot score", "error", err)
	}
}

// Run drives the game at the configured frame rate until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(r.cfg.FPS))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			r.Step(now.Sub(last))
			last = now
		}
	}
}

// Snapshot returns the current snapshot.
func (r *Runner) Snapshot() sim.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.game.Snapshot()
}

// Layout returns the table geometry. It does not change during a run.
func (r *Runner) Layout() *sim.Table {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.game.Table()
}

// Frame renders the current state as plain text at the given size.
func (r *Runner) Frame(w, h int) string {
	screen := core.NewScreen(w, h)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.game.Render(screen)
	return screen.String()
}

// Games returns how many games have been started, including the current one.
func (r *Runner) Games() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.games
}

// GameID returns the registry ID of the table being played.
func (r *Runner) GameID() string {
	return r.cfg.GameID
}
