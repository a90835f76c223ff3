package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pinball/internal/games/pinball"
	"github.com/vovakirdan/tui-pinball/internal/platform/spectate"
	"github.com/vovakirdan/tui-pinball/internal/storage"
)

var (
	flagSpectateAddr  string
	flagSpectateTable string
	flagRestartDelay  time.Duration
	flagDebug         bool
)

var spectateCmd = &cobra.Command{
	Use:   "spectate",
	Short: "Stream an autopilot game over HTTP and WebSocket",
	Long: `Run a table with a simple autopilot on the flippers and plunger, and
publish every frame to connected spectators.

Endpoints:
  GET /healthz           - Liveness and spectator count
  GET /snapshot          - Current snapshot as JSON
  GET /table             - Static table geometry as JSON
  GET /frame?w=80&h=24   - Current frame as plain text
  GET /scores/:table     - Top scores (?limit=10)
  GET /ws                - WebSocket stream of snapshots

Examples:
  pinball spectate
  pinball spectate --addr :9000 --fps 20
  pinball spectate --table pinball_practice --seed 7`,
	Run: runSpectate,
}

func init() {
	spectateCmd.Flags().StringVar(&flagSpectateAddr, "addr", envOr("PINBALL_SPECTATE_ADDR", spectate.DefaultServerConfig().Address), "HTTP listen address")
	spectateCmd.Flags().StringVar(&flagSpectateTable, "table", spectate.DefaultRunnerConfig().GameID, "Table to run")
	spectateCmd.Flags().DurationVar(&flagRestartDelay, "restart-delay", spectate.DefaultRunnerConfig().RestartDelay, "Pause on game over before the next game")
	spectateCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log every request")
}

func runSpectate(cmd *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pinball-spectate",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	pinball.SetConfigPath(flagConfig)
	pinball.SetDifficultyPreset(flagDifficulty)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	runnerCfg := spectate.DefaultRunnerConfig()
	runnerCfg.GameID = flagSpectateTable
	runnerCfg.Seed = flagSeed
	runnerCfg.RestartDelay = flagRestartDelay
	// The spectator default is lower than the terminal's
	if cmd.Flags().Changed("fps") {
		runnerCfg.FPS = flagFPS
	}

	hub := spectate.NewHub(logger)
	defer hub.Close()

	runner, err := spectate.NewRunner(runnerCfg, hub, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	serverCfg := spectate.DefaultServerConfig()
	serverCfg.Address = flagSpectateAddr
	serverCfg.Debug = flagDebug
	server := spectate.NewServer(serverCfg, runner, hub, store, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		logger.Error("spectator server failed", "error", err)
		os.Exit(1)
	}
}
