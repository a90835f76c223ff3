package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pinball/internal/core"
	"github.com/vovakirdan/tui-pinball/internal/games/pinball"
	"github.com/vovakirdan/tui-pinball/internal/platform/tui"
	"github.com/vovakirdan/tui-pinball/internal/registry"
	"github.com/vovakirdan/tui-pinball/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [table]",
	Short: "Play a table",
	Long: `Start playing the specified table (default: pinball).

Controls:
  Z/A/Left        - Left flipper
  //M/D/Right     - Right flipper
  Space/Down/S    - Plunger
  P/Esc           - Pause
  R               - Restart
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Five balls, gravity and bumpers ramp up slowly
  normal - Three balls, starts at 30% difficulty
  hard   - Two balls, starts at 70% difficulty
  fixed  - No progression, stays at the config's initial level

Examples:
  pinball play
  pinball play pinball_practice
  pinball play --difficulty hard
  pinball play --config ./my-table.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "pinball"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown table %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pinball list' to see available tables.")
		os.Exit(1)
	}

	cfg := runtimeConfig()

	// Config path and difficulty must be set before the game is created
	pinball.SetConfigPath(flagConfig)
	pinball.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating table: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the table still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running table: %v\n", runErr)
		os.Exit(1)
	}
}
