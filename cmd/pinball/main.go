// pinball is a terminal pinball table with a deterministic physics core.
//
// Usage:
//
//	pinball list              - List available tables
//	pinball play [table]      - Play a table (default: pinball)
//	pinball menu              - Start menu to pick tables interactively
//	pinball serve             - Start SSH server for remote play
//	pinball spectate          - Run the autopilot and stream it over HTTP/WebSocket
//	pinball scores <table>    - Show high scores for a table
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible play
//	--db <path>           - Set database path (default: ~/.pinball/scores.db)
//	--config <path>       - Load a custom pinball YAML config
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//
// Defaults for --db and --config can also come from PINBALL_DB and
// PINBALL_CONFIG, read from the environment or a local .env file.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import tables to register them
	_ "github.com/vovakirdan/tui-pinball/internal/games/pinball"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pinball",
	Short: "TUI Pinball - a pinball table in your terminal",
	Long: `TUI Pinball simulates a 2D pinball table at a fixed 120 Hz tick rate
and draws it in your terminal.

Available commands:
  list      - Show all available tables
  play      - Play a table directly
  menu      - Interactive table picker menu
  serve     - Start SSH server for remote play
  spectate  - Stream an autopilot game over HTTP and WebSocket
  scores    - View high scores

Examples:
  pinball play
  pinball play pinball_practice --difficulty easy
  pinball menu
  pinball serve --ssh :2222
  pinball spectate --addr :8089
  pinball scores pinball`,
}

// envOr returns the environment value for key, or def when unset.
func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func init() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envOr("PINBALL_DB", "~/.pinball/scores.db"), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", envOr("PINBALL_CONFIG", ""), "Path to custom pinball config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(spectateCmd)
	rootCmd.AddCommand(scoresCmd)
}
