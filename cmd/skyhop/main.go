// skyhop is a TUI arcade platform for playing retro-style games in the terminal.
//
// Usage:
//
//	skyhop list              - List available games
//	skyhop play <game>       - Play a game
//	skyhop menu              - Start menu to pick games interactively
//	skyhop serve             - Start SSH server for remote play
//	skyhop scores <game>     - Show best runs for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.skyhop/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vkozyrev/skyhop/internal/games/jumper"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyhop",
	Short: "Sky Hopper - An endless climbing arcade in your terminal",
	Long: `Sky Hopper is a terminal-based arcade platform built around an
endless vertical platformer: bounce across procedurally generated
platforms, grab gems and power-ups, and climb as high as you can.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  skyhop list
  skyhop play jumper
  skyhop menu
  skyhop serve --ssh :2222
  skyhop scores jumper`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyhop/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
