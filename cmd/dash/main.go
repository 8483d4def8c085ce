// dash is a side-scrolling reflex game for the terminal and the desktop.
//
// Usage:
//
//	dash list                - List game modes
//	dash play [mode]         - Play in the terminal
//	dash window [mode]       - Play in a desktop window
//	dash menu                - Pick a mode interactively
//	dash scores [mode]       - Show recent best runs
//	dash serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.dash/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--mute                - Disable sound
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
//
// DASH_DB, DASH_CONFIG and DASH_FPS (also read from a .env file) fill in
// flags that were not given on the command line.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dash",
	Short: "Dino Dash - jump and duck past an endless stream of obstacles",
	Long: `Dino Dash is a side-scrolling reflex game. Jump over cacti, duck under
birds, survive the danger phase and reach the score ceiling.

Available commands:
  list     - Show all game modes
  play     - Play in the terminal
  window   - Play in a desktop window
  menu     - Interactive mode picker
  scores   - View best runs
  serve    - Start SSH server for remote play

Examples:
  dash list
  dash play
  dash play endless --difficulty hard
  dash window --mute
  dash serve --ssh :2222
  dash scores classic`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnv,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dash/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadEnv reads an optional .env file and lets DASH_* variables fill in
// flags the user did not set.
func loadEnv(cmd *cobra.Command, _ []string) error {
	//nolint:errcheck // A missing .env file is normal
	godotenv.Load()

	flags := cmd.Flags()
	if v := os.Getenv("DASH_DB"); v != "" && !flags.Changed("db") {
		flagDBPath = v
	}
	if v := os.Getenv("DASH_CONFIG"); v != "" && !flags.Changed("config") {
		flagConfig = v
	}
	if v := os.Getenv("DASH_FPS"); v != "" && !flags.Changed("fps") {
		fps, err := strconv.Atoi(v)
		if err != nil || fps <= 0 {
			return fmt.Errorf("invalid DASH_FPS %q", v)
		}
		flagFPS = fps
	}
	return nil
}
