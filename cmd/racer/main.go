// racer is a lane-based driving game for the terminal.
//
// Usage:
//
//	racer                  - Play (same as "racer play")
//	racer play             - Play the game
//	racer scores           - Show the best score
//	racer scores --reset   - Forget the best score
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible traffic
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--score-file <path>   - Keep the best score in a plain text file instead
//	--config <path>       - Use a custom game config YAML
//	--log <path>          - Write logs to this file (default: ~/.arcade/racer.log)
//	--debug               - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagScoreFile string
	flagConfig    string
	flagLogPath   string
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "racer",
	Short: "Lane Racer - dodge traffic in your terminal",
	Long: `Lane Racer is a terminal driving game. Switch lanes to dodge the cars
coming down the road; every car you pass scores a point and traffic gets
denser as your score grows.

Available commands:
  play     - Play the game (default)
  scores   - Show or reset the best score

Examples:
  racer
  racer play --seed 42
  racer play --config ./my-racer.yaml
  racer scores
  racer scores --reset`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagScoreFile, "score-file", "", "Keep the best score in this text file instead of the database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.arcade/racer.log", "Log file path (empty disables logging)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}
