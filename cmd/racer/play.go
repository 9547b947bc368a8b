package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/games/racer"
	"github.com/vovakirdan/tui-racer/internal/platform/tui"
	"github.com/vovakirdan/tui-racer/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing Lane Racer.

Controls:
  Left/A/H    - Move one lane left
  Right/D/L   - Move one lane right
  P           - Pause
  Ctrl+S      - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C    - Quit
  Any key     - Start or restart from the title and game over screens

Examples:
  racer play
  racer play --seed 42 --fps 30
  racer play --config ./my-racer.yaml
  racer play --score-file ~/.racer_high_score`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog := newLogger(flagLogPath, flagDebug)

	cfg, err := config.LoadRacer(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, closeStore := openScoreStore(logger)

	game, err := racer.New(cfg, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		closeStore()
		closeLog()
		os.Exit(1)
	}

	logger.Info("starting", "fps", rt.TickRate, "seed", rt.Seed, "size", fmt.Sprintf("%dx%d", width, height))
	runErr := tui.Run(game, rt, logger)

	// Close store before potential exit
	closeStore()

	if runErr != nil {
		logger.Error("game stopped", "error", runErr)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	closeLog()
}

// openScoreStore picks the text file store when --score-file is set and the
// database otherwise. Without a usable store the best score lives in memory.
func openScoreStore(logger *log.Logger) (racer.ScoreStore, func()) {
	noop := func() {}

	if flagScoreFile != "" {
		fs, err := storage.NewFileStore(flagScoreFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not use score file: %v\n", err)
			return nil, noop
		}
		logger.Debug("using score file", "path", fs.Path())
		return fs, noop
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "error", err)
		return nil, noop
	}
	return store.ForGame(racer.GameID), func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing scores database", "error", err)
		}
	}
}
