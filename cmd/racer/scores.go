package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/games/racer"
	"github.com/vovakirdan/tui-racer/internal/platform/tui"
	"github.com/vovakirdan/tui-racer/internal/storage"
)

var flagReset bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score",
	Long: `Display the stored best score.

Reads the scores database, or the text file given with --score-file.

Examples:
  racer scores
  racer scores --score-file ~/.racer_high_score
  racer scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Forget the stored best score")
}

func runScores(cmd *cobra.Command, args []string) {
	var (
		entries []storage.Entry
		err     error
	)
	if flagScoreFile != "" {
		entries, err = fileScores(flagScoreFile, flagReset)
	} else {
		entries, err = databaseScores(flagDBPath, flagReset)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagReset {
		fmt.Println("Best score cleared.")
		return
	}
	fmt.Println(tui.RenderScoreTable(racer.GameTitle, entries))
}

func fileScores(path string, reset bool) ([]storage.Entry, error) {
	fs, err := storage.NewFileStore(path)
	if err != nil {
		return nil, err
	}
	if reset {
		return nil, fs.Clear()
	}

	score, err := fs.Load()
	if err != nil {
		return nil, err
	}
	if score == 0 {
		return nil, nil
	}
	entry := storage.Entry{GameID: racer.GameID, Score: score}
	if info, statErr := os.Stat(fs.Path()); statErr == nil {
		entry.UpdatedAt = info.ModTime()
	}
	return []storage.Entry{entry}, nil
}

func databaseScores(path string, reset bool) ([]storage.Entry, error) {
	store, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	if reset {
		return nil, store.ClearHighScore(racer.GameID)
	}

	entry, err := store.Lookup(racer.GameID)
	if err != nil || entry == nil {
		return nil, err
	}
	return []storage.Entry{*entry}, nil
}
