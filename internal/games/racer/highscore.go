package racer

import (
	"github.com/charmbracelet/log"
)

// ScoreStore persists a single non-negative integer.
type ScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// scoreKeeper holds the process-wide best score and flushes it to a store.
// Store failures are logged and never interrupt play.
type scoreKeeper struct {
	store  ScoreStore
	high   int
	logger *log.Logger
}

// newScoreKeeper loads the best score once. A nil store keeps scores in
// memory only; a failing load starts from 0.
func newScoreKeeper(store ScoreStore, logger *log.Logger) *scoreKeeper {
	k := &scoreKeeper{store: store, logger: logger}
	if store == nil {
		return k
	}

	high, err := store.Load()
	if err != nil {
		logger.Warn("could not load high score, starting from 0", "error", err)
		return k
	}
	if high < 0 {
		logger.Warn("ignoring negative stored high score", "score", high)
		return k
	}
	k.high = high
	logger.Debug("high score loaded", "score", high)
	return k
}

// High returns the current best score.
func (k *scoreKeeper) High() int {
	return k.high
}

// Submit records score if it beats the best and persists the new value.
// Returns true when the best score changed.
func (k *scoreKeeper) Submit(score int) bool {
	if score <= k.high {
		return false
	}
	k.high = score

	if k.store == nil {
		return true
	}
	if err := k.store.Save(score); err != nil {
		k.logger.Error("could not save high score", "score", score, "error", err)
		return true
	}
	k.logger.Info("new high score saved", "score", score)
	return true
}
