package config

// DifficultyManager maps cumulative score to a speed multiplier.
// The multiplier scales the spawn rate and lane mark scroll, never the speed
// of an obstacle that is already on the road.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.ScoreStep > 0
}

// Level returns how many score intervals have been completed.
func (d *DifficultyManager) Level(score int) int {
	if !d.IsEnabled() || score <= 0 {
		return 0
	}
	return score / d.cfg.ScoreStep
}

// Multiplier returns 1.0 + MultiplierStep * floor(score / ScoreStep).
// With the defaults: 0-9 -> 1.0, 10-19 -> 1.2, 20-29 -> 1.4.
func (d *DifficultyManager) Multiplier(score int) float64 {
	return 1.0 + d.cfg.MultiplierStep*float64(d.Level(score))
}
