package config

import "testing"

func TestMultiplierMatchesFormula(t *testing.T) {
	d := NewDifficultyManager(DefaultRacerConfig().Difficulty)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 1.0},
		{9, 1.0},
		{10, 1.2},
		{19, 1.2},
		{20, 1.4},
		{29, 1.4},
		{100, 3.0},
	}

	for _, tc := range tests {
		got := d.Multiplier(tc.score)
		if diff := got - tc.expected; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Multiplier(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestMultiplierNonDecreasing(t *testing.T) {
	d := NewDifficultyManager(DefaultRacerConfig().Difficulty)

	prev := d.Multiplier(0)
	for score := 1; score <= 500; score++ {
		cur := d.Multiplier(score)
		if cur < prev {
			t.Fatalf("Multiplier(%d) = %v dropped below Multiplier(%d) = %v", score, cur, score-1, prev)
		}
		prev = cur
	}
}

func TestMultiplierDisabled(t *testing.T) {
	cfg := DefaultRacerConfig().Difficulty
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("IsEnabled() should follow difficulty.enabled")
	}
	if got := d.Multiplier(250); got != 1.0 {
		t.Errorf("disabled Multiplier(250) = %v, expected 1.0", got)
	}
}

func TestLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: true, ScoreStep: 5, MultiplierStep: 0.5})

	if d.Level(4) != 0 || d.Level(5) != 1 || d.Level(-3) != 0 {
		t.Errorf("Level() with step 5: got %d, %d, %d", d.Level(4), d.Level(5), d.Level(-3))
	}
	if got := d.Multiplier(12); got != 2.0 {
		t.Errorf("Multiplier(12) = %v, expected 2.0", got)
	}
}
