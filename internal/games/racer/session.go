package racer

import "github.com/vovakirdan/tui-racer/internal/core"

// SessionState is everything that belongs to one run of the game.
// The Game owns it exclusively and replaces it wholesale on reset.
type SessionState struct {
	Phase      core.Phase
	Score      int     // Obstacles that left the screen without a collision
	Multiplier float64 // Derived from Score by the difficulty model
	Obstacles  []Obstacle
	SpawnTimer int // Ticks since the last spawn
	Player     Player
	Paused     bool
	Ticks      int // Simulated ticks in this session
}

// reset starts a fresh session with the player back in the center lane.
// The obstacle slice keeps its capacity.
func (s *SessionState) reset(centerLane int) {
	s.Phase = core.PhasePlaying
	s.Score = 0
	s.Multiplier = 1.0
	s.Obstacles = s.Obstacles[:0]
	s.SpawnTimer = 0
	s.Paused = false
	s.Ticks = 0
	s.Player.Place(centerLane)
}
