package racer

import (
	"math/rand"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
)

// Obstacle is a vehicle scrolling down the road.
// Lane, X and Speed are fixed at spawn; only Y changes.
type Obstacle struct {
	Lane  int
	X     int
	Y     int
	W, H  int
	Speed int
	Color core.Color
}

// Advance moves the obstacle down by its own speed.
func (o *Obstacle) Advance() {
	o.Y += o.Speed
}

// OffScreen reports whether the obstacle has passed below the visible area.
func (o *Obstacle) OffScreen(height int) bool {
	return o.Y > height
}

// Rect returns the obstacle's collision rectangle.
func (o *Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Spawner creates obstacles just above the visible area.
// Lane, speed and color are each drawn uniformly from rng.
// Obstacles may share a lane; nothing keeps them apart.
type Spawner struct {
	rng     *rand.Rand
	cfg     config.ObstacleConfig
	lanes   int
	laneX   []int
	palette []core.Color
}

// NewSpawner creates a spawner drawing from rng. The config must be valid.
func NewSpawner(cfg config.RacerConfig, palette []core.Color, rng *rand.Rand) *Spawner {
	laneX := make([]int, cfg.Road.Lanes)
	for lane := range laneX {
		laneX[lane] = cfg.LaneX(lane, cfg.Obstacles.Width)
	}

	return &Spawner{
		rng:     rng,
		cfg:     cfg.Obstacles,
		lanes:   cfg.Road.Lanes,
		laneX:   laneX,
		palette: palette,
	}
}

// Reseed replaces the random source, used when a new seed is supplied.
func (s *Spawner) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Spawn returns one new obstacle positioned with its bottom edge at y = 0.
func (s *Spawner) Spawn() Obstacle {
	lane := s.rng.Intn(s.lanes)
	mustLane(lane, s.lanes)

	speed := s.cfg.MinSpeed
	if s.cfg.MaxSpeed > s.cfg.MinSpeed {
		speed = s.cfg.MinSpeed + s.rng.Intn(s.cfg.MaxSpeed-s.cfg.MinSpeed+1)
	}

	return Obstacle{
		Lane:  lane,
		X:     s.laneX[lane],
		Y:     -s.cfg.Height,
		W:     s.cfg.Width,
		H:     s.cfg.Height,
		Speed: speed,
		Color: s.palette[s.rng.Intn(len(s.palette))],
	}
}
