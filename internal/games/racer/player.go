package racer

import (
	"fmt"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
)

// Player is the vehicle controlled by the user.
// Lane selects the target; X slides toward it by at most Speed per tick.
type Player struct {
	Lane  int
	X     int // Current left edge
	Y     int // Fixed top edge
	W, H  int
	Speed int // Lateral units per tick

	targets []int // Left edge for each lane
}

// NewPlayer creates a player centered in the configured start lane.
func NewPlayer(cfg config.RacerConfig) Player {
	targets := make([]int, cfg.Road.Lanes)
	for lane := range targets {
		targets[lane] = cfg.LaneX(lane, cfg.Player.Width)
	}

	p := Player{
		Y:       cfg.World.Height - cfg.Player.BottomOffset,
		W:       cfg.Player.Width,
		H:       cfg.Player.Height,
		Speed:   cfg.Player.LateralSpeed,
		targets: targets,
	}
	p.Place(cfg.CenterLane())
	return p
}

// Lanes returns the number of lanes the player can occupy.
func (p *Player) Lanes() int {
	return len(p.targets)
}

// TargetX returns the left edge the player is moving toward.
func (p *Player) TargetX() int {
	return p.targets[p.Lane]
}

// Place puts the player in lane with no pending lateral movement.
func (p *Player) Place(lane int) {
	mustLane(lane, p.Lanes())
	p.Lane = lane
	p.X = p.TargetX()
}

// MoveLeft retargets one lane to the left, if there is one.
func (p *Player) MoveLeft() {
	p.Lane = core.Clamp(p.Lane-1, 0, p.Lanes()-1)
}

// MoveRight retargets one lane to the right, if there is one.
func (p *Player) MoveRight() {
	p.Lane = core.Clamp(p.Lane+1, 0, p.Lanes()-1)
}

// Update moves X one step toward TargetX, snapping once within a step.
func (p *Player) Update() {
	target := p.TargetX()
	delta := target - p.X

	switch {
	case core.Abs(delta) <= p.Speed:
		p.X = target
	case delta > 0:
		p.X += p.Speed
	default:
		p.X -= p.Speed
	}
}

// Rect returns the player's collision rectangle.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// mustLane panics when lane is outside [0, lanes). A bad lane can only come
// from a bug in the spawner or reset logic.
func mustLane(lane, lanes int) {
	if lane < 0 || lane >= lanes {
		panic(fmt.Sprintf("racer: lane %d out of range [0, %d)", lane, lanes))
	}
}
