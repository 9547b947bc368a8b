// Package racer implements a lane-based driving game.
// The player switches between lanes to dodge cars that scroll down the road;
// every car that leaves the screen scores a point, and traffic thickens as
// the score grows.
package racer

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
)

const (
	GameID    = "racer"      // Key the best score is stored under
	GameTitle = "Lane Racer" // Display name
)

// Game implements the lane racer state machine and simulation.
type Game struct {
	cfg        config.RacerConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	spawner    *Spawner
	marks      *LaneMarks
	session    SessionState
	scores     *scoreKeeper
	logger     *log.Logger
	quit       bool
}

// New creates a game in the Title phase and loads the best score from store.
// store may be nil; logger may be nil to discard logs.
func New(cfg config.RacerConfig, store ScoreStore, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.PaletteColors()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:        cfg,
		runtime:    core.DefaultConfig(),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		spawner:    NewSpawner(cfg, palette, rand.New(rand.NewSource(1))),
		marks:      NewLaneMarks(cfg),
		logger:     logger,
	}
	g.scores = newScoreKeeper(store, logger)
	g.session = SessionState{
		Phase:      core.PhaseTitle,
		Multiplier: 1.0,
		Obstacles:  make([]Obstacle, 0, 16),
		Player:     NewPlayer(cfg),
	}
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return GameTitle
}

// Reset applies runtime settings and returns to the Title phase.
// The best score is kept; it is only loaded once, in New.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.spawner.Reseed(runtime.Seed)

	g.session.reset(g.cfg.CenterLane())
	g.session.Phase = core.PhaseTitle
	g.quit = false
}

// Step advances the game by one tick, consuming the tick's input in order.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.quit {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionQuit) {
		g.Shutdown()
		return core.StepResult{State: g.State()}
	}

	switch g.session.Phase {
	case core.PhaseTitle, core.PhaseGameOver:
		// Any key starts a new session; direction is not applied to it.
		if !in.Empty() {
			g.startSession()
		}
	case core.PhasePlaying:
		g.stepPlaying(in)
	}

	return core.StepResult{State: g.State()}
}

// startSession handles Title->Playing and GameOver->Playing.
func (g *Game) startSession() {
	g.session.reset(g.cfg.CenterLane())
	g.logger.Debug("session started", "high", g.scores.High())
}

// stepPlaying runs one Playing tick.
func (g *Game) stepPlaying(in core.InputFrame) {
	s := &g.session

	for _, a := range in.Actions {
		switch a {
		case core.ActionPause:
			s.Paused = !s.Paused
		case core.ActionLeft:
			if !s.Paused {
				s.Player.MoveLeft()
			}
		case core.ActionRight:
			if !s.Paused {
				s.Player.MoveRight()
			}
		}
	}

	if s.Paused {
		return
	}
	s.Ticks++

	// 1. Lateral movement toward the target lane
	s.Player.Update()

	// 2. Spawning
	s.SpawnTimer++
	if s.SpawnTimer > g.spawnInterval() {
		s.Obstacles = append(s.Obstacles, g.spawner.Spawn())
		s.SpawnTimer = 0
	}

	// 3. Advance and cull obstacles
	g.advanceObstacles()

	// 4. Cosmetic lane marks
	g.marks.Advance(s.Multiplier)

	// 5. Collision
	if g.collides() {
		g.endSession()
	}
}

// spawnInterval returns the number of ticks between spawns at the current
// multiplier, rounded to the nearest tick.
func (g *Game) spawnInterval() int {
	return int(math.Round(float64(g.runtime.TickRate) / g.session.Multiplier))
}

// advanceObstacles moves every obstacle, removes those that left the
// screen and scores one point for each.
func (g *Game) advanceObstacles() {
	s := &g.session
	height := g.cfg.World.Height

	kept := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		o.Advance()
		if o.OffScreen(height) {
			s.Score++
			continue
		}
		kept = append(kept, o)
	}
	s.Obstacles = kept

	// Derived from score, so several obstacles leaving in one tick can
	// only cross each threshold once.
	if m := g.difficulty.Multiplier(s.Score); m != s.Multiplier {
		g.logger.Debug("speed up", "score", s.Score, "multiplier", m)
		s.Multiplier = m
	}
}

// collides reports whether the player overlaps any obstacle.
func (g *Game) collides() bool {
	pr := g.session.Player.Rect()
	for i := range g.session.Obstacles {
		if pr.Intersects(g.session.Obstacles[i].Rect()) {
			return true
		}
	}
	return false
}

// endSession handles Playing->GameOver.
func (g *Game) endSession() {
	g.session.Phase = core.PhaseGameOver
	g.session.Paused = false
	newBest := g.scores.Submit(g.session.Score)
	g.logger.Info("game over",
		"score", g.session.Score,
		"high", g.scores.High(),
		"new_best", newBest,
		"ticks", g.session.Ticks,
	)
}

// Shutdown ends the game. A running session's score is saved if it beats
// the best. Safe to call more than once.
func (g *Game) Shutdown() {
	if g.quit {
		return
	}
	g.quit = true
	if g.session.Phase == core.PhasePlaying {
		g.scores.Submit(g.session.Score)
	}
	g.logger.Debug("quit", "phase", g.session.Phase, "score", g.session.Score)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:     g.session.Phase,
		Score:     g.session.Score,
		HighScore: g.scores.High(),
		Paused:    g.session.Paused,
		Quit:      g.quit,
	}
}

// Session returns a copy of the session for inspection.
func (g *Game) Session() SessionState {
	s := g.session
	s.Obstacles = append([]Obstacle(nil), g.session.Obstacles...)
	return s
}

// Frame builds the draw list for the current phase.
func (g *Game) Frame() core.Frame {
	w, h := g.cfg.World.Width, g.cfg.World.Height
	f := core.Frame{Width: w, Height: h}

	switch g.session.Phase {
	case core.PhaseTitle:
		f.AddText(0, h/3, "CAR RACING", core.ColorWhite, core.AlignCenter)
		f.AddText(0, h/2-50, fmt.Sprintf("High Score: %d", g.scores.High()), core.ColorYellow, core.AlignCenter)
		f.AddText(0, h/2, "Press any key to start", core.ColorWhite, core.AlignCenter)
		f.AddText(0, h/2+50, "Use LEFT and RIGHT arrow keys to move", core.ColorWhite, core.AlignCenter)

	case core.PhaseGameOver:
		f.AddText(0, h/3, "GAME OVER", core.ColorRed, core.AlignCenter)
		f.AddText(0, h/2, fmt.Sprintf("Score: %d", g.session.Score), core.ColorWhite, core.AlignCenter)
		f.AddText(0, h/2+50, fmt.Sprintf("High Score: %d", g.scores.High()), core.ColorYellow, core.AlignCenter)
		f.AddText(0, h/2+100, "Press any key to restart", core.ColorWhite, core.AlignCenter)

	case core.PhasePlaying:
		g.addPlayfield(&f)
	}

	return f
}

// addPlayfield draws road, lane marks, cars and the HUD.
func (g *Game) addPlayfield(f *core.Frame) {
	s := &g.session

	f.Add(core.DrawRoad, core.NewRect(g.cfg.RoadX(), 0, g.cfg.Road.Width, g.cfg.World.Height), core.ColorGray)
	for _, m := range g.marks.Marks() {
		f.Add(core.DrawLaneMark, m.Rect(), core.ColorWhite)
	}
	for i := range s.Obstacles {
		f.Add(core.DrawObstacle, s.Obstacles[i].Rect(), s.Obstacles[i].Color)
	}
	f.Add(core.DrawPlayer, s.Player.Rect(), core.ColorRed)

	f.AddText(10, 10, fmt.Sprintf("Score: %d", s.Score), core.ColorWhite, core.AlignLeft)
	f.AddText(10, 50, fmt.Sprintf("High Score: %d", g.scores.High()), core.ColorYellow, core.AlignLeft)
	if s.Paused {
		f.AddText(0, g.cfg.World.Height/2, "PAUSED - press P to resume", core.ColorBrightYellow, core.AlignCenter)
	}
}
