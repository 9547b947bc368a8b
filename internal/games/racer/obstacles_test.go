package racer

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
)

func newTestSpawner(t *testing.T, seed int64) (*Spawner, config.RacerConfig) {
	t.Helper()
	cfg := config.DefaultRacerConfig()
	palette, err := cfg.PaletteColors()
	if err != nil {
		t.Fatal(err)
	}
	return NewSpawner(cfg, palette, rand.New(rand.NewSource(seed))), cfg
}

func TestSpawnerStaysInBounds(t *testing.T) {
	s, cfg := newTestSpawner(t, 7)

	lanes := make(map[int]int)
	speeds := make(map[int]int)
	colors := make(map[core.Color]int)

	for i := 0; i < 10000; i++ {
		o := s.Spawn()
		if o.Lane < 0 || o.Lane >= cfg.Road.Lanes {
			t.Fatalf("spawn %d: lane %d out of range", i, o.Lane)
		}
		if o.Speed < cfg.Obstacles.MinSpeed || o.Speed > cfg.Obstacles.MaxSpeed {
			t.Fatalf("spawn %d: speed %d out of [%d, %d]", i, o.Speed, cfg.Obstacles.MinSpeed, cfg.Obstacles.MaxSpeed)
		}
		if o.X != cfg.LaneX(o.Lane, cfg.Obstacles.Width) {
			t.Fatalf("spawn %d: X = %d does not match lane %d", i, o.X, o.Lane)
		}
		if o.Y != -cfg.Obstacles.Height {
			t.Fatalf("spawn %d: Y = %d, expected just above the screen", i, o.Y)
		}
		lanes[o.Lane]++
		speeds[o.Speed]++
		colors[o.Color]++
	}

	if len(lanes) != cfg.Road.Lanes {
		t.Errorf("saw %d distinct lanes, expected %d", len(lanes), cfg.Road.Lanes)
	}
	if len(speeds) != cfg.Obstacles.MaxSpeed-cfg.Obstacles.MinSpeed+1 {
		t.Errorf("saw speeds %v, expected every value in range", speeds)
	}
	for _, c := range []core.Color{core.ColorBlue, core.ColorGreen, core.ColorYellow} {
		if colors[c] == 0 {
			t.Errorf("color %v never spawned", c)
		}
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	a, _ := newTestSpawner(t, 99)
	b, _ := newTestSpawner(t, 99)

	for i := 0; i < 100; i++ {
		if oa, ob := a.Spawn(), b.Spawn(); oa != ob {
			t.Fatalf("spawn %d differs with same seed: %+v vs %+v", i, oa, ob)
		}
	}

	a.Reseed(5)
	b.Reseed(5)
	if a.Spawn() != b.Spawn() {
		t.Error("Reseed with same seed should realign spawners")
	}
}

func TestSpawnerFixedSpeed(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	cfg.Obstacles.MinSpeed = 4
	cfg.Obstacles.MaxSpeed = 4
	s := NewSpawner(cfg, []core.Color{core.ColorGreen}, rand.New(rand.NewSource(1)))

	for i := 0; i < 50; i++ {
		o := s.Spawn()
		if o.Speed != 4 || o.Color != core.ColorGreen {
			t.Fatalf("spawn %d = %+v, expected speed 4 and green", i, o)
		}
	}
}

func TestObstacleAdvanceAndOffScreen(t *testing.T) {
	o := Obstacle{Y: 595, Speed: 5, W: 40, H: 60}

	o.Advance()
	if o.Y != 600 || o.OffScreen(600) {
		t.Errorf("Y = %d, OffScreen = %v; exactly at the bottom edge is still on screen", o.Y, o.OffScreen(600))
	}

	o.Advance()
	if !o.OffScreen(600) {
		t.Errorf("Y = %d should be off screen", o.Y)
	}
}
