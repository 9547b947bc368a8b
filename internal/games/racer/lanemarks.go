package racer

import (
	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
)

// LaneMark is a decorative dash on a lane divider. It has no collision.
type LaneMark struct {
	X    int
	Y    float64
	W, H int
}

// Rect returns the dash geometry, rounding Y down to whole units.
func (m LaneMark) Rect() core.Rect {
	return core.NewRect(m.X, int(m.Y), m.W, m.H)
}

// LaneMarks is the fixed set of dashes on every lane divider.
// It is allocated once and only repositioned afterwards.
type LaneMarks struct {
	marks  []LaneMark
	height int
	cycle  float64 // Vertical distance after which a dash repeats
	base   float64 // Scroll per tick at multiplier 1.0
}

// NewLaneMarks lays dashes from -spacing down to the bottom of the world
// on each of the lanes-1 dividers.
func NewLaneMarks(cfg config.RacerConfig) *LaneMarks {
	lm := cfg.LaneMarks
	rows := cfg.World.Height/lm.Spacing + 2
	dividers := cfg.Road.Lanes - 1

	marks := make([]LaneMark, 0, rows*dividers)
	for i := 1; i <= dividers; i++ {
		x := cfg.RoadX() + i*cfg.LaneWidth() - lm.Width/2
		for row := 0; row < rows; row++ {
			marks = append(marks, LaneMark{
				X: x,
				Y: float64((row - 1) * lm.Spacing),
				W: lm.Width,
				H: lm.Height,
			})
		}
	}

	return &LaneMarks{
		marks:  marks,
		height: cfg.World.Height,
		cycle:  float64(rows * lm.Spacing),
		base:   lm.BaseScroll,
	}
}

// Advance scrolls every dash by base*multiplier. A dash that passes the
// bottom of the world moves up by a whole cycle instead of restarting at
// -spacing. Keeping its phase keeps the dashes evenly spaced when the scroll
// step does not divide the spacing.
func (l *LaneMarks) Advance(multiplier float64) {
	dy := l.base * multiplier
	for i := range l.marks {
		l.marks[i].Y += dy
		if l.marks[i].Y > float64(l.height) {
			l.marks[i].Y -= l.cycle
		}
	}
}

// Marks returns the current dashes.
func (l *LaneMarks) Marks() []LaneMark {
	return l.marks
}
