// Package config provides YAML-based game configuration loading and
// difficulty management for the racer.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// RacerConfig contains all configuration for the lane racer.
// Every length is in world units; the renderer scales them to the terminal.
type RacerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Road       RoadConfig       `yaml:"road"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	LaneMarks  LaneMarkConfig   `yaml:"lane_marks"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the visible area.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RoadConfig defines the drivable road, centered in the world.
type RoadConfig struct {
	Width int `yaml:"width"`
	Lanes int `yaml:"lanes"`
}

// PlayerConfig defines the player vehicle.
type PlayerConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	BottomOffset int `yaml:"bottom_offset"` // Distance from the top of the car to the world bottom
	LateralSpeed int `yaml:"lateral_speed"` // World units per tick toward the target lane
}

// ObstacleConfig defines obstacle vehicles.
type ObstacleConfig struct {
	Width    int      `yaml:"width"`
	Height   int      `yaml:"height"`
	MinSpeed int      `yaml:"min_speed"` // Inclusive
	MaxSpeed int      `yaml:"max_speed"` // Inclusive
	Palette  []string `yaml:"palette"`   // Color names, see core.ParseColor
}

// LaneMarkConfig defines the decorative lane divider dashes.
type LaneMarkConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Spacing    int     `yaml:"spacing"`     // Vertical distance between dashes
	BaseScroll float64 `yaml:"base_scroll"` // Units per tick at multiplier 1.0
}

// DifficultyConfig defines score-driven speed progression.
type DifficultyConfig struct {
	Enabled        bool    `yaml:"enabled"`
	ScoreStep      int     `yaml:"score_step"`      // Score interval between bumps
	MultiplierStep float64 `yaml:"multiplier_step"` // Multiplier added per interval
}

// LaneWidth returns the width of a single lane.
func (c RacerConfig) LaneWidth() int {
	return c.Road.Width / c.Road.Lanes
}

// RoadX returns the left edge of the road.
func (c RacerConfig) RoadX() int {
	return (c.World.Width - c.Road.Width) / 2
}

// LaneX returns the left edge of a vehicle of the given width centered in lane.
func (c RacerConfig) LaneX(lane, width int) int {
	lw := c.LaneWidth()
	return c.RoadX() + lane*lw + (lw-width)/2
}

// CenterLane returns the lane the player starts in.
func (c RacerConfig) CenterLane() int {
	return c.Road.Lanes / 2
}

// ValidationError describes a rejected configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Message)
}

// Validate checks that the configuration describes a playable game.
func (c RacerConfig) Validate() error {
	positive := []struct {
		field string
		value int
	}{
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"road.width", c.Road.Width},
		{"road.lanes", c.Road.Lanes},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.lateral_speed", c.Player.LateralSpeed},
		{"obstacles.width", c.Obstacles.Width},
		{"obstacles.height", c.Obstacles.Height},
		{"obstacles.min_speed", c.Obstacles.MinSpeed},
		{"lane_marks.spacing", c.LaneMarks.Spacing},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return ValidationError{Field: p.field, Message: fmt.Sprintf("must be positive, got %d", p.value)}
		}
	}

	if c.Road.Width > c.World.Width {
		return ValidationError{Field: "road.width", Message: "road is wider than the world"}
	}
	if c.LaneWidth() < max(c.Player.Width, c.Obstacles.Width) {
		return ValidationError{Field: "road.lanes", Message: "lanes are narrower than the vehicles"}
	}
	if c.Obstacles.MaxSpeed < c.Obstacles.MinSpeed {
		return ValidationError{
			Field:   "obstacles.max_speed",
			Message: fmt.Sprintf("%d is below min_speed %d", c.Obstacles.MaxSpeed, c.Obstacles.MinSpeed),
		}
	}
	if len(c.Obstacles.Palette) == 0 {
		return ValidationError{Field: "obstacles.palette", Message: "needs at least one color"}
	}
	if _, err := c.PaletteColors(); err != nil {
		return err
	}
	if c.LaneMarks.Width < 0 || c.LaneMarks.Height < 0 {
		return ValidationError{Field: "lane_marks", Message: "width and height must not be negative"}
	}
	// Dashes only wrap past the bottom edge, so they must never scroll up.
	if c.LaneMarks.BaseScroll < 0 {
		return ValidationError{Field: "lane_marks.base_scroll", Message: fmt.Sprintf("must not be negative, got %v", c.LaneMarks.BaseScroll)}
	}
	if c.Player.BottomOffset < 0 || c.Player.BottomOffset > c.World.Height {
		return ValidationError{Field: "player.bottom_offset", Message: "player would be outside the world"}
	}
	if c.Difficulty.Enabled && c.Difficulty.ScoreStep <= 0 {
		return ValidationError{Field: "difficulty.score_step", Message: "must be positive when difficulty is enabled"}
	}
	if c.Difficulty.MultiplierStep < 0 {
		return ValidationError{Field: "difficulty.multiplier_step", Message: "must not be negative"}
	}
	return nil
}

// PaletteColors resolves the obstacle palette names to colors.
func (c RacerConfig) PaletteColors() ([]core.Color, error) {
	colors := make([]core.Color, 0, len(c.Obstacles.Palette))
	for _, name := range c.Obstacles.Palette {
		color, ok := core.ParseColor(name)
		if !ok {
			return nil, ValidationError{Field: "obstacles.palette", Message: fmt.Sprintf("unknown color %q", name)}
		}
		colors = append(colors, color)
	}
	return colors, nil
}
