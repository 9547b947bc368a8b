package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
}

// shapeRunes is the fill character for each shape kind.
var shapeRunes = map[core.DrawKind]rune{
	core.DrawRoad:     '░',
	core.DrawLaneMark: '┃',
	core.DrawPlayer:   '█',
	core.DrawObstacle: '█',
}

// scaler maps world coordinates onto screen cells.
type scaler struct {
	worldW, worldH int
	cols, rows     int
}

// x returns the column containing world x.
func (s scaler) x(v int) int {
	return floorDiv(v*s.cols, s.worldW)
}

// y returns the row containing world y.
func (s scaler) y(v int) int {
	return floorDiv(v*s.rows, s.worldH)
}

// rect returns every cell the world rect touches.
// A non-empty rect always covers at least one cell.
func (s scaler) rect(r core.Rect) core.Rect {
	x0, y0 := s.x(r.X), s.y(r.Y)
	x1 := ceilDiv(r.Right()*s.cols, s.worldW)
	y1 := ceilDiv(r.Bottom()*s.rows, s.worldH)
	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

// RenderFrame rasterizes a draw list into s.
// Requests are painted in order, so later ones cover earlier ones.
func RenderFrame(f core.Frame, s *core.Screen) {
	s.Clear()
	if f.Width <= 0 || f.Height <= 0 || s.Width() == 0 || s.Height() == 0 {
		return
	}
	sc := scaler{worldW: f.Width, worldH: f.Height, cols: s.Width(), rows: s.Height()}

	for _, req := range f.Requests {
		if req.Kind == core.DrawText {
			y := sc.y(req.Rect.Y)
			if req.Align == core.AlignCenter {
				s.DrawTextCentered(y, req.Text, req.Color)
			} else {
				s.DrawText(sc.x(req.Rect.X), y, req.Text, req.Color)
			}
			continue
		}

		fill, ok := shapeRunes[req.Kind]
		if !ok {
			continue
		}
		s.DrawRect(sc.rect(req.Rect), fill, req.Color)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
