package core

import (
	"strings"
	"testing"
)

// rowText returns row y of s without colors.
func rowText(s *Screen, y int) string {
	return strings.Split(s.String(), "\n")[y]
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 || s.Height() != 12 {
		t.Fatalf("size = %dx%d, expected 40x12", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestNegativeSizeIsEmpty(t *testing.T) {
	s := NewScreen(-3, -1)

	if s.Width() != 0 || s.Height() != 0 || s.String() != "" {
		t.Errorf("NewScreen(-3, -1) = %dx%d %q", s.Width(), s.Height(), s.String())
	}
}

func TestSetIgnoresOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)

	s.Set(1, 1, '█', ColorRed)
	s.Set(-1, 0, 'x', ColorRed)
	s.Set(4, 0, 'x', ColorRed)
	s.Set(0, 2, 'x', ColorRed)

	if c := s.GetCell(1, 1); c.Rune != '█' || c.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v", c)
	}
	if got := s.String(); got != "    \n █  " {
		t.Errorf("String() = %q, stray writes leaked in", got)
	}
	if s.GetCell(-1, 0) != blankCell {
		t.Error("out-of-bounds GetCell should be blank")
	}
}

func TestDrawRectClipsAtEdges(t *testing.T) {
	s := NewScreen(6, 4)

	// An obstacle half above the top edge
	s.DrawRect(NewRect(2, -2, 2, 3), '█', ColorBlue)

	want := "  ██  \n      \n      \n      "
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
	if s.GetCell(3, 0).Color != ColorBlue {
		t.Error("DrawRect should apply the color")
	}
}

func TestDrawTextAndCentered(t *testing.T) {
	s := NewScreen(20, 3)

	s.DrawText(1, 0, "Score: 12", ColorWhite)
	s.DrawTextCentered(1, "GAME OVER", ColorRed)
	s.DrawText(17, 2, "High", ColorYellow)

	if got := rowText(s, 0); !strings.HasPrefix(got, " Score: 12") {
		t.Errorf("row 0 = %q", got)
	}
	if got := rowText(s, 1); got != "     GAME OVER      " {
		t.Errorf("row 1 = %q, expected centered text", got)
	}
	if got := rowText(s, 2); !strings.HasSuffix(got, "Hig") {
		t.Errorf("row 2 = %q, expected clipping at the right edge", got)
	}
	if s.GetCell(5, 1).Color != ColorRed {
		t.Error("centered text should keep its color")
	}
}

func TestClearResetsColors(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawRect(NewRect(0, 0, 5, 5), '░', ColorGray)

	s.Clear()

	if got := strings.TrimSpace(strings.ReplaceAll(s.String(), "\n", "")); got != "" {
		t.Errorf("String() after Clear = %q", got)
	}
	if s.GetCell(2, 2) != blankCell {
		t.Errorf("GetCell(2, 2) = %+v after Clear", s.GetCell(2, 2))
	}
}

func TestResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawText(0, 0, "Score: 3", ColorWhite)

	s.Resize(5, 2)
	if got := s.String(); got != "Score\n     " {
		t.Errorf("after shrink String() = %q", got)
	}

	s.Resize(12, 3)
	if got := rowText(s, 0); got != "Score       " {
		t.Errorf("after grow row 0 = %q", got)
	}
	if s.GetCell(0, 0).Color != ColorWhite {
		t.Error("Resize should keep colors")
	}
}
