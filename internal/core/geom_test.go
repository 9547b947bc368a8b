package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		hit  bool
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"apart", NewRect(0, 0, 10, 10), NewRect(20, 20, 10, 10), false},
		{"shared vertical edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"shared horizontal edge", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"one unit of overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
		{"car above the screen", NewRect(280, -60, 40, 60), NewRect(280, -20, 40, 60), true},
		{"neighboring lanes", NewRect(280, 500, 40, 60), NewRect(380, 500, 40, 60), false},
		{"bumper to bumper", NewRect(380, 440, 40, 60), NewRect(380, 500, 40, 60), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.hit {
				t.Errorf("%+v.Intersects(%+v) = %v, expected %v", tc.a, tc.b, got, tc.hit)
			}
			if got := tc.b.Intersects(tc.a); got != tc.hit {
				t.Errorf("%+v.Intersects(%+v) = %v, expected %v", tc.b, tc.a, got, tc.hit)
			}
		})
	}
}

func TestRectRightBottomAreExclusive(t *testing.T) {
	car := NewRect(380, 500, 40, 60)

	if car.Right() != 420 || car.Bottom() != 560 {
		t.Errorf("Right/Bottom = %d/%d, expected 420/560", car.Right(), car.Bottom())
	}
}

func TestClampLane(t *testing.T) {
	const lanes = 3

	tests := []struct{ in, want int }{
		{-1, 0},
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
	}
	for _, tc := range tests {
		if got := Clamp(tc.in, 0, lanes-1); got != tc.want {
			t.Errorf("Clamp(%d, 0, %d) = %d, expected %d", tc.in, lanes-1, got, tc.want)
		}
	}
}

func TestAbs(t *testing.T) {
	for in, want := range map[int]int{-7: 7, 0: 0, 5: 5} {
		if got := Abs(in); got != want {
			t.Errorf("Abs(%d) = %d, expected %d", in, got, want)
		}
	}
}
