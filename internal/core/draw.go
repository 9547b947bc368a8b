package core

// DrawKind identifies what a draw request depicts.
type DrawKind int

const (
	DrawRoad DrawKind = iota
	DrawLaneMark
	DrawPlayer
	DrawObstacle
	DrawText
)

// String returns a human-readable name for the kind.
func (k DrawKind) String() string {
	switch k {
	case DrawRoad:
		return "Road"
	case DrawLaneMark:
		return "LaneMark"
	case DrawPlayer:
		return "Player"
	case DrawObstacle:
		return "Obstacle"
	case DrawText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Align controls horizontal placement of text requests.
type Align int

const (
	AlignLeft   Align = iota // Text starts at Rect.X
	AlignCenter              // Text is centered across the frame; Rect.X is ignored
)

// DrawRequest is one entity for the renderer, in world coordinates.
// Shapes use Rect; text uses Rect.X/Rect.Y as its anchor.
type DrawRequest struct {
	Kind  DrawKind
	Rect  Rect
	Color Color
	Text  string
	Align Align
}

// Frame is the complete draw list for one tick.
// Width and Height give the world size the requests are expressed in.
type Frame struct {
	Width    int
	Height   int
	Requests []DrawRequest
}

// Add appends a shape request.
func (f *Frame) Add(kind DrawKind, r Rect, c Color) {
	f.Requests = append(f.Requests, DrawRequest{Kind: kind, Rect: r, Color: c})
}

// AddText appends a text request anchored at (x, y).
func (f *Frame) AddText(x, y int, text string, c Color, align Align) {
	f.Requests = append(f.Requests, DrawRequest{
		Kind:  DrawText,
		Rect:  NewRect(x, y, len([]rune(text)), 1),
		Color: c,
		Text:  text,
		Align: align,
	})
}

// Count returns how many requests of the given kind the frame holds.
func (f Frame) Count(kind DrawKind) int {
	n := 0
	for _, r := range f.Requests {
		if r.Kind == kind {
			n++
		}
	}
	return n
}
