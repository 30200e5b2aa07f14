package domain

// Geometry of the play field, in logical pixels
const (
	SpawnY           = -100.0 // bubbles start above the visible area
	FailMargin       = 150.0  // a bubble fails once it is lower than Height-FailMargin
	SpawnMarginRatio = 0.1    // horizontal spawn range is [10%, 90%) of the width
)

// Viewport is the size of the play field
type Viewport struct {
	Width  float64
	Height float64
}

// FailLine returns the vertical position past which a bubble is missed
func (v Viewport) FailLine() float64 {
	return v.Height - FailMargin
}

// SpawnRange returns the horizontal interval bubbles are placed in
func (v Viewport) SpawnRange() (minX, maxX float64) {
	return v.Width * SpawnMarginRatio, v.Width * (1 - SpawnMarginRatio)
}

// Bubble is the single falling prompt awaiting an answer
type Bubble struct {
	Pair     WordPair
	Answer   string // case-folded at spawn
	X        float64
	Y        float64
	Revealed bool
}

// Label returns the text shown on the bubble.
// A revealed bubble carries the correct answer on a second line.
func (b Bubble) Label() string {
	if b.Revealed {
		return b.Pair.Native + "\n" + b.Answer
	}
	return b.Pair.Native
}
