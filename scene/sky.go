package scene

import (
	"github.com/lixenwraith/citylights/constants"
)

// Star is a fixed point in the upper sky with a cycling glyph phase
type Star struct {
	X     int
	Y     int
	Phase int
}

// Glyph returns the star's current twinkle glyph
func (s *Star) Glyph() rune {
	return constants.StarChars[s.Phase%len(constants.StarChars)]
}

// Cloud drifts eastward across the upper quarter of the sky and wraps
type Cloud struct {
	X     float64
	Y     int
	Shape string
	Speed float64
}

// Moon anchors the static moon art
type Moon struct {
	X int
	Y int
}
