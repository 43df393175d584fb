package systems

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/citylights/constants"
	"github.com/lixenwraith/citylights/scene"
)

// TwinkleSystem re-rolls star glyph phases at a fixed per-frame probability
type TwinkleSystem struct {
	rng *rand.Rand
}

// NewTwinkleSystem creates a star twinkle system
func NewTwinkleSystem(rng *rand.Rand) *TwinkleSystem {
	return &TwinkleSystem{rng: rng}
}

// Update implements System
func (ts *TwinkleSystem) Update(s *scene.Scene, _ time.Duration) {
	for i := range s.Stars {
		if ts.rng.Float64() < constants.StarTwinkleChance {
			s.Stars[i].Phase = ts.rng.Intn(len(constants.StarChars))
		}
	}
}
