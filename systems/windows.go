package systems

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/citylights/constants"
	"github.com/lixenwraith/citylights/scene"
)

// WindowSystem flickers building windows. Each window toggles with a fixed
// per-frame probability; the grid itself never changes shape.
type WindowSystem struct {
	rng *rand.Rand
}

// NewWindowSystem creates a window flicker system
func NewWindowSystem(rng *rand.Rand) *WindowSystem {
	return &WindowSystem{rng: rng}
}

// Update implements System
func (ws *WindowSystem) Update(s *scene.Scene, _ time.Duration) {
	for i := range s.Buildings {
		b := &s.Buildings[i]
		for r := range b.Windows {
			for c := range b.Windows[r] {
				if ws.rng.Float64() < constants.WindowFlickerChance {
					b.Windows[r][c].Lit = !b.Windows[r][c].Lit
				}
			}
		}
	}
}
