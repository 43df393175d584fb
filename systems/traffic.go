package systems

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/citylights/constants"
	"github.com/lixenwraith/citylights/scene"
)

// TrafficSystem moves the fixed vehicle fleet along its lanes. A vehicle
// leaving one edge wraps to the opposite edge; lanes never change.
type TrafficSystem struct {
	rng  *rand.Rand
	horn func()
}

// NewTrafficSystem creates a traffic system
func NewTrafficSystem(rng *rand.Rand) *TrafficSystem {
	return &TrafficSystem{rng: rng}
}

// SetHorn installs a callback sounded occasionally when a vehicle wraps.
// Nil disables horns.
func (ts *TrafficSystem) SetHorn(fn func()) {
	ts.horn = fn
}

// Update implements System
func (ts *TrafficSystem) Update(s *scene.Scene, dt time.Duration) {
	for i := range s.Vehicles {
		wrapped := s.Vehicles[i].Advance(dt, s.Width)
		if wrapped && ts.horn != nil && ts.rng.Float64() < constants.HornChance {
			ts.horn()
		}
	}
}
