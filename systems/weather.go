package systems

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/citylights/scene"
)

// WeatherSystem advances whichever precipitation the scene has enabled.
// Particles that pass the bottom row re-enter at the top in a fresh column;
// snowflakes additionally drift sideways and wrap horizontally.
type WeatherSystem struct {
	rng *rand.Rand
}

// NewWeatherSystem creates a weather system
func NewWeatherSystem(rng *rand.Rand) *WeatherSystem {
	return &WeatherSystem{rng: rng}
}

// Update implements System
func (ws *WeatherSystem) Update(s *scene.Scene, dt time.Duration) {
	if s.Rain {
		ws.updateRain(s, dt)
	}
	if s.Snow {
		ws.updateSnow(s, dt)
	}
}

func (ws *WeatherSystem) updateRain(s *scene.Scene, dt time.Duration) {
	for i := range s.Raindrops {
		d := &s.Raindrops[i]
		d.Y += d.Speed * dt.Seconds()
		if d.Y >= float64(s.Height) {
			d.Y = 0
			d.X = ws.rng.Intn(s.Width)
		}
	}
}

func (ws *WeatherSystem) updateSnow(s *scene.Scene, dt time.Duration) {
	width := float64(s.Width)
	for i := range s.Snowflakes {
		f := &s.Snowflakes[i]
		f.Y += f.Speed * dt.Seconds()
		if f.Y >= float64(s.Height) {
			f.Y = 0
			f.X = float64(ws.rng.Intn(s.Width))
		}

		f.X += f.Drift * dt.Seconds()
		for f.X >= width {
			f.X -= width
		}
		for f.X < 0 {
			f.X += width
		}
	}
}
