package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/citylights/constants"
	"github.com/lixenwraith/citylights/render"
	"github.com/lixenwraith/citylights/scene"
)

// WeatherRenderer draws whichever precipitation the scene has enabled
type WeatherRenderer struct{}

// NewWeatherRenderer creates a weather renderer
func NewWeatherRenderer() *WeatherRenderer {
	return &WeatherRenderer{}
}

// Render implements SystemRenderer
func (r *WeatherRenderer) Render(_ render.Context, s *scene.Scene, buf *render.Buffer) {
	if s.Rain {
		style := tcell.StyleDefault.Foreground(render.RgbRain)
		for i := range s.Raindrops {
			d := &s.Raindrops[i]
			buf.Set(d.X, int(d.Y), constants.RainChar, style)
		}
	}
	if s.Snow {
		style := tcell.StyleDefault.Foreground(render.RgbSnow)
		for i := range s.Snowflakes {
			f := &s.Snowflakes[i]
			buf.Set(int(f.X), int(f.Y), f.Glyph, style)
		}
	}
}
