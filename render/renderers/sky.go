package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/citylights/constants"
	"github.com/lixenwraith/citylights/render"
	"github.com/lixenwraith/citylights/scene"
)

// SkyRenderer draws the star field and the moon
type SkyRenderer struct{}

// NewSkyRenderer creates a sky renderer
func NewSkyRenderer() *SkyRenderer {
	return &SkyRenderer{}
}

// Render implements SystemRenderer
func (r *SkyRenderer) Render(_ render.Context, s *scene.Scene, buf *render.Buffer) {
	starStyle := tcell.StyleDefault.Foreground(render.RgbStar)
	for i := range s.Stars {
		st := &s.Stars[i]
		buf.Set(st.X, st.Y, st.Glyph(), starStyle)
	}

	moonStyle := tcell.StyleDefault.Foreground(render.RgbMoon)
	for i, line := range constants.MoonArt {
		buf.SetString(s.Moon.X, s.Moon.Y+i, line, moonStyle)
	}
}
