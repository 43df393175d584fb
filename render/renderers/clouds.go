package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/citylights/render"
	"github.com/lixenwraith/citylights/scene"
)

// CloudsRenderer draws the drifting cloud silhouettes
type CloudsRenderer struct{}

// NewCloudsRenderer creates a clouds renderer
func NewCloudsRenderer() *CloudsRenderer {
	return &CloudsRenderer{}
}

// Render implements SystemRenderer
func (r *CloudsRenderer) Render(_ render.Context, s *scene.Scene, buf *render.Buffer) {
	style := tcell.StyleDefault.Foreground(render.RgbCloud)
	for i := range s.Clouds {
		c := &s.Clouds[i]
		buf.SetString(int(c.X), c.Y, c.Shape, style)
	}
}
