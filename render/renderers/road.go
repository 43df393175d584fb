package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/citylights/constants"
	"github.com/lixenwraith/citylights/render"
	"github.com/lixenwraith/citylights/scene"
)

// RoadRenderer fills the two road rows at the bottom of the scene
type RoadRenderer struct{}

// NewRoadRenderer creates a road renderer
func NewRoadRenderer() *RoadRenderer {
	return &RoadRenderer{}
}

// Render implements SystemRenderer
func (r *RoadRenderer) Render(_ render.Context, s *scene.Scene, buf *render.Buffer) {
	style := tcell.StyleDefault.Foreground(render.RgbRoad)
	roadY := s.RoadY()
	for row := 0; row < constants.RoadRows; row++ {
		for x := 0; x < s.Width; x++ {
			buf.Set(x, roadY+row, constants.RoadChar, style)
		}
	}
}
