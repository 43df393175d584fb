package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/citylights/constants"
	"github.com/lixenwraith/citylights/render"
	"github.com/lixenwraith/citylights/scene"
)

// BuildingsRenderer draws facades, rooftop antennas, and window grids
type BuildingsRenderer struct{}

// NewBuildingsRenderer creates a buildings renderer
func NewBuildingsRenderer() *BuildingsRenderer {
	return &BuildingsRenderer{}
}

// Render implements SystemRenderer
func (r *BuildingsRenderer) Render(_ render.Context, s *scene.Scene, buf *render.Buffer) {
	litStyle := tcell.StyleDefault.Foreground(render.RgbWindowOn)
	darkStyle := tcell.StyleDefault.Foreground(render.RgbWindowOff)

	for i := range s.Buildings {
		b := &s.Buildings[i]
		top := s.BuildingTop(b)
		facadeStyle := tcell.StyleDefault.Foreground(b.Color)

		for dy := 0; dy < b.Height; dy++ {
			for dx := 0; dx < b.Width; dx++ {
				buf.Set(b.X+dx, top+dy, constants.BuildingChar, facadeStyle)
			}
		}

		if b.Antenna != 0 {
			buf.Set(b.X+b.Width/2, top-1, b.Antenna, facadeStyle)
		}

		for row := range b.Windows {
			for col := range b.Windows[row] {
				dx, dy := b.WindowOffset(row, col)
				style := darkStyle
				if b.Windows[row][col].Lit {
					style = litStyle
				}
				buf.Set(b.X+dx, top+dy, constants.WindowChar, style)
			}
		}
	}
}
