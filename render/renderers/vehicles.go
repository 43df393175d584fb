package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/citylights/render"
	"github.com/lixenwraith/citylights/scene"
)

// VehiclesRenderer draws the traffic fleet on its lanes. Vehicles mid-wrap
// are partially off-screen; the buffer clips the hidden cells.
type VehiclesRenderer struct{}

// NewVehiclesRenderer creates a vehicles renderer
func NewVehiclesRenderer() *VehiclesRenderer {
	return &VehiclesRenderer{}
}

// Render implements SystemRenderer
func (r *VehiclesRenderer) Render(_ render.Context, s *scene.Scene, buf *render.Buffer) {
	for i := range s.Vehicles {
		v := &s.Vehicles[i]
		style := tcell.StyleDefault.Foreground(v.Style.Color)
		x := int(v.X)
		for _, glyph := range v.Style.Glyphs {
			buf.Set(x, v.Lane, glyph, style)
			x++
		}
	}
}
