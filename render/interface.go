package render

import (
	"github.com/lixenwraith/citylights/scene"
)

// RenderPriority orders renderers back to front
type RenderPriority int

// Painter's order for the cityscape: sky behind everything, vehicles in
// front of the road, overlays on top
const (
	PrioritySky       RenderPriority = 100
	PriorityClouds    RenderPriority = 150
	PriorityBuildings RenderPriority = 200
	PriorityRoad      RenderPriority = 250
	PriorityWeather   RenderPriority = 300
	PriorityVehicles  RenderPriority = 350
	PriorityOverlay   RenderPriority = 500
)

// SystemRenderer draws one layer of the scene into the frame buffer
type SystemRenderer interface {
	Render(ctx Context, s *scene.Scene, buf *Buffer)
}
