package renderers

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/citylights/constants"
	"github.com/lixenwraith/citylights/render"
	"github.com/lixenwraith/citylights/scene"
)

// FpsRenderer draws a small frame-rate readout in the top-left corner.
// Registered only when the -fps flag is set.
type FpsRenderer struct {
	frameCount    int
	lastFpsUpdate time.Time
	currentFps    int
}

// NewFpsRenderer creates an FPS overlay renderer
func NewFpsRenderer() *FpsRenderer {
	return &FpsRenderer{lastFpsUpdate: time.Now()}
}

// Render implements SystemRenderer
func (r *FpsRenderer) Render(ctx render.Context, _ *scene.Scene, buf *render.Buffer) {
	r.frameCount++
	if ctx.Now.Sub(r.lastFpsUpdate) >= constants.FpsSampleWindow {
		r.currentFps = r.frameCount
		r.frameCount = 0
		r.lastFpsUpdate = ctx.Now
	}

	style := tcell.StyleDefault.Foreground(render.RgbOverlay)
	buf.SetString(0, 0, fmt.Sprintf(" FPS: %d ", r.currentFps), style)
}
