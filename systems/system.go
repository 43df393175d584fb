package systems

import (
	"time"

	"github.com/lixenwraith/citylights/scene"
)

// System advances one aspect of the scene by a fixed timestep.
// Systems run on the frame loop goroutine only; they mutate the scene in
// place and never allocate entities.
type System interface {
	Update(s *scene.Scene, dt time.Duration)
}
