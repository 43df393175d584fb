package systems

import (
	"time"

	"github.com/lixenwraith/citylights/scene"
)

// CloudSystem drifts clouds eastward; a cloud leaving the right edge
// re-enters from the left with its silhouette just off-screen
type CloudSystem struct{}

// NewCloudSystem creates a cloud drift system
func NewCloudSystem() *CloudSystem {
	return &CloudSystem{}
}

// Update implements System
func (cs *CloudSystem) Update(s *scene.Scene, dt time.Duration) {
	for i := range s.Clouds {
		c := &s.Clouds[i]
		c.X += c.Speed * dt.Seconds()
		if c.X >= float64(s.Width) {
			c.X = -float64(len(c.Shape))
		}
	}
}
