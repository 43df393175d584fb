package constants

import "time"

// Frame Loop Timing Constants
const (
	// DefaultFrameInterval is the default per-frame delay (matches -interval 50)
	DefaultFrameInterval = 50 * time.Millisecond

	// MinFrameInterval guards against busy-loop intervals from the flag
	MinFrameInterval = 5 * time.Millisecond

	// FpsSampleWindow is how often the FPS overlay recomputes its value
	FpsSampleWindow = time.Second
)
