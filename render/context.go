package render

import "time"

// Context provides frame state for renderers, passed by value
type Context struct {
	Width  int
	Height int

	Now   time.Time
	Delta time.Duration
}
