package scene

// Raindrop falls straight down and re-enters at the top once it passes the
// bottom row
type Raindrop struct {
	X     int
	Y     float64
	Speed float64 // rows per second
}

// Snowflake falls with a constant horizontal drift and wraps on both axes
type Snowflake struct {
	X     float64
	Y     float64
	Speed float64 // rows per second
	Drift float64 // cells per second, may be negative or zero
	Glyph rune
}
