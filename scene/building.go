package scene

import (
	"github.com/gdamore/tcell/v2"
)

// BuildingColors is the facade palette the generator picks from
var BuildingColors = []tcell.Color{
	tcell.NewRGBColor(60, 60, 60),
	tcell.NewRGBColor(70, 70, 70),
	tcell.NewRGBColor(80, 80, 80),
	tcell.NewRGBColor(90, 90, 90),
}

// Window is a single window cell on a facade
type Window struct {
	Lit bool
}

// Building is one facade in the skyline. Windows sit on the odd interior
// rows and columns of the facade, so the grid is indexed by (row, col) and
// WindowOffset maps indices back to facade-relative cell offsets.
type Building struct {
	X       int
	Width   int
	Height  int
	Color   tcell.Color
	Windows [][]Window
	Antenna rune // 0 when the roof is bare
}

// WindowOffset returns the facade-relative cell offsets of grid cell (row, col)
func (b *Building) WindowOffset(row, col int) (dx, dy int) {
	return 1 + 2*col, 1 + 2*row
}

// WindowGridSize returns the number of window rows and columns that fit the
// facade's odd interior lattice
func (b *Building) WindowGridSize() (rows, cols int) {
	// offsets 1, 3, 5, ... up to dim-2
	if b.Height >= 3 {
		rows = (b.Height - 1) / 2
	}
	if b.Width >= 3 {
		cols = (b.Width - 1) / 2
	}
	return rows, cols
}
