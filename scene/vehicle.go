package scene

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// VehicleKind classifies a vehicle style
type VehicleKind int

const (
	KindCar VehicleKind = iota
	KindVan
	KindLorry
)

func (k VehicleKind) String() string {
	switch k {
	case KindVan:
		return "van"
	case KindLorry:
		return "lorry"
	default:
		return "car"
	}
}

// VehicleStyle couples a glyph string with its color and signed speed.
// Speed is in cells per second; the sign is the direction of travel.
type VehicleStyle struct {
	Kind   VehicleKind
	Glyphs string
	Color  tcell.Color
	Speed  float64
}

// VehicleStyles is the fixed roster the generator draws from
var VehicleStyles = []VehicleStyle{
	{KindCar, "─=≡(°o°)", tcell.ColorYellow, 10.0},
	{KindVan, `[\__\_]`, tcell.ColorGreen, -6.0},
	{KindCar, "o-o-o", tcell.ColorTeal, 8.0},
	{KindVan, "[##-##]", tcell.ColorPurple, -5.0},
	{KindCar, "<(o.o)>", tcell.ColorRed, 4.0},
	{KindLorry, "[|=====|]", tcell.ColorSilver, -4.0},
}

// Vehicle is one member of the fixed traffic fleet. X is the leftmost cell
// of the glyph string and wraps across the span [-glyphWidth, sceneWidth)
// so the vehicle glides off one edge and back in from the other.
type Vehicle struct {
	Style VehicleStyle
	Lane  int
	X     float64
}

// WidthCells returns the glyph string length in cells
func (v *Vehicle) WidthCells() int {
	n := 0
	for range v.Style.Glyphs {
		n++
	}
	return n
}

// Advance moves the vehicle by dt and wraps it at the edges of the extended
// span. Returns true when a wrap happened this step.
func (v *Vehicle) Advance(dt time.Duration, sceneWidth int) bool {
	w := float64(v.WidthCells())
	span := float64(sceneWidth) + w

	v.X += v.Style.Speed * dt.Seconds()

	wrapped := false
	for v.X >= float64(sceneWidth) {
		v.X -= span
		wrapped = true
	}
	for v.X < -w {
		v.X += span
		wrapped = true
	}
	return wrapped
}
