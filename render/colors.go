package render

import "github.com/gdamore/tcell/v2"

// Scene palette. RGB values follow the night-time look: dim grays for
// structure, a single warm tone for lit windows.
var (
	RgbWindowOn  = tcell.NewRGBColor(255, 255, 0)
	RgbWindowOff = tcell.NewRGBColor(40, 40, 40)
	RgbRoad      = tcell.NewRGBColor(20, 20, 20)
	RgbMoon      = tcell.NewRGBColor(240, 240, 240)
	RgbStar      = tcell.NewRGBColor(255, 255, 255)
	RgbRain      = tcell.NewRGBColor(100, 100, 150)
	RgbSnow      = tcell.NewRGBColor(200, 200, 200)
	RgbCloud     = tcell.NewRGBColor(150, 150, 150)
	RgbOverlay   = tcell.NewRGBColor(120, 200, 120)
)
