package constants

// --- Glyphs ---
const (
	// BuildingChar is the facade fill block
	BuildingChar = '█'

	// WindowChar is the window block (lit or dark depends on style)
	WindowChar = '■'

	// RoadChar is repeated across both road rows
	RoadChar = '='

	// RainChar is the raindrop glyph
	RainChar = '|'
)

// StarChars are the twinkle phases a star cycles through
var StarChars = []rune{'.', '*', '+', '\''}

// SnowflakeChars are the glyph variants a snowflake is born with
var SnowflakeChars = []rune{'*', '.', 'o'}

// AntennaChars are the rooftop antenna variants
var AntennaChars = []rune{'|', 'Y', 'i'}

// CloudShapes are the drifting cloud silhouettes
var CloudShapes = []string{"_.-^-._", " ~~~", "(-.-)"}

// MoonArt is drawn line by line, anchored near the top-right corner
var MoonArt = []string{
	"  ,'.'.",
	" ,'. ..'.",
	".' .. '. '.",
}
