package constants

// --- Terminal Bounds ---
const (
	// MinTerminalWidth is the narrowest terminal the generator accepts
	MinTerminalWidth = 20

	// MinTerminalHeight is the shortest terminal the generator accepts.
	// Below this there is no room for the road rows plus a minimum building.
	MinTerminalHeight = 11
)

// --- Road Layout ---
const (
	// RoadRows is the number of road rows at the bottom of the scene
	RoadRows = 2

	// RoadOffset is the distance of the top road row from the bottom edge
	// (road occupies rows height-3 and height-2, leaving height-1 as curb)
	RoadOffset = 3
)

// --- Buildings ---
const (
	// BuildingMinWidth / BuildingMaxWidth bound the facade width roll
	BuildingMinWidth = 5
	BuildingMaxWidth = 14

	// BuildingMinHeight is the shortest building the generator places
	BuildingMinHeight = 5

	// BuildingSkyMargin is the clearance kept above the tallest building
	// (road rows plus sky), so max height is terminal height minus this
	BuildingSkyMargin = 6

	// BuildingMinGap / BuildingMaxGap bound the alley width between facades
	BuildingMinGap = 1
	BuildingMaxGap = 4

	// AntennaChance is the probability a building gets a rooftop antenna
	AntennaChance = 0.3
)

// --- Windows ---
const (
	// WindowLitChance is the probability a window starts lit at generation
	WindowLitChance = 0.3

	// WindowFlickerChance is the per-frame probability a window toggles
	WindowFlickerChance = 0.01
)

// --- Sky ---
const (
	// StarTwinkleChance is the per-frame probability a star changes glyph
	StarTwinkleChance = 0.05

	// DefaultStarCount matches the -stars flag default
	DefaultStarCount = 50

	// DefaultCloudCount matches the -clouds flag default
	DefaultCloudCount = 5

	// CloudMinSpeed / CloudMaxSpeed in cells per second, always eastward
	CloudMinSpeed = 1.0
	CloudMaxSpeed = 3.0

	// MoonRightInset is the moon anchor distance from the right edge
	MoonRightInset = 15

	// MoonTopRow is the row of the first moon art line
	MoonTopRow = 1
)

// --- Traffic ---
const (
	// DefaultVehicleCount matches the -vehicles flag default
	DefaultVehicleCount = 4

	// HornChance is the per-wrap probability a vehicle sounds its horn
	HornChance = 0.25
)

// --- Weather ---
const (
	// DefaultRaindropCount matches the -raindrops flag default
	DefaultRaindropCount = 100

	// DefaultSnowflakeCount matches the -snowflakes flag default
	DefaultSnowflakeCount = 50

	// RainMinSpeed / RainMaxSpeed in rows per second
	RainMinSpeed = 20.0
	RainMaxSpeed = 40.0

	// SnowMinSpeed / SnowMaxSpeed in rows per second
	SnowMinSpeed = 10.0
	SnowMaxSpeed = 20.0

	// SnowDriftSpeed is the horizontal drift magnitude in cells per second.
	// Each flake drifts left, right, or not at all.
	SnowDriftSpeed = 10.0
)
