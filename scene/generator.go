package scene

import (
	"fmt"
	"math/rand"

	"github.com/lixenwraith/citylights/constants"
)

// Generate builds a fully populated scene for the given terminal bounds.
// Returns an error for terminals too small to hold the road and at least
// one building, and for negative entity counts; the caller should treat
// either as fatal rather than misrender.
func Generate(width, height int, cfg Config, rng *rand.Rand) (*Scene, error) {
	if width < constants.MinTerminalWidth || height < constants.MinTerminalHeight {
		return nil, fmt.Errorf("terminal %dx%d is too small to render: need at least %dx%d",
			width, height, constants.MinTerminalWidth, constants.MinTerminalHeight)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	s := &Scene{
		Width:  width,
		Height: height,
		Rain:   cfg.Rain,
		Snow:   cfg.Snow,
		Moon: Moon{
			X: width - constants.MoonRightInset,
			Y: constants.MoonTopRow,
		},
	}

	s.generateBuildings(rng)
	s.generateVehicles(cfg.Vehicles, rng)
	s.generateStars(cfg.Stars, rng)
	s.generateClouds(cfg.Clouds, rng)
	if cfg.Rain {
		s.generateRain(cfg.Raindrops, rng)
	}
	if cfg.Snow {
		s.generateSnow(cfg.Snowflakes, rng)
	}

	return s, nil
}

// generateBuildings tiles facades left to right with narrow alleys between
// them. Every building lies fully within [0, width); none overlap.
func (s *Scene) generateBuildings(rng *rand.Rand) {
	maxHeight := s.Height - constants.BuildingSkyMargin

	x := 0
	for x+constants.BuildingMinWidth <= s.Width {
		bw := constants.BuildingMinWidth +
			rng.Intn(constants.BuildingMaxWidth-constants.BuildingMinWidth+1)
		if x+bw > s.Width {
			bw = s.Width - x
		}
		bh := constants.BuildingMinHeight + rng.Intn(maxHeight-constants.BuildingMinHeight+1)

		b := Building{
			X:      x,
			Width:  bw,
			Height: bh,
			Color:  BuildingColors[rng.Intn(len(BuildingColors))],
		}

		rows, cols := b.WindowGridSize()
		b.Windows = make([][]Window, rows)
		for r := 0; r < rows; r++ {
			b.Windows[r] = make([]Window, cols)
			for c := 0; c < cols; c++ {
				b.Windows[r][c] = Window{Lit: rng.Float64() < constants.WindowLitChance}
			}
		}

		if rng.Float64() < constants.AntennaChance {
			b.Antenna = constants.AntennaChars[rng.Intn(len(constants.AntennaChars))]
		}

		s.Buildings = append(s.Buildings, b)
		x += bw + constants.BuildingMinGap +
			rng.Intn(constants.BuildingMaxGap-constants.BuildingMinGap+1)
	}
}

// generateVehicles places the fixed fleet on the two traffic lanes, each
// vehicle somewhere along its wrap span
func (s *Scene) generateVehicles(count int, rng *rand.Rand) {
	roadY := s.RoadY()
	s.Vehicles = make([]Vehicle, 0, count)
	for i := 0; i < count; i++ {
		style := VehicleStyles[rng.Intn(len(VehicleStyles))]
		lane := roadY
		if rng.Intn(2) == 0 {
			lane = roadY - 1
		}
		v := Vehicle{Style: style, Lane: lane}
		w := float64(v.WidthCells())
		v.X = rng.Float64()*(float64(s.Width)+w) - w
		s.Vehicles = append(s.Vehicles, v)
	}
}

func (s *Scene) generateStars(count int, rng *rand.Rand) {
	skyHeight := s.Height / 2
	s.Stars = make([]Star, 0, count)
	for i := 0; i < count; i++ {
		s.Stars = append(s.Stars, Star{
			X:     rng.Intn(s.Width),
			Y:     rng.Intn(skyHeight),
			Phase: rng.Intn(len(constants.StarChars)),
		})
	}
}

func (s *Scene) generateClouds(count int, rng *rand.Rand) {
	cloudCeiling := s.Height / 4
	if cloudCeiling < 1 {
		cloudCeiling = 1
	}
	s.Clouds = make([]Cloud, 0, count)
	for i := 0; i < count; i++ {
		s.Clouds = append(s.Clouds, Cloud{
			X:     rng.Float64() * float64(s.Width),
			Y:     rng.Intn(cloudCeiling),
			Shape: constants.CloudShapes[rng.Intn(len(constants.CloudShapes))],
			Speed: constants.CloudMinSpeed + rng.Float64()*(constants.CloudMaxSpeed-constants.CloudMinSpeed),
		})
	}
}

func (s *Scene) generateRain(count int, rng *rand.Rand) {
	s.Raindrops = make([]Raindrop, 0, count)
	for i := 0; i < count; i++ {
		s.Raindrops = append(s.Raindrops, Raindrop{
			X:     rng.Intn(s.Width),
			Y:     rng.Float64() * float64(s.Height),
			Speed: constants.RainMinSpeed + rng.Float64()*(constants.RainMaxSpeed-constants.RainMinSpeed),
		})
	}
}

func (s *Scene) generateSnow(count int, rng *rand.Rand) {
	s.Snowflakes = make([]Snowflake, 0, count)
	for i := 0; i < count; i++ {
		s.Snowflakes = append(s.Snowflakes, Snowflake{
			X:     rng.Float64() * float64(s.Width),
			Y:     rng.Float64() * float64(s.Height),
			Speed: constants.SnowMinSpeed + rng.Float64()*(constants.SnowMaxSpeed-constants.SnowMinSpeed),
			Drift: float64(rng.Intn(3)-1) * constants.SnowDriftSpeed,
			Glyph: constants.SnowflakeChars[rng.Intn(len(constants.SnowflakeChars))],
		})
	}
}
