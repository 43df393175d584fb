package scene

import (
	"fmt"

	"github.com/lixenwraith/citylights/constants"
)

// Config holds the generation parameters taken from command-line flags
type Config struct {
	Stars      int
	Raindrops  int
	Snowflakes int
	Clouds     int
	Vehicles   int
	Rain       bool
	Snow       bool
}

// DefaultConfig returns the flag defaults
func DefaultConfig() Config {
	return Config{
		Stars:      constants.DefaultStarCount,
		Raindrops:  constants.DefaultRaindropCount,
		Snowflakes: constants.DefaultSnowflakeCount,
		Clouds:     constants.DefaultCloudCount,
		Vehicles:   constants.DefaultVehicleCount,
		Rain:       true,
		Snow:       false,
	}
}

// validate rejects entity counts no scene can hold
func (c Config) validate() error {
	counts := []struct {
		name string
		n    int
	}{
		{"star", c.Stars},
		{"raindrop", c.Raindrops},
		{"snowflake", c.Snowflakes},
		{"cloud", c.Clouds},
		{"vehicle", c.Vehicles},
	}
	for _, count := range counts {
		if count.n < 0 {
			return fmt.Errorf("%s count must not be negative, got %d", count.name, count.n)
		}
	}
	return nil
}

// Scene is the full mutable animation state for one running instance.
// It is populated once by Generate and mutated in place every frame;
// no entity is allocated or freed after generation.
type Scene struct {
	Width  int
	Height int

	Buildings  []Building
	Vehicles   []Vehicle
	Stars      []Star
	Raindrops  []Raindrop
	Snowflakes []Snowflake
	Clouds     []Cloud
	Moon       Moon

	Rain bool
	Snow bool
}

// RoadY returns the top road row
func (s *Scene) RoadY() int {
	return s.Height - constants.RoadOffset
}

// BuildingTop returns the screen row of a building's highest facade cell
func (s *Scene) BuildingTop(b *Building) int {
	return s.Height - constants.RoadOffset - b.Height
}
