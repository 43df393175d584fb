package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/citylights/scene"
)

func generateSnowScene(t *testing.T, seed int64) *scene.Scene {
	t.Helper()
	cfg := scene.DefaultConfig()
	cfg.Snow = true
	rng := rand.New(rand.NewSource(seed))
	s, err := scene.Generate(80, 24, cfg, rng)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return s
}

func TestRainStaysInBounds(t *testing.T) {
	s := generateTestScene(t, 10)
	sys := NewWeatherSystem(rand.New(rand.NewSource(11)))

	for frame := 0; frame < 2000; frame++ {
		sys.Update(s, 50*time.Millisecond)
		for i := range s.Raindrops {
			d := &s.Raindrops[i]
			if d.X < 0 || d.X >= s.Width {
				t.Fatalf("Raindrop %d column %d outside width %d", i, d.X, s.Width)
			}
			if d.Y < 0 || d.Y >= float64(s.Height) {
				t.Fatalf("Raindrop %d row %.2f outside height %d", i, d.Y, s.Height)
			}
		}
	}
}

func TestSnowStaysInBoundsWithDrift(t *testing.T) {
	s := generateSnowScene(t, 12)
	sys := NewWeatherSystem(rand.New(rand.NewSource(13)))

	for frame := 0; frame < 2000; frame++ {
		sys.Update(s, 50*time.Millisecond)
		for i := range s.Snowflakes {
			f := &s.Snowflakes[i]
			if f.X < 0 || f.X >= float64(s.Width) {
				t.Fatalf("Snowflake %d column %.2f outside width %d on frame %d", i, f.X, s.Width, frame)
			}
			if f.Y < 0 || f.Y >= float64(s.Height) {
				t.Fatalf("Snowflake %d row %.2f outside height %d", i, f.Y, s.Height)
			}
		}
	}
}

func TestRainRespawnsAtTop(t *testing.T) {
	s := generateTestScene(t, 14)
	sys := NewWeatherSystem(rand.New(rand.NewSource(15)))

	// Track one drop until it recycles
	start := s.Raindrops[0].Y
	recycled := false
	for frame := 0; frame < 2000 && !recycled; frame++ {
		prev := s.Raindrops[0].Y
		sys.Update(s, 50*time.Millisecond)
		if s.Raindrops[0].Y < prev {
			recycled = true
			if s.Raindrops[0].Y != 0 {
				t.Errorf("Recycled drop should restart at row 0, got %.2f", s.Raindrops[0].Y)
			}
		}
	}
	if !recycled {
		t.Errorf("Raindrop starting at %.2f never recycled over 100 simulated seconds", start)
	}
}

func TestCloudsDriftAndWrap(t *testing.T) {
	s := generateTestScene(t, 16)
	sys := NewCloudSystem()

	wrapped := false
	for frame := 0; frame < 5000; frame++ {
		prev := s.Clouds[0].X
		sys.Update(s, 50*time.Millisecond)
		c := &s.Clouds[0]
		if c.X < -float64(len(c.Shape)) || c.X >= float64(s.Width) {
			t.Fatalf("Cloud outside wrap span: %.2f", c.X)
		}
		if c.X < prev {
			wrapped = true
		}
	}
	if !wrapped {
		t.Error("Cloud never wrapped despite drifting for 250 simulated seconds")
	}
}

func TestStarTwinkleStaysInGlyphSet(t *testing.T) {
	s := generateTestScene(t, 17)
	sys := NewTwinkleSystem(rand.New(rand.NewSource(18)))

	for frame := 0; frame < 500; frame++ {
		sys.Update(s, 50*time.Millisecond)
	}
	for i := range s.Stars {
		g := s.Stars[i].Glyph()
		switch g {
		case '.', '*', '+', '\'':
		default:
			t.Errorf("Star %d glyph %q outside twinkle set", i, g)
		}
	}
}
