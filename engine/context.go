package engine

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/citylights/scene"
)

// Context holds the run state shared by the frame loop: screen, current
// dimensions, the random source, and the live scene
type Context struct {
	Screen tcell.Screen
	Config scene.Config
	Rand   *rand.Rand

	Width  int
	Height int
	Scene  *scene.Scene
}

// NewContext queries the screen size and generates the initial scene.
// Fails when the terminal is too small to render anything.
func NewContext(screen tcell.Screen, cfg scene.Config, rng *rand.Rand) (*Context, error) {
	width, height := screen.Size()
	sc, err := scene.Generate(width, height, cfg, rng)
	if err != nil {
		return nil, err
	}

	return &Context{
		Screen: screen,
		Config: cfg,
		Rand:   rng,
		Width:  width,
		Height: height,
		Scene:  sc,
	}, nil
}

// HandleResize re-queries the screen size and generates a fresh scene for
// the new bounds. A resize into a degenerate size is fatal, same as at
// startup.
func (c *Context) HandleResize() error {
	width, height := c.Screen.Size()
	if width == c.Width && height == c.Height {
		return nil
	}

	sc, err := scene.Generate(width, height, c.Config, c.Rand)
	if err != nil {
		return err
	}

	c.Width = width
	c.Height = height
	c.Scene = sc
	return nil
}
