package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/citylights/audio"
	"github.com/lixenwraith/citylights/constants"
	"github.com/lixenwraith/citylights/engine"
	"github.com/lixenwraith/citylights/render"
	"github.com/lixenwraith/citylights/render/renderers"
	"github.com/lixenwraith/citylights/scene"
	"github.com/lixenwraith/citylights/systems"
)

var (
	starsFlag      = flag.Int("stars", constants.DefaultStarCount, "Number of stars to display")
	raindropsFlag  = flag.Int("raindrops", constants.DefaultRaindropCount, "Number of raindrops to display")
	snowflakesFlag = flag.Int("snowflakes", constants.DefaultSnowflakeCount, "Number of snowflakes to display")
	cloudsFlag     = flag.Int("clouds", constants.DefaultCloudCount, "Number of clouds to display")
	vehiclesFlag   = flag.Int("vehicles", constants.DefaultVehicleCount, "Number of vehicles on the road")
	intervalFlag   = flag.Int("interval", int(constants.DefaultFrameInterval/time.Millisecond), "Update interval in milliseconds")
	rainFlag       = flag.Bool("rain", true, "Enable rain effect")
	snowFlag       = flag.Bool("snow", false, "Enable snow effect")
	soundFlag      = flag.Bool("sound", false, "Enable ambient sound")
	fpsFlag        = flag.Bool("fps", false, "Show frame rate overlay")
	seedFlag       = flag.Int64("seed", 0, "Random seed (0 = time-derived)")
)

func main() {
	flag.Parse()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	interval := time.Duration(*intervalFlag) * time.Millisecond
	if interval < constants.MinFrameInterval {
		interval = constants.MinFrameInterval
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.HideCursor()

	// Panic recovery: restore the terminal before the stack trace hits stderr
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "citylights crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	cfg := scene.Config{
		Stars:      *starsFlag,
		Raindrops:  *raindropsFlag,
		Snowflakes: *snowflakesFlag,
		Clouds:     *cloudsFlag,
		Vehicles:   *vehiclesFlag,
		Rain:       *rainFlag,
		Snow:       *snowFlag,
	}

	ctx, err := engine.NewContext(screen, cfg, rng)
	if err != nil {
		screen.Fini()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	trafficSystem := systems.NewTrafficSystem(rng)

	var ambient *audio.Engine
	if *soundFlag {
		ambient = audio.NewEngine()
		if err := ambient.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Audio initialization failed: %v (continuing without sound)\n", err)
			ambient = nil
		} else {
			ambient.StartDrone()
			trafficSystem.SetHorn(ambient.Horn)
			defer ambient.Cleanup()
		}
	}

	orchestrator := render.NewOrchestrator(screen, ctx.Width, ctx.Height)
	orchestrator.Register(renderers.NewSkyRenderer(), render.PrioritySky)
	orchestrator.Register(renderers.NewCloudsRenderer(), render.PriorityClouds)
	orchestrator.Register(renderers.NewBuildingsRenderer(), render.PriorityBuildings)
	orchestrator.Register(renderers.NewRoadRenderer(), render.PriorityRoad)
	orchestrator.Register(renderers.NewWeatherRenderer(), render.PriorityWeather)
	orchestrator.Register(renderers.NewVehiclesRenderer(), render.PriorityVehicles)
	if *fpsFlag {
		orchestrator.Register(renderers.NewFpsRenderer(), render.PriorityOverlay)
	}

	loop := engine.NewLoop(ctx, orchestrator, interval)
	loop.AddSystem(systems.NewWindowSystem(rng))
	loop.AddSystem(trafficSystem)
	loop.AddSystem(systems.NewTwinkleSystem(rng))
	loop.AddSystem(systems.NewWeatherSystem(rng))
	loop.AddSystem(systems.NewCloudSystem())

	if err := loop.Run(); err != nil {
		screen.Fini()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	screen.Fini()
}
