package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const (
	droneFreq  = 55.0
	hornFreq   = 220.0
	hornLength = 150 * time.Millisecond
)

// Engine plays the optional ambient soundscape: a quiet city drone plus
// short horn tones fired by the traffic system. All methods are safe to
// call before Initialize; they simply do nothing.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	drone       *beep.Ctrl
	initialized bool
}

// NewEngine creates an ambient audio engine
func NewEngine() *Engine {
	return &Engine{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer. Failure leaves the
// engine silent and is reported to the caller, who should treat it as
// non-fatal.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// StartDrone begins the continuous low background hum
func (e *Engine) StartDrone() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized || e.drone != nil {
		return
	}

	sine, err := generators.SineTone(sampleRate, droneFreq)
	if err != nil {
		return
	}

	quiet := &effects.Volume{Streamer: sine, Base: 2, Volume: -6}
	ctrl := &beep.Ctrl{Streamer: quiet}
	e.drone = ctrl

	speaker.Lock()
	e.mixer.Add(ctrl)
	speaker.Unlock()
}

// Horn plays one short distant horn tone
func (e *Engine) Horn() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	tone, err := generators.SineTone(sampleRate, hornFreq)
	if err != nil {
		return
	}

	quiet := &effects.Volume{Streamer: beep.Take(sampleRate.N(hornLength), tone), Base: 2, Volume: -4}

	speaker.Lock()
	e.mixer.Add(quiet)
	speaker.Unlock()
}

// Cleanup silences everything. beep has no speaker close, so pausing the
// drone and clearing the mixer is the full teardown.
func (e *Engine) Cleanup() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	speaker.Lock()
	if e.drone != nil {
		e.drone.Paused = true
		e.drone = nil
	}
	e.mixer.Clear()
	speaker.Unlock()

	e.initialized = false
}
