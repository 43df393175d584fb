package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/citylights/render"
	"github.com/lixenwraith/citylights/systems"
)

// Loop is the single-threaded frame loop: a ticker paces frames, a goroutine
// pumps terminal events into a channel, and the loop selects over both.
// Any keypress ends the loop; everything else is cosmetic.
type Loop struct {
	ctx      *Context
	orch     *render.Orchestrator
	systems  []systems.System
	interval time.Duration
}

// NewLoop creates a frame loop over the given context and orchestrator
func NewLoop(ctx *Context, orch *render.Orchestrator, interval time.Duration) *Loop {
	return &Loop{
		ctx:      ctx,
		orch:     orch,
		interval: interval,
	}
}

// AddSystem appends a simulation system; systems run in registration order
func (l *Loop) AddSystem(sys systems.System) {
	l.systems = append(l.systems, sys)
}

// Run drives the animation until a key is pressed or a resize makes the
// terminal unusable. Returns nil on keypress exit.
func (l *Loop) Run() error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			ev := l.ctx.Screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			switch ev.(type) {
			case *tcell.EventKey:
				// Any keypress exits
				return nil
			case *tcell.EventResize:
				if err := l.ctx.HandleResize(); err != nil {
					return err
				}
				l.orch.Resize(l.ctx.Width, l.ctx.Height)
			}

		case now := <-ticker.C:
			for _, sys := range l.systems {
				sys.Update(l.ctx.Scene, l.interval)
			}

			rctx := render.Context{
				Width:  l.ctx.Width,
				Height: l.ctx.Height,
				Now:    now,
				Delta:  l.interval,
			}
			l.orch.RenderFrame(rctx, l.ctx.Scene)
		}
	}
}
