// Package director runs the scene state machine. It owns the active scene and
// its Context, advances scene time by a fixed tick, and applies scene
// switches between frames.
package director

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/draw"
	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/scene"
)

// Options configures a Director.
type Options struct {
	Config   config.DodgeConfig
	TickRate int   // Frames per second, 60 when zero
	Seed     int64 // RNG seed, current time when zero
	Logger   *log.Logger
	Initial  scene.ID // First scene, Title when empty

	// Listeners receive scene events, including the start of the
	// initial scene.
	Listeners []scene.Listener
}

// Director is the scene controller. It is not safe for concurrent use; the
// frontend that owns it calls every method from its frame loop.
type Director struct {
	cfg      config.DodgeConfig
	tickRate int
	rng      *rand.Rand
	logger   *log.Logger

	active scene.Scene
	ctx    *scene.Context

	tick       int64 // Frames stepped since the director was created
	inFrame    bool
	pending    scene.ID
	hasPending bool
	session    int
	closed     bool

	listeners []scene.Listener
}

// New creates a director and starts the initial scene.
func New(opts Options) (*Director, error) {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Initial == "" {
		opts.Initial = scene.Title
	}

	d := &Director{
		cfg:      opts.Config,
		tickRate: opts.TickRate,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		logger:   opts.Logger.WithPrefix("director"),

		listeners: append([]scene.Listener(nil), opts.Listeners...),
	}
	if err := d.switchTo(opts.Initial); err != nil {
		return nil, err
	}
	return d, nil
}

// AddListener registers a callback for scene events.
func (d *Director) AddListener(l scene.Listener) {
	d.listeners = append(d.listeners, l)
}

// Start switches to the named scene. Called during a frame (from a scene's
// Update or a button handler) the switch is deferred until the frame ends;
// the last request of a frame wins.
func (d *Director) Start(id scene.ID) {
	if d.inFrame {
		d.pending = id
		d.hasPending = true
		return
	}
	if err := d.switchTo(id); err != nil {
		d.logger.Error("scene switch failed", "scene", id, "err", err)
	}
}

// switchTo tears down the active scene and sets up a fresh instance of id.
func (d *Director) switchTo(id scene.ID) error {
	next, err := registry.Create(id)
	if err != nil {
		return err
	}

	if d.active != nil {
		prev := d.active.ID()
		d.active.Teardown()
		d.ctx.Release()
		d.active, d.ctx = nil, nil
		d.emit(scene.StoppedEvent{Scene: prev})
	}

	if id == scene.Gameplay {
		d.session++
	}

	d.ctx = scene.NewContext(d.cfg, d.rng, d.logger.WithPrefix(string(id)), d, d.emit)
	d.active = next
	next.Setup(d.ctx)

	d.logger.Debug("scene started", "scene", id, "session", d.session)
	d.emit(scene.StartedEvent{Scene: id, Session: d.sessionFor(id)})
	return nil
}

func (d *Director) sessionFor(id scene.ID) int {
	if id == scene.Gameplay {
		return d.session
	}
	return 0
}

// FrameDuration returns the nominal length of one frame.
func (d *Director) FrameDuration() time.Duration {
	return time.Second / time.Duration(d.tickRate)
}

// elapsed returns the time at the start of frame n. Computing it from the
// frame count keeps a full second of frames exactly one second long.
func (d *Director) elapsed(n int64) time.Duration {
	return time.Duration(n) * time.Second / time.Duration(d.tickRate)
}

// Step advances the active scene by one frame: timers, physics, widget
// input, then the scene's own update. A scene switch requested during the
// frame is applied before Step returns.
func (d *Director) Step(in core.InputFrame) core.StepResult {
	if d.closed {
		return core.StepResult{State: d.State()}
	}
	dt := d.elapsed(d.tick+1) - d.elapsed(d.tick)
	d.tick++

	d.inFrame = true
	ctx := d.ctx
	ctx.Clock.Advance(dt)
	ctx.Physics.Step(dt)
	ctx.UI.HandleInput(in)
	d.active.Update(in, dt)
	d.inFrame = false

	if d.hasPending {
		id := d.pending
		d.pending, d.hasPending = "", false
		if err := d.switchTo(id); err != nil {
			d.logger.Error("scene switch failed", "scene", id, "err", err)
		}
	}

	return core.StepResult{State: d.State()}
}

// Draw fills dl with the active scene followed by its widgets.
func (d *Director) Draw(dl *draw.List) {
	dl.Reset()
	if d.closed {
		return
	}
	d.active.Draw(dl)
	d.ctx.UI.Draw(dl)
}

// State returns the frontend-facing summary of the game.
func (d *Director) State() core.GameState {
	st := core.GameState{
		Scene:         string(d.active.ID()),
		Session:       d.session,
		PhysicsPaused: d.ctx.Physics.Paused(),
	}
	if r, ok := d.active.(scene.Reporter); ok {
		st.Score = r.Score()
		st.GameOver = r.GameOver()
	}
	return st
}

// Active returns the running scene.
func (d *Director) Active() scene.Scene {
	return d.active
}

// Context returns the running scene's context.
func (d *Director) Context() *scene.Context {
	return d.ctx
}

// Config returns the game configuration scenes are built with.
func (d *Director) Config() config.DodgeConfig {
	return d.cfg
}

// Shutdown tears down the active scene. Later calls do nothing; the
// director must not be stepped afterwards.
func (d *Director) Shutdown() {
	if d.closed {
		return
	}
	d.closed = true
	prev := d.active.ID()
	d.active.Teardown()
	d.ctx.Release()
	d.emit(scene.StoppedEvent{Scene: prev})
}

func (d *Director) emit(ev scene.Event) {
	switch e := ev.(type) {
	case scene.GameOverEvent:
		d.logger.Info("game over", "session", d.session, "score", e.Score, "obstacles", e.Obstacles)
	case scene.OverlapRepeatedEvent:
		if e.Count == 1 {
			d.logger.Debug("overlap persists after game over")
		}
	}
	for _, l := range d.listeners {
		l(ev)
	}
}
