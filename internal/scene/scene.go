// Package scene defines the capability interface every scene implements and
// the Context a scene receives from the director while it is active.
package scene

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/clock"
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/draw"
	"github.com/vovakirdan/tui-dodge/internal/physics"
	"github.com/vovakirdan/tui-dodge/internal/ui"
)

// ID names a scene.
type ID string

// The closed set of scenes.
const (
	Title    ID = "title"
	Gameplay ID = "gameplay"
)

// Scene is a switchable mode of the application owning its own entities.
//
// The director calls Setup once on entry, Update and Draw once per frame
// while the scene is active, and Teardown once on exit. Everything the scene
// created through its Context (timers, bodies, widgets) is released by the
// director after Teardown returns.
type Scene interface {
	ID() ID
	Setup(ctx *Context)
	Update(in core.InputFrame, dt time.Duration)
	Draw(dl *draw.List)
	Teardown()
}

// Reporter is implemented by scenes that track a score.
type Reporter interface {
	Score() int
	GameOver() bool
}

// Starter switches the active scene.
type Starter interface {
	Start(id ID)
}

// Context carries the host capabilities a scene may use while active.
type Context struct {
	Config  config.DodgeConfig
	Clock   *clock.Clock
	Physics *physics.World
	UI      *ui.Layer
	Rand    *rand.Rand
	Logger  *log.Logger

	starter Starter
	emit    func(Event)
}

// NewContext builds a fresh context for one scene activation.
func NewContext(cfg config.DodgeConfig, rng *rand.Rand, logger *log.Logger, starter Starter, emit func(Event)) *Context {
	w := cfg.World
	return &Context{
		Config:  cfg,
		Clock:   clock.New(),
		Physics: physics.NewWorld(w.Width, w.Height, physics.Vec{X: w.GravityX, Y: w.GravityY}),
		UI:      ui.NewLayer(),
		Rand:    rng,
		Logger:  logger,
		starter: starter,
		emit:    emit,
	}
}

// Start asks the director to switch scenes. The switch happens after the
// current frame finishes.
func (c *Context) Start(id ID) {
	if c.starter != nil {
		c.starter.Start(id)
	}
}

// Emit publishes a scene event to the director's listeners.
func (c *Context) Emit(ev Event) {
	if c.emit != nil {
		c.emit(ev)
	}
}

// Release frees everything the scene created through the context.
func (c *Context) Release() {
	c.Clock.Clear()
	c.Physics.Clear()
	c.UI.Release()
}
