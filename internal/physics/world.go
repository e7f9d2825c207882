// Package physics is a small arcade physics world: velocity integration under
// constant gravity, bounce against the world bounds and AABB overlap tests.
package physics

import (
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// Body is a centre-anchored rectangular physics body.
type Body struct {
	Pos                Vec
	Vel                Vec
	W, H               float64
	Bounce             float64 // Fraction of velocity kept when hitting a bound
	CollideWorldBounds bool
	AllowGravity       bool
	Tint               core.Color
}

// Box returns the body's bounding box.
func (b *Body) Box() core.Box {
	return core.Box{CX: b.Pos.X, CY: b.Pos.Y, W: b.W, H: b.H}
}

// SetVelocityX sets the horizontal velocity, leaving vertical untouched.
func (b *Body) SetVelocityX(vx float64) {
	b.Vel.X = vx
}

// Group is an ordered set of bodies that share a world.
type Group struct {
	bodies []*Body
}

// Add appends a body to the group.
func (g *Group) Add(b *Body) {
	g.bodies = append(g.bodies, b)
}

// Len returns the number of bodies in the group.
func (g *Group) Len() int {
	return len(g.bodies)
}

// Bodies returns the group's bodies in insertion order.
func (g *Group) Bodies() []*Body {
	return g.bodies
}

// World owns every body of a scene.
type World struct {
	Width, Height float64
	Gravity       Vec
	bodies        []*Body
	paused        bool
}

// NewWorld creates a world with bounds [0,width]x[0,height].
func NewWorld(width, height float64, gravity Vec) *World {
	return &World{Width: width, Height: height, Gravity: gravity}
}

// NewBody creates a body at (x, y) and adds it to the world.
// New bodies are affected by gravity.
func (w *World) NewBody(x, y, width, height float64) *Body {
	b := &Body{Pos: Vec{X: x, Y: y}, W: width, H: height, AllowGravity: true}
	w.bodies = append(w.bodies, b)
	return b
}

// NewGroup creates an empty group bound to this world.
func (w *World) NewGroup() *Group {
	return &Group{}
}

// Create adds a new body to both the world and the group.
func (w *World) Create(g *Group, x, y, width, height float64) *Body {
	b := w.NewBody(x, y, width, height)
	g.Add(b)
	return b
}

// Len returns the number of bodies in the world.
func (w *World) Len() int {
	return len(w.bodies)
}

// Pause freezes the simulation. Bodies keep their velocities.
func (w *World) Pause() {
	w.paused = true
}

// Resume unfreezes the simulation.
func (w *World) Resume() {
	w.paused = false
}

// Paused reports whether the simulation is frozen.
func (w *World) Paused() bool {
	return w.paused
}

// Clear removes every body. Called when the owning scene is torn down.
func (w *World) Clear() {
	w.bodies = nil
	w.paused = false
}

// Step advances every body by dt. Does nothing while paused.
func (w *World) Step(dt time.Duration) {
	if w.paused || dt <= 0 {
		return
	}
	secs := dt.Seconds()

	for _, b := range w.bodies {
		if b.AllowGravity {
			b.Vel.X += w.Gravity.X * secs
			b.Vel.Y += w.Gravity.Y * secs
		}
		b.Pos.X += b.Vel.X * secs
		b.Pos.Y += b.Vel.Y * secs

		if b.CollideWorldBounds {
			w.collideBounds(b)
		}
	}
}

// collideBounds keeps a body inside the world and reflects its velocity.
func (w *World) collideBounds(b *Body) {
	halfW, halfH := b.W/2, b.H/2

	if b.Pos.X-halfW < 0 {
		b.Pos.X = halfW
		if b.Vel.X < 0 {
			b.Vel.X = -b.Vel.X * b.Bounce
		}
	} else if b.Pos.X+halfW > w.Width {
		b.Pos.X = w.Width - halfW
		if b.Vel.X > 0 {
			b.Vel.X = -b.Vel.X * b.Bounce
		}
	}

	if b.Pos.Y-halfH < 0 {
		b.Pos.Y = halfH
		if b.Vel.Y < 0 {
			b.Vel.Y = -b.Vel.Y * b.Bounce
		}
	} else if b.Pos.Y+halfH > w.Height {
		b.Pos.Y = w.Height - halfH
		if b.Vel.Y > 0 {
			b.Vel.Y = -b.Vel.Y * b.Bounce
		}
	}
}

// Overlap tests a body against every member of a group and returns the first
// member it intersects, in insertion order.
func (w *World) Overlap(b *Body, g *Group) (*Body, bool) {
	box := b.Box()
	for _, other := range g.bodies {
		if other == b {
			continue
		}
		if box.Intersects(other.Box()) {
			return other, true
		}
	}
	return nil, false
}
