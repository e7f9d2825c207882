package dodge

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-dodge/internal/clock"
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/draw"
	"github.com/vovakirdan/tui-dodge/internal/physics"
	"github.com/vovakirdan/tui-dodge/internal/scene"
	"github.com/vovakirdan/tui-dodge/internal/ui"
)

// Gameplay is one play session. A fresh instance is created on every entry,
// so score and obstacles never outlive the session.
type Gameplay struct {
	ctx        *scene.Context
	cfg        config.DodgeConfig
	difficulty *config.DifficultyManager

	player    *physics.Body
	obstacles *physics.Group
	spawner   *clock.Event
	scoreText *ui.Label
	score     int

	// Game over state
	over         bool
	overAt       time.Duration
	repeats      int // Overlaps seen after game over
	gameOverText *ui.Label
	restart      *ui.Button
}

// NewGameplay creates a gameplay scene.
func NewGameplay() *Gameplay {
	return &Gameplay{}
}

// ID implements scene.Scene.
func (g *Gameplay) ID() scene.ID { return scene.Gameplay }

// Setup creates the player, the obstacle group, the score text and the spawner.
func (g *Gameplay) Setup(ctx *scene.Context) {
	g.ctx = ctx
	g.cfg = ctx.Config
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	p := g.cfg.Player
	g.player = ctx.Physics.NewBody(p.X, p.Y, p.Width, p.Height)
	g.player.CollideWorldBounds = true

	g.obstacles = ctx.Physics.NewGroup()
	g.scoreText = ctx.UI.AddLabel(16, 16, "Score: 0", buttonSize, core.ColorWhite)

	g.armSpawner()
}

// armSpawner schedules the next spawn. With progression off the timer is a
// plain repeating event at the base interval; otherwise it is re-armed after
// each spawn with an interval for the current level.
func (g *Gameplay) armSpawner() {
	base := g.cfg.Spawner.Interval()
	if !g.difficulty.IsEnabled() {
		g.spawner = g.ctx.Clock.AddEvent(base, true, g.spawn)
		return
	}

	interval := g.difficulty.Interval(base, g.score, g.ctx.Clock.Now())
	g.spawner = g.ctx.Clock.AddEvent(interval, false, func() {
		g.spawn()
		if !g.over {
			g.armSpawner()
		}
	})
}

// spawn drops one obstacle from the top edge and scores it.
func (g *Gameplay) spawn() {
	o := g.cfg.Obstacles
	now := g.ctx.Clock.Now()

	x := float64(between(g.ctx, 0, int(g.cfg.World.Width)))
	vx := float64(between(g.ctx, int(o.MinVX), int(o.MaxVX)))

	body := g.ctx.Physics.Create(g.obstacles, x, 0, o.Width, o.Height)
	body.Bounce = o.Bounce
	body.CollideWorldBounds = true
	body.Vel = physics.Vec{
		X: g.difficulty.Speed(vx, g.score, now),
		Y: g.difficulty.Speed(o.VY, g.score, now),
	}

	g.score += g.cfg.Spawner.ScoreIncrement
	g.scoreText.SetText(fmt.Sprintf("Score: %d", g.score))

	g.ctx.Emit(scene.SpawnEvent{At: now, X: x, Obstacles: g.obstacles.Len(), Score: g.score})
}

// between returns a uniformly distributed integer in [lo, hi].
func between(ctx *scene.Context, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + ctx.Rand.Intn(hi-lo+1)
}

// Update steers the player and tests it against every obstacle.
func (g *Gameplay) Update(in core.InputFrame, _ time.Duration) {
	speed := g.cfg.Player.Speed
	switch {
	case in.Has(core.ActionLeft):
		g.player.SetVelocityX(-speed)
	case in.Has(core.ActionRight):
		g.player.SetVelocityX(speed)
	default:
		g.player.SetVelocityX(0)
	}

	if _, hit := g.ctx.Physics.Overlap(g.player, g.obstacles); hit {
		g.onOverlap()
	}
}

// onOverlap runs the game-over handler on the first hit of the session.
// Frozen bodies keep overlapping, so later hits are only counted.
func (g *Gameplay) onOverlap() {
	if g.over {
		g.repeats++
		g.ctx.Emit(scene.OverlapRepeatedEvent{Count: g.repeats})
		return
	}
	g.gameOver()
}

// Draw emits the player and every obstacle.
func (g *Gameplay) Draw(dl *draw.List) {
	b := g.player
	dl.Image(AssetPlayer, b.Pos.X, b.Pos.Y, b.W, b.H, b.Tint)
	for _, o := range g.obstacles.Bodies() {
		dl.Image(AssetObstacle, o.Pos.X, o.Pos.Y, o.W, o.H, o.Tint)
	}
}

// Teardown stops the spawner. Bodies and widgets go with the context.
func (g *Gameplay) Teardown() {
	if g.spawner != nil {
		g.spawner.Remove()
	}
	g.player, g.obstacles, g.scoreText = nil, nil, nil
	g.gameOverText, g.restart = nil, nil
}

// Score returns the session score.
func (g *Gameplay) Score() int { return g.score }

// GameOver reports whether the session has ended.
func (g *Gameplay) GameOver() bool { return g.over }

// Player returns the player body.
func (g *Gameplay) Player() *physics.Body { return g.player }

// Obstacles returns the obstacle group.
func (g *Gameplay) Obstacles() *physics.Group { return g.obstacles }

// ScoreText returns the score label.
func (g *Gameplay) ScoreText() *ui.Label { return g.scoreText }

// RepeatedOverlaps returns how many overlaps were seen after game over.
func (g *Gameplay) RepeatedOverlaps() int { return g.repeats }

// RestartButton returns the Restart button, nil until game over.
func (g *Gameplay) RestartButton() *ui.Button { return g.restart }
