package dodge

import (
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/scene"
)

// gameOver ends the session: physics freezes, the player turns red and the
// spawner stops so the score stays what it was at the moment of impact.
func (g *Gameplay) gameOver() {
	g.over = true
	g.overAt = g.ctx.Clock.Now()

	g.ctx.Physics.Pause()
	g.player.Tint = core.ColorRed
	if g.spawner != nil {
		g.spawner.Remove()
	}

	cx, cy := center(g.ctx)
	g.gameOverText = g.ctx.UI.AddLabel(cx, cy, "Game Over", headingSize, core.ColorWhite).SetOrigin(0.5, 0.5)
	g.restart = addMenuButton(g.ctx, scene.Gameplay, cx, cy+100, "Restart", scene.Title)

	g.ctx.Emit(scene.GameOverEvent{At: g.overAt, Score: g.score, Obstacles: g.obstacles.Len()})
}
