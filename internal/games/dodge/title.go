// Package dodge implements the two scenes of the game: a title screen and a
// gameplay scene where the player dodges falling obstacles.
package dodge

import (
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/draw"
	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/scene"
	"github.com/vovakirdan/tui-dodge/internal/ui"
)

// Asset keys used in draw commands.
const (
	AssetBackground = "background"
	AssetPlayer     = "player"
	AssetObstacle   = "obstacle"
)

// Text sizes, in world pixels.
const (
	headingSize = 64
	buttonSize  = 32
)

func init() {
	registry.Register(scene.Title, func() scene.Scene { return NewTitle() })
	registry.Register(scene.Gameplay, func() scene.Scene { return NewGameplay() })
}

// Title is the start screen.
type Title struct {
	ctx     *scene.Context
	heading *ui.Label
	start   *ui.Button
}

// NewTitle creates a title scene.
func NewTitle() *Title {
	return &Title{}
}

// ID implements scene.Scene.
func (t *Title) ID() scene.ID { return scene.Title }

// Setup places the heading and the Start Game button.
func (t *Title) Setup(ctx *scene.Context) {
	t.ctx = ctx
	cx, cy := center(ctx)

	t.heading = ctx.UI.AddLabel(cx, cy-100, "My Simple Game", headingSize, core.ColorWhite).SetOrigin(0.5, 0.5)
	t.start = addMenuButton(ctx, scene.Title, cx, cy, "Start Game", scene.Gameplay)
}

// Update implements scene.Scene. Everything on the title screen is driven by
// the start button.
func (t *Title) Update(core.InputFrame, time.Duration) {}

// Draw puts the background under the widgets.
func (t *Title) Draw(dl *draw.List) {
	cx, cy := center(t.ctx)
	dl.Image(AssetBackground, cx, cy, dl.Width, dl.Height, core.ColorDefault)
}

// Teardown implements scene.Scene.
func (t *Title) Teardown() {
	t.heading, t.start = nil, nil
}

// StartButton returns the Start Game button.
func (t *Title) StartButton() *ui.Button {
	return t.start
}

// addMenuButton creates a white text button that turns yellow under the
// pointer and switches to target when activated.
func addMenuButton(ctx *scene.Context, from scene.ID, x, y float64, text string, target scene.ID) *ui.Button {
	b := ctx.UI.AddButton(x, y, text, buttonSize, core.ColorWhite)
	b.HoverStyle(core.ColorWhite, core.ColorYellow, func() {
		ctx.Emit(scene.ButtonEvent{Scene: from, Label: text})
		ctx.Start(target)
	})
	return b
}

// center returns the middle of the world.
func center(ctx *scene.Context) (float64, float64) {
	return ctx.Config.World.Width / 2, ctx.Config.World.Height / 2
}
