// Package window hosts the game in an Ebitengine window. The world is drawn
// at its native size, so keys are truly held and the pointer hovers natively.
package window

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/tui-dodge/internal/assets"
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/director"
	"github.com/vovakirdan/tui-dodge/internal/draw"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/scene"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// Options configures a window game.
type Options struct {
	Config    config.DodgeConfig
	TickRate  int
	Seed      int64
	Player    string
	Store     *storage.Store // Optional
	Logger    *log.Logger
	Listeners []scene.Listener
	Offline   bool // Draw primitives instead of downloading the images
}

var (
	backgroundColor = color.RGBA{0x1c, 0x24, 0x40, 0xff}
	playerFill      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	obstacleFill    = color.RGBA{0xff, 0xa5, 0x00, 0xff}
)

// Game implements ebiten.Game.
type Game struct {
	director *director.Director
	logger   *log.Logger
	list     *draw.List
	images   map[string]*ebiten.Image
	font     *text.GoTextFaceSource
	faces    map[float64]*text.GoTextFace
	width    int
	height   int
}

// New creates the game and starts the title scene.
func New(opts Options) (*Game, error) {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	logger := opts.Logger.WithPrefix("window")

	recorder := storage.NewRecorder(opts.Store, opts.Player, opts.Logger)
	d, err := director.New(director.Options{
		Config:    opts.Config,
		TickRate:  opts.TickRate,
		Seed:      opts.Seed,
		Logger:    opts.Logger,
		Listeners: append([]scene.Listener{recorder.Listen}, opts.Listeners...),
	})
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: load font: %w", err)
	}

	w := opts.Config.World
	g := &Game{
		director: d,
		logger:   logger,
		list:     draw.NewList(w.Width, w.Height),
		images:   make(map[string]*ebiten.Image),
		font:     src,
		faces:    make(map[float64]*text.GoTextFace),
		width:    int(w.Width),
		height:   int(w.Height),
	}

	if !opts.Offline {
		imgs, err := assets.Fetch(context.Background(), nil, opts.Config.Assets, logger)
		if err != nil {
			logger.Warn("some images could not be loaded, drawing shapes instead", "err", err)
		}
		for key, img := range imgs {
			g.images[key] = ebiten.NewImageFromImage(img)
		}
	}
	return g, nil
}

// Update samples input and steps the director once. Ebitengine calls it at
// the configured TPS.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.director.Shutdown()
		return ebiten.Termination
	}
	g.director.Step(g.sample())
	return nil
}

// sample builds the input frame for this tick.
func (g *Game) sample() core.InputFrame {
	in := core.NewInputFrame()
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.Set(core.ActionConfirm)
	}

	x, y := ebiten.CursorPosition()
	in.Pointer = core.Pointer{
		X:       float64(x),
		Y:       float64(y),
		Present: x >= 0 && y >= 0 && x < g.width && y < g.height,
		Pressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
	return in
}

// Draw renders the display list.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.director.Draw(g.list)

	for _, c := range g.list.Commands() {
		switch c.Kind {
		case draw.KindImage:
			g.drawImage(screen, c)
		case draw.KindText:
			g.drawText(screen, c)
		}
	}
}

func (g *Game) drawImage(screen *ebiten.Image, c draw.Command) {
	box := core.Box{CX: c.X, CY: c.Y, W: c.W, H: c.H}

	if img, ok := g.images[c.Key]; ok {
		size := img.Bounds().Size()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(c.W/float64(size.X), c.H/float64(size.Y))
		op.GeoM.Translate(box.Left(), box.Top())
		if !c.Tint.IsDefault() {
			op.ColorScale.ScaleWithColor(rgba(c.Tint))
		}
		screen.DrawImage(img, op)
		return
	}

	switch c.Key {
	case dodge.AssetBackground:
		vector.DrawFilledRect(screen, float32(box.Left()), float32(box.Top()), float32(c.W), float32(c.H), backgroundColor, false)
	case dodge.AssetPlayer:
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(c.W/2), tinted(c.Tint, playerFill), true)
	default:
		vector.DrawFilledRect(screen, float32(box.Left()), float32(box.Top()), float32(c.W), float32(c.H), tinted(c.Tint, obstacleFill), true)
	}
}

func (g *Game) drawText(screen *ebiten.Image, c draw.Command) {
	face := g.face(c.Size)
	w, h := text.Measure(c.Text, face, c.Size)

	op := &text.DrawOptions{}
	op.GeoM.Translate(c.X-w*c.OriginX, c.Y-h*c.OriginY)
	op.ColorScale.ScaleWithColor(rgba(c.Color))
	text.Draw(screen, c.Text, face, op)
}

// face returns the cached face for a font size.
func (g *Game) face(size float64) *text.GoTextFace {
	if f, ok := g.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: g.font, Size: size}
	g.faces[size] = f
	return f
}

// Layout keeps the world size regardless of the window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Director returns the game's scene controller.
func (g *Game) Director() *director.Director {
	return g.director
}

func rgba(c core.Color) color.RGBA {
	if c.IsDefault() {
		return color.RGBA{0xff, 0xff, 0xff, 0xff}
	}
	r, g, b := c.Components()
	return color.RGBA{r, g, b, 0xff}
}

func tinted(tint core.Color, base color.RGBA) color.RGBA {
	if tint.IsDefault() {
		return base
	}
	return rgba(tint)
}

// Run opens the window and plays until it is closed.
func Run(opts Options) error {
	g, err := New(opts)
	if err != nil {
		return err
	}

	tps := opts.TickRate
	if tps <= 0 {
		tps = 60
	}
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("My Simple Game")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
