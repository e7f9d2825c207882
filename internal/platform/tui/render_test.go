package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/draw"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

func rowRunes(s *core.Screen, y int) []rune {
	return []rune(s.Row(y))
}

func TestRasterizeTitleText(t *testing.T) {
	dl := draw.NewList(800, 600)
	dl.Text("My Simple Game", 400, 200, 64, core.ColorWhite, 0.5, 0.5)
	dl.Text("Start Game", 400, 300, 32, core.ColorYellow, 0.5, 0.5)
	dl.Text("Score: 0", 16, 16, 32, core.ColorWhite, 0, 0)

	s := core.NewScreen(80, 24)
	hotspots := Rasterize(dl, s)

	if got := string(rowRunes(s, 8)[33:47]); got != "My Simple Game" {
		t.Errorf("heading row = %q", got)
	}
	if got := string(rowRunes(s, 12)[35:45]); got != "Start Game" {
		t.Errorf("button row = %q", got)
	}
	if got := string(rowRunes(s, 1)[2:10]); got != "Score: 0" {
		t.Errorf("score row = %q", got)
	}
	if c := s.GetCell(35, 12); c.Color != core.ColorYellow {
		t.Errorf("button colour = %s", c.Color.Hex())
	}

	if len(hotspots) != 3 {
		t.Fatalf("hotspots = %d, want 3", len(hotspots))
	}
	start := hotspots[1]
	if start.Cells != core.NewRect(35, 12, 10, 1) || start.X != 400 || start.Y != 300 {
		t.Errorf("start hotspot = %+v", start)
	}
}

func TestRasterizeImages(t *testing.T) {
	dl := draw.NewList(800, 600)
	dl.Image(dodge.AssetPlayer, 400, 550, 17, 17, core.ColorDefault)
	dl.Image(dodge.AssetObstacle, 792, 8, 16, 16, core.ColorDefault)

	s := core.NewScreen(80, 24)
	Rasterize(dl, s)

	for _, p := range [][2]int{{39, 21}, {40, 21}, {39, 22}, {40, 22}} {
		c := s.GetCell(p[0], p[1])
		if c.Rune != playerGlyph || c.Color != playerColor {
			t.Errorf("cell %v = %q %s, want player", p, c.Rune, c.Color.Hex())
		}
	}
	if c := s.GetCell(41, 21); c.Rune == playerGlyph {
		t.Error("player drawn outside its box")
	}

	for _, p := range [][2]int{{78, 0}, {79, 0}} {
		if c := s.GetCell(p[0], p[1]); c.Rune != obstacleGlyph {
			t.Errorf("cell %v = %q, want obstacle", p, c.Rune)
		}
	}
}

func TestRasterizeTintOverridesColour(t *testing.T) {
	dl := draw.NewList(800, 600)
	dl.Image(dodge.AssetPlayer, 400, 300, 17, 17, core.ColorRed)

	s := core.NewScreen(80, 24)
	Rasterize(dl, s)

	if c := s.GetCell(40, 12); c.Color != core.ColorRed {
		t.Errorf("tinted player colour = %s, want #ff0000", c.Color.Hex())
	}
}

func TestRasterizeTinyBodyStillVisible(t *testing.T) {
	dl := draw.NewList(800, 600)
	dl.Image(dodge.AssetObstacle, 405, 305, 1, 1, core.ColorDefault)

	s := core.NewScreen(20, 10)
	Rasterize(dl, s)

	if !strings.ContainsRune(s.String(), obstacleGlyph) {
		t.Error("sub-cell body not drawn")
	}
}

func TestRasterizeBackgroundIsStable(t *testing.T) {
	dl := draw.NewList(800, 600)
	dl.Image(dodge.AssetBackground, 400, 300, 800, 600, core.ColorDefault)

	a := core.NewScreen(80, 24)
	b := core.NewScreen(80, 24)
	Rasterize(dl, a)
	Rasterize(dl, b)

	if a.String() != b.String() {
		t.Error("starfield differs between frames")
	}
	if strings.TrimSpace(a.String()) == "" {
		t.Error("starfield is empty")
	}
}

func TestToWorld(t *testing.T) {
	hotspots := []Hotspot{{Cells: core.NewRect(35, 12, 10, 1), X: 400, Y: 300}}

	x, y := ToWorld(44, 12, 80, 24, 800, 600, hotspots)
	if x != 400 || y != 300 {
		t.Errorf("hotspot cell maps to (%v, %v), want (400, 300)", x, y)
	}

	x, y = ToWorld(0, 0, 80, 24, 800, 600, hotspots)
	if x != 5 || y != 12.5 {
		t.Errorf("cell (0,0) maps to (%v, %v), want (5, 12.5)", x, y)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "hi", core.ColorYellow)
	s.DrawText(0, 1, "there", core.ColorDefault)

	out := RenderScreen(s)
	if !strings.Contains(out, "hi") || !strings.Contains(out, "there") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen rows = %d, want 2", strings.Count(out, "\n")+1)
	}
}
