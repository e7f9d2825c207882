package tui

import (
	"math"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/draw"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

// Glyphs and colours for textured images.
var (
	playerGlyph   = '●'
	obstacleGlyph = '■'

	playerColor   = core.ColorWhite
	obstacleColor = core.RGB(0xffa500)
)

// Hotspot links the cells a text command was rasterised to with the centre of
// its box in world coordinates. Pointer events on those cells are reported at
// that point, so text stays clickable however coarse the grid is.
type Hotspot struct {
	Cells core.Rect
	X, Y  float64
}

// Rasterize draws the display list into dst, scaling the world onto the whole
// screen. Returns the hotspots of every text command in draw order.
func Rasterize(dl *draw.List, dst *core.Screen) []Hotspot {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || dl.Width <= 0 || dl.Height <= 0 {
		return nil
	}
	sx := float64(dst.Width()) / dl.Width
	sy := float64(dst.Height()) / dl.Height

	var hotspots []Hotspot
	for _, c := range dl.Commands() {
		switch c.Kind {
		case draw.KindImage:
			rasterImage(c, dst, sx, sy)
		case draw.KindText:
			hotspots = append(hotspots, rasterText(c, dst, sx, sy))
		}
	}
	return hotspots
}

func rasterImage(c draw.Command, dst *core.Screen, sx, sy float64) {
	switch c.Key {
	case dodge.AssetBackground:
		starfield(dst)
		return
	case dodge.AssetPlayer:
		fillBox(dst, c, sx, sy, playerGlyph, tinted(c.Tint, playerColor))
	default:
		fillBox(dst, c, sx, sy, obstacleGlyph, tinted(c.Tint, obstacleColor))
	}
}

func tinted(tint, base core.Color) core.Color {
	if tint.IsDefault() {
		return base
	}
	return tint
}

// fillBox covers every cell the image's box touches, and at least the cell
// holding its centre.
func fillBox(dst *core.Screen, c draw.Command, sx, sy float64, glyph rune, col core.Color) {
	box := core.Box{CX: c.X, CY: c.Y, W: c.W, H: c.H}
	x0 := int(math.Floor(box.Left() * sx))
	x1 := int(math.Ceil(box.Right()*sx)) - 1
	y0 := int(math.Floor(box.Top() * sy))
	y1 := int(math.Ceil(box.Bottom()*sy)) - 1

	if x1 < x0 || y1 < y0 {
		x0 = int(math.Floor(c.X * sx))
		y0 = int(math.Floor(c.Y * sy))
		x1, y1 = x0, y0
	}

	// Keep bodies touching the far bounds visible.
	x0 = core.Clamp(x0, 0, dst.Width()-1)
	x1 = core.Clamp(x1, 0, dst.Width()-1)
	y0 = core.Clamp(y0, 0, dst.Height()-1)
	y1 = core.Clamp(y1, 0, dst.Height()-1)

	dst.DrawRect(core.NewRect(x0, y0, x1-x0+1, y1-y0+1), glyph, col)
}

// starfield is the terminal stand-in for the background image: a fixed
// scatter of dim stars.
func starfield(dst *core.Screen) {
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			h := uint32(x)*73856093 ^ uint32(y)*19349663
			switch h % 61 {
			case 0:
				dst.SetCell(x, y, '·', core.ColorStar)
			case 1:
				dst.SetCell(x, y, '✦', core.ColorNavy)
			}
		}
	}
}

// rasterText writes a text command on a single row. The row is the one
// holding the vertical centre of the text box; horizontally the origin
// anchors the string the same way it anchors the world text.
func rasterText(c draw.Command, dst *core.Screen, sx, sy float64) Hotspot {
	box := draw.TextBox(c.Text, c.X, c.Y, c.Size, c.OriginX, c.OriginY)
	n := utf8.RuneCountInString(c.Text)

	col := int(math.Round(c.X*sx - c.OriginX*float64(n)))
	row := int(math.Floor(box.CY * sy))
	row = core.Clamp(row, 0, dst.Height()-1)

	dst.DrawText(col, row, c.Text, c.Color)
	return Hotspot{Cells: core.NewRect(col, row, n, 1), X: box.CX, Y: box.CY}
}

// ToWorld maps a screen cell to world coordinates. Cells covered by a
// hotspot map to the hotspot's point; later hotspots win, as they are drawn
// on top.
func ToWorld(cx, cy int, screenW, screenH int, worldW, worldH float64, hotspots []Hotspot) (float64, float64) {
	for i := len(hotspots) - 1; i >= 0; i-- {
		if hotspots[i].Cells.Contains(cx, cy) {
			return hotspots[i].X, hotspots[i].Y
		}
	}
	if screenW <= 0 || screenH <= 0 {
		return 0, 0
	}
	x := (float64(cx) + 0.5) * worldW / float64(screenW)
	y := (float64(cy) + 0.5) * worldH / float64(screenH)
	return x, y
}

var (
	stylesMu sync.Mutex
	styles   = map[core.Color]lipgloss.Style{}
)

// styleFor returns the lipgloss style for a colour. SSH sessions render
// concurrently, hence the lock.
func styleFor(c core.Color) lipgloss.Style {
	stylesMu.Lock()
	defer stylesMu.Unlock()

	if s, ok := styles[c]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if !c.IsDefault() {
		s = s.Foreground(lipgloss.Color(c.Hex()))
	}
	styles[c] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
