// Package draw defines the display list scenes emit every frame.
// Coordinates are world units; frontends decide how to put them on screen.
package draw

import "github.com/vovakirdan/tui-dodge/internal/core"

// Kind identifies a drawing command.
type Kind int

const (
	KindImage Kind = iota // A loaded texture, centred on (X, Y)
	KindText              // A text label anchored by its origin
)

// Command is a single drawing instruction.
type Command struct {
	Kind Kind

	// Image
	Key  string     // Asset key ("background", "player", "obstacle")
	W, H float64    // Display size in world units
	Tint core.Color // Multiplied into the texture; default means untinted

	// Text
	Text    string
	Size    float64    // Font size in world units (pixels)
	Color   core.Color // Text colour
	OriginX float64    // 0 = left, 0.5 = centre, 1 = right
	OriginY float64    // 0 = top, 0.5 = middle, 1 = bottom

	X, Y float64
}

// List is an ordered display list. Later commands draw over earlier ones.
type List struct {
	Width, Height float64 // World size
	cmds          []Command
}

// NewList creates an empty display list for a world of the given size.
func NewList(width, height float64) *List {
	return &List{Width: width, Height: height, cmds: make([]Command, 0, 32)}
}

// Reset empties the list, keeping its storage.
func (l *List) Reset() {
	l.cmds = l.cmds[:0]
}

// Image appends a textured quad centred at (x, y).
func (l *List) Image(key string, x, y, w, h float64, tint core.Color) {
	l.cmds = append(l.cmds, Command{Kind: KindImage, Key: key, X: x, Y: y, W: w, H: h, Tint: tint})
}

// Text appends a text label.
func (l *List) Text(text string, x, y, size float64, c core.Color, originX, originY float64) {
	l.cmds = append(l.cmds, Command{
		Kind: KindText, Text: text, X: x, Y: y, Size: size, Color: c,
		OriginX: originX, OriginY: originY,
	})
}

// Commands returns the commands in draw order.
func (l *List) Commands() []Command {
	return l.cmds
}

// Texts returns the text of every text command, in draw order.
// Handy for tests and for plain-text frontends.
func (l *List) Texts() []string {
	var out []string
	for _, c := range l.cmds {
		if c.Kind == KindText {
			out = append(out, c.Text)
		}
	}
	return out
}

// EstimateTextWidth returns the approximate rendered width of text in world units.
// Glyphs are assumed to be roughly 0.6em wide, close enough for hit testing.
func EstimateTextWidth(text string, size float64) float64 {
	n := 0
	for range text {
		n++
	}
	return float64(n) * size * 0.6
}

// TextBox returns the box covered by a text label.
func TextBox(text string, x, y, size, originX, originY float64) core.Box {
	w := EstimateTextWidth(text, size)
	h := size
	left := x - w*originX
	top := y - h*originY
	return core.Box{CX: left + w/2, CY: top + h/2, W: w, H: h}
}
