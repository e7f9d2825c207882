// Package ui holds the scene widgets: text labels and interactive text
// buttons with an explicit pointer-event subscription table.
package ui

import (
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/draw"
)

// Label is a piece of text placed in the world.
type Label struct {
	Text    string
	X, Y    float64
	Size    float64
	Color   core.Color
	OriginX float64
	OriginY float64
	Hidden  bool
}

// NewLabel creates a label anchored at its top-left corner.
func NewLabel(x, y float64, text string, size float64, c core.Color) *Label {
	return &Label{Text: text, X: x, Y: y, Size: size, Color: c}
}

// SetOrigin sets the anchor point, as fractions of the label's size.
func (l *Label) SetOrigin(ox, oy float64) *Label {
	l.OriginX, l.OriginY = ox, oy
	return l
}

// SetText replaces the label's text.
func (l *Label) SetText(text string) {
	l.Text = text
}

// SetColor changes the label's fill colour.
func (l *Label) SetColor(c core.Color) {
	l.Color = c
}

// Bounds returns the box the label covers on screen.
func (l *Label) Bounds() core.Box {
	return draw.TextBox(l.Text, l.X, l.Y, l.Size, l.OriginX, l.OriginY)
}

// Draw appends the label to the display list.
func (l *Label) Draw(dl *draw.List) {
	if l.Hidden {
		return
	}
	dl.Text(l.Text, l.X, l.Y, l.Size, l.Color, l.OriginX, l.OriginY)
}
