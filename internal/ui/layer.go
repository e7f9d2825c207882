package ui

import (
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/draw"
)

// Layer is the widget set of one scene. It routes input to buttons, draws
// widgets in insertion order and releases every subscription on teardown.
type Layer struct {
	labels  []*Label
	buttons []*Button
	order   []func(*draw.List)
}

// NewLayer creates an empty layer.
func NewLayer() *Layer {
	return &Layer{}
}

// AddLabel creates a label and adds it to the layer.
func (l *Layer) AddLabel(x, y float64, text string, size float64, c core.Color) *Label {
	lbl := NewLabel(x, y, text, size, c)
	l.labels = append(l.labels, lbl)
	l.order = append(l.order, lbl.Draw)
	return lbl
}

// AddButton creates an interactive label centred at (x, y) and adds it to the layer.
func (l *Layer) AddButton(x, y float64, text string, size float64, c core.Color) *Button {
	b := NewButton(x, y, text, size, c)
	l.buttons = append(l.buttons, b)
	l.order = append(l.order, b.Draw)
	return b
}

// Buttons returns the layer's buttons in insertion order.
func (l *Layer) Buttons() []*Button {
	return l.buttons
}

// Focused returns the newest live button, which keyboard activation targets.
func (l *Layer) Focused() *Button {
	for i := len(l.buttons) - 1; i >= 0; i-- {
		b := l.buttons[i]
		if !b.released && !b.Hidden {
			return b
		}
	}
	return nil
}

// HandleInput dispatches pointer state to every button and turns the
// Confirm action into a PointerDown on the focused button.
func (l *Layer) HandleInput(in core.InputFrame) {
	// Snapshot: a handler may add buttons or release the layer
	buttons := append([]*Button(nil), l.buttons...)
	for _, b := range buttons {
		b.pointer(in.Pointer)
	}

	if in.Has(core.ActionConfirm) {
		if b := l.Focused(); b != nil {
			b.Emit(PointerDown)
		}
	}
}

// Draw appends every visible widget to the display list.
func (l *Layer) Draw(dl *draw.List) {
	for _, fn := range l.order {
		fn(dl)
	}
}

// Release drops every button subscription and forgets all widgets.
func (l *Layer) Release() {
	for _, b := range l.buttons {
		b.Release()
	}
	l.labels = nil
	l.buttons = nil
	l.order = nil
}
