package ui

import "github.com/vovakirdan/tui-dodge/internal/core"

// Event is a pointer interaction on a button.
type Event int

const (
	PointerOver Event = iota // Pointer entered the button
	PointerOut               // Pointer left the button
	PointerDown              // Primary button pressed over the button
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case PointerOver:
		return "pointerover"
	case PointerOut:
		return "pointerout"
	case PointerDown:
		return "pointerdown"
	default:
		return "unknown"
	}
}

// Handler reacts to a button event.
type Handler func(b *Button)

// Subscription identifies one bound handler.
type Subscription struct {
	button *Button
	event  Event
	id     int
}

// Unsubscribe removes the handler. Safe to call more than once.
func (s Subscription) Unsubscribe() {
	if s.button == nil {
		return
	}
	subs := s.button.handlers[s.event]
	for i, h := range subs {
		if h.id == s.id {
			s.button.handlers[s.event] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

type boundHandler struct {
	id int
	fn Handler
}

// Button is an interactive label.
type Button struct {
	*Label
	handlers map[Event][]boundHandler
	nextID   int
	hovered  bool
	released bool
}

// NewButton creates an interactive label centred at (x, y).
func NewButton(x, y float64, text string, size float64, c core.Color) *Button {
	return &Button{
		Label:    NewLabel(x, y, text, size, c).SetOrigin(0.5, 0.5),
		handlers: make(map[Event][]boundHandler),
	}
}

// On binds a handler to an event and returns its subscription.
// Binding on a released button is a no-op.
func (b *Button) On(evt Event, fn Handler) Subscription {
	if b.released {
		return Subscription{}
	}
	b.nextID++
	b.handlers[evt] = append(b.handlers[evt], boundHandler{id: b.nextID, fn: fn})
	return Subscription{button: b, event: evt, id: b.nextID}
}

// Emit runs every handler bound to evt, in binding order.
func (b *Button) Emit(evt Event) {
	if b.released {
		return
	}
	// Copy so handlers may unsubscribe while running
	subs := append([]boundHandler(nil), b.handlers[evt]...)
	for _, h := range subs {
		h.fn(b)
	}
}

// Handlers returns how many handlers are bound to evt.
func (b *Button) Handlers(evt Event) int {
	return len(b.handlers[evt])
}

// Hovered reports whether the pointer is currently over the button.
func (b *Button) Hovered() bool {
	return b.hovered
}

// Release drops every handler. A released button ignores all events.
func (b *Button) Release() {
	b.handlers = make(map[Event][]boundHandler)
	b.released = true
	b.hovered = false
}

// Released reports whether Release has been called.
func (b *Button) Released() bool {
	return b.released
}

// HoverStyle binds the usual hover recolouring and an activation handler.
func (b *Button) HoverStyle(normal, highlight core.Color, activate func()) {
	b.On(PointerOver, func(b *Button) { b.SetColor(highlight) })
	b.On(PointerOut, func(b *Button) { b.SetColor(normal) })
	b.On(PointerDown, func(*Button) { activate() })
}

// pointer updates hover state from the pointer and fires the resulting events.
func (b *Button) pointer(p core.Pointer) {
	if b.released || b.Hidden {
		return
	}
	inside := p.Present && b.Bounds().Contains(p.X, p.Y)

	if inside && !b.hovered {
		b.hovered = true
		b.Emit(PointerOver)
	} else if !inside && b.hovered {
		b.hovered = false
		b.Emit(PointerOut)
	}

	if inside && p.Pressed {
		b.Emit(PointerDown)
	}
}
