package ui

import (
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/draw"
)

func pointerAt(x, y float64, pressed bool) core.InputFrame {
	in := core.NewInputFrame()
	in.Pointer = core.Pointer{X: x, Y: y, Present: true, Pressed: pressed}
	return in
}

func TestButtonHoverAndActivate(t *testing.T) {
	layer := NewLayer()
	btn := layer.AddButton(400, 300, "Start Game", 32, core.ColorWhite)

	activated := 0
	btn.HoverStyle(core.ColorWhite, core.ColorYellow, func() { activated++ })

	// Pointer away from the button
	layer.HandleInput(pointerAt(10, 10, false))
	if btn.Hovered() || btn.Color != core.ColorWhite {
		t.Fatal("button should not be hovered")
	}

	// Pointer over
	layer.HandleInput(pointerAt(400, 300, false))
	if !btn.Hovered() {
		t.Fatal("button should be hovered")
	}
	if btn.Color != core.ColorYellow {
		t.Errorf("hover colour = %v, expected yellow", btn.Color)
	}

	// Staying over does not re-fire
	layer.HandleInput(pointerAt(401, 301, false))
	if activated != 0 {
		t.Fatal("hover must not activate")
	}

	// Click
	layer.HandleInput(pointerAt(400, 300, true))
	if activated != 1 {
		t.Errorf("activated = %d, expected 1", activated)
	}

	// Pointer out
	layer.HandleInput(pointerAt(10, 10, false))
	if btn.Hovered() || btn.Color != core.ColorWhite {
		t.Error("pointer out should revert colour")
	}
}

func TestClickOutsideDoesNothing(t *testing.T) {
	layer := NewLayer()
	btn := layer.AddButton(400, 300, "Restart", 32, core.ColorWhite)
	activated := 0
	btn.On(PointerDown, func(*Button) { activated++ })

	layer.HandleInput(pointerAt(100, 100, true))

	if activated != 0 {
		t.Error("click outside the button must not activate it")
	}
}

func TestConfirmActivatesFocusedButton(t *testing.T) {
	layer := NewLayer()
	first := layer.AddButton(400, 300, "First", 32, core.ColorWhite)
	second := layer.AddButton(400, 400, "Second", 32, core.ColorWhite)

	var got []string
	first.On(PointerDown, func(*Button) { got = append(got, "first") })
	second.On(PointerDown, func(*Button) { got = append(got, "second") })

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	layer.HandleInput(in)

	if len(got) != 1 || got[0] != "second" {
		t.Errorf("activated %v, expected [second]", got)
	}
}

func TestSubscriptionTable(t *testing.T) {
	btn := NewButton(0, 0, "x", 10, core.ColorWhite)
	calls := 0
	sub := btn.On(PointerOver, func(*Button) { calls++ })
	btn.On(PointerOver, func(*Button) { calls += 10 })

	if btn.Handlers(PointerOver) != 2 {
		t.Fatalf("Handlers = %d, expected 2", btn.Handlers(PointerOver))
	}

	btn.Emit(PointerOver)
	if calls != 11 {
		t.Errorf("calls = %d, expected 11", calls)
	}

	sub.Unsubscribe()
	sub.Unsubscribe()
	btn.Emit(PointerOver)
	if calls != 21 {
		t.Errorf("calls = %d after unsubscribe, expected 21", calls)
	}
}

func TestReleaseDropsHandlers(t *testing.T) {
	layer := NewLayer()
	btn := layer.AddButton(400, 300, "Start Game", 32, core.ColorWhite)
	calls := 0
	btn.HoverStyle(core.ColorWhite, core.ColorYellow, func() { calls++ })

	layer.Release()

	if !btn.Released() {
		t.Fatal("button should be released")
	}
	for _, evt := range []Event{PointerOver, PointerOut, PointerDown} {
		if btn.Handlers(evt) != 0 {
			t.Errorf("%s still has %d handlers", evt, btn.Handlers(evt))
		}
	}

	btn.Emit(PointerDown)
	btn.On(PointerDown, func(*Button) { calls++ })
	btn.Emit(PointerDown)
	if calls != 0 {
		t.Errorf("released button fired %d handlers", calls)
	}
	if layer.Focused() != nil {
		t.Error("released layer has no focus")
	}
}

func TestLayerDrawOrder(t *testing.T) {
	layer := NewLayer()
	layer.AddLabel(16, 16, "Score: 0", 32, core.ColorWhite)
	layer.AddLabel(400, 300, "Game Over", 64, core.ColorWhite).SetOrigin(0.5, 0.5)
	layer.AddButton(400, 400, "Restart", 32, core.ColorWhite)

	dl := draw.NewList(800, 600)
	layer.Draw(dl)

	texts := dl.Texts()
	want := []string{"Score: 0", "Game Over", "Restart"}
	if len(texts) != len(want) {
		t.Fatalf("texts = %v, expected %v", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("text %d = %q, expected %q", i, texts[i], want[i])
		}
	}
}

func TestLabelBoundsRespectOrigin(t *testing.T) {
	centred := NewLabel(400, 300, "abcd", 10, core.ColorWhite).SetOrigin(0.5, 0.5)
	box := centred.Bounds()
	if box.CX != 400 || box.CY != 300 {
		t.Errorf("centred label box centre = (%v, %v), expected (400, 300)", box.CX, box.CY)
	}

	topLeft := NewLabel(16, 16, "abcd", 10, core.ColorWhite)
	box = topLeft.Bounds()
	if box.Left() != 16 || box.Top() != 16 {
		t.Errorf("top-left label starts at (%v, %v), expected (16, 16)", box.Left(), box.Top())
	}
}
