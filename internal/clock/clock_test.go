package clock

import (
	"testing"
	"time"
)

func TestLoopingEventFiresOncePerPeriod(t *testing.T) {
	c := New()
	count := 0
	c.AddEvent(time.Second, true, func() { count++ })

	tick := time.Second / 60
	for i := 0; i < 59; i++ {
		c.Advance(tick)
	}
	if count != 0 {
		t.Fatalf("fired %d times before one period elapsed", count)
	}

	// Advance the remainder exactly to the one-second mark
	c.Advance(time.Second - c.Now())
	if count != 1 {
		t.Fatalf("count = %d after 1s, expected 1", count)
	}

	c.Advance(4 * time.Second)
	if count != 5 {
		t.Errorf("count = %d after 5s, expected 5", count)
	}
}

func TestOneShotEvent(t *testing.T) {
	c := New()
	count := 0
	e := c.AddEvent(500*time.Millisecond, false, func() { count++ })

	c.Advance(2 * time.Second)

	if count != 1 {
		t.Errorf("one-shot fired %d times", count)
	}
	if !e.Removed() {
		t.Error("one-shot should be removed after firing")
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", c.Pending())
	}
}

func TestRemoveInsideCallback(t *testing.T) {
	c := New()
	count := 0
	var e *Event
	e = c.AddEvent(100*time.Millisecond, true, func() {
		count++
		if count == 3 {
			e.Remove()
		}
	})

	c.Advance(time.Second)

	if count != 3 {
		t.Errorf("count = %d, expected 3", count)
	}
}

func TestEventsFireInDueOrder(t *testing.T) {
	c := New()
	var order []string
	c.AddEvent(300*time.Millisecond, false, func() { order = append(order, "c") })
	c.AddEvent(100*time.Millisecond, false, func() { order = append(order, "a") })
	c.AddEvent(200*time.Millisecond, false, func() { order = append(order, "b") })

	c.Advance(time.Second)

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("order = %v, expected [a b c]", order)
	}
}

func TestNowInsideCallback(t *testing.T) {
	c := New()
	var seen []time.Duration
	c.AddEvent(250*time.Millisecond, true, func() { seen = append(seen, c.Now()) })

	c.Advance(time.Second)

	want := []time.Duration{250 * time.Millisecond, 500 * time.Millisecond, 750 * time.Millisecond, time.Second}
	if len(seen) != len(want) {
		t.Fatalf("seen %v, expected %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("firing %d at %v, expected %v", i, seen[i], want[i])
		}
	}
	if c.Now() != time.Second {
		t.Errorf("Now() = %v after Advance, expected 1s", c.Now())
	}
}

func TestClearCancelsEverything(t *testing.T) {
	c := New()
	count := 0
	e := c.AddEvent(time.Second, true, func() { count++ })

	c.Clear()
	c.Advance(10 * time.Second)

	if count != 0 {
		t.Errorf("cleared event fired %d times", count)
	}
	if !e.Removed() {
		t.Error("Clear should mark events removed")
	}
}

func TestZeroDelayLoopRejected(t *testing.T) {
	c := New()
	e := c.AddEvent(0, true, func() { t.Fatal("zero-delay loop must not run") })

	c.Advance(time.Second)

	if !e.Removed() {
		t.Error("zero-delay loop should come back removed")
	}
}
