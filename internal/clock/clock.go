// Package clock provides scene time and delayed/repeating callbacks driven by
// the frame loop. Nothing here reads the wall clock: time only moves when the
// owner calls Advance, which keeps simulations deterministic.
package clock

import "time"

// Event is a scheduled callback.
type Event struct {
	delay    time.Duration
	loop     bool
	callback func()
	due      time.Duration // Scene time of the next firing
	fired    int
	removed  bool
}

// Remove cancels the event. Safe to call from inside its own callback.
func (e *Event) Remove() {
	e.removed = true
}

// Removed reports whether the event was cancelled or has finished.
func (e *Event) Removed() bool {
	return e.removed
}

// Fired returns how many times the callback has run.
func (e *Event) Fired() int {
	return e.fired
}

// Clock tracks scene time and owns the scene's timers.
type Clock struct {
	now    time.Duration
	events []*Event
}

// New creates a clock at time zero.
func New() *Clock {
	return &Clock{}
}

// Now returns the elapsed scene time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// AddEvent schedules cb to run after delay, and every delay after that if loop
// is set. A non-positive delay on a looping event is rejected by returning an
// already-removed event so the caller never spins.
func (c *Clock) AddEvent(delay time.Duration, loop bool, cb func()) *Event {
	e := &Event{delay: delay, loop: loop, callback: cb, due: c.now + delay}
	if loop && delay <= 0 {
		e.removed = true
		return e
	}
	c.events = append(c.events, e)
	return e
}

// Advance moves scene time forward by dt and runs every callback that came due,
// in due order. A looping event fires once per elapsed period, so a long dt
// catches up instead of dropping ticks.
func (c *Clock) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := c.now + dt

	for {
		next := c.nextDue(target)
		if next == nil {
			break
		}
		c.now = next.due
		next.fired++
		if next.loop {
			next.due += next.delay
		} else {
			next.removed = true
		}
		next.callback()
	}

	c.now = target
	c.compact()
}

// nextDue returns the live event with the earliest due time not after target.
// Ties go to the event scheduled first.
func (c *Clock) nextDue(target time.Duration) *Event {
	var best *Event
	for _, e := range c.events {
		if e.removed || e.due > target {
			continue
		}
		if best == nil || e.due < best.due {
			best = e
		}
	}
	return best
}

// compact drops removed events.
func (c *Clock) compact() {
	live := c.events[:0]
	for _, e := range c.events {
		if !e.removed {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(c.events); i++ {
		c.events[i] = nil
	}
	c.events = live
}

// Pending returns the number of live events.
func (c *Clock) Pending() int {
	n := 0
	for _, e := range c.events {
		if !e.removed {
			n++
		}
	}
	return n
}

// Clear cancels every event. Called on scene teardown.
func (c *Clock) Clear() {
	for _, e := range c.events {
		e.removed = true
	}
	c.events = nil
}
