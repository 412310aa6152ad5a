package ecs

import "time"

// TimerEvent is a scheduled callback owned by a Clock.
type TimerEvent struct {
	delay   float64
	elapsed float64
	loop    bool
	fn      func()
	done    bool
}

// Remove cancels the event. Removing a finished event is a no-op.
func (e *TimerEvent) Remove() {
	e.done = true
}

// Done reports whether the event fired (non-looping) or was removed.
func (e *TimerEvent) Done() bool {
	return e.done
}

// ElapsedSeconds returns the time since the event started or last looped.
// A finished one-shot event reports its full delay.
func (e *TimerEvent) ElapsedSeconds() float64 {
	return e.elapsed
}

// Clock drives delayed and repeating callbacks from the scene's delta time.
type Clock struct {
	now    float64
	events []*TimerEvent
}

// NewClock creates an empty clock.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the seconds accumulated since the clock was created.
func (c *Clock) Now() float64 {
	return c.now
}

// DelayedCall runs fn once after d.
func (c *Clock) DelayedCall(d time.Duration, fn func()) *TimerEvent {
	return c.AddEvent(d, false, fn)
}

// AddEvent schedules fn after d, repeating every d when loop is set.
func (c *Clock) AddEvent(d time.Duration, loop bool, fn func()) *TimerEvent {
	e := &TimerEvent{delay: d.Seconds(), loop: loop, fn: fn}
	c.events = append(c.events, e)
	return e
}

// Update advances every pending event by dt seconds.
// Events scheduled from inside a callback start counting on the next update.
func (c *Clock) Update(dt float64) {
	c.now += dt

	n := len(c.events)
	for i := 0; i < n && i < len(c.events); i++ {
		e := c.events[i]
		if e.done {
			continue
		}
		e.elapsed += dt
		if e.elapsed < e.delay {
			continue
		}
		if e.loop {
			if e.delay > 0 {
				e.elapsed -= e.delay
			} else {
				e.elapsed = 0
			}
		} else {
			e.elapsed = e.delay
			e.done = true
		}
		if e.fn != nil {
			e.fn()
		}
	}

	live := c.events[:0]
	for _, e := range c.events {
		if !e.done {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(c.events); i++ {
		c.events[i] = nil
	}
	c.events = live
}

// Pending returns the number of events still scheduled.
func (c *Clock) Pending() int {
	return len(c.events)
}

// Clear cancels every event.
func (c *Clock) Clear() {
	for _, e := range c.events {
		e.done = true
	}
	c.events = nil
}
