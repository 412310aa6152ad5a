package ecs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock_DelayedCall(t *testing.T) {
	c := NewClock()
	fired := 0
	ev := c.DelayedCall(500*time.Millisecond, func() { fired++ })

	c.Update(0.25)
	assert.Equal(t, 0, fired)
	assert.InDelta(t, 0.25, ev.ElapsedSeconds(), 1e-9)

	c.Update(0.25)
	assert.Equal(t, 1, fired)
	assert.True(t, ev.Done())
	assert.InDelta(t, 0.5, ev.ElapsedSeconds(), 1e-9)

	c.Update(1)
	assert.Equal(t, 1, fired, "one-shot fires once")
	assert.Equal(t, 0, c.Pending())
}

func TestClock_LoopingEvent(t *testing.T) {
	c := NewClock()
	fired := 0
	c.AddEvent(time.Second, true, func() { fired++ })

	for i := 0; i < 10; i++ {
		c.Update(0.5)
	}
	assert.Equal(t, 5, fired)
	assert.Equal(t, 1, c.Pending())
	assert.InDelta(t, 5.0, c.Now(), 1e-9)
}

func TestClock_Remove(t *testing.T) {
	c := NewClock()
	fired := false
	ev := c.DelayedCall(time.Second, func() { fired = true })

	ev.Remove()
	c.Update(2)

	assert.False(t, fired)
	assert.Equal(t, 0, c.Pending())
}

func TestClock_ScheduleFromCallback(t *testing.T) {
	c := NewClock()
	var order []string
	c.DelayedCall(100*time.Millisecond, func() {
		order = append(order, "first")
		c.DelayedCall(100*time.Millisecond, func() { order = append(order, "second") })
	})

	c.Update(0.1)
	assert.Equal(t, []string{"first"}, order)

	c.Update(0.1)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestClock_ClearFromCallback(t *testing.T) {
	c := NewClock()
	later := false
	c.DelayedCall(0, func() { c.Clear() })
	c.DelayedCall(0, func() { later = true })

	assert.NotPanics(t, func() { c.Update(0.1) })
	assert.False(t, later)
	assert.Equal(t, 0, c.Pending())
}
