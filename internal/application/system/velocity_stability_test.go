package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestVelocityStabilityWhenIdle tests that a resting body neither drifts nor jitters
func TestVelocityStabilityWhenIdle(t *testing.T) {
	s, w := newTestPhysics()
	body := addBody(w, 88, 104)
	body.SetDrag(1000, 0)
	body.SetMaxVelocity(300, 800)

	stepN(s, 5)
	startX, startY := body.X(), body.Y()

	for i := 0; i < 600; i++ {
		s.Step(testDT)
		assert.Equal(t, 0.0, body.VelocityX(), "frame %d", i)
		assert.True(t, body.Blocked().Down, "frame %d", i)
	}

	assert.InDelta(t, startX, body.X(), 1e-9)
	assert.InDelta(t, startY, body.Y(), 1e-6)
}
