package hud

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/critterquest/internal/application/state"
	"github.com/younwookim/critterquest/internal/infrastructure/config"
)

func newSession() *state.Session {
	s := state.NewSession(config.DefaultSettings().Game)
	s.Start()
	return s
}

func TestHUD_Texts(t *testing.T) {
	s := newSession()
	h := New(s, 180, 640, 480)

	assert.Equal(t, "Time: 180", h.Timer.Text)
	assert.Equal(t, "Kit x 5", h.Lives.Text)
	assert.Equal(t, "0 x Gem", h.Gems.Text)
	assert.Empty(t, h.DoubleJump.Text)
	assert.Empty(t, h.SpeedBoots.Text)

	s.Gems = 12
	s.Lives = 3
	s.HasJumpPowerup = true
	h.Update(10.9)

	assert.Equal(t, "Time: 170", h.Timer.Text, "elapsed time is floored")
	assert.Equal(t, "Kit x 3", h.Lives.Text)
	assert.Equal(t, "12 x Gem", h.Gems.Text)
	assert.Equal(t, "Powerup: Double Jump", h.DoubleJump.Text)
	assert.Empty(t, h.SpeedBoots.Text)

	s.HasSpeedPowerup = true
	h.Update(11)
	assert.Equal(t, "Powerup: Speed Boots", h.SpeedBoots.Text)
}

func TestHUD_Layout(t *testing.T) {
	h := New(newSession(), 180, 640, 480)

	assert.Equal(t, 320.0, h.Timer.X)
	assert.Equal(t, 64.0, h.Lives.X)
	assert.Equal(t, 576.0, h.Gems.X)
	assert.Equal(t, 24.0, h.Gems.Y)
	assert.Equal(t, 432.0, h.DoubleJump.Y)
	assert.Equal(t, 408.0, h.SpeedBoots.Y)
}
