// Package hud draws the level overlay: time left, lives, gems and powerups.
package hud

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/critterquest/internal/application/state"
	"github.com/younwookim/critterquest/internal/application/ui"
)

const (
	textDoubleJump = "Powerup: Double Jump"
	textSpeedBoots = "Powerup: Speed Boots"
)

// HUD is redrawn over the level every frame.
type HUD struct {
	session *state.Session
	maxTime int
	width   float64
	height  float64

	Timer      ui.Label
	Lives      ui.Label
	Gems       ui.Label
	DoubleJump ui.Label
	SpeedBoots ui.Label
}

// New creates a HUD for a level lasting maxTime seconds.
func New(session *state.Session, maxTime int, width, height float64) *HUD {
	h := &HUD{session: session, maxTime: maxTime, width: width, height: height}
	h.Timer = ui.Label{X: width * 0.5, Y: height * 0.05, Color: ui.ColorLightGreen, Stroke: true}
	h.Lives = ui.Label{X: width * 0.1, Y: height * 0.05, Color: ui.ColorWhite, Stroke: true}
	h.Gems = ui.Label{X: width * 0.9, Y: height * 0.05, Color: ui.ColorPink, Stroke: true}
	h.DoubleJump = ui.Label{X: width * 0.8, Y: height * 0.9, Color: ui.ColorLightBlue, Stroke: true}
	h.SpeedBoots = ui.Label{X: width * 0.8, Y: height * 0.85, Color: ui.ColorOrange, Stroke: true}
	h.Update(0)
	return h
}

// Remaining returns the whole seconds left after elapsed seconds.
func (h *HUD) Remaining(elapsed float64) int {
	return h.maxTime - int(math.Floor(elapsed))
}

// Update refreshes every text from the session.
func (h *HUD) Update(elapsed float64) {
	s := h.session
	h.Timer.Text = fmt.Sprintf("Time: %d", h.Remaining(elapsed))
	h.Lives.Text = fmt.Sprintf("Kit x %d", s.Lives)
	h.Gems.Text = fmt.Sprintf("%d x Gem", s.Gems)

	h.DoubleJump.Text = ""
	if s.HasJumpPowerup {
		h.DoubleJump.Text = textDoubleJump
	}
	h.SpeedBoots.Text = ""
	if s.HasSpeedPowerup {
		h.SpeedBoots.Text = textSpeedBoots
	}
}

// Draw renders the overlay.
func (h *HUD) Draw(screen *ebiten.Image) {
	for _, l := range []ui.Label{h.Timer, h.Lives, h.Gems, h.DoubleJump, h.SpeedBoots} {
		l.Draw(screen)
	}
}
