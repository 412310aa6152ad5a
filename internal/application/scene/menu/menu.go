// Package menu provides the in-game menu opened with ESC while a level runs.
package menu

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/critterquest/internal/application/system"
	"github.com/younwookim/critterquest/internal/application/ui"
	"github.com/younwookim/critterquest/internal/infrastructure/sound"
)

// Action is what the level should do after a menu update.
type Action int

const (
	ActionNone Action = iota
	ActionResume
	ActionExitToLevelSelect
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionResume:
		return "Resume"
	case ActionExitToLevelSelect:
		return "ExitToLevelSelect"
	default:
		return "Unknown"
	}
}

const (
	labelAudioOn  = "(a) Audio: Enabled"
	labelAudioOff = "(a) Audio: Disabled"
	labelResume   = "(esc) Return to Game"
	labelExit     = "(l) Exit to Level Select"
)

// Menu pauses the level and offers audio, resume and exit.
type Menu struct {
	input   *system.InputSystem
	pointer ui.Pointer
	sound   *sound.Manager
	width   float64
	height  float64

	Audio  *ui.TextButton
	Resume *ui.TextButton
	Exit   *ui.TextButton

	action Action
}

// New creates the menu for a screen of the given size.
func New(input *system.InputSystem, pointer ui.Pointer, snd *sound.Manager, width, height float64) *Menu {
	m := &Menu{input: input, pointer: pointer, sound: snd, width: width, height: height}
	m.Audio = ui.NewTextButton(width*0.5, height*0.45, "", true, ui.ColorGreen, ui.ColorRed, m.ToggleAudio)
	m.Resume = ui.NewTextButton(width*0.5, height*0.50, labelResume, true, ui.ColorGreen, ui.ColorRed, func() { m.action = ActionResume })
	m.Exit = ui.NewTextButton(width*0.5, height*0.55, labelExit, true, ui.ColorGreen, ui.ColorRed, func() { m.action = ActionExitToLevelSelect })
	m.refresh()
	return m
}

func (m *Menu) refresh() {
	if m.sound.Muted() {
		m.Audio.Text = labelAudioOff
	} else {
		m.Audio.Text = labelAudioOn
	}
}

// ToggleAudio mutes or unmutes every sound.
func (m *Menu) ToggleAudio() {
	m.sound.SetMuted(!m.sound.Muted())
	m.refresh()
}

// Update handles the shortcuts and buttons of one frame.
func (m *Menu) Update() Action {
	m.action = ActionNone
	m.refresh()

	for _, b := range []*ui.TextButton{m.Audio, m.Resume, m.Exit} {
		b.Update(m.pointer)
	}

	switch {
	case m.input.JustPressed(ebiten.KeyEscape):
		m.action = ActionResume
	case m.input.JustPressed(ebiten.KeyA):
		m.ToggleAudio()
	case m.input.JustPressed(ebiten.KeyL):
		m.action = ActionExitToLevelSelect
	}
	return m.action
}

// Draw shades the level and draws the menu over it.
func (m *Menu) Draw(screen *ebiten.Image) {
	ui.DrawOverlay(screen)
	ui.Label{Text: "In-Game Menu", X: m.width / 2, Y: m.height * 0.2, Scale: ui.ScaleHeading, Color: ui.ColorWhite, Stroke: true}.Draw(screen)
	m.Audio.Draw(screen)
	m.Resume.Draw(screen)
	m.Exit.Draw(screen)
}
