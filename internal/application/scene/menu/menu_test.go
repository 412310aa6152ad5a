package menu

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/critterquest/internal/application/system"
	"github.com/younwookim/critterquest/internal/application/ui"
	"github.com/younwookim/critterquest/internal/infrastructure/config"
	"github.com/younwookim/critterquest/internal/infrastructure/sound"
)

func newTestMenu() (*Menu, *system.StaticKeys, *ui.StaticPointer, *sound.Manager) {
	keys := system.NewStaticKeys()
	pointer := &ui.StaticPointer{X: -100, Y: -100}
	snd := sound.NewSilent(config.DefaultSettings().Audio, log.New(io.Discard))
	return New(system.NewInputSystem(keys), pointer, snd, 640, 480), keys, pointer, snd
}

func TestMenu_Shortcuts(t *testing.T) {
	m, keys, _, snd := newTestMenu()
	assert.Equal(t, ActionNone, m.Update())
	assert.Equal(t, "(a) Audio: Enabled", m.Audio.Text)

	keys.Press(ebiten.KeyA)
	assert.Equal(t, ActionNone, m.Update())
	assert.True(t, snd.Muted())
	assert.Equal(t, "(a) Audio: Disabled", m.Audio.Text)
	keys.Release(ebiten.KeyA)

	keys.Press(ebiten.KeyEscape)
	assert.Equal(t, ActionResume, m.Update())
	keys.Release(ebiten.KeyEscape)

	keys.Press(ebiten.KeyL)
	assert.Equal(t, ActionExitToLevelSelect, m.Update())
}

func TestMenu_Buttons(t *testing.T) {
	m, _, pointer, snd := newTestMenu()

	click := func(b *ui.TextButton) Action {
		pointer.X, pointer.Y = int(b.X), int(b.Y)
		pointer.Down = true
		m.Update()
		pointer.Down = false
		return m.Update()
	}

	assert.Equal(t, ActionResume, click(m.Resume))
	assert.Equal(t, ActionExitToLevelSelect, click(m.Exit))

	click(m.Audio)
	assert.True(t, snd.Muted())
	click(m.Audio)
	assert.False(t, snd.Muted())
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "Resume", ActionResume.String())
	assert.Equal(t, "Unknown", Action(42).String())
}
