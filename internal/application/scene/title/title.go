// Package title provides the start screen.
package title

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/critterquest/internal/application/scene"
	"github.com/younwookim/critterquest/internal/application/ui"
)

// Title shows the game name over the scrolling background and waits for Enter.
type Title struct {
	env        *scene.Env
	background *ui.ParallaxBackground
}

// New creates the title screen.
func New(env *scene.Env) *Title {
	return &Title{env: env, background: env.Background()}
}

// Update implements scene.Scene.
func (t *Title) Update(_ float64) (scene.Scene, error) {
	t.background.Update()

	input := t.env.Input
	if input.JustPressed(ebiten.KeyR) {
		t.env.ResetProgress()
	}
	if input.JustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter) {
		return t.env.Router.LevelSelect(), nil
	}
	return nil, nil
}

// Draw implements scene.Scene.
func (t *Title) Draw(screen *ebiten.Image) {
	w, h := t.env.ScreenSize()
	t.background.Draw(screen)
	ui.DrawOverlay(screen)

	ui.Label{Text: "Critter Quest", X: w / 2, Y: h / 2, Scale: ui.ScaleHeading, Color: ui.ColorWhite, Stroke: true}.Draw(screen)
	ui.Label{Text: "<Press Enter>", X: w / 2, Y: h/2 + 50, Scale: ui.ScaleLarge, Color: ui.ColorWhite, Stroke: true}.Draw(screen)
}

// OnEnter starts the music loop.
func (t *Title) OnEnter() {
	t.env.Sound.PlayMusic()
}

func (t *Title) OnExit() {}
