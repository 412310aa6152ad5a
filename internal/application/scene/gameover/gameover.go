// Package gameover provides the screen shown when the last life is lost.
package gameover

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/critterquest/internal/application/scene"
	"github.com/younwookim/critterquest/internal/application/ui"
)

// GameOver waits for Enter, then wipes the session and the save.
type GameOver struct {
	env        *scene.Env
	background *ui.ParallaxBackground
}

// New creates the game over screen.
func New(env *scene.Env) *GameOver {
	return &GameOver{env: env, background: env.Background()}
}

// Update implements scene.Scene.
func (g *GameOver) Update(_ float64) (scene.Scene, error) {
	g.background.Update()
	if !g.env.Input.JustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter) {
		return nil, nil
	}

	g.env.Session.Reset()
	if err := g.env.Saves.EraseSaveGame(); err != nil {
		g.env.Logger.Warn("failed to erase save", "err", err)
	}
	g.env.Logger.Info("game over, progress erased")
	return g.env.Router.Title(), nil
}

// Draw implements scene.Scene.
func (g *GameOver) Draw(screen *ebiten.Image) {
	w, h := g.env.ScreenSize()
	g.background.Draw(screen)
	ui.DrawOverlay(screen)

	ui.Label{Text: "Game Over", X: w / 2, Y: h / 2, Scale: ui.ScaleHeading, Color: ui.ColorWhite, Stroke: true}.Draw(screen)
	ui.Label{Text: "<Press Enter>", X: w / 2, Y: h/2 + 50, Scale: ui.ScaleLarge, Color: ui.ColorWhite, Stroke: true}.Draw(screen)
}

func (g *GameOver) OnEnter() {}
func (g *GameOver) OnExit()  {}
