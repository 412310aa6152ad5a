// Package game runs the window loop: it drives the active screen and swaps
// screens when one hands over to the next.
package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/critterquest/internal/application/scene"
)

// Game implements ebiten.Game on top of a chain of scenes.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	logger  *log.Logger
}

// New creates a Game showing first. Its OnEnter runs immediately.
func New(first scene.Scene, screenW, screenH int, logger *log.Logger) *Game {
	g := &Game{
		current: first,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
		logger:  logger,
	}
	g.current.OnEnter()
	g.logger.Debug("scene entered", "scene", sceneName(first))
	return g
}

// Update advances the current scene one tick and switches to the scene it
// returns. An error from the scene ends the game. After Shutdown it reports
// ebiten.Termination.
func (g *Game) Update() error {
	if g.current == nil {
		return ebiten.Termination
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	if next == nil {
		return nil
	}

	g.logger.Debug("scene change", "from", sceneName(g.current), "to", sceneName(next))
	g.current.OnExit()
	g.current = next
	g.current.OnEnter()
	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.current != nil {
		g.current.Draw(screen)
	}
}

// Layout keeps the logical screen size fixed; ebiten scales it to the window.
func (g *Game) Layout(int, int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the seconds passed to each scene update. Non-positive values
// are ignored.
func (g *Game) SetDT(dt float64) {
	if dt > 0 {
		g.dt = dt
	}
}

// Current returns the running scene, or nil after Shutdown.
func (g *Game) Current() scene.Scene {
	return g.current
}

// Shutdown exits the running scene so it can flush recordings and free the
// level. Call it once after ebiten.RunGame returns.
func (g *Game) Shutdown() {
	if g.current == nil {
		return
	}
	g.current.OnExit()
	g.logger.Debug("scene exited", "scene", sceneName(g.current))
	g.current = nil
}

func sceneName(s scene.Scene) string {
	return fmt.Sprintf("%T", s)
}
