// Package scene holds the contract every screen implements (title, level
// select, levels, game over, credits) and the services they share.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. The game loop runs only the current
// scene; a scene hands over by returning its successor from Update.
type Scene interface {
	// Update advances the screen by dt seconds. It returns the next scene, or
	// nil to stay. An error ends the game; ebiten.Termination ends it cleanly.
	Update(dt float64) (next Scene, err error)

	// Draw renders the screen.
	Draw(screen *ebiten.Image)

	// OnEnter runs each time the screen becomes current.
	OnEnter()

	// OnExit runs when the screen is replaced or the game shuts down. Levels
	// free their world and write recordings here.
	OnExit()
}
