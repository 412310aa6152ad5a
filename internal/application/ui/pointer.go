package ui

import "github.com/hajimehoshi/ebiten/v2"

// Pointer abstracts the mouse so buttons can be driven without a window.
type Pointer interface {
	Position() (x, y int)
	Pressed() bool
}

// EbitenPointer reads the real mouse.
type EbitenPointer struct{}

func (EbitenPointer) Position() (int, int) { return ebiten.CursorPosition() }
func (EbitenPointer) Pressed() bool        { return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) }

// StaticPointer is a Pointer with a fixed state, used by tests and replays.
type StaticPointer struct {
	X, Y int
	Down bool
}

func (p *StaticPointer) Position() (int, int) { return p.X, p.Y }
func (p *StaticPointer) Pressed() bool        { return p.Down }
