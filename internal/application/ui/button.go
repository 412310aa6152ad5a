package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Button colours.
var (
	ColorHover  color.Color = ColorCyan
	ColorActive color.Color = ColorWhite
)

// ButtonState is the interaction state of a TextButton.
type ButtonState int

const (
	ButtonRest ButtonState = iota
	ButtonHover
	ButtonActive
)

// TextButton is a clickable label. Its rest colour depends on whether it is
// unlocked; the callback fires when the mouse is released over it.
type TextButton struct {
	Label
	Unlocked      bool
	UnlockedColor color.Color
	LockedColor   color.Color
	OnClick       func()

	state ButtonState
}

// NewTextButton creates a centred button at (x, y).
func NewTextButton(x, y float64, label string, unlocked bool, unlockedColor, lockedColor color.Color, onClick func()) *TextButton {
	return &TextButton{
		Label:         Label{Text: label, X: x, Y: y, Scale: ScaleBody, Align: AlignCenter},
		Unlocked:      unlocked,
		UnlockedColor: unlockedColor,
		LockedColor:   lockedColor,
		OnClick:       onClick,
	}
}

// State returns the current interaction state.
func (b *TextButton) State() ButtonState { return b.state }

// Contains reports whether the point lies on the button.
func (b *TextButton) Contains(px, py int) bool {
	x, y, w, h := b.Bounds()
	fx, fy := float64(px), float64(py)
	return fx >= x && fx < x+w && fy >= y && fy < y+h
}

// Update moves the button between rest, hover and active and reports whether
// it was clicked this frame.
func (b *TextButton) Update(p Pointer) bool {
	x, y := p.Position()
	if !b.Contains(x, y) {
		b.state = ButtonRest
		return false
	}

	if p.Pressed() {
		b.state = ButtonActive
		return false
	}

	clicked := b.state == ButtonActive
	b.state = ButtonHover
	if clicked && b.OnClick != nil {
		b.OnClick()
	}
	return clicked
}

// Color returns the colour for the current state.
func (b *TextButton) Color() color.Color {
	switch b.state {
	case ButtonHover:
		return ColorHover
	case ButtonActive:
		return ColorActive
	}
	if b.Unlocked {
		return b.UnlockedColor
	}
	return b.LockedColor
}

// Draw renders the button in its state colour.
func (b *TextButton) Draw(dst *ebiten.Image) {
	l := b.Label
	l.Color = b.Color()
	l.Draw(dst)
}
