package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/critterquest/internal/domain/entity"
)

// ControlSource supplies per-frame controls to a level.
type ControlSource interface {
	Controls() entity.Controls
}

// KeySource abstracts the keyboard so scenes can be driven without a window.
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
}

// EbitenKeys reads the real keyboard.
type EbitenKeys struct{}

func (EbitenKeys) IsKeyPressed(key ebiten.Key) bool     { return ebiten.IsKeyPressed(key) }
func (EbitenKeys) IsKeyJustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

// Key bindings
var (
	LeftKeys     = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	RightKeys    = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	JumpKeys     = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	CrouchKeys   = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
	RunKeys      = []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}
	InteractKeys = []ebiten.Key{ebiten.KeyE}
)

// InputSystem handles keyboard input
type InputSystem struct {
	keys KeySource
}

// NewInputSystem creates a new input system. A nil source reads the real keyboard.
func NewInputSystem(keys KeySource) *InputSystem {
	if keys == nil {
		keys = EbitenKeys{}
	}
	return &InputSystem{keys: keys}
}

// Controls reads the current gameplay controls
func (s *InputSystem) Controls() entity.Controls {
	return entity.Controls{
		Left:     s.Pressed(LeftKeys...),
		Right:    s.Pressed(RightKeys...),
		Jump:     s.Pressed(JumpKeys...),
		Crouch:   s.Pressed(CrouchKeys...),
		Run:      s.Pressed(RunKeys...),
		Interact: s.Pressed(InteractKeys...),
	}
}

// Pressed reports whether any of keys is held.
func (s *InputSystem) Pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if s.keys.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// JustPressed reports whether any of keys went down this frame.
func (s *InputSystem) JustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if s.keys.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// StaticKeys is a KeySource with fixed key sets, used by tests and headless runs.
type StaticKeys struct {
	Held map[ebiten.Key]bool
	Just map[ebiten.Key]bool
}

// NewStaticKeys creates an empty StaticKeys.
func NewStaticKeys() *StaticKeys {
	return &StaticKeys{Held: map[ebiten.Key]bool{}, Just: map[ebiten.Key]bool{}}
}

func (k *StaticKeys) IsKeyPressed(key ebiten.Key) bool     { return k.Held[key] }
func (k *StaticKeys) IsKeyJustPressed(key ebiten.Key) bool { return k.Just[key] }

// Press marks key as held and just pressed.
func (k *StaticKeys) Press(key ebiten.Key) {
	k.Held[key] = true
	k.Just[key] = true
}

// Release lets go of key.
func (k *StaticKeys) Release(key ebiten.Key) {
	delete(k.Held, key)
	delete(k.Just, key)
}

// EndFrame clears the just-pressed set.
func (k *StaticKeys) EndFrame() {
	k.Just = map[ebiten.Key]bool{}
}
