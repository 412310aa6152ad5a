// Package entity holds the gameplay wrappers of Critter Quest. Each wrapper
// owns one engine sprite and exposes Update and Destroy.
package entity

import (
	"image/color"
	"time"

	"github.com/younwookim/critterquest/internal/ecs"
)

// Texture keys of the sprite atlases.
const (
	TextureAtlas   = "atlas"
	TextureProps   = "props_atlas"
	TextureEnemies = "additional_enemies_atlas"
)

// Sound effect names.
const (
	SoundJump = "jump"
	SoundCoin = "coin"
)

// Controls holds the gameplay input of one frame
type Controls struct {
	Left     bool
	Right    bool
	Jump     bool
	Crouch   bool
	Run      bool
	Interact bool
}

// Level is what entities see of the running level.
type Level interface {
	World() *ecs.World
	Controls() Controls
	Powerups() (doubleJump, speedBoots bool)
	PlaySound(name string)
	ScreenSize() (width, height float64)
	Player() *Player
	Crates() []*Crate
	AddEnemy(e Enemy)
	BossSpawned()
	BossDefeated()
}

// Enemy is an entity owned by the enemy manager.
type Enemy interface {
	Sprite() *ecs.Sprite
	Update()
	Destroy()
	Dead() bool
}

// Fallback colours used when atlases are not loaded.
var (
	colorPlayer      = color.RGBA{R: 0xf0, G: 0x90, B: 0x30, A: 0xff}
	colorEnemy       = color.RGBA{R: 0xc0, G: 0x30, B: 0x30, A: 0xff}
	colorBoss        = color.RGBA{R: 0x90, G: 0x10, B: 0x40, A: 0xff}
	colorGem         = color.RGBA{R: 0xff, G: 0x60, B: 0xd0, A: 0xff}
	colorPowerup     = color.RGBA{R: 0xe0, G: 0x20, B: 0x50, A: 0xff}
	colorProp        = color.RGBA{R: 0x9a, G: 0x6a, B: 0x3a, A: 0xff}
	colorPlatform    = color.RGBA{R: 0x70, G: 0x70, B: 0x80, A: 0xff}
	colorExit        = color.RGBA{R: 0xff, G: 0xe0, B: 0x40, A: 0xff}
	colorSwitch      = color.RGBA{R: 0x40, G: 0xa0, B: 0xff, A: 0xff}
	tintSpeed        = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	tintSpringboard  = color.RGBA{R: 0x00, G: 0xe5, B: 0xff, A: 0xff}
	tintToggleHidden = color.RGBA{R: 0xef, G: 0xef, B: 0xef, A: 0xff}
)

// Animation keys.
const (
	AnimEnemyDie = "enemy-die"
)

// registerEnemyDie creates the shared enemy death animation.
func registerEnemyDie(w *ecs.World) {
	w.Anims.Create(ecs.Animation{
		Key:       AnimEnemyDie,
		Texture:   TextureAtlas,
		Frames:    ecs.GenerateFrameNames("enemy-death-", ".png", 1, 6),
		FrameRate: 10,
		Repeat:    0,
	})
}

// flipper turns a walker around when it hits a widget tile and ignores
// further widget hits until the cooldown ends.
type flipper struct {
	clock    *ecs.Clock
	cooldown time.Duration
	ready    bool
	timer    *ecs.TimerEvent
}

func newFlipper(clock *ecs.Clock, cooldown time.Duration) flipper {
	return flipper{clock: clock, cooldown: cooldown, ready: true}
}

// flip reports whether the sprite should turn around now. The sprite returns
// to normal after the cooldown unless it started dying meanwhile.
func (f *flipper) flip(s *ecs.Sprite) bool {
	if !f.ready || s.State() != ecs.StateFlipDirection {
		return false
	}
	f.ready = false
	f.timer = f.clock.DelayedCall(f.cooldown, func() {
		f.ready = true
		if s.Active() && s.State() == ecs.StateFlipDirection {
			s.SetState(ecs.StateNormal)
		}
	})
	return true
}

func (f *flipper) stop() {
	if f.timer != nil {
		f.timer.Remove()
	}
}
