package entity

import (
	"image/color"
	"time"

	"github.com/younwookim/critterquest/internal/ecs"
)

// Enemy animation keys.
const (
	AnimFrogIdle    = "frog-idle"
	AnimOpossumWalk = "opossum-walk"
	AnimCrocIdle    = "croc-idle"
	AnimBeeIdle     = "bee-idle"
	AnimEagleAttack = "eagle-attack"
	AnimSnailIdle   = "snail-idle"
)

const (
	frogJumpInterval = 2750 * time.Millisecond
	frogJumpVelocity = 500
)

func registerEnemyAnims(w *ecs.World) {
	registerEnemyDie(w)
	for _, a := range []ecs.Animation{
		{Key: AnimFrogIdle, Texture: TextureAtlas, Frames: ecs.GenerateFrameNames("idle/frog-idle-", ".png", 1, 4), FrameRate: 3, Repeat: -1},
		{Key: AnimOpossumWalk, Texture: TextureAtlas, Frames: ecs.GenerateFrameNames("opossum-", ".png", 1, 4), FrameRate: 10, Repeat: -1},
		{Key: AnimCrocIdle, Texture: TextureEnemies, Frames: ecs.GenerateFrameNames("gator-", ".png", 1, 4), FrameRate: 10, Repeat: -1},
		{Key: AnimBeeIdle, Texture: TextureEnemies, Frames: ecs.GenerateFrameNames("bee-", ".png", 1, 8), FrameRate: 10, Repeat: -1},
		{Key: AnimEagleAttack, Texture: TextureAtlas, Frames: ecs.GenerateFrameNames("eagle/eagle-attack-", ".png", 1, 4), FrameRate: 10, Repeat: -1},
		{Key: AnimSnailIdle, Texture: TextureEnemies, Frames: ecs.GenerateFrameNames("slug-", ".png", 1, 4), FrameRate: 1, Repeat: -1},
	} {
		w.Anims.Create(a)
	}
}

// mortal marks its owner dead once the death animation finishes.
type mortal struct {
	sprite *ecs.Sprite
	dead   bool
}

func (m *mortal) watchDeath() {
	m.sprite.OnAnimationComplete = func(key string) {
		if key == AnimEnemyDie {
			m.dead = true
		}
	}
}

func (m *mortal) Sprite() *ecs.Sprite { return m.sprite }
func (m *mortal) Dead() bool          { return m.dead }

func (m *mortal) die() {
	m.sprite.Play(AnimEnemyDie, true)
}

type spriteSpec struct {
	texture, frame string
	w, h           float64
}

func newEnemySprite(level Level, name string, x, y float64, spec spriteSpec, fill color.RGBA) *ecs.Sprite {
	w := level.World()
	registerEnemyAnims(w)
	s := w.AddSprite(ecs.SpriteConfig{
		Name:    name,
		Kind:    ecs.KindEnemy,
		X:       x,
		Y:       y,
		Texture: spec.texture,
		Frame:   spec.frame,
		Width:   spec.w,
		Height:  spec.h,
		Fill:    fill,
	})
	s.SetDrag(1000, 0)
	s.SetMaxVelocity(300, 1000)
	return s
}

// Frog jumps in place every few seconds.
type Frog struct {
	mortal
	level     Level
	jumpTimer *ecs.TimerEvent
}

// NewFrog creates a frog centred on (x, y).
func NewFrog(level Level, x, y float64, name string) *Frog {
	f := &Frog{level: level}
	f.sprite = newEnemySprite(level, name, x, y, spriteSpec{TextureAtlas, "idle/frog-idle-1.png", 35, 32}, colorEnemy)
	f.sprite.Owner = f
	f.watchDeath()
	f.jumpTimer = level.World().Clock.AddEvent(frogJumpInterval, true, f.jump)
	return f
}

func (f *Frog) jump() {
	if f.sprite.Active() && f.sprite.Blocked().Down {
		f.sprite.SetVelocityY(-frogJumpVelocity)
	}
}

func (f *Frog) Update() {
	if f.sprite.State() == ecs.StateDying {
		f.die()
		return
	}
	if f.sprite.Blocked().Down {
		f.sprite.Play(AnimFrogIdle, true)
		return
	}
	if f.sprite.VelocityY() < 0 {
		f.sprite.SetTexture(TextureAtlas, "jump/frog-jump-1.png")
	} else {
		f.sprite.SetTexture(TextureAtlas, "jump/frog-jump-2.png")
	}
}

func (f *Frog) Destroy() {
	f.jumpTimer.Remove()
	f.sprite.Destroy()
}

// Walker moves a fixed number of pixels per frame and turns around on widget
// tiles. Opossums, crocs, bees and eagles are walkers.
type Walker struct {
	mortal
	anim      string
	direction float64
	vertical  bool
	mirror    bool
	turn      flipper
}

func newWalker(level Level, name string, x, y float64, spec spriteSpec, anim string, direction float64, cooldown time.Duration) *Walker {
	wk := &Walker{anim: anim, direction: direction, mirror: true}
	wk.sprite = newEnemySprite(level, name, x, y, spec, colorEnemy)
	wk.sprite.Owner = wk
	wk.turn = newFlipper(level.World().Clock, cooldown)
	wk.watchDeath()
	return wk
}

// NewOpossum creates an opossum walking left at 1 px per frame.
func NewOpossum(level Level, x, y float64, name string) *Walker {
	return newWalker(level, name, x, y, spriteSpec{TextureAtlas, "opossum-1.png", 36, 28}, AnimOpossumWalk, -1, 1500*time.Millisecond)
}

// NewCroc creates a croc walking left at 2 px per frame.
func NewCroc(level Level, x, y float64, name string) *Walker {
	return newWalker(level, name, x, y, spriteSpec{TextureEnemies, "gator-1.png", 40, 26}, AnimCrocIdle, -2, 1000*time.Millisecond)
}

// NewBee creates a bee hovering up and down.
func NewBee(level Level, x, y float64, name string) *Walker {
	wk := newWalker(level, name, x, y, spriteSpec{TextureEnemies, "bee-1.png", 37, 39}, AnimBeeIdle, -1, 1500*time.Millisecond)
	wk.vertical = true
	wk.mirror = false
	wk.sprite.SetAllowGravity(false)
	return wk
}

// NewEagle creates an eagle flying left and right.
func NewEagle(level Level, x, y float64, name string) *Walker {
	wk := newWalker(level, name, x, y, spriteSpec{TextureAtlas, "eagle/eagle-attack-1.png", 40, 41}, AnimEagleAttack, -1, 1500*time.Millisecond)
	wk.sprite.SetAllowGravity(false)
	return wk
}

// Direction returns the signed speed in pixels per frame.
func (wk *Walker) Direction() float64 { return wk.direction }

func (wk *Walker) Update() {
	s := wk.sprite
	if s.State() == ecs.StateDying {
		wk.die()
		return
	}

	if wk.vertical {
		s.Move(0, wk.direction)
	} else {
		s.Move(wk.direction, 0)
	}

	if wk.turn.flip(s) {
		if wk.mirror {
			s.SetFlipX(!s.FlipX())
		}
		wk.direction = -wk.direction
	}

	s.Play(wk.anim, true)
}

func (wk *Walker) Destroy() {
	wk.turn.stop()
	wk.sprite.Destroy()
}

// Snail sits still and can be stood on. Only a falling crate kills it.
type Snail struct {
	mortal
	level Level
}

// NewSnail creates a snail centred on (x, y).
func NewSnail(level Level, x, y float64, name string) *Snail {
	sn := &Snail{level: level}
	sn.sprite = newEnemySprite(level, name, x, y, spriteSpec{TextureEnemies, "slug-1.png", 32, 22}, colorEnemy)
	sn.sprite.Owner = sn
	sn.sprite.SetImmovable(true)
	sn.sprite.SetDrag(0, 0)
	sn.watchDeath()
	sn.sprite.Play(AnimSnailIdle, true)
	return sn
}

func (sn *Snail) Update() {
	switch sn.sprite.State() {
	case ecs.StateDying:
		sn.die()
	case ecs.StateNormal:
		w := sn.level.World()
		for _, c := range sn.level.Crates() {
			w.Overlap(c.Sprite(), sn.sprite, func(crate, snail *ecs.Sprite) {
				if snail.Touching().Up && crate.Touching().Down {
					snail.SetState(ecs.StateDying)
					snail.EnableBody(false)
				}
			})
		}
	}
}

func (sn *Snail) Destroy() {
	sn.sprite.Destroy()
}
