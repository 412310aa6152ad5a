package entity

import (
	"github.com/younwookim/critterquest/internal/ecs"
)

// Collectable names as they appear in the level object layer.
const (
	NameGem             = "gem"
	NameExtraLife       = "extra-life"
	NameDoubleJump      = "double-jump-powerup"
	NameSpeedBoots      = "speed-boots-powerup"
	CollectedName       = "collected"
	AnimGemSpin         = "gem-spin"
	AnimCherryIdle      = "cherry-idle"
	labelDoubleJump     = "+Double Jump"
	labelSpeedBoots     = "+Speed Boots"
	powerupLabelOffsetY = 20
)

func registerCollectableAnims(w *ecs.World) {
	w.Anims.Create(ecs.Animation{Key: AnimGemSpin, Texture: TextureAtlas, Frames: ecs.GenerateFrameNames("gem-", ".png", 1, 5), FrameRate: 10, Repeat: -1})
	w.Anims.Create(ecs.Animation{Key: AnimCherryIdle, Texture: TextureAtlas, Frames: ecs.GenerateFrameNames("cherry-", ".png", 1, 7), FrameRate: 3, Repeat: -1})
}

// Collectable is an item the player picks up by touching it.
type Collectable struct {
	sprite *ecs.Sprite
	anim   string
	label  string
}

func newCollectable(level Level, name string, x, y float64, spec spriteSpec, anim, label string) *Collectable {
	w := level.World()
	registerCollectableAnims(w)
	c := &Collectable{anim: anim, label: label}
	fill := colorGem
	if label != "" || name == NameExtraLife {
		fill = colorPowerup
	}
	c.sprite = w.AddSprite(ecs.SpriteConfig{
		Name:    name,
		Kind:    ecs.KindCollectable,
		X:       x,
		Y:       y,
		Texture: spec.texture,
		Frame:   spec.frame,
		Width:   spec.w,
		Height:  spec.h,
		Fill:    fill,
	})
	c.sprite.Owner = c
	c.sprite.SetCollideWorld(false, false)
	c.sprite.SetAllowGravity(false)
	c.sprite.SetMaxVelocity(0, 0)
	if anim != "" {
		c.sprite.Play(anim, true)
	}
	return c
}

// NewGem creates a spinning gem.
func NewGem(level Level, x, y float64) *Collectable {
	return newCollectable(level, NameGem, x, y, spriteSpec{TextureAtlas, "gem-1.png", 15, 13}, AnimGemSpin, "")
}

// NewExtraLife creates a still player figure worth one life.
func NewExtraLife(level Level, x, y float64) *Collectable {
	return newCollectable(level, NameExtraLife, x, y, spriteSpec{TextureAtlas, "idle/player-idle-1.png", playerFrameW, playerFrameH}, "", "")
}

// NewDoubleJumpPowerup creates the double jump cherry.
func NewDoubleJumpPowerup(level Level, x, y float64) *Collectable {
	return newCollectable(level, NameDoubleJump, x, y, spriteSpec{TextureAtlas, "cherry-1.png", 21, 21}, AnimCherryIdle, labelDoubleJump)
}

// NewSpeedBootsPowerup creates the speed boots cherry.
func NewSpeedBootsPowerup(level Level, x, y float64) *Collectable {
	return newCollectable(level, NameSpeedBoots, x, y, spriteSpec{TextureAtlas, "cherry-1.png", 21, 21}, AnimCherryIdle, labelSpeedBoots)
}

func (c *Collectable) Sprite() *ecs.Sprite { return c.sprite }

// Label returns the caption drawn above a powerup, or empty.
func (c *Collectable) Label() string { return c.label }

// LabelPosition returns where the caption is centred.
func (c *Collectable) LabelPosition() (x, y float64) {
	return c.sprite.X(), c.sprite.Y() - powerupLabelOffsetY
}

// Collect marks the item as picked up. It reports false if it already was.
func (c *Collectable) Collect() bool {
	if c.Collected() {
		return false
	}
	c.sprite.SetName(CollectedName)
	return true
}

// Collected reports whether the item was picked up.
func (c *Collectable) Collected() bool {
	return c.sprite.Name() == CollectedName
}

func (c *Collectable) Destroy() {
	c.sprite.Destroy()
}
