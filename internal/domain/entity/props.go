package entity

import (
	"strings"
	"time"

	"github.com/younwookim/critterquest/internal/ecs"
)

const (
	crateNudge       = 50
	platformCooldown = 1500 * time.Millisecond
	springboardName  = "springboard"
)

// Crate is a pushable box. Dropping one on a snail kills it.
type Crate struct {
	sprite *ecs.Sprite
}

// NewCrate creates a crate centred on (x, y).
func NewCrate(level Level, x, y float64) *Crate {
	c := &Crate{}
	c.sprite = level.World().AddSprite(ecs.SpriteConfig{
		Name:    "crate",
		Kind:    ecs.KindProp,
		X:       x,
		Y:       y,
		Texture: TextureProps,
		Frame:   "crate.png",
		Width:   32,
		Height:  32,
		Fill:    colorProp,
	})
	c.sprite.Owner = c
	c.sprite.SetDrag(500, 0)
	c.sprite.SetImmovable(true)
	return c
}

func (c *Crate) Sprite() *ecs.Sprite { return c.sprite }

// Move slides the crate away from whatever pushed it this frame.
func (c *Crate) Move() {
	t := c.sprite.Touching()
	switch {
	case t.Left:
		c.sprite.SetVelocityX(crateNudge)
	case t.Right:
		c.sprite.SetVelocityX(-crateNudge)
	}
}

func (c *Crate) Update() { c.Move() }

func (c *Crate) Destroy() { c.sprite.Destroy() }

// MovingPlatform glides sideways and turns around on widget tiles, carrying a
// player that stands on it.
type MovingPlatform struct {
	level     Level
	sprite    *ecs.Sprite
	direction float64
	turn      flipper
}

// NewMovingPlatform creates a platform moving left.
func NewMovingPlatform(level Level, x, y float64, name string) *MovingPlatform {
	w := level.World()
	m := &MovingPlatform{level: level, direction: -1}
	m.sprite = w.AddSprite(ecs.SpriteConfig{
		Name:    name,
		Kind:    ecs.KindProp,
		X:       x,
		Y:       y,
		Texture: TextureProps,
		Frame:   "platform-long.png",
		Width:   64,
		Height:  16,
		Fill:    colorPlatform,
	})
	m.sprite.Owner = m
	m.sprite.SetImmovable(true)
	m.sprite.SetAllowGravity(false)
	m.turn = newFlipper(w.Clock, platformCooldown)
	return m
}

func (m *MovingPlatform) Sprite() *ecs.Sprite { return m.sprite }

// Direction returns the signed speed in pixels per frame.
func (m *MovingPlatform) Direction() float64 { return m.direction }

// Carry moves the player with the platform when it is standing on top.
func (m *MovingPlatform) Carry(player *Player) {
	if player == nil {
		return
	}
	ps := player.Sprite()
	if m.sprite.Touching().Up && ps.Touching().Down {
		ps.Move(m.direction, 0)
		player.SetOnStandableObject()
	}
}

func (m *MovingPlatform) Update() {
	m.sprite.Move(m.direction, 0)
	if m.turn.flip(m.sprite) {
		m.direction = -m.direction
	}
}

func (m *MovingPlatform) Destroy() {
	m.turn.stop()
	m.sprite.Destroy()
}

// FrogSpringboard is a tame frog that launches the player upwards.
type FrogSpringboard struct {
	sprite *ecs.Sprite
}

// NewFrogSpringboard creates a springboard centred on (x, y).
func NewFrogSpringboard(level Level, x, y float64) *FrogSpringboard {
	w := level.World()
	registerEnemyAnims(w)
	f := &FrogSpringboard{}
	f.sprite = w.AddSprite(ecs.SpriteConfig{
		Name:    springboardName,
		Kind:    ecs.KindProp,
		X:       x,
		Y:       y,
		Texture: TextureAtlas,
		Frame:   "idle/frog-idle-1.png",
		Width:   35,
		Height:  32,
		Fill:    tintSpringboard,
	})
	f.sprite.Owner = f
	f.sprite.SetTint(tintSpringboard)
	f.sprite.SetDrag(1000, 0)
	f.sprite.SetMaxVelocity(300, 1000)
	f.sprite.Play(AnimFrogIdle, true)
	return f
}

func (f *FrogSpringboard) Sprite() *ecs.Sprite { return f.sprite }

// Launch bounces a player that landed on top of the springboard. It reports
// whether the player was launched.
func (f *FrogSpringboard) Launch(player *Player) bool {
	ps := player.Sprite()
	if ps.State() != ecs.StateNormal {
		return false
	}
	if !f.sprite.Touching().Up || !ps.Touching().Down {
		return false
	}
	player.Bounce(player.Stats().SpringVelocity)
	return true
}

func (f *FrogSpringboard) Update() {
	f.sprite.Play(AnimFrogIdle, true)
}

func (f *FrogSpringboard) Destroy() { f.sprite.Destroy() }

// ToggleTile is a solid block that a switch with the same id turns on and off.
type ToggleTile struct {
	sprite   *ecs.Sprite
	switchID string
	enabled  bool
}

// NewToggleTile creates a block named like "ToggleTile_<id>".
func NewToggleTile(level Level, x, y float64, name string) *ToggleTile {
	t := &ToggleTile{switchID: parseSwitchID(name), enabled: true}
	t.sprite = level.World().AddSprite(ecs.SpriteConfig{
		Name:    name,
		Kind:    ecs.KindProp,
		X:       x,
		Y:       y,
		Texture: TextureProps,
		Frame:   "block.png",
		Width:   16,
		Height:  16,
		Fill:    colorSwitch,
	})
	t.sprite.Owner = t
	t.sprite.SetImmovable(true)
	t.sprite.SetAllowGravity(false)
	t.sprite.SetCollideWorld(false, false)
	return t
}

func (t *ToggleTile) Sprite() *ecs.Sprite { return t.sprite }
func (t *ToggleTile) SwitchID() string    { return t.switchID }
func (t *ToggleTile) Enabled() bool       { return t.enabled }

// Enable makes the block solid and opaque.
func (t *ToggleTile) Enable() {
	t.enabled = true
	t.sprite.EnableBody(true)
	t.sprite.ClearTint()
	t.sprite.SetAlpha(1)
}

// Disable lets bodies pass and fades the block.
func (t *ToggleTile) Disable() {
	t.enabled = false
	t.sprite.EnableBody(false)
	t.sprite.SetTint(tintToggleHidden)
	t.sprite.SetAlpha(0.5)
}

// Toggle flips the block between solid and passable.
func (t *ToggleTile) Toggle() {
	if t.enabled {
		t.Disable()
	} else {
		t.Enable()
	}
}

func (t *ToggleTile) Destroy() { t.sprite.Destroy() }

// parseSwitchID returns the part of an object name after the first
// underscore, so "Switch_2" and "ToggleTile_2" share id "2".
func parseSwitchID(name string) string {
	parts := strings.Split(name, "_")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
