package entity

import (
	"time"

	"github.com/younwookim/critterquest/internal/ecs"
)

const (
	// AnimDoorIdle is the exit's glow.
	AnimDoorIdle   = "door-idle"
	switchDebounce = 250 * time.Millisecond
)

// Switch is a crank that toggles every ToggleTile sharing its id.
type Switch struct {
	sprite   *ecs.Sprite
	clock    *ecs.Clock
	switchID string
	tiles    []*ToggleTile
	on       bool
	locked   bool
}

// NewSwitch creates a crank named like "Switch_<id>".
func NewSwitch(level Level, x, y float64, name string) *Switch {
	w := level.World()
	sw := &Switch{clock: w.Clock, switchID: parseSwitchID(name)}
	sw.sprite = w.AddSprite(ecs.SpriteConfig{
		Name:    name,
		Kind:    ecs.KindProp,
		X:       x,
		Y:       y,
		Texture: TextureProps,
		Frame:   "crank-up.png",
		Width:   16,
		Height:  16,
		Fill:    colorSwitch,
	})
	sw.sprite.Owner = sw
	sw.sprite.SetImmovable(true)
	return sw
}

func (sw *Switch) Sprite() *ecs.Sprite { return sw.sprite }
func (sw *Switch) SwitchID() string    { return sw.switchID }
func (sw *Switch) On() bool            { return sw.on }

// Link attaches the tiles with a matching id and returns how many matched.
func (sw *Switch) Link(tiles []*ToggleTile) int {
	sw.tiles = sw.tiles[:0]
	for _, t := range tiles {
		if t.SwitchID() == sw.switchID {
			sw.tiles = append(sw.tiles, t)
		}
	}
	return len(sw.tiles)
}

// ToggleAllTiles flips the crank and its tiles. Calls within the debounce
// window are ignored; it reports whether the toggle happened.
func (sw *Switch) ToggleAllTiles() bool {
	if sw.locked {
		return false
	}
	sw.locked = true
	sw.clock.DelayedCall(switchDebounce, func() { sw.locked = false })

	sw.on = !sw.on
	if sw.on {
		sw.sprite.SetTexture(TextureProps, "crank-down.png")
	} else {
		sw.sprite.SetTexture(TextureProps, "crank-up.png")
	}
	for _, t := range sw.tiles {
		t.Toggle()
	}
	return true
}

// OnPlayerOverlap toggles the tiles while the player holds interact.
func (sw *Switch) OnPlayerOverlap(c Controls) bool {
	if !c.Interact {
		return false
	}
	return sw.ToggleAllTiles()
}

func (sw *Switch) Update() {}

func (sw *Switch) Destroy() { sw.sprite.Destroy() }

// Exit is the level door. Touching it ends the level.
type Exit struct {
	sprite *ecs.Sprite
}

// NewExit creates the door centred on (x, y).
func NewExit(level Level, x, y float64) *Exit {
	w := level.World()
	w.Anims.Create(ecs.Animation{
		Key:       AnimDoorIdle,
		Texture:   TextureAtlas,
		Frames:    ecs.GenerateFrameNames("item-feedback-", ".png", 1, 4),
		FrameRate: 10,
		Repeat:    -1,
	})
	e := &Exit{}
	e.sprite = w.AddSprite(ecs.SpriteConfig{
		Name:    "exit",
		Kind:    ecs.KindProp,
		X:       x,
		Y:       y,
		Texture: TextureAtlas,
		Frame:   "item-feedback-1.png",
		Width:   32,
		Height:  32,
		Fill:    colorExit,
	})
	e.sprite.Owner = e
	e.sprite.SetDrag(1000, 0)
	e.sprite.SetMaxVelocity(300, 1000)
	return e
}

func (e *Exit) Sprite() *ecs.Sprite { return e.sprite }

// Touch marks the exit as reached by a living player.
func (e *Exit) Touch(player *Player) bool {
	if e.sprite.State() != ecs.StateNormal || player.Sprite().State() != ecs.StateNormal {
		return false
	}
	e.sprite.SetState(ecs.StateExitTouched)
	return true
}

// Touched reports whether the player reached the exit.
func (e *Exit) Touched() bool {
	return e.sprite.State() == ecs.StateExitTouched
}

func (e *Exit) Update() {
	if e.sprite.State() == ecs.StateNormal {
		e.sprite.Play(AnimDoorIdle, true)
	}
}

func (e *Exit) Destroy() { e.sprite.Destroy() }
