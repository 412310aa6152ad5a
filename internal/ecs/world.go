// Package ecs provides the engine layer for Critter Quest: sprites with arcade
// bodies stored in a donburi world, a broad-phase resolv space, animations,
// timers and overlap resolution.
package ecs

import (
	"image/color"
	"math"
	"sort"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

const broadPhaseCell = 32

// SpriteConfig describes a sprite to create.
type SpriteConfig struct {
	Name    string
	Kind    Kind
	X, Y    float64
	Texture string
	Frame   string
	// Width and Height are the frame size; the body starts with the same size.
	Width, Height float64
	// Fill is drawn when the texture frame is not loaded.
	Fill color.RGBA
}

// World holds every sprite of a scene and the shared engine services.
type World struct {
	ecs   donburi.World
	space *resolv.Space

	sprites   map[donburi.Entity]*Sprite
	nextOrder int

	colliders []*pair
	overlaps  []*pair

	Width   float64
	Height  float64
	Gravity float64

	Clock *Clock
	Anims *Animations
}

// NewWorld creates an empty world of the given pixel size.
func NewWorld(width, height, gravity float64) *World {
	cw := int(math.Ceil(width/broadPhaseCell)) + 1
	ch := int(math.Ceil(height/broadPhaseCell)) + 1
	return &World{
		ecs:     donburi.NewWorld(),
		space:   resolv.NewSpace(cw*broadPhaseCell, ch*broadPhaseCell, broadPhaseCell, broadPhaseCell),
		sprites: make(map[donburi.Entity]*Sprite),
		Width:   width,
		Height:  height,
		Gravity: gravity,
		Clock:   NewClock(),
		Anims:   NewAnimations(),
	}
}

// AddSprite creates a sprite with an enabled, gravity-affected body.
func (w *World) AddSprite(cfg SpriteConfig) *Sprite {
	e := w.ecs.Create(SpriteComponent, BodyComponent, tagFor(cfg.Kind))
	entry := w.ecs.Entry(e)

	SpriteComponent.SetValue(entry, SpriteData{
		Order:   w.nextOrder,
		Name:    cfg.Name,
		State:   StateNormal,
		Texture: cfg.Texture,
		Frame:   cfg.Frame,
		X:       cfg.X,
		Y:       cfg.Y,
		FrameW:  cfg.Width,
		FrameH:  cfg.Height,
		Scale:   1,
		Tint:    White,
		Fill:    cfg.Fill,
		Alpha:   1,
		Visible: true,
	})
	BodyComponent.SetValue(entry, BodyData{
		Enable:         true,
		W:              cfg.Width,
		H:              cfg.Height,
		MaxVX:          defaultMaxVelocity,
		MaxVY:          defaultMaxVelocity,
		AllowGravity:   true,
		CollideWorld:   true,
		CheckCollision: AllFaces,
		PrevX:          cfg.X,
		PrevY:          cfg.Y,
	})
	w.nextOrder++

	s := &Sprite{world: w, entity: e, kind: cfg.Kind}
	r := s.Bounds()
	s.obj = resolv.NewObject(r.X, r.Y, r.W, r.H, cfg.Kind.String())
	s.obj.Data = s
	w.space.Add(s.obj)

	w.sprites[e] = s
	return s
}

func (w *World) remove(s *Sprite) {
	if s.obj != nil {
		w.space.Remove(s.obj)
		s.obj = nil
	}
	delete(w.sprites, s.entity)
	if w.ecs.Valid(s.entity) {
		w.ecs.Remove(s.entity)
	}
}

// Sprites returns the live sprites in creation order.
func (w *World) Sprites() []*Sprite {
	out := make([]*Sprite, 0, len(w.sprites))
	donburi.NewQuery(filter.Contains(SpriteComponent)).Each(w.ecs, func(entry *donburi.Entry) {
		if s, ok := w.sprites[entry.Entity()]; ok {
			out = append(out, s)
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Data().Order < out[j].Data().Order
	})
	return out
}

// Count returns the number of live sprites of the given kind.
func (w *World) Count(k Kind) int {
	return donburi.NewQuery(filter.Contains(tagFor(k))).Count(w.ecs)
}

// Clear destroys every sprite and registration and cancels all timers.
func (w *World) Clear() {
	for _, s := range w.Sprites() {
		s.Destroy()
	}
	w.colliders = nil
	w.overlaps = nil
	w.Clock.Clear()
}

// SyncBodies records the end-of-step position of every body and refreshes the
// broad phase.
func (w *World) SyncBodies() {
	for _, s := range w.sprites {
		d := s.Data()
		b := s.Body()
		b.PrevX, b.PrevY = d.X, d.Y
		s.syncObject()
	}
}

// UpdateAnimations advances every playing animation by dt seconds and fires
// completion hooks.
func (w *World) UpdateAnimations(dt float64) {
	var done []*Sprite
	for _, s := range w.Sprites() {
		d := s.Data()
		if !d.Anim.Playing {
			continue
		}
		anim, ok := w.Anims.Get(d.Anim.Key)
		if !ok {
			d.Anim.Playing = false
			continue
		}
		frame, completed := anim.step(&d.Anim, dt)
		d.Frame = frame
		if completed {
			done = append(done, s)
		}
	}
	for _, s := range done {
		if s.OnAnimationComplete != nil && s.Active() {
			s.OnAnimationComplete(s.AnimationKey())
		}
	}
}
