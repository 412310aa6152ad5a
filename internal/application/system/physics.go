package system

import (
	"math"

	"github.com/younwookim/critterquest/internal/domain/tilemap"
	"github.com/younwookim/critterquest/internal/ecs"
)

// SpriteCallback receives a sprite that hit a tile with a callback property.
type SpriteCallback func(s *ecs.Sprite)

// PhysicsSystem runs the arcade physics step of a level
type PhysicsSystem struct {
	world *ecs.World
	level *tilemap.Map

	// OnTileDamage fires for bodies touching a collide_dmg tile.
	OnTileDamage SpriteCallback
	// OnWidget fires for bodies overlapping a widget tile.
	OnWidget SpriteCallback
}

// NewPhysicsSystem creates a physics system. level may be nil for scenes without tiles.
func NewPhysicsSystem(world *ecs.World, level *tilemap.Map) *PhysicsSystem {
	return &PhysicsSystem{
		world: world,
		level: level,
	}
}

// Step advances timers, animations and every body by dt seconds.
func (s *PhysicsSystem) Step(dt float64) {
	s.world.Clock.Update(dt)
	s.world.UpdateAnimations(dt)

	sprites := s.world.Sprites()
	for _, sp := range sprites {
		if sp.Active() {
			s.integrate(sp, dt)
		}
	}
	for _, sp := range sprites {
		if sp.Active() {
			s.tileCallbacks(sp)
		}
	}

	s.world.ResolvePairs()
	s.world.SyncBodies()
}

// integrate applies forces and moves one body with substep tile collision
func (s *PhysicsSystem) integrate(sp *ecs.Sprite, dt float64) {
	b := sp.Body()
	b.Blocked = ecs.Faces{}
	b.Touching = ecs.Faces{}

	d := sp.Data()
	// Direct position changes since the last step are replayed through the
	// tile sweep so scripted movement cannot tunnel into walls.
	manualX := d.X - b.PrevX
	manualY := d.Y - b.PrevY

	if !b.Enable {
		b.DX, b.DY = manualX, manualY
		return
	}

	if b.AllowGravity {
		b.VY += s.world.Gravity * dt
	}
	b.VX = applyAxis(b.VX, b.AX, b.DragX, b.MaxVX, dt)
	b.VY = applyAxis(b.VY, b.AY, b.DragY, b.MaxVY, dt)

	dx := manualX + b.VX*dt
	dy := manualY + b.VY*dt

	if !s.collidesWithTiles(b) {
		b.DX, b.DY = dx, dy
		return
	}

	d.X, d.Y = b.PrevX, b.PrevY
	s.resolveOverlap(sp)
	s.moveX(sp, dx)
	s.moveY(sp, dy)

	d = sp.Data()
	b = sp.Body()
	b.DX = d.X - b.PrevX
	b.DY = d.Y - b.PrevY
}

// applyAxis integrates acceleration, applies drag when not accelerating and clamps.
func applyAxis(v, accel, drag, maxV, dt float64) float64 {
	v += accel * dt
	if accel == 0 && drag > 0 {
		dv := drag * dt
		switch {
		case v-dv > 0:
			v -= dv
		case v+dv < 0:
			v += dv
		default:
			v = 0
		}
	}
	return math.Max(-maxV, math.Min(maxV, v))
}

func (s *PhysicsSystem) collidesWithTiles(b *ecs.BodyData) bool {
	return s.level != nil && (b.CollideWorld || b.CollideHidden) && !b.CheckCollision.None()
}

// moveX moves the body horizontally in 1 pixel substeps
func (s *PhysicsSystem) moveX(sp *ecs.Sprite, dx float64) {
	r := sp.Bounds()
	moved := 0.0
	for dx != 0 {
		step := substep(dx)
		if s.isSolidRect(sp.Body(), shift(r, moved+step, 0), r.Bottom(), 0) {
			lead := r.X + moved
			if step > 0 {
				lead = r.Right() + moved
			}
			if gap := contact(lead, step, s.level.TileWidth); gap != 0 &&
				!s.isSolidRect(sp.Body(), shift(r, moved+gap, 0), r.Bottom(), 0) {
				moved += gap
			}
			b := sp.Body()
			b.VX = 0
			if step > 0 {
				b.Blocked.Right = true
			} else {
				b.Blocked.Left = true
			}
			break
		}
		moved += step
		dx -= step
	}
	sp.Move(moved, 0)
}

// moveY moves the body vertically in 1 pixel substeps
func (s *PhysicsSystem) moveY(sp *ecs.Sprite, dy float64) {
	r := sp.Bounds()
	moved := 0.0
	for dy != 0 {
		step := substep(dy)
		if s.isSolidRect(sp.Body(), shift(r, 0, moved+step), r.Bottom()+moved, step) {
			lead := r.Y + moved
			if step > 0 {
				lead = r.Bottom() + moved
			}
			if gap := contact(lead, step, s.level.TileHeight); gap != 0 &&
				!s.isSolidRect(sp.Body(), shift(r, 0, moved+gap), r.Bottom()+moved, gap) {
				moved += gap
			}
			b := sp.Body()
			b.VY = 0
			if step > 0 {
				b.Blocked.Down = true
			} else {
				b.Blocked.Up = true
			}
			break
		}
		moved += step
		dy -= step
	}
	sp.Move(0, moved)
}

// resolveOverlap pushes a body out of solid tiles it already overlaps,
// picking the smallest displacement within maxPushOut pixels.
func (s *PhysicsSystem) resolveOverlap(sp *ecs.Sprite) {
	const maxPushOut = 8

	b := sp.Body()
	r := sp.Bounds()
	if !s.isSolidRect(b, r, r.Bottom(), 0) {
		return
	}

	type pushOption struct {
		dx, dy float64
	}
	dirs := []pushOption{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	for i := 1; i <= maxPushOut; i++ {
		for _, d := range dirs {
			ox, oy := d.dx*float64(i), d.dy*float64(i)
			if !s.isSolidRect(b, shift(r, ox, oy), r.Bottom(), 0) {
				sp.Move(ox, oy)
				return
			}
		}
	}
}

// isSolidRect checks every tile under r. prevBottom and stepY let one-way
// tiles block only bodies falling onto them from above.
func (s *PhysicsSystem) isSolidRect(b *ecs.BodyData, r ecs.Rect, prevBottom, stepY float64) bool {
	tx0, ty0, tx1, ty1 := s.level.TileRange(r.X, r.Y, r.W, r.H)
	for _, name := range s.layersFor(b) {
		layer := s.level.Layer(name)
		if layer == nil {
			continue
		}
		for ty := ty0; ty <= ty1; ty++ {
			for tx := tx0; tx <= tx1; tx++ {
				tile := layer.At(tx, ty)
				if tile.BlocksSides() {
					return true
				}
				if stepY > 0 && tile.BlocksFromAbove() {
					top := float64(ty * s.level.TileHeight)
					if prevBottom <= top {
						return true
					}
				}
			}
		}
	}
	return false
}

func (s *PhysicsSystem) layersFor(b *ecs.BodyData) []string {
	switch {
	case b.CollideWorld && b.CollideHidden:
		return []string{tilemap.LayerWorld, tilemap.LayerHidden}
	case b.CollideHidden:
		return []string{tilemap.LayerHidden}
	default:
		return []string{tilemap.LayerWorld}
	}
}

// tileCallbacks fires damage and widget callbacks for the world layer
func (s *PhysicsSystem) tileCallbacks(sp *ecs.Sprite) {
	b := sp.Body()
	if !b.Enable || !b.CollideWorld || b.CheckCollision.None() || s.level == nil {
		return
	}
	layer := s.level.Layer(tilemap.LayerWorld)
	if layer == nil {
		return
	}
	r := sp.Bounds()

	if s.OnTileDamage != nil && s.anyTile(layer, r.Inflate(1), func(t tilemap.Tile) bool { return t.Damage }) {
		s.OnTileDamage(sp)
		if !sp.Active() {
			return
		}
	}
	if s.OnWidget != nil && s.anyTile(layer, r, func(t tilemap.Tile) bool { return t.Widget }) {
		s.OnWidget(sp)
	}
}

func (s *PhysicsSystem) anyTile(layer *tilemap.Layer, r ecs.Rect, match func(tilemap.Tile) bool) bool {
	tx0, ty0, tx1, ty1 := s.level.TileRange(r.X, r.Y, r.W, r.H)
	for ty := ty0; ty <= ty1; ty++ {
		for tx := tx0; tx <= tx1; tx++ {
			if match(layer.At(tx, ty)) {
				return true
			}
		}
	}
	return false
}

// Helper functions
func substep(d float64) float64 {
	if d > 1 {
		return 1
	}
	if d < -1 {
		return -1
	}
	return d
}

// contact returns the move that brings a leading edge flush with the tile
// grid line crossed by step, or 0 when there is no gap to close.
func contact(edge, step float64, size int) float64 {
	sz := float64(size)
	var target float64
	if step > 0 {
		target = math.Floor((edge+step)/sz) * sz
	} else {
		target = math.Ceil((edge+step)/sz) * sz
	}
	gap := target - edge
	if gap*step <= 0 || math.Abs(gap) >= math.Abs(step) {
		return 0
	}
	return gap
}

func shift(r ecs.Rect, dx, dy float64) ecs.Rect {
	r.X += dx
	r.Y += dy
	return r
}
