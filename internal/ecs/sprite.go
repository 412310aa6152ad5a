package ecs

import (
	"image/color"
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Rect is an axis-aligned rectangle in world pixels.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Intersects reports whether the rectangles share a positive area.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Inflate grows the rectangle by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Sprite is the handle gameplay code holds for an engine-managed sprite and its body.
// Component data lives in the donburi world; the handle only keeps the entity id.
type Sprite struct {
	world     *World
	entity    donburi.Entity
	obj       *resolv.Object
	kind      Kind
	destroyed bool

	// Owner points back at the gameplay wrapper that created the sprite.
	Owner any
	// OnAnimationComplete runs when a non-looping animation finishes.
	OnAnimationComplete func(key string)
}

func (s *Sprite) entry() *donburi.Entry {
	return s.world.ecs.Entry(s.entity)
}

// Data returns the sprite component. The pointer is only valid until the next
// world mutation; do not keep it.
func (s *Sprite) Data() *SpriteData {
	return SpriteComponent.Get(s.entry())
}

// Body returns the body component. Same lifetime rules as Data.
func (s *Sprite) Body() *BodyData {
	return BodyComponent.Get(s.entry())
}

// Kind returns the sprite category.
func (s *Sprite) Kind() Kind { return s.kind }

// Active reports whether the sprite still exists in its world.
func (s *Sprite) Active() bool {
	return s != nil && !s.destroyed && s.world.ecs.Valid(s.entity)
}

// Destroy removes the sprite from the world. Calling it twice is safe.
func (s *Sprite) Destroy() {
	if s == nil || s.destroyed {
		return
	}
	s.destroyed = true
	s.world.remove(s)
}

func (s *Sprite) Name() string        { return s.Data().Name }
func (s *Sprite) SetName(name string) { s.Data().Name = name }
func (s *Sprite) State() State        { return s.Data().State }
func (s *Sprite) SetState(st State)   { s.Data().State = st }

func (s *Sprite) X() float64 { return s.Data().X }
func (s *Sprite) Y() float64 { return s.Data().Y }

// Move shifts the sprite. The next physics step resolves the shift against tiles.
func (s *Sprite) Move(dx, dy float64) {
	d := s.Data()
	d.X += dx
	d.Y += dy
}

// SetX moves the sprite horizontally like Move.
func (s *Sprite) SetX(x float64) { s.Data().X = x }

// SetY moves the sprite vertically like Move.
func (s *Sprite) SetY(y float64) { s.Data().Y = y }

// Reset teleports the sprite without producing a physics delta.
func (s *Sprite) Reset(x, y float64) {
	d := s.Data()
	d.X, d.Y = x, y
	b := s.Body()
	b.PrevX, b.PrevY = x, y
	b.DX, b.DY = 0, 0
	s.syncObject()
}

func (s *Sprite) SetVelocity(vx, vy float64) {
	b := s.Body()
	b.VX, b.VY = vx, vy
}

func (s *Sprite) SetVelocityX(vx float64) { s.Body().VX = vx }
func (s *Sprite) SetVelocityY(vy float64) { s.Body().VY = vy }
func (s *Sprite) VelocityX() float64      { return s.Body().VX }
func (s *Sprite) VelocityY() float64      { return s.Body().VY }

func (s *Sprite) SetAccelerationX(ax float64) { s.Body().AX = ax }

func (s *Sprite) SetDrag(dx, dy float64) {
	b := s.Body()
	b.DragX, b.DragY = dx, dy
}

func (s *Sprite) SetMaxVelocity(vx, vy float64) {
	b := s.Body()
	b.MaxVX, b.MaxVY = vx, vy
}

// Stop zeroes velocity and acceleration.
func (s *Sprite) Stop() {
	b := s.Body()
	b.VX, b.VY, b.AX, b.AY = 0, 0, 0, 0
}

func (s *Sprite) SetAllowGravity(v bool) { s.Body().AllowGravity = v }
func (s *Sprite) SetImmovable(v bool)    { s.Body().Immovable = v }

// SetCollideWorld controls collision with the Collision tile layer. When hidden is
// set the body also collides with the HiddenCollision layer.
func (s *Sprite) SetCollideWorld(world, hidden bool) {
	b := s.Body()
	b.CollideWorld = world
	b.CollideHidden = hidden
}

func (s *Sprite) EnableBody(v bool) { s.Body().Enable = v }
func (s *Sprite) BodyEnabled() bool { return s.Body().Enable }

// DisableCollisionFaces turns off every check-collision face, so the body
// passes through tiles and other bodies.
func (s *Sprite) DisableCollisionFaces() {
	s.Body().CheckCollision = Faces{}
}

func (s *Sprite) Blocked() Faces  { return s.Body().Blocked }
func (s *Sprite) Touching() Faces { return s.Body().Touching }

// SetBodySize sets the unscaled body size. With center set the body is
// centred on the frame, otherwise the current offset is kept.
func (s *Sprite) SetBodySize(w, h float64, center bool) {
	d := s.Data()
	b := s.Body()
	b.W, b.H = w, h
	if center {
		b.OffsetX = (d.FrameW - w) / 2
		b.OffsetY = (d.FrameH - h) / 2
	}
	s.syncObject()
}

// SetBodyOffset sets the unscaled body offset from the frame's top-left corner.
func (s *Sprite) SetBodyOffset(x, y float64) {
	b := s.Body()
	b.OffsetX, b.OffsetY = x, y
	s.syncObject()
}

func (s *Sprite) SetTint(c color.RGBA) { s.Data().Tint = c }
func (s *Sprite) ClearTint()           { s.Data().Tint = White }
func (s *Sprite) Tint() color.RGBA     { return s.Data().Tint }
func (s *Sprite) SetAlpha(a float64)   { s.Data().Alpha = a }
func (s *Sprite) Alpha() float64       { return s.Data().Alpha }
func (s *Sprite) SetFlipX(v bool)      { s.Data().FlipX = v }
func (s *Sprite) FlipX() bool          { return s.Data().FlipX }
func (s *Sprite) SetDepth(depth int)   { s.Data().Depth = depth }
func (s *Sprite) SetVisible(v bool)    { s.Data().Visible = v }

func (s *Sprite) Scale() float64 { return s.Data().Scale }

func (s *Sprite) SetScale(scale float64) {
	s.Data().Scale = scale
	s.syncObject()
}

// SetTexture switches the atlas frame and stops any running animation.
func (s *Sprite) SetTexture(texture, frame string) {
	d := s.Data()
	d.Texture = texture
	d.Frame = frame
	d.Anim.Playing = false
}

// SetFrame switches the frame within the current texture.
func (s *Sprite) SetFrame(frame string) { s.Data().Frame = frame }
func (s *Sprite) Frame() string         { return s.Data().Frame }

// Play starts the animation registered under key. With ignoreIfPlaying set a
// running animation with the same key keeps its cursor.
func (s *Sprite) Play(key string, ignoreIfPlaying bool) {
	anim, ok := s.world.Anims.Get(key)
	if !ok {
		return
	}
	d := s.Data()
	if ignoreIfPlaying && d.Anim.Playing && d.Anim.Key == key {
		return
	}
	d.Anim = AnimationState{Key: key, Playing: true}
	d.Texture = anim.Texture
	d.Frame = anim.Frames[0]
}

func (s *Sprite) StopAnimation() { s.Data().Anim.Playing = false }

func (s *Sprite) AnimationKey() string { return s.Data().Anim.Key }

func (s *Sprite) IsPlaying(key string) bool {
	a := s.Data().Anim
	return a.Playing && a.Key == key
}

// Bounds returns the body rectangle in world pixels.
func (s *Sprite) Bounds() Rect {
	return bodyRect(s.Data(), s.Body())
}

func bodyRect(d *SpriteData, b *BodyData) Rect {
	scale := math.Abs(d.Scale)
	return Rect{
		X: d.X - d.FrameW*scale/2 + b.OffsetX*scale,
		Y: d.Y - d.FrameH*scale/2 + b.OffsetY*scale,
		W: b.W * scale,
		H: b.H * scale,
	}
}

func (s *Sprite) syncObject() {
	if s.obj == nil || s.destroyed {
		return
	}
	r := s.Bounds()
	s.obj.X, s.obj.Y, s.obj.W, s.obj.H = r.X, r.Y, r.W, r.H
	s.obj.Update()
}
