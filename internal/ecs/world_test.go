package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld() *World {
	return NewWorld(320, 240, 1000)
}

func TestNewWorld(t *testing.T) {
	w := newTestWorld()

	assert.NotNil(t, w.Clock)
	assert.NotNil(t, w.Anims)
	assert.Equal(t, 1000.0, w.Gravity)
	assert.Empty(t, w.Sprites())
}

func TestAddSprite_Defaults(t *testing.T) {
	w := newTestWorld()
	s := w.AddSprite(SpriteConfig{Name: "crate", Kind: KindProp, X: 50, Y: 60, Width: 16, Height: 16})

	require.True(t, s.Active())
	assert.Equal(t, "crate", s.Name())
	assert.Equal(t, StateNormal, s.State())
	assert.Equal(t, 1.0, s.Scale())
	assert.Equal(t, 1.0, s.Alpha())
	assert.Equal(t, White, s.Tint())
	assert.True(t, s.BodyEnabled())
	assert.True(t, s.Body().AllowGravity)
	assert.Equal(t, AllFaces, s.Body().CheckCollision)
	assert.Equal(t, Rect{X: 42, Y: 52, W: 16, H: 16}, s.Bounds())
}

func TestSprites_CreationOrder(t *testing.T) {
	w := newTestWorld()
	a := w.AddSprite(SpriteConfig{Name: "a", Width: 4, Height: 4})
	b := w.AddSprite(SpriteConfig{Name: "b", Kind: KindEnemy, Width: 4, Height: 4})
	c := w.AddSprite(SpriteConfig{Name: "c", Kind: KindPlayer, Width: 4, Height: 4})

	assert.Equal(t, []*Sprite{a, b, c}, w.Sprites())

	b.Destroy()
	assert.Equal(t, []*Sprite{a, c}, w.Sprites())
}

func TestCount_ByKind(t *testing.T) {
	w := newTestWorld()
	w.AddSprite(SpriteConfig{Kind: KindEnemy, Width: 4, Height: 4})
	w.AddSprite(SpriteConfig{Kind: KindEnemy, Width: 4, Height: 4})
	w.AddSprite(SpriteConfig{Kind: KindPlayer, Width: 4, Height: 4})

	assert.Equal(t, 2, w.Count(KindEnemy))
	assert.Equal(t, 1, w.Count(KindPlayer))
	assert.Equal(t, 0, w.Count(KindCollectable))
}

func TestDestroy_Idempotent(t *testing.T) {
	w := newTestWorld()
	s := w.AddSprite(SpriteConfig{Width: 4, Height: 4})

	s.Destroy()
	s.Destroy()

	assert.False(t, s.Active())
	assert.Empty(t, w.Sprites())
}

func TestClear(t *testing.T) {
	w := newTestWorld()
	a := w.AddSprite(SpriteConfig{Width: 4, Height: 4})
	b := w.AddSprite(SpriteConfig{Width: 4, Height: 4})
	w.AddCollider(a, b, nil)
	w.Clock.DelayedCall(1e9, func() {})

	w.Clear()

	assert.Empty(t, w.Sprites())
	assert.Equal(t, 0, w.Colliders())
	assert.Equal(t, 0, w.Clock.Pending())
}

func TestSetBodySize_Center(t *testing.T) {
	w := newTestWorld()
	s := w.AddSprite(SpriteConfig{X: 100, Y: 100, Width: 32, Height: 32})

	s.SetBodySize(16, 16, true)
	assert.Equal(t, Rect{X: 92, Y: 92, W: 16, H: 16}, s.Bounds())

	s.SetScale(2)
	assert.Equal(t, Rect{X: 84, Y: 84, W: 32, H: 32}, s.Bounds())
}

func TestReset_ClearsDelta(t *testing.T) {
	w := newTestWorld()
	s := w.AddSprite(SpriteConfig{X: 10, Y: 10, Width: 4, Height: 4})

	s.Move(5, 0)
	assert.Equal(t, 15.0, s.X())
	assert.Equal(t, 10.0, s.Body().PrevX)

	s.Reset(40, 50)
	assert.Equal(t, 40.0, s.Body().PrevX)
	assert.Equal(t, 50.0, s.Body().PrevY)
}

func TestSyncBodies_RecordsPrevious(t *testing.T) {
	w := newTestWorld()
	s := w.AddSprite(SpriteConfig{X: 10, Y: 10, Width: 4, Height: 4})

	s.Move(3, -2)
	w.SyncBodies()

	assert.Equal(t, 13.0, s.Body().PrevX)
	assert.Equal(t, 8.0, s.Body().PrevY)
}

func TestUpdateAnimations_CompletionHook(t *testing.T) {
	w := newTestWorld()
	require.True(t, w.Anims.Create(Animation{
		Key:       "enemy-die",
		Texture:   "atlas",
		Frames:    GenerateFrameNames("enemy-death-", "", 1, 6),
		FrameRate: 10,
		Repeat:    0,
	}))

	s := w.AddSprite(SpriteConfig{Width: 4, Height: 4})
	var completed []string
	s.OnAnimationComplete = func(key string) { completed = append(completed, key) }

	s.Play("enemy-die", false)
	assert.Equal(t, "enemy-death-1", s.Frame())

	for i := 0; i < 5; i++ {
		w.UpdateAnimations(0.1)
	}
	assert.Equal(t, "enemy-death-6", s.Frame())
	assert.Empty(t, completed)

	w.UpdateAnimations(0.1)
	assert.Equal(t, []string{"enemy-die"}, completed)
	assert.False(t, s.IsPlaying("enemy-die"))
	assert.Equal(t, "enemy-death-6", s.Frame())
}

func TestPlay_IgnoreIfPlaying(t *testing.T) {
	w := newTestWorld()
	w.Anims.Create(Animation{Key: "run", Texture: "atlas", Frames: []string{"r1", "r2", "r3"}, FrameRate: 10, Repeat: -1})
	s := w.AddSprite(SpriteConfig{Width: 4, Height: 4})

	s.Play("run", true)
	w.UpdateAnimations(0.1)
	assert.Equal(t, "r2", s.Frame())

	s.Play("run", true)
	assert.Equal(t, "r2", s.Frame(), "cursor kept")

	s.Play("run", false)
	assert.Equal(t, "r1", s.Frame(), "restarted")

	s.Play("missing", false)
	assert.True(t, s.IsPlaying("run"))
}
