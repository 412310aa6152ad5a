package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRect_Intersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"edge contact", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"apart", Rect{0, 0, 10, 10}, Rect{20, 20, 5, 5}, false},
		{"contained", Rect{0, 0, 10, 10}, Rect{2, 2, 2, 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(tt.a))
		})
	}
}

// stomp places a falling player over a walking enemy.
func stomp(w *World) (player, enemy *Sprite) {
	player = w.AddSprite(SpriteConfig{Name: "player", Kind: KindPlayer, X: 100, Y: 86, Width: 16, Height: 16})
	enemy = w.AddSprite(SpriteConfig{Name: "enemy", Kind: KindEnemy, X: 100, Y: 100, Width: 16, Height: 16})
	player.Body().DY = 4
	enemy.Body().DX = -1
	return player, enemy
}

func TestOverlap_TouchingFromRelativeMotion(t *testing.T) {
	w := newTestWorld()
	player, enemy := stomp(w)

	called := false
	hit := w.Overlap(player, enemy, func(a, b *Sprite) {
		called = true
		assert.Same(t, player, a)
		assert.Same(t, enemy, b)
	})

	require.True(t, hit)
	assert.True(t, called)
	assert.True(t, player.Touching().Down)
	assert.True(t, enemy.Touching().Up)
	assert.False(t, player.Touching().Right, "stacked bodies overlap too deep to touch sideways")
	assert.False(t, enemy.Touching().Left)
	assert.Equal(t, 86.0, player.Y(), "overlap does not separate")
}

func TestOverlap_DeepPenetrationIsNotTouching(t *testing.T) {
	w := newTestWorld()
	// a falling player passes the side of a grounded enemy
	player := w.AddSprite(SpriteConfig{Kind: KindPlayer, X: 88, Y: 98, Width: 16, Height: 16})
	enemy := w.AddSprite(SpriteConfig{Kind: KindEnemy, X: 100, Y: 100, Width: 16, Height: 16})
	player.Body().DY = 6

	require.True(t, w.Overlap(player, enemy, nil))
	assert.False(t, player.Touching().Down)
	assert.False(t, enemy.Touching().Up)
	assert.Equal(t, 88.0, player.X())
	assert.Equal(t, 98.0, player.Y())
}

func TestOverlap_SideHit(t *testing.T) {
	w := newTestWorld()
	player := w.AddSprite(SpriteConfig{Kind: KindPlayer, X: 90, Y: 100, Width: 16, Height: 16})
	enemy := w.AddSprite(SpriteConfig{Kind: KindEnemy, X: 100, Y: 100, Width: 16, Height: 16})
	player.Body().DX = 2

	require.True(t, w.Overlap(player, enemy, nil))
	assert.False(t, player.Touching().Down)
	assert.False(t, enemy.Touching().Up)
	assert.True(t, player.Touching().Right)
}

func TestOverlap_SkipsDisabledBodies(t *testing.T) {
	w := newTestWorld()
	player, enemy := stomp(w)

	enemy.EnableBody(false)
	assert.False(t, w.Overlap(player, enemy, nil))

	enemy.EnableBody(true)
	player.DisableCollisionFaces()
	assert.False(t, w.Overlap(player, enemy, nil))

	player.Body().CheckCollision = AllFaces
	enemy.Destroy()
	assert.False(t, w.Overlap(player, enemy, nil))
}

func TestCollide_LandsOnImmovable(t *testing.T) {
	w := newTestWorld()
	crate := w.AddSprite(SpriteConfig{Name: "crate", X: 100, Y: 100, Width: 16, Height: 16})
	crate.SetImmovable(true)
	player := w.AddSprite(SpriteConfig{Name: "player", Kind: KindPlayer, X: 100, Y: 86, Width: 16, Height: 16})
	player.SetVelocityY(300)
	player.Body().DY = 5

	var crateUp bool
	hit := w.collide(crate, player, func(c, p *Sprite) {
		crateUp = c.Touching().Up
	})

	require.True(t, hit)
	assert.True(t, crateUp)
	assert.True(t, player.Touching().Down)
	assert.Equal(t, 84.0, player.Y(), "player rests on the crate top")
	assert.Equal(t, 100.0, crate.Y(), "immovable body stays put")
	assert.Equal(t, 0.0, player.VelocityY())
}

func TestCollide_PushFromSide(t *testing.T) {
	w := newTestWorld()
	crate := w.AddSprite(SpriteConfig{X: 100, Y: 100, Width: 16, Height: 16})
	crate.SetImmovable(true)
	player := w.AddSprite(SpriteConfig{Kind: KindPlayer, X: 86, Y: 100, Width: 16, Height: 16})
	player.SetVelocityX(120)
	player.Body().DX = 2

	require.True(t, w.collide(crate, player, nil))
	assert.True(t, crate.Touching().Left)
	assert.Equal(t, 84.0, player.X())
	assert.Equal(t, 0.0, player.VelocityX())
}

func TestCollide_DeepOverlapIgnored(t *testing.T) {
	w := newTestWorld()
	a := w.AddSprite(SpriteConfig{X: 100, Y: 100, Width: 16, Height: 16})
	a.SetImmovable(true)
	b := w.AddSprite(SpriteConfig{X: 100, Y: 92, Width: 16, Height: 16})
	b.Body().DY = 1

	assert.False(t, w.collide(a, b, nil))
	assert.Equal(t, 92.0, b.Y())
}

func TestResolvePairs_DropsDestroyed(t *testing.T) {
	w := newTestWorld()
	player, enemy := stomp(w)
	gem := w.AddSprite(SpriteConfig{Kind: KindCollectable, X: 100, Y: 86, Width: 16, Height: 16})

	calls := 0
	w.AddOverlap(gem, player, func(g, p *Sprite) {
		calls++
		g.Destroy()
	})
	w.AddCollider(enemy, player, nil)
	require.Equal(t, 1, w.Overlaps())

	w.ResolvePairs()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, w.Overlaps())
	assert.Equal(t, 1, w.Colliders())

	w.ResolvePairs()
	assert.Equal(t, 1, calls)
}
