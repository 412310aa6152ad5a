package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/critterquest/internal/ecs"
)

func TestWalker_Move(t *testing.T) {
	tests := []struct {
		name     string
		create   func(Level) *Walker
		dx, dy   float64
		gravity  bool
		mirrored bool
	}{
		{"opossum", func(l Level) *Walker { return NewOpossum(l, 100, 100, "opossum") }, -1, 0, true, true},
		{"croc", func(l Level) *Walker { return NewCroc(l, 100, 100, "croc") }, -2, 0, true, true},
		{"eagle", func(l Level) *Walker { return NewEagle(l, 100, 100, "eagle") }, -1, 0, false, true},
		{"bee", func(l Level) *Walker { return NewBee(l, 100, 100, "bee") }, 0, -1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := newFakeLevel()
			wk := tt.create(level)
			s := wk.Sprite()

			assert.Equal(t, ecs.KindEnemy, s.Kind())
			assert.Equal(t, tt.gravity, s.Body().AllowGravity)

			wk.Update()
			assert.Equal(t, 100+tt.dx, s.X())
			assert.Equal(t, 100+tt.dy, s.Y())

			s.SetState(ecs.StateFlipDirection)
			wk.Update()
			assert.Equal(t, tt.mirrored, s.FlipX())
			assert.Equal(t, -tt.dx-tt.dy, wk.Direction())

			wk.Update()
			assert.Equal(t, tt.mirrored, s.FlipX(), "cooldown ignores repeated widget hits")
			assert.Equal(t, 100+tt.dx, s.X(), "walked back")
			assert.Equal(t, 100+tt.dy, s.Y())

			level.advance(1600 * time.Millisecond)
			assert.Equal(t, ecs.StateNormal, s.State())
		})
	}
}

func TestWalker_CooldownKeepsDyingState(t *testing.T) {
	level := newFakeLevel()
	wk := NewOpossum(level, 100, 100, "opossum")
	s := wk.Sprite()

	s.SetState(ecs.StateFlipDirection)
	wk.Update()
	s.SetState(ecs.StateDying)

	level.advance(1600 * time.Millisecond)
	assert.Equal(t, ecs.StateDying, s.State())
}

func TestEnemy_DeathAnimation(t *testing.T) {
	level := newFakeLevel()
	wk := NewOpossum(level, 100, 100, "opossum")
	s := wk.Sprite()

	s.SetState(ecs.StateDying)
	wk.Update()
	assert.True(t, s.IsPlaying(AnimEnemyDie))
	assert.Equal(t, 100.0, s.X(), "dying enemies stop walking")
	assert.False(t, wk.Dead())

	level.advance(700 * time.Millisecond)
	assert.True(t, wk.Dead())
}

func TestFrog_Jump(t *testing.T) {
	level := newFakeLevel()
	f := NewFrog(level, 100, 100, "frog")
	s := f.Sprite()

	level.advance(2800 * time.Millisecond)
	assert.Zero(t, s.VelocityY(), "frogs only jump from the ground")

	standOnGround(s)
	f.Update()
	assert.True(t, s.IsPlaying(AnimFrogIdle))

	level.advance(2800 * time.Millisecond)
	assert.Equal(t, -500.0, s.VelocityY())

	s.Body().Blocked = ecs.Faces{}
	f.Update()
	assert.Equal(t, "jump/frog-jump-1.png", s.Frame())

	f.Destroy()
	assert.False(t, s.Active())
}

func TestSnail_CrushedByCrate(t *testing.T) {
	level := newFakeLevel()
	sn := NewSnail(level, 100, 100, "snail")
	s := sn.Sprite()
	assert.True(t, s.Body().Immovable)

	crate := NewCrate(level, 300, 50)
	level.crates = []*Crate{crate}

	sn.Update()
	assert.Equal(t, ecs.StateNormal, s.State(), "crate is far away")

	// the crate falls onto the snail's back
	cs := crate.Sprite()
	cs.Reset(100, 80)
	cs.Body().DY = 5
	sn.Update()

	assert.Equal(t, ecs.StateDying, s.State())
	assert.False(t, s.BodyEnabled())

	sn.Update()
	assert.True(t, s.IsPlaying(AnimEnemyDie))
}

func TestSnail_IgnoresSideContact(t *testing.T) {
	level := newFakeLevel()
	sn := NewSnail(level, 100, 100, "snail")
	crate := NewCrate(level, 120, 100)
	level.crates = []*Crate{crate}

	crate.Sprite().Body().DX = -2
	sn.Update()

	require.Equal(t, ecs.StateNormal, sn.Sprite().State())
}
