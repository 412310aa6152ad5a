package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/critterquest/internal/ecs"
)

func TestBoss_Movement(t *testing.T) {
	tests := []struct {
		name    string
		create  func(Level) *Boss
		wantVX  float64
		wantFlp bool
	}{
		{"croc", func(l Level) *Boss { return NewCrocBoss(l, 100, 100, "boss", 1.5, 2, 1) }, 250, true},
		{"opossum", func(l Level) *Boss { return NewOpossumBoss(l, 100, 100, "boss", 1.5, 2, -1) }, -175, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := newFakeLevel()
			b := tt.create(level)
			assert.Equal(t, 1, level.bosses)

			b.Update()
			assert.Equal(t, tt.wantVX, b.Sprite().VelocityX())
			assert.Equal(t, tt.wantFlp, b.Sprite().FlipX())

			b.Sprite().SetState(ecs.StateFlipDirection)
			b.Update()
			assert.Equal(t, -tt.wantVX, b.Sprite().VelocityX(), "keeps moving while turned")
			assert.Equal(t, !tt.wantFlp, b.Sprite().FlipX())
		})
	}
}

func TestFrogBoss_Leap(t *testing.T) {
	level := newFakeLevel()
	b := NewFrogBoss(level, 100, 100, "boss", 1.5, 2, -1)
	s := b.Sprite()

	level.advance(1800 * time.Millisecond)
	assert.Zero(t, s.VelocityY(), "no leap in the air")

	standOnGround(s)
	level.advance(1800 * time.Millisecond)
	assert.Equal(t, 500.0, s.VelocityX())
	assert.Equal(t, -500.0, s.VelocityY())

	b.Update()
	assert.True(t, s.FlipX())
	assert.True(t, s.IsPlaying(AnimFrogIdle))
}

func TestBoss_HitSplits(t *testing.T) {
	level := newFakeLevel()
	b := NewCrocBoss(level, 100, 100, "boss", 1.5, 2, -1)

	b.Sprite().SetState(ecs.StateDying)
	b.Update()
	b.Update()

	assert.True(t, b.SpawnedClones())
	assert.True(t, b.Sprite().IsPlaying(AnimEnemyDie))
	require.Len(t, level.enemies, 2, "splits once")
	assert.Equal(t, 3, level.bosses)

	var dirs []float64
	for _, e := range level.enemies {
		clone, ok := e.(*Boss)
		require.True(t, ok)
		s := clone.Sprite()
		assert.Equal(t, CloneName, s.Name())
		assert.Equal(t, 1.0, s.Scale())
		assert.Equal(t, 1, clone.Health())
		assert.Equal(t, BossCroc, clone.Kind())
		assert.Equal(t, 320.0, s.X())
		assert.Equal(t, 48.0, s.Y())
		dirs = append(dirs, clone.Direction())
	}
	assert.ElementsMatch(t, []float64{1, -1}, dirs)

	level.advance(700 * time.Millisecond)
	assert.True(t, b.Dead())
}

func TestBoss_LastHealthDoesNotSplit(t *testing.T) {
	level := newFakeLevel()
	b := NewOpossumBoss(level, 100, 100, CloneName, 0.5, 0, 1)

	b.Sprite().SetState(ecs.StateDying)
	b.Update()

	assert.False(t, b.SpawnedClones())
	assert.Empty(t, level.enemies)
	assert.Equal(t, 1, level.bosses)
}

func TestBoss_DestroyReportsOnce(t *testing.T) {
	level := newFakeLevel()
	b := NewFrogBoss(level, 100, 100, "boss", 1, 1, 1)
	require.Equal(t, 1, level.bosses)

	b.Destroy()
	b.Destroy()

	assert.Equal(t, 0, level.bosses)
	assert.False(t, b.Sprite().Active())
}

func TestBossKind_String(t *testing.T) {
	assert.Equal(t, "frog", BossFrog.String())
	assert.Equal(t, "croc", BossCroc.String())
	assert.Equal(t, "opossum", BossOpossum.String())
	assert.Equal(t, "unknown", BossKind(9).String())
}
