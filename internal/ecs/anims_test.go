package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateFrameNames(t *testing.T) {
	assert.Equal(t, []string{"player/run-1.png", "player/run-2.png", "player/run-3.png"},
		GenerateFrameNames("player/run-", ".png", 1, 3))
	assert.Nil(t, GenerateFrameNames("x", "", 3, 1))
}

func TestAnimations_Create(t *testing.T) {
	a := NewAnimations()

	assert.True(t, a.Create(Animation{Key: "idle", Frames: []string{"i1"}, FrameRate: 3, Repeat: -1}))
	assert.False(t, a.Create(Animation{Key: "idle", Frames: []string{"other"}, FrameRate: 5}), "existing key kept")
	assert.False(t, a.Create(Animation{Key: "empty", FrameRate: 5}))
	assert.False(t, a.Create(Animation{Key: "still", Frames: []string{"s"}}))

	got, ok := a.Get("idle")
	assert.True(t, ok)
	assert.Equal(t, []string{"i1"}, got.Frames)
}

func TestAnimation_StepRepeat(t *testing.T) {
	anim := Animation{Key: "blink", Frames: []string{"a", "b"}, FrameRate: 10, Repeat: 1}
	st := &AnimationState{Key: "blink", Playing: true}

	var frames []string
	completedAt := -1
	for i := 0; i < 5; i++ {
		f, done := anim.step(st, 0.1)
		frames = append(frames, f)
		if done && completedAt < 0 {
			completedAt = i
		}
	}

	assert.Equal(t, []string{"b", "a", "b", "b", "b"}, frames)
	assert.Equal(t, 3, completedAt)
	assert.False(t, st.Playing)
}
