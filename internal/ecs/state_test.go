package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_String(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateNormal, "normal"},
		{StateDying, "dying"},
		{StateDeathAnimation, "death_animation"},
		{StateDead, "dead"},
		{StateFlipDirection, "flip_direction"},
		{StateExitTouched, "exit_touched"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestStateConstants(t *testing.T) {
	// Zero value must be the normal state so fresh sprites are alive
	assert.Equal(t, State(0), StateNormal)
	var s State
	assert.Equal(t, StateNormal, s)
}
