package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/critterquest/internal/domain/entity"
)

func TestFrameInput_Controls(t *testing.T) {
	c := entity.Controls{Left: true, Jump: true, Run: true, Interact: true}

	fi := toFrame(7, c)
	assert.Equal(t, 7, fi.F)
	assert.Equal(t, c, fi.Controls())
}

func TestRecorder_RecordFrame(t *testing.T) {
	r := NewRecorder(3)
	assert.True(t, r.IsRecording())

	r.RecordFrame(entity.Controls{Right: true})
	r.RecordFrame(entity.Controls{Right: true, Jump: true})
	r.Stop()
	r.RecordFrame(entity.Controls{Left: true})

	assert.False(t, r.IsRecording())
	assert.Equal(t, 2, r.FrameCount())

	data := r.Data()
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, 3, data.Level)
	assert.Equal(t, 1, data.Frames[1].F)
	assert.True(t, data.Frames[1].J)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")

	r := NewRecorder(2)
	r.RecordFrame(entity.Controls{Left: true})
	r.RecordFrame(entity.Controls{Crouch: true})
	require.NoError(t, r.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, 2, data.Level)
	require.Len(t, data.Frames, 2)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"d": true`)
	assert.NotContains(t, string(raw), `"e"`, "false inputs are omitted")
}

func TestRecorder_SaveEmpty(t *testing.T) {
	err := NewRecorder(1).Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.Error(t, err)
}

func TestLoadReplay_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadReplay(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "failed to open file")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = LoadReplay(bad)
	assert.ErrorContains(t, err, "failed to decode replay")

	noLevel := filepath.Join(dir, "nolevel.json")
	require.NoError(t, os.WriteFile(noLevel, []byte(`{"version": "1.0", "frames": []}`), 0o644))
	_, err = LoadReplay(noLevel)
	assert.Error(t, err)
}

func TestReplayer_Next(t *testing.T) {
	data := ReplayData{
		Level: 1,
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, J: true},
			{F: 2},
		},
	}
	replayer := NewReplayer(data)
	assert.Equal(t, 3, replayer.TotalFrames())
	assert.Equal(t, 1, replayer.Level())

	c, ok := replayer.Next()
	require.True(t, ok)
	assert.Equal(t, entity.Controls{Left: true}, c)

	c = replayer.Controls()
	assert.Equal(t, entity.Controls{Right: true, Jump: true}, c)
	assert.Equal(t, 2, replayer.CurrentFrame())

	_, ok = replayer.Next()
	require.True(t, ok)
	assert.True(t, replayer.Done())

	_, ok = replayer.Next()
	assert.False(t, ok)
	assert.Equal(t, entity.Controls{}, replayer.Controls(), "no input after the end")
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(ReplayData{Level: 1, Frames: []FrameInput{{F: 0, E: true}}})

	replayer.Next()
	require.True(t, replayer.Done())

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
	c, ok := replayer.Next()
	assert.True(t, ok)
	assert.True(t, c.Interact)
}
