package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/critterquest/internal/application/replay"
	"github.com/younwookim/critterquest/internal/application/scene/credits"
	"github.com/younwookim/critterquest/internal/application/scene/gameover"
	"github.com/younwookim/critterquest/internal/application/scene/levelselect"
	"github.com/younwookim/critterquest/internal/application/scene/platformer"
	"github.com/younwookim/critterquest/internal/application/scene/scenetest"
	"github.com/younwookim/critterquest/internal/application/scene/title"
)

func testLevel() scenetest.Map {
	return scenetest.Map{Objects: []scenetest.Object{
		{Name: platformer.SpawnPointName, X: 100, Y: 200},
	}}
}

func TestRouter_Screens(t *testing.T) {
	env := scenetest.NewEnv()
	r := NewRouter(env.Env, Options{})
	assert.Same(t, r, env.Env.Router)

	assert.IsType(t, &title.Title{}, r.Title())
	assert.IsType(t, &levelselect.LevelSelect{}, r.LevelSelect())
	assert.IsType(t, &gameover.GameOver{}, r.GameOver())
	assert.IsType(t, &credits.Credits{}, r.Credits())
}

func TestRouter_Level(t *testing.T) {
	env := scenetest.NewEnv()
	env.AddMap(1, testLevel())
	r := NewRouter(env.Env, Options{})

	s, err := r.Level(1)
	require.NoError(t, err)
	p, ok := s.(*platformer.Platformer)
	require.True(t, ok)
	assert.Equal(t, 1, p.Level())
	p.OnExit()

	s, err = r.Level(2)
	assert.Error(t, err)
	assert.Nil(t, s, "a failed level is a nil interface")
}

func TestRouter_Start(t *testing.T) {
	env := scenetest.NewEnv()
	env.AddMap(3, testLevel())
	r := NewRouter(env.Env, Options{})

	s, err := r.Start(0)
	require.NoError(t, err)
	assert.IsType(t, &title.Title{}, s)

	s, err = r.Start(3)
	require.NoError(t, err)
	assert.IsType(t, &platformer.Platformer{}, s)
	s.OnExit()
}

func TestRouter_ReplayRewindsEachAttempt(t *testing.T) {
	env := scenetest.NewEnv()
	env.AddMap(1, testLevel())
	rp := replay.NewReplayer(replay.ReplayData{Level: 1, Frames: make([]replay.FrameInput, 3)})
	r := NewRouter(env.Env, Options{Replay: rp})

	s, err := r.Level(1)
	require.NoError(t, err)
	_, err = s.Update(1.0 / 60)
	require.NoError(t, err)
	assert.Equal(t, 1, rp.CurrentFrame())
	s.OnExit()

	s, err = r.Level(1)
	require.NoError(t, err)
	assert.Zero(t, rp.CurrentFrame())
	s.OnExit()
}
