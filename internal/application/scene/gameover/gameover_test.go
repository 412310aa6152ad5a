package gameover

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/critterquest/internal/application/scene/scenetest"
)

func TestGameOver_EnterResetsSessionAndSave(t *testing.T) {
	env := scenetest.NewEnv()
	env.Session.Start()
	env.Session.Gems = 12
	env.Session.HasJumpPowerup = true
	env.Session.Muted = true
	env.EnsureLevels().Complete(1, 30)
	require.NoError(t, env.Saves.SaveGame(env.Session.Levels))

	s := New(env.Env)
	next, err := env.Frame(s)
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, 12, env.Session.Gems, "nothing happens before Enter")

	env.Tap(ebiten.KeyEnter)
	next, err = env.Frame(s)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "title", env.Router.Last())

	assert.False(t, env.Session.Started())
	assert.Zero(t, env.Session.Gems)
	assert.False(t, env.Session.HasJumpPowerup)
	assert.Nil(t, env.Session.Levels)
	assert.True(t, env.Session.Muted, "mute survives a game over")
	saved, err := env.Saves.HasSavedGame()
	require.NoError(t, err)
	assert.False(t, saved)
}
