package levelselect

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/critterquest/internal/application/scene/scenetest"
	"github.com/younwookim/critterquest/internal/application/ui"
)

func newLevelSelect(t *testing.T) (*scenetest.Env, *LevelSelect) {
	t.Helper()
	env := scenetest.NewEnv()
	s := New(env.Env)
	s.OnEnter()
	return env, s
}

func click(t *testing.T, env *scenetest.Env, s *LevelSelect, b *ui.TextButton) {
	t.Helper()
	env.Click(b.X, b.Y)
	_, err := env.Frame(s)
	require.NoError(t, err)
	env.Release()
}

func TestLevelSelect_CreatesAndSavesDefaultProgress(t *testing.T) {
	env, s := newLevelSelect(t)

	require.Len(t, s.Buttons(), 15)
	saved, err := env.Saves.HasSavedGame()
	require.NoError(t, err)
	assert.True(t, saved)

	first := s.Buttons()[0]
	assert.Equal(t, "(1) Level 1: UNLOCKED / Time: NOT COMPLETED", first.Text)
	assert.True(t, first.Unlocked)
	assert.Equal(t, "(A) Level 10: LOCKED / Time: NOT COMPLETED", s.Buttons()[9].Text)
	assert.False(t, s.Buttons()[9].Unlocked)
}

func TestLevelSelect_LoadsSavedProgress(t *testing.T) {
	env := scenetest.NewEnv()
	levels := env.DefaultLevels()
	levels.Complete(1, 17)
	require.NoError(t, env.Saves.SaveGame(levels))

	s := New(env.Env)
	s.OnEnter()

	assert.Equal(t, "(1) Level 1: UNLOCKED / Time: 17 seconds", s.Buttons()[0].Text)
	assert.True(t, s.Buttons()[1].Unlocked)
}

func TestLevelSelect_ShortcutStartsUnlockedLevel(t *testing.T) {
	env, s := newLevelSelect(t)

	env.Tap(ebiten.KeyDigit2)
	next, err := env.Frame(s)
	require.NoError(t, err)
	assert.Nil(t, next, "level 2 is locked")
	assert.Empty(t, env.Router.Calls)

	env.Tap(ebiten.KeyDigit1)
	next, err = env.Frame(s)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "level 1", env.Router.Last())
}

func TestLevelSelect_LetterShortcuts(t *testing.T) {
	env := scenetest.NewEnv()
	levels := env.DefaultLevels()
	for n := 1; n < 11; n++ {
		levels.Complete(n, n)
	}
	require.NoError(t, env.Saves.SaveGame(levels))
	s := New(env.Env)
	s.OnEnter()

	env.Tap(ebiten.KeyB)
	next, err := env.Frame(s)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "level 11", env.Router.Last())
}

func TestLevelSelect_ClickStartsLevel(t *testing.T) {
	env, s := newLevelSelect(t)

	locked := s.Buttons()[3]
	click(t, env, s, locked)
	next, err := env.Frame(s)
	require.NoError(t, err)
	assert.Nil(t, next)

	click(t, env, s, s.Buttons()[0])
	next, err = env.Frame(s)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, []string{"level 1"}, env.Router.Calls)
}

func TestLevelSelect_EscapeReturnsToTitle(t *testing.T) {
	env, s := newLevelSelect(t)

	env.Tap(ebiten.KeyEscape)
	next, err := env.Frame(s)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "title", env.Router.Last())
}

func TestLevelSelect_Reset(t *testing.T) {
	env := scenetest.NewEnv()
	levels := env.DefaultLevels()
	levels.Complete(1, 5)
	levels.Complete(2, 6)
	require.NoError(t, env.Saves.SaveGame(levels))
	s := New(env.Env)
	s.OnEnter()
	require.True(t, s.Buttons()[2].Unlocked)

	env.Tap(ebiten.KeyR)
	next, err := env.Frame(s)
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.False(t, s.Buttons()[2].Unlocked)
	assert.Equal(t, "(1) Level 1: UNLOCKED / Time: NOT COMPLETED", s.Buttons()[0].Text)

	levels = env.Session.Levels
	levels.Complete(1, 5)
	s.build()
	require.True(t, s.Buttons()[1].Unlocked)

	click(t, env, s, s.reset)
	_, err = env.Frame(s)
	require.NoError(t, err)
	assert.False(t, s.Buttons()[1].Unlocked)
}

func TestLevelSelect_LevelErrorPropagates(t *testing.T) {
	env, s := newLevelSelect(t)
	env.Router.LevelErr = errors.New("broken map")

	env.Tap(ebiten.KeyDigit1)
	_, err := env.Frame(s)
	assert.EqualError(t, err, "broken map")
}
