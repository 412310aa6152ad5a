package manager

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/critterquest/internal/domain/progress"
	"github.com/younwookim/critterquest/internal/infrastructure/storage"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func hasSave(t *testing.T, m *SaveManager) bool {
	t.Helper()
	saved, err := m.HasSavedGame()
	require.NoError(t, err)
	return saved
}

func TestSaveManager_RoundTrip(t *testing.T) {
	m := NewSaveManager(storage.NewMemory(), testLogger())
	assert.False(t, hasSave(t, m))

	levels := progress.Default(15, []int{5, 10, 15})
	levels.Complete(1, 42)
	require.NoError(t, m.SaveGame(levels))
	assert.True(t, hasSave(t, m))

	loaded, err := m.LoadGame()
	require.NoError(t, err)
	assert.Equal(t, levels, loaded)
	assert.True(t, loaded.IsUnlocked(2))
	assert.Equal(t, 42, loaded.Time(1))

	require.NoError(t, m.EraseSaveGame())
	assert.False(t, hasSave(t, m))
	_, err = m.LoadGame()
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSaveManager_Format(t *testing.T) {
	store := storage.NewMemory()
	m := NewSaveManager(store, testLogger())

	require.NoError(t, m.SaveGame(progress.LevelState{"1": {Unlocked: true, Time: -1}}))

	raw, err := store.Get(SaveKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"1": {"unlocked": true, "time": -1, "hasEndBoss": false}}`, raw)
}

func TestSaveManager_NullAndCorruptSaves(t *testing.T) {
	store := storage.NewMemory()
	m := NewSaveManager(store, testLogger())

	require.NoError(t, store.Set(SaveKey, "null"))
	assert.False(t, hasSave(t, m))

	require.NoError(t, store.Set(SaveKey, "{"))
	saved, err := m.HasSavedGame()
	assert.False(t, saved)
	assert.ErrorContains(t, err, "failed to parse save")
	_, err = m.LoadGame()
	assert.ErrorContains(t, err, "failed to parse save")
}

func TestSaveManager_NoStorage(t *testing.T) {
	m := NewSaveManager(nil, testLogger())

	assert.False(t, m.Supported())
	assert.False(t, hasSave(t, m))
	assert.NoError(t, m.SaveGame(progress.Default(3, nil)))
	assert.NoError(t, m.EraseSaveGame())
}

func TestSaveManager_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.db")
	db, err := storage.Open(path)
	require.NoError(t, err)

	m := NewSaveManager(db, testLogger())
	require.NoError(t, m.SaveGame(progress.Default(15, []int{5})))
	require.NoError(t, db.Close())

	db, err = storage.Open(path)
	require.NoError(t, err)
	defer db.Close()

	loaded, err := NewSaveManager(db, testLogger()).LoadGame()
	require.NoError(t, err)
	assert.True(t, loaded.HasEndBoss(5))
	assert.Len(t, loaded, 15)
}
