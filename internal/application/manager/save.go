// Package manager holds the long-lived helpers a level scene leans on: the
// save game and the enemy roster.
package manager

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/younwookim/critterquest/internal/domain/progress"
	"github.com/younwookim/critterquest/internal/infrastructure/storage"
)

// SaveKey is the storage key of the level progress blob.
const SaveKey = "save"

// SaveManager persists level progress as JSON in a key-value store.
type SaveManager struct {
	store  storage.Store
	logger *log.Logger
}

// NewSaveManager creates a save manager. A nil store disables saving, the
// same way a browser without local storage would.
func NewSaveManager(store storage.Store, logger *log.Logger) *SaveManager {
	return &SaveManager{store: store, logger: logger}
}

// Supported reports whether saves can be written.
func (m *SaveManager) Supported() bool {
	return m.store != nil
}

// HasSavedGame reports whether a non-null level state is stored. A missing
// save or a disabled store is not an error; an unreadable one is.
func (m *SaveManager) HasSavedGame() (bool, error) {
	if !m.Supported() {
		m.logger.Warn("no save storage")
		return false, nil
	}
	levels, err := m.LoadGame()
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return levels != nil, nil
}

// LoadGame reads the stored level state. It returns storage.ErrNotFound when
// nothing was saved.
func (m *SaveManager) LoadGame() (progress.LevelState, error) {
	if !m.Supported() {
		return nil, storage.ErrNotFound
	}
	raw, err := m.store.Get(SaveKey)
	if err != nil {
		return nil, err
	}

	var levels progress.LevelState
	if err := json.Unmarshal([]byte(raw), &levels); err != nil {
		return nil, fmt.Errorf("failed to parse save: %w", err)
	}
	return levels, nil
}

// SaveGame stores the level state.
func (m *SaveManager) SaveGame(levels progress.LevelState) error {
	if !m.Supported() {
		m.logger.Warn("no save storage")
		return nil
	}
	data, err := json.Marshal(levels)
	if err != nil {
		return fmt.Errorf("failed to encode save: %w", err)
	}
	if err := m.store.Set(SaveKey, string(data)); err != nil {
		return err
	}
	m.logger.Debug("game saved", "levels", len(levels))
	return nil
}

// EraseSaveGame deletes the stored level state.
func (m *SaveManager) EraseSaveGame() error {
	if !m.Supported() {
		m.logger.Warn("no save storage")
		return nil
	}
	if err := m.store.Delete(SaveKey); err != nil {
		return err
	}
	m.logger.Info("save erased")
	return nil
}
