package scene

import (
	"github.com/charmbracelet/log"

	"github.com/younwookim/critterquest/internal/application/manager"
	"github.com/younwookim/critterquest/internal/application/state"
	"github.com/younwookim/critterquest/internal/application/system"
	"github.com/younwookim/critterquest/internal/application/ui"
	"github.com/younwookim/critterquest/internal/domain/progress"
	"github.com/younwookim/critterquest/internal/infrastructure/assets"
	"github.com/younwookim/critterquest/internal/infrastructure/config"
	"github.com/younwookim/critterquest/internal/infrastructure/sound"
)

// Router builds the scenes a screen can switch to. It keeps the screen
// packages from importing each other.
type Router interface {
	Title() Scene
	LevelSelect() Scene
	Level(n int) (Scene, error)
	GameOver() Scene
	Credits() Scene
}

// Env holds the services shared by every screen.
type Env struct {
	Settings *config.Settings
	Session  *state.Session
	Saves    *manager.SaveManager
	Maps     *config.Loader
	Assets   *assets.Library
	Sound    *sound.Manager
	Input    *system.InputSystem
	Pointer  ui.Pointer
	Logger   *log.Logger
	Router   Router
}

// ScreenSize returns the logical screen size in pixels.
func (e *Env) ScreenSize() (w, h float64) {
	return float64(e.Settings.Display.ScreenWidth), float64(e.Settings.Display.ScreenHeight)
}

// EnsureLevels fills the session's level state on first use. A saved game is
// loaded when present; otherwise a fresh state is created and saved.
func (e *Env) EnsureLevels() progress.LevelState {
	if e.Session.Levels != nil {
		return e.Session.Levels
	}

	saved, err := e.Saves.HasSavedGame()
	if saved {
		var levels progress.LevelState
		if levels, err = e.Saves.LoadGame(); err == nil {
			e.Session.Levels = levels
			return levels
		}
	}
	if err != nil {
		e.Logger.Warn("saved game unreadable, starting fresh", "err", err)
	}

	e.Session.Levels = e.DefaultLevels()
	if err := e.Saves.SaveGame(e.Session.Levels); err != nil {
		e.Logger.Warn("failed to save game", "err", err)
	}
	return e.Session.Levels
}

// DefaultLevels returns a fresh level state for the configured levels.
func (e *Env) DefaultLevels() progress.LevelState {
	return progress.Default(e.Settings.Levels.Count, e.Settings.Levels.BossLevels)
}

// ResetProgress erases the save and starts the level state over.
func (e *Env) ResetProgress() {
	if err := e.Saves.EraseSaveGame(); err != nil {
		e.Logger.Warn("failed to erase save", "err", err)
	}
	e.Session.Levels = nil
	e.EnsureLevels()
	e.Logger.Info("progress reset")
}

// Background builds the parallax backdrop of the menu screens.
func (e *Env) Background() *ui.ParallaxBackground {
	far, _ := e.Assets.Image(assets.ImageBackgroundFar)
	middle, _ := e.Assets.Image(assets.ImageBackgroundMiddle)
	return ui.NewParallaxBackground(far, middle, e.Settings.Display.ScreenWidth, e.Settings.Display.ScreenHeight, 0, 0)
}
