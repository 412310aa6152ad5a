package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/critterquest/internal/application/game"
	"github.com/younwookim/critterquest/internal/application/manager"
	"github.com/younwookim/critterquest/internal/application/scene"
	"github.com/younwookim/critterquest/internal/application/state"
	"github.com/younwookim/critterquest/internal/application/system"
	"github.com/younwookim/critterquest/internal/application/ui"
	"github.com/younwookim/critterquest/internal/infrastructure/assets"
	"github.com/younwookim/critterquest/internal/infrastructure/config"
	"github.com/younwookim/critterquest/internal/infrastructure/sound"
	"github.com/younwookim/critterquest/internal/infrastructure/storage"
)

// app holds what every command loads before it runs.
type app struct {
	settings *config.Settings
	logger   *log.Logger
	files    fs.FS
	store    *storage.SQLite
	saves    *manager.SaveManager
}

func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "critterquest",
	})
	logger.SetLevel(lvl)
	return logger, nil
}

// openApp resolves the settings, layers the asset directory over the
// embedded files and opens the save database.
func openApp() (*app, error) {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return nil, err
	}

	embedded, err := embeddedConfigs()
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded configs: %w", err)
	}
	settings, source, err := config.ResolveSettings(flagConfig, config.NewFSLoader(embedded, "embedded"))
	if err != nil {
		return nil, err
	}
	logger.Debug("settings loaded", "source", source)

	files := embedded
	if info, err := os.Stat(flagAssets); err == nil && info.IsDir() {
		files = config.Overlay(os.DirFS(flagAssets), embedded)
		logger.Debug("asset directory", "dir", flagAssets)
	} else if flagAssets != "" {
		logger.Debug("asset directory unavailable, using flat colours", "dir", flagAssets)
	}

	a := &app{settings: settings, logger: logger, files: files}

	path := flagSave
	if path == "" {
		path = settings.Save.Path
	}
	a.store, a.saves = openSaves(path, logger)
	return a, nil
}

// openSaves opens the save database at path. When it cannot be opened the
// game keeps progress in memory for this run only.
func openSaves(path string, logger *log.Logger) (*storage.SQLite, *manager.SaveManager) {
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("save database unavailable, progress will not persist", "path", path, "err", err)
		return nil, manager.NewSaveManager(storage.NewMemory(), logger)
	}
	logger.Debug("save database", "path", store.Path())
	return store, manager.NewSaveManager(store, logger)
}

// Close releases the save database.
func (a *app) Close() {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil {
		a.logger.Warn("failed to close save database", "err", err)
	}
}

// env loads art and audio and builds the services the screens share.
func (a *app) env() *scene.Env {
	lib := assets.New(a.files, a.logger)
	n := lib.LoadDefaults()
	a.logger.Debug("assets loaded", "files", n)

	snd := sound.New(a.settings.Audio, a.logger)
	snd.Load(a.files)

	return &scene.Env{
		Settings: a.settings,
		Session:  state.NewSession(a.settings.Game),
		Saves:    a.saves,
		Maps:     config.NewFSLoader(a.files, flagAssets),
		Assets:   lib,
		Sound:    snd,
		Input:    system.NewInputSystem(nil),
		Pointer:  ui.EbitenPointer{},
		Logger:   a.logger,
	}
}

// run opens a window and plays from level n, or from the title when n is 0.
func (a *app) run(env *scene.Env, n int, opts game.Options) error {
	router := game.NewRouter(env, opts)
	first, err := router.Start(n)
	if err != nil {
		return err
	}

	d := a.settings.Display
	tps := d.Framerate
	if tps <= 0 {
		tps = 60
	}
	scale := max(d.Scale, 1)

	g := game.New(first, d.ScreenWidth, d.ScreenHeight, a.logger)
	g.SetDT(1 / float64(tps))

	ebiten.SetWindowSize(d.ScreenWidth*scale, d.ScreenHeight*scale)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(tps)

	a.logger.Info("game started", "level", n, "tps", tps)
	err = ebiten.RunGame(g)
	g.Shutdown()
	return err
}
