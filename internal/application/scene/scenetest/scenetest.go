// Package scenetest builds scene environments backed by memory stores and
// scripted input, for tests that run without a window.
package scenetest

import (
	"encoding/json"
	"fmt"
	"io"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

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

// Env is a scene.Env with handles on its fakes.
type Env struct {
	*scene.Env
	Keys   *system.StaticKeys
	Mouse  *ui.StaticPointer
	Store  *storage.Memory
	Router *Router
	Files  fstest.MapFS
}

// NewEnv creates an environment with default settings, no assets and an
// empty map directory. Add maps with AddMap.
func NewEnv() *Env {
	settings := config.DefaultSettings()
	logger := log.New(io.Discard)
	keys := system.NewStaticKeys()
	mouse := &ui.StaticPointer{X: -1, Y: -1}
	store := storage.NewMemory()
	files := fstest.MapFS{}
	router := &Router{}

	env := &scene.Env{
		Settings: &settings,
		Session:  state.NewSession(settings.Game),
		Saves:    manager.NewSaveManager(store, logger),
		Maps:     config.NewFSLoader(files, "mem"),
		Assets:   assets.New(fstest.MapFS{}, logger),
		Sound:    sound.NewSilent(settings.Audio, logger),
		Input:    system.NewInputSystem(keys),
		Pointer:  mouse,
		Logger:   logger,
		Router:   router,
	}
	return &Env{Env: env, Keys: keys, Mouse: mouse, Store: store, Router: router, Files: files}
}

// SetRules replaces the game rules. Call it before the session starts.
func (e *Env) SetRules(rules config.GameRules) {
	e.Settings.Game = rules
	e.Session = state.NewSession(rules)
}

// Tap makes key just pressed for the next frame only.
func (e *Env) Tap(key ebiten.Key) {
	e.Keys.Just[key] = true
}

// Frame runs one 60 Hz update of s and ends the input frame.
func (e *Env) Frame(s scene.Scene) (scene.Scene, error) {
	next, err := s.Update(1.0 / 60)
	e.Keys.EndFrame()
	return next, err
}

// Click moves the mouse over (x, y) and presses it; Release completes the click.
func (e *Env) Click(x, y float64) {
	e.Mouse.X, e.Mouse.Y = int(x), int(y)
	e.Mouse.Down = true
}

// Release lets go of the mouse button.
func (e *Env) Release() {
	e.Mouse.Down = false
}

// AddMap stores level n built from m under the configured map pattern.
func (e *Env) AddMap(n int, m Map) {
	data, err := json.Marshal(m.Tiled())
	if err != nil {
		panic(err)
	}
	e.Files[fmt.Sprintf(e.Settings.Levels.MapPattern, n)] = &fstest.MapFile{Data: data}
}

// Stub is a placeholder scene returned by Router.
type Stub struct {
	Name  string
	Level int
}

func (s *Stub) Update(float64) (scene.Scene, error) { return nil, nil }
func (s *Stub) Draw(*ebiten.Image)                  {}
func (s *Stub) OnEnter()                            {}
func (s *Stub) OnExit()                             {}

// Router records every requested scene and hands out stubs.
type Router struct {
	Calls []string
	// LevelErr is returned by Level when set.
	LevelErr error
}

func (r *Router) stub(name string, level int) *Stub {
	call := name
	if level > 0 {
		call = fmt.Sprintf("%s %d", name, level)
	}
	r.Calls = append(r.Calls, call)
	return &Stub{Name: name, Level: level}
}

func (r *Router) Title() scene.Scene       { return r.stub("title", 0) }
func (r *Router) LevelSelect() scene.Scene { return r.stub("levelselect", 0) }
func (r *Router) GameOver() scene.Scene    { return r.stub("gameover", 0) }
func (r *Router) Credits() scene.Scene     { return r.stub("credits", 0) }

func (r *Router) Level(n int) (scene.Scene, error) {
	if r.LevelErr != nil {
		return nil, r.LevelErr
	}
	return r.stub("level", n), nil
}

// Last returns the most recent call, or empty.
func (r *Router) Last() string {
	if len(r.Calls) == 0 {
		return ""
	}
	return r.Calls[len(r.Calls)-1]
}
