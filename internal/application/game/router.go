package game

import (
	"github.com/younwookim/critterquest/internal/application/replay"
	"github.com/younwookim/critterquest/internal/application/scene"
	"github.com/younwookim/critterquest/internal/application/scene/credits"
	"github.com/younwookim/critterquest/internal/application/scene/gameover"
	"github.com/younwookim/critterquest/internal/application/scene/levelselect"
	"github.com/younwookim/critterquest/internal/application/scene/platformer"
	"github.com/younwookim/critterquest/internal/application/scene/title"
)

// Options changes how levels are played.
type Options struct {
	// RecordPath records every level played to this file.
	RecordPath string
	// Replay drives a single level from a recording and stops the game when
	// it ends.
	Replay *replay.Replayer
}

// Router builds the screens of the game on one shared environment.
type Router struct {
	env  *scene.Env
	opts Options
}

// NewRouter creates a router and installs it in env.
func NewRouter(env *scene.Env, opts Options) *Router {
	r := &Router{env: env, opts: opts}
	env.Router = r
	return r
}

func (r *Router) Title() scene.Scene       { return title.New(r.env) }
func (r *Router) LevelSelect() scene.Scene { return levelselect.New(r.env) }
func (r *Router) GameOver() scene.Scene    { return gameover.New(r.env) }
func (r *Router) Credits() scene.Scene     { return credits.New(r.env) }

// Level loads level n.
func (r *Router) Level(n int) (scene.Scene, error) {
	opts := platformer.Options{RecordPath: r.opts.RecordPath}
	if r.opts.Replay != nil {
		r.opts.Replay.Reset()
		opts = platformer.Options{Controls: r.opts.Replay, Single: true}
	}

	p, err := platformer.New(r.env, n, opts)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Start returns the first screen: level n when n > 0, otherwise the title.
func (r *Router) Start(n int) (scene.Scene, error) {
	if n > 0 {
		return r.Level(n)
	}
	return r.Title(), nil
}
