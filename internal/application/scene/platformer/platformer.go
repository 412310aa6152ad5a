// Package platformer provides the level scene: it spawns the map's objects,
// runs physics and entities, and moves on to the next level, a retry, game
// over or the credits.
package platformer

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/critterquest/internal/application/manager"
	"github.com/younwookim/critterquest/internal/application/replay"
	"github.com/younwookim/critterquest/internal/application/scene"
	"github.com/younwookim/critterquest/internal/application/scene/hud"
	"github.com/younwookim/critterquest/internal/application/scene/menu"
	"github.com/younwookim/critterquest/internal/application/state"
	"github.com/younwookim/critterquest/internal/application/system"
	"github.com/younwookim/critterquest/internal/application/ui"
	"github.com/younwookim/critterquest/internal/domain/entity"
	"github.com/younwookim/critterquest/internal/domain/tilemap"
	"github.com/younwookim/critterquest/internal/ecs"
	"github.com/younwookim/critterquest/internal/infrastructure/config"
)

// SpawnPointName names the object the player starts at.
const SpawnPointName = "Spawn Point"

// Options changes how a level is driven.
type Options struct {
	// Controls replaces the keyboard, e.g. with a replay.
	Controls system.ControlSource
	// RecordPath, when set, records the controls and writes them on exit.
	RecordPath string
	// Single ends the game with ebiten.Termination when the level ends or the
	// controls run out, instead of moving to another screen.
	Single bool
}

// Platformer is one running level.
type Platformer struct {
	env   *scene.Env
	opts  Options
	level int

	stage   *tilemap.Map
	world   *ecs.World
	physics *system.PhysicsSystem
	combat  *system.CombatSystem
	enemies *manager.EnemyManager

	player       *entity.Player
	exit         *entity.Exit
	exitX, exitY float64
	exitPending  bool

	crates       []*entity.Crate
	platforms    []*entity.MovingPlatform
	springboards []*entity.FrogSpringboard
	switches     []*entity.Switch
	toggleTiles  []*entity.ToggleTile
	collectables []*entity.Collectable
	tips         []ui.Label

	source   system.ControlSource
	controls entity.Controls
	recorder *replay.Recorder

	timer *ecs.TimerEvent
	state state.GameState
	hud   *hud.HUD
	menu  *menu.Menu
	cam   ecs.Camera
	debug bool
}

// New loads level n and spawns everything on its map.
func New(env *scene.Env, n int, opts Options) (*Platformer, error) {
	tm, err := env.Maps.LoadLevel(env.Settings.Levels, n)
	if err != nil {
		return nil, fmt.Errorf("failed to load level %d: %w", n, err)
	}
	stage, err := system.LoadStage(tm)
	if err != nil {
		return nil, fmt.Errorf("failed to load level %d: %w", n, err)
	}
	spawn, ok := stage.FindObject(SpawnPointName)
	if !ok {
		return nil, fmt.Errorf("level %d has no %q object", n, SpawnPointName)
	}

	env.Session.Start()
	env.EnsureLevels()

	p := &Platformer{
		env:    env,
		opts:   opts,
		level:  n,
		stage:  stage,
		world:  ecs.NewWorld(stage.WidthInPixels(), stage.HeightInPixels(), env.Settings.Physics.Gravity),
		source: opts.Controls,
		state:  state.StatePlaying,
	}
	if p.source == nil {
		p.source = env.Input
	}
	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(n)
	}

	p.physics = system.NewPhysicsSystem(p.world, stage)
	p.physics.OnTileDamage = onTileDamage
	p.physics.OnWidget = onWidget
	p.combat = system.NewCombatSystem(p.world)
	p.combat.OnStomp = func(e entity.Enemy) {
		env.Logger.Debug("enemy stomped", "enemy", e.Sprite().Name())
	}
	p.combat.OnPlayerHurt = func(e entity.Enemy) {
		env.Logger.Info("player hit", "level", n, "enemy", e.Sprite().Name())
	}
	// the tracker is reset here, before any boss registers itself
	p.enemies = manager.NewEnemyManager(p, p.combat, &env.Session.Boss, env.Logger)

	p.player = entity.NewPlayer(p, spawn.X, spawn.Y, PlayerStats(env.Settings.Player))
	p.spawnObjects()
	p.linkSwitches()

	rules := env.Session.Rules()
	p.timer = p.world.Clock.DelayedCall(time.Duration(rules.MaxLevelTime)*time.Second, p.timeUp)

	w, h := env.ScreenSize()
	p.hud = hud.New(env.Session, rules.MaxLevelTime, w, h)
	p.menu = menu.New(env.Input, env.Pointer, env.Sound, w, h)
	p.updateCamera()

	env.Logger.Info("level started", "level", n, "enemies", p.enemies.Len(), "lives", env.Session.Lives)
	return p, nil
}

// PlayerStats converts the configured tuning into player stats.
func PlayerStats(c config.PlayerConfig) entity.PlayerStats {
	return entity.PlayerStats{
		GroundAcceleration: c.GroundAcceleration,
		AirAcceleration:    c.AirAcceleration,
		SpeedMultiplier:    c.SpeedMultiplier,
		DragX:              c.DragX,
		MaxVelocityY:       c.MaxVelocityY,
		JumpVelocity:       c.JumpVelocity,
		DoubleJumpVelocity: c.DoubleJumpVelocity,
		StompBounce:        c.StompBounce,
		SpringVelocity:     c.SpringVelocity,
		DoubleJumpDelay:    time.Duration(c.DoubleJumpDelayMs) * time.Millisecond,
		DeathDelay:         time.Duration(c.DeathDelayMs) * time.Millisecond,
		BodyWidth:          c.BodyWidth,
	}
}

// onTileDamage kills whatever touches a damage tile.
func onTileDamage(s *ecs.Sprite) {
	if s.State() == ecs.StateNormal || s.State() == ecs.StateFlipDirection {
		s.SetState(ecs.StateDying)
	}
}

// onWidget turns enemies and platforms around at widget tiles.
func onWidget(s *ecs.Sprite) {
	if s.Kind() != ecs.KindPlayer && s.State() == ecs.StateNormal {
		s.SetState(ecs.StateFlipDirection)
	}
}

// timeUp kills the player when the level clock runs out.
func (p *Platformer) timeUp() {
	s := p.player.Sprite()
	if s.Active() && s.State() == ecs.StateNormal {
		p.env.Logger.Info("out of time", "level", p.level)
		s.SetState(ecs.StateDying)
	}
}

// Level returns the level number.
func (p *Platformer) Level() int { return p.level }

// State returns whether the level runs or is paused.
func (p *Platformer) State() state.GameState { return p.state }

// Elapsed returns the seconds since the level started.
func (p *Platformer) Elapsed() float64 { return p.timer.ElapsedSeconds() }

// Exit returns the level exit, or nil while a boss still lives.
func (p *Platformer) Exit() *entity.Exit { return p.exit }

// Camera returns the top-left corner of the view.
func (p *Platformer) Camera() ecs.Camera { return p.cam }

// Debug reports whether body outlines are drawn.
func (p *Platformer) Debug() bool { return p.debug }

// HUD returns the overlay.
func (p *Platformer) HUD() *hud.HUD { return p.hud }

// Enemies returns the enemy manager.
func (p *Platformer) Enemies() *manager.EnemyManager { return p.enemies }

// Collectables returns the items not yet swept up.
func (p *Platformer) Collectables() []*entity.Collectable { return p.collectables }

// Switches returns the switches of the level.
func (p *Platformer) Switches() []*entity.Switch { return p.switches }

// The methods below implement entity.Level.

func (p *Platformer) World() *ecs.World          { return p.world }
func (p *Platformer) Controls() entity.Controls  { return p.controls }
func (p *Platformer) Player() *entity.Player     { return p.player }
func (p *Platformer) Crates() []*entity.Crate    { return p.crates }
func (p *Platformer) AddEnemy(e entity.Enemy)    { p.enemies.Add(e) }
func (p *Platformer) BossSpawned()               { p.env.Session.Boss.Spawned() }
func (p *Platformer) BossDefeated()              { p.env.Session.Boss.Defeated() }
func (p *Platformer) PlaySound(name string)      { p.env.Sound.Play(name) }
func (p *Platformer) ScreenSize() (w, h float64) { return p.env.ScreenSize() }

func (p *Platformer) Powerups() (doubleJump, speedBoots bool) {
	return p.env.Session.HasJumpPowerup, p.env.Session.HasSpeedPowerup
}

// Update implements scene.Scene.
func (p *Platformer) Update(dt float64) (scene.Scene, error) {
	switch p.state {
	case state.StateLevelComplete, state.StateDead:
		return nil, nil
	case state.StatePaused:
		switch p.menu.Update() {
		case menu.ActionResume:
			p.state = state.StatePlaying
		case menu.ActionExitToLevelSelect:
			p.env.Logger.Info("left level", "level", p.level)
			return p.leave(p.env.Router.LevelSelect(), nil)
		}
		return nil, nil
	}

	input := p.env.Input
	if input.JustPressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		return nil, nil
	}
	if input.JustPressed(ebiten.KeyP) {
		p.debug = !p.debug
	}

	if d, ok := p.source.(interface{ Done() bool }); ok && d.Done() && p.opts.Single {
		p.env.Logger.Info("replay finished", "level", p.level)
		return nil, ebiten.Termination
	}

	// read once so every entity sees the same input this frame
	p.controls = p.source.Controls()
	if p.recorder != nil {
		p.recorder.RecordFrame(p.controls)
	}

	p.physics.Step(dt)
	p.player.Update()
	p.enemies.Update()

	if next, done, err := p.updateExit(); done {
		return p.leave(next, err)
	}

	for i := len(p.springboards) - 1; i >= 0; i-- {
		p.springboards[i].Update()
	}
	for i := len(p.platforms) - 1; i >= 0; i-- {
		p.platforms[i].Update()
	}
	for i := len(p.switches) - 1; i >= 0; i-- {
		p.switches[i].Update()
	}
	p.sweepCollected()

	if next, done, err := p.checkDeath(); done {
		return p.leave(next, err)
	}

	p.updateCamera()
	p.hud.Update(p.Elapsed())
	return nil, nil
}

// updateExit spawns the boss level exit once every boss is gone and finishes
// the level when the exit was touched.
func (p *Platformer) updateExit() (next scene.Scene, done bool, err error) {
	if p.exit == nil {
		if p.exitPending && p.env.Session.Boss.Cleared() {
			p.env.Logger.Info("boss defeated", "level", p.level)
			p.spawnExit(p.exitX, p.exitY)
			p.exitPending = false
		}
		return nil, false, nil
	}

	p.exit.Update()
	if !p.exit.Touched() {
		return nil, false, nil
	}

	p.state = state.StateLevelComplete
	seconds := int(math.Floor(p.Elapsed()))
	levels := p.env.Session.Levels
	hasNext := levels.Complete(p.level, seconds)
	if err := p.env.Saves.SaveGame(levels); err != nil {
		p.env.Logger.Warn("failed to save game", "err", err)
	}
	p.env.Logger.Info("level complete", "level", p.level, "seconds", seconds)

	if hasNext {
		next, err = p.env.Router.Level(p.level + 1)
		return next, true, err
	}
	return p.env.Router.Credits(), true, nil
}

// checkDeath costs a life when the player fell off the map or died.
func (p *Platformer) checkDeath() (next scene.Scene, done bool, err error) {
	s := p.player.Sprite()
	if s.Y() <= p.stage.HeightInPixels() && s.State() != ecs.StateDead {
		return nil, false, nil
	}

	p.state = state.StateDead
	lives := p.env.Session.LoseLife()
	p.env.Logger.Info("player died", "level", p.level, "lives", lives)
	if lives > 0 {
		next, err = p.env.Router.Level(p.level)
		return next, true, err
	}
	return p.env.Router.GameOver(), true, nil
}

// leave ends the level. A single level run stops the game instead.
func (p *Platformer) leave(next scene.Scene, err error) (scene.Scene, error) {
	if err != nil {
		return nil, err
	}
	if p.opts.Single {
		return nil, ebiten.Termination
	}
	return next, nil
}

// sweepCollected destroys the items picked up since the last frame.
func (p *Platformer) sweepCollected() {
	for i := len(p.collectables) - 1; i >= 0; i-- {
		if c := p.collectables[i]; c.Collected() {
			c.Destroy()
			p.collectables = append(p.collectables[:i], p.collectables[i+1:]...)
		}
	}
}

func (p *Platformer) updateCamera() {
	w, h := p.env.ScreenSize()
	s := p.player.Sprite()
	p.cam.X = clamp(s.X()-w/2, 0, p.stage.WidthInPixels()-w)
	p.cam.Y = clamp(s.Y()-h/2, 0, p.stage.HeightInPixels()-h)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}

// OnEnter starts the music in case a menu stopped it.
func (p *Platformer) OnEnter() {
	p.env.Sound.PlayMusic()
}

// OnExit writes the recording and frees the level.
func (p *Platformer) OnExit() {
	if p.recorder != nil {
		p.recorder.Stop()
		if err := p.recorder.Save(p.opts.RecordPath); err != nil {
			p.env.Logger.Error("failed to save recording", "err", err)
		} else {
			p.env.Logger.Info("recording saved", "file", p.opts.RecordPath, "frames", p.recorder.FrameCount())
		}
		p.recorder = nil
	}
	p.enemies.Destroy()
	p.world.Clear()
}
