package entity

import (
	"time"

	"github.com/younwookim/critterquest/internal/ecs"
)

// fakeLevel is a minimal Level backed by a bare world without tiles.
type fakeLevel struct {
	world      *ecs.World
	controls   Controls
	doubleJump bool
	speedBoots bool
	player     *Player
	crates     []*Crate
	enemies    []Enemy
	sounds     []string
	bosses     int
}

func newFakeLevel() *fakeLevel {
	return &fakeLevel{world: ecs.NewWorld(640, 480, 1000)}
}

func (l *fakeLevel) World() *ecs.World              { return l.world }
func (l *fakeLevel) Controls() Controls             { return l.controls }
func (l *fakeLevel) Powerups() (bool, bool)         { return l.doubleJump, l.speedBoots }
func (l *fakeLevel) PlaySound(name string)          { l.sounds = append(l.sounds, name) }
func (l *fakeLevel) ScreenSize() (float64, float64) { return 640, 480 }
func (l *fakeLevel) Player() *Player                { return l.player }
func (l *fakeLevel) Crates() []*Crate               { return l.crates }
func (l *fakeLevel) AddEnemy(e Enemy)               { l.enemies = append(l.enemies, e) }
func (l *fakeLevel) BossSpawned()                   { l.bosses++ }
func (l *fakeLevel) BossDefeated()                  { l.bosses-- }

// advance runs the clock and animations without moving bodies.
func (l *fakeLevel) advance(d time.Duration) {
	step := time.Second / 60
	for elapsed := time.Duration(0); elapsed <= d; elapsed += step {
		l.world.Clock.Update(step.Seconds())
		l.world.UpdateAnimations(step.Seconds())
	}
}

func standOnGround(s *ecs.Sprite) {
	s.Body().Blocked.Down = true
}
