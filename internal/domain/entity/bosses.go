package entity

import (
	"time"

	"github.com/younwookim/critterquest/internal/ecs"
)

// BossKind selects the movement pattern of a boss.
type BossKind int

const (
	BossFrog BossKind = iota
	BossCroc
	BossOpossum
)

func (k BossKind) String() string {
	switch k {
	case BossFrog:
		return "frog"
	case BossCroc:
		return "croc"
	case BossOpossum:
		return "opossum"
	default:
		return "unknown"
	}
}

// CloneName is given to the smaller bosses a hit boss splits into.
const CloneName = "clone"

const (
	bossSplitCount   = 2
	frogBossInterval = 1750 * time.Millisecond
	frogBossLeap     = 500
)

// Boss is a large enemy that splits into two smaller copies when stomped
// until its health runs out.
type Boss struct {
	mortal
	level     Level
	kind      BossKind
	health    int
	direction float64
	spawned   bool
	destroyed bool
	turn      flipper
	leapTimer *ecs.TimerEvent
}

type bossTuning struct {
	spec         spriteSpec
	anim         string
	dragX        float64
	maxVX, maxVY float64
	cooldown     time.Duration
}

var bossTunings = map[BossKind]bossTuning{
	BossFrog: {
		spec: spriteSpec{TextureAtlas, "idle/frog-idle-1.png", 35, 32}, anim: AnimFrogIdle,
		dragX: 1000, maxVX: 1000, maxVY: 1000, cooldown: 500 * time.Millisecond,
	},
	BossCroc: {
		spec: spriteSpec{TextureEnemies, "gator-1.png", 40, 26}, anim: AnimCrocIdle,
		dragX: 0, maxVX: 1000, maxVY: 1000, cooldown: 1500 * time.Millisecond,
	},
	BossOpossum: {
		spec: spriteSpec{TextureAtlas, "opossum-1.png", 36, 28}, anim: AnimOpossumWalk,
		dragX: 1000, maxVX: 300, maxVY: 1000, cooldown: 1500 * time.Millisecond,
	},
}

// NewBoss creates a boss and reports it to the level's boss tracker.
func NewBoss(level Level, kind BossKind, x, y float64, name string, scale float64, health int, direction float64) *Boss {
	tune := bossTunings[kind]
	b := &Boss{level: level, kind: kind, health: health, direction: direction}
	b.sprite = newEnemySprite(level, name, x, y, tune.spec, colorBoss)
	b.sprite.Owner = b
	b.sprite.SetScale(scale)
	b.sprite.SetDrag(tune.dragX, 0)
	b.sprite.SetMaxVelocity(tune.maxVX, tune.maxVY)
	b.turn = newFlipper(level.World().Clock, tune.cooldown)
	b.watchDeath()

	if kind == BossFrog {
		b.leapTimer = level.World().Clock.AddEvent(frogBossInterval, true, b.leap)
	}

	level.BossSpawned()
	return b
}

// NewFrogBoss creates a boss that leaps at the player's side of the screen.
func NewFrogBoss(level Level, x, y float64, name string, scale float64, health int, direction float64) *Boss {
	return NewBoss(level, BossFrog, x, y, name, scale, health, direction)
}

// NewCrocBoss creates a boss that charges back and forth.
func NewCrocBoss(level Level, x, y float64, name string, scale float64, health int, direction float64) *Boss {
	return NewBoss(level, BossCroc, x, y, name, scale, health, direction)
}

// NewOpossumBoss creates a boss that walks back and forth.
func NewOpossumBoss(level Level, x, y float64, name string, scale float64, health int, direction float64) *Boss {
	return NewBoss(level, BossOpossum, x, y, name, scale, health, direction)
}

func (b *Boss) Kind() BossKind      { return b.kind }
func (b *Boss) Health() int         { return b.health }
func (b *Boss) Direction() float64  { return b.direction }
func (b *Boss) SpawnedClones() bool { return b.spawned }

func (b *Boss) leap() {
	s := b.sprite
	if !s.Active() || s.State() != ecs.StateNormal || !s.Blocked().Down {
		return
	}
	s.SetVelocity(-frogBossLeap*b.direction, -frogBossLeap)
}

// Hit starts the death animation and splits the boss while it has health left.
func (b *Boss) Hit() {
	b.die()
	if b.health == 0 || b.spawned {
		return
	}
	b.spawned = true

	w, h := b.level.ScreenSize()
	scale := b.sprite.Scale() - 0.5
	for i := 0; i < bossSplitCount; i++ {
		dir := 1.0
		if i%2 == 1 {
			dir = -1
		}
		clone := NewBoss(b.level, b.kind, w/2, h*0.1, CloneName, scale, b.health-1, dir)
		b.level.AddEnemy(clone)
	}
}

func (b *Boss) Update() {
	s := b.sprite
	tune := bossTunings[b.kind]

	switch s.State() {
	case ecs.StateDying:
		b.Hit()
		return
	case ecs.StateDeathAnimation, ecs.StateDead:
		return
	}

	if b.turn.flip(s) {
		b.direction = -b.direction
	}

	switch b.kind {
	case BossCroc:
		s.SetVelocityX(250 * b.direction)
		s.SetFlipX(b.direction == 1)
	case BossOpossum:
		s.SetVelocityX(175 * b.direction)
		s.SetFlipX(b.direction == 1)
	case BossFrog:
		s.SetFlipX(b.direction == -1)
		if !s.Blocked().Down {
			if s.VelocityY() < 0 {
				s.SetTexture(TextureAtlas, "jump/frog-jump-1.png")
			} else {
				s.SetTexture(TextureAtlas, "jump/frog-jump-2.png")
			}
			return
		}
	}

	s.Play(tune.anim, true)
}

// Destroy removes the boss and reports it to the level's boss tracker once.
func (b *Boss) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	b.turn.stop()
	if b.leapTimer != nil {
		b.leapTimer.Remove()
	}
	b.sprite.Destroy()
	b.level.BossDefeated()
}
