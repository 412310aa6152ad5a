package entity

import (
	"time"

	"github.com/younwookim/critterquest/internal/ecs"
)

// Player animation keys.
const (
	AnimPlayerRun    = "player-run"
	AnimPlayerIdle   = "player-idle"
	AnimPlayerCrouch = "player-crouch"
	AnimPlayerDie    = "player-die"
)

const (
	playerName   = "player"
	playerFrameW = 33
	playerFrameH = 32
)

// PlayerStats tunes the player's movement.
type PlayerStats struct {
	GroundAcceleration float64
	AirAcceleration    float64
	// SpeedMultiplier applies while the speed boots are worn and run is held.
	SpeedMultiplier    float64
	DragX              float64
	MaxVelocityY       float64
	JumpVelocity       float64
	DoubleJumpVelocity float64
	StompBounce        float64
	SpringVelocity     float64
	DoubleJumpDelay    time.Duration
	DeathDelay         time.Duration
	// BodyWidth is kept wider than a tile so the player cannot slip into gaps.
	BodyWidth float64
}

// DefaultPlayerStats returns the stock tuning.
func DefaultPlayerStats() PlayerStats {
	return PlayerStats{
		GroundAcceleration: 300,
		AirAcceleration:    300,
		SpeedMultiplier:    2,
		DragX:              1000,
		MaxVelocityY:       800,
		JumpVelocity:       500,
		DoubleJumpVelocity: 275,
		StompBounce:        350,
		SpringVelocity:     850,
		DoubleJumpDelay:    500 * time.Millisecond,
		DeathDelay:         850 * time.Millisecond,
		BodyWidth:          18,
	}
}

// Player is the character controlled by the keyboard.
type Player struct {
	level  Level
	sprite *ecs.Sprite
	stats  PlayerStats

	speedMultiplier   float64
	usedDoubleJump    bool
	onStandableObject bool
	onGround          bool
	crouching         bool

	doubleJumpTimer *ecs.TimerEvent
	deathTimer      *ecs.TimerEvent
}

func registerPlayerAnims(w *ecs.World) {
	for _, a := range []struct {
		key, prefix string
		end         int
	}{
		{AnimPlayerRun, "run/player-run-", 6},
		{AnimPlayerIdle, "idle/player-idle-", 4},
		{AnimPlayerCrouch, "crouch/player-crouch-", 2},
		{AnimPlayerDie, "hurt/player-hurt-", 2},
	} {
		w.Anims.Create(ecs.Animation{
			Key:       a.key,
			Texture:   TextureAtlas,
			Frames:    ecs.GenerateFrameNames(a.prefix, ".png", 1, a.end),
			FrameRate: 10,
			Repeat:    -1,
		})
	}
}

// NewPlayer creates the player centred on (x, y).
func NewPlayer(level Level, x, y float64, stats PlayerStats) *Player {
	w := level.World()
	registerPlayerAnims(w)

	p := &Player{level: level, stats: stats, speedMultiplier: 1}
	p.sprite = w.AddSprite(ecs.SpriteConfig{
		Name:    playerName,
		Kind:    ecs.KindPlayer,
		X:       x,
		Y:       y,
		Texture: TextureAtlas,
		Frame:   "idle/player-idle-1.png",
		Width:   playerFrameW,
		Height:  playerFrameH,
		Fill:    colorPlayer,
	})
	p.sprite.Owner = p
	p.sprite.SetDrag(stats.DragX, 0)
	p.sprite.SetMaxVelocity(stats.GroundAcceleration, stats.MaxVelocityY)
	p.sprite.SetCollideWorld(true, true)
	p.sprite.SetDepth(1)
	p.standUp()
	return p
}

func (p *Player) Sprite() *ecs.Sprite { return p.sprite }

// OnGround reports whether the last update found the player standing.
func (p *Player) OnGround() bool { return p.onGround }

// Crouching reports whether the player is crouched.
func (p *Player) Crouching() bool { return p.crouching }

// SetOnStandableObject marks the player as standing on a prop for this frame.
func (p *Player) SetOnStandableObject() { p.onStandableObject = true }

// OnStandableObject reports whether a prop carried the player this frame.
func (p *Player) OnStandableObject() bool { return p.onStandableObject }

// UsedDoubleJump reports whether the double jump is spent or locked.
func (p *Player) UsedDoubleJump() bool { return p.usedDoubleJump }

// ResetDoubleJump makes the double jump available again.
func (p *Player) ResetDoubleJump() { p.usedDoubleJump = false }

// Bounce launches the player upwards and restores the double jump.
func (p *Player) Bounce(velocity float64) {
	p.sprite.SetVelocityY(-velocity)
	p.usedDoubleJump = false
}

// Stats returns the player's tuning.
func (p *Player) Stats() PlayerStats { return p.stats }

func (p *Player) Update() {
	switch p.sprite.State() {
	case ecs.StateNormal:
		p.move()
	case ecs.StateDying:
		p.die()
	}

	// colliders set this again during the next physics step
	p.onStandableObject = false
}

func (p *Player) move() {
	s := p.sprite
	c := p.level.Controls()
	hasDoubleJump, hasSpeedBoots := p.level.Powerups()

	if hasSpeedBoots && c.Run {
		s.SetTint(tintSpeed)
		p.speedMultiplier = p.stats.SpeedMultiplier
	} else {
		s.ClearTint()
		p.speedMultiplier = 1
	}

	p.onGround = s.Blocked().Down || p.onStandableObject
	accel := p.stats.AirAcceleration * p.speedMultiplier
	if p.onGround {
		accel = p.stats.GroundAcceleration * p.speedMultiplier
	}
	s.SetMaxVelocity(accel, p.stats.MaxVelocityY)

	switch {
	case c.Left:
		s.SetAccelerationX(-accel)
		s.SetFlipX(true)
	case c.Right:
		s.SetAccelerationX(accel)
		s.SetFlipX(false)
	default:
		s.SetAccelerationX(0)
	}

	if p.onGround && c.Jump {
		s.SetVelocityY(-p.stats.JumpVelocity)
		p.level.PlaySound(SoundJump)
		// lock the double jump so a held key does not fire it at once
		p.usedDoubleJump = true
		if p.doubleJumpTimer != nil {
			p.doubleJumpTimer.Remove()
		}
		p.doubleJumpTimer = p.level.World().Clock.DelayedCall(p.stats.DoubleJumpDelay, func() {
			p.usedDoubleJump = false
		})
	}

	if p.onGround {
		switch {
		case c.Crouch:
			s.Play(AnimPlayerCrouch, true)
			p.crouch()
		case s.VelocityX() != 0:
			p.standUp()
			s.Play(AnimPlayerRun, true)
		default:
			s.Play(AnimPlayerIdle, true)
			p.standUp()
		}
		return
	}

	s.StopAnimation()
	if s.VelocityY() < 0 {
		s.SetTexture(TextureAtlas, "jump/player-jump-1.png")
	} else {
		s.SetTexture(TextureAtlas, "jump/player-jump-2.png")
	}

	if hasDoubleJump && !p.usedDoubleJump && c.Jump {
		// a falling player jumps from zero so the height stays consistent
		vy := s.VelocityY()
		if vy > 0 {
			vy = 0
		}
		s.SetVelocityY(vy - p.stats.DoubleJumpVelocity)
		p.level.PlaySound(SoundJump)
		p.usedDoubleJump = true
	}
}

// crouch halves the body and keeps its bottom edge in place.
func (p *Player) crouch() {
	p.crouching = true
	p.sprite.SetBodySize(p.stats.BodyWidth, playerFrameH/2, false)
	p.sprite.SetBodyOffset((playerFrameW-p.stats.BodyWidth)/2, playerFrameH/2)
}

func (p *Player) standUp() {
	p.crouching = false
	p.sprite.SetBodySize(p.stats.BodyWidth, playerFrameH, true)
}

func (p *Player) die() {
	s := p.sprite
	s.Play(AnimPlayerDie, true)
	s.Stop()
	s.SetVelocityY(-p.stats.JumpVelocity)
	s.SetState(ecs.StateDeathAnimation)
	p.deathTimer = p.level.World().Clock.DelayedCall(p.stats.DeathDelay, func() {
		if s.Active() {
			s.SetState(ecs.StateDead)
		}
	})
	// the player falls through everything while the death animation runs
	s.DisableCollisionFaces()
}

func (p *Player) Destroy() {
	if p.doubleJumpTimer != nil {
		p.doubleJumpTimer.Remove()
	}
	if p.deathTimer != nil {
		p.deathTimer.Remove()
	}
	p.sprite.Destroy()
}
