package state

import (
	"github.com/younwookim/critterquest/internal/domain/progress"
	"github.com/younwookim/critterquest/internal/infrastructure/config"
)

// BossTracker counts the live boss enemies of the current level, clones included.
type BossTracker struct {
	EnemiesRemaining int
	spawned          bool
}

// Spawned registers a new boss enemy.
func (b *BossTracker) Spawned() {
	b.spawned = true
	b.EnemiesRemaining++
}

// Defeated unregisters a boss enemy.
func (b *BossTracker) Defeated() {
	if b.EnemiesRemaining > 0 {
		b.EnemiesRemaining--
	}
}

// Cleared reports whether a boss was fought and none remain.
func (b *BossTracker) Cleared() bool {
	return b.spawned && b.EnemiesRemaining == 0
}

// Reset forgets every boss.
func (b *BossTracker) Reset() {
	*b = BossTracker{}
}

// Session is the state shared by every scene of a running game.
type Session struct {
	Lives int
	Gems  int
	HP    int

	HasJumpPowerup  bool
	HasSpeedPowerup bool

	// Levels is nil until the level select screen loads or creates it.
	Levels progress.LevelState

	Boss  BossTracker
	Muted bool

	rules   config.GameRules
	started bool
}

// NewSession creates a session that has not started a level yet.
func NewSession(rules config.GameRules) *Session {
	return &Session{rules: rules}
}

// Rules returns the session rules.
func (s *Session) Rules() config.GameRules {
	return s.rules
}

// Start fills in hp, gems and lives the first time a level is entered.
// Later calls keep the values carried over from previous levels.
func (s *Session) Start() {
	if s.started {
		return
	}
	s.started = true
	s.HP = s.rules.HP
	s.Gems = 0
	s.Lives = s.rules.Lives
}

// Started reports whether Start ran since the last Reset.
func (s *Session) Started() bool {
	return s.started
}

// AddGem counts a gem. Every GemsPerLife gems turn into a life; it reports
// whether that happened.
func (s *Session) AddGem() bool {
	s.Gems++
	if s.rules.GemsPerLife > 0 && s.Gems >= s.rules.GemsPerLife {
		s.Lives++
		s.Gems = 0
		return true
	}
	return false
}

// AddLife grants an extra life.
func (s *Session) AddLife() {
	s.Lives++
}

// LoseLife takes a life and returns how many are left.
func (s *Session) LoseLife() int {
	s.Lives--
	return s.Lives
}

// Reset clears the session after a game over. Muting survives.
func (s *Session) Reset() {
	muted := s.Muted
	*s = Session{rules: s.rules, Muted: muted}
}
