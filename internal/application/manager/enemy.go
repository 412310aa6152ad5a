package manager

import (
	"github.com/charmbracelet/log"

	"github.com/younwookim/critterquest/internal/application/state"
	"github.com/younwookim/critterquest/internal/application/system"
	"github.com/younwookim/critterquest/internal/domain/entity"
)

// PlayerSource hands out the current player.
type PlayerSource interface {
	Player() *entity.Player
}

// EnemyManager owns the enemies of a level. It updates them, removes the dead
// ones and resolves their contact with the player.
type EnemyManager struct {
	enemies []entity.Enemy
	players PlayerSource
	combat  *system.CombatSystem
	logger  *log.Logger
}

// NewEnemyManager creates an empty manager and forgets the bosses of the
// previous level.
func NewEnemyManager(players PlayerSource, combat *system.CombatSystem, boss *state.BossTracker, logger *log.Logger) *EnemyManager {
	if boss != nil {
		boss.Reset()
	}
	return &EnemyManager{
		enemies: make([]entity.Enemy, 0, 16),
		players: players,
		combat:  combat,
		logger:  logger,
	}
}

// Add registers an enemy. It is safe to call from inside Update.
func (m *EnemyManager) Add(e entity.Enemy) {
	m.enemies = append(m.enemies, e)
}

// Update runs every enemy once. Enemies added meanwhile wait for the next
// frame.
func (m *EnemyManager) Update() {
	// backwards so removals keep the remaining indices valid
	for i := len(m.enemies) - 1; i >= 0; i-- {
		e := m.enemies[i]
		e.Update()

		if e.Dead() {
			e.Destroy()
			m.enemies = append(m.enemies[:i], m.enemies[i+1:]...)
			continue
		}

		player := m.players.Player()
		if player == nil {
			continue
		}
		if c := m.combat.Resolve(player, e); c != system.ContactNone {
			m.logger.Debug("enemy contact", "enemy", e.Sprite().Name(), "result", c)
		}
	}
}

// Len returns the number of live enemies.
func (m *EnemyManager) Len() int {
	return len(m.enemies)
}

// Enemies returns the live enemies.
func (m *EnemyManager) Enemies() []entity.Enemy {
	return m.enemies
}

// Destroy drops the collection. Sprites go with the world they live in.
func (m *EnemyManager) Destroy() {
	m.enemies = nil
}
