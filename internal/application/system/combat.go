package system

import (
	"github.com/younwookim/critterquest/internal/domain/entity"
	"github.com/younwookim/critterquest/internal/ecs"
)

// Contact is the outcome of the player touching an enemy.
type Contact int

const (
	ContactNone Contact = iota
	// ContactStomp means the player landed on the enemy from above.
	ContactStomp
	// ContactHurt means the enemy got the player.
	ContactHurt
)

func (c Contact) String() string {
	switch c {
	case ContactStomp:
		return "stomp"
	case ContactHurt:
		return "hurt"
	default:
		return "none"
	}
}

// CombatSystem resolves player and enemy contact
type CombatSystem struct {
	world *ecs.World

	// OnStomp fires after an enemy was stomped.
	OnStomp func(e entity.Enemy)
	// OnPlayerHurt fires when an enemy kills the player.
	OnPlayerHurt func(e entity.Enemy)
}

// NewCombatSystem creates a combat system for world.
func NewCombatSystem(world *ecs.World) *CombatSystem {
	return &CombatSystem{world: world}
}

// Classify reports what a touch between the two sprites means. Only a player
// in normal state interacts; stomped enemies have no body to touch.
func Classify(player, enemy *ecs.Sprite) Contact {
	if player.State() != ecs.StateNormal {
		return ContactNone
	}
	if player.Touching().Down && enemy.Touching().Up {
		return ContactStomp
	}
	return ContactHurt
}

// Resolve checks the player against one enemy and applies the result. A
// stomped enemy starts dying with its body off and the player bounces; any
// other touch kills the player.
func (s *CombatSystem) Resolve(player *entity.Player, e entity.Enemy) Contact {
	result := ContactNone
	s.world.Overlap(player.Sprite(), e.Sprite(), func(ps, es *ecs.Sprite) {
		result = Classify(ps, es)
	})

	switch result {
	case ContactStomp:
		es := e.Sprite()
		es.SetState(ecs.StateDying)
		es.EnableBody(false)
		player.Bounce(player.Stats().StompBounce)
		if s.OnStomp != nil {
			s.OnStomp(e)
		}
	case ContactHurt:
		player.Sprite().SetState(ecs.StateDying)
		if s.OnPlayerHurt != nil {
			s.OnPlayerHurt(e)
		}
	}
	return result
}
