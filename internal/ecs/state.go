package ecs

// State is the life state of a sprite, shared by every entity kind.
type State int

const (
	StateNormal State = iota
	StateDying
	StateDeathAnimation
	StateDead
	StateFlipDirection
	StateExitTouched
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateDying:
		return "dying"
	case StateDeathAnimation:
		return "death_animation"
	case StateDead:
		return "dead"
	case StateFlipDirection:
		return "flip_direction"
	case StateExitTouched:
		return "exit_touched"
	default:
		return "unknown"
	}
}
