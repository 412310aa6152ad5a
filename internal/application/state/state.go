package state

// GameState represents the phase of a running level
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateLevelComplete
	StateDead
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateLevelComplete:
		return "LevelComplete"
	case StateDead:
		return "Dead"
	default:
		return "Unknown"
	}
}
