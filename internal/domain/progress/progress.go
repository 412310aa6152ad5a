// Package progress tracks which levels are unlocked and their best times.
package progress

import (
	"fmt"
	"sort"
	"strconv"
)

// NotCompleted is the time recorded for a level that was never finished.
const NotCompleted = -1

// Level is the saved state of a single level.
type Level struct {
	Unlocked   bool `json:"unlocked"`
	Time       int  `json:"time"`
	HasEndBoss bool `json:"hasEndBoss"`
}

// LevelState maps a level key ("1", "2", ...) to its state.
type LevelState map[string]Level

// Key returns the map key of level n.
func Key(n int) string {
	return strconv.Itoa(n)
}

// Default returns a fresh state with only level 1 unlocked.
func Default(count int, bossLevels []int) LevelState {
	boss := make(map[int]bool, len(bossLevels))
	for _, b := range bossLevels {
		boss[b] = true
	}

	s := make(LevelState, count)
	for n := 1; n <= count; n++ {
		s[Key(n)] = Level{
			Unlocked:   n == 1,
			Time:       NotCompleted,
			HasEndBoss: boss[n],
		}
	}
	return s
}

// Has reports whether level n exists.
func (s LevelState) Has(n int) bool {
	_, ok := s[Key(n)]
	return ok
}

// IsUnlocked reports whether level n may be played.
func (s LevelState) IsUnlocked(n int) bool {
	return s[Key(n)].Unlocked
}

// HasEndBoss reports whether level n ends with a boss fight.
func (s LevelState) HasEndBoss(n int) bool {
	return s[Key(n)].HasEndBoss
}

// Time returns the recorded time of level n, or NotCompleted.
func (s LevelState) Time(n int) int {
	l, ok := s[Key(n)]
	if !ok {
		return NotCompleted
	}
	return l.Time
}

// Complete records the time taken on level n and unlocks the next level.
// It reports whether a next level exists.
func (s LevelState) Complete(n, seconds int) bool {
	if l, ok := s[Key(n)]; ok {
		l.Time = seconds
		s[Key(n)] = l
	}

	next, ok := s[Key(n+1)]
	if !ok {
		return false
	}
	next.Unlocked = true
	s[Key(n+1)] = next
	return true
}

// Levels returns the level numbers in ascending order. Keys that are not numbers are skipped.
func (s LevelState) Levels() []int {
	levels := make([]int, 0, len(s))
	for k := range s {
		n, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		levels = append(levels, n)
	}
	sort.Ints(levels)
	return levels
}

// Keys returns the level keys in numeric order.
func (s LevelState) Keys() []string {
	levels := s.Levels()
	keys := make([]string, len(levels))
	for i, n := range levels {
		keys[i] = Key(n)
	}
	return keys
}

// Shortcut returns the keyboard shortcut label for level n: 1-9, then A, B, ...
func Shortcut(n int) string {
	if n <= 9 {
		return strconv.Itoa(n)
	}
	return string(rune('A' + n - 10))
}

// Describe returns the level select line for level n.
// ex: "(1) Level 1: UNLOCKED / Time: NOT COMPLETED"
func (s LevelState) Describe(n int) string {
	status := "LOCKED"
	if s.IsUnlocked(n) {
		status = "UNLOCKED"
	}

	timeText := "Time: NOT COMPLETED"
	if t := s.Time(n); t != NotCompleted {
		timeText = fmt.Sprintf("Time: %d seconds", t)
	}

	return fmt.Sprintf("(%s) Level %d: %s / %s", Shortcut(n), n, status, timeText)
}
