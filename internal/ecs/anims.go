package ecs

import "fmt"

// Animation is a named frame sequence from a texture atlas.
// Repeat is the number of extra plays; -1 loops forever.
type Animation struct {
	Key       string
	Texture   string
	Frames    []string
	FrameRate float64
	Repeat    int
}

// Animations is the global animation registry shared by every sprite of a world.
type Animations struct {
	byKey map[string]Animation
}

// NewAnimations creates an empty registry.
func NewAnimations() *Animations {
	return &Animations{byKey: make(map[string]Animation)}
}

// Create registers anim. An existing key is kept and false is returned.
func (a *Animations) Create(anim Animation) bool {
	if _, ok := a.byKey[anim.Key]; ok {
		return false
	}
	if len(anim.Frames) == 0 || anim.FrameRate <= 0 {
		return false
	}
	a.byKey[anim.Key] = anim
	return true
}

// Get returns the animation registered under key.
func (a *Animations) Get(key string) (Animation, bool) {
	anim, ok := a.byKey[key]
	return anim, ok
}

// GenerateFrameNames builds atlas frame names prefix+N+suffix for N in [start, end].
func GenerateFrameNames(prefix, suffix string, start, end int) []string {
	if end < start {
		return nil
	}
	names := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		names = append(names, fmt.Sprintf("%s%d%s", prefix, i, suffix))
	}
	return names
}

// step advances a playback cursor and reports whether the animation completed.
func (anim Animation) step(st *AnimationState, dt float64) (frame string, completed bool) {
	frameDur := 1 / anim.FrameRate
	st.Elapsed += dt
	for st.Elapsed >= frameDur {
		st.Elapsed -= frameDur
		st.Index++
		if st.Index < len(anim.Frames) {
			continue
		}
		if anim.Repeat < 0 || st.Loops < anim.Repeat {
			st.Index = 0
			st.Loops++
			continue
		}
		st.Index = len(anim.Frames) - 1
		st.Playing = false
		completed = true
		break
	}
	return anim.Frames[st.Index], completed
}
