// Package replay records the controls of a level run and plays them back.
package replay

import "github.com/younwookim/critterquest/internal/domain/entity"

// Version is written into every recording.
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	J bool `json:"j,omitempty"` // Jump
	D bool `json:"d,omitempty"` // Crouch
	S bool `json:"s,omitempty"` // Run (shift)
	E bool `json:"e,omitempty"` // Interact
}

// ReplayData contains all data needed to replay a level
type ReplayData struct {
	Version   string       `json:"version"`
	Level     int          `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

func toFrame(n int, c entity.Controls) FrameInput {
	return FrameInput{
		F: n,
		L: c.Left,
		R: c.Right,
		J: c.Jump,
		D: c.Crouch,
		S: c.Run,
		E: c.Interact,
	}
}

// Controls converts the recorded frame back to gameplay controls.
func (fi FrameInput) Controls() entity.Controls {
	return entity.Controls{
		Left:     fi.L,
		Right:    fi.R,
		Jump:     fi.J,
		Crouch:   fi.D,
		Run:      fi.S,
		Interact: fi.E,
	}
}
