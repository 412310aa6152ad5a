package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/critterquest/internal/domain/entity"
)

// Replayer handles input playback from recorded data. It serves as the
// control source of a level.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Level < 1 {
		return nil, fmt.Errorf("replay has no level")
	}

	return &data, nil
}

// Next returns the input for the current frame and advances
func (r *Replayer) Next() (entity.Controls, bool) {
	if r.frame >= len(r.data.Frames) {
		return entity.Controls{}, false
	}
	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Controls(), true
}

// Controls returns the next recorded frame, or no input once the recording
// has run out.
func (r *Replayer) Controls() entity.Controls {
	c, _ := r.Next()
	return c
}

// Done reports whether every frame was played.
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// Level returns the recorded level number
func (r *Replayer) Level() int {
	return r.data.Level
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
