// Package sound plays the game's music loop and sound effects.
package sound

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/younwookim/critterquest/internal/infrastructure/config"
)

// Effect names.
const (
	Jump = "jump"
	Coin = "coin"
)

type effect struct {
	pcm    []byte
	volume float64
}

// Manager owns the audio context, the music player and the decoded effects.
// A Manager without a context stays silent.
type Manager struct {
	ctx    *audio.Context
	cfg    config.AudioConfig
	logger *log.Logger

	music   *audio.Player
	effects map[string]effect
	muted   bool
}

// New creates a manager on the process-wide audio context.
func New(cfg config.AudioConfig, logger *log.Logger) *Manager {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(cfg.SampleRate)
	}
	return &Manager{ctx: ctx, cfg: cfg, logger: logger, effects: make(map[string]effect)}
}

// NewSilent creates a manager that never plays anything.
func NewSilent(cfg config.AudioConfig, logger *log.Logger) *Manager {
	return &Manager{cfg: cfg, logger: logger, effects: make(map[string]effect)}
}

// Load decodes the configured music and effects from fsys.
// Missing or broken files are logged and left silent.
func (m *Manager) Load(fsys fs.FS) {
	if m.ctx == nil {
		return
	}

	for name, src := range map[string]struct {
		path   string
		volume float64
	}{
		Jump: {m.cfg.Jump, m.cfg.JumpVolume},
		Coin: {m.cfg.Coin, m.cfg.CoinVolume},
	} {
		pcm, err := decodeFile(fsys, src.path, m.cfg.SampleRate)
		if err != nil {
			m.logger.Warn("sound effect unavailable", "name", name, "err", err)
			continue
		}
		m.effects[name] = effect{pcm: pcm, volume: src.volume}
	}

	if m.music != nil {
		return
	}
	stream, length, err := openStream(fsys, m.cfg.Music, m.cfg.SampleRate)
	if err != nil {
		m.logger.Warn("music unavailable", "path", m.cfg.Music, "err", err)
		return
	}
	player, err := m.ctx.NewPlayer(audio.NewInfiniteLoop(stream, length))
	if err != nil {
		m.logger.Warn("music unavailable", "path", m.cfg.Music, "err", err)
		return
	}
	player.SetVolume(m.cfg.MusicVolume)
	m.music = player
}

// Play starts the named effect. Unknown effects are ignored.
func (m *Manager) Play(name string) {
	if m.ctx == nil || m.muted {
		return
	}
	e, ok := m.effects[name]
	if !ok {
		return
	}
	p := m.ctx.NewPlayerFromBytes(e.pcm)
	p.SetVolume(e.volume)
	p.Play()
}

// PlayMusic starts the music loop if it is not already playing.
func (m *Manager) PlayMusic() {
	if m.music == nil || m.music.IsPlaying() {
		return
	}
	m.music.Play()
}

// StopMusic pauses the music loop.
func (m *Manager) StopMusic() {
	if m.music == nil {
		return
	}
	m.music.Pause()
}

// Muted reports whether sound is muted.
func (m *Manager) Muted() bool {
	return m.muted
}

// SetMuted mutes or unmutes all sound. The music keeps its position.
func (m *Manager) SetMuted(muted bool) {
	m.muted = muted
	if m.music == nil {
		return
	}
	if muted {
		m.music.SetVolume(0)
	} else {
		m.music.SetVolume(m.cfg.MusicVolume)
	}
}

// Has reports whether the named effect was loaded.
func (m *Manager) Has(name string) bool {
	_, ok := m.effects[name]
	return ok
}

type stream interface {
	io.ReadSeeker
	Length() int64
}

func openStream(fsys fs.FS, name string, sampleRate int) (io.ReadSeeker, int64, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var s stream
	switch strings.ToLower(path.Ext(name)) {
	case ".wav":
		s, err = wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	case ".ogg":
		s, err = vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	default:
		return nil, 0, fmt.Errorf("unsupported audio format %q", path.Ext(name))
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return s, s.Length(), nil
}

// decodeFile decodes a whole file to 16-bit stereo PCM.
func decodeFile(fsys fs.FS, name string, sampleRate int) ([]byte, error) {
	s, _, err := openStream(fsys, name, sampleRate)
	if err != nil {
		return nil, err
	}
	pcm, err := io.ReadAll(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return pcm, nil
}
