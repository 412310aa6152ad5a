package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SettingsFile is the name of the settings file inside a config directory.
const SettingsFile = "config.yaml"

// Loader loads game configuration and level data using the fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the filesystem the loader reads from.
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// BasePath returns the label the loader was created with.
func (l *Loader) BasePath() string {
	return l.basePath
}

// ReadFile reads a raw file.
func (l *Loader) ReadFile(path string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// LoadSettings loads config.yaml. Missing keys keep their default values.
func (l *Loader) LoadSettings() (*Settings, error) {
	data, err := l.ReadFile(SettingsFile)
	if err != nil {
		return nil, err
	}
	return parseSettings(data, SettingsFile)
}

// LoadTiledMap loads a Tiled JSON map
func (l *Loader) LoadTiledMap(path string) (*TiledMap, error) {
	data, err := l.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m TiledMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", path, err)
	}
	if m.TileWidth <= 0 || m.TileHeight <= 0 || m.Width <= 0 || m.Height <= 0 {
		return nil, fmt.Errorf("invalid map %s: %dx%d tiles of %dx%d", path, m.Width, m.Height, m.TileWidth, m.TileHeight)
	}

	return &m, nil
}

// LoadLevel loads the map of level n using the configured file pattern.
func (l *Loader) LoadLevel(levels LevelsConfig, n int) (*TiledMap, error) {
	if n < 1 || n > levels.Count {
		return nil, fmt.Errorf("level %d out of range 1..%d", n, levels.Count)
	}
	return l.LoadTiledMap(fmt.Sprintf(levels.MapPattern, n))
}

// LoadAtlas loads a TexturePacker JSON atlas
func (l *Loader) LoadAtlas(path string) (*Atlas, error) {
	data, err := l.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var a Atlas
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to parse atlas %s: %w", path, err)
	}

	return &a, nil
}

func parseSettings(data []byte, name string) (*Settings, error) {
	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return &cfg, nil
}

// ResolveSettings finds the settings file.
// Search order: customPath -> ~/.critterquest/config.yaml -> ./configs/config.yaml -> embedded default.
// It returns the settings and the source they came from.
func ResolveSettings(customPath string, embedded *Loader) (*Settings, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSettings(data, customPath)
		if err != nil {
			return nil, "", err
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if p := UserPath(SettingsFile); p != "" {
		if data, err := os.ReadFile(p); err == nil {
			if cfg, err := parseSettings(data, p); err == nil {
				return cfg, p, nil
			}
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", SettingsFile)
	if data, err := os.ReadFile(local); err == nil {
		if cfg, err := parseSettings(data, local); err == nil {
			return cfg, local, nil
		}
	}

	// Use embedded default YAML
	if embedded != nil {
		cfg, err := embedded.LoadSettings()
		if err == nil {
			return cfg, "embedded", nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", err
		}
	}

	cfg := DefaultSettings()
	return &cfg, "defaults", nil
}

// UserPath returns a path under ~/.critterquest, or empty if home is unavailable.
func UserPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".critterquest", name)
}

// overlayFS serves each file from the first layer that has it.
type overlayFS []fs.FS

func (o overlayFS) Open(name string) (fs.File, error) {
	var firstErr error
	for _, layer := range o {
		f, err := layer.Open(name)
		if err == nil {
			return f, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr == nil {
		firstErr = &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return nil, firstErr
}

// Overlay stacks filesystems; earlier layers shadow later ones. Nil layers are skipped.
func Overlay(layers ...fs.FS) fs.FS {
	var o overlayFS
	for _, l := range layers {
		if l != nil {
			o = append(o, l)
		}
	}
	if len(o) == 1 {
		return o[0]
	}
	return o
}
