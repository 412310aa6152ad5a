// Package assets loads texture atlases, background images and tileset images.
// Missing files are logged; sprites then fall back to flat colour drawing.
package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/critterquest/internal/domain/tilemap"
	"github.com/younwookim/critterquest/internal/infrastructure/config"
)

// Texture keys.
const (
	TextureAtlas   = "atlas"
	TextureProps   = "props_atlas"
	TextureEnemies = "additional_enemies_atlas"

	ImageBackgroundFar    = "background-far"
	ImageBackgroundMiddle = "background-middle"
	ImageBackgroundRepeat = "background-repeat"
	ImageMiddleRepeat     = "middleground-repeat"
)

// AtlasFiles lists the atlases every level uses: key -> image and json path.
var AtlasFiles = map[string][2]string{
	TextureAtlas:   {"atlas/items_and_characters_atlas.png", "atlas/items_and_characters_atlas.json"},
	TextureProps:   {"atlas/props.png", "atlas/props.json"},
	TextureEnemies: {"atlas/additional_enemies.png", "atlas/additional_enemies.json"},
}

// ImageFiles lists the standalone images: key -> path.
var ImageFiles = map[string]string{
	ImageBackgroundFar:    "background/back.png",
	ImageBackgroundMiddle: "background/middle.png",
	ImageBackgroundRepeat: "tilesets/environment/back.png",
	ImageMiddleRepeat:     "tilesets/environment/middle.png",
}

// TilesetFiles maps tileset names used in level maps to their images.
var TilesetFiles = map[string]string{
	"tileset": "tilesets/environment/tileset-extruded.png",
	"props":   "tilesets/environment/props.png",
	"widgets": "tilesets/widgets/widgets.png",
}

type atlas struct {
	sheet  *ebiten.Image
	frames map[string]config.AtlasRect
	cache  map[string]*ebiten.Image
}

// Library holds every loaded image.
type Library struct {
	fsys   fs.FS
	logger *log.Logger

	images  map[string]*ebiten.Image
	atlases map[string]*atlas
	tiles   map[string]*ebiten.Image
}

// New creates an empty library reading from fsys.
func New(fsys fs.FS, logger *log.Logger) *Library {
	return &Library{
		fsys:    fsys,
		logger:  logger,
		images:  make(map[string]*ebiten.Image),
		atlases: make(map[string]*atlas),
		tiles:   make(map[string]*ebiten.Image),
	}
}

// LoadDefaults loads the atlases, backgrounds and tilesets. It returns how many
// files were loaded.
func (l *Library) LoadDefaults() int {
	n := 0
	for key, files := range AtlasFiles {
		if l.LoadAtlas(key, files[0], files[1]) {
			n++
		}
	}
	for key, path := range ImageFiles {
		if l.LoadImage(key, path) {
			n++
		}
	}
	for key, path := range TilesetFiles {
		if l.LoadImage(key, path) {
			n++
		}
	}
	return n
}

// LoadImage loads a PNG under key. Loaded keys are skipped.
func (l *Library) LoadImage(key, path string) bool {
	if _, ok := l.images[key]; ok {
		return true
	}
	img, err := decodeImage(l.fsys, path)
	if err != nil {
		l.logger.Debug("image unavailable", "key", key, "err", err)
		return false
	}
	l.images[key] = ebiten.NewImageFromImage(img)
	return true
}

// LoadAtlas loads a TexturePacker atlas under key. Loaded keys are skipped.
func (l *Library) LoadAtlas(key, imagePath, jsonPath string) bool {
	if _, ok := l.atlases[key]; ok {
		return true
	}
	meta, err := config.NewFSLoader(l.fsys, "assets").LoadAtlas(jsonPath)
	if err != nil {
		l.logger.Debug("atlas unavailable", "key", key, "err", err)
		return false
	}
	img, err := decodeImage(l.fsys, imagePath)
	if err != nil {
		l.logger.Debug("atlas unavailable", "key", key, "err", err)
		return false
	}

	a := &atlas{
		sheet:  ebiten.NewImageFromImage(img),
		frames: make(map[string]config.AtlasRect, len(meta.Frames)),
		cache:  make(map[string]*ebiten.Image),
	}
	for name, f := range meta.Frames {
		a.frames[name] = f.Frame
	}
	l.atlases[key] = a
	return true
}

// Image returns the image loaded under key.
func (l *Library) Image(key string) (*ebiten.Image, bool) {
	img, ok := l.images[key]
	return img, ok
}

// Frame returns an atlas frame; a texture without frame name resolves to a plain image.
func (l *Library) Frame(texture, frame string) (*ebiten.Image, bool) {
	a, ok := l.atlases[texture]
	if !ok {
		if frame == "" {
			return l.Image(texture)
		}
		return nil, false
	}
	if img, ok := a.cache[frame]; ok {
		return img, true
	}
	r, ok := a.frames[frame]
	if !ok {
		return nil, false
	}
	img := a.sheet.SubImage(image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)).(*ebiten.Image)
	a.cache[frame] = img
	return img, true
}

// Tile returns the image of a tile gid within its tileset.
func (l *Library) Tile(ts tilemap.Tileset, gid int) (*ebiten.Image, bool) {
	cacheKey := fmt.Sprintf("%s#%d", ts.Name, gid)
	if img, ok := l.tiles[cacheKey]; ok {
		return img, true
	}
	sheet, ok := l.images[ts.Name]
	if !ok {
		return nil, false
	}
	r, ok := TileRect(ts, gid)
	if !ok {
		return nil, false
	}
	img := sheet.SubImage(r).(*ebiten.Image)
	l.tiles[cacheKey] = img
	return img, true
}

// TileRect returns the source rectangle of gid inside the tileset image.
func TileRect(ts tilemap.Tileset, gid int) (image.Rectangle, bool) {
	if !ts.Contains(gid) || ts.Columns <= 0 {
		return image.Rectangle{}, false
	}
	id := gid - ts.FirstGID
	col := id % ts.Columns
	row := id / ts.Columns
	x := ts.Margin + col*(ts.TileWidth+ts.Spacing)
	y := ts.Margin + row*(ts.TileHeight+ts.Spacing)
	return image.Rect(x, y, x+ts.TileWidth, y+ts.TileHeight), true
}

// Loaded reports whether any image or atlas was loaded.
func (l *Library) Loaded() bool {
	return len(l.images) > 0 || len(l.atlases) > 0
}

func decodeImage(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}
