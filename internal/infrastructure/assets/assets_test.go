package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/critterquest/internal/domain/tilemap"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 0xff, A: 0xff})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeImage(t *testing.T) {
	fsys := fstest.MapFS{
		"a.png":   {Data: pngBytes(t, 4, 2)},
		"bad.png": {Data: []byte("not a png")},
	}

	img, err := decodeImage(fsys, "a.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())

	_, err = decodeImage(fsys, "bad.png")
	assert.ErrorContains(t, err, "failed to decode")

	_, err = decodeImage(fsys, "missing.png")
	assert.ErrorContains(t, err, "failed to read")
}

func TestLibrary_MissingFiles(t *testing.T) {
	lib := New(fstest.MapFS{}, log.New(io.Discard))

	assert.Equal(t, 0, lib.LoadDefaults())
	assert.False(t, lib.Loaded())

	_, ok := lib.Frame(TextureAtlas, "player/idle/player-idle-1.png")
	assert.False(t, ok)
	_, ok = lib.Image(ImageBackgroundFar)
	assert.False(t, ok)
	_, ok = lib.Tile(tilemap.Tileset{Name: "tileset", FirstGID: 1, TileCount: 4, Columns: 2}, 1)
	assert.False(t, ok)
}

func TestLibrary_AtlasWithoutImage(t *testing.T) {
	fsys := fstest.MapFS{
		"atlas/props.json": {Data: []byte(`{"frames": {"crate.png": {"frame": {"x": 0, "y": 0, "w": 16, "h": 16}}}}`)},
	}
	lib := New(fsys, log.New(io.Discard))

	assert.False(t, lib.LoadAtlas(TextureProps, "atlas/props.png", "atlas/props.json"))
}

func TestTileRect(t *testing.T) {
	ts := tilemap.Tileset{
		FirstGID:   10,
		Name:       "tileset",
		TileWidth:  16,
		TileHeight: 16,
		Columns:    4,
		TileCount:  8,
		Margin:     1,
		Spacing:    2,
	}

	r, ok := TileRect(ts, 10)
	require.True(t, ok)
	assert.Equal(t, image.Rect(1, 1, 17, 17), r)

	r, ok = TileRect(ts, 15)
	require.True(t, ok)
	assert.Equal(t, image.Rect(19, 19, 35, 35), r)

	_, ok = TileRect(ts, 18)
	assert.False(t, ok)
	_, ok = TileRect(ts, 9)
	assert.False(t, ok)
}
