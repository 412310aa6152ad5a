package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/critterquest/internal/domain/tilemap"
	"github.com/younwookim/critterquest/internal/infrastructure/config"
)

func boolProp(name string) config.TiledProperty {
	return config.TiledProperty{Name: name, Type: "bool", Value: true}
}

func createTiledMap() *config.TiledMap {
	return &config.TiledMap{
		Width:      3,
		Height:     2,
		TileWidth:  16,
		TileHeight: 16,
		Layers: []config.TiledLayer{
			{Name: tilemap.LayerBelow, Type: config.TiledTileLayer, Width: 3, Height: 2, Visible: true, Data: []int{5, 0, 0, 0, 0, 0}},
			{Name: tilemap.LayerWorld, Type: config.TiledTileLayer, Width: 3, Height: 2, Visible: true, Data: []int{0, 4, 0, 1, 2, 3 | 0x80000000}},
			{Name: tilemap.LayerHidden, Type: config.TiledTileLayer, Width: 3, Height: 2, Visible: true, Data: []int{0, 0, 1, 0, 0, 0}},
			{Name: tilemap.LayerObject, Type: config.TiledObjectGroup, Visible: true, Objects: []config.TiledObject{
				{ID: 1, Name: "Spawn Point", X: 8, Y: 8},
				{ID: 2, Name: "TutorialText", X: 0, Y: 0, Width: 48, Height: 16, Text: &config.TiledText{Text: "Jump!", HAlign: "center", Color: "#ffffff"}},
			}},
		},
		Tilesets: []config.TiledTileset{
			{
				FirstGID: 1, Name: "tileset", Image: "tileset.png", TileWidth: 16, TileHeight: 16, Columns: 2, TileCount: 4,
				Tiles: []config.TiledTile{
					{ID: 0, Properties: []config.TiledProperty{boolProp(PropCollides)}},
					{ID: 1, Properties: []config.TiledProperty{boolProp(PropCollides), boolProp(PropCollideDamage)}},
					{ID: 2, Properties: []config.TiledProperty{boolProp(PropCollides), boolProp(PropCollideTopOnly)}},
					{ID: 3, Properties: []config.TiledProperty{boolProp(PropWidget)}},
				},
			},
			{FirstGID: 5, Name: "props", TileCount: 8},
		},
	}
}

func TestLoadStage(t *testing.T) {
	t.Run("loads geometry", func(t *testing.T) {
		level, err := LoadStage(createTiledMap())
		require.NoError(t, err)

		assert.Equal(t, 3, level.Width)
		assert.Equal(t, 2, level.Height)
		assert.Equal(t, 48.0, level.WidthInPixels())
		assert.Equal(t, 32.0, level.HeightInPixels())
		assert.Len(t, level.Layers, 3)
		assert.Len(t, level.Tilesets, 2)
	})

	t.Run("maps tile properties", func(t *testing.T) {
		level, err := LoadStage(createTiledMap())
		require.NoError(t, err)

		world := level.Layer(tilemap.LayerWorld)
		require.NotNil(t, world)

		assert.True(t, world.At(0, 1).BlocksSides())
		assert.True(t, world.At(1, 1).Damage)
		assert.True(t, world.At(2, 1).TopOnly, "flip flags are masked")
		assert.Equal(t, 3, world.At(2, 1).GID)
		assert.True(t, world.At(1, 0).Widget)
		assert.False(t, world.At(1, 0).BlocksFromAbove())
		assert.True(t, world.At(0, 0).Empty())
	})

	t.Run("sets layer depth and visibility", func(t *testing.T) {
		level, err := LoadStage(createTiledMap())
		require.NoError(t, err)

		assert.Equal(t, 0, level.Layer(tilemap.LayerBelow).Depth)
		assert.Equal(t, 2, level.Layer(tilemap.LayerWorld).Depth)

		hidden := level.Layer(tilemap.LayerHidden)
		require.NotNil(t, hidden)
		assert.False(t, hidden.Visible)
		assert.True(t, hidden.At(2, 0).Collides)
	})

	t.Run("loads objects", func(t *testing.T) {
		level, err := LoadStage(createTiledMap())
		require.NoError(t, err)

		spawn, ok := level.FindObject("Spawn Point")
		require.True(t, ok)
		assert.Equal(t, 8.0, spawn.X)

		tip, ok := level.FindObject("TutorialText")
		require.True(t, ok)
		require.NotNil(t, tip.Text)
		assert.Equal(t, "Jump!", tip.Text.Text)
	})

	t.Run("rejects bad maps", func(t *testing.T) {
		_, err := LoadStage(nil)
		assert.Error(t, err)

		noWorld := createTiledMap()
		noWorld.Layers = noWorld.Layers[:1]
		_, err = LoadStage(noWorld)
		assert.Error(t, err)

		short := createTiledMap()
		short.Layers[1].Data = []int{1}
		_, err = LoadStage(short)
		assert.Error(t, err)
	})
}
