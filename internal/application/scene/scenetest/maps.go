package scenetest

import (
	"github.com/younwookim/critterquest/internal/application/system"
	"github.com/younwookim/critterquest/internal/domain/tilemap"
	"github.com/younwookim/critterquest/internal/infrastructure/config"
)

// Tile gids of the test tileset.
const (
	TileSolid = iota + 1
	TileDamage
	TileTopOnly
	TileWidget
)

// TileSize is the edge of a test tile in pixels.
const TileSize = 16

// Object is a map object placed in pixels.
type Object struct {
	Name string
	X, Y float64
	W, H float64
	Text string
}

// Map is a small level: a solid floor on the bottom row plus the given tiles
// and objects.
type Map struct {
	// Width and Height in tiles; zero means 40x15.
	Width, Height int
	// NoFloor leaves the bottom row empty.
	NoFloor bool
	// Tiles sets extra collision tiles by {x, y}.
	Tiles   map[[2]int]int
	Objects []Object
}

// FloorY returns the top of the floor row in pixels.
func (m Map) FloorY() float64 {
	_, h := m.size()
	return float64((h - 1) * TileSize)
}

func (m Map) size() (int, int) {
	w, h := m.Width, m.Height
	if w == 0 {
		w = 40
	}
	if h == 0 {
		h = 15
	}
	return w, h
}

// Tiled converts the map to the Tiled JSON structure.
func (m Map) Tiled() config.TiledMap {
	w, h := m.size()

	data := make([]int, w*h)
	if !m.NoFloor {
		for x := 0; x < w; x++ {
			data[(h-1)*w+x] = TileSolid
		}
	}
	for pos, gid := range m.Tiles {
		data[pos[1]*w+pos[0]] = gid
	}

	objects := make([]config.TiledObject, 0, len(m.Objects))
	for i, o := range m.Objects {
		obj := config.TiledObject{ID: i + 1, Name: o.Name, X: o.X, Y: o.Y, Width: o.W, Height: o.H}
		if o.Text != "" {
			obj.Text = &config.TiledText{Text: o.Text, HAlign: "center", Color: "#ffffff", Wrap: true}
		}
		objects = append(objects, obj)
	}

	prop := func(names ...string) []config.TiledProperty {
		var props []config.TiledProperty
		for _, n := range names {
			props = append(props, config.TiledProperty{Name: n, Type: "bool", Value: true})
		}
		return props
	}

	return config.TiledMap{
		Width:      w,
		Height:     h,
		TileWidth:  TileSize,
		TileHeight: TileSize,
		Layers: []config.TiledLayer{
			{Name: tilemap.LayerWorld, Type: config.TiledTileLayer, Width: w, Height: h, Visible: true, Data: data},
			{Name: tilemap.LayerObject, Type: config.TiledObjectGroup, Visible: true, Objects: objects},
		},
		Tilesets: []config.TiledTileset{{
			FirstGID:    1,
			Name:        "tileset",
			Image:       "tilesets/tileset.png",
			ImageWidth:  4 * TileSize,
			ImageHeight: TileSize,
			TileWidth:   TileSize,
			TileHeight:  TileSize,
			Columns:     4,
			TileCount:   4,
			Tiles: []config.TiledTile{
				{ID: TileSolid - 1, Properties: prop(system.PropCollides)},
				{ID: TileDamage - 1, Properties: prop(system.PropCollides, system.PropCollideDamage)},
				{ID: TileTopOnly - 1, Properties: prop(system.PropCollides, system.PropCollideTopOnly)},
				{ID: TileWidget - 1, Properties: prop(system.PropWidget)},
			},
		}},
	}
}
