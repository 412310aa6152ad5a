package system

import (
	"fmt"

	"github.com/younwookim/critterquest/internal/domain/tilemap"
	"github.com/younwookim/critterquest/internal/infrastructure/config"
)

// Tileset tile properties set in the Tiled editor.
const (
	PropCollides       = "collides"
	PropCollideTopOnly = "collide_top_only"
	PropCollideDamage  = "collide_dmg"
	PropWidget         = "widget"
)

// Tiled stores flip flags in the top bits of a gid.
const gidMask = 0x1fffffff

var layerDepths = map[string]int{
	tilemap.LayerBelow:  0,
	tilemap.LayerWorld:  2,
	tilemap.LayerHidden: 2,
	tilemap.LayerAbove:  3,
}

// LoadStage converts a Tiled map into level geometry.
// The four tile layers are optional; the object layer supplies spawn points.
func LoadStage(m *config.TiledMap) (*tilemap.Map, error) {
	if m == nil {
		return nil, fmt.Errorf("nil map")
	}

	level := &tilemap.Map{
		Width:      m.Width,
		Height:     m.Height,
		TileWidth:  m.TileWidth,
		TileHeight: m.TileHeight,
	}

	props := make(map[int]config.TiledTile)
	for _, ts := range m.Tilesets {
		level.Tilesets = append(level.Tilesets, tilemap.Tileset{
			FirstGID:   ts.FirstGID,
			Name:       ts.Name,
			Image:      ts.Image,
			TileWidth:  ts.TileWidth,
			TileHeight: ts.TileHeight,
			Columns:    ts.Columns,
			TileCount:  ts.TileCount,
			Margin:     ts.Margin,
			Spacing:    ts.Spacing,
		})
		for _, tile := range ts.Tiles {
			props[ts.FirstGID+tile.ID] = tile
		}
	}

	for _, l := range m.Layers {
		switch l.Type {
		case config.TiledTileLayer:
			layer, err := loadTileLayer(l, m, props)
			if err != nil {
				return nil, err
			}
			level.Layers = append(level.Layers, layer)
		case config.TiledObjectGroup:
			for _, o := range l.Objects {
				obj := tilemap.Object{
					ID:     o.ID,
					Name:   o.Name,
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				}
				if o.Text != nil {
					obj.Text = &tilemap.Text{Text: o.Text.Text, HAlign: o.Text.HAlign, Color: o.Text.Color}
				}
				level.Objects = append(level.Objects, obj)
			}
		}
	}

	if level.Layer(tilemap.LayerWorld) == nil {
		return nil, fmt.Errorf("map has no %q layer", tilemap.LayerWorld)
	}

	return level, nil
}

func loadTileLayer(l config.TiledLayer, m *config.TiledMap, props map[int]config.TiledTile) (*tilemap.Layer, error) {
	w, h := l.Width, l.Height
	if w == 0 || h == 0 {
		w, h = m.Width, m.Height
	}
	if len(l.Data) != w*h {
		return nil, fmt.Errorf("layer %q has %d tiles, want %d", l.Name, len(l.Data), w*h)
	}

	layer := tilemap.NewLayer(l.Name, w, h)
	layer.Visible = l.Visible && l.Name != tilemap.LayerHidden
	layer.Depth = layerDepths[l.Name]

	for i, raw := range l.Data {
		gid := raw & gidMask
		if gid == 0 {
			continue
		}
		p := props[gid]
		layer.Tiles[i] = tilemap.Tile{
			GID:      gid,
			Collides: p.Bool(PropCollides),
			TopOnly:  p.Bool(PropCollideTopOnly),
			Damage:   p.Bool(PropCollideDamage),
			Widget:   p.Bool(PropWidget),
		}
	}

	return layer, nil
}
