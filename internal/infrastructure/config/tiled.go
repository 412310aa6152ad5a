package config

// TiledMap is the subset of the Tiled JSON map format used by level files.
type TiledMap struct {
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	TileWidth  int            `json:"tilewidth"`
	TileHeight int            `json:"tileheight"`
	Layers     []TiledLayer   `json:"layers"`
	Tilesets   []TiledTileset `json:"tilesets"`
}

// TiledLayer is either a tile layer (Data) or an object group (Objects).
type TiledLayer struct {
	Name    string        `json:"name"`
	Type    string        `json:"type"`
	Width   int           `json:"width"`
	Height  int           `json:"height"`
	Visible bool          `json:"visible"`
	Data    []int         `json:"data,omitempty"`
	Objects []TiledObject `json:"objects,omitempty"`
}

const (
	TiledTileLayer   = "tilelayer"
	TiledObjectGroup = "objectgroup"
)

type TiledObject struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"`
	Type   string     `json:"type"`
	X      float64    `json:"x"`
	Y      float64    `json:"y"`
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Text   *TiledText `json:"text,omitempty"`
}

type TiledText struct {
	Text   string `json:"text"`
	HAlign string `json:"halign,omitempty"`
	Color  string `json:"color,omitempty"`
	Wrap   bool   `json:"wrap,omitempty"`
}

type TiledTileset struct {
	FirstGID    int         `json:"firstgid"`
	Name        string      `json:"name"`
	Image       string      `json:"image"`
	ImageWidth  int         `json:"imagewidth"`
	ImageHeight int         `json:"imageheight"`
	TileWidth   int         `json:"tilewidth"`
	TileHeight  int         `json:"tileheight"`
	Columns     int         `json:"columns"`
	TileCount   int         `json:"tilecount"`
	Margin      int         `json:"margin"`
	Spacing     int         `json:"spacing"`
	Tiles       []TiledTile `json:"tiles,omitempty"`
}

// TiledTile carries the custom properties of one tile id within its tileset.
type TiledTile struct {
	ID         int             `json:"id"`
	Properties []TiledProperty `json:"properties,omitempty"`
}

type TiledProperty struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// Bool returns the boolean value of the named property.
func (t TiledTile) Bool(name string) bool {
	for _, p := range t.Properties {
		if p.Name != name {
			continue
		}
		v, ok := p.Value.(bool)
		return ok && v
	}
	return false
}

// Layer returns the named layer.
func (m *TiledMap) Layer(name string) (TiledLayer, bool) {
	for _, l := range m.Layers {
		if l.Name == name {
			return l, true
		}
	}
	return TiledLayer{}, false
}
