// Package tilemap holds the level geometry decoded from a Tiled map.
package tilemap

// Layer names used by level maps.
const (
	LayerBelow  = "BackgroundDecorator"
	LayerWorld  = "Collision"
	LayerHidden = "HiddenCollision"
	LayerAbove  = "ForegroundDecorator"
	LayerObject = "Objects"
)

// Tile represents a single tile cell and the tileset properties of its gid.
type Tile struct {
	GID      int
	Collides bool
	TopOnly  bool
	Damage   bool
	Widget   bool
}

// Empty reports whether the cell holds no tile.
func (t Tile) Empty() bool {
	return t.GID == 0 && !t.Collides
}

// BlocksSides reports whether the tile stops horizontal and upward motion.
func (t Tile) BlocksSides() bool {
	return t.Collides && !t.Widget && !t.TopOnly
}

// BlocksFromAbove reports whether the tile can be landed on.
func (t Tile) BlocksFromAbove() bool {
	return t.Collides && !t.Widget
}

var wall = Tile{Collides: true}

// Layer is a grid of tiles stored row-major.
type Layer struct {
	Name    string
	Width   int
	Height  int
	Visible bool
	Depth   int
	Tiles   []Tile
}

// NewLayer creates an empty layer.
func NewLayer(name string, width, height int) *Layer {
	return &Layer{
		Name:    name,
		Width:   width,
		Height:  height,
		Visible: true,
		Tiles:   make([]Tile, width*height),
	}
}

// At returns the tile at the given tile coordinates.
// Columns outside the map are solid walls; rows outside are empty so bodies
// can leave the world through the top or bottom.
func (l *Layer) At(tx, ty int) Tile {
	if l == nil {
		return Tile{}
	}
	if tx < 0 || tx >= l.Width {
		return wall
	}
	if ty < 0 || ty >= l.Height {
		return Tile{}
	}
	return l.Tiles[ty*l.Width+tx]
}

// Set replaces the tile at the given tile coordinates. Out of range writes are ignored.
func (l *Layer) Set(tx, ty int, t Tile) {
	if tx < 0 || tx >= l.Width || ty < 0 || ty >= l.Height {
		return
	}
	l.Tiles[ty*l.Width+tx] = t
}

// Each calls fn for every non-empty tile.
func (l *Layer) Each(fn func(tx, ty int, t Tile)) {
	if l == nil {
		return
	}
	for i, t := range l.Tiles {
		if t.Empty() {
			continue
		}
		fn(i%l.Width, i/l.Width, t)
	}
}

// Text is the payload of a Tiled text object.
type Text struct {
	Text   string
	HAlign string
	Color  string
}

// Object is an entry of the object layer.
type Object struct {
	ID     int
	Name   string
	X, Y   float64
	Width  float64
	Height float64
	Text   *Text
}

// Center returns the object's centre point.
func (o Object) Center() (float64, float64) {
	return o.X + o.Width/2, o.Y + o.Height/2
}

// Tileset describes one tileset image referenced by the map.
type Tileset struct {
	FirstGID   int
	Name       string
	Image      string
	TileWidth  int
	TileHeight int
	Columns    int
	TileCount  int
	Margin     int
	Spacing    int
}

// Contains reports whether gid belongs to this tileset.
func (ts Tileset) Contains(gid int) bool {
	return gid >= ts.FirstGID && gid < ts.FirstGID+ts.TileCount
}

// Map represents a whole level.
type Map struct {
	Width      int
	Height     int
	TileWidth  int
	TileHeight int
	Layers     []*Layer
	Objects    []Object
	Tilesets   []Tileset
}

// Layer returns the named tile layer or nil.
func (m *Map) Layer(name string) *Layer {
	for _, l := range m.Layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// WidthInPixels returns the map width in pixels.
func (m *Map) WidthInPixels() float64 {
	return float64(m.Width * m.TileWidth)
}

// HeightInPixels returns the map height in pixels.
func (m *Map) HeightInPixels() float64 {
	return float64(m.Height * m.TileHeight)
}

// FindObject returns the first object with the given name.
func (m *Map) FindObject(name string) (Object, bool) {
	for _, o := range m.Objects {
		if o.Name == name {
			return o, true
		}
	}
	return Object{}, false
}

// TilesetFor returns the tileset that owns gid.
func (m *Map) TilesetFor(gid int) (Tileset, bool) {
	for i := len(m.Tilesets) - 1; i >= 0; i-- {
		if m.Tilesets[i].Contains(gid) {
			return m.Tilesets[i], true
		}
	}
	return Tileset{}, false
}

// TileRange returns the inclusive tile range covered by a pixel rectangle.
func (m *Map) TileRange(x, y, w, h float64) (tx0, ty0, tx1, ty1 int) {
	tx0 = floorDiv(x, m.TileWidth)
	ty0 = floorDiv(y, m.TileHeight)
	tx1 = floorDiv(x+w-0.001, m.TileWidth)
	ty1 = floorDiv(y+h-0.001, m.TileHeight)
	return tx0, ty0, tx1, ty1
}

func floorDiv(v float64, size int) int {
	q := v / float64(size)
	i := int(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
}
