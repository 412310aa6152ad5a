package config

// Atlas is a TexturePacker "JSON hash" texture atlas.
type Atlas struct {
	Frames map[string]AtlasFrame `json:"frames"`
	Meta   AtlasMeta             `json:"meta"`
}

type AtlasFrame struct {
	Frame   AtlasRect `json:"frame"`
	Rotated bool      `json:"rotated"`
	Trimmed bool      `json:"trimmed"`
}

type AtlasRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type AtlasMeta struct {
	Image string `json:"image"`
}
