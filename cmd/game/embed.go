package main

import (
	"embed"
	"io/fs"
)

//go:embed configs
var configFS embed.FS

// embeddedConfigs returns the bundled settings and level maps.
func embeddedConfigs() (fs.FS, error) {
	return fs.Sub(configFS, "configs")
}
