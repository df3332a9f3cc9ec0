package assets

import (
	"embed"
	"fmt"
	"io/fs"
)

var (
	//go:embed all:levels all:images
	assetFS embed.FS

	//go:embed manifest.yaml
	manifestYAML []byte
)

// FS returns the embedded asset filesystem rooted at the assets directory.
func FS() fs.FS {
	return assetFS
}

// MustLoadManifest parses the embedded manifest, panicking if it is malformed.
func MustLoadManifest() Manifest {
	m, err := ParseManifest(manifestYAML)
	if err != nil {
		panic(fmt.Sprintf("Failed to load asset manifest: %v", err))
	}
	return m
}

// LevelPath builds the file path of a level from its map path.
func LevelPath(levelsDir, mapPath, ext string) string {
	return levelsDir + "/" + mapPath + ext
}
