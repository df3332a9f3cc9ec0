package assets

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ManifestEntry is one asset listed in the manifest.
type ManifestEntry struct {
	Key         string `yaml:"key"`
	Path        string `yaml:"path"`
	FrameWidth  int    `yaml:"frameWidth"`
	FrameHeight int    `yaml:"frameHeight"`
}

// ManifestGroup lists the assets one state preloads.
type ManifestGroup struct {
	Images       []ManifestEntry `yaml:"images"`
	Spritesheets []ManifestEntry `yaml:"spritesheets"`
	Tilemaps     []ManifestEntry `yaml:"tilemaps"`
}

// Manifest maps a state name to the assets it preloads.
type Manifest map[string]ManifestGroup

// ParseManifest decodes a YAML manifest and validates every entry.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	for state, g := range m {
		for _, e := range g.Images {
			if err := e.validate(state, false); err != nil {
				return nil, err
			}
		}
		for _, e := range g.Spritesheets {
			if err := e.validate(state, true); err != nil {
				return nil, err
			}
		}
		for _, e := range g.Tilemaps {
			if err := e.validate(state, false); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func (e ManifestEntry) validate(state string, frames bool) error {
	if e.Key == "" || e.Path == "" {
		return fmt.Errorf("manifest %s: entry needs key and path (got key=%q path=%q)", state, e.Key, e.Path)
	}
	if frames && (e.FrameWidth <= 0 || e.FrameHeight <= 0) {
		return fmt.Errorf("manifest %s: spritesheet %q needs positive frame size", state, e.Key)
	}
	return nil
}

// Requests returns the load requests for a state, images first, then
// spritesheets, then tilemaps, each in manifest order.
func (m Manifest) Requests(state string) []Request {
	g, ok := m[state]
	if !ok {
		return nil
	}
	reqs := make([]Request, 0, len(g.Images)+len(g.Spritesheets)+len(g.Tilemaps))
	for _, e := range g.Images {
		reqs = append(reqs, Request{Kind: KindImage, Key: e.Key, Path: e.Path})
	}
	for _, e := range g.Spritesheets {
		reqs = append(reqs, Request{
			Kind:        KindSpritesheet,
			Key:         e.Key,
			Path:        e.Path,
			FrameWidth:  e.FrameWidth,
			FrameHeight: e.FrameHeight,
		})
	}
	for _, e := range g.Tilemaps {
		reqs = append(reqs, Request{Kind: KindTilemap, Key: e.Key, Path: e.Path})
	}
	return reqs
}
