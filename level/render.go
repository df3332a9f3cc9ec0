package level

import (
	"errors"
	"fmt"
	"image"
	"io/fs"

	"github.com/lafriks/go-tiled/render"
)

// ErrNoSource is returned when rendering a Map that was not built from a
// parsed tilemap.
var ErrNoSource = errors.New("map has no source tilemap")

// RenderGroup draws each layer of g onto its own CPU image, in group order.
// Tileset images are read from fsys relative to the map's directory.
func (m *Map) RenderGroup(fsys fs.FS, g *Group) ([]*image.NRGBA, error) {
	if m.Source == nil {
		return nil, ErrNoSource
	}
	renderer, err := render.NewRendererWithFileSystem(m.Source, fsys)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	images := make([]*image.NRGBA, 0, len(g.Layers))
	for _, layer := range g.Layers {
		renderer.Clear()
		if err := renderer.RenderLayer(layer.Index); err != nil {
			return nil, fmt.Errorf("render layer %q: %w", layer.Name, err)
		}
		images = append(images, renderer.Result)
	}
	return images, nil
}
