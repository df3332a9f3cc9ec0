package level

import (
	"errors"
	"fmt"
	"image"

	"github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/logging"
	"github.com/lafriks/go-tiled"
	"go.uber.org/zap"
)

// TileLayer is a grid of global tile indices in row-major order. Index 0 is
// an empty cell.
type TileLayer struct {
	Name       string
	Width      int
	Height     int
	TileWidth  int
	TileHeight int
	Indices    []int
	Index      int // Position in the source map's layer list
}

// At returns the tile index at a cell, or 0 outside the layer.
func (l *TileLayer) At(col, row int) int {
	if col < 0 || row < 0 || col >= l.Width || row >= l.Height {
		return 0
	}
	return l.Indices[row*l.Width+col]
}

// LoadOptions configures how a tilemap is turned into a Map.
type LoadOptions struct {
	Slug      string
	Texture   string // Cache key of the tileset image
	Selection SpawnSelection
}

// Map is a level ready to be placed into the world.
type Map struct {
	Slug       string
	Texture    string
	FirstGID   int
	TileWidth  int
	TileHeight int
	Width      int // Pixels
	Height     int // Pixels

	Tiles   *TileLayer
	Details *TileLayer // Nil when the map has no details layer
	Objects []Object
	Spawn   image.Point

	Source *tiled.Map

	collideFrom int
	collideTo   int
}

// LoadWorld loads a world map, defaulting the tileset texture to the shared
// tiles image.
func LoadWorld(tm *tiled.Map, groups *Groups, opts *LoadOptions) (*Map, error) {
	if opts == nil {
		opts = &LoadOptions{}
	}
	if opts.Texture == "" {
		opts.Texture = config.Map.DefaultTexture
	}
	return Load(tm, groups, opts)
}

// Load builds a Map from a parsed tilemap: the base and details layers, the
// collidable tile range, the placed objects and the spawn point. Both tile
// layers are attached to groups.LevelBottom, base first.
func Load(tm *tiled.Map, groups *Groups, opts *LoadOptions) (*Map, error) {
	if opts == nil {
		opts = &LoadOptions{}
	}
	log := logging.Named("level").With(zap.String("slug", opts.Slug))

	if tm == nil {
		return nil, loadError(AssetMissing, opts.Slug, errors.New("tilemap not loaded"))
	}
	if len(tm.Tilesets) == 0 {
		return nil, loadError(AssetMissing, opts.Slug, errors.New("map has no tileset"))
	}

	m := &Map{
		Slug:       opts.Slug,
		Texture:    opts.Texture,
		FirstGID:   int(tm.Tilesets[0].FirstGID),
		TileWidth:  tm.TileWidth,
		TileHeight: tm.TileHeight,
		Source:     tm,
	}

	for i, l := range tm.Layers {
		switch l.Name {
		case config.Map.TilesLayer:
			m.Tiles = tileLayer(tm, l, i)
		case config.Map.DetailsLayer:
			m.Details = tileLayer(tm, l, i)
		}
	}
	if m.Tiles == nil {
		return nil, loadError(AssetMissing, opts.Slug, fmt.Errorf("layer %q not found", config.Map.TilesLayer))
	}
	if m.Details == nil {
		log.Warn("map has no details layer", zap.String("layer", config.Map.DetailsLayer))
	}

	m.SetCollisionBetween(config.Map.CollideFrom, config.Map.CollideTo)
	m.Width = m.Tiles.Width * m.TileWidth
	m.Height = m.Tiles.Height * m.TileHeight

	if groups != nil && groups.LevelBottom != nil {
		groups.LevelBottom.Add(m.Tiles)
		if m.Details != nil {
			groups.LevelBottom.Add(m.Details)
		}
	}

	for _, og := range tm.ObjectGroups {
		if og.Name != config.Map.ObjectsLayer {
			continue
		}
		for _, o := range og.Objects {
			m.Objects = append(m.Objects, objectFromTiled(o))
		}
	}

	start, err := opts.Selection.Select(FindObjectsByType(config.Map.SpawnType, m.Objects))
	if err != nil {
		kind := NoSpawnPoint
		if errors.Is(err, ErrMultipleSpawnPoints) {
			kind = MultipleSpawnPoints
		}
		return nil, loadError(kind, opts.Slug, err)
	}
	m.Spawn = image.Pt(int(start.X+float64(config.Map.TileHalfSize)), int(start.Y))

	log.Info("map loaded",
		zap.Int("width", m.Width),
		zap.Int("height", m.Height),
		zap.Int("objects", len(m.Objects)),
		zap.Int("spawnX", m.Spawn.X),
		zap.Int("spawnY", m.Spawn.Y))
	return m, nil
}

func tileLayer(tm *tiled.Map, l *tiled.Layer, index int) *TileLayer {
	layer := &TileLayer{
		Name:       l.Name,
		Index:      index,
		Width:      tm.Width,
		Height:     tm.Height,
		TileWidth:  tm.TileWidth,
		TileHeight: tm.TileHeight,
		Indices:    make([]int, tm.Width*tm.Height),
	}
	for i, t := range l.Tiles {
		if i >= len(layer.Indices) {
			break
		}
		if t == nil || t.IsNil() || t.Tileset == nil {
			continue
		}
		layer.Indices[i] = int(t.Tileset.FirstGID + t.ID)
	}
	return layer
}

// SetCollisionBetween marks the tile indices in [from, to] as collidable.
func (m *Map) SetCollisionBetween(from, to int) {
	m.collideFrom, m.collideTo = from, to
}

// IsCollidable reports whether a tile index blocks movement.
func (m *Map) IsCollidable(index int) bool {
	return index != 0 && index >= m.collideFrom && index <= m.collideTo
}

// TileAt returns the base layer tile index under a pixel coordinate. ok is
// false outside the map.
func (m *Map) TileAt(px, py float64) (index int, ok bool) {
	if px < 0 || py < 0 {
		return 0, false
	}
	col, row := int(px)/m.TileWidth, int(py)/m.TileHeight
	if col >= m.Tiles.Width || row >= m.Tiles.Height {
		return 0, false
	}
	return m.Tiles.At(col, row), true
}

// IsBlocked reports whether a pixel coordinate is inside a collidable tile or
// outside the map.
func (m *Map) IsBlocked(px, py float64) bool {
	index, ok := m.TileAt(px, py)
	return !ok || m.IsCollidable(index)
}

// SolidRects returns the collidable tiles of the base layer as pixel
// rectangles, merging horizontal runs on each row.
func (m *Map) SolidRects() []image.Rectangle {
	var rects []image.Rectangle
	l := m.Tiles
	for row := 0; row < l.Height; row++ {
		start := -1
		for col := 0; col <= l.Width; col++ {
			solid := col < l.Width && m.IsCollidable(l.At(col, row))
			switch {
			case solid && start < 0:
				start = col
			case !solid && start >= 0:
				rects = append(rects, image.Rect(
					start*m.TileWidth, row*m.TileHeight,
					col*m.TileWidth, (row+1)*m.TileHeight,
				))
				start = -1
			}
		}
	}
	return rects
}
