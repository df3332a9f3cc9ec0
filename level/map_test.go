package level

import (
	"errors"
	"fmt"
	"image"
	"strings"
	"testing"

	"github.com/lafriks/go-tiled"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="8" tileheight="8" infinite="0">
 <tileset firstgid="1" name="tiles" tilewidth="8" tileheight="8" tilecount="40" columns="8">
  <image source="../images/tiles.png" width="64" height="40"/>
 </tileset>
`

const baseLayer = ` <layer id="1" name="tiles" width="4" height="3">
  <data encoding="csv">
1,2,0,33,
0,0,0,9,
0,0,0,0
</data>
 </layer>
`

const detailsLayer = ` <layer id="2" name="details" width="4" height="3">
  <data encoding="csv">
0,0,34,0,
0,0,0,0,
0,35,0,0
</data>
 </layer>
`

func objectsLayer(objects ...string) string {
	return ` <objectgroup id="3" name="objects">
` + strings.Join(objects, "\n") + `
 </objectgroup>
`
}

func object(id int, typ string, x, y float64) string {
	return fmt.Sprintf(`  <object id="%d" name="o%d" type="%s" x="%g" y="%g"/>`, id, id, typ, x, y)
}

func parseMap(t *testing.T, layers ...string) *tiled.Map {
	t.Helper()
	src := header + strings.Join(layers, "") + "</map>\n"
	tm, err := tiled.LoadReader(".", strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse tmx: %v", err)
	}
	return tm
}

func TestLoadBuildsLayersAndSpawn(t *testing.T) {
	tm := parseMap(t, baseLayer, detailsLayer, objectsLayer(
		object(1, "landmark", 0, 0),
		object(2, "start", 16, 24),
	))
	groups := NewGroups()

	m, err := Load(tm, groups, &LoadOptions{Slug: "map", Texture: "tiles"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if m.Spawn != image.Pt(20, 24) {
		t.Errorf("Spawn = %v, want (20,24)", m.Spawn)
	}
	if m.Width != 32 || m.Height != 24 {
		t.Errorf("bounds = %dx%d, want 32x24", m.Width, m.Height)
	}
	if m.Details == nil {
		t.Fatal("details layer not loaded")
	}
	if len(groups.LevelBottom.Layers) != 2 ||
		groups.LevelBottom.Layers[0] != m.Tiles ||
		groups.LevelBottom.Layers[1] != m.Details {
		t.Error("base layer must be attached below the details layer")
	}
	if got := m.Tiles.At(3, 0); got != 33 {
		t.Errorf("Tiles.At(3,0) = %d, want 33", got)
	}
	if len(m.Objects) != 2 {
		t.Errorf("len(Objects) = %d, want 2", len(m.Objects))
	}
}

func TestLoadSpawnTruncates(t *testing.T) {
	tm := parseMap(t, baseLayer, objectsLayer(object(1, "start", 10.7, 30.9)))
	m, err := Load(tm, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.Spawn != image.Pt(14, 30) {
		t.Errorf("Spawn = %v, want (14,30)", m.Spawn)
	}
}

func TestLoadWorldDefaultsTexture(t *testing.T) {
	tm := parseMap(t, baseLayer, objectsLayer(object(1, "start", 0, 0)))
	opts := &LoadOptions{Slug: "map"}
	m, err := LoadWorld(tm, nil, opts)
	if err != nil {
		t.Fatal(err)
	}
	if m.Texture != "tiles" || opts.Texture != "tiles" {
		t.Errorf("Texture = %q, want tiles", m.Texture)
	}
}

func TestLoadWithoutDetailsLayer(t *testing.T) {
	tm := parseMap(t, baseLayer, objectsLayer(object(1, "start", 0, 0)))
	groups := NewGroups()
	m, err := Load(tm, groups, nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.Details != nil {
		t.Error("Details should be nil")
	}
	if len(groups.LevelBottom.Layers) != 1 {
		t.Errorf("len(Layers) = %d, want 1", len(groups.LevelBottom.Layers))
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		tm     func(t *testing.T) *tiled.Map
		opts   *LoadOptions
		kind   ErrorKind
		target error
	}{
		{
			name:   "nil tilemap",
			tm:     func(*testing.T) *tiled.Map { return nil },
			kind:   AssetMissing,
			target: ErrAssetMissing,
		},
		{
			name: "missing base layer",
			tm: func(t *testing.T) *tiled.Map {
				return parseMap(t, detailsLayer, objectsLayer(object(1, "start", 0, 0)))
			},
			kind:   AssetMissing,
			target: ErrAssetMissing,
		},
		{
			name: "no start object",
			tm: func(t *testing.T) *tiled.Map {
				return parseMap(t, baseLayer, objectsLayer(object(1, "landmark", 0, 0)))
			},
			kind:   NoSpawnPoint,
			target: ErrNoSpawnPoint,
		},
		{
			name:   "no object layer",
			tm:     func(t *testing.T) *tiled.Map { return parseMap(t, baseLayer) },
			kind:   NoSpawnPoint,
			target: ErrNoSpawnPoint,
		},
		{
			name: "multiple starts rejected",
			tm: func(t *testing.T) *tiled.Map {
				return parseMap(t, baseLayer, objectsLayer(
					object(1, "start", 0, 0),
					object(2, "start", 8, 8),
				))
			},
			opts:   &LoadOptions{Selection: SpawnErrorOnMultiple},
			kind:   MultipleSpawnPoints,
			target: ErrMultipleSpawnPoints,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			if opts == nil {
				opts = &LoadOptions{}
			}
			opts.Slug = "broken"
			_, err := Load(tt.tm(t), nil, opts)

			var loadErr *MapLoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("err = %v, want *MapLoadError", err)
			}
			if loadErr.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", loadErr.Kind, tt.kind)
			}
			if loadErr.Slug != "broken" {
				t.Errorf("Slug = %q, want broken", loadErr.Slug)
			}
			if !errors.Is(err, tt.target) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.target)
			}
		})
	}
}

func TestCollision(t *testing.T) {
	tm := parseMap(t, baseLayer, objectsLayer(object(1, "start", 0, 0)))
	m, err := Load(tm, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		x, y    float64
		blocked bool
	}{
		{0, 0, true},   // index 1
		{12, 4, true},  // index 2
		{20, 4, false}, // empty
		{28, 4, false}, // index 33, decorative
		{28, 12, true}, // index 9
		{4, 20, false}, // empty
		{-1, 4, true},  // outside
		{4, 24, true},  // outside
		{31.9, 23.9, false},
	}
	for _, tt := range tests {
		if got := m.IsBlocked(tt.x, tt.y); got != tt.blocked {
			t.Errorf("IsBlocked(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.blocked)
		}
	}

	if idx, ok := m.TileAt(28, 12); !ok || idx != 9 {
		t.Errorf("TileAt(28,12) = (%d, %v), want (9, true)", idx, ok)
	}
	if _, ok := m.TileAt(40, 0); ok {
		t.Error("TileAt outside the map should report !ok")
	}
}

func TestSolidRectsMergesRows(t *testing.T) {
	tm := parseMap(t, baseLayer, objectsLayer(object(1, "start", 0, 0)))
	m, err := Load(tm, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []image.Rectangle{
		image.Rect(0, 0, 16, 8),
		image.Rect(24, 8, 32, 16),
	}
	got := m.SolidRects()
	if len(got) != len(want) {
		t.Fatalf("SolidRects() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SolidRects()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSetCollisionBetween(t *testing.T) {
	m := &Map{}
	m.SetCollisionBetween(5, 10)
	for idx, want := range map[int]bool{0: false, 4: false, 5: true, 10: true, 11: false} {
		if got := m.IsCollidable(idx); got != want {
			t.Errorf("IsCollidable(%d) = %v, want %v", idx, got, want)
		}
	}
}

func TestMapLoadErrorMessage(t *testing.T) {
	err := &MapLoadError{Kind: NoSpawnPoint, Slug: "map", Err: ErrNoSpawnPoint}
	if got, want := err.Error(), `load map "map": no spawn point`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	err = &MapLoadError{Kind: AssetMissing, Slug: "cave", Err: errors.New("layer \"tiles\" not found")}
	if got, want := err.Error(), `load map "cave": asset missing: layer "tiles" not found`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if errors.Is(err, ErrNoSpawnPoint) {
		t.Error("asset missing error must not match ErrNoSpawnPoint")
	}
}
