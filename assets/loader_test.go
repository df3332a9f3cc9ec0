package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="8" tileheight="8" infinite="0">
 <tileset firstgid="1" name="tiles" tilewidth="8" tileheight="8" tilecount="4" columns="2">
  <image source="../images/tiles.png" width="16" height="16"/>
 </tileset>
 <layer id="1" name="tiles" width="2" height="2">
  <data encoding="csv">
1,0,
0,2
</data>
 </layer>
 <objectgroup id="2" name="objects">
  <object id="1" name="start" type="start" x="8" y="8"/>
 </objectgroup>
</map>
`

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// countingFS records how many times each file is opened.
type countingFS struct {
	fs.FS
	opens atomic.Int32
}

func (c *countingFS) Open(name string) (fs.File, error) {
	c.opens.Add(1)
	return c.FS.Open(name)
}

func newTestFS(t *testing.T) *countingFS {
	return &countingFS{FS: fstest.MapFS{
		"levels/map.tmx":    {Data: []byte(testTMX)},
		"images/tiles.png":  {Data: testPNG(t, 16, 16)},
		"images/player.png": {Data: testPNG(t, 48, 30)},
	}}
}

func waitPending(t *testing.T, p *Pending) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return p.Wait(ctx)
}

func TestLoaderLoadsBatch(t *testing.T) {
	cache := NewCache()
	l := NewLoader(newTestFS(t), cache)

	l.Image("tiles", "images/tiles.png")
	l.Spritesheet("player", "images/player.png", 12, 15)
	l.Tilemap("map", "levels/map.tmx")

	if l.Queued() != 3 {
		t.Fatalf("Queued() = %d, want 3", l.Queued())
	}

	p, err := l.Start(context.Background())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := waitPending(t, p); err != nil {
		t.Fatalf("Wait: %v", err)
	}

	if p.Progress() != 1 {
		t.Errorf("Progress() = %v, want 1", p.Progress())
	}
	if !cache.CheckImageKey("tiles") || !cache.CheckImageKey("player") {
		t.Error("images were not committed to the cache")
	}
	m, ok := cache.Tilemap("map")
	if !ok {
		t.Fatal("tilemap was not committed to the cache")
	}
	if m.Width != 2 || m.TileWidth != 8 {
		t.Errorf("tilemap size = %dx%d tiles of %d, want 2 tiles of 8", m.Width, m.Height, m.TileWidth)
	}

	sheet, _ := cache.Image("player")
	if sheet.Columns() != 4 {
		t.Errorf("Columns() = %d, want 4", sheet.Columns())
	}
	if r := sheet.FrameRect(5); r != image.Rect(12, 15, 24, 30) {
		t.Errorf("FrameRect(5) = %v", r)
	}
	if l.Busy() {
		t.Error("loader should not be busy after the batch was committed")
	}
}

func TestLoaderSkipsCachedKeys(t *testing.T) {
	fsys := newTestFS(t)
	cache := NewCache()
	l := NewLoader(fsys, cache)

	l.Tilemap("map", "levels/map.tmx")
	p, err := l.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if err := waitPending(t, p); err != nil {
		t.Fatal(err)
	}
	opens := fsys.opens.Load()

	if l.Tilemap("map", "levels/map.tmx") {
		t.Error("a cached tilemap must not be queued again")
	}
	p, err = l.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if err := waitPending(t, p); err != nil {
		t.Fatal(err)
	}
	if got := fsys.opens.Load(); got != opens {
		t.Errorf("second load opened %d more files, want 0", got-opens)
	}
}

func TestLoaderDeduplicatesQueue(t *testing.T) {
	l := NewLoader(newTestFS(t), NewCache())
	if !l.Image("tiles", "images/tiles.png") {
		t.Fatal("first request should be queued")
	}
	if l.Image("tiles", "images/tiles.png") {
		t.Error("duplicate request should not be queued")
	}
	if l.Queued() != 1 {
		t.Errorf("Queued() = %d, want 1", l.Queued())
	}
}

func TestLoaderMissingAsset(t *testing.T) {
	cache := NewCache()
	l := NewLoader(newTestFS(t), cache)
	l.Image("tiles", "images/tiles.png")
	l.Tilemap("cave", "levels/cave.tmx")

	p, err := l.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	err = waitPending(t, p)
	if !errors.Is(err, ErrAssetMissing) {
		t.Fatalf("err = %v, want ErrAssetMissing", err)
	}
	if cache.Len() != 0 {
		t.Errorf("a failed batch must not commit anything, cache has %d entries", cache.Len())
	}
}

func TestLoaderSingleInFlight(t *testing.T) {
	l := NewLoader(newTestFS(t), NewCache())
	l.Image("tiles", "images/tiles.png")

	p, err := l.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.Start(context.Background()); !errors.Is(err, ErrLoadInFlight) {
		t.Fatalf("second Start err = %v, want ErrLoadInFlight", err)
	}
	if err := waitPending(t, p); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Start(context.Background()); err != nil {
		t.Fatalf("Start after commit: %v", err)
	}
}

func TestLoaderEmptyBatchCompletesImmediately(t *testing.T) {
	l := NewLoader(newTestFS(t), NewCache())
	p, err := l.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	done, err := p.Poll()
	if !done || err != nil {
		t.Fatalf("Poll() = (%v, %v), want (true, nil)", done, err)
	}
	if p.Progress() != 1 {
		t.Errorf("Progress() = %v, want 1", p.Progress())
	}
}

func TestLoaderSetPath(t *testing.T) {
	cache := NewCache()
	l := NewLoader(newTestFS(t), cache)
	l.SetPath("images")
	l.Image("tiles", "tiles.png")

	p, err := l.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if err := waitPending(t, p); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if !cache.CheckImageKey("tiles") {
		t.Error("image loaded through SetPath was not cached")
	}
}

func TestLoaderCancelled(t *testing.T) {
	cache := NewCache()
	l := NewLoader(newTestFS(t), cache)
	l.Image("tiles", "images/tiles.png")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p, err := l.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if err := waitPending(t, p); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
