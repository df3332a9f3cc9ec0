package assets

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
)

// Image is a decoded image asset. The GPU copy is created on first use so
// decoding can happen off the game loop.
type Image struct {
	Source      image.Image
	FrameWidth  int // Zero for plain images
	FrameHeight int

	img    *ebiten.Image
	frames map[int]*ebiten.Image
}

// Ebiten returns the GPU image, creating it on first call. Must be called
// from the game loop.
func (i *Image) Ebiten() *ebiten.Image {
	if i.img == nil {
		i.img = ebiten.NewImageFromImage(i.Source)
	}
	return i.img
}

// Columns is the number of frames per spritesheet row.
func (i *Image) Columns() int {
	if i.FrameWidth <= 0 {
		return 1
	}
	return i.Source.Bounds().Dx() / i.FrameWidth
}

// FrameRect returns the source rectangle of a spritesheet frame.
func (i *Image) FrameRect(index int) image.Rectangle {
	if i.FrameWidth <= 0 || i.FrameHeight <= 0 {
		return i.Source.Bounds()
	}
	cols := i.Columns()
	if cols <= 0 {
		cols = 1
	}
	x := (index % cols) * i.FrameWidth
	y := (index / cols) * i.FrameHeight
	return image.Rect(x, y, x+i.FrameWidth, y+i.FrameHeight)
}

// Frame returns a cached sub-image for a spritesheet frame.
func (i *Image) Frame(index int) *ebiten.Image {
	if f, ok := i.frames[index]; ok {
		return f
	}
	if i.frames == nil {
		i.frames = make(map[int]*ebiten.Image)
	}
	f := i.Ebiten().SubImage(i.FrameRect(index)).(*ebiten.Image)
	i.frames[index] = f
	return f
}

// Cache holds every loaded asset for the lifetime of the process, keyed the
// same way they were requested. It is only touched from the game loop.
type Cache struct {
	images   map[string]*Image
	tilemaps map[string]*tiled.Map
}

func NewCache() *Cache {
	return &Cache{
		images:   make(map[string]*Image),
		tilemaps: make(map[string]*tiled.Map),
	}
}

func (c *Cache) CheckImageKey(key string) bool {
	_, ok := c.images[key]
	return ok
}

func (c *Cache) CheckTilemapKey(key string) bool {
	_, ok := c.tilemaps[key]
	return ok
}

func (c *Cache) Image(key string) (*Image, bool) {
	img, ok := c.images[key]
	return img, ok
}

func (c *Cache) Tilemap(key string) (*tiled.Map, bool) {
	m, ok := c.tilemaps[key]
	return m, ok
}

func (c *Cache) AddImage(key string, img *Image) {
	c.images[key] = img
}

func (c *Cache) AddTilemap(key string, m *tiled.Map) {
	c.tilemaps[key] = m
}

// Len returns the number of cached assets of all kinds.
func (c *Cache) Len() int {
	return len(c.images) + len(c.tilemaps)
}
