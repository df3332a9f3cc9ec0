package components

import (
	"image"

	"github.com/automoto/tilewalk/level"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Map    *level.Map
	Groups *level.Groups
	// CPU renders of groups.LevelBottom, one per layer in draw order.
	Rendered []*image.NRGBA
	// GPU copies of Rendered, created on first draw.
	Layers []*ebiten.Image
}

var Level = donburi.NewComponentType[LevelData]()
