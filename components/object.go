package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ObjectData links an entity to its collision body.
type ObjectData struct {
	*resolv.Object
	// Offset from the body's top-left corner to the sprite anchor.
	AnchorOffset math.Vec2
}

// Anchor returns the world position the entity's sprite is drawn from.
func (o *ObjectData) Anchor() math.Vec2 {
	return math.Vec2{X: o.X + o.AnchorOffset.X, Y: o.Y + o.AnchorOffset.Y}
}

var Object = donburi.NewComponentType[ObjectData]()
