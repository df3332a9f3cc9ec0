package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Wall     = donburi.NewTag().SetName("Wall")
	Landmark = donburi.NewTag().SetName("Landmark")
)

// Resolv tags for collision queries
const (
	ResolvSolid    = "solid"
	ResolvPlayer   = "Player"
	ResolvLandmark = "landmark"
)
