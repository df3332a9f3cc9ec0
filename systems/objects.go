package systems

import (
	"github.com/automoto/tilewalk/components"
	"github.com/automoto/tilewalk/logging"
	"github.com/automoto/tilewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}

// UpdateLandmarks marks the landmarks the player is standing on and counts
// each arrival.
func UpdateLandmarks(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	body := components.Object.Get(playerEntry)

	occupied := make(map[donburi.Entity]bool)
	if check := body.Check(0, 0, tags.ResolvLandmark); check != nil {
		for _, obj := range check.ObjectsByTags(tags.ResolvLandmark) {
			if entry, ok := obj.Data.(*donburi.Entry); ok && entry != nil {
				occupied[entry.Entity()] = true
			}
		}
	}

	tags.Landmark.Each(ecs.World, func(e *donburi.Entry) {
		landmark := components.Landmark.Get(e)
		here := occupied[e.Entity()]
		if here && !landmark.Occupied {
			landmark.Visits++
			logging.Named("world").Info("landmark reached",
				zap.String("landmark", landmark.Name),
				zap.Int("visits", landmark.Visits))
		}
		landmark.Occupied = here
	})
}
