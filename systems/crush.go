package systems

import (
	"log"

	"github.com/automoto/doomerang-gimmicks/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCrush takes compressed bodies out of play. They leave the broadphase
// at once and the world on the following tick, so the crushed entity can
// still be inspected in between.
func UpdateCrush(ecs *ecs.ECS) {
	room := components.MustRoom(ecs.World)

	var gone []*donburi.Entry
	components.Crushed.Each(ecs.World, func(e *donburi.Entry) {
		gone = append(gone, e)
	})
	for _, e := range gone {
		ecs.World.Remove(e.Entity())
	}

	var crushed []*donburi.Entry
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		if components.Body.Get(e).Compressed {
			crushed = append(crushed, e)
		}
	})

	space := spaceOf(ecs.World)
	for _, e := range crushed {
		body := components.Body.Get(e)
		if space != nil {
			space.Remove(components.Object.Get(e).Object)
		}

		e.AddComponent(components.Crushed)
		components.Crushed.SetValue(e, components.CrushedData{Tick: room.Tick})
		room.Crushes = append(room.Crushes, components.CrushEvent{
			Tick: room.Tick,
			ID:   body.ID,
			Kind: body.Kind,
		})

		log.Printf("Crushed %s %d at (%.1f, %.1f) on tick %d",
			body.Kind, body.ID, body.Pos.X(), body.Pos.Y(), room.Tick)
	}
}
