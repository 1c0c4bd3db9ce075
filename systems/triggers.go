package systems

import (
	"log"

	"github.com/automoto/doomerang-gimmicks/components"
	cfg "github.com/automoto/doomerang-gimmicks/config"
	"github.com/automoto/doomerang-gimmicks/shared/collide"
	"github.com/automoto/doomerang-gimmicks/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTriggers counts dynamic bodies entering trigger volumes. A body is
// inside when its bounding sphere touches the volume.
func UpdateTriggers(ecs *ecs.ECS) {
	var bodies []*components.BodyData
	tags.Dynamic.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Crushed) {
			bodies = append(bodies, components.Body.Get(e))
		}
	})

	components.Trigger.Each(ecs.World, func(e *donburi.Entry) {
		trigger := components.Trigger.Get(e)
		present := make(map[int]bool, len(trigger.Inside))

		for _, body := range bodies {
			s := body.Sphere()
			if !collide.HitBox3Sphere(trigger.Volume, s.Sphere3, false) {
				continue
			}
			present[s.ID] = true
			if !trigger.Inside[s.ID] {
				trigger.Entered++
				log.Printf("Trigger %q entered by %s %d", trigger.Name, cfg.Kind(s.Attribute), s.ID)
			}
		}
		trigger.Inside = present
	})
}
