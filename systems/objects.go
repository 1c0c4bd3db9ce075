package systems

import (
	"github.com/automoto/doomerang-gimmicks/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves every broadphase proxy onto its body. Bodies placed or
// teleported between ticks are picked up here.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		if e.HasComponent(components.Crushed) {
			continue
		}
		obj := components.Object.Get(e)
		obj.Sync(components.Body.Get(e))
	}
}
