package systems

import (
	"github.com/automoto/doomerang-gimmicks/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRoom advances the tick counter. It runs first in every tick.
func UpdateRoom(ecs *ecs.ECS) {
	components.MustRoom(ecs.World).Tick++
}
