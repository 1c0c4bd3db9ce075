package factory

import (
	"github.com/automoto/doomerang-gimmicks/archetypes"
	"github.com/automoto/doomerang-gimmicks/components"
	"github.com/automoto/doomerang-gimmicks/shared/collide"
	"github.com/automoto/doomerang-gimmicks/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateTrigger(ecs *ecs.ECS, v leveldata.TriggerVolume) *donburi.Entry {
	trigger := archetypes.Trigger.Spawn(ecs)
	components.Trigger.SetValue(trigger, components.TriggerData{
		Name: v.Name,
		Volume: collide.NewBox3(
			mgl64.Vec3{v.X + v.W/2, v.Y + v.H/2, v.Z},
			mgl64.Vec3{v.W / 2, v.H / 2, v.Depth / 2},
		),
		Inside: make(map[int]bool),
	})
	return trigger
}
