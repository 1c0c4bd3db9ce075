package factory

import (
	"github.com/automoto/doomerang-gimmicks/archetypes"
	"github.com/automoto/doomerang-gimmicks/components"
	cfg "github.com/automoto/doomerang-gimmicks/config"
	"github.com/automoto/doomerang-gimmicks/shared/collide"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRoom spawns the room singleton and its broadphase space. Every other
// factory reads its settings from here.
func CreateRoom(ecs *ecs.ECS, name string, c *cfg.Config, width, height int) *donburi.Entry {
	room := archetypes.Room.Spawn(ecs)
	components.Room.SetValue(room, components.RoomData{
		Name:      name,
		Config:    c,
		Resolver:  collide.NewResolver(c.ResolverParams()),
		Influence: c.InfluenceTable(),
		Width:     width,
		Height:    height,
	})

	CreateSpace(ecs, width, height, c.Room.CellWidth, c.Room.CellHeight)
	return room
}
