package archetypes

import (
	"github.com/automoto/doomerang-gimmicks/components"
	cfg "github.com/automoto/doomerang-gimmicks/config"
	"github.com/automoto/doomerang-gimmicks/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Room = newArchetype(
		components.Room,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Body,
		components.Object,
	)
	Conveyor = newArchetype(
		tags.Conveyor,
		components.Body,
		components.Object,
	)
	Lift = newArchetype(
		tags.Lift,
		tags.Kinematic,
		components.Body,
		components.Object,
		components.Motion,
	)
	Press = newArchetype(
		tags.Press,
		tags.Kinematic,
		components.Body,
		components.Object,
		components.Motion,
	)
	Hook = newArchetype(
		tags.Hook,
		tags.Kinematic,
		components.Body,
		components.Object,
		components.Motion,
	)
	Block = newArchetype(
		tags.Block,
		tags.Dynamic,
		components.Body,
		components.Object,
		components.Physics,
	)
	Player = newArchetype(
		tags.Player,
		tags.Dynamic,
		components.Body,
		components.Object,
		components.Physics,
		components.Input,
	)
	Trigger = newArchetype(
		tags.Trigger,
		components.Trigger,
	)
)

// ForKind returns the archetype that spawns bodies of kind k.
func ForKind(k cfg.Kind) (*archetype, bool) {
	switch k {
	case cfg.KindWall:
		return Wall, true
	case cfg.KindConveyor:
		return Conveyor, true
	case cfg.KindLift:
		return Lift, true
	case cfg.KindPress:
		return Press, true
	case cfg.KindHook:
		return Hook, true
	case cfg.KindBlock:
		return Block, true
	case cfg.KindPlayer:
		return Player, true
	}
	return nil, false
}

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
