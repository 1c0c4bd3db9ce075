package factory

import (
	"fmt"

	"github.com/automoto/doomerang-gimmicks/archetypes"
	"github.com/automoto/doomerang-gimmicks/components"
	cfg "github.com/automoto/doomerang-gimmicks/config"
	"github.com/automoto/doomerang-gimmicks/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// spawnBody creates the entity for kind with its rect at (x, y, w, h), top-left
// origin as in TMX. A zero size falls back to the configured size.
func spawnBody(ecs *ecs.ECS, kind cfg.Kind, x, y, w, h, z float64) (*donburi.Entry, error) {
	arch, ok := archetypes.ForKind(kind)
	if !ok {
		return nil, fmt.Errorf("no archetype for %s", kind)
	}

	room := components.MustRoom(ecs.World)
	g := room.Config.Gimmick(kind)
	if w <= 0 || h <= 0 {
		w, h = g.Width, g.Height
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%s at (%v, %v) has no size", kind, x, y)
	}

	e := arch.Spawn(ecs)
	components.Body.SetValue(e, components.BodyData{
		Kind:          kind,
		ID:            room.AllocID(),
		Pos:           mgl64.Vec3{x + w/2, y + h/2, z},
		Half:          dmath.Vec2{X: w / 2, Y: h / 2},
		Mass:          g.Mass,
		Exist:         true,
		AllowCompress: g.AllowCompress,
		HitPlayer:     g.HitPlayer,
		IgnoreExist:   g.IgnoreExist,
	})

	// Static walls never move, so only moving bodies need a padded proxy.
	margin := room.Config.Room.BroadphaseMargin
	tag := tags.ResolvBody
	if kind == cfg.KindWall {
		margin = 0
		tag = tags.ResolvSolid
	}
	pw, ph := w+2*margin, h+2*margin
	obj := resolv.NewObject(x-margin, y-margin, pw, ph, tag, kind.String())
	obj.SetShape(resolv.NewRectangle(0, 0, pw, ph))
	obj.Data = e // Link for O(1) lookup

	components.Object.SetValue(e, components.ObjectData{Object: obj, Margin: margin})
	addToSpace(ecs, obj)

	return e, nil
}

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall, err := spawnBody(ecs, cfg.KindWall, x, y, w, h, 0)
	if err != nil {
		panic(err)
	}
	return wall
}

// CreateDynamic spawns a player or block.
func CreateDynamic(ecs *ecs.ECS, kind cfg.Kind, x, y, w, h, z float64) (*donburi.Entry, error) {
	if !kind.Dynamic() {
		return nil, fmt.Errorf("%s is not a dynamic kind", kind)
	}
	e, err := spawnBody(ecs, kind, x, y, w, h, z)
	if err != nil {
		return nil, err
	}

	c := components.MustRoom(ecs.World).Config
	g := c.Gimmick(kind)
	components.Physics.SetValue(e, components.PhysicsData{
		Gravity:      c.Physics.Gravity,
		Friction:     g.Friction,
		MaxSpeed:     c.Physics.MaxSpeed,
		MaxFallSpeed: c.Physics.MaxFallSpeed,
		WalkSpeed:    g.Speed,
	})
	return e, nil
}

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player, err := CreateDynamic(ecs, cfg.KindPlayer, x, y, 0, 0, 0)
	if err != nil {
		panic(err)
	}
	return player
}

func CreateBlock(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	block, err := CreateDynamic(ecs, cfg.KindBlock, x, y, 0, 0, 0)
	if err != nil {
		panic(err)
	}
	return block
}
