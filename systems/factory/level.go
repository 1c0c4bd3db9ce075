package factory

import (
	"fmt"

	"github.com/automoto/doomerang-gimmicks/components"
	cfg "github.com/automoto/doomerang-gimmicks/config"
	"github.com/automoto/doomerang-gimmicks/shared/leveldata"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel populates the room from parsed TMX data: walls first, then
// gimmicks in file order, then triggers. The player is placed on the first
// spawn point unless a gimmick of kind player was placed explicitly.
func CreateLevel(ecs *ecs.ECS, data *leveldata.RoomData) error {
	for _, w := range data.Walls {
		CreateWall(ecs, w.X, w.Y, w.W, w.H)
	}

	hasPlayer := false
	for _, g := range data.Gimmicks {
		kind, err := cfg.ParseKind(g.Kind)
		if err != nil {
			return fmt.Errorf("gimmick %q: %w", g.Name, err)
		}
		if err := CreateGimmick(ecs, kind, g); err != nil {
			return fmt.Errorf("gimmick %q: %w", g.Name, err)
		}
		if kind == cfg.KindPlayer {
			hasPlayer = true
		}
	}

	if !hasPlayer && len(data.SpawnPoints) > 0 {
		sp := data.SpawnPoints[0]
		if _, err := CreateDynamic(ecs, cfg.KindPlayer, sp.X, sp.Y, 0, 0, 0); err != nil {
			return fmt.Errorf("player spawn: %w", err)
		}
	}

	for _, t := range data.Triggers {
		CreateTrigger(ecs, t)
	}
	return nil
}

// CreateGimmick spawns one level object of the given kind.
func CreateGimmick(ecs *ecs.ECS, kind cfg.Kind, g leveldata.GimmickSpawn) error {
	var err error
	switch {
	case kind == cfg.KindWall:
		if g.W <= 0 || g.H <= 0 {
			return fmt.Errorf("wall needs a size")
		}
		CreateWall(ecs, g.X, g.Y, g.W, g.H)
	case kind == cfg.KindConveyor:
		speed := g.Speed
		if speed == 0 {
			speed = components.MustRoom(ecs.World).Config.Gimmick(kind).Speed
		}
		if g.Direction == "left" {
			speed = -speed
		}
		_, err = CreateConveyor(ecs, g.X, g.Y, g.W, g.H, speed)
	case kind.Kinematic():
		_, err = CreateKinematic(ecs, kind, g.X, g.Y, g.W, g.H, MotionSpec{
			Direction: g.Direction,
			Travel:    g.Travel,
			Period:    g.Period,
		})
	case kind.Dynamic():
		_, err = CreateDynamic(ecs, kind, g.X, g.Y, g.W, g.H, g.Z)
	default:
		err = fmt.Errorf("cannot place %s", kind)
	}
	return err
}
