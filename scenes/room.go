package scenes

import (
	"fmt"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/automoto/doomerang-gimmicks/components"
	cfg "github.com/automoto/doomerang-gimmicks/config"
	"github.com/automoto/doomerang-gimmicks/shared/leveldata"
	"github.com/automoto/doomerang-gimmicks/systems"
	"github.com/automoto/doomerang-gimmicks/systems/factory"
	"github.com/automoto/doomerang-gimmicks/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Room is one headless simulation: a donburi world, its broadphase and the
// gimmick pipeline.
type Room struct {
	ecs *ecs.ECS
}

// Stats summarises a room after some ticks.
type Stats struct {
	Name        string
	Tick        int
	Bodies      int
	Crushes     []components.CrushEvent
	Truncations int
	Triggers    map[string]int
}

// NewRoom creates an empty room of the given pixel size.
func NewRoom(name string, c *cfg.Config, width, height int) *Room {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateRoom)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateKinematics)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateInfluence)
	ecs.AddSystem(systems.UpdateTriggers)
	ecs.AddSystem(systems.UpdateCrush)

	factory.CreateRoom(ecs, name, c, width, height)
	return &Room{ecs: ecs}
}

// LoadRoom builds a room from a TMX file in fsys.
func LoadRoom(fsys fs.FS, tmxPath string, c *cfg.Config) (*Room, error) {
	data, err := leveldata.LoadRoomData(fsys, tmxPath)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(path.Base(tmxPath), ".tmx")
	r := NewRoom(name, c, data.MapWidth, data.MapHeight)
	if err := factory.CreateLevel(r.ecs, data); err != nil {
		return nil, fmt.Errorf("build room %s: %w", name, err)
	}

	log.Printf("Loaded room %s: %d walls, %d gimmicks, %d triggers, %dx%d map",
		name, len(data.Walls), len(data.Gimmicks), len(data.Triggers), data.MapWidth, data.MapHeight)
	return r, nil
}

func (r *Room) ECS() *ecs.ECS {
	return r.ecs
}

// Update runs one tick.
func (r *Room) Update() {
	r.ecs.Update()
}

// SetPlayerInput scripts the player for the following ticks.
func (r *Room) SetPlayerInput(moveX float64, grab bool) {
	tags.Player.Each(r.ecs.World, func(e *donburi.Entry) {
		components.Input.SetValue(e, components.InputData{MoveX: moveX, Grab: grab})
	})
}

// Player returns the live player entry, if any.
func (r *Room) Player() (*donburi.Entry, bool) {
	var player *donburi.Entry
	tags.Player.Each(r.ecs.World, func(e *donburi.Entry) {
		if player == nil && !e.HasComponent(components.Crushed) {
			player = e
		}
	})
	return player, player != nil
}

func (r *Room) Stats() Stats {
	room := components.MustRoom(r.ecs.World)
	s := Stats{
		Name:        room.Name,
		Tick:        room.Tick,
		Crushes:     append([]components.CrushEvent(nil), room.Crushes...),
		Truncations: room.Truncations,
		Triggers:    make(map[string]int),
	}
	components.Body.Each(r.ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Crushed) {
			s.Bodies++
		}
	})
	components.Trigger.Each(r.ecs.World, func(e *donburi.Entry) {
		t := components.Trigger.Get(e)
		s.Triggers[t.Name] += t.Entered
	})
	return s
}
