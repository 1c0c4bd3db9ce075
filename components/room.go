package components

import (
	cfg "github.com/automoto/doomerang-gimmicks/config"
	"github.com/automoto/doomerang-gimmicks/shared/collide"
	"github.com/automoto/doomerang-gimmicks/shared/influence"
	"github.com/yohamta/donburi"
)

// CrushEvent records one body lost to compression.
type CrushEvent struct {
	Tick int
	ID   int
	Kind cfg.Kind
}

// RoomData is the per-world singleton: settings shared by every system plus
// running counters.
type RoomData struct {
	Name      string
	Config    *cfg.Config
	Resolver  *collide.Resolver
	Influence *influence.Table

	Width, Height int
	NextID        int
	Tick          int
	Crushes       []CrushEvent
	Truncations   int
}

var Room = donburi.NewComponentType[RoomData]()

// AllocID hands out body IDs starting at 1; zero stays anonymous.
func (r *RoomData) AllocID() int {
	r.NextID++
	return r.NextID
}

// MustRoom returns the world's room settings. Every system runs inside a room,
// so a missing one is a programming error.
func MustRoom(w donburi.World) *RoomData {
	e, ok := Room.First(w)
	if !ok {
		panic("no room in world")
	}
	return Room.Get(e)
}
