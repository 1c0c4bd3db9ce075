package systems

import (
	"sort"

	"github.com/automoto/doomerang-gimmicks/components"
	cfg "github.com/automoto/doomerang-gimmicks/config"
	"github.com/automoto/doomerang-gimmicks/shared/collide"
	"github.com/automoto/doomerang-gimmicks/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves every kinematic gimmick, then every dynamic body,
// through the resolver. Each mover sees the others at their already resolved
// positions for this tick.
func UpdateCollisions(ecs *ecs.ECS) {
	room := components.MustRoom(ecs.World)
	player := findPlayer(ecs.World)

	for _, e := range movers(ecs.World) {
		resolveBody(room, e, player)
	}
}

// movers lists kinematic gimmicks by ID, then dynamic bodies lowest first so
// stacks settle from the bottom.
func movers(w donburi.World) []*donburi.Entry {
	var kinematic, dynamic []*donburi.Entry
	tags.Kinematic.Each(w, func(e *donburi.Entry) {
		kinematic = append(kinematic, e)
	})
	tags.Dynamic.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Crushed) {
			dynamic = append(dynamic, e)
		}
	})

	sort.Slice(kinematic, func(i, j int) bool {
		return components.Body.Get(kinematic[i]).ID < components.Body.Get(kinematic[j]).ID
	})
	sort.Slice(dynamic, func(i, j int) bool {
		a, b := components.Body.Get(dynamic[i]), components.Body.Get(dynamic[j])
		ab, bb := a.Pos.Y()+a.Half.Y, b.Pos.Y()+b.Half.Y
		if ab != bb {
			return ab > bb
		}
		return a.ID < b.ID
	})
	return append(kinematic, dynamic...)
}

func findPlayer(w donburi.World) *donburi.Entry {
	var player *donburi.Entry
	tags.Player.Each(w, func(e *donburi.Entry) {
		if player == nil && !e.HasComponent(components.Crushed) {
			player = e
		}
	})
	return player
}

func resolveBody(room *components.RoomData, e, player *donburi.Entry) {
	body := components.Body.Get(e)
	obj := components.Object.Get(e)

	obstacles, hook := gatherObstacles(e, player)

	opts := body.Options()
	if hook != nil && canBeCarried(e) {
		opts.Accompany = hook
	}
	if player != nil && player != e {
		ex := components.Body.Get(player).ExRect()
		opts.Player = &ex
	}

	res := room.Resolver.Resolve(body.Mover(), obstacles, opts)
	body.Apply(res)
	body.Pos[2] += body.Velocity.Z()
	if res.Truncated {
		room.Truncations++
	}
	obj.Sync(body)

	if e.HasComponent(components.Physics) {
		physics := components.Physics.Get(e)
		if res.Accompanied {
			physics.SpeedX, physics.SpeedY = 0, 0
		}
		if res.Velocity.X() == 0 {
			physics.SpeedX = 0
		}
		if res.Velocity.Y() == 0 {
			physics.SpeedY = 0
		}
	}
}

// canBeCarried reports whether a hook may take the body along. Players only
// ride while grabbing.
func canBeCarried(e *donburi.Entry) bool {
	if !e.HasComponent(tags.Dynamic) {
		return false
	}
	if e.HasComponent(components.Input) {
		return components.Input.Get(e).Grab
	}
	return true
}

// gatherObstacles collects the bodies near e from the broadphase, walls first
// and then by kind and ID. Hooks are not obstacles; the first hook overlapping
// e is returned separately as the candidate to ride along with. The player is
// left out since the resolver takes it as an option.
func gatherObstacles(e, player *donburi.Entry) ([]collide.ExRect, *collide.ExRect) {
	body := components.Body.Get(e)
	obj := components.Object.Get(e)

	check := obj.Check(body.Velocity.X(), body.Velocity.Y())
	if check == nil {
		return nil, nil
	}

	shape := body.Mover().Rect()
	seen := make(map[int]bool, len(check.Objects))
	var obstacles []collide.ExRect
	var hook *collide.ExRect

	for _, o := range check.Objects {
		other, ok := o.Data.(*donburi.Entry)
		if !ok || other == e || other == player || !other.Valid() {
			continue
		}
		if other.HasComponent(components.Crushed) {
			continue
		}
		ob := components.Body.Get(other)
		if seen[ob.ID] {
			continue
		}
		seen[ob.ID] = true

		ex := ob.ExRect()
		if ob.Kind == cfg.KindHook {
			if collide.HitRect(ex.Rect, shape, body.IgnoreExist) && (hook == nil || ex.ID < hook.ID) {
				h := ex
				hook = &h
			}
			continue
		}
		obstacles = append(obstacles, ex)
	}

	sort.Slice(obstacles, func(i, j int) bool {
		ki, kj := cfg.Kind(obstacles[i].Attribute).Order(), cfg.Kind(obstacles[j].Attribute).Order()
		if ki != kj {
			return ki < kj
		}
		return obstacles[i].ID < obstacles[j].ID
	})
	return obstacles, hook
}

// IsCompressed reports whether the body was crushed by its last collision pass.
func IsCompressed(e *donburi.Entry) bool {
	if !e.HasComponent(components.Body) {
		return false
	}
	return components.Body.Get(e).Compressed
}
