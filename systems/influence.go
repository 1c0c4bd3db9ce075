package systems

import (
	"github.com/automoto/doomerang-gimmicks/components"
	"github.com/automoto/doomerang-gimmicks/shared/collide"
	"github.com/automoto/doomerang-gimmicks/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// groundProbe is how far below a body its support is looked for.
const groundProbe = 1.0

// UpdateInfluence finds what every dynamic body stands on and stores the
// influence those supports hand over for the next tick.
func UpdateInfluence(ecs *ecs.ECS) {
	room := components.MustRoom(ecs.World)

	tags.Dynamic.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Crushed) {
			return
		}
		body := components.Body.Get(e)
		supports, ground := supportsOf(e, body)
		body.OnGround = ground
		body.Influence = room.Influence.Sum(supports)
	})
}

// supportsOf returns the obstacles directly under the body and the lowest-ID
// entry among them.
func supportsOf(e *donburi.Entry, body *components.BodyData) ([]collide.ExRect, *donburi.Entry) {
	check := components.Object.Get(e).Check(0, groundProbe)
	if check == nil {
		return nil, nil
	}

	m := body.Mover()
	shape := m.Rect()
	probe := shape.Translate(0, groundProbe)

	var supports []collide.ExRect
	var ground *donburi.Entry
	groundID := 0
	seen := make(map[int]bool)
	for _, o := range check.Objects {
		other, ok := o.Data.(*donburi.Entry)
		if !ok || other == e || !other.Valid() || other.HasComponent(components.Crushed) {
			continue
		}
		ob := components.Body.Get(other)
		if seen[ob.ID] {
			continue
		}
		seen[ob.ID] = true

		ex := ob.ExRect()
		if !ex.Blocks(m) || ex.Top() < shape.Bottom() {
			continue
		}
		if !collide.HitRect(probe, ex.Rect, body.IgnoreExist) {
			continue
		}
		supports = append(supports, ex)
		if ground == nil || ob.ID < groundID {
			ground, groundID = other, ob.ID
		}
	}
	return supports, ground
}
